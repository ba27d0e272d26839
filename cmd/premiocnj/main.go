package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/premiocnj/internal/catalog"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "premiocnj",
		Short: "Compute Prêmio CNJ de Qualidade indicators from registry counts",
		Long: `premiocnj scores the data-quality indicators of the Prêmio CNJ de Qualidade
from population and inconsistency counts taken from the MPM registry.

Defaults come from PREMIOCNJ_* environment variables or a .env file.`,
		Version: version,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.SetVersionTemplate("premiocnj {{.Version}} (catálogo padrão " + catalog.DefaultBuiltin + ")\n")
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newReportCmd())

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
