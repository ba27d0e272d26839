package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/premiocnj/internal/render"
)

type catalogFlags struct {
	commonFlags
	format string
}

func newCatalogCmd() *cobra.Command {
	var f catalogFlags

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the indicators of the active catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.OutOrStdout(), f)
		},
	}

	f.commonFlags.register(cmd)
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text, md, json")

	return cmd
}

func runCatalog(out io.Writer, f catalogFlags) error {
	verbose := f.logger()

	_, reg, nf, err := f.setup(verbose)
	if err != nil {
		return err
	}

	defs := reg.List()
	switch f.format {
	case "json":
		return writeJSON(out, defs)
	case "md":
		_, err = io.WriteString(out, render.CatalogMarkdown(reg.Name(), defs, nf))
	case "text":
		_, err = io.WriteString(out, render.Catalog(defs, nf))
	default:
		return exitError(exitLoad, "unknown format %q (want text, md or json)", f.format)
	}
	return err
}
