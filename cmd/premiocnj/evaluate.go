package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/premiocnj/internal/indicator"
	"github.com/dshills/premiocnj/internal/render"
)

type evaluateFlags struct {
	commonFlags
	total         int
	nonconforming int
	format        string
}

func newEvaluateCmd() *cobra.Command {
	var f evaluateFlags

	cmd := &cobra.Command{
		Use:     "evaluate <indicator>",
		Short:   "Evaluate one indicator and explain the calculation",
		Example: `  premiocnj evaluate "Art. 12, II, b)" --total 150 --nonconforming 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.OutOrStdout(), args[0], f)
		},
	}

	f.commonFlags.register(cmd)
	cmd.Flags().IntVar(&f.total, "total", 0, "Total records in the population")
	cmd.Flags().IntVar(&f.nonconforming, "nonconforming", 0, "Records with at least one inconsistency")
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text, json")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("nonconforming")

	return cmd
}

func runEvaluate(out io.Writer, query string, f evaluateFlags) error {
	verbose := f.logger()

	if f.format != "text" && f.format != "json" {
		return exitError(exitLoad, "unknown format %q (want text or json)", f.format)
	}

	_, reg, nf, err := f.setup(verbose)
	if err != nil {
		return err
	}

	def, err := reg.Resolve(query)
	if err != nil {
		return evaluateErr(query, err)
	}
	verbose("Resolved %q to %s", query, def.ReferenceCode)

	in, err := indicator.NewInput(f.total, f.nonconforming)
	if err != nil {
		return evaluateErr(def.ReferenceCode, err)
	}
	res, err := indicator.Evaluate(def, in)
	if err != nil {
		return evaluateErr(def.ReferenceCode, err)
	}

	if f.format == "json" {
		return writeJSON(out, res)
	}
	_, err = fmt.Fprintf(out, "%s: %s\n\n%s", res.ReferenceCode, res.Title, render.Explain(res, nf))
	return err
}
