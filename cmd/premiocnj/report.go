package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/premiocnj/internal/catalog"
	"github.com/dshills/premiocnj/internal/config"
	"github.com/dshills/premiocnj/internal/counts"
	"github.com/dshills/premiocnj/internal/indicator"
	"github.com/dshills/premiocnj/internal/render"
	"github.com/dshills/premiocnj/internal/report"
	"github.com/dshills/premiocnj/internal/score"
)

type reportFlags struct {
	commonFlags
	countsFile    string
	assignments   []string
	format        string
	referenceDate string
	failBelow     float64
}

func newReportCmd() *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Evaluate indicators from counts and print the consolidated report",
		Example: `  premiocnj report --counts counts.yaml
  premiocnj report --set "Art. 12, II, b)=150:5" --set "cadastro de servidores=800:30" --format text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), f)
		},
	}

	f.commonFlags.register(cmd)
	cmd.Flags().StringVar(&f.countsFile, "counts", "", "Counts YAML file")
	cmd.Flags().StringArrayVar(&f.assignments, "set", nil, "Counts as CODE=TOTAL:NONCONFORMING (repeatable, applied after --counts)")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: md, text, csv, json (default: md)")
	cmd.Flags().StringVar(&f.referenceDate, "reference-date", "", "Reference date shown in the report header")
	cmd.Flags().Float64Var(&f.failBelow, "fail-below", 0, "Exit 2 when utilization percent is below this value")

	return cmd
}

func runReport(out io.Writer, f reportFlags) error {
	verbose := f.logger()

	cfg, reg, nf, err := f.setup(verbose)
	if err != nil {
		return err
	}
	format := cfg.Format
	if f.format != "" {
		format = f.format
	}
	if !config.ValidFormat(format) {
		return exitError(exitLoad, "unknown format %q (want md, text, csv or json)", format)
	}
	if f.failBelow < 0 || f.failBelow > 100 {
		return exitError(exitLoad, "--fail-below must be between 0 and 100")
	}

	var entries []counts.Entry
	meta := report.Meta{
		Tool:          "premiocnj",
		Version:       version,
		ReferenceDate: cfg.ReferenceDate,
	}

	if f.countsFile != "" {
		verbose("Loading counts: %s", f.countsFile)
		cf, err := counts.Load(f.countsFile)
		if err != nil {
			return exitError(exitLoad, "failed to load counts: %v", err)
		}
		entries = append(entries, cf.Entries...)
		meta.Input = report.Input{CountsFile: cf.FilePath, CountsHash: cf.Hash, Sources: cf.Sources}
		if cf.ReferenceDate != "" {
			meta.ReferenceDate = cf.ReferenceDate
		}
	}
	for _, a := range f.assignments {
		e, err := counts.ParseAssignment(a)
		if err != nil {
			return exitError(exitInvalidCounts, "%v", err)
		}
		entries = append(entries, e)
	}
	if f.referenceDate != "" {
		meta.ReferenceDate = f.referenceDate
	}

	results, err := evaluateEntries(reg, entries, verbose)
	if err != nil {
		return err
	}
	verbose("Evaluated %d indicators", results.Len())

	r := report.Build(reg, results, meta)

	var output string
	switch format {
	case "json":
		if err := writeJSON(out, r); err != nil {
			return err
		}
	case "text":
		output = render.Text(r, nf)
	case "csv":
		output, err = render.CSV(r, nf)
		if err != nil {
			return err
		}
	default:
		output = render.Markdown(r, nf)
	}
	if output != "" {
		if _, err := io.WriteString(out, output); err != nil {
			return err
		}
	}

	if f.failBelow > 0 && !score.MeetsTarget(r.Summary, f.failBelow) {
		return exitError(exitBelowTarget, "utilization %s below %s",
			nf.Utilization(r.Summary.UtilizationPercent), nf.Utilization(f.failBelow))
	}
	return nil
}

// evaluateEntries resolves each entry against the registry and keeps the
// latest result per indicator.
func evaluateEntries(reg *catalog.Registry, entries []counts.Entry, verbose func(string, ...any)) (*indicator.ResultSet, error) {
	results := indicator.NewResultSet()
	for _, e := range entries {
		def, err := reg.Resolve(e.ReferenceCode)
		if err != nil {
			return nil, evaluateErr(e.ReferenceCode, err)
		}
		in, err := e.Input()
		if err != nil {
			return nil, evaluateErr(def.ReferenceCode, err)
		}
		res, err := indicator.Evaluate(def, in)
		if err != nil {
			return nil, evaluateErr(def.ReferenceCode, err)
		}
		if _, seen := results.Get(def.ReferenceCode); seen {
			verbose("Replacing earlier counts for %s", def.ReferenceCode)
		}
		verbose("  %s: %d/%d = %.4f%% passed=%v", def.ReferenceCode, in.Nonconforming, in.Total, res.Percent, res.Passed)
		results.Put(res)
	}
	return results, nil
}
