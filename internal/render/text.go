package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dshills/premiocnj/internal/catalog"
	"github.com/dshills/premiocnj/internal/report"
)

// Text renders a report as aligned plain-text columns.
func Text(r *report.Report, f Formatter) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REFERÊNCIA\tINDICADOR\tMETA\tTOTAL\tINCONSISTÊNCIAS\tPERCENTUAL\tPONTOS\tSTATUS")
	for _, row := range r.Rows {
		c := cells(row, f)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.ReferenceCode, row.Title, c.target, c.total, c.nonconforming, c.percent, c.points, row.Status.Label())
	}
	tw.Flush()

	fmt.Fprintf(&b, "\nPontos possíveis: %s\n", f.Count(r.Summary.PointsPossible))
	fmt.Fprintf(&b, "Pontos obtidos:   %s\n", f.Count(r.Summary.PointsObtained))
	fmt.Fprintf(&b, "Aproveitamento:   %s\n", f.Utilization(r.Summary.UtilizationPercent))
	return b.String()
}

// Catalog renders catalog definitions as aligned plain-text columns.
func Catalog(defs []catalog.Definition, f Formatter) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REFERÊNCIA\tINDICADOR\tPONTOS\tMETA\tSITUAÇÃO")
	for _, d := range defs {
		status := report.StatusPending.Label()
		if d.Implemented {
			status = "Implementado"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ReferenceCode, d.Title, f.Count(d.MaxPoints), f.Target(d.TargetLabel, d.ThresholdPercent), status)
	}
	tw.Flush()
	return b.String()
}

// CatalogMarkdown renders catalog definitions as a Markdown table.
func CatalogMarkdown(name string, defs []catalog.Definition, f Formatter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Catálogo %s\n\n", name)
	b.WriteString("| Referência | Indicador | Pontos | Meta | Situação |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, d := range defs {
		marker := report.StatusPending.Marker()
		if d.Implemented {
			marker = "✔"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", d.ReferenceCode, d.Title, f.Count(d.MaxPoints), f.Target(d.TargetLabel, d.ThresholdPercent), marker)
	}
	return b.String()
}
