// Package render produces Markdown, plain-text and CSV output from a report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/premiocnj/internal/indicator"
	"github.com/dshills/premiocnj/internal/report"
)

const notAvailable = "-"

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report, f Formatter) string {
	var b strings.Builder

	b.WriteString("# Prêmio CNJ de Qualidade: Indicadores\n\n")
	fmt.Fprintf(&b, "**Catálogo:** %s\n", r.Catalog)
	if r.ReferenceDate != "" {
		fmt.Fprintf(&b, "**Referência:** %s\n", r.ReferenceDate)
	}
	if len(r.Input.Sources) > 0 {
		fmt.Fprintf(&b, "**Dados ativos:** %s\n", strings.Join(r.Input.Sources, " | "))
	}
	b.WriteString("\n")

	// Summary
	b.WriteString("## Resumo\n\n")
	fmt.Fprintf(&b, "- **Indicadores avaliados:** %d de %d\n", r.Summary.Evaluated, len(r.Rows))
	fmt.Fprintf(&b, "- **Pontos possíveis:** %s\n", f.Count(r.Summary.PointsPossible))
	fmt.Fprintf(&b, "- **Pontos obtidos:** %s\n", f.Count(r.Summary.PointsObtained))
	fmt.Fprintf(&b, "- **Aproveitamento:** %s\n\n", f.Utilization(r.Summary.UtilizationPercent))

	// Table
	b.WriteString("## Detalhamento por Indicador\n\n")
	b.WriteString("| Referência | Indicador | Meta | Total | Inconsistências | Percentual | Pontos | Status |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, row := range r.Rows {
		c := cells(row, f)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.ReferenceCode, row.Title, c.target, c.total, c.nonconforming, c.percent, c.points, row.Status.Marker())
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s | %s %s | %s %s | %s %s\n\n",
		report.StatusPass.Marker(), report.StatusPass.Label(),
		report.StatusFail.Marker(), report.StatusFail.Label(),
		report.StatusPending.Marker(), report.StatusPending.Label(),
		report.StatusNotEvaluated.Marker(), report.StatusNotEvaluated.Label())

	// Per-indicator calculation
	var evaluated []report.Row
	for _, row := range r.Rows {
		if row.Result != nil {
			evaluated = append(evaluated, row)
		}
	}
	if len(evaluated) > 0 {
		b.WriteString("## Cálculo Detalhado\n\n")
		for _, row := range evaluated {
			fmt.Fprintf(&b, "### %s (%s)\n\n", row.Title, row.ReferenceCode)
			b.WriteString(Explain(*row.Result, f))
			b.WriteString("\n")
		}
	}

	if len(r.LegalBasis) > 0 {
		fmt.Fprintf(&b, "---\n\nBase Legal: %s\n", strings.Join(r.LegalBasis, " • "))
	}

	return b.String()
}

// Explain renders the step-by-step calculation for one result.
func Explain(res indicator.Result, f Formatter) string {
	var b strings.Builder
	b.WriteString("**Fórmula:** (Inconsistências ÷ Total) × 100\n\n")
	fmt.Fprintf(&b, "**Aplicação:** (%s ÷ %s) × 100 = %s\n\n",
		f.Count(res.Nonconforming), f.Count(res.Total), f.Percent(res.Percent))
	fmt.Fprintf(&b, "**Meta:** ≤ %s\n\n", f.Percent(res.ThresholdPercent))
	if res.Passed {
		b.WriteString("**Status:** Dentro da meta ✅\n\n")
	} else {
		b.WriteString("**Status:** Fora da meta ❌\n\n")
	}
	fmt.Fprintf(&b, "**Pontos:** %d de %d\n", res.PointsAwarded, res.MaxPoints)
	return b.String()
}

type rowCells struct {
	target        string
	total         string
	nonconforming string
	percent       string
	points        string
}

func cells(row report.Row, f Formatter) rowCells {
	if row.Result == nil {
		return rowCells{
			target:        f.Target(row.Target, row.ThresholdPercent),
			total:         notAvailable,
			nonconforming: notAvailable,
			percent:       notAvailable,
			points:        f.Points(0, row.MaxPoints),
		}
	}
	res := row.Result
	return rowCells{
		target:        f.Target(row.Target, row.ThresholdPercent),
		total:         f.Count(res.Total),
		nonconforming: f.Count(res.Nonconforming),
		percent:       f.Percent(res.Percent),
		points:        f.Points(res.PointsAwarded, res.MaxPoints),
	}
}
