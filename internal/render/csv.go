package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/dshills/premiocnj/internal/report"
)

type csvRow struct {
	Referencia      string `csv:"referencia"`
	Indicador       string `csv:"indicador"`
	Meta            string `csv:"meta"`
	Total           string `csv:"total"`
	Inconsistencias string `csv:"inconsistencias"`
	Percentual      string `csv:"percentual"`
	Pontos          string `csv:"pontos"`
	Status          string `csv:"status"`
}

// CSV renders the report rows as ';'-separated values with a header line.
func CSV(r *report.Report, f Formatter) (string, error) {
	rows := make([]csvRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		c := cells(row, f)
		rows = append(rows, csvRow{
			Referencia:      row.ReferenceCode,
			Indicador:       row.Title,
			Meta:            c.target,
			Total:           c.total,
			Inconsistencias: c.nonconforming,
			Percentual:      c.percent,
			Pontos:          c.points,
			Status:          string(row.Status),
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := gocsv.MarshalCSV(&rows, w); err != nil {
		return "", fmt.Errorf("render.CSV: %w", err)
	}
	return buf.String(), nil
}
