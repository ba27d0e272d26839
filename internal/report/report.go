// Package report assembles the per-indicator rows and award totals for one
// report cycle.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/premiocnj/internal/catalog"
	"github.com/dshills/premiocnj/internal/indicator"
	"github.com/dshills/premiocnj/internal/score"
)

// Status is the outcome shown for one catalog row.
type Status string

const (
	StatusPass         Status = "PASS"
	StatusFail         Status = "FAIL"
	StatusNotEvaluated Status = "NOT_EVALUATED"
	StatusPending      Status = "PENDING"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPass, StatusFail, StatusNotEvaluated, StatusPending:
		return true
	}
	return false
}

// Marker returns the glyph used in tables.
func (s Status) Marker() string {
	switch s {
	case StatusPass:
		return "✅"
	case StatusFail:
		return "❌"
	case StatusPending:
		return "⏳"
	default:
		return "—"
	}
}

// Label returns the operator-facing status text.
func (s Status) Label() string {
	switch s {
	case StatusPass:
		return "Aprovado"
	case StatusFail:
		return "Reprovado"
	case StatusPending:
		return "Em implementação"
	default:
		return "Não avaliado"
	}
}

// Report is the top-level output object.
type Report struct {
	Tool          string        `json:"tool"`
	Version       string        `json:"version"`
	ID            string        `json:"id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Catalog       string        `json:"catalog"`
	ReferenceDate string        `json:"reference_date,omitempty"`
	Input         Input         `json:"input"`
	Summary       score.Summary `json:"summary"`
	Rows          []Row         `json:"rows"`
	LegalBasis    []string      `json:"legal_basis,omitempty"`
}

// Input describes where the counts came from.
type Input struct {
	CountsFile string   `json:"counts_file,omitempty"`
	CountsHash string   `json:"counts_hash,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}

// Row is one catalog indicator in the report. Result is nil unless the
// indicator was evaluated. Target is the catalog's display label, empty when
// renderers should print the threshold in their own locale.
type Row struct {
	ReferenceCode    string            `json:"reference_code"`
	Title            string            `json:"title"`
	Target           string            `json:"target,omitempty"`
	ThresholdPercent float64           `json:"threshold_percent"`
	MaxPoints        int               `json:"max_points"`
	Status           Status            `json:"status"`
	Result           *indicator.Result `json:"result,omitempty"`
}

// PointsAwarded returns the points obtained for the row, 0 when not evaluated.
func (r Row) PointsAwarded() int {
	if r.Result == nil {
		return 0
	}
	return r.Result.PointsAwarded
}

// Meta carries the report metadata supplied by the caller.
type Meta struct {
	Tool          string
	Version       string
	ReferenceDate string
	Input         Input
	Now           time.Time
}

// Build lays out one row per catalog definition in declaration order. The
// summary covers only the evaluated results held in results.
func Build(reg *catalog.Registry, results *indicator.ResultSet, meta Meta) *Report {
	now := meta.Now
	if now.IsZero() {
		now = time.Now()
	}

	r := &Report{
		Tool:          meta.Tool,
		Version:       meta.Version,
		ID:            uuid.NewString(),
		GeneratedAt:   now.UTC(),
		Catalog:       reg.Name(),
		ReferenceDate: meta.ReferenceDate,
		Input:         meta.Input,
		Summary:       score.Aggregate(results.Values()),
		LegalBasis:    reg.LegalBasis(),
	}

	for _, d := range reg.List() {
		row := Row{
			ReferenceCode:    d.ReferenceCode,
			Title:            d.Title,
			Target:           d.TargetLabel,
			ThresholdPercent: d.ThresholdPercent,
			MaxPoints:        d.MaxPoints,
		}
		switch res, ok := results.Get(d.ReferenceCode); {
		case !d.Implemented:
			row.Status = StatusPending
		case !ok:
			row.Status = StatusNotEvaluated
		default:
			row.Result = &res
			if res.Passed {
				row.Status = StatusPass
			} else {
				row.Status = StatusFail
			}
		}
		r.Rows = append(r.Rows, row)
	}

	return r
}
