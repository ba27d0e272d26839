package indicator

import (
	"fmt"
	"math"

	"github.com/dshills/premiocnj/internal/catalog"
)

// NotImplementedError is returned when a cataloged indicator has no
// computable rule yet.
type NotImplementedError struct {
	Code string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("indicator %q is not implemented", e.Code)
}

// Result is the outcome of evaluating one indicator.
type Result struct {
	ReferenceCode    string  `json:"reference_code"`
	Title            string  `json:"title"`
	Total            int     `json:"total"`
	Nonconforming    int     `json:"nonconforming"`
	Percent          float64 `json:"percent"`
	ThresholdPercent float64 `json:"threshold_percent"`
	MaxPoints        int     `json:"max_points"`
	PointsAwarded    int     `json:"points_awarded"`
	Passed           bool    `json:"passed"`
}

// RoundedPercent returns Percent rounded to two decimals for display.
func (r Result) RoundedPercent() float64 {
	return Round2(r.Percent)
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Evaluate applies the definition's rule to the input. The pass decision
// uses the unrounded percent; no partial credit is awarded.
func Evaluate(def catalog.Definition, in Input) (Result, error) {
	if !def.Implemented {
		return Result{}, &NotImplementedError{Code: def.ReferenceCode}
	}
	if !def.Comparison.Valid() {
		return Result{}, fmt.Errorf("indicator.Evaluate: %s: unsupported comparison %q", def.ReferenceCode, def.Comparison)
	}
	if err := in.validate(); err != nil {
		return Result{}, err
	}

	percent := (float64(in.Nonconforming) / float64(in.Total)) * 100
	passed := percent <= def.ThresholdPercent
	points := 0
	if passed {
		points = def.MaxPoints
	}

	return Result{
		ReferenceCode:    def.ReferenceCode,
		Title:            def.Title,
		Total:            in.Total,
		Nonconforming:    in.Nonconforming,
		Percent:          percent,
		ThresholdPercent: def.ThresholdPercent,
		MaxPoints:        def.MaxPoints,
		PointsAwarded:    points,
		Passed:           passed,
	}, nil
}
