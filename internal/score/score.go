// Package score folds indicator results into award totals.
package score

import "github.com/dshills/premiocnj/internal/indicator"

// Summary holds the totals for one report cycle.
type Summary struct {
	PointsPossible     int     `json:"points_possible"`
	PointsObtained     int     `json:"points_obtained"`
	UtilizationPercent float64 `json:"utilization_percent"`
	Evaluated          int     `json:"evaluated"`
	Passed             int     `json:"passed"`
	Failed             int     `json:"failed"`
}

// Aggregate sums points over exactly the given results. Every element is
// counted, so callers that may hold several results for one reference code
// should pass indicator.ResultSet.Values. Utilization is 0 when nothing was
// possible.
func Aggregate(results []indicator.Result) Summary {
	var s Summary
	for _, r := range results {
		s.Evaluated++
		s.PointsPossible += r.MaxPoints
		s.PointsObtained += r.PointsAwarded
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	if s.PointsPossible > 0 {
		s.UtilizationPercent = float64(s.PointsObtained) / float64(s.PointsPossible) * 100
	}
	return s
}

// MeetsTarget reports whether utilization reaches minUtilization percent.
func MeetsTarget(s Summary, minUtilization float64) bool {
	return s.UtilizationPercent >= minUtilization
}
