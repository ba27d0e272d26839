package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/premiocnj/internal/indicator"
)

func result(code string, max, awarded int) indicator.Result {
	return indicator.Result{
		ReferenceCode: code,
		MaxPoints:     max,
		PointsAwarded: awarded,
		Passed:        awarded == max,
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		results []indicator.Result
		want    Summary
	}{
		{
			name: "empty",
			want: Summary{},
		},
		{
			name:    "one pass one fail",
			results: []indicator.Result{result("b", 20, 20), result("c", 20, 0)},
			want:    Summary{PointsPossible: 40, PointsObtained: 20, UtilizationPercent: 50, Evaluated: 2, Passed: 1, Failed: 1},
		},
		{
			name:    "all pass",
			results: []indicator.Result{result("b", 20, 20), result("c", 20, 20)},
			want:    Summary{PointsPossible: 40, PointsObtained: 40, UtilizationPercent: 100, Evaluated: 2, Passed: 2},
		},
		{
			name:    "all fail",
			results: []indicator.Result{result("b", 20, 0), result("c", 20, 0)},
			want:    Summary{PointsPossible: 40, PointsObtained: 0, UtilizationPercent: 0, Evaluated: 2, Failed: 2},
		},
		{
			name:    "duplicates are counted",
			results: []indicator.Result{result("b", 20, 20), result("b", 20, 0)},
			want:    Summary{PointsPossible: 40, PointsObtained: 20, UtilizationPercent: 50, Evaluated: 2, Passed: 1, Failed: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.results))
		})
	}
}

func TestAggregateNil(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, 0, s.PointsPossible)
	assert.Equal(t, 0, s.PointsObtained)
	assert.Equal(t, 0.0, s.UtilizationPercent)
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := result("b", 20, 20)
	b := result("c", 20, 0)
	c := result("x", 174, 174)

	want := Aggregate([]indicator.Result{a, b, c})
	perms := [][]indicator.Result{
		{a, c, b},
		{b, a, c},
		{b, c, a},
		{c, a, b},
		{c, b, a},
	}
	for _, p := range perms {
		assert.Equal(t, want, Aggregate(p))
	}
}

func TestAggregateResultSetDedup(t *testing.T) {
	set := indicator.NewResultSet()
	set.Put(result("b", 20, 0))
	set.Put(result("c", 20, 20))
	set.Put(result("b", 20, 20))

	s := Aggregate(set.Values())
	assert.Equal(t, 40, s.PointsPossible)
	assert.Equal(t, 40, s.PointsObtained)
	assert.Equal(t, 100.0, s.UtilizationPercent)
}

func TestMeetsTarget(t *testing.T) {
	s := Summary{PointsPossible: 40, PointsObtained: 20, UtilizationPercent: 50}
	assert.True(t, MeetsTarget(s, 50))
	assert.True(t, MeetsTarget(s, 0))
	assert.False(t, MeetsTarget(s, 50.01))
}
