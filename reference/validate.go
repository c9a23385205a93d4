package reference

import (
	"fmt"
	"math"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"
)

// Validate checks one curve set: valid keys, five non-empty curves in
// percentile order on a shared age grid, strictly increasing non-negative
// ages, positive values, and p3 <= p15 <= p50 <= p85 <= p97 at every age.
// Because all curves share the grid, ordering at the samples implies
// ordering at every interpolated age.
func Validate(set *model.ReferenceCurveSet) error {
	if set == nil {
		return fmt.Errorf("%w: nil curve set", common.ErrorMalformedTable)
	}
	if !set.Sex.Valid() || !set.Metric.Valid() {
		return fmt.Errorf("%w: invalid key %v %v", common.ErrorMalformedTable, set.Sex, set.Metric)
	}

	var grid []float64
	for i, p := range model.Percentiles {
		curve := &set.Curves[i]
		if curve.Percentile != p {
			return malformed(set, "curve %d is %v, want %v", i, curve.Percentile, p)
		}
		if curve.IsEmpty() {
			return malformed(set, "%v curve is empty", p)
		}
		ages := make([]float64, len(curve.Samples))
		for j, sample := range curve.Samples {
			if math.IsNaN(sample.AgeMonths) || math.IsNaN(sample.Value) ||
				math.IsInf(sample.AgeMonths, 0) || math.IsInf(sample.Value, 0) {
				return malformed(set, "%v sample %d is not finite", p, j)
			}
			if sample.AgeMonths < 0 {
				return malformed(set, "%v sample %d has negative age %v", p, j, sample.AgeMonths)
			}
			if sample.Value <= 0 {
				return malformed(set, "%v sample %d has non-positive value %v", p, j, sample.Value)
			}
			if j > 0 && sample.AgeMonths <= curve.Samples[j-1].AgeMonths {
				return malformed(set, "%v ages not strictly increasing at sample %d", p, j)
			}
			ages[j] = sample.AgeMonths
		}
		if grid == nil {
			grid = ages
		} else if !floats.Equal(grid, ages) {
			return malformed(set, "%v curve is not on the shared age grid", p)
		}
	}

	for j, age := range grid {
		for i := 1; i < model.PercentileCount; i++ {
			lower, upper := set.Curves[i-1].Samples[j].Value, set.Curves[i].Samples[j].Value
			if upper < lower {
				return malformed(set, "%v > %v at %v months (%v > %v)",
					model.Percentiles[i-1], model.Percentiles[i], age, lower, upper)
			}
		}
	}
	return nil
}

// ValidateAll validates every set and reports all failures, including
// more than one set for the same sex and metric. Use multierr.Errors to
// list them.
func ValidateAll(sets ...*model.ReferenceCurveSet) error {
	var err error
	seen := make(map[setKey]bool, len(sets))
	for _, set := range sets {
		if verr := Validate(set); verr != nil {
			err = multierr.Append(err, verr)
			continue
		}
		key := setKey{sex: set.Sex, metric: set.Metric}
		if seen[key] {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate curve set for %v %v",
				common.ErrorMalformedTable, set.Sex, set.Metric))
		}
		seen[key] = true
	}
	return err
}

func malformed(set *model.ReferenceCurveSet, format string, args ...any) error {
	return fmt.Errorf("%w: %v %v: %s", common.ErrorMalformedTable, set.Sex, set.Metric, fmt.Sprintf(format, args...))
}
