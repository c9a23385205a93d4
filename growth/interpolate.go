package growth

import (
	"math"
	"sort"

	"github.com/uyouii/growth-percentiles/model"
)

// Interpolate evaluates curve at ageMonths by linear interpolation between
// the two published samples that bracket it. Published ages return the
// sample value unchanged. Ages outside the table are clamped to the first or
// last sample; the curve is never extrapolated. An empty curve or a NaN age
// yields NaN.
func Interpolate(curve *model.PercentileCurve, ageMonths float64) float64 {
	if curve.IsEmpty() || math.IsNaN(ageMonths) {
		return math.NaN()
	}
	samples := curve.Samples

	first, last := samples[0], samples[len(samples)-1]
	if ageMonths <= first.AgeMonths {
		return first.Value
	}
	if ageMonths >= last.AgeMonths {
		return last.Value
	}

	// samples are not evenly spaced, so search rather than index by age.
	i := sort.Search(len(samples), func(i int) bool {
		return samples[i].AgeMonths >= ageMonths
	})
	upper := samples[i]
	if upper.AgeMonths == ageMonths {
		return upper.Value
	}
	lower := samples[i-1]
	return lower.Value + (upper.Value-lower.Value)*(ageMonths-lower.AgeMonths)/(upper.AgeMonths-lower.AgeMonths)
}

// Thresholds interpolates all five percentile curves of set at ageMonths.
func Thresholds(set *model.ReferenceCurveSet, ageMonths float64) model.Thresholds {
	var values [model.PercentileCount]float64
	for i := range set.Curves {
		values[i] = Interpolate(&set.Curves[i], ageMonths)
	}
	return model.NewThresholds(values)
}
