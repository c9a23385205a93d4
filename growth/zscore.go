package growth

import (
	"github.com/uyouii/growth-percentiles/model"
	"gonum.org/v1/gonum/stat/distuv"
)

// percentileZScores[i] is the standard normal quantile of model.Percentiles[i].
var percentileZScores = func() [model.PercentileCount]float64 {
	var res [model.PercentileCount]float64
	for i, p := range model.Percentiles {
		res[i] = distuv.UnitNormal.Quantile(float64(p) / 100)
	}
	return res
}()

// EstimateZScore maps value onto the standard normal scale by interpolating
// linearly between the z-scores of the two thresholds that bracket it. Below
// p3 and above p97 the outermost segment is extended. This approximates the
// WHO LMS z-score using only the five published curves.
func EstimateZScore(t model.Thresholds, value float64) float64 {
	values := t.Values()
	z := percentileZScores

	i := 1
	for i < len(values)-1 && value > values[i] {
		i++
	}
	lower, upper := values[i-1], values[i]
	if upper == lower {
		return (z[i-1] + z[i]) / 2
	}
	return z[i-1] + (z[i]-z[i-1])*(value-lower)/(upper-lower)
}

// EstimatePercentile converts a z-score to a percentile in [0, 100].
func EstimatePercentile(zScore float64) float64 {
	return distuv.UnitNormal.CDF(zScore) * 100
}
