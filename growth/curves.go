package growth

import (
	"fmt"
	"math"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"gonum.org/v1/gonum/floats"
)

type CurvePoint struct {
	AgeMonths  float64          `json:"age_months"`
	Thresholds model.Thresholds `json:"thresholds"`
}

// SampleCurves evaluates set over its whole published age range.
func SampleCurves(set *model.ReferenceCurveSet, step float64) ([]CurvePoint, error) {
	if set == nil || set.Curves[0].IsEmpty() {
		return nil, common.ErrorNoData
	}
	curve := &set.Curves[0]
	return SampleCurvesBetween(set, curve.First().AgeMonths, curve.Last().AgeMonths, step)
}

// SampleCurvesBetween evaluates set at evenly spaced ages from `from` to `to`
// inclusive, at most step months apart.
func SampleCurvesBetween(set *model.ReferenceCurveSet, from, to, step float64) ([]CurvePoint, error) {
	if set == nil {
		return nil, common.ErrorNoData
	}
	if !finite(step) || step < MinCurveStep {
		return nil, fmt.Errorf("%w: step %v", common.ErrorInvalidValue, step)
	}
	if !finite(from) || !finite(to) || to < from {
		return nil, fmt.Errorf("%w: age range [%v, %v]", common.ErrorInvalidValue, from, to)
	}

	if to == from {
		return []CurvePoint{{AgeMonths: from, Thresholds: Thresholds(set, from)}}, nil
	}

	n := int(math.Ceil((to-from)/step)) + 1
	ages := floats.Span(make([]float64, n), from, to)

	res := make([]CurvePoint, 0, n)
	for _, age := range ages {
		res = append(res, CurvePoint{AgeMonths: age, Thresholds: Thresholds(set, age)})
	}
	return res, nil
}
