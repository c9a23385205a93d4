package growth

import (
	"fmt"
	"math"
	"sync"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/reference"
)

// CurveSource supplies the reference curves for a sex and metric.
// *reference.Store implements it.
type CurveSource interface {
	CurveSet(sex model.Sex, metric model.Metric) *model.ReferenceCurveSet
}

// Evaluator classifies measurements against a CurveSource. It holds no
// mutable state and may be shared between goroutines.
type Evaluator struct {
	source CurveSource
}

func NewEvaluator(source CurveSource) *Evaluator {
	return &Evaluator{source: source}
}

var (
	defaultOnce      sync.Once
	defaultEvaluator *Evaluator
)

// Default returns an Evaluator over the WHO reference curves.
func Default() *Evaluator {
	defaultOnce.Do(func() {
		defaultEvaluator = NewEvaluator(reference.WHO())
	})
	return defaultEvaluator
}

// Classify evaluates value with the WHO reference curves.
func Classify(sex model.Sex, metric model.Metric, ageMonths, value float64) (model.GrowthClassification, error) {
	return Default().Classify(sex, metric, ageMonths, value)
}

func (e *Evaluator) CurveSet(sex model.Sex, metric model.Metric) (*model.ReferenceCurveSet, error) {
	if !sex.Valid() || !metric.Valid() {
		return nil, fmt.Errorf("%w: sex %v, metric %v", common.ErrorInvalidValue, sex, metric)
	}
	set := e.source.CurveSet(sex, metric)
	if set == nil {
		return nil, fmt.Errorf("%w: no reference curves for %v %v", common.ErrorNoData, sex, metric)
	}
	return set, nil
}

// Thresholds returns the five percentile values for sex and metric at
// ageMonths. Ages outside the published range, infinite ones included, are
// clamped to the first or last sample.
func (e *Evaluator) Thresholds(sex model.Sex, metric model.Metric, ageMonths float64) (model.Thresholds, error) {
	if math.IsNaN(ageMonths) {
		return model.Thresholds{}, fmt.Errorf("%w: age %v", common.ErrorInvalidValue, ageMonths)
	}
	set, err := e.CurveSet(sex, metric)
	if err != nil {
		return model.Thresholds{}, err
	}
	return Thresholds(set, ageMonths), nil
}

// Classify interpolates the five curves at ageMonths and places value in a
// band. A value equal to a threshold belongs to the band nearer the median.
func (e *Evaluator) Classify(sex model.Sex, metric model.Metric, ageMonths, value float64) (model.GrowthClassification, error) {
	if !finite(value) {
		return model.GrowthClassification{}, fmt.Errorf("%w: measured value %v", common.ErrorInvalidValue, value)
	}
	thresholds, err := e.Thresholds(sex, metric, ageMonths)
	if err != nil {
		return model.GrowthClassification{}, err
	}

	zScore := EstimateZScore(thresholds, value)
	return model.GrowthClassification{
		Sex:        sex,
		Metric:     metric,
		Point:      model.MeasurementPoint{AgeMonths: ageMonths, Value: value},
		Thresholds: thresholds,
		Band:       ClassifyBand(thresholds, value),
		ZScore:     zScore,
		Percentile: EstimatePercentile(zScore),
	}, nil
}

func ClassifyBand(t model.Thresholds, value float64) model.Band {
	switch {
	case value < t.P3:
		return model.BelowNormal
	case value < t.P15:
		return model.LowNormal
	case value <= t.P85:
		return model.Normal
	case value <= t.P97:
		return model.HighNormal
	default:
		return model.AboveNormal
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
