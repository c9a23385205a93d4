package series

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/growth"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/utils"
	"go.uber.org/zap"
)

type Point struct {
	RecordID       string                     `json:"record_id,omitempty"`
	Time           time.Time                  `json:"time"`
	Classification model.GrowthClassification `json:"classification"`
}

func (p *Point) AgeMonths() float64 {
	return p.Classification.Point.AgeMonths
}

// Series is one metric of one child, ready to plot against the reference curves.
type Series struct {
	Child  model.ChildProfile  `json:"child"`
	Metric model.Metric        `json:"metric"`
	Points []Point             `json:"points"`
	// Curves spans the ages of Points, or the whole table when there are none.
	Curves []growth.CurvePoint `json:"curves"`
	Shifts []model.BandShift   `json:"shifts"`
	// Skipped counts records that did not carry the metric or could not be placed in time.
	Skipped int `json:"skipped"`
}

func (s *Series) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Points) == 0
}

func (s *Series) Latest() (Point, bool) {
	if s.IsEmpty() {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Build evaluates every record that carries metric, ordered by age at
// measurement. curveStep sets the resolution of the sampled reference curves;
// zero selects growth.DefaultCurveStep.
func Build(ctx context.Context, evaluator *growth.Evaluator, child model.ChildProfile,
	records []model.GrowthRecord, metric model.Metric, curveStep float64) (res *Series, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("series Build recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Stringer("metric", metric))
			res, err = nil, fmt.Errorf("build %v series: panic: %v", metric, r)
		}
	}()

	if evaluator == nil {
		evaluator = growth.Default()
	}
	if curveStep == 0 {
		curveStep = growth.DefaultCurveStep
	}

	set, err := evaluator.CurveSet(child.Sex, metric)
	if err != nil {
		return nil, err
	}
	if child.BirthDate.IsZero() {
		return nil, fmt.Errorf("%w: child has no birth date", common.ErrorInvalidValue)
	}

	res = &Series{
		Child:  child,
		Metric: metric,
		Points: []Point{},
	}

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		measure := record.Measure(metric)
		if !measure.Valid {
			res.Skipped++
			continue
		}

		age, err := AgeInMonths(child.BirthDate, record.Timestamp)
		if err != nil {
			logger.Warn("skip record measured before birth", zap.String("record_id", record.ID), zap.Error(err))
			res.Skipped++
			continue
		}

		classification, err := evaluator.Classify(child.Sex, metric, age, measure.Value)
		if err != nil {
			logger.Error("Classify failed", zap.String("record_id", record.ID), zap.Error(err))
			return nil, err
		}
		res.Points = append(res.Points, Point{
			RecordID:       record.ID,
			Time:           record.Timestamp,
			Classification: classification,
		})
	}

	sort.SliceStable(res.Points, func(i, j int) bool {
		return res.Points[i].AgeMonths() < res.Points[j].AgeMonths()
	})

	res.Curves, err = sampleCurves(set, res.Points, curveStep)
	if err != nil {
		logger.Error("SampleCurves failed", zap.Float64("step", curveStep), zap.Error(err))
		return nil, err
	}
	res.Shifts = DetectBandShifts(res.Points)

	logger.Debug("series built", zap.Stringer("metric", metric), zap.Int("points", len(res.Points)),
		zap.Int("skipped", res.Skipped), zap.Int("shifts", len(res.Shifts)))
	return res, nil
}

// sampleCurves evaluates the reference curves over the ages spanned by
// points, which must be ordered by age. Without points the whole published
// range is sampled.
func sampleCurves(set *model.ReferenceCurveSet, points []Point, step float64) ([]growth.CurvePoint, error) {
	if len(points) == 0 {
		return growth.SampleCurves(set, step)
	}
	return growth.SampleCurvesBetween(set, points[0].AgeMonths(), points[len(points)-1].AgeMonths(), step)
}

// DetectBandShifts reports each pair of consecutive points whose bands differ.
// points must be ordered by age.
func DetectBandShifts(points []Point) []model.BandShift {
	res := []model.BandShift{}
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].Classification, points[i].Classification
		if prev.Band == cur.Band {
			continue
		}
		shift := model.BandShift{
			From:        prev.Band,
			To:          cur.Band,
			FromAge:     prev.Point.AgeMonths,
			ToAge:       cur.Point.AgeMonths,
			ZScoreDelta: cur.ZScore - prev.ZScore,
			RecordID:    points[i].RecordID,
			Time:        points[i].Time,
		}
		if cur.Band > prev.Band {
			shift.ChangeType = model.IncreaseChange
		} else {
			shift.ChangeType = model.DecreaseChange
		}
		res = append(res, shift)
	}
	return res
}
