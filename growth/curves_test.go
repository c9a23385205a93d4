package growth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/reference"
)

func TestSampleCurves_FullRange(t *testing.T) {
	set := reference.WHO().CurveSet(model.Female, model.Height)
	points, err := SampleCurves(set, DefaultCurveStep)
	require.NoError(t, err)
	require.Len(t, points, 49)

	assert.Equal(t, 0.0, points[0].AgeMonths)
	assert.InDelta(t, 24.0, points[len(points)-1].AgeMonths, 1e-9)
	assert.Equal(t, 49.1, points[0].Thresholds.P50)
	assert.InDelta(t, 81.4, points[len(points)-1].Thresholds.P50, 1e-9)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].AgeMonths, points[i-1].AgeMonths)
		assert.GreaterOrEqual(t, points[i].Thresholds.P50, points[i-1].Thresholds.P50)
		assert.True(t, points[i].Thresholds.Ordered())
	}
}

func TestSampleCurvesBetween(t *testing.T) {
	set := reference.WHO().CurveSet(model.Male, model.HeadCircumference)

	points, err := SampleCurvesBetween(set, 3, 6, 1)
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.InDelta(t, 40.5+(42.8-40.5)/3, points[1].Thresholds.P50, 1e-9)

	points, err = SampleCurvesBetween(set, 5, 5, 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
}

func TestSampleCurves_InvalidInput(t *testing.T) {
	set := reference.WHO().CurveSet(model.Male, model.Weight)

	_, err := SampleCurves(set, 0)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = SampleCurvesBetween(set, 10, 2, 0.5)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	_, err = SampleCurves(nil, 0.5)
	assert.True(t, errors.Is(err, common.ErrorNoData))
}
