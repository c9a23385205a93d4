package reference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"go.uber.org/multierr"
)

func TestWHO_AllCombinationsPresent(t *testing.T) {
	store := WHO()
	require.Len(t, store.Sets(), 6)

	for _, sex := range []model.Sex{model.Male, model.Female} {
		for _, metric := range model.Metrics {
			set := store.CurveSet(sex, metric)
			require.NotNil(t, set, "%v %v", sex, metric)
			assert.Equal(t, sex, set.Sex)
			assert.Equal(t, metric, set.Metric)
			for i, p := range model.Percentiles {
				assert.Equal(t, p, set.Curves[i].Percentile)
				assert.Equal(t, 0.0, set.Curves[i].First().AgeMonths)
				assert.Equal(t, 24.0, set.Curves[i].Last().AgeMonths)
			}
		}
	}
}

func TestWHO_PublishedAgeGrids(t *testing.T) {
	store := WHO()
	height := store.CurveSet(model.Male, model.Height).Curve(model.P50)
	require.Len(t, height.Samples, 13)
	assert.Equal(t, model.ReferenceSample{AgeMonths: 4, Value: 62.2}, height.Samples[4])
	assert.Equal(t, model.ReferenceSample{AgeMonths: 9, Value: 70.0}, height.Samples[7])

	head := store.CurveSet(model.Female, model.HeadCircumference).Curve(model.P97)
	require.Len(t, head.Samples, 9)
	assert.Equal(t, model.ReferenceSample{AgeMonths: 6, Value: 43.3}, head.Samples[4])

	weight := store.CurveSet(model.Male, model.Weight)
	assert.Equal(t, 3.3, weight.Curve(model.P50).First().Value)
	assert.Equal(t, 2.5, weight.Curve(model.P3).First().Value)
}

func TestWHO_SharedInstance(t *testing.T) {
	assert.Same(t, WHO(), WHO())
	assert.Same(t, WHO().CurveSet(model.Female, model.Weight), WHO().CurveSet(model.Female, model.Weight))
}

func TestStore_UnknownCombination(t *testing.T) {
	assert.Nil(t, WHO().CurveSet(model.Sex(0), model.Weight))
	assert.Nil(t, WHO().CurveSet(model.Male, model.Metric(42)))

	var store *Store
	assert.Nil(t, store.CurveSet(model.Male, model.Weight))
}

func TestNewStore_CopiesInput(t *testing.T) {
	set := testSet()
	store, err := NewStore(set)
	require.NoError(t, err)

	set.Curves[2].Samples[0].Value = 999
	assert.Equal(t, 3.0, store.CurveSet(model.Male, model.Weight).Curve(model.P50).First().Value)
}

func TestNewStore_RejectsDuplicates(t *testing.T) {
	_, err := NewStore(testSet(), testSet())
	assert.True(t, errors.Is(err, common.ErrorMalformedTable))
}

func TestNewStore_ReportsEveryMalformedSet(t *testing.T) {
	unordered := testSet()
	unordered.Curves[0].Samples[1].AgeMonths = 0

	negative := testSet()
	negative.Sex = model.Female
	negative.Curves[3].Samples[2].Value = -4

	_, err := NewStore(unordered, negative, testSet())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorMalformedTable))

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "male weight: P3 ages not strictly increasing at sample 1")
	assert.Contains(t, errs[1].Error(), "female weight: P85 sample 2 has non-positive value -4")
}

func TestCheckWHO(t *testing.T) {
	store, err := CheckWHO()
	require.NoError(t, err)
	assert.Len(t, store.Sets(), 6)
	assert.NotSame(t, WHO(), store)
}

func TestBuildStore_ReportsAllTableProblems(t *testing.T) {
	tables := []curveTable{whoTables[0], whoTables[1], whoTables[2]}

	crossed := whoTables[3]
	crossed.values[1] = append([]float64(nil), crossed.values[1]...)
	crossed.values[1][0] = 99
	tables = append(tables, crossed)

	short := whoTables[4]
	short.ages = []float64{0, 1, 1}
	tables = append(tables, short)

	_, err := buildStore(tables)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "P15 > P50 at 0 months")
	assert.Contains(t, errs[1].Error(), "not strictly increasing")

	_, err = buildStore(whoTables[:4])
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "missing female head_circumference")
}

func testSet() *model.ReferenceCurveSet {
	set := &model.ReferenceCurveSet{Sex: model.Male, Metric: model.Weight}
	for i, p := range model.Percentiles {
		base := float64(i + 1)
		set.Curves[i] = model.PercentileCurve{
			Percentile: p,
			Samples: []model.ReferenceSample{
				{AgeMonths: 0, Value: base},
				{AgeMonths: 1, Value: base + 1},
				{AgeMonths: 3, Value: base + 2},
			},
		}
	}
	return set
}
