package reference

import "github.com/uyouii/growth-percentiles/model"

// WHO Child Growth Standards, 0-24 months. Length/height and weight are
// published monthly to 6 months and quarterly after, head circumference
// monthly to 3 months and then at 6, 9, 12, 18 and 24.
var (
	lengthWeightAges = []float64{0, 1, 2, 3, 4, 5, 6, 9, 12, 15, 18, 21, 24}
	headAges         = []float64{0, 1, 2, 3, 6, 9, 12, 18, 24}
)

type curveTable struct {
	sex    model.Sex
	metric model.Metric
	ages   []float64
	// values rows follow model.Percentiles order.
	values [model.PercentileCount][]float64
}

var whoTables = []curveTable{
	{
		sex: model.Male, metric: model.Height, ages: lengthWeightAges,
		values: [model.PercentileCount][]float64{
			{46.3, 50.8, 54.4, 57.3, 59.7, 61.7, 63.4, 67.7, 71.0, 74.0, 76.6, 79.1, 81.4},
			{48.0, 52.3, 55.8, 58.6, 61.0, 62.9, 64.6, 68.9, 72.3, 75.2, 77.8, 80.3, 82.7},
			{49.9, 54.0, 57.3, 60.0, 62.2, 64.1, 65.7, 70.0, 73.4, 76.3, 79.0, 81.5, 83.9},
			{51.8, 55.7, 58.9, 61.4, 63.5, 65.3, 66.9, 71.1, 74.5, 77.4, 80.1, 82.7, 85.1},
			{53.4, 57.2, 60.3, 62.7, 64.7, 66.5, 68.0, 72.2, 75.6, 78.6, 81.3, 83.9, 86.4},
		},
	},
	{
		sex: model.Female, metric: model.Height, ages: lengthWeightAges,
		values: [model.PercentileCount][]float64{
			{45.6, 49.8, 53.2, 55.9, 58.2, 60.1, 61.7, 65.8, 69.0, 71.8, 74.4, 76.7, 79.1},
			{47.2, 51.3, 54.5, 57.2, 59.3, 61.2, 62.8, 66.9, 70.1, 72.9, 75.5, 77.9, 80.2},
			{49.1, 53.0, 56.1, 58.7, 60.8, 62.6, 64.1, 68.2, 71.3, 74.1, 76.7, 79.1, 81.4},
			{51.0, 54.7, 57.7, 60.2, 62.2, 64.0, 65.5, 69.5, 72.6, 75.4, 78.0, 80.4, 82.7},
			{52.7, 56.2, 59.1, 61.5, 63.4, 65.2, 66.6, 70.5, 73.6, 76.4, 79.0, 81.4, 83.7},
		},
	},
	{
		sex: model.Male, metric: model.Weight, ages: lengthWeightAges,
		values: [model.PercentileCount][]float64{
			{2.5, 3.4, 4.3, 5.0, 5.6, 6.0, 6.4, 7.4, 8.1, 8.8, 9.4, 10.0, 10.5},
			{2.9, 3.9, 4.9, 5.7, 6.2, 6.7, 7.1, 8.2, 9.0, 9.8, 10.5, 11.2, 11.8},
			{3.3, 4.5, 5.6, 6.4, 7.0, 7.5, 7.9, 9.2, 10.1, 11.0, 11.8, 12.5, 13.2},
			{3.9, 5.1, 6.3, 7.2, 7.8, 8.4, 8.9, 10.3, 11.3, 12.3, 13.2, 14.1, 14.9},
			{4.3, 5.7, 7.0, 7.9, 8.6, 9.2, 9.7, 11.2, 12.3, 13.4, 14.4, 15.4, 16.3},
		},
	},
	{
		sex: model.Female, metric: model.Weight, ages: lengthWeightAges,
		values: [model.PercentileCount][]float64{
			{2.4, 3.2, 4.0, 4.6, 5.1, 5.5, 5.9, 6.8, 7.5, 8.2, 8.8, 9.3, 9.9},
			{2.7, 3.7, 4.5, 5.2, 5.7, 6.1, 6.5, 7.5, 8.3, 9.1, 9.8, 10.4, 11.0},
			{3.2, 4.2, 5.1, 5.9, 6.4, 6.9, 7.3, 8.5, 9.4, 10.3, 11.1, 11.8, 12.5},
			{3.7, 4.8, 5.8, 6.6, 7.2, 7.7, 8.2, 9.5, 10.5, 11.5, 12.4, 13.3, 14.1},
			{4.2, 5.4, 6.5, 7.4, 8.0, 8.6, 9.1, 10.5, 11.6, 12.7, 13.7, 14.7, 15.6},
		},
	},
	{
		sex: model.Male, metric: model.HeadCircumference, ages: headAges,
		values: [model.PercentileCount][]float64{
			{32.1, 35.1, 37.1, 38.5, 41.0, 42.8, 44.1, 45.8, 47.0},
			{33.1, 36.0, 37.9, 39.3, 41.7, 43.5, 44.8, 46.4, 47.6},
			{34.5, 37.3, 39.1, 40.5, 42.8, 44.5, 45.7, 47.2, 48.3},
			{35.8, 38.5, 40.3, 41.6, 43.8, 45.4, 46.6, 48.0, 49.0},
			{36.9, 39.5, 41.2, 42.4, 44.5, 46.0, 47.1, 48.4, 49.3},
		},
	},
	{
		sex: model.Female, metric: model.HeadCircumference, ages: headAges,
		values: [model.PercentileCount][]float64{
			{31.7, 34.6, 36.5, 37.9, 40.1, 41.8, 43.0, 44.6, 45.7},
			{32.7, 35.5, 37.3, 38.6, 40.8, 42.4, 43.6, 45.1, 46.2},
			{33.9, 36.6, 38.3, 39.6, 41.7, 43.2, 44.4, 45.8, 46.8},
			{35.2, 37.8, 39.4, 40.6, 42.6, 44.0, 45.1, 46.5, 47.4},
			{36.2, 38.7, 40.3, 41.4, 43.3, 44.7, 45.7, 47.0, 47.8},
		},
	},
}
