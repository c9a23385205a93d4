package growth

const (
	// DefaultCurveStep is the sampling resolution, in months, used when
	// rendering the reference curves.
	DefaultCurveStep = 0.5

	// MinCurveStep bounds the number of points SampleCurves produces.
	MinCurveStep = 0.01
)
