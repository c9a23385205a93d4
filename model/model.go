package model

import (
	"fmt"
	"strings"
)

type Sex int

const (
	Male   Sex = 1
	Female Sex = 2
)

func (s Sex) Valid() bool {
	return s == Male || s == Female
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return fmt.Sprintf("Sex(%d)", int(s))
}

func (s Sex) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sex %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Sex) UnmarshalText(text []byte) error {
	parsed, err := ParseSex(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSex accepts "male"/"female" and the "boy"/"girl", "m"/"f" aliases.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "boy", "m":
		return Male, nil
	case "female", "girl", "f":
		return Female, nil
	}
	return 0, fmt.Errorf("unknown sex %q", s)
}

type Metric int

const (
	Height            Metric = 1
	Weight            Metric = 2
	HeadCircumference Metric = 3
)

var Metrics = []Metric{Height, Weight, HeadCircumference}

func (m Metric) Valid() bool {
	return m >= Height && m <= HeadCircumference
}

func (m Metric) String() string {
	switch m {
	case Height:
		return "height"
	case Weight:
		return "weight"
	case HeadCircumference:
		return "head_circumference"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Unit is the physical unit both the reference tables and measurements use.
func (m Metric) Unit() string {
	switch m {
	case Height, HeadCircumference:
		return "cm"
	case Weight:
		return "kg"
	}
	return ""
}

func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid metric %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "height", "length":
		return Height, nil
	case "weight":
		return Weight, nil
	case "head_circumference", "head-circumference", "head":
		return HeadCircumference, nil
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

type Percentile int

const (
	P3  Percentile = 3
	P15 Percentile = 15
	P50 Percentile = 50
	P85 Percentile = 85
	P97 Percentile = 97
)

// Percentiles lists the published reference percentiles in ascending order.
var Percentiles = [PercentileCount]Percentile{P3, P15, P50, P85, P97}

const PercentileCount = 5

// Index returns the position of p in Percentiles, or -1.
func (p Percentile) Index() int {
	for i, v := range Percentiles {
		if v == p {
			return i
		}
	}
	return -1
}

func (p Percentile) String() string {
	return fmt.Sprintf("P%d", int(p))
}

type ReferenceSample struct {
	AgeMonths float64 `json:"age_months"`
	Value     float64 `json:"value"`
}

// PercentileCurve samples are ordered by strictly increasing age and are
// not evenly spaced.
type PercentileCurve struct {
	Percentile Percentile        `json:"percentile"`
	Samples    []ReferenceSample `json:"samples"`
}

func (c *PercentileCurve) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.Samples) == 0
}

func (c *PercentileCurve) First() ReferenceSample {
	return c.Samples[0]
}

func (c *PercentileCurve) Last() ReferenceSample {
	return c.Samples[len(c.Samples)-1]
}

// ReferenceCurveSet is shared, read-only data. Callers must not modify the
// curves or their samples.
type ReferenceCurveSet struct {
	Sex    Sex                              `json:"sex"`
	Metric Metric                           `json:"metric"`
	Curves [PercentileCount]PercentileCurve `json:"curves"`
}

func (s *ReferenceCurveSet) Curve(p Percentile) *PercentileCurve {
	i := p.Index()
	if s == nil || i < 0 {
		return nil
	}
	return &s.Curves[i]
}

func (s *ReferenceCurveSet) DebugString() string {
	return fmt.Sprintf("sex: %v, metric: %v, samples: %v", s.Sex, s.Metric, len(s.Curves[0].Samples))
}

type MeasurementPoint struct {
	AgeMonths float64 `json:"age_months"`
	Value     float64 `json:"value"`
}
