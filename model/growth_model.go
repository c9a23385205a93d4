package model

import (
	"fmt"
	"time"
)

type Band int

const (
	BelowNormal Band = 1
	LowNormal   Band = 2
	Normal      Band = 3
	HighNormal  Band = 4
	AboveNormal Band = 5
)

func (b Band) Valid() bool {
	return b >= BelowNormal && b <= AboveNormal
}

// Label is the text shown as growth evaluation feedback.
func (b Band) Label() string {
	switch b {
	case BelowNormal:
		return "below normal range"
	case LowNormal:
		return "low-normal"
	case Normal:
		return "normal"
	case HighNormal:
		return "high-normal"
	case AboveNormal:
		return "above normal range"
	}
	return ""
}

func (b Band) String() string {
	switch b {
	case BelowNormal:
		return "below_normal"
	case LowNormal:
		return "low_normal"
	case Normal:
		return "normal"
	case HighNormal:
		return "high_normal"
	case AboveNormal:
		return "above_normal"
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

func (b Band) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid band %d", int(b))
	}
	return []byte(b.String()), nil
}

func (b *Band) UnmarshalText(text []byte) error {
	for v := BelowNormal; v <= AboveNormal; v++ {
		if v.String() == string(text) {
			*b = v
			return nil
		}
	}
	return fmt.Errorf("unknown band %q", string(text))
}

// Thresholds holds the five percentile curves evaluated at one age.
type Thresholds struct {
	P3  float64 `json:"p3"`
	P15 float64 `json:"p15"`
	P50 float64 `json:"p50"`
	P85 float64 `json:"p85"`
	P97 float64 `json:"p97"`
}

func NewThresholds(values [PercentileCount]float64) Thresholds {
	return Thresholds{P3: values[0], P15: values[1], P50: values[2], P85: values[3], P97: values[4]}
}

func (t Thresholds) Values() [PercentileCount]float64 {
	return [PercentileCount]float64{t.P3, t.P15, t.P50, t.P85, t.P97}
}

func (t Thresholds) Get(p Percentile) (float64, bool) {
	i := p.Index()
	if i < 0 {
		return 0, false
	}
	return t.Values()[i], true
}

// Ordered reports whether p3 <= p15 <= p50 <= p85 <= p97.
func (t Thresholds) Ordered() bool {
	values := t.Values()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

type GrowthClassification struct {
	Sex        Sex              `json:"sex"`
	Metric     Metric           `json:"metric"`
	Point      MeasurementPoint `json:"point"`
	Thresholds Thresholds       `json:"thresholds"`
	Band       Band             `json:"band"`
	// ZScore and Percentile are estimated from the five curves, not from LMS parameters.
	ZScore     float64 `json:"z_score"`
	Percentile float64 `json:"percentile"`
}

// OnTrack reports whether the measurement is within the normal band around the median.
func (c *GrowthClassification) OnTrack() bool {
	return c.Band == Normal
}

type ChangeType int

const (
	IncreaseChange ChangeType = 1
	DecreaseChange ChangeType = 2
)

func (c ChangeType) String() string {
	switch c {
	case IncreaseChange:
		return "increase"
	case DecreaseChange:
		return "decrease"
	}
	return fmt.Sprintf("ChangeType(%d)", int(c))
}

func (c ChangeType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// BandShift marks two consecutive measurements that fall in different bands.
type BandShift struct {
	ChangeType  ChangeType `json:"change_type"`
	From        Band       `json:"from"`
	To          Band       `json:"to"`
	FromAge     float64    `json:"from_age_months"`
	ToAge       float64    `json:"to_age_months"`
	ZScoreDelta float64    `json:"z_score_delta"`
	RecordID    string     `json:"record_id,omitempty"`
	Time        time.Time  `json:"time"`
}
