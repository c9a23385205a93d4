package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Measure is an optional measurement. A zero Measure means "not measured",
// which is distinct from a measured value of zero.
type Measure struct {
	Value float64
	Valid bool
}

func Measured(v float64) Measure {
	return Measure{Value: v, Valid: true}
}

func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Measure{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Measured(v)
	return nil
}

type GrowthRecord struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	Height            Measure   `json:"height"`
	Weight            Measure   `json:"weight"`
	HeadCircumference Measure   `json:"head_circumference"`
	FootLength        Measure   `json:"foot_length"`
	Note              string    `json:"note,omitempty"`
}

// Measure returns the record's value for a core metric.
func (r *GrowthRecord) Measure(metric Metric) Measure {
	switch metric {
	case Height:
		return r.Height
	case Weight:
		return r.Weight
	case HeadCircumference:
		return r.HeadCircumference
	}
	return Measure{}
}

func (r *GrowthRecord) IsEmpty() bool {
	return !r.Height.Valid && !r.Weight.Valid && !r.HeadCircumference.Valid && !r.FootLength.Valid
}

type ChildProfile struct {
	Name      string    `json:"name"`
	Sex       Sex       `json:"sex"`
	BirthDate time.Time `json:"birth_date"`
}
