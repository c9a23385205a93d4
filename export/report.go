package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/series"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatExcel Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatExcel:
		return f, nil
	case "excel":
		return FormatExcel, nil
	}
	return "", fmt.Errorf("%w: export format %q", common.ErrorInvalidValue, s)
}

// Row is one evaluated measurement, flattened for export.
type Row struct {
	RecordID   string           `json:"record_id,omitempty"`
	Time       time.Time        `json:"time"`
	AgeMonths  float64          `json:"age_months"`
	Value      float64          `json:"value"`
	Thresholds model.Thresholds `json:"thresholds"`
	Band       model.Band       `json:"band"`
	BandLabel  string           `json:"band_label"`
	ZScore     float64          `json:"z_score"`
	Percentile float64          `json:"percentile"`
}

type Report struct {
	Child       model.ChildProfile `json:"child"`
	Metric      model.Metric       `json:"metric"`
	Unit        string             `json:"unit"`
	GeneratedAt time.Time          `json:"generated_at"`
	Rows        []Row              `json:"rows"`
	Shifts      []model.BandShift  `json:"shifts"`
	Skipped     int                `json:"skipped"`
}

// NewReport flattens s. Numbers are rounded to valuePrecision decimals.
func NewReport(s *series.Series, generatedAt time.Time) *Report {
	report := &Report{
		Child:       s.Child,
		Metric:      s.Metric,
		Unit:        s.Metric.Unit(),
		GeneratedAt: generatedAt,
		Rows:        make([]Row, 0, len(s.Points)),
		Shifts:      s.Shifts,
		Skipped:     s.Skipped,
	}
	if report.Shifts == nil {
		report.Shifts = []model.BandShift{}
	}
	for _, point := range s.Points {
		c := point.Classification
		report.Rows = append(report.Rows, Row{
			RecordID:   point.RecordID,
			Time:       point.Time,
			AgeMonths:  round(c.Point.AgeMonths),
			Value:      round(c.Point.Value),
			Thresholds: roundThresholds(c.Thresholds),
			Band:       c.Band,
			BandLabel:  c.Band.Label(),
			ZScore:     round(c.ZScore),
			Percentile: round(c.Percentile),
		})
	}
	return report
}

func Write(w io.Writer, format Format, report *Report) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatCSV:
		return WriteCSV(w, report)
	case FormatExcel:
		return WriteExcel(w, report)
	}
	return fmt.Errorf("%w: export format %q", common.ErrorInvalidValue, format)
}
