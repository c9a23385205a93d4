package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/utils"
)

const valuePrecision = 3

var csvHeader = []string{
	"age_months", "value", "unit", "p3", "p15", "p50", "p85", "p97",
	"band", "band_label", "z_score", "percentile", "timestamp", "record_id",
}

func WriteJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func WriteCSV(w io.Writer, report *Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{
			formatNumber(row.AgeMonths),
			formatNumber(row.Value),
			report.Unit,
		}
		for _, v := range row.Thresholds.Values() {
			record = append(record, formatNumber(v))
		}
		record = append(record,
			row.Band.String(),
			row.BandLabel,
			formatNumber(row.ZScore),
			formatNumber(row.Percentile),
			row.Time.Format(time.RFC3339),
			row.RecordID,
		)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func round(f float64) float64 {
	return utils.FormatFloat(f, valuePrecision)
}

func roundThresholds(t model.Thresholds) model.Thresholds {
	values := t.Values()
	for i := range values {
		values[i] = round(values[i])
	}
	return model.NewThresholds(values)
}
