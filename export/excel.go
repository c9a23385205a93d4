package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	growthSheet = "Growth"
	shiftSheet  = "Shifts"
)

var shiftHeader = []string{"from_age_months", "to_age_months", "from", "to", "change", "z_score_delta", "record_id"}

// WriteExcel writes the report as a workbook with a "Growth" sheet of
// evaluated measurements and a "Shifts" sheet of band changes.
func WriteExcel(w io.Writer, report *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	// the default sheet stays first and active
	if err := f.SetSheetName("Sheet1", growthSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(shiftSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeader(f, growthSheet, csvHeader, headerStyle); err != nil {
		return err
	}
	for i, row := range report.Rows {
		values := []any{row.AgeMonths, row.Value, report.Unit}
		for _, v := range row.Thresholds.Values() {
			values = append(values, v)
		}
		values = append(values, row.Band.String(), row.BandLabel, row.ZScore, row.Percentile,
			row.Time.Format(time.RFC3339), row.RecordID)
		if err := writeRow(f, growthSheet, i+2, values); err != nil {
			return err
		}
	}

	if err := writeHeader(f, shiftSheet, shiftHeader, headerStyle); err != nil {
		return err
	}
	for i, shift := range report.Shifts {
		values := []any{
			round(shift.FromAge), round(shift.ToAge), shift.From.Label(), shift.To.Label(),
			shift.ChangeType.String(), round(shift.ZScoreDelta), shift.RecordID,
		}
		if err := writeRow(f, shiftSheet, i+2, values); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", last, 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
