package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/records"
	"github.com/uyouii/growth-percentiles/series"
	"github.com/xuri/excelize/v2"
)

var generatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func weightReport(t *testing.T) *Report {
	t.Helper()
	ctx := context.Background()
	dataset, err := records.NewFileSource(filepath.Join("..", "testdata", "leo.json")).Load(ctx)
	require.NoError(t, err)
	s, err := series.Build(ctx, nil, dataset.Child, dataset.Records, model.Weight, 0)
	require.NoError(t, err)
	return NewReport(s, generatedAt)
}

func TestNewReport(t *testing.T) {
	report := weightReport(t)
	assert.Equal(t, "kg", report.Unit)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Rows, 3)

	first := report.Rows[0]
	assert.Equal(t, "r1", first.RecordID)
	assert.Equal(t, 3.3, first.Value)
	assert.Equal(t, model.Normal, first.Band)
	assert.Equal(t, "normal", first.BandLabel)
	assert.Equal(t, model.BelowNormal, report.Rows[1].Band)
	require.Len(t, report.Shifts, 2)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, weightReport(t)))

	var decoded struct {
		Metric string `json:"metric"`
		Child  struct {
			Sex string `json:"sex"`
		} `json:"child"`
		Rows []struct {
			Band string `json:"band"`
		} `json:"rows"`
		Shifts []struct {
			ChangeType string `json:"change_type"`
		} `json:"shifts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "weight", decoded.Metric)
	assert.Equal(t, "male", decoded.Child.Sex)
	require.Len(t, decoded.Rows, 3)
	assert.Equal(t, "below_normal", decoded.Rows[1].Band)
	require.Len(t, decoded.Shifts, 2)
	assert.Equal(t, "decrease", decoded.Shifts[0].ChangeType)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, weightReport(t)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "3.3", rows[1][1])
	assert.Equal(t, "kg", rows[1][2])
	assert.Equal(t, "2.515", rows[1][3])
	assert.Equal(t, "normal", rows[1][8])
	assert.Equal(t, "normal", rows[1][9])
	assert.Equal(t, "below_normal", rows[2][8])
	assert.Equal(t, "below normal range", rows[2][9])
	assert.Equal(t, "r1", rows[1][13])
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatExcel, weightReport(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{growthSheet, shiftSheet}, f.GetSheetList())

	rows, err := f.GetRows(growthSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "below_normal", rows[2][8])
	assert.Equal(t, "below normal range", rows[2][9])

	shifts, err := f.GetRows(shiftSheet)
	require.NoError(t, err)
	require.Len(t, shifts, 3)
	assert.Equal(t, shiftHeader, shifts[0])
	assert.Equal(t, "decrease", shifts[1][4])
}

func TestWriteExcel_MatchesCSVColumns(t *testing.T) {
	report := weightReport(t)

	var csvBuf, excelBuf bytes.Buffer
	require.NoError(t, Write(&csvBuf, FormatCSV, report))
	require.NoError(t, Write(&excelBuf, FormatExcel, report))

	csvRows, err := csv.NewReader(&csvBuf).ReadAll()
	require.NoError(t, err)

	f, err := excelize.OpenReader(&excelBuf)
	require.NoError(t, err)
	defer f.Close()
	excelRows, err := f.GetRows(growthSheet)
	require.NoError(t, err)

	require.Len(t, excelRows, len(csvRows))
	bandCol, labelCol := 8, 9
	assert.Equal(t, "band", csvRows[0][bandCol])
	assert.Equal(t, "band_label", csvRows[0][labelCol])
	for i := range csvRows {
		assert.Equal(t, csvRows[i][bandCol], excelRows[i][bandCol], "row %d", i)
		assert.Equal(t, csvRows[i][labelCol], excelRows[i][labelCol], "row %d", i)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "CSV": FormatCSV, "xlsx": FormatExcel, "excel": FormatExcel} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("pdf")
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	err = Write(&bytes.Buffer{}, Format("pdf"), &Report{})
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}
