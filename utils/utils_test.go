package utils

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, 63.15, FormatFloat(63.149999999, 3))
	assert.Equal(t, 1.23, FormatFloat(1.2345, 2))
	assert.Equal(t, 2.0, FormatFloat(1.5, 0))
	assert.True(t, math.IsNaN(FormatFloat(math.NaN(), 3)))
	assert.True(t, math.IsInf(FormatFloat(math.Inf(-1), 3), -1))
}

func TestDaysBetween(t *testing.T) {
	birth := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 31.0, DaysBetween(birth, birth.AddDate(0, 1, 0)))
	assert.Equal(t, 0.5, DaysBetween(birth, birth.Add(12*time.Hour)))
	assert.Equal(t, -1.0, DaysBetween(birth, birth.AddDate(0, 0, -1)))
}

func TestInitLogger(t *testing.T) {
	logger, err := InitLogger("debug", "console")
	require.NoError(t, err)
	assert.Same(t, logger, GetLogger(context.Background()))

	logger, err = InitLogger("nonsense", "json")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
	assert.True(t, logger.Core().Enabled(0))
}
