package series

import (
	"fmt"
	"time"

	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/utils"
)

// AgeInMonths returns the age at `at` of a child born at birth.
func AgeInMonths(birth, at time.Time) (float64, error) {
	if birth.IsZero() {
		return 0, fmt.Errorf("%w: missing birth date", common.ErrorInvalidValue)
	}
	days := utils.DaysBetween(birth, at)
	if days < 0 {
		return 0, fmt.Errorf("%w: measured at %v before birth %v", common.ErrorInvalidValue,
			at.Format(time.RFC3339), birth.Format(time.RFC3339))
	}
	return days / utils.DaysPerMonth, nil
}
