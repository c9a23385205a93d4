package utils

import (
	"math"
	"time"
)

// DaysPerMonth is the average Gregorian month length used by the WHO
// standards to convert age in days to age in months.
const DaysPerMonth = 30.4375

// DaysBetween returns the fractional number of days from `from` to `to`,
// negative when `to` is earlier.
func DaysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow10(int(round))
	return math.Round(f*scale) / scale
}
