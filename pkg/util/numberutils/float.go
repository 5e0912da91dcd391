package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a float64.
func ToFloat64WithError(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// RoundHalfUp rounds to the nearest integer with halves going towards positive infinity,
// so 2.5 becomes 3 and -2.5 becomes -2.
func RoundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// IsFloatInRange checks if num is within the closed interval [min, max].
func IsFloatInRange(num, min, max float64) bool {
	return num >= min && num <= max
}
