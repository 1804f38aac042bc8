package utils

import (
	"errors"
	"strconv"

	"dhtmon/models"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// NormalizeLimit parses the limit query parameter. Absent, unparsable or
// non-positive values fall back to the default; oversized values clamp
// to the maximum.
func NormalizeLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ThresholdRangeError returns a message describing the first threshold
// value outside [0,100], temperature first, or "" when both are valid.
func ThresholdRangeError(temp, humidity float64) string {
	if temp < 0 || temp > 100 {
		return "Temperature threshold must be between 0°C and 100°C"
	}
	if humidity < 0 || humidity > 100 {
		return "Humidity threshold must be between 0% and 100%"
	}
	return ""
}

// FallbackThreshold resolves a threshold lookup for the device endpoint,
// which must always answer with usable numbers: the stored pair on
// success, the defaults with status "default" when no row exists, and
// the defaults with status "error" on any store failure.
func FallbackThreshold(t models.Threshold, err error) (temp, humidity float64, status string) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultThresholdTemp, models.DefaultThresholdHumidity, "default"
		}
		return models.DefaultThresholdTemp, models.DefaultThresholdHumidity, "error"
	}
	return t.ThresholdTemp, t.ThresholdHumidity, "success"
}
