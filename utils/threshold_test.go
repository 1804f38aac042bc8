package utils

import (
	"errors"
	"testing"

	"dhtmon/models"

	"gorm.io/gorm"
)

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 50},
		{"abc", 50},
		{"0", 50},
		{"-1", 50},
		{"1", 1},
		{"50", 50},
		{"500", 500},
		{"501", 500},
		{"100000", 500},
	}
	for _, tc := range cases {
		if got := NormalizeLimit(tc.raw); got != tc.want {
			t.Errorf("NormalizeLimit(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestThresholdRangeError(t *testing.T) {
	tempMsg := "Temperature threshold must be between 0°C and 100°C"
	humidityMsg := "Humidity threshold must be between 0% and 100%"

	cases := []struct {
		temp, humidity float64
		want           string
	}{
		{0, 0, ""},
		{100, 100, ""},
		{26, 70, ""},
		{-0.01, 50, tempMsg},
		{100.01, 50, tempMsg},
		{50, -0.01, humidityMsg},
		{50, 100.01, humidityMsg},
		{-5, -5, tempMsg}, // temperature wins when both are invalid
	}
	for _, tc := range cases {
		if got := ThresholdRangeError(tc.temp, tc.humidity); got != tc.want {
			t.Errorf("ThresholdRangeError(%v, %v) = %q, want %q", tc.temp, tc.humidity, got, tc.want)
		}
	}
}

func TestFallbackThreshold(t *testing.T) {
	stored := models.Threshold{ThresholdTemp: 31.5, ThresholdHumidity: 82}

	temp, humidity, status := FallbackThreshold(stored, nil)
	if temp != 31.5 || humidity != 82 || status != "success" {
		t.Fatalf("success case = %v, %v, %q", temp, humidity, status)
	}

	temp, humidity, status = FallbackThreshold(models.Threshold{}, gorm.ErrRecordNotFound)
	if temp != 26.0 || humidity != 70.0 || status != "default" {
		t.Fatalf("not-found case = %v, %v, %q", temp, humidity, status)
	}

	temp, humidity, status = FallbackThreshold(models.Threshold{}, errors.New("connection refused"))
	if temp != 26.0 || humidity != 70.0 || status != "error" {
		t.Fatalf("store-error case = %v, %v, %q", temp, humidity, status)
	}
}
