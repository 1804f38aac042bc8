package models

import "time"

// Defaults applied when a sensor has no stored threshold yet. Shared by
// the list, device, and update endpoints so the paths cannot drift.
const (
	DefaultSensorID          = 1
	DefaultSensorName        = "dht11"
	DefaultThresholdTemp     = 26.0
	DefaultThresholdHumidity = 70.0
)

// Threshold is the per-sensor alert boundary consumed by the external
// relay-control process. At most one row per sensor.
type Threshold struct {
	SensorID          int       `json:"sensor_id" gorm:"primaryKey;autoIncrement:false"`
	SensorName        string    `json:"sensor_name"`
	ThresholdTemp     float64   `json:"threshold_temp"`
	ThresholdHumidity float64   `json:"threshold_humidity"`
	Timestamp         time.Time `json:"timestamp"`
}

// TableName maps onto the legacy threshold table.
func (Threshold) TableName() string {
	return "tbl_threshold_relay"
}

// DefaultThreshold returns the row seeded on first read.
func DefaultThreshold() Threshold {
	return Threshold{
		SensorID:          DefaultSensorID,
		SensorName:        DefaultSensorName,
		ThresholdTemp:     DefaultThresholdTemp,
		ThresholdHumidity: DefaultThresholdHumidity,
		Timestamp:         time.Now(),
	}
}
