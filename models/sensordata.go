package models

import "time"

// SensorReading is one periodic DHT reading. Rows are inserted by the
// device-side ingestion process; this API only reads them.
type SensorReading struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Timestamp   time.Time `json:"timestamp"`
	RelayStatus string    `json:"relay_status"`
}

// TableName maps onto the legacy readings table.
func (SensorReading) TableName() string {
	return "tbl_dht"
}
