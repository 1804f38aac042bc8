package controllers

import (
	"net/http"

	"dhtmon/config"
	"dhtmon/models"
	"dhtmon/utils"

	"github.com/gin-gonic/gin"
)

// GetSensorData returns the most recent readings, oldest first, plus the
// total row count of the readings table.
func GetSensorData(c *gin.Context) {
	limit := utils.NormalizeLimit(c.Query("limit"))

	var totalCount int64
	if err := config.DB.Model(&models.SensorReading{}).Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database error: " + err.Error()})
		return
	}

	var records []models.SensorReading
	if err := config.DB.Order("timestamp desc").Limit(limit).Find(&records).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database error: " + err.Error()})
		return
	}

	// Fetched newest-first for the LIMIT, served oldest-first for charting.
	data := make([]gin.H, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		record := records[i]
		data = append(data, gin.H{
			"id":           record.ID,
			"temperature":  record.Temperature,
			"humidity":     record.Humidity,
			"timestamp":    record.Timestamp.Format("2006-01-02 15:04:05"),
			"relay_status": record.RelayStatus,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"data":          data,
		"count":         len(data),
		"total_records": totalCount,
		"limit":         limit,
	})
}
