package controllers

import (
	"net/http"
	"strconv"
	"time"

	"dhtmon/config"
	"dhtmon/models"
	"dhtmon/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GetThresholds lists every threshold row ordered by sensor id. An empty
// table is seeded with the default row first, so a caller never sees an
// empty list on a fresh install.
func GetThresholds(c *gin.Context) {
	thresholds, err := listThresholds()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database error: " + err.Error()})
		return
	}

	if len(thresholds) == 0 {
		seed := models.DefaultThreshold()
		// DoNothing keeps a concurrent first read from inserting twice.
		if err := config.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database error: " + err.Error()})
			return
		}
		if thresholds, err = listThresholds(); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database error: " + err.Error()})
			return
		}
	}

	data := make([]gin.H, 0, len(thresholds))
	for _, t := range thresholds {
		data = append(data, gin.H{
			"sensor_id":          t.SensorID,
			"sensor_name":        t.SensorName,
			"threshold_temp":     t.ThresholdTemp,
			"threshold_humidity": t.ThresholdHumidity,
			"timestamp":          t.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func listThresholds() ([]models.Threshold, error) {
	var thresholds []models.Threshold
	err := config.DB.Order("sensor_id").Find(&thresholds).Error
	return thresholds, err
}

// GetDeviceThreshold serves the reduced pair for the relay controller.
// The device cannot handle an error response, so every outcome answers
// with numbers it can act on.
func GetDeviceThreshold(c *gin.Context) {
	var t models.Threshold
	err := config.DB.Where("sensor_id = ?", models.DefaultSensorID).First(&t).Error

	temp, humidity, status := utils.FallbackThreshold(t, err)
	c.JSON(http.StatusOK, gin.H{
		"temp_threshold":     temp,
		"humidity_threshold": humidity,
		"status":             status,
	})
}

// UpdateThreshold validates and upserts one sensor's threshold pair in a
// single statement, keyed on sensor id.
func UpdateThreshold(c *gin.Context) {
	sensorID, err := strconv.Atoi(c.DefaultPostForm("sensor_id", strconv.Itoa(models.DefaultSensorID)))
	if err != nil {
		sensorID = models.DefaultSensorID
	}
	temp := parseFloatForm(c, "threshold_temp", models.DefaultThresholdTemp)
	humidity := parseFloatForm(c, "threshold_humidity", models.DefaultThresholdHumidity)

	if msg := utils.ThresholdRangeError(temp, humidity); msg != "" {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": msg})
		return
	}

	threshold := models.Threshold{
		SensorID:          sensorID,
		SensorName:        models.DefaultSensorName,
		ThresholdTemp:     temp,
		ThresholdHumidity: humidity,
		Timestamp:         time.Now(),
	}
	err = config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sensor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"threshold_temp", "threshold_humidity", "timestamp"}),
	}).Create(&threshold).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             "success",
		"message":            "Threshold updated successfully",
		"sensor_id":          sensorID,
		"threshold_temp":     temp,
		"threshold_humidity": humidity,
	})
}

func parseFloatForm(c *gin.Context, field string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(c.PostForm(field), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
