package controllers

import (
	"dhtmon/config"
	"dhtmon/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.User{}, &models.SensorReading{}, &models.Threshold{})
}
