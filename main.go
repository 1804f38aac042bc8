package main

import (
	"log"
	"os"

	"dhtmon/config"
	"dhtmon/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Connect to the database and migrate models
	db, err := config.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	config.DB = db
	controllers.MigrateModels(db)

	// Set up Gin router with CORS configuration. Callers include browser
	// dashboards and microcontrollers, so the policy is permissive.
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	r.GET("/sensor-data", controllers.GetSensorData)
	r.POST("/login", controllers.Login)
	r.POST("/register", controllers.Register)
	r.GET("/thresholds", controllers.GetThresholds)
	r.GET("/threshold-device", controllers.GetDeviceThreshold)
	r.POST("/update-threshold", controllers.UpdateThreshold)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
