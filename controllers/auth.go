package controllers

import (
	"net/http"
	"strings"

	"dhtmon/config"
	"dhtmon/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new credential row. Duplicate emails are rejected
// before the insert so the caller gets a specific message.
func Register(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := strings.TrimSpace(c.PostForm("password"))

	if email == "" || password == "" {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Email and password required"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("tbl_email = ?", email).Count(&count).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database error: " + err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Registration failed"})
		return
	}

	user := models.User{Email: email, Password: string(hashedPassword)}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Registration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Registration successful"})
}

// Login verifies a credential pair. No session or token is issued; the
// same generic message covers unknown emails and wrong passwords.
func Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := strings.TrimSpace(c.PostForm("password"))

	if email == "" || password == "" {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Email and password required"})
		return
	}

	var user models.User
	if err := config.DB.Where("tbl_email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Login successful"})
}
