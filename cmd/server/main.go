package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"lunchly_backend/internal/database"
	"lunchly_backend/internal/router"
	"lunchly_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger() // Initialize zerolog

	// Load database configuration from environment variables
	maxOpenConns, _ := strconv.Atoi(utils.Getenv("DB_MAX_OPEN_CONNS", "10"))
	maxIdleConns, _ := strconv.Atoi(utils.Getenv("DB_MAX_IDLE_CONNS", "5"))
	cfg := database.Config{
		Host:         utils.Getenv("DB_HOST", "localhost"),
		Port:         utils.Getenv("DB_PORT", "5432"),
		User:         utils.Getenv("DB_USER", "lunchly_user"),
		Password:     utils.Getenv("DB_PASSWORD", "lunchly_password"),
		Name:         utils.Getenv("DB_NAME", "lunchly"),
		SSLMode:      utils.Getenv("DB_SSLMODE", "disable"),
		MaxOpenConns: maxOpenConns,
		MaxIdleConns: maxIdleConns,
	}

	// Initialize Database
	db, err := database.Open(cfg)
	if err != nil {
		utils.LogError(err, "Failed to initialize database")
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, db)

	// Server port configuration
	port := utils.Getenv("PORT", "8080") // Default to 8080 if not set
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "configured_from_env": true})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
