package main

import (
	"log"
	"os"

	"fund-reporting-backend/internal/api/routes"
	"fund-reporting-backend/internal/config"
	"fund-reporting-backend/internal/database"
	"fund-reporting-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "fund-reporting-backend/docs" // This is needed for swag
)

//	@title			Fund Reporting Backend API
//	@version		1.0
//	@description	Backend API for Multilateral Fund project submissions: versioned projects, the draft/submit/recommend/approve workflow, meta-project association and reporting reference data.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize the submission event publisher
	var notifier service.Notifier = service.NoopNotifier{}
	if cfg.SubmissionNotificationsEnabled {
		amqpNotifier, err := service.NewAMQPNotifier(cfg.RabbitMQURL)
		if err != nil {
			logrus.Fatal("Failed to connect notification publisher:", err)
		}
		defer amqpNotifier.Close()
		notifier = amqpNotifier
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, notifier)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
