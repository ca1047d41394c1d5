package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"portfolio-sim/internal/api/handlers"
	"portfolio-sim/internal/api/middleware"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(log)
	scheduleHandler := handlers.NewScheduleHandler(log)

	// Liveness
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Quant backend is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/simulate", simulateHandler.RunSimulation)

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/schedules", scheduleHandler.ListSchedules)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
