package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"songkick/facade/api"
	"songkick/facade/buildinfo"
	"songkick/facade/config"
	"songkick/facade/database"
	"songkick/facade/services"
	"songkick/facade/upstream"

	_ "songkick/facade/docs" // Import generated docs
)

// @title Songkick Facade API
// @version 1.0
// @description Passthrough facade over Songkick's unofficial event data surface
// @BasePath /
// @schemes http

const idleTimeout = 5 * time.Second

func main() {
	// Set application start time for accurate uptime tracking
	buildinfo.SetStartTime(time.Now())

	// Log build information
	info := buildinfo.GetInfo()
	log.Printf("Starting application\nVersion: %s, Commit: %s, BuildDate: %s, GoVersion: %s, Hostname: %s",
		info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Hostname)

	// Load configuration
	cfg := config.Load()

	// Initialize the optional Redis response cache
	var cache database.ResponseCache
	if cfg.Cache.Enabled {
		if err := database.InitRedis(&cfg.Redis); err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		cache = database.GetResponseCache(cfg.Cache.TTLMS)
	} else {
		log.Println("Response cache disabled")
	}

	// Initialize the optional ClickHouse usage log
	var batcher *services.UsageBatcher
	if cfg.UsageLog.Enabled {
		if err := database.InitClickHouse(&cfg.ClickHouse); err != nil {
			log.Fatalf("Failed to initialize ClickHouse: %v", err)
		}
		batcher = services.NewUsageBatcher(
			cfg.UsageLog.BufferCapacity,
			cfg.UsageLog.BatchSize,
			cfg.UsageLog.FlushIntervalSeconds,
			database.GetClickHouseDB(),
		)
	} else {
		log.Println("Usage log disabled")
	}

	provider := upstream.NewClient(&cfg.Songkick)

	songkickService, err := services.NewSongkickService(provider, cache, batcher)
	if err != nil {
		log.Fatalf("Failed to initialize SongkickService: %v", err)
	}

	httpHandler := api.NewSongkickHandler(songkickService)

	app := fiber.New(fiber.Config{
		IdleTimeout: idleTimeout,
	})

	app.Use(recover.New())

	// redirect to swagger docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/", fiber.StatusMovedPermanently)
	})

	// Health check endpoint
	app.Get("/health", api.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Passthrough endpoints
	app.Get("/location/search", httpHandler.SearchLocations)
	app.Get("/events", httpHandler.ListEvents)
	app.Get("/event", httpHandler.GetEventDetails)
	app.Post("/location/track", httpHandler.TrackLocation)
	app.Get("/metrics", httpHandler.GetUsageMetrics)

	// Listen from a different goroutine
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)                    // Create channel to signify a signal being sent
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // When an interrupt or termination signal is sent, notify the channel

	<-c // This blocks the main thread until an interrupt is received
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	fmt.Println("Running cleanup tasks...")

	// Shutdown the usage batcher (flushes remaining records)
	if err := services.ShutdownSongkickService(songkickService); err != nil {
		log.Printf("Error shutting down usage batcher: %v", err)
	}

	// Close database connections
	if err := database.CloseClickHouse(); err != nil {
		log.Printf("Error closing ClickHouse: %v", err)
	}

	if err := database.CloseRedis(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}

	fmt.Println("Fiber was successful shutdown.")
}
