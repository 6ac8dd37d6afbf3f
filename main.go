package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/huh-boost/storefront/catalog"
	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/db"
	h "github.com/huh-boost/storefront/handlers"
	"github.com/huh-boost/storefront/loader"
	"github.com/huh-boost/storefront/picker"
)

func main() {
	config.Load()

	// Initialize database
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	if err := catalog.Migrate(context.Background()); err != nil {
		log.Fatalf("error migrating catalog: %v", err)
	}

	// Catalog cache: in-process ristretto in front of redis
	shared := catalog.NewRedisStore(config.RedisAddress, config.RedisPassword)
	defer shared.Close()
	if err := shared.Ping(context.Background()); err != nil {
		log.Printf("[main] redis unavailable at %s, serving from database: %v", config.RedisAddress, err)
	}

	svc, err := catalog.NewService(shared, config.CatalogCacheTTL)
	if err != nil {
		log.Fatalf("Failed to initialize catalog service: %v", err)
	}
	defer svc.Close()

	// One picker per visitor, each fetching the catalog over HTTP
	client := loader.NewClient(config.CollectionsBaseURL, config.CollectionsTimeout)
	registry := picker.NewRegistry(client, config.PickerIdleTTL)
	registry.StartSweeper(config.PickerSweepEvery)
	defer registry.Close()

	h.Init(registry, svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(recover.New())
	app.Use(h.GlobalRateLimiter())
	app.Use(logger.New())

	app.Static("/", "./static")
	h.Routes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Printf("[main] shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("[main] shutdown error: %v", err)
		}
	}()

	log.Printf("[main] listening on :%s", config.ServerPort)
	if err := app.Listen(":" + config.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
