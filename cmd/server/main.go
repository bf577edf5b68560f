package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads a local .env file in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/simontuck/gdc2025-website-sub001/internal/config"     // Internal config loader
	"github.com/simontuck/gdc2025-website-sub001/internal/database"   // MySQL connection setup
	"github.com/simontuck/gdc2025-website-sub001/internal/handler"    // HTTP handlers
	"github.com/simontuck/gdc2025-website-sub001/internal/mailer"     // Transactional mail client
	"github.com/simontuck/gdc2025-website-sub001/internal/middleware" // Rate limiting middleware
	"github.com/simontuck/gdc2025-website-sub001/internal/queue"      // Audit trail consumer
	"github.com/simontuck/gdc2025-website-sub001/internal/receipt"    // Reconciliation engine
	"github.com/simontuck/gdc2025-website-sub001/internal/repository" // Record store repositories
	"github.com/simontuck/gdc2025-website-sub001/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Optional .env; real deployments set env directly
	cfg := config.Load()

	// Connect to the record store. The orders and bookings tables are
	// written by the payment processor's webhook; this service only reads.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: without it the service runs with caching and
	// rate limiting disabled rather than refusing to start.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; receipt caching and rate limiting disabled")
	}

	resolver := receipt.NewResolver(
		repository.NewOrderRepo(db),
		repository.NewBookingRepo(db),
		receipt.NewCache(config.LoadReceiptCacheConfig(), rdb),
	)

	mail := mailer.NewClient(cfg.Mail)
	if !mail.Configured() {
		// Surfaced at startup so a missing credential is a visible
		// configuration error, not a lazy failure on first dispatch.
		log.Printf("RESEND_API_KEY not set; confirmation emails will fail with a configuration error")
	}

	e := echo.New()
	rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.RegisterRoutes(e)
	router.RegisterAPI(e, handler.NewReceiptHandler(resolver), handler.NewNotificationHandler(resolver, mail), cfg.JWTSecret, rl)

	// The audit consumer reconnects on its own; it never stops the server.
	go func() {
		if err := queue.StartReceiptConsumer(); err != nil {
			log.Printf("receipt consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
