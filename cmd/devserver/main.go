// devserver runs a local in-memory accounting backend implementing the
// contract the client is written against: filtered/paginated document list,
// cancel/delete transitions, full document records and the issuer profile.
// Start it, then point accli at it via API_BASE_URL.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/alonilk2/accounting-sub001/internal/infrastructure/memory"
	devhttp "github.com/alonilk2/accounting-sub001/internal/interfaces/http"
	"github.com/alonilk2/accounting-sub001/pkg/config"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log.Info().
		Str("env", cfg.App.Env).
		Bool("with_issuer", cfg.DevServer.WithIssuer).
		Msg("starting development backend")

	store := memory.NewSeededStore()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-devserver",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	devhttp.Router(app, devhttp.RouterDeps{
		Store:      store,
		Log:        log,
		WithIssuer: cfg.DevServer.WithIssuer,
	})

	go func() {
		if err := app.Listen(cfg.DevServer.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("devserver stopped")
}
