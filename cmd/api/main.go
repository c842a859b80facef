package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/kvopen"
	infrapdf "github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-local/internal/interfaces/http"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closeStore, err := kvopen.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("apertura del almacén")
	}
	defer closeStore()

	store := storage.New(kv, log, cfg.Store.Timeout)
	repo := inventory.NewRepository(store, log)
	if err := repo.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("inicialización del inventario")
	}
	if mismatches := repo.LedgerCheck(); len(mismatches) > 0 {
		log.Warn().Int("products", len(mismatches)).Msg("stock descuadrado respecto del historial de movimientos")
	}
	session := auth.NewSession(store, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Repo:    repo,
		Session: session,
		Report:  infrapdf.NewStockReportGenerator(language.Spanish),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
