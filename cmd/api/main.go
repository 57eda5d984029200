package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gpec-api/internal/application/auth"
	"github.com/jhoicas/gpec-api/internal/application/usecase"
	"github.com/jhoicas/gpec-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gpec-api/internal/infrastructure/render"
	"github.com/jhoicas/gpec-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/gpec-api/internal/interfaces/http"
	"github.com/jhoicas/gpec-api/pkg/config"
	"github.com/jhoicas/gpec-api/pkg/logger"
	"github.com/jhoicas/gpec-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var store storage.Store
	switch cfg.Storage.Driver {
	case "s3":
		store, err = storage.NewMinioStore(ctx, cfg.Storage)
	default:
		store, err = storage.NewLocalStore(cfg.Storage.UploadsDir)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("almacenamiento de plantillas")
	}

	m := metrics.New()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	plantillaRepo := postgres.NewPlantillaRepository(pool)
	documentoRepo := postgres.NewDocumentoRepository(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.Expiration,
		ResetExpMinutes: cfg.JWT.ResetExp,
		Issuer:          cfg.JWT.Issuer,
	})
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	plantillaUC := usecase.NewPlantillaUseCase(plantillaRepo, store, cfg.Storage.DefaultsDir, m, log)
	documentoUC := usecase.NewDocumentoUseCase(
		empresaRepo, plantillaRepo, documentoRepo,
		store, render.NewDocumentRenderer(), m, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GPEC API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		EmpresaUC:   empresaUC,
		UsuarioUC:   usuarioUC,
		PlantillaUC: plantillaUC,
		DocumentoUC: documentoUC,
		JWTSecret:   cfg.JWT.Secret,
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
