package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/completion"
	"career-compass/internal/infrastructure/identity"
	"career-compass/migrations"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
	DB    database.DB
}

// New builds the Fiber app and route tree around already-constructed
// collaborators. Bootstrap is the production path; tests call New directly
// with fakes.
func New(d routes.Deps) *App {
	f := fiber.New(fiber.Config{AppName: d.Config.App.AppName})

	registerGlobalMiddleware(f, d.Config, d.Logger)
	routes.Register(f, d)

	return &App{Fiber: f, DB: d.DB}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := (migration.Runner{FS: migrations.FS}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	tokens := cache.NewRedis(cfg.Redis, logger)

	app := New(routes.Deps{
		Config:      cfg,
		DB:          db,
		Logger:      logger,
		Completions: completion.NewOpenAIClient(cfg.OpenAI, logger),
		Verifier:    identity.NewGoogleVerifier(cfg.Google.ClientID),
		Tokens:      tokens,
	})

	cleanup := func() error {
		_ = tokens.Close()
		return db.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, cfg config.Config, logger *log.Logger) {
	corsCfg := cors.ConfigDefault
	if origins := strings.TrimSpace(cfg.App.AllowedOrigins); origins != "" {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
	}
	f.Use(cors.New(corsCfg))

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
