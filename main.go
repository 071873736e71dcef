package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/honestng/honest-backend/internal/auth"
	"github.com/honestng/honest-backend/internal/config"
	"github.com/honestng/honest-backend/internal/db"
	"github.com/honestng/honest-backend/internal/directory"
	"github.com/honestng/honest-backend/internal/middleware"
)

func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	_ = godotenv.Load(".env.local")
	setupLogging()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.DatabaseURL)

	auth.Init()
	directory.Init(cfg.ViewCooldown())

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.VisitorMiddleware)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/", directory.SetupRoutes())

	slog.Info("server listening", "port", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
