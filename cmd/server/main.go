package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/danuwg/opcert_backend_v1/internal/config"
	"github.com/danuwg/opcert_backend_v1/internal/database"
	"github.com/danuwg/opcert_backend_v1/internal/logger"
	"github.com/danuwg/opcert_backend_v1/internal/routes"
	"github.com/danuwg/opcert_backend_v1/internal/ws"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}
	if cfg.SeedSampleOperators {
		if err := database.SeedSampleOperators(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample operators")
		}
	}

	hub := ws.NewStatusHub()
	go hub.Run()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.Register(r, db, cfg, hub)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
