package main

import (
	"context"

	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/api"
	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/infrastructure/config"
	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/infrastructure/db/postgres"
	redisdb "github.com/wiz002-ucsd/lumaa-spring-2025-swe/internal/infrastructure/db/redis"
	"github.com/wiz002-ucsd/lumaa-spring-2025-swe/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting task tracker API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
