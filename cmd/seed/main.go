// Command seed очищает rooms/questions и заполняет их фикстурами для разработки.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cwrk-planet/rooms-api/config"
	"github.com/cwrk-planet/rooms-api/internal/postgres"
	"github.com/cwrk-planet/rooms-api/internal/seed"
	"github.com/cwrk-planet/rooms-api/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config.yaml (default: $CONFIG_PATH or ./config/config.yaml)")
		rooms      = flag.Int("rooms", -1, "rooms to create (default: seed.rooms from config)")
		questions  = flag.Int("questions", -1, "questions to create (default: seed.questions from config)")
		randSeed   = flag.Uint64("seed", 0, "random seed, 0 = seed.randSeed from config")
	)
	flag.Parse()

	if *configPath != "" {
		_ = os.Setenv("CONFIG_PATH", *configPath)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:     logger.ParseEnv(cfg.Logging.Env),
		Service: cfg.Logging.Service + "-seed",
		Version: cfg.Logging.Version,
		Backend: logger.Backend(cfg.Logging.Backend),
		Level:   logger.ParseLevel(cfg.Logging.Level),
	})

	genCfg := seed.Config{
		Rooms:     cfg.Seed.Rooms,
		Questions: cfg.Seed.Questions,
		Seed:      cfg.Seed.RandSeed,
	}
	if *rooms >= 0 {
		genCfg.Rooms = *rooms
	}
	if *questions >= 0 {
		genCfg.Questions = *questions
	}
	if *randSeed != 0 {
		genCfg.Seed = *randSeed
	}

	data, err := seed.Generate(genCfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.New(ctx, cfg.Postgres.ToPGConfig())
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	seeder := postgres.NewSeeder(db.Pool)
	if err := seeder.Reset(ctx); err != nil {
		slog.Error("reset failed", "err", err)
		os.Exit(1)
	}
	if err := seeder.Seed(ctx, data.Rooms, data.Questions); err != nil {
		slog.Error("seed failed", "err", err)
		os.Exit(1)
	}

	slog.Info("database seeded",
		"rooms", len(data.Rooms), "questions", len(data.Questions))
}
