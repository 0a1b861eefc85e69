package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/madibogo/records-backend/internal/config"
	"github.com/madibogo/records-backend/internal/database"
	"github.com/madibogo/records-backend/internal/logger"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/madibogo/records-backend/internal/service"
)

func main() {
	var path string
	flag.StringVar(&path, "file", "seed/catalogue.yaml", "Path to the YAML catalogue")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to open catalogue")
	}
	defer f.Close()

	catalogue, err := service.ParseCatalogue(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to parse catalogue")
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	repos := repository.New(pool)
	authService := service.NewAuthService(cfg, rdb, repos.Students, repos.Admins, log)
	seedService := service.NewSeedService(repos.Catalogue, repos.Students, authService, log)
	catalogueService := service.NewCatalogueService(repos.Programmes, repos.Semesters, rdb, cfg.CatalogueCacheTTL, log)

	fmt.Printf("=== Seeding catalogue from %s ===\n", path)

	res, err := seedService.Apply(ctx, catalogue)
	if err != nil {
		log.Fatal().Err(err).Msg("Seed failed")
	}

	// Cached listings would otherwise hide the new rows until they expire.
	if err := catalogueService.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate catalogue cache")
	}

	fmt.Printf("\nSeed completed! faculties=%d programmes=%d semesters=%d modules=%d students=%d (skipped %d existing)\n",
		res.Faculties, res.Programmes, res.Semesters, res.Modules, res.StudentsCreated, res.StudentsSkipped)
}
