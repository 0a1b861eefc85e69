package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/madibogo/records-backend/internal/config"
	"github.com/madibogo/records-backend/internal/database"
	"github.com/madibogo/records-backend/internal/logger"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/madibogo/records-backend/internal/service"
)

func main() {
	var table string
	flag.StringVar(&table, "table", "all", "Which accounts to rehash: students, admins or all")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	repos := repository.New(pool)
	authService := service.NewAuthService(cfg, nil, repos.Students, repos.Admins, log)
	adminService := service.NewAdminService(repos.Admins, authService, log)

	stores := map[string]service.CredentialStore{
		"students": repos.Students,
		"admins":   repos.Admins,
	}

	var targets []string
	switch table {
	case "all":
		targets = []string{"students", "admins"}
	case "students", "admins":
		targets = []string{table}
	default:
		fmt.Println("Error: -table must be one of students, admins, all")
		return
	}

	fmt.Println("=== Rehash Legacy Passwords ===")
	fmt.Println("Every stored password that is not a bcrypt hash will be replaced by its bcrypt hash.")

	for _, name := range targets {
		n, err := adminService.RehashLegacyPasswords(ctx, stores[name])
		if err != nil {
			log.Fatal().Err(err).Str("table", name).Msg("Rehash failed")
		}
		fmt.Printf("%s: %d password(s) rehashed\n", name, n)
	}

	fmt.Println("\nSuccess! All selected accounts now store salted bcrypt hashes.")
}
