// Command seed loads the demo catalog. With -reset it deletes existing
// data first. Not for production databases.
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/dance-school/internal/auth"
	"github.com/BruksfildServices01/dance-school/internal/config"
	dbpkg "github.com/BruksfildServices01/dance-school/internal/db"
	"github.com/BruksfildServices01/dance-school/internal/logger"
	"github.com/BruksfildServices01/dance-school/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	reset := flag.Bool("reset", false, "delete existing data before seeding")
	schemaOnly := flag.Bool("schema-only", false, "only migrate the schema")
	adminEmail := flag.String("admin-email", cfg.SeedAdminEmail, "admin account email")
	adminPassword := flag.String("admin-password", cfg.SeedAdminPassword, "admin account password (default $SEED_ADMIN_PASSWORD)")
	flag.Parse()

	if cfg.UsesInMemoryStore() {
		log.Fatal("DATABASE_URL is not set; seeding an in-memory store is pointless")
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = dbpkg.Close(db) }()

	if *schemaOnly {
		log.Info("schema migrated")
		return
	}

	res, err := seed.Run(context.Background(), db, auth.NewHasher(cfg.BcryptCost), seed.Options{
		Reset:         *reset,
		AdminEmail:    *adminEmail,
		AdminPassword: *adminPassword,
	}, log)
	if err != nil {
		_ = dbpkg.Close(db)
		log.Fatalf("seed failed, nothing was written: %v", err)
	}

	log.WithField("classes", res.Classes).
		WithField("teachers", res.Teachers).
		WithField("slots", res.Slots).
		WithField("news", res.News).
		WithField("admin_id", res.AdminID).
		Info("seed complete")
}
