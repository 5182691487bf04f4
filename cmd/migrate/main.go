package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"lv33global/pkg/config"
	"lv33global/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, reset, status, version, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	if cfg.DBDriver != config.DriverPostgres {
		log.Error("Migrations target PostgreSQL, DB_DRIVER is %q (sqlite databases are migrated at startup)", cfg.DBDriver)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		os.Exit(1)
	}

	if err := run(context.Background(), db, *command, *dir, *name, log); err != nil {
		log.Error("Migration command %q failed: %v", *command, err)
		db.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, db *sql.DB, command, dir, name string, log *logger.Logger) error {
	switch command {
	case "create":
		if name == "" {
			log.Error("Name is required for create command")
			os.Exit(2)
		}
		if err := goose.Create(db, dir, name, "sql"); err != nil {
			return err
		}
		log.Info("Created migration: %s", name)
	case "up":
		if err := goose.UpContext(ctx, db, dir); err != nil {
			return err
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, db, dir); err != nil {
			return err
		}
		log.Info("Migrations rolled back successfully")
	case "reset":
		if err := goose.ResetContext(ctx, db, dir); err != nil {
			return err
		}
		log.Info("All migrations rolled back")
	case "status":
		return goose.StatusContext(ctx, db, dir)
	case "version":
		version, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return err
		}
		log.Info("Current schema version: %d", version)
	default:
		log.Error("Unknown command: %s", command)
		os.Exit(2)
	}
	return nil
}
