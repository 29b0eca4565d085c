package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hospital/config"
	logs "hospital/internal/infra/log"
	"hospital/internal/infra/persistence/migration"
	"hospital/internal/util"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      Apply all pending migrations
// - down:    Roll back migrations (all, or -steps N)
// - version: Print the applied schema version

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 0, "Number of migrations to roll back (0 rolls back everything)")
	timeout := 5 * time.Minute

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := runSubcommand(ctx, upCmd, downCmd, versionCmd, downSteps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, upCmd, downCmd, versionCmd *flag.FlagSet, downSteps *int) error {
	var (
		fs *flag.FlagSet
		fn func(m *migration.Migrator) error
	)

	switch os.Args[1] {
	case "up":
		fs = upCmd
		fn = func(m *migration.Migrator) error {
			return m.Up()
		}
	case "down":
		fs = downCmd
		fn = func(m *migration.Migrator) error {
			return m.Down(*downSteps)
		}
	case "version":
		fs = versionCmd
		fn = printVersion
	case "-h", "--help", "help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse flags")
	}

	return run(ctx, fn)
}

func run(ctx context.Context, fn func(m *migration.Migrator) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	start := time.Now()
	if err := migration.Run(ctx, db, logger, fn); err != nil {
		return err
	}
	logger.Info("Migration command finished", slog.String("elapsed", util.FormatDuration(time.Since(start))))

	return nil
}

func printVersion(m *migration.Migrator) error {
	version, dirty, ok, err := m.Version()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no migrations applied")

		return nil
	}

	fmt.Printf("version %d (dirty: %t)\n", version, dirty)

	return nil
}

func printUsage() {
	fmt.Println(`Usage: migrate <command> [flags]

Commands:
  up                 Apply all pending migrations
  down [-steps N]    Roll back N migrations, or all when N is 0
  version            Print the applied schema version

Configuration is read from config.yaml and environment variables (POSTGRES_*).`)
}
