package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	cartapp "github.com/storefront/backend/internal/application/cart"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/migration"
	"github.com/storefront/backend/internal/infrastructure/persistence"
)

const defaultMigrationsDir = "migrations"

// app carries what every subcommand needs. Before fills it in.
type app struct {
	log *zap.Logger
	cfg *config.Config
}

func main() {
	a := &app{}
	cmd := &cli.Command{
		Name:  "migrate",
		Usage: "Storefront database schema tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "read migrations from this directory instead of the ones built into the binary",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "debug, info, warn or error",
			},
		},
		Before: a.setup,
		After: func(ctx context.Context, _ *cli.Command) error {
			if a.log != nil {
				_ = a.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: a.withMigrator(func(_ context.Context, _ *cli.Command, m *migration.Migrator) error {
					return m.Up()
				}),
			},
			{
				Name:  "down",
				Usage: "Roll back every migration",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "confirm", Usage: "required, this drops every storefront table"},
				},
				Action: a.withMigrator(func(_ context.Context, cmd *cli.Command, m *migration.Migrator) error {
					if !cmd.Bool("confirm") {
						return fmt.Errorf("refusing to roll back without --confirm")
					}
					return m.Down()
				}),
			},
			{
				Name:      "steps",
				Usage:     "Apply n migrations, rolling back when n is negative",
				ArgsUsage: "<n> (put -- before a negative n)",
				Action: a.withMigrator(func(_ context.Context, cmd *cli.Command, m *migration.Migrator) error {
					n, err := intArg(cmd, "step count")
					if err != nil {
						return err
					}
					return m.Steps(n)
				}),
			},
			{
				Name:  "version",
				Usage: "Show the current schema version",
				Action: a.withMigrator(func(_ context.Context, _ *cli.Command, m *migration.Migrator) error {
					version, dirty, err := m.Version()
					if err != nil {
						return err
					}
					if version == 0 {
						a.log.Info("No migrations applied")
						return nil
					}
					a.log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
					return nil
				}),
			},
			{
				Name:      "force",
				Usage:     "Set the version without running migrations, to clear a dirty state",
				ArgsUsage: "<version>",
				Action: a.withMigrator(func(_ context.Context, cmd *cli.Command, m *migration.Migrator) error {
					version, err := intArg(cmd, "version")
					if err != nil {
						return err
					}
					return m.Force(version)
				}),
			},
			{
				Name:      "create",
				Usage:     "Write an empty up/down migration pair",
				ArgsUsage: "<name>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					name := cmd.Args().First()
					if name == "" {
						return fmt.Errorf("migration name required")
					}
					dir := cmd.String("path")
					if dir == "" {
						dir = defaultMigrationsDir
					}
					mf, err := migration.CreateMigration(dir, name)
					if err != nil {
						return err
					}
					a.log.Info("Migration created",
						zap.Uint("version", mf.Version),
						zap.String("up_file", mf.UpPath),
						zap.String("down_file", mf.DownPath),
					)
					return nil
				},
			},
			{
				Name:   "purge-carts",
				Usage:  "Delete carts older than the configured cart TTL",
				Action: a.purgeCarts,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if a.log != nil {
			a.log.Error("Command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log, err := logger.New(logger.Config{
		Level:  cmd.String("log-level"),
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return ctx, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.log, a.cfg = log, cfg
	return ctx, nil
}

// withMigrator opens the database and a Migrator for one subcommand
func (a *app) withMigrator(fn func(context.Context, *cli.Command, *migration.Migrator) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		m, err := a.openMigrator(ctx, cmd.String("path"))
		if err != nil {
			return err
		}
		defer func() {
			if err := m.Close(); err != nil {
				a.log.Warn("Failed to close migrator", zap.Error(err))
			}
		}()
		a.log.Info("Running migration command", zap.String("command", cmd.Name))
		return fn(ctx, cmd, m)
	}
}

func (a *app) openMigrator(ctx context.Context, path string) (*migration.Migrator, error) {
	if path != "" {
		a.log.Info("Using migrations from disk", zap.String("path", path))
		return migration.NewFromPath(a.cfg.Database.DSN(), path, a.log)
	}

	db, err := sql.Open("postgres", a.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	// the migrator owns db from here and closes it
	return migration.New(db, a.log)
}

func (a *app) purgeCarts(ctx context.Context, _ *cli.Command) error {
	gormLog := logger.NewGormLogger(a.log, logger.GormLevel(a.cfg.Log.Level), 0)
	db, err := persistence.NewDatabase(&a.cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer db.Close()

	carts := cartapp.NewCartService(
		persistence.NewGormCartRepository(db.DB),
		persistence.NewGormProductRepository(db.DB),
		a.cfg.Cart.TTL,
		cartapp.WithCartLogger(a.log),
	)
	removed, err := carts.PurgeExpired(ctx)
	if err != nil {
		return err
	}
	a.log.Info("Expired carts purged", zap.Int64("removed", removed), zap.Duration("ttl", a.cfg.Cart.TTL))
	return nil
}

func intArg(cmd *cli.Command, what string) (int, error) {
	raw := cmd.Args().First()
	if raw == "" {
		return 0, fmt.Errorf("%s required", what)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return n, nil
}
