package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stealthycommerce/stealthy/internal/infrastructure/config"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/database"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/migration"
	"github.com/stealthycommerce/stealthy/internal/interfaces/cli/cmdutil"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

const (
	toolGoose         = "goose"
	toolGolangMigrate = "golang-migrate"
)

var (
	opts        cmdutil.Options
	tool        string
	scriptsRoot string
	name        string
	steps       int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long: `Manage database migrations including running migrations, checking status, and creating new migration files.

Goose scripts exist for both MySQL and SQLite. golang-migrate scripts target MySQL only.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVarP(&tool, "tool", "t", toolGoose, "Migration tool (goose, golang-migrate)")
	cmd.PersistentFlags().StringVar(&scriptsRoot, "scripts", migration.DefaultScriptsPath, "Migration scripts root")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// migrator is the part of a strategy the up/down/status commands drive.
type migrator interface {
	up() error
	down(steps int) error
	status() error
}

type gooseMigrator struct {
	s *migration.GooseStrategy
}

func (g gooseMigrator) up() error           { return g.s.Migrate(database.Get()) }
func (g gooseMigrator) down(steps int) error { return g.s.MigrateDown(database.Get(), steps) }

func (g gooseMigrator) status() error {
	v, err := g.s.GetVersion(database.Get())
	if err != nil {
		return err
	}
	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", opts.Env)
	fmt.Printf("  Tool:            %s\n", toolGoose)
	fmt.Printf("  Current Version: %d\n", v)
	return g.s.Status(database.Get())
}

type golangMigrator struct {
	s *migration.GolangMigrateStrategy
}

func (g golangMigrator) up() error           { return g.s.Migrate(database.Get()) }
func (g golangMigrator) down(steps int) error { return g.s.MigrateDown(database.Get(), steps) }

func (g golangMigrator) status() error {
	v, dirty, err := g.s.GetVersion(database.Get())
	if err != nil {
		return err
	}
	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", opts.Env)
	fmt.Printf("  Tool:            %s\n", toolGolangMigrate)
	fmt.Printf("  Current Version: %d\n", v)
	fmt.Printf("  Dirty:           %t\n", dirty)
	return nil
}

// scriptsDir returns the absolute scripts directory for the selected tool and driver.
func scriptsDir(driver string) (string, error) {
	var dir string
	switch tool {
	case toolGoose:
		_, dir = migration.GooseDialect(driver)
	case toolGolangMigrate:
		if driver == constants.DriverSQLite {
			return "", fmt.Errorf("%s scripts target mysql; use --tool %s for sqlite", toolGolangMigrate, toolGoose)
		}
		dir = migration.GolangMigrateDir
	default:
		return "", fmt.Errorf("unknown migration tool %q", tool)
	}
	return filepath.Abs(filepath.Join(scriptsRoot, dir))
}

func newMigrator(cfg *config.Config, log logger.Interface) (migrator, error) {
	path, err := scriptsDir(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	if tool == toolGolangMigrate {
		return golangMigrator{s: migration.NewGolangMigrateStrategy(path, log)}, nil
	}
	dialect, _ := migration.GooseDialect(cfg.Database.Driver)
	return gooseMigrator{s: migration.NewGooseStrategy(path, dialect, log)}, nil
}

func withMigrator(fn func(m migrator, log logger.Interface) error) error {
	cfg, log, err := cmdutil.Init(&opts, true)
	if err != nil {
		return err
	}
	defer database.Close()

	m, err := newMigrator(cfg, log)
	if err != nil {
		return err
	}
	return fn(m, log)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withMigrator(func(m migrator, log logger.Interface) error {
		log.Infow("running up migrations", "environment", opts.Env, "tool", tool)
		if err := m.up(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Infow("migrations completed successfully")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	return withMigrator(func(m migrator, log logger.Interface) error {
		log.Infow("running down migrations", "environment", opts.Env, "tool", tool, "steps", steps)
		if err := m.down(steps); err != nil {
			return fmt.Errorf("down migration failed: %w", err)
		}
		log.Infow("down migration completed successfully")
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withMigrator(func(m migrator, log logger.Interface) error {
		if err := m.status(); err != nil {
			return fmt.Errorf("failed to get migration status: %w", err)
		}
		return nil
	})
}

// runCreate only needs the config to pick the goose dialect directory.
func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := cmdutil.Init(&opts, false)
	if err != nil {
		return err
	}

	path, err := scriptsDir(cfg.Database.Driver)
	if err != nil {
		return err
	}

	if tool == toolGolangMigrate {
		upPath, downPath, err := migration.NewGenerator(path, log).CreateMigration(name)
		if err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
		fmt.Printf("Created %s\nCreated %s\n", upPath, downPath)
		return nil
	}

	dialect, _ := migration.GooseDialect(cfg.Database.Driver)
	if err := migration.NewGooseStrategy(path, dialect, log).Create(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	fmt.Printf("Migration '%s' created in %s\n", name, path)
	return nil
}
