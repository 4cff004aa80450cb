package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

// DefaultScriptsPath is the scripts root relative to the repository root.
const DefaultScriptsPath = "internal/infrastructure/migration/scripts"

// Script directories under the scripts root.
const (
	GolangMigrateDir = "migrate"
	GooseMySQLDir    = "goose/mysql"
	GooseSQLiteDir   = "goose/sqlite"
)

// GooseDialect returns the goose dialect and script directory for a database driver.
func GooseDialect(driver string) (dialect, dir string) {
	if driver == constants.DriverSQLite {
		return "sqlite3", GooseSQLiteDir
	}
	return "mysql", GooseMySQLDir
}

// Manager runs the migration strategy chosen for an environment and driver.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks golang-migrate scripts for MySQL in test and production,
// and GORM AutoMigrate otherwise (development, or any SQLite database).
func NewManager(environment, driver, scriptsRoot string, log logger.Interface) *Manager {
	var strategy Strategy

	env := strings.ToLower(environment)
	switch {
	case driver == constants.DriverSQLite:
		strategy = NewGormAutoMigrateStrategy(log)
	case env == constants.EnvTest || env == constants.EnvProduction:
		scriptsPath, err := filepath.Abs(filepath.Join(scriptsRoot, GolangMigrateDir))
		if err != nil {
			scriptsPath = filepath.Join(scriptsRoot, GolangMigrateDir)
		}
		strategy = NewGolangMigrateStrategy(scriptsPath, log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}

	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate runs the strategy against every persistence model.
func (m *Manager) Migrate(db *gorm.DB) error {
	all := models.AllModels()
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(all))

	if err := m.strategy.Migrate(db, all...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
