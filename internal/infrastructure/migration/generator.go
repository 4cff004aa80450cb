package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes golang-migrate up/down file pairs.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration creates <timestamp>_<name>.up.sql and .down.sql and returns their paths.
func (g *Generator) CreateMigration(name string) (upPath, downPath string, err error) {
	if !migrationNamePattern.MatchString(name) {
		return "", "", fmt.Errorf("invalid migration name %q: use lower_snake_case", name)
	}

	now := g.now().UTC()
	timestamp := now.Format("20060102150405")
	upPath = filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downPath = filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	header := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n", name, now.Format(time.DateTime))
	if err := os.WriteFile(upPath, []byte(header+"\n-- One statement per file.\n"), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(header+"\n"), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully", "up_file", upPath, "down_file", downPath)
	return upPath, downPath, nil
}
