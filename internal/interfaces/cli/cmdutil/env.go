// Package cmdutil holds the process bootstrap shared by the CLI commands.
package cmdutil

import (
	"fmt"
	"os"

	"github.com/stealthycommerce/stealthy/internal/infrastructure/config"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/database"
	"github.com/stealthycommerce/stealthy/internal/shared/biztime"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

// EnvVar overrides the --env flag when set.
const EnvVar = "STEALTHY_ENV"

// Options are the flags every command that touches the database accepts.
type Options struct {
	Env        string
	ConfigPath string
}

// ResolveEnv returns the environment from EnvVar, falling back to the flag value.
func (o *Options) ResolveEnv() string {
	if v := os.Getenv(EnvVar); v != "" {
		o.Env = v
	}
	return o.Env
}

// Init loads configuration, then initializes the business timezone, the
// process logger and, when withDB is set, the database connection.
func Init(opts *Options, withDB bool) (*config.Config, logger.Interface, error) {
	env := opts.ResolveEnv()

	cfg, err := config.Load(env, opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if withDB {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, log, nil
}

// MapEnvToGinMode translates an environment name into a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
