// Package logger builds the zap loggers used by the server and the seeder.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kailas-cloud/earlyhelp/internal/version"
)

// ServiceName is attached to every production log line.
const ServiceName = "earlyhelp"

// profiles maps a deployment environment to its base zap config.
var profiles = map[string]func() zap.Config{
	"prod":   production,
	"local":  development,
	"dev":    development,
	"docker": development,
}

func production() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{
		"service": ServiceName,
		"version": version.Version,
	}
	return cfg
}

func development() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return cfg
}

// NewLogger builds the logger for env: JSON in prod, colored console
// elsewhere. A non-empty level (debug, info, warn, error) replaces the
// environment's default level.
func NewLogger(env string, level ...string) (*zap.Logger, error) {
	profile, ok := profiles[env]
	if !ok {
		return nil, fmt.Errorf("logger: unknown environment %q", env)
	}
	cfg := profile()

	if len(level) > 0 && level[0] != "" {
		lvl, err := zap.ParseAtomicLevel(level[0])
		if err != nil {
			return nil, fmt.Errorf("logger: level %q: %w", level[0], err)
		}
		cfg.Level = lvl
	}

	return cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}
