package figma

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DevLogger dumps raw and simplified documents to YAML files so the
// transformation can be inspected during development. A nil DevLogger is
// valid and does nothing.
type DevLogger struct {
	dir    string
	logger *slog.Logger
}

// NewDevLogger writes dumps into dir.
func NewDevLogger(dir string, logger *slog.Logger) *DevLogger {
	return &DevLogger{dir: dir, logger: logger}
}

// NewDevLoggerFromEnv enables dumping only when ESPALIER_ENV=development.
func NewDevLoggerFromEnv(logger *slog.Logger) *DevLogger {
	if os.Getenv("ESPALIER_ENV") != "development" {
		return nil
	}
	return NewDevLogger("logs", logger)
}

// Dump writes value as YAML under the configured directory.
func (d *DevLogger) Dump(name string, value any) {
	if d == nil {
		return
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		d.logger.Error("failed to create dev log directory", "dir", d.dir, "err", err)
		return
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		d.logger.Error("failed to marshal dev log", "name", name, "err", err)
		return
	}
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		d.logger.Error("failed to write dev log", "path", path, "err", err)
		return
	}
	d.logger.Info("wrote dev log", "path", path)
}
