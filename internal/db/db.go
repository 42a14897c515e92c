package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/madisvain/upcount/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Minimum engine version for the migration features in use. DROP COLUMN
// requires SQLite 3.35.
const (
	minEngineMajor = 3
	minEngineMinor = 35
)

// Open opens the database file identified by a sqlite:// URL, creating it when
// missing, and returns the shared gorm pool every repository runs on.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	path, err := ParseURL(cfg.DatabaseURL())
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info("creating new database", zap.String("path", path))
	}

	conn, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on&_busy_timeout=5000"), &gorm.Config{
		Logger:         NewGormLogger(log, DefaultGormLoggerConfig()),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	var version string
	if err := conn.Raw("SELECT sqlite_version()").Scan(&version).Error; err != nil {
		return nil, fmt.Errorf("query engine version: %w", err)
	}

	log.Info("database opened",
		zap.String("path", path),
		zap.String("sqlite_version", version),
	)

	if !engineSupportsColumnDrop(version) {
		log.Warn("sqlite version may not support all migration features",
			zap.String("sqlite_version", version),
			zap.String("minimum_recommended", "3.35"),
		)
	}

	return conn, nil
}

// ParseURL extracts the file path from a sqlite://<path> URL. Bare paths are
// accepted as-is.
func ParseURL(url string) (string, error) {
	path := strings.TrimPrefix(url, "sqlite://")
	if path == "" {
		return "", fmt.Errorf("invalid database URL %q", url)
	}
	return path, nil
}

func engineSupportsColumnDrop(version string) bool {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	return major > minEngineMajor || (major == minEngineMajor && minor >= minEngineMinor)
}
