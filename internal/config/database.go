package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Pool fallbacks applied when the config leaves a knob unset.
const (
	defaultMaxIdleConns    = 10
	defaultMaxOpenConns    = 100
	defaultConnMaxLifetime = "1h"
)

// SetupDatabase opens the configured database through GORM. SQLite paths get
// their parent directory created; postgres connects via a DSN built from the
// config. SQL logging follows the app logger: debug level turns on full
// statement logging, anything quieter logs slow queries and errors only.
func SetupDatabase(cfg *DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("database config is nil")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory %q: %w", dir, err)
			}
		}
		dialector = sqlite.Open(cfg.SQLite.Path)
	case "postgres":
		dialector = postgres.Open(postgresDSN(&cfg.Postgres))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	logMode := gormlogger.Warn
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := configurePool(db, &cfg.Pool); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}

	logger.Info("database connected",
		slog.String("driver", cfg.Driver),
		slog.Int("max_idle_conns", effectiveMaxIdleConns(cfg.Pool.MaxIdleConns)),
		slog.Int("max_open_conns", effectiveMaxOpenConns(cfg.Pool.MaxOpenConns)),
		slog.String("conn_max_lifetime", effectiveConnMaxLifetime(cfg.Pool.ConnMaxLifetime)),
	)

	return db, nil
}

func configurePool(db *gorm.DB, pool *PoolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	raw := effectiveConnMaxLifetime(pool.ConnMaxLifetime)
	lifetime, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid pool.conn_max_lifetime %q: %w", raw, err)
	}
	if lifetime <= 0 {
		return fmt.Errorf("invalid pool.conn_max_lifetime %q: must be positive", raw)
	}

	sqlDB.SetMaxIdleConns(effectiveMaxIdleConns(pool.MaxIdleConns))
	sqlDB.SetMaxOpenConns(effectiveMaxOpenConns(pool.MaxOpenConns))
	sqlDB.SetConnMaxLifetime(lifetime)
	return nil
}

func effectiveMaxIdleConns(v int) int {
	if v <= 0 {
		return defaultMaxIdleConns
	}
	return v
}

func effectiveMaxOpenConns(v int) int {
	if v <= 0 {
		return defaultMaxOpenConns
	}
	return v
}

func effectiveConnMaxLifetime(v string) string {
	if strings.TrimSpace(v) == "" {
		return defaultConnMaxLifetime
	}
	return v
}

// postgresDSN builds a URL-form DSN so credentials and parameters survive
// special characters.
func postgresDSN(cfg *PostgresConfig) string {
	if cfg == nil {
		return ""
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   cfg.DBName,
	}
	if cfg.User != "" || cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	q := url.Values{}
	if cfg.SSLMode != "" {
		q.Set("sslmode", cfg.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String()
}
