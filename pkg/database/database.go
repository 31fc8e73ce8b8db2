package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/noah-isme/attendance-tracker-api/pkg/config"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Target is a resolved driver name and DSN.
type Target struct {
	Driver string
	DSN    string
}

// ParseURL maps DATABASE_URL onto a driver. Bare paths and sqlite:// URLs select the
// embedded store; postgres:// and postgresql:// select PostgreSQL.
func ParseURL(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return Target{}, fmt.Errorf("database url is empty")
	case strings.HasPrefix(raw, "postgres://"):
		return Target{Driver: DriverPostgres, DSN: "postgresql://" + strings.TrimPrefix(raw, "postgres://")}, nil
	case strings.HasPrefix(raw, "postgresql://"):
		return Target{Driver: DriverPostgres, DSN: raw}, nil
	case strings.HasPrefix(raw, "sqlite:///"):
		// sqlite:///relative.db and sqlite:////abs/file.db
		return sqliteTarget(strings.TrimPrefix(raw, "sqlite:///")), nil
	case strings.HasPrefix(raw, "sqlite://"):
		return sqliteTarget(strings.TrimPrefix(raw, "sqlite://")), nil
	case strings.Contains(raw, "://"):
		return Target{}, fmt.Errorf("unsupported database url scheme: %s", raw)
	default:
		return sqliteTarget(raw), nil
	}
}

func sqliteTarget(path string) Target {
	if path == "" {
		path = ":memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return Target{Driver: DriverSQLite, DSN: path + sep + "_foreign_keys=on&_busy_timeout=5000"}
}

// Open returns a configured database handle with the schema applied. The caller owns
// the handle and must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	target, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if target.Driver == DriverSQLite {
		if err := ensureDir(target.DSN); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", target.Driver, err)
	}

	if target.Driver == DriverSQLite {
		// single writer; also keeps :memory: databases on one connection
		db.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		db.SetConnMaxLifetime(1 * time.Hour)
		db.SetConnMaxIdleTime(30 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", target.Driver, err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func ensureDir(dsn string) error {
	path := dsn
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "file:")
	if path == "" || strings.Contains(path, ":memory:") {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database dir: %w", err)
		}
	}
	return nil
}
