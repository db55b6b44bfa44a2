package database

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/compose-demos/cmd/config"
	_ "modernc.org/sqlite"
)

var schema = map[string]string{
	"sqlite": `CREATE TABLE IF NOT EXISTS task (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		deadline TEXT NOT NULL,
		category TEXT NOT NULL,
		is_done BOOLEAN NOT NULL DEFAULT 0
	)`,
	"mysql": `CREATE TABLE IF NOT EXISTS task (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		deadline VARCHAR(64) NOT NULL,
		category VARCHAR(64) NOT NULL,
		is_done BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// Open connects with the configured driver and creates the task table.
func Open(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driver := cfg.Database.Driver
	ddl, ok := schema[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// every sqlite connection to :memory: is its own database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}
