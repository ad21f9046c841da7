// Package sqlite implementa los repositorios sobre SQLite local (mattn/go-sqlite3) o libsql remoto.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/jhoicas/golden-burgers/internal/domain/catalog"
	"github.com/jhoicas/golden-burgers/pkg/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion se guarda en PRAGMA user_version tras crear el esquema y sembrar el catálogo.
const schemaVersion = 1

// OpenDB abre la conexión según el driver configurado (sqlite o libsql).
func OpenDB(ctx context.Context, cfg config.StoreConfig) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverLibSQL:
		connStr := cfg.LibSQLURL
		if cfg.LibSQLToken != "" {
			connStr += "?authToken=" + cfg.LibSQLToken
		}
		db, err = sql.Open("libsql", connStr)
		if err != nil {
			return nil, fmt.Errorf("libsql connection failed: %w", err)
		}
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("crear directorio de la base: %w", err)
			}
		}
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", cfg.SQLitePath)
		db, err = sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection failed: %w", err)
		}
		// Un solo escritor: evita SQLITE_BUSY entre conexiones del mismo proceso.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return db, nil
}

// Migrate crea las tablas si faltan y siembra el catálogo una única vez.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range splitStatements(schemaSQL) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}

	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("leer user_version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertProducts(ctx, tx, catalog.Seed()); err != nil {
		return fmt.Errorf("sembrar catálogo: %w", err)
	}
	// PRAGMA no admite parámetros.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("fijar user_version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func splitStatements(script string) []string {
	var out []string
	for _, s := range strings.Split(script, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
