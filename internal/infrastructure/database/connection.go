package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"tscat/internal/ports/output"
)

const sqliteScheme = "sqlite://"

// Repository is a catalog store holding a connection.
type Repository interface {
	output.CatalogRepository
	Close() error
}

// Driver returns the backend named by the DSN scheme: "postgres" or "sqlite".
func Driver(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}

// Open migrates the database named by dsn and returns its catalog repository.
func Open(ctx context.Context, dsn string) (Repository, error) {
	driver, err := Driver(dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(dsn); err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		db, err := OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return NewSQLiteRepository(db), nil
	}
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return NewPostgresRepository(pool), nil
}

// NewPool creates a pgx connection pool for PostgreSQL.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Println("✅ PostgreSQL catalog store connected.")
	return pool, nil
}

// OpenSQLite opens the database file named by a sqlite:// DSN.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	path := strings.TrimPrefix(dsn, sqliteScheme)
	if path == "" {
		return nil, fmt.Errorf("sqlite dsn %q has no path", dsn)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	log.Printf("✅ SQLite catalog store opened (%s).", path)
	return db, nil
}
