// Package postgres implements the repository interfaces over PostgreSQL
// using sqlx. It is the alternative backend, disabled by default; select
// it with STORAGE_BACKEND=postgres and a DATABASE_URL. The schema lives
// in migrations/schema.sql.
package postgres

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/tripora/travel-booking-backend/internal/config"
)

// DB interface defines database operations used by the repositories
type DB interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Ping() error
	Close() error
}

// Conn implements the DB interface using sqlx
type Conn struct {
	*sqlx.DB
}

// Connect opens and verifies a database connection
func Connect(cfg config.DatabaseConfig) (*Conn, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := sqlx.Connect("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Conn{DB: db}, nil
}

// Get wraps sqlx.Get
func (c *Conn) Get(dest interface{}, query string, args ...interface{}) error {
	return c.DB.Get(dest, query, args...)
}

// Select wraps sqlx.Select
func (c *Conn) Select(dest interface{}, query string, args ...interface{}) error {
	return c.DB.Select(dest, query, args...)
}

// Exec wraps sqlx.Exec
func (c *Conn) Exec(query string, args ...interface{}) (sql.Result, error) {
	return c.DB.Exec(query, args...)
}

// QueryRow wraps sqlx.QueryRow
func (c *Conn) QueryRow(query string, args ...interface{}) *sql.Row {
	return c.DB.QueryRow(query, args...)
}

// Ping wraps sqlx.Ping
func (c *Conn) Ping() error {
	return c.DB.Ping()
}

// Close wraps sqlx.Close
func (c *Conn) Close() error {
	return c.DB.Close()
}
