package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/gocode/elearning/internal/config"
)

// SQLSTATE classes returned by the server
const (
	codeInvalidPassword  = "28P01"
	codeInvalidAuthSpec  = "28000"
	codeDuplicateDB      = "42P04"
	codeInvalidCatalog   = "3D000"
	codeInsufficientPriv = "42501"
)

// Provisioner creates and drops the application database through the
// server's maintenance database.
type Provisioner struct {
	maintenanceDSN string
	dbName         string
	owner          string
	logger         zerolog.Logger
}

// NewProvisioner creates a Provisioner from the database section of cfg
func NewProvisioner(cfg *config.Config, logger zerolog.Logger) *Provisioner {
	return &Provisioner{
		maintenanceDSN: cfg.GetMaintenanceConnectionString(),
		dbName:         cfg.Database.DBName,
		owner:          cfg.Database.User,
		logger:         logger,
	}
}

// WaitForServer pings the maintenance database until it answers, giving up after attempts tries
func (p *Provisioner) WaitForServer(ctx context.Context, attempts int, delay time.Duration) error {
	var err error
	for i := 1; i <= attempts; i++ {
		err = p.withConn(ctx, func(conn *sql.DB) error { return conn.PingContext(ctx) })
		if err == nil {
			return nil
		}

		p.logger.Warn().Err(err).Int("attempt", i).Msg("Database server not ready, retrying...")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return Explain(err)
}

// Exists reports whether the application database is present
func (p *Provisioner) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := p.withConn(ctx, func(conn *sql.DB) error {
		return conn.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", p.dbName).Scan(&exists)
	})
	if err != nil {
		return false, Explain(err)
	}
	return exists, nil
}

// Create creates the application database. An existing database is left alone.
func (p *Provisioner) Create(ctx context.Context) (bool, error) {
	err := p.withConn(ctx, func(conn *sql.DB) error {
		_, err := conn.ExecContext(ctx, CreateDatabaseSQL(p.dbName, p.owner))
		return err
	})
	if isCode(err, codeDuplicateDB) {
		p.logger.Info().Str("dbname", p.dbName).Msg("Database already exists")
		return false, nil
	}
	if err != nil {
		return false, Explain(err)
	}

	p.logger.Info().Str("dbname", p.dbName).Msg("Database created")
	return true, nil
}

// Drop removes the application database, terminating open sessions first
func (p *Provisioner) Drop(ctx context.Context) error {
	err := p.withConn(ctx, func(conn *sql.DB) error {
		if _, err := conn.ExecContext(ctx,
			"SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()",
			p.dbName); err != nil {
			return err
		}
		_, err := conn.ExecContext(ctx, DropDatabaseSQL(p.dbName))
		return err
	})
	if err != nil {
		return Explain(err)
	}

	p.logger.Info().Str("dbname", p.dbName).Msg("Database dropped")
	return nil
}

func (p *Provisioner) withConn(ctx context.Context, fn func(conn *sql.DB) error) error {
	conn, err := sql.Open("postgres", p.maintenanceDSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	conn.SetMaxOpenConns(1)
	return fn(conn)
}

// CreateDatabaseSQL builds the CREATE DATABASE statement; identifiers cannot be bound as parameters
func CreateDatabaseSQL(dbName, owner string) string {
	stmt := "CREATE DATABASE " + pq.QuoteIdentifier(dbName) + " WITH ENCODING 'UTF8'"
	if owner != "" {
		stmt += " OWNER " + pq.QuoteIdentifier(owner)
	}
	return stmt
}

// DropDatabaseSQL builds the DROP DATABASE statement
func DropDatabaseSQL(dbName string) string {
	return "DROP DATABASE IF EXISTS " + pq.QuoteIdentifier(dbName)
}

// Explain adds an operator-facing hint to common connection failures
func Explain(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeInvalidPassword, codeInvalidAuthSpec:
			return fmt.Errorf("authentication failed, check DB_USER and DB_PASSWORD: %w", err)
		case codeInsufficientPriv:
			return fmt.Errorf("the database user lacks the CREATEDB privilege: %w", err)
		case codeInvalidCatalog:
			return fmt.Errorf("database does not exist, run the createdb command first: %w", err)
		}
		return err
	}

	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.As(err, &netErr) {
		return fmt.Errorf("database server unreachable, check DB_HOST and DB_PORT: %w", err)
	}
	return err
}

func isCode(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
