package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"loyalty-server/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
	ErrConflict  = errors.New("conflict")

	ErrNotConnected = errors.New("store is not connected")
)

// dbtx is satisfied by both *sqlx.DB and *sqlx.Tx, so every query method
// runs unchanged inside or outside a transaction.
type dbtx interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Store struct {
	db     dbtx
	conn   *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		log.Fatal(err)
		return Store{}, err
	}
	return Store{db: db, conn: db, logger: logger}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.conn
}

// Ping verifies the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.conn == nil {
		return ErrNotConnected
	}
	return s.conn.PingContext(ctx)
}

// Close closes the connection pool
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// InTx runs fn inside one transaction. The transaction commits only if fn
// returns nil; any error or panic rolls everything back. Calling InTx on a
// store that is already transactional reuses the open transaction.
func (s *Store) InTx(ctx context.Context, fn func(q LoyaltyQueries) error) (err error) {
	if _, ok := s.db.(*sqlx.Tx); ok {
		return fn(s)
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txStore := &Store{db: tx, conn: s.conn, logger: s.logger}
	if err = fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error(ctx, "failed to rollback transaction", rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
