package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may succeed on a
// later attempt. The server does not retry on its own: retryable failures
// are surfaced as [ErrDatabaseUnavailable] so callers can answer 503.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, syntax and data errors and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable covers connection loss, serialization failures, deadlocks
	// and a server that is still starting.
	Retryable
)

// ErrDatabaseUnavailable marks errors classified as [Retryable].
var ErrDatabaseUnavailable = errors.New("database temporarily unavailable")

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// error codes reported by pgconn.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its code.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to a classification.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.TooManyConnections:
		return Retryable
	}

	return NonRetryable
}

// queryError wraps a failed statement with sentinel and, for transient
// failures, ErrDatabaseUnavailable.
func (db *DB) queryError(err error) error {
	if db.Retryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrDatabaseUnavailable, ErrExecutingQuery, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
