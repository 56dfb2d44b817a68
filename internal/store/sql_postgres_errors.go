package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It names the broad reason a database operation failed so that log entries
// can be grouped without parsing free-text driver messages.
type ErrorClassification int

const (
	// ClassUnknown is returned for nil errors and errors that carry no
	// PostgreSQL information.
	ClassUnknown ErrorClassification = iota

	// ClassConnection covers failures to reach the server (dial errors and
	// SQLSTATE class 08).
	ClassConnection

	// ClassAuthorization covers rejected credentials (class 28).
	ClassAuthorization

	// ClassMissingDatabase is reported when the target database does not
	// exist (class 3D).
	ClassMissingDatabase

	// ClassOperatorIntervention covers server shutdowns and "cannot connect
	// now" during startup (class 57).
	ClassOperatorIntervention

	// ClassQuery covers every other server-side error.
	ClassQuery
)

// String implements [fmt.Stringer].
func (c ErrorClassification) String() string {
	switch c {
	case ClassConnection:
		return "connection"
	case ClassAuthorization:
		return "authorization"
	case ClassMissingDatabase:
		return "missing_database"
	case ClassOperatorIntervention:
		return "operator_intervention"
	case ClassQuery:
		return "query"
	default:
		return "unknown"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the errors returned by the pgx driver and maps them to an
// [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. A *pgconn.PgError is mapped by
// its SQLSTATE via [ClassifyPgError]; a *pgconn.ConnectError (the server
// could not be reached or the handshake failed) is reported as
// [ClassConnection] unless it wraps a PgError.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ClassConnection
	}

	return ClassUnknown
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the class of its SQLSTATE code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch code := pgErr.Code; {
	case pgerrcode.IsConnectionException(code):
		return ClassConnection
	case pgerrcode.IsInvalidAuthorizationSpecification(code):
		return ClassAuthorization
	case pgerrcode.IsInvalidCatalogName(code):
		return ClassMissingDatabase
	case pgerrcode.IsOperatorIntervention(code):
		return ClassOperatorIntervention
	default:
		return ClassQuery
	}
}

// postgresError returns the SQLSTATE code carried by err, or "" when err is
// not a PostgreSQL server error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
