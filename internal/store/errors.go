package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values; the driver error is always wrapped alongside.
var (
	// ErrConnectingDatabase is returned by [NewConnectPostgres] when the
	// initial ping fails (unreachable host, rejected credentials, missing
	// database).
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrInitializingSchema is returned by [DB.Init] when schema objects
	// cannot be created.
	ErrInitializingSchema = errors.New("error initializing database schema")

	// ErrAcquiringSession is returned when no connection can be taken from
	// the pool.
	ErrAcquiringSession = errors.New("error acquiring database session")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when reading the single result row of a
	// query fails, including when the query itself failed.
	ErrScanningRow = errors.New("failed to scan row")
)
