package service

import "errors"

var (
	// ErrDatabaseUnavailable is returned when the database cannot answer a
	// query: it is unreachable, rejects the credentials, or the query fails.
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
