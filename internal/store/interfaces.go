package store

import (
	"context"
)

//go:generate mockgen -destination=../mock/store_mock.go -package=mock . InfoRepository

// InfoRepository reports facts about the database server itself.
type InfoRepository interface {
	// GetVersion returns the server version string as reported by
	// PostgreSQL's version() function.
	GetVersion(ctx context.Context) (string, error)
}

// ErrorClassificator maps driver errors to a coarse [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
