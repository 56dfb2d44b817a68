// Package store implements the PostgreSQL persistence layer.
//
// [DB] is the process-wide engine: a single connection pool created once at
// startup and shared by every request. Requests talk to the database through
// a [Session], a dedicated connection acquired from the pool and released
// when the caller is done with it. [DB.WithSession] guarantees the release on
// every exit path.
package store
