// Package http implements the REST surface of leads-api.
//
// It wires the chi router with panic recovery, trace ids, access logging,
// an optional per-request timeout, response compression and, in debug mode,
// a permissive CORS policy for the local frontend dev server.
package http
