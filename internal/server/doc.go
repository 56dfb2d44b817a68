// Package server runs the HTTP transport of leads-api.
//
// It binds the listener after the startup hook has succeeded, blocks until
// the context is cancelled or a termination signal arrives, then drains
// in-flight requests and runs the shutdown hook.
package server
