// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrStartupFailed wraps the error returned by Lifespan.OnStartup. The
	// listener is never bound when it occurs.
	ErrStartupFailed = errors.New("startup hook failed")

	errNoServersAreCreated = errors.New("no servers are created")
	errAlreadyStarted      = errors.New("server already started")
)
