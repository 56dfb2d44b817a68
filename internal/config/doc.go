// Package config provides configuration loading and merging facilities for
// the application.
//
// Configuration is assembled once at process start from the following
// sources (later sources override earlier non-zero fields):
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// Every setting has a compiled-in default, so loading never fails because a
// variable is absent. The main entry point is [GetStructuredConfig].
package config
