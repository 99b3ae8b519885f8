// Package config loads, merges and validates the client configuration.
//
// Sources are consulted in the following priority order (earlier sources
// win for every non-zero field):
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetClientConfig].
package config
