// Package config assembles the login server settings.
//
// Sources are stacked by priority: environment variables, command-line flags,
// the JSON file named by either of them, then built-in defaults. For every
// field the first non-zero value wins. See [GetStructuredConfig].
package config
