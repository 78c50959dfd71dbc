// Package cmrenv is documented in errors.go, stats.go, and env.go.
package cmrenv
