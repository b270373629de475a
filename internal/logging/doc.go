// Package logging constructs the slog loggers used across subweave: JSON
// output for machine consumption and a compact console handler that colors
// levels when the output is a terminal.
package logging
