// Package engine executes one alignment run end to end: ingest validation,
// sentence alignment, karaoke synthesis, and subtitle file emission.
package engine
