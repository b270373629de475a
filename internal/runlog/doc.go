// Package runlog persists a history of alignment runs in a local SQLite
// database so operators can audit match quality over time.
package runlog
