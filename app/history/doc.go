// Package history keeps a log of script runs in a separate SQLite database. It goes through
// database/sql with the modernc driver and sqlx, independent of the binding it records.
package history
