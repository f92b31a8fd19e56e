// Package sqlite is a thin binding over the embedded SQLite engine. It owns the lifecycle of
// connection and statement handles and turns engine status codes into *Error values.
//
// A Conn and the statements prepared on it are not safe for concurrent use. Use one goroutine per
// Conn, or serialize access outside. Busy waiting happens inside engine calls and is governed by
// the connection's busy timeout, nothing is retried here.
package sqlite
