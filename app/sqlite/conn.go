package sqlite

import (
	"fmt"
	"math"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/sqlbind/app/engine"
)

// Params defines how a connection is opened
type Params struct {
	Flags       engine.OpenFlags // engine.DefaultOpenFlags if zero
	VFS         string           // default VFS if empty
	BusyTimeout time.Duration    // applied right after open, zero leaves the engine default (no wait)
	Engine      engine.Opener    // engine.Native if nil
}

// Conn is an open database connection. The zero value is not usable, make it with Open or New.
type Conn struct {
	db    engine.DB
	path  string
	busy  time.Duration
	stmts map[*Stmt]struct{}
}

// TxMode selects the locking behavior of Begin
type TxMode int

// transaction modes, see https://www.sqlite.org/lang_transaction.html
const (
	TxDeferred TxMode = iota
	TxImmediate
	TxExclusive
)

func (m TxMode) String() string {
	switch m {
	case TxImmediate:
		return "immediate"
	case TxExclusive:
		return "exclusive"
	default:
		return "deferred"
	}
}

// ParseTxMode converts "deferred", "immediate" or "exclusive" to TxMode. Empty string is deferred.
func ParseTxMode(s string) (TxMode, error) {
	switch s {
	case "", "deferred":
		return TxDeferred, nil
	case "immediate":
		return TxImmediate, nil
	case "exclusive":
		return TxExclusive, nil
	default:
		return TxDeferred, fmt.Errorf("unknown transaction mode %q", s)
	}
}

// Open opens or creates the database file at path with default parameters
func Open(path string) (*Conn, error) {
	return New(path, Params{})
}

// New opens the database at path with the given params. On any failure the engine handle is
// released before returning.
func New(path string, params Params) (*Conn, error) {
	if params.Flags == 0 {
		params.Flags = engine.DefaultOpenFlags
	}
	if params.Engine == nil {
		params.Engine = engine.Native{}
	}

	db, rc := params.Engine.Open(path, params.Flags, params.VFS)
	if rc != engine.StatusOK {
		var err *Error
		if db != nil {
			err = newError(rc, db)
			if crc := db.Close(); crc != engine.StatusOK {
				log.Printf("[WARN] can't close half-open %s, %s", path, crc)
			}
		} else {
			err = newError(rc, nil)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if db == nil {
		return nil, fmt.Errorf("open %s: %w", path, misuse("engine returned no handle"))
	}

	c := &Conn{db: db, path: path, stmts: map[*Stmt]struct{}{}}
	if rc := db.ExtendedResultCodes(true); rc != engine.StatusOK {
		err := newError(rc, db)
		c.Close()
		return nil, fmt.Errorf("enable extended result codes: %w", err)
	}
	if params.BusyTimeout > 0 {
		if err := c.SetBusyTimeout(params.BusyTimeout); err != nil {
			c.Close()
			return nil, fmt.Errorf("set busy timeout: %w", err)
		}
	}
	log.Printf("[DEBUG] opened %s, flags %#x, busy timeout %v", path, int(params.Flags), c.busy)
	return c, nil
}

// Exec runs one or more complete SQL statements, results are discarded.
func (c *Conn) Exec(sql string) error {
	if c.db == nil {
		return misuse("connection is closed")
	}
	if rc := c.db.Exec(sql); rc != engine.StatusOK {
		return newError(rc, c.db)
	}
	return nil
}

// Prepare compiles the first statement of sql. Whatever follows it is kept in Stmt.Tail.
// SQL with nothing to compile, like an empty string or a comment, is an error.
func (c *Conn) Prepare(sql string) (*Stmt, error) {
	if c.db == nil {
		return nil, misuse("connection is closed")
	}

	h, tail, rc := c.db.Prepare(sql)
	if rc != engine.StatusOK {
		err := newError(rc, c.db)
		if h != nil {
			h.Finalize()
		}
		return nil, err
	}
	if h == nil {
		return nil, &Error{Code: engine.StatusError, Kind: KindGeneric, Message: noStatementMsg}
	}

	s := &Stmt{conn: c, h: h, tail: tail, state: StatePrepared}
	c.stmts[s] = struct{}{}
	return s, nil
}

// Changes returns the number of rows modified by the most recently completed statement,
// zero on a closed connection.
func (c *Conn) Changes() int {
	if c.db == nil {
		return 0
	}
	return c.db.Changes()
}

// TotalChanges returns the number of rows modified by all statements since the connection was
// opened, zero on a closed connection.
func (c *Conn) TotalChanges() int {
	if c.db == nil {
		return 0
	}
	return c.db.TotalChanges()
}

// LastInsertRowID returns the rowid of the most recent successful insert, zero on a closed connection.
func (c *Conn) LastInsertRowID() int64 {
	if c.db == nil {
		return 0
	}
	return c.db.LastInsertRowID()
}

// maxBusyTimeout is the longest wait the engine accepts, its timeout is an int32 of milliseconds
const maxBusyTimeout = time.Duration(math.MaxInt32) * time.Millisecond

// SetBusyTimeout sets how long engine calls wait for a lock held by another connection.
// Zero disables waiting and lock contention fails with a busy error right away. Negative is zero,
// anything above maxBusyTimeout (about 24.8 days) is maxBusyTimeout.
func (c *Conn) SetBusyTimeout(d time.Duration) error {
	if c.db == nil {
		return misuse("connection is closed")
	}
	d = min(max(d, 0), maxBusyTimeout)
	if rc := c.db.BusyTimeout(int(d.Milliseconds())); rc != engine.StatusOK {
		return newError(rc, c.db)
	}
	c.busy = d
	return nil
}

// BusyTimeout returns the timeout set by SetBusyTimeout
func (c *Conn) BusyTimeout() time.Duration {
	return c.busy
}

// Begin starts a transaction
func (c *Conn) Begin(mode TxMode) error {
	switch mode {
	case TxImmediate:
		return c.Exec("BEGIN IMMEDIATE")
	case TxExclusive:
		return c.Exec("BEGIN EXCLUSIVE")
	default:
		return c.Exec("BEGIN DEFERRED")
	}
}

// Commit commits the current transaction
func (c *Conn) Commit() error {
	return c.Exec("COMMIT")
}

// Rollback rolls back the current transaction
func (c *Conn) Rollback() error {
	return c.Exec("ROLLBACK")
}

// Path returns the path the connection was opened with
func (c *Conn) Path() string {
	return c.path
}

// Closed reports whether Close was called
func (c *Conn) Closed() bool {
	return c.db == nil
}

// Close finalizes all live statements and releases the connection. The handle is released once,
// repeated calls do nothing. Engine failures are logged, not returned.
func (c *Conn) Close() error {
	if c.db == nil {
		return nil
	}
	for s := range c.stmts {
		if err := s.finalize(); err != nil {
			log.Printf("[WARN] can't finalize %q on close of %s, %v", s.sqlText(), c.path, err)
		}
	}
	if rc := c.db.Close(); rc != engine.StatusOK {
		log.Printf("[WARN] can't close %s, %v", c.path, newError(rc, c.db))
	}
	c.db = nil
	log.Printf("[DEBUG] closed %s", c.path)
	return nil
}
