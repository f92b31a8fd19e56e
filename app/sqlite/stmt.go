package sqlite

import (
	"fmt"
	"math"
	"time"

	"github.com/umputun/sqlbind/app/engine"
)

// State of a prepared statement
type State int

// statement states
const (
	StatePrepared State = iota
	StateBound
	StateRow
	StateDone
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StatePrepared:
		return "prepared"
	case StateBound:
		return "bound"
	case StateRow:
		return "row"
	case StateDone:
		return "done"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Stmt is a compiled statement. It borrows the Conn that prepared it and can't outlive it,
// every call after the connection is closed fails with a misuse error.
type Stmt struct {
	conn   *Conn
	h      engine.Stmt
	tail   string
	state  State
	bound  bool
	failed engine.Status // status of the last failed Step, until Reset
}

// BindInt64 binds v to the 1-based parameter idx
func (s *Stmt) BindInt64(idx int, v int64) error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.bindResult(s.h.BindInt64(idx, v))
}

// BindFloat binds v to the 1-based parameter idx
func (s *Stmt) BindFloat(idx int, v float64) error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.bindResult(s.h.BindDouble(idx, v))
}

// BindText binds v to the 1-based parameter idx
func (s *Stmt) BindText(idx int, v string) error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.bindResult(s.h.BindText(idx, v))
}

// BindBlob binds v to the 1-based parameter idx, nil binds NULL
func (s *Stmt) BindBlob(idx int, v []byte) error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.bindResult(s.h.BindBlob(idx, v))
}

// BindNull binds NULL to the 1-based parameter idx
func (s *Stmt) BindNull(idx int) error {
	if err := s.alive(); err != nil {
		return err
	}
	return s.bindResult(s.h.BindNull(idx))
}

// Bind binds a Go value to the 1-based parameter idx. Supported are nil, bool, all int and uint
// kinds (uint values must fit int64), float32, float64, string, []byte and time.Time, stored as
// RFC3339Nano text.
func (s *Stmt) Bind(idx int, v any) error {
	switch val := v.(type) {
	case nil:
		return s.BindNull(idx)
	case bool:
		if val {
			return s.BindInt64(idx, 1)
		}
		return s.BindInt64(idx, 0)
	case int:
		return s.BindInt64(idx, int64(val))
	case int8:
		return s.BindInt64(idx, int64(val))
	case int16:
		return s.BindInt64(idx, int64(val))
	case int32:
		return s.BindInt64(idx, int64(val))
	case int64:
		return s.BindInt64(idx, val)
	case uint8:
		return s.BindInt64(idx, int64(val))
	case uint16:
		return s.BindInt64(idx, int64(val))
	case uint32:
		return s.BindInt64(idx, int64(val))
	case uint:
		return s.bindUint(idx, uint64(val))
	case uint64:
		return s.bindUint(idx, val)
	case float32:
		return s.BindFloat(idx, float64(val))
	case float64:
		return s.BindFloat(idx, val)
	case string:
		return s.BindText(idx, val)
	case []byte:
		return s.BindBlob(idx, val)
	case time.Time:
		return s.BindText(idx, val.Format(time.RFC3339Nano))
	default:
		return &Error{Code: engine.StatusMismatch, Kind: KindGeneric, Message: fmt.Sprintf("can't bind %T to parameter %d", v, idx)}
	}
}

func (s *Stmt) bindUint(idx int, v uint64) error {
	if v > math.MaxInt64 {
		return &Error{Code: engine.StatusRange, Kind: KindGeneric, Message: fmt.Sprintf("value %d for parameter %d overflows int64", v, idx)}
	}
	return s.BindInt64(idx, int64(v))
}

// BindAll clears all bindings and binds args to parameters 1..len(args)
func (s *Stmt) BindAll(args ...any) error {
	if err := s.ClearBindings(); err != nil {
		return err
	}
	for i, arg := range args {
		if err := s.Bind(i+1, arg); err != nil {
			return err
		}
	}
	return nil
}

// ParamCount returns the number of parameters in the statement, zero for a dead statement
func (s *Stmt) ParamCount() int {
	if s.alive() != nil {
		return 0
	}
	return s.h.BindParameterCount()
}

// Step advances the statement. It returns true when a row is available and false when done.
func (s *Stmt) Step() (bool, error) {
	if err := s.alive(); err != nil {
		return false, err
	}
	switch rc := s.h.Step(); rc {
	case engine.StatusRow:
		s.state = StateRow
		return true, nil
	case engine.StatusDone:
		s.state = StateDone
		return false, nil
	default:
		s.state = StateDone
		s.failed = rc
		return false, newError(rc, s.conn.db)
	}
}

// Reset rewinds the statement so it can be stepped again, bindings are kept.
// The error, if any, is the one of the last failed Step.
func (s *Stmt) Reset() error {
	if err := s.alive(); err != nil {
		return err
	}
	rc := s.h.Reset()
	s.failed = engine.StatusOK
	s.state = StatePrepared
	if s.bound {
		s.state = StateBound
	}
	if rc != engine.StatusOK {
		return newError(rc, s.conn.db)
	}
	return nil
}

// ClearBindings sets all parameters to NULL
func (s *Stmt) ClearBindings() error {
	if err := s.alive(); err != nil {
		return err
	}
	if rc := s.h.ClearBindings(); rc != engine.StatusOK {
		return newError(rc, s.conn.db)
	}
	s.bound = false
	if s.state == StateBound {
		s.state = StatePrepared
	}
	return nil
}

// Exec binds args, if any, steps the statement until done and resets it. Rows are discarded.
func (s *Stmt) Exec(args ...any) error {
	if len(args) > 0 {
		if err := s.BindAll(args...); err != nil {
			return err
		}
	}
	for {
		row, err := s.Step()
		if err != nil {
			_ = s.Reset()
			return err
		}
		if !row {
			break
		}
	}
	return s.Reset()
}

// ColumnCount returns the number of result columns, zero for statements without results
func (s *Stmt) ColumnCount() int {
	if s.alive() != nil {
		return 0
	}
	return s.h.ColumnCount()
}

// ColumnName returns the name of the 0-based result column col. Unlike values, names are
// available before the first Step.
func (s *Stmt) ColumnName(col int) (string, error) {
	if err := s.alive(); err != nil {
		return "", err
	}
	if err := s.checkColumn(col); err != nil {
		return "", err
	}
	return s.h.ColumnName(col), nil
}

// ColumnNames returns names of all result columns, nil for statements without results
func (s *Stmt) ColumnNames() []string {
	n := s.ColumnCount()
	if n == 0 {
		return nil
	}
	res := make([]string, n)
	for i := range n {
		res[i] = s.h.ColumnName(i)
	}
	return res
}

// ColumnType returns the storage class of column col in the current row
func (s *Stmt) ColumnType(col int) (engine.ColumnType, error) {
	if err := s.rowColumn(col); err != nil {
		return engine.TypeNull, err
	}
	return s.h.ColumnType(col), nil
}

// ColumnInt64 returns column col of the current row as int64
func (s *Stmt) ColumnInt64(col int) (int64, error) {
	if err := s.rowColumn(col); err != nil {
		return 0, err
	}
	return s.h.ColumnInt64(col), nil
}

// ColumnFloat returns column col of the current row as float64
func (s *Stmt) ColumnFloat(col int) (float64, error) {
	if err := s.rowColumn(col); err != nil {
		return 0, err
	}
	return s.h.ColumnDouble(col), nil
}

// ColumnText returns column col of the current row as string, NULL is empty
func (s *Stmt) ColumnText(col int) (string, error) {
	if err := s.rowColumn(col); err != nil {
		return "", err
	}
	return s.h.ColumnText(col), nil
}

// ColumnBlob returns a copy of column col of the current row, NULL is nil
func (s *Stmt) ColumnBlob(col int) ([]byte, error) {
	if err := s.rowColumn(col); err != nil {
		return nil, err
	}
	return s.h.ColumnBlob(col), nil
}

// Column returns column col of the current row as int64, float64, string, []byte or nil,
// following its storage class.
func (s *Stmt) Column(col int) (any, error) {
	typ, err := s.ColumnType(col)
	if err != nil {
		return nil, err
	}
	switch typ {
	case engine.TypeInteger:
		return s.h.ColumnInt64(col), nil
	case engine.TypeFloat:
		return s.h.ColumnDouble(col), nil
	case engine.TypeText:
		return s.h.ColumnText(col), nil
	case engine.TypeBlob:
		return s.h.ColumnBlob(col), nil
	default:
		return nil, nil
	}
}

// Scan copies the first len(dest) columns of the current row into dest. Supported targets are
// *int, *int64, *float64, *bool, *string, *[]byte, *time.Time (RFC3339Nano text) and *any.
// A nil target skips the column.
func (s *Stmt) Scan(dest ...any) error {
	if err := s.alive(); err != nil {
		return err
	}
	if s.state != StateRow {
		return misuse("no current row, call Step first")
	}
	if n := s.h.ColumnCount(); len(dest) > n {
		return &Error{Code: engine.StatusRange, Kind: KindGeneric,
			Message: fmt.Sprintf("%d scan targets for %d columns", len(dest), n)}
	}

	for i, d := range dest {
		switch p := d.(type) {
		case nil:
		case *int64:
			*p = s.h.ColumnInt64(i)
		case *int:
			*p = int(s.h.ColumnInt64(i))
		case *float64:
			*p = s.h.ColumnDouble(i)
		case *bool:
			*p = s.h.ColumnInt64(i) != 0
		case *string:
			*p = s.h.ColumnText(i)
		case *[]byte:
			*p = s.h.ColumnBlob(i)
		case *time.Time:
			if s.h.ColumnType(i) == engine.TypeNull {
				*p = time.Time{}
				continue
			}
			ts, err := time.Parse(time.RFC3339Nano, s.h.ColumnText(i))
			if err != nil {
				return &Error{Code: engine.StatusMismatch, Kind: KindGeneric,
					Message: fmt.Sprintf("column %d is not a timestamp: %v", i, err)}
			}
			*p = ts
		case *any:
			v, err := s.Column(i)
			if err != nil {
				return err
			}
			*p = v
		default:
			return &Error{Code: engine.StatusMismatch, Kind: KindGeneric,
				Message: fmt.Sprintf("can't scan column %d into %T", i, d)}
		}
	}
	return nil
}

// SQL returns the text of the compiled statement
func (s *Stmt) SQL() string {
	if s.alive() != nil {
		return ""
	}
	return s.h.SQL()
}

// Tail returns the part of the prepared SQL that follows the compiled statement
func (s *Stmt) Tail() string {
	return s.tail
}

// State returns the current state of the statement
func (s *Stmt) State() State {
	return s.state
}

// Finalize releases the statement. It is safe to call more than once, and after the connection
// is closed, only the first call does anything. The engine repeats the error of a failed Step
// not followed by Reset, that error was already returned by Step and is not returned again.
func (s *Stmt) Finalize() error {
	if s.h == nil {
		return nil
	}
	return s.finalize()
}

// Close is Finalize, for io.Closer
func (s *Stmt) Close() error {
	return s.Finalize()
}

func (s *Stmt) finalize() error {
	if s.h == nil {
		return nil
	}
	rc := s.h.Finalize()
	s.h = nil
	s.state = StateFinalized
	delete(s.conn.stmts, s)
	if rc == s.failed {
		return nil
	}
	if rc != engine.StatusOK && s.conn.db != nil {
		return newError(rc, s.conn.db)
	}
	return nil
}

// sqlText is SQL for log messages, safe on any statement
func (s *Stmt) sqlText() string {
	if s.h == nil {
		return ""
	}
	return s.h.SQL()
}

func (s *Stmt) alive() error {
	if s.conn == nil || s.conn.db == nil {
		return misuse("statement used after connection closed")
	}
	if s.h == nil {
		return misuse("statement is finalized")
	}
	return nil
}

// bindResult translates a bind status and moves the state to bound on success
func (s *Stmt) bindResult(rc engine.Status) error {
	if rc != engine.StatusOK {
		return newError(rc, s.conn.db)
	}
	s.bound = true
	if s.state == StatePrepared || s.state == StateDone {
		s.state = StateBound
	}
	return nil
}

func (s *Stmt) checkColumn(col int) error {
	if n := s.h.ColumnCount(); col < 0 || col >= n {
		return &Error{Code: engine.StatusRange, Kind: KindGeneric,
			Message: fmt.Sprintf("column index %d out of range [0,%d)", col, n)}
	}
	return nil
}

// rowColumn checks the statement is alive, has a current row and col is in range
func (s *Stmt) rowColumn(col int) error {
	if err := s.alive(); err != nil {
		return err
	}
	if s.state != StateRow {
		return misuse("no current row, call Step first")
	}
	return s.checkColumn(col)
}
