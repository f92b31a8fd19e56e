package sqlite

import (
	"errors"
	"fmt"

	"github.com/umputun/sqlbind/app/engine"
)

// Kind is a coarse classification of engine status codes.
type Kind int

// error kinds
const (
	KindOK Kind = iota
	KindGeneric
	KindBusy
	KindConstraint
	KindMisuse
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindGeneric:
		return "generic"
	case KindBusy:
		return "busy"
	case KindConstraint:
		return "constraint"
	case KindMisuse:
		return "misuse"
	default:
		return "unknown"
	}
}

// sentinels matched by kind with errors.Is
var (
	ErrGeneric    = &Error{Kind: KindGeneric, Code: engine.StatusError}
	ErrBusy       = &Error{Kind: KindBusy, Code: engine.StatusBusy}
	ErrConstraint = &Error{Kind: KindConstraint, Code: engine.StatusConstraint}
	ErrMisuse     = &Error{Kind: KindMisuse, Code: engine.StatusMisuse}
	ErrUnknown    = &Error{Kind: KindUnknown, Code: -1}
)

// Error is a failed engine call. Message is copied from the connection at the time of failure
// and stays valid after the connection is gone.
type Error struct {
	Code    engine.Status
	Kind    Kind
	Message string
}

// errMsgSource is the part of engine.DB used to read the current error message.
type errMsgSource interface {
	ErrMsg() string
}

// newError translates status into *Error. The message is read from db right away, a nil db
// leaves it empty.
func newError(status engine.Status, db errMsgSource) *Error {
	e := &Error{Code: status, Kind: classify(status)}
	if db != nil {
		e.Message = db.ErrMsg()
	}
	return e
}

// misuse is an error raised by the binding itself, without asking the engine.
func misuse(msg string) *Error {
	return &Error{Code: engine.StatusMisuse, Kind: KindMisuse, Message: msg}
}

// classify maps a documented code to its kind by the primary code. Only a plain SQLITE_OK is
// KindOK, extended OK codes are not a success of the call that returned them.
func classify(status engine.Status) Kind {
	if status == engine.StatusOK {
		return KindOK
	}
	if !status.Known() {
		return KindUnknown
	}
	switch status.Primary() {
	case engine.StatusOK:
		return KindUnknown
	case engine.StatusBusy, engine.StatusLocked:
		return KindBusy
	case engine.StatusConstraint:
		return KindConstraint
	case engine.StatusMisuse:
		return KindMisuse
	default:
		return KindGeneric
	}
}

// Error renders as "sqlite: SQLITE_BUSY (5): database is locked", the code in parentheses is
// the extended one when extended result codes are on.
func (e *Error) Error() string {
	name := "SQLITE_UNKNOWN"
	if e.Code.Known() {
		name = e.Code.Primary().String()
	}
	if e.Message == "" {
		return fmt.Sprintf("sqlite: %s (%d)", name, int(e.Code))
	}
	return fmt.Sprintf("sqlite: %s (%d): %s", name, int(e.Code), e.Message)
}

// Is matches another *Error by kind, so errors.Is(err, ErrBusy) holds for any busy or locked code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Primary returns the primary result code, extended bits stripped.
func (e *Error) Primary() engine.Status {
	return e.Code.Primary()
}

const noStatementMsg = "no statement to prepare"

// IsNoStatement reports whether err is Prepare rejecting SQL with nothing to compile,
// like whitespace or a trailing comment.
func IsNoStatement(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == engine.StatusError && e.Message == noStatementMsg
}

// IsBusy reports whether err is a busy or locked error.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}

// IsConstraint reports whether err is a constraint violation.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}
