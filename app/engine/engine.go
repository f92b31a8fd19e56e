// Package engine is the boundary to the embedded SQLite engine. Every method maps to exactly one
// engine call and reports the raw status code, translation into errors is left to the caller.
package engine

import "fmt"

//go:generate moq -out mocks/opener.go -pkg mocks -skip-ensure -fmt goimports . Opener
//go:generate moq -out mocks/db.go -pkg mocks -skip-ensure -fmt goimports . DB
//go:generate moq -out mocks/stmt.go -pkg mocks -skip-ensure -fmt goimports . Stmt

// Opener is sqlite3_open_v2.
//
// An error opening the database can still return a non-nil DB. The caller owns it and has to
// close it.
type Opener interface {
	Open(filename string, flags OpenFlags, vfs string) (DB, Status)
}

// DB is an sqlite3* connection handle.
type DB interface {
	// Close is sqlite3_close_v2.
	Close() Status
	// Exec is sqlite3_exec with no callback.
	Exec(sql string) Status
	// Prepare is sqlite3_prepare_v2. It compiles the first statement of sql and returns the
	// unused remainder. A nil Stmt with StatusOK means sql had nothing to compile.
	Prepare(sql string) (stmt Stmt, tail string, rc Status)
	// ErrMsg is sqlite3_errmsg. The result is already copied out of engine memory.
	ErrMsg() string
	// Changes is sqlite3_changes.
	Changes() int
	// TotalChanges is sqlite3_total_changes.
	TotalChanges() int
	// LastInsertRowID is sqlite3_last_insert_rowid.
	LastInsertRowID() int64
	// BusyTimeout is sqlite3_busy_timeout.
	BusyTimeout(ms int) Status
	// ExtendedResultCodes is sqlite3_extended_result_codes.
	ExtendedResultCodes(on bool) Status
}

// Stmt is an sqlite3_stmt* compiled statement handle.
type Stmt interface {
	// Finalize is sqlite3_finalize.
	Finalize() Status
	// Step is sqlite3_step, StatusRow and StatusDone are not errors.
	Step() Status
	// Reset is sqlite3_reset.
	Reset() Status
	// ClearBindings is sqlite3_clear_bindings.
	ClearBindings() Status
	// BindParameterCount is sqlite3_bind_parameter_count.
	BindParameterCount() int
	// BindInt64 is sqlite3_bind_int64, idx is 1-based.
	BindInt64(idx int, v int64) Status
	// BindDouble is sqlite3_bind_double.
	BindDouble(idx int, v float64) Status
	// BindText is sqlite3_bind_text.
	BindText(idx int, v string) Status
	// BindBlob is sqlite3_bind_blob, a nil slice binds NULL.
	BindBlob(idx int, v []byte) Status
	// BindNull is sqlite3_bind_null.
	BindNull(idx int) Status
	// ColumnCount is sqlite3_column_count.
	ColumnCount() int
	// ColumnName is sqlite3_column_name, col is 0-based.
	ColumnName(col int) string
	// ColumnType is sqlite3_column_type.
	ColumnType(col int) ColumnType
	// ColumnInt64 is sqlite3_column_int64.
	ColumnInt64(col int) int64
	// ColumnDouble is sqlite3_column_double.
	ColumnDouble(col int) float64
	// ColumnText is sqlite3_column_text, copied.
	ColumnText(col int) string
	// ColumnBlob is sqlite3_column_blob, copied.
	ColumnBlob(col int) []byte
	// SQL is sqlite3_sql.
	SQL() string
}

// Status is an engine result code, primary or extended.
type Status int

// Primary result codes, see https://www.sqlite.org/rescode.html
const (
	StatusOK         Status = 0
	StatusError      Status = 1
	StatusInternal   Status = 2
	StatusPerm       Status = 3
	StatusAbort      Status = 4
	StatusBusy       Status = 5
	StatusLocked     Status = 6
	StatusNoMem      Status = 7
	StatusReadOnly   Status = 8
	StatusInterrupt  Status = 9
	StatusIOErr      Status = 10
	StatusCorrupt    Status = 11
	StatusNotFound   Status = 12
	StatusFull       Status = 13
	StatusCantOpen   Status = 14
	StatusProtocol   Status = 15
	StatusEmpty      Status = 16
	StatusSchema     Status = 17
	StatusTooBig     Status = 18
	StatusConstraint Status = 19
	StatusMismatch   Status = 20
	StatusMisuse     Status = 21
	StatusNoLFS      Status = 22
	StatusAuth       Status = 23
	StatusFormat     Status = 24
	StatusRange      Status = 25
	StatusNotADB     Status = 26
	StatusNotice     Status = 27
	StatusWarning    Status = 28
	StatusRow        Status = 100
	StatusDone       Status = 101
)

var statusNames = map[Status]string{
	StatusOK:         "SQLITE_OK",
	StatusError:      "SQLITE_ERROR",
	StatusInternal:   "SQLITE_INTERNAL",
	StatusPerm:       "SQLITE_PERM",
	StatusAbort:      "SQLITE_ABORT",
	StatusBusy:       "SQLITE_BUSY",
	StatusLocked:     "SQLITE_LOCKED",
	StatusNoMem:      "SQLITE_NOMEM",
	StatusReadOnly:   "SQLITE_READONLY",
	StatusInterrupt:  "SQLITE_INTERRUPT",
	StatusIOErr:      "SQLITE_IOERR",
	StatusCorrupt:    "SQLITE_CORRUPT",
	StatusNotFound:   "SQLITE_NOTFOUND",
	StatusFull:       "SQLITE_FULL",
	StatusCantOpen:   "SQLITE_CANTOPEN",
	StatusProtocol:   "SQLITE_PROTOCOL",
	StatusEmpty:      "SQLITE_EMPTY",
	StatusSchema:     "SQLITE_SCHEMA",
	StatusTooBig:     "SQLITE_TOOBIG",
	StatusConstraint: "SQLITE_CONSTRAINT",
	StatusMismatch:   "SQLITE_MISMATCH",
	StatusMisuse:     "SQLITE_MISUSE",
	StatusNoLFS:      "SQLITE_NOLFS",
	StatusAuth:       "SQLITE_AUTH",
	StatusFormat:     "SQLITE_FORMAT",
	StatusRange:      "SQLITE_RANGE",
	StatusNotADB:     "SQLITE_NOTADB",
	StatusNotice:     "SQLITE_NOTICE",
	StatusWarning:    "SQLITE_WARNING",
	StatusRow:        "SQLITE_ROW",
	StatusDone:       "SQLITE_DONE",
}

// extended result codes, see https://www.sqlite.org/rescode.html#extrc
var extendedCodes = map[Status]struct{}{
	// OK_LOAD_PERMANENTLY, OK_SYMLINK
	256: {}, 512: {},
	// ERROR_MISSING_COLLSEQ, ERROR_RETRY, ERROR_SNAPSHOT
	257: {}, 513: {}, 769: {},
	// ABORT_ROLLBACK
	516: {},
	// BUSY_RECOVERY, BUSY_SNAPSHOT, BUSY_TIMEOUT
	261: {}, 517: {}, 773: {},
	// LOCKED_SHAREDCACHE, LOCKED_VTAB
	262: {}, 518: {},
	// READONLY_RECOVERY through READONLY_DIRECTORY
	264: {}, 520: {}, 776: {}, 1032: {}, 1288: {}, 1544: {},
	// IOERR_READ through IOERR_IN_PAGE
	266: {}, 522: {}, 778: {}, 1034: {}, 1290: {}, 1546: {}, 1802: {}, 2058: {}, 2314: {},
	2570: {}, 2826: {}, 3082: {}, 3338: {}, 3594: {}, 3850: {}, 4106: {}, 4362: {}, 4618: {},
	4874: {}, 5130: {}, 5386: {}, 5642: {}, 5898: {}, 6154: {}, 6410: {}, 6666: {}, 6922: {},
	7178: {}, 7434: {}, 7690: {}, 7946: {}, 8202: {}, 8458: {}, 8714: {},
	// CORRUPT_VTAB, CORRUPT_SEQUENCE, CORRUPT_INDEX
	267: {}, 523: {}, 779: {},
	// CANTOPEN_NOTEMPDIR through CANTOPEN_SYMLINK
	270: {}, 526: {}, 782: {}, 1038: {}, 1294: {}, 1550: {},
	// CONSTRAINT_CHECK through CONSTRAINT_DATATYPE
	275: {}, 531: {}, 787: {}, 1043: {}, 1299: {}, 1555: {}, 1811: {}, 2067: {}, 2323: {},
	2579: {}, 2835: {}, 3091: {},
	// AUTH_USER
	279: {},
	// NOTICE_RECOVER_WAL, NOTICE_RECOVER_ROLLBACK, NOTICE_RBU
	283: {}, 539: {}, 795: {},
	// WARNING_AUTOINDEX
	284: {},
}

// Primary strips the extended bits, i.e. SQLITE_BUSY_SNAPSHOT becomes SQLITE_BUSY.
func (s Status) Primary() Status {
	return s & 0xff
}

// Known reports whether s is a primary or extended code the engine documents.
func (s Status) Known() bool {
	if s < 0 {
		return false
	}
	if s == s.Primary() {
		_, ok := statusNames[s]
		return ok
	}
	_, ok := extendedCodes[s]
	return ok
}

func (s Status) String() string {
	if !s.Known() {
		return fmt.Sprintf("SQLITE_UNKNOWN(%d)", int(s))
	}
	name := statusNames[s.Primary()]
	if s != s.Primary() {
		return fmt.Sprintf("%s(%d)", name, int(s))
	}
	return name
}

// ColumnType is the storage class of a column value in the current row.
type ColumnType int

// Storage classes, see https://www.sqlite.org/c3ref/c_blob.html
const (
	TypeInteger ColumnType = 1
	TypeFloat   ColumnType = 2
	TypeText    ColumnType = 3
	TypeBlob    ColumnType = 4
	TypeNull    ColumnType = 5
)

func (t ColumnType) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeText:
		return "TEXT"
	case TypeBlob:
		return "BLOB"
	case TypeNull:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// OpenFlags can be or'd together and passed to Opener.Open. Some of them only make sense for a
// VFS. See https://www.sqlite.org/c3ref/c_open_autoproxy.html
type OpenFlags int

// open flags
const (
	OpenReadOnly     OpenFlags = 0x00000001
	OpenReadWrite    OpenFlags = 0x00000002
	OpenCreate       OpenFlags = 0x00000004
	OpenURI          OpenFlags = 0x00000040
	OpenMemory       OpenFlags = 0x00000080
	OpenNoMutex      OpenFlags = 0x00008000
	OpenFullMutex    OpenFlags = 0x00010000
	OpenSharedCache  OpenFlags = 0x00020000
	OpenPrivateCache OpenFlags = 0x00040000
	OpenNoFollow     OpenFlags = 0x01000000
)

// DefaultOpenFlags opens read-write, creates a missing file, serializes access to the handle
// and accepts file: URIs.
const DefaultOpenFlags = OpenReadWrite | OpenCreate | OpenFullMutex | OpenURI
