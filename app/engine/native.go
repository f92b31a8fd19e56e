package engine

import (
	"unsafe"

	"modernc.org/libc"
	"modernc.org/libc/sys/types"
	sqlite3 "modernc.org/sqlite/lib"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// Native is the SQLite engine translated to Go by modernc.org, no cgo involved.
// Each opened DB gets its own libc TLS and must not be used concurrently.
type Native struct{}

// Open opens filename with sqlite3_open_v2. A handle returned together with a failing status
// has to be closed by the caller.
func (Native) Open(filename string, flags OpenFlags, vfs string) (DB, Status) {
	tls := libc.NewTLS()
	h, rc := openV2(tls, filename, int32(flags), vfs)
	if h == 0 {
		tls.Close()
		return nil, rc
	}
	return &nativeDB{tls: tls, db: h}, rc
}

// Version returns the engine library version, i.e. "3.51.2"
func (Native) Version() string {
	tls := libc.NewTLS()
	defer tls.Close()
	return libc.GoString(sqlite3.Xsqlite3_libversion(tls))
}

func openV2(tls *libc.TLS, filename string, flags int32, vfs string) (uintptr, Status) {
	zName, err := libc.CString(filename)
	if err != nil {
		return 0, StatusNoMem
	}
	defer libc.Xfree(tls, zName)

	var zVfs uintptr
	if vfs != "" {
		if zVfs, err = libc.CString(vfs); err != nil {
			return 0, StatusNoMem
		}
		defer libc.Xfree(tls, zVfs)
	}

	ppDB := libc.Xmalloc(tls, types.Size_t(ptrSize))
	if ppDB == 0 {
		return 0, StatusNoMem
	}
	defer libc.Xfree(tls, ppDB)
	*(*uintptr)(unsafe.Pointer(ppDB)) = 0

	rc := sqlite3.Xsqlite3_open_v2(tls, zName, ppDB, flags, zVfs)
	return *(*uintptr)(unsafe.Pointer(ppDB)), Status(rc)
}

type nativeDB struct {
	tls *libc.TLS
	db  uintptr // *sqlite3.Xsqlite3
}

func (d *nativeDB) Close() Status {
	if d.db == 0 {
		return StatusMisuse
	}
	rc := Status(sqlite3.Xsqlite3_close_v2(d.tls, d.db))
	if rc != StatusOK {
		return rc
	}
	d.db = 0
	d.tls.Close()
	d.tls = nil
	return rc
}

func (d *nativeDB) Exec(sql string) Status {
	if d.db == 0 {
		return StatusMisuse
	}
	zSQL, err := libc.CString(sql)
	if err != nil {
		return StatusNoMem
	}
	defer libc.Xfree(d.tls, zSQL)
	return Status(sqlite3.Xsqlite3_exec(d.tls, d.db, zSQL, 0, 0, 0))
}

func (d *nativeDB) Prepare(sql string) (Stmt, string, Status) {
	if d.db == 0 {
		return nil, "", StatusMisuse
	}
	zSQL, err := libc.CString(sql)
	if err != nil {
		return nil, "", StatusNoMem
	}
	defer libc.Xfree(d.tls, zSQL)

	out := libc.Xmalloc(d.tls, types.Size_t(2*ptrSize)) // stmt and tail pointers
	if out == 0 {
		return nil, "", StatusNoMem
	}
	defer libc.Xfree(d.tls, out)
	ppStmt, ppTail := out, out+ptrSize
	*(*uintptr)(unsafe.Pointer(ppStmt)) = 0
	*(*uintptr)(unsafe.Pointer(ppTail)) = 0

	rc := Status(sqlite3.Xsqlite3_prepare_v2(d.tls, d.db, zSQL, -1, ppStmt, ppTail))
	pstmt := *(*uintptr)(unsafe.Pointer(ppStmt))

	var tail string
	if pTail := *(*uintptr)(unsafe.Pointer(ppTail)); pTail >= zSQL && int(pTail-zSQL) <= len(sql) {
		tail = sql[pTail-zSQL:]
	}

	if pstmt == 0 {
		return nil, tail, rc
	}
	return &nativeStmt{d: d, stmt: pstmt, allocs: map[int]uintptr{}}, tail, rc
}

func (d *nativeDB) ErrMsg() string {
	if d.db == 0 {
		return ""
	}
	return libc.GoString(sqlite3.Xsqlite3_errmsg(d.tls, d.db))
}

func (d *nativeDB) Changes() int {
	if d.db == 0 {
		return 0
	}
	return int(sqlite3.Xsqlite3_changes(d.tls, d.db))
}

func (d *nativeDB) TotalChanges() int {
	if d.db == 0 {
		return 0
	}
	return int(sqlite3.Xsqlite3_total_changes(d.tls, d.db))
}

func (d *nativeDB) LastInsertRowID() int64 {
	if d.db == 0 {
		return 0
	}
	return int64(sqlite3.Xsqlite3_last_insert_rowid(d.tls, d.db))
}

func (d *nativeDB) BusyTimeout(ms int) Status {
	if d.db == 0 {
		return StatusMisuse
	}
	return Status(sqlite3.Xsqlite3_busy_timeout(d.tls, d.db, int32(ms)))
}

func (d *nativeDB) ExtendedResultCodes(on bool) Status {
	if d.db == 0 {
		return StatusMisuse
	}
	return Status(sqlite3.Xsqlite3_extended_result_codes(d.tls, d.db, libc.Bool32(on)))
}

// nativeStmt keeps text and blob parameter copies alive until they are rebound, cleared or the
// statement is finalized, the engine binds them without copying.
type nativeStmt struct {
	d      *nativeDB
	stmt   uintptr // *sqlite3.Xsqlite3_stmt
	allocs map[int]uintptr
}

func (s *nativeStmt) Finalize() Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	rc := Status(sqlite3.Xsqlite3_finalize(s.d.tls, s.stmt))
	s.stmt = 0
	s.freeAll()
	return rc
}

func (s *nativeStmt) Step() Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	return Status(sqlite3.Xsqlite3_step(s.d.tls, s.stmt))
}

func (s *nativeStmt) Reset() Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	return Status(sqlite3.Xsqlite3_reset(s.d.tls, s.stmt))
}

func (s *nativeStmt) ClearBindings() Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	rc := Status(sqlite3.Xsqlite3_clear_bindings(s.d.tls, s.stmt))
	if rc == StatusOK {
		s.freeAll()
	}
	return rc
}

func (s *nativeStmt) BindParameterCount() int {
	if s.stmt == 0 {
		return 0
	}
	return int(sqlite3.Xsqlite3_bind_parameter_count(s.d.tls, s.stmt))
}

func (s *nativeStmt) BindInt64(idx int, v int64) Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	rc := Status(sqlite3.Xsqlite3_bind_int64(s.d.tls, s.stmt, int32(idx), v))
	s.keep(rc, idx, 0)
	return rc
}

func (s *nativeStmt) BindDouble(idx int, v float64) Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	rc := Status(sqlite3.Xsqlite3_bind_double(s.d.tls, s.stmt, int32(idx), v))
	s.keep(rc, idx, 0)
	return rc
}

func (s *nativeStmt) BindText(idx int, v string) Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	p, err := libc.CString(v)
	if err != nil {
		return StatusNoMem
	}
	rc := Status(sqlite3.Xsqlite3_bind_text(s.d.tls, s.stmt, int32(idx), p, int32(len(v)), 0))
	s.keep(rc, idx, p)
	return rc
}

func (s *nativeStmt) BindBlob(idx int, v []byte) Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	if v == nil {
		return s.BindNull(idx)
	}
	if len(v) == 0 {
		rc := Status(sqlite3.Xsqlite3_bind_zeroblob(s.d.tls, s.stmt, int32(idx), 0))
		s.keep(rc, idx, 0)
		return rc
	}

	p := libc.Xmalloc(s.d.tls, types.Size_t(len(v)))
	if p == 0 {
		return StatusNoMem
	}
	copy((*libc.RawMem)(unsafe.Pointer(p))[:len(v):len(v)], v)
	rc := Status(sqlite3.Xsqlite3_bind_blob(s.d.tls, s.stmt, int32(idx), p, int32(len(v)), 0))
	s.keep(rc, idx, p)
	return rc
}

func (s *nativeStmt) BindNull(idx int) Status {
	if s.stmt == 0 {
		return StatusMisuse
	}
	rc := Status(sqlite3.Xsqlite3_bind_null(s.d.tls, s.stmt, int32(idx)))
	s.keep(rc, idx, 0)
	return rc
}

func (s *nativeStmt) ColumnCount() int {
	if s.stmt == 0 {
		return 0
	}
	return int(sqlite3.Xsqlite3_column_count(s.d.tls, s.stmt))
}

func (s *nativeStmt) ColumnName(col int) string {
	if s.stmt == 0 {
		return ""
	}
	return libc.GoString(sqlite3.Xsqlite3_column_name(s.d.tls, s.stmt, int32(col)))
}

func (s *nativeStmt) ColumnType(col int) ColumnType {
	if s.stmt == 0 {
		return TypeNull
	}
	return ColumnType(sqlite3.Xsqlite3_column_type(s.d.tls, s.stmt, int32(col)))
}

func (s *nativeStmt) ColumnInt64(col int) int64 {
	if s.stmt == 0 {
		return 0
	}
	return int64(sqlite3.Xsqlite3_column_int64(s.d.tls, s.stmt, int32(col)))
}

func (s *nativeStmt) ColumnDouble(col int) float64 {
	if s.stmt == 0 {
		return 0
	}
	return float64(sqlite3.Xsqlite3_column_double(s.d.tls, s.stmt, int32(col)))
}

func (s *nativeStmt) ColumnText(col int) string {
	if s.stmt == 0 {
		return ""
	}
	p := sqlite3.Xsqlite3_column_text(s.d.tls, s.stmt, int32(col))
	n := int(sqlite3.Xsqlite3_column_bytes(s.d.tls, s.stmt, int32(col)))
	if p == 0 || n == 0 {
		return ""
	}
	b := make([]byte, n)
	copy(b, (*libc.RawMem)(unsafe.Pointer(p))[:n:n])
	return string(b)
}

func (s *nativeStmt) ColumnBlob(col int) []byte {
	if s.stmt == 0 {
		return nil
	}
	p := sqlite3.Xsqlite3_column_blob(s.d.tls, s.stmt, int32(col))
	n := int(sqlite3.Xsqlite3_column_bytes(s.d.tls, s.stmt, int32(col)))
	if p == 0 || n == 0 {
		return nil
	}
	b := make([]byte, n)
	copy(b, (*libc.RawMem)(unsafe.Pointer(p))[:n:n])
	return b
}

func (s *nativeStmt) SQL() string {
	if s.stmt == 0 {
		return ""
	}
	return libc.GoString(sqlite3.Xsqlite3_sql(s.d.tls, s.stmt))
}

// keep records the memory bound to idx and releases whatever was bound there before.
// On a failed bind the engine did not take p, so it is released right away.
func (s *nativeStmt) keep(rc Status, idx int, p uintptr) {
	if rc != StatusOK {
		if p != 0 {
			libc.Xfree(s.d.tls, p)
		}
		return
	}
	if prev, ok := s.allocs[idx]; ok {
		libc.Xfree(s.d.tls, prev)
		delete(s.allocs, idx)
	}
	if p != 0 {
		s.allocs[idx] = p
	}
}

func (s *nativeStmt) freeAll() {
	for idx, p := range s.allocs {
		libc.Xfree(s.d.tls, p)
		delete(s.allocs, idx)
	}
}
