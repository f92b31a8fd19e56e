package sqlite

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/sqlbind/app/engine"
	"github.com/umputun/sqlbind/app/engine/mocks"
)

func prepareTestTable(t *testing.T) *Conn {
	t.Helper()
	c, _ := openTestConn(t)
	require.NoError(t, c.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY, i INTEGER, f REAL, s TEXT, b BLOB)"))
	return c
}

func TestStmt_Lifecycle(t *testing.T) {
	c := prepareTestTable(t)

	s, err := c.Prepare("INSERT INTO t (i, s) VALUES (?, ?)")
	require.NoError(t, err)
	assert.Equal(t, StatePrepared, s.State())
	assert.Equal(t, 2, s.ParamCount())
	assert.Equal(t, 0, s.ColumnCount())

	require.NoError(t, s.BindInt64(1, 10))
	assert.Equal(t, StateBound, s.State())
	require.NoError(t, s.BindText(2, "ten"))

	row, err := s.Step()
	require.NoError(t, err)
	assert.False(t, row)
	assert.Equal(t, StateDone, s.State())
	assert.Equal(t, 1, c.Changes())

	require.NoError(t, s.Reset())
	assert.Equal(t, StateBound, s.State(), "bindings survive reset")
	require.NoError(t, s.ClearBindings())
	assert.Equal(t, StatePrepared, s.State())

	require.NoError(t, s.Finalize())
	assert.Equal(t, StateFinalized, s.State())
	require.NoError(t, s.Finalize(), "second finalize is a no-op")
	require.NoError(t, s.Close())

	_, err = s.Step()
	assert.ErrorIs(t, err, ErrMisuse)
	assert.Contains(t, err.Error(), "statement is finalized")
	assert.ErrorIs(t, s.BindInt64(1, 1), ErrMisuse)
	assert.ErrorIs(t, s.Reset(), ErrMisuse)
	assert.Empty(t, s.SQL())
}

func TestStmt_AfterConnectionClosed(t *testing.T) {
	c := prepareTestTable(t)
	require.NoError(t, c.Exec("INSERT INTO t (i) VALUES (1)"))

	s, err := c.Prepare("SELECT i FROM t")
	require.NoError(t, err)
	row, err := s.Step()
	require.NoError(t, err)
	require.True(t, row)

	require.NoError(t, c.Close())

	_, err = s.Step()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMisuse)
	assert.Contains(t, err.Error(), "statement used after connection closed")

	_, err = s.ColumnInt64(0)
	assert.ErrorIs(t, err, ErrMisuse)
	assert.ErrorIs(t, s.BindText(1, "x"), ErrMisuse)
	assert.ErrorIs(t, s.Reset(), ErrMisuse)
	assert.ErrorIs(t, s.ClearBindings(), ErrMisuse)
	assert.ErrorIs(t, s.Exec(), ErrMisuse)
	assert.ErrorIs(t, s.Scan(new(int64)), ErrMisuse)
	assert.Equal(t, 0, s.ParamCount())
	assert.Equal(t, 0, s.ColumnCount())
	assert.Empty(t, s.ColumnNames())
	assert.NoError(t, s.Finalize())
}

func TestStmt_Columns(t *testing.T) {
	c := prepareTestTable(t)
	ins, err := c.Prepare("INSERT INTO t (i, f, s, b) VALUES (?, ?, ?, ?)")
	require.NoError(t, err)
	require.NoError(t, ins.Exec(int64(42), 2.5, "hello", []byte{0xde, 0xad}))
	require.NoError(t, ins.Exec(nil, nil, nil, nil))
	require.NoError(t, ins.Finalize())

	s, err := c.Prepare("SELECT i, f, s, b FROM t ORDER BY id")
	require.NoError(t, err)
	defer s.Finalize()

	assert.Equal(t, []string{"i", "f", "s", "b"}, s.ColumnNames())
	name, err := s.ColumnName(2)
	require.NoError(t, err)
	assert.Equal(t, "s", name)
	_, err = s.ColumnName(4)
	assert.Error(t, err)

	_, err = s.ColumnInt64(0)
	assert.ErrorIs(t, err, ErrMisuse, "no row before step")

	row, err := s.Step()
	require.NoError(t, err)
	require.True(t, row)

	i, err := s.ColumnInt64(0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)
	f, err := s.ColumnFloat(1)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 0.0001)
	str, err := s.ColumnText(2)
	require.NoError(t, err)
	assert.Equal(t, "hello", str)
	b, err := s.ColumnBlob(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, b)

	typ, err := s.ColumnType(3)
	require.NoError(t, err)
	assert.Equal(t, engine.TypeBlob, typ)

	for _, col := range []int{-1, 4, 100} {
		_, err = s.ColumnText(col)
		require.Error(t, err)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, engine.StatusRange, e.Code)
	}

	row, err = s.Step()
	require.NoError(t, err)
	require.True(t, row)
	for col := range 4 {
		v, err := s.Column(col)
		require.NoError(t, err)
		assert.Nil(t, v)
	}

	row, err = s.Step()
	require.NoError(t, err)
	assert.False(t, row)
	_, err = s.Column(0)
	assert.ErrorIs(t, err, ErrMisuse, "no row after done")
}

func TestStmt_Bind(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 123, time.UTC)
	tbl := []struct {
		name string
		val  any
		want any
	}{
		{"nil", nil, nil},
		{"true", true, int64(1)},
		{"false", false, int64(0)},
		{"int", 7, int64(7)},
		{"int8", int8(-8), int64(-8)},
		{"int16", int16(16), int64(16)},
		{"int32", int32(32), int64(32)},
		{"int64", int64(math.MaxInt64), int64(math.MaxInt64)},
		{"uint8", uint8(8), int64(8)},
		{"uint16", uint16(16), int64(16)},
		{"uint32", uint32(32), int64(32)},
		{"uint", uint(64), int64(64)},
		{"uint64", uint64(math.MaxInt64), int64(math.MaxInt64)},
		{"float32", float32(0.5), 0.5},
		{"float64", 1.25, 1.25},
		{"string", "text", "text"},
		{"empty string", "", ""},
		{"bytes", []byte("raw"), []byte("raw")},
		{"time", ts, ts.Format(time.RFC3339Nano)},
	}

	c, _ := openTestConn(t)
	s, err := c.Prepare("SELECT ?")
	require.NoError(t, err)
	defer s.Finalize()

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.Reset())
			require.NoError(t, s.Bind(1, tt.val))
			row, err := s.Step()
			require.NoError(t, err)
			require.True(t, row)
			v, err := s.Column(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	t.Run("uint64 overflow", func(t *testing.T) {
		require.NoError(t, s.Reset())
		err := s.Bind(1, uint64(math.MaxUint64))
		require.Error(t, err)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, engine.StatusRange, e.Code)
	})

	t.Run("unsupported", func(t *testing.T) {
		err := s.Bind(1, struct{}{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't bind struct {}")
	})

	t.Run("index out of range", func(t *testing.T) {
		err := s.BindInt64(2, 1)
		require.Error(t, err)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, engine.StatusRange, e.Code)
		assert.Equal(t, KindGeneric, e.Kind)
	})
}

func TestStmt_BindAll(t *testing.T) {
	c := prepareTestTable(t)
	s, err := c.Prepare("SELECT ?, ?, ?")
	require.NoError(t, err)
	defer s.Finalize()

	require.NoError(t, s.BindAll(1, "two", 3.0))
	row, err := s.Step()
	require.NoError(t, err)
	require.True(t, row)
	var (
		a int
		b string
		f float64
	)
	require.NoError(t, s.Scan(&a, &b, &f))
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
	assert.InDelta(t, 3.0, f, 0.0001)

	// BindAll clears what is not given again
	require.NoError(t, s.Reset())
	require.NoError(t, s.BindAll(5))
	_, err = s.Step()
	require.NoError(t, err)
	var x, y any
	require.NoError(t, s.Scan(&a, &x, &y))
	assert.Equal(t, 5, a)
	assert.Nil(t, x)
	assert.Nil(t, y)

	require.NoError(t, s.Reset())
	assert.Error(t, s.BindAll(1, 2, 3, 4))
}

func TestStmt_Scan(t *testing.T) {
	c := prepareTestTable(t)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	ins, err := c.Prepare("INSERT INTO t (i, f, s, b) VALUES (?, ?, ?, ?)")
	require.NoError(t, err)
	require.NoError(t, ins.Exec(true, 1.5, ts, []byte("blob")))
	require.NoError(t, ins.Finalize())

	s, err := c.Prepare("SELECT id, i, f, s, b, NULL FROM t")
	require.NoError(t, err)
	defer s.Finalize()

	var id int64
	assert.ErrorIs(t, s.Scan(&id), ErrMisuse, "no row yet")

	row, err := s.Step()
	require.NoError(t, err)
	require.True(t, row)

	var (
		flag  bool
		f     float64
		tm    time.Time
		b     []byte
		empty string
	)
	require.NoError(t, s.Scan(&id, &flag, &f, &tm, &b, &empty))
	assert.Equal(t, int64(1), id)
	assert.True(t, flag)
	assert.InDelta(t, 1.5, f, 0.0001)
	assert.True(t, ts.Equal(tm))
	assert.Equal(t, []byte("blob"), b)
	assert.Empty(t, empty)

	require.NoError(t, s.Scan(nil, nil, &f), "nil skips the column")

	var nullTime time.Time
	require.NoError(t, s.Scan(nil, nil, nil, nil, nil, &nullTime))
	assert.True(t, nullTime.IsZero())

	err = s.Scan(nil, nil, nil, nil, nil, nil, &id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "7 scan targets for 6 columns")

	var notTime time.Time
	assert.Error(t, s.Scan(nil, nil, nil, nil, &notTime))

	var ch chan int
	assert.Error(t, s.Scan(&ch))
}

func TestStmt_ExecReusesStatement(t *testing.T) {
	c := prepareTestTable(t)
	s, err := c.Prepare("INSERT INTO t (i) VALUES (?)")
	require.NoError(t, err)
	defer s.Finalize()

	for i := range 5 {
		require.NoError(t, s.Exec(i))
		assert.Equal(t, 1, c.Changes())
	}

	cnt, err := c.Prepare("SELECT count(*), sum(i) FROM t")
	require.NoError(t, err)
	defer cnt.Finalize()
	_, err = cnt.Step()
	require.NoError(t, err)
	var n, sum int
	require.NoError(t, cnt.Scan(&n, &sum))
	assert.Equal(t, 5, n)
	assert.Equal(t, 10, sum)
}

func TestStmt_ExecConstraint(t *testing.T) {
	c, _ := openTestConn(t)
	require.NoError(t, c.Exec("CREATE TABLE u (v TEXT NOT NULL UNIQUE)"))
	s, err := c.Prepare("INSERT INTO u (v) VALUES (?)")
	require.NoError(t, err)
	defer s.Finalize()

	require.NoError(t, s.Exec("a"))
	err = s.Exec("a")
	require.Error(t, err)
	assert.True(t, IsConstraint(err))
	assert.Contains(t, err.Error(), "UNIQUE constraint failed: u.v")

	err = s.Exec(nil)
	require.Error(t, err)
	assert.True(t, IsConstraint(err))
	assert.Contains(t, err.Error(), "NOT NULL constraint failed: u.v")

	require.NoError(t, s.Exec("b"), "statement usable after a failure")
}

func TestStmt_FinalizeAfterFailedStep(t *testing.T) {
	c, _ := openTestConn(t)
	require.NoError(t, c.Exec("CREATE TABLE u (v TEXT UNIQUE); INSERT INTO u (v) VALUES ('a')"))

	s, err := c.Prepare("INSERT INTO u (v) VALUES ('a')")
	require.NoError(t, err)
	_, err = s.Step()
	require.Error(t, err)
	assert.True(t, IsConstraint(err))
	assert.NoError(t, s.Finalize(), "step error is not reported twice")
	assert.Equal(t, StateFinalized, s.State())

	// closing the connection finalizes a statement left after a failed step without errors
	s2, err := c.Prepare("INSERT INTO u (v) VALUES ('a')")
	require.NoError(t, err)
	_, err = s2.Step()
	require.Error(t, err)
	require.NoError(t, c.Close())
	assert.Equal(t, StateFinalized, s2.State())
	assert.Empty(t, c.stmts)
}

func TestStmt_FinalizeFailure(t *testing.T) {
	db := okDB()
	db.ErrMsgFunc = func() string { return "disk I/O error" }
	db.PrepareFunc = func(string) (engine.Stmt, string, engine.Status) {
		return &mocks.StmtMock{
			StepFunc:     func() engine.Status { return engine.StatusConstraint },
			FinalizeFunc: func() engine.Status { return engine.StatusIOErr },
		}, "", engine.StatusOK
	}
	c, err := New("test.db", Params{Engine: openerFor(db, engine.StatusOK)})
	require.NoError(t, err)
	defer c.Close()

	s, err := c.Prepare("INSERT INTO u (v) VALUES ('a')")
	require.NoError(t, err)
	_, err = s.Step()
	assert.ErrorIs(t, err, ErrConstraint)

	err = s.Finalize()
	require.Error(t, err, "a status other than the step error is reported")
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, engine.StatusIOErr, e.Code)
	assert.Equal(t, StateFinalized, s.State())
}

func TestStmt_SQLAndTail(t *testing.T) {
	c, _ := openTestConn(t)
	s, err := c.Prepare("SELECT 1; SELECT 2;")
	require.NoError(t, err)
	defer s.Finalize()
	assert.Equal(t, "SELECT 1;", s.SQL())
	assert.Equal(t, " SELECT 2;", s.Tail())

	s2, err := c.Prepare(s.Tail())
	require.NoError(t, err)
	defer s2.Finalize()
	assert.Empty(t, s2.Tail())
	row, err := s2.Step()
	require.NoError(t, err)
	require.True(t, row)
	v, err := s2.ColumnInt64(0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "prepared", StatePrepared.String())
	assert.Equal(t, "bound", StateBound.String())
	assert.Equal(t, "row", StateRow.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "finalized", StateFinalized.String())
	assert.Equal(t, "unknown", State(99).String())
}
