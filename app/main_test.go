package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/sqlbind/app/history"
)

func Test_setupLogsWithLogsDisabled(t *testing.T) {
	opts.Log.Enabled = false
	assert.Equal(t, os.Stdout, setupLogs())
}

func Test_setupLogsToFile(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "")
	require.NoError(t, err)
	defer func() { opts.Log.Enabled, opts.Log.Filename = false, ""; setupLogs() }()

	opts.Log.Enabled = true
	opts.Log.Filename = tmpfile.Name()
	opts.Log.MaxSize = 100
	opts.Log.MaxBackups = 7
	opts.Log.MaxAge = 0
	opts.Log.EnabledCompress = false

	out := setupLogs()
	assert.IsType(t, &lumberjack.Logger{}, out)

	logger := out.(*lumberjack.Logger)
	assert.Equal(t, tmpfile.Name(), logger.Filename)
	assert.Equal(t, 100, logger.MaxSize)
	assert.Equal(t, 7, logger.MaxBackups)
	assert.Equal(t, 0, logger.MaxAge)
	assert.False(t, logger.Compress)
}

func Test_loadScripts(t *testing.T) {
	defer func() { opts.Command, opts.Files = "", nil }()

	opts.Command, opts.Files = "", nil
	_, err := loadScripts()
	assert.EqualError(t, err, "nothing to run, set --command or --file")

	opts.Command = "SELECT 1"
	opts.Files = []string{"script/testdata/users.yml"}
	scripts, err := loadScripts()
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	assert.Equal(t, "command", scripts[0].Name)
	assert.Equal(t, "users.yml", scripts[1].Name)

	opts.Files = []string{"script/testdata/no-such.yml"}
	_, err = loadScripts()
	assert.Error(t, err)
}

func Test_run(t *testing.T) {
	defer func() { opts.Command, opts.Files, opts.DB = "", nil, "" }()
	opts.DB = filepath.Join(t.TempDir(), "test.db")
	opts.BusyTimeout = time.Second
	opts.Concurrency = 1
	opts.Repeater.Attempts = 1
	opts.Repeater.Duration = time.Millisecond
	opts.Repeater.Factor = 1

	opts.Command = "CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT); INSERT INTO t (v) VALUES ('hello'); SELECT id, v FROM t"
	buf := bytes.Buffer{}
	require.NoError(t, run(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "-- #1\n")
	assert.Contains(t, out, "-- #1.2\nchanges: 1, last insert id: 1\n")
	assert.Contains(t, out, "id  v\n1   hello\n(1 rows)\n")

	opts.Command = "INSERT INTO t (id) VALUES (1)"
	buf.Reset()
	err := run(context.Background(), &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed: t.id")
}

func Test_runMultipleScripts(t *testing.T) {
	defer func() { opts.Command, opts.Files, opts.DB = "", nil, "" }()
	opts.DB = filepath.Join(t.TempDir(), "users.db")
	opts.Command = "SELECT 1 AS one"
	opts.Files = []string{"script/testdata/users.yml"}
	opts.Concurrency = 1
	opts.Repeater.Attempts = 3

	buf := bytes.Buffer{}
	require.NoError(t, run(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "== command (")
	assert.Contains(t, out, "== users.yml (")
	assert.Contains(t, out, "-- list\nid  name   score\n1   alice  10.5\n2   bob    7\n(2 rows)\n")
}

func Test_printSchema(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, printSchema(&buf))
	assert.Contains(t, buf.String(), `"statements"`)

	// the whole output is the schema, redirected to a file it has to stay valid json
	var schema map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &schema))
	assert.Contains(t, schema, "$schema")
}

func Test_makeRepeater(t *testing.T) {
	opts.Repeater.Attempts = 3
	opts.Repeater.Duration = time.Millisecond
	opts.Repeater.Factor = 1
	calls := 0
	err := makeRepeater().Do(context.Background(), func() error {
		calls++
		return assert.AnError
	})
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func Test_runWithHistory(t *testing.T) {
	dir := t.TempDir()
	defer func() { opts.Command, opts.Files, opts.DB, opts.History = "", nil, "", "" }()
	opts.DB = filepath.Join(dir, "test.db")
	opts.History = filepath.Join(dir, "history.db")
	opts.Concurrency = 1

	opts.Command = "CREATE TABLE t (v TEXT); INSERT INTO t VALUES ('a')"
	require.NoError(t, run(context.Background(), &bytes.Buffer{}))
	opts.Command = "SELECT * FROM missing"
	require.Error(t, run(context.Background(), &bytes.Buffer{}))

	store, err := history.NewSQLiteStore(opts.History)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.Runs(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, history.StatusFailed, runs[0].Status)
	assert.Contains(t, runs[0].Error, "no such table: missing")
	assert.Equal(t, history.StatusOK, runs[1].Status)
	assert.Equal(t, []history.Statement{{Name: "#1"}, {Name: "#1.2", Changes: 1, LastInsertID: 1}}, runs[1].Statements)
}
