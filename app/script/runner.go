package script

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"
	"github.com/hashicorp/go-multierror"

	"github.com/umputun/sqlbind/app/sqlite"
)

//go:generate moq -out mocks/repeater.go -pkg mocks -skip-ensure -fmt goimports . Repeater

// Repeater is used to retry statements failed with a busy error
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Runner executes scripts, each on its own connection
type Runner struct {
	Repeater    Repeater      // retries busy failures, nil runs everything once
	Concurrency int           // max scripts run in parallel by RunAll, 1 if not set
	DB          string        // database for all scripts, overrides Script.Database
	BusyTimeout time.Duration // used when the script has no busy_timeout
}

// Report is the outcome of a script run
type Report struct {
	Script   string
	Database string
	Results  []Result
	Started  time.Time
	Duration time.Duration
	Err      error // failure of the script, set by RunAll
}

// Result of one statement. Statements with a tail, like "CREATE ...; INSERT ...", give a result
// per compiled statement. Changes and LastInsertID are zero unless the statement modified rows,
// the engine keeps both from the last statement that did.
type Result struct {
	Name         string
	Columns      []string
	Rows         [][]any
	Changes      int
	LastInsertID int64
}

// counters is the state of the connection counters before a statement runs
type counters struct {
	total int
	rowid int64
}

func countersOf(conn *sqlite.Conn) counters {
	return counters{total: conn.TotalChanges(), rowid: conn.LastInsertRowID()}
}

// modified sets Changes and LastInsertID of res for a statement that changed rows since before.
// LastInsertID is set only if the statement inserted one, an update keeps the old rowid.
func (c counters) modified(conn *sqlite.Conn, res *Result) {
	if conn.TotalChanges() == c.total {
		return
	}
	res.Changes = conn.Changes()
	if rowid := conn.LastInsertRowID(); rowid != c.rowid {
		res.LastInsertID = rowid
	}
}

// Run executes all statements of the script in order and stops on the first error. With a
// transaction set, a failure rolls back everything done by the script.
func (r *Runner) Run(ctx context.Context, s *Script) (rep Report, err error) {
	st := time.Now()
	rep = Report{Script: s.Name, Database: r.DB, Started: st}
	if rep.Database == "" {
		rep.Database = s.Database
	}
	defer func() { rep.Duration = time.Since(st) }()

	if rep.Database == "" {
		return rep, fmt.Errorf("no database for script %q", s.Name)
	}
	txMode, err := sqlite.ParseTxMode(s.Transaction)
	if err != nil {
		return rep, err
	}

	busy := r.BusyTimeout
	if s.BusyTimeout > 0 {
		busy = s.BusyTimeout
	}
	conn, err := sqlite.New(rep.Database, sqlite.Params{BusyTimeout: busy})
	if err != nil {
		return rep, err
	}
	defer conn.Close()

	inTx := s.Transaction != ""
	if inTx {
		if err = r.retryBusy(ctx, func() error { return conn.Begin(txMode) }); err != nil {
			return rep, fmt.Errorf("begin %s transaction: %w", txMode, err)
		}
	}

	for i, stmt := range s.Statements {
		if err = ctx.Err(); err != nil {
			break
		}
		var res []Result
		if res, err = r.runStatement(ctx, conn, stmt, i); err != nil {
			err = fmt.Errorf("statement %s: %w", stmt.Label(i), err)
			break
		}
		rep.Results = append(rep.Results, res...)
	}

	if !inTx {
		return rep, err
	}
	if err != nil {
		if rerr := conn.Rollback(); rerr != nil {
			log.Printf("[WARN] can't rollback %s, %v", rep.Database, rerr)
		}
		return rep, err
	}
	if err = r.retryBusy(ctx, conn.Commit); err != nil {
		return rep, fmt.Errorf("commit: %w", err)
	}
	return rep, nil
}

// RunAll runs scripts concurrently, up to Concurrency at a time. Reports are in the order of
// scripts, errors of all failed scripts are combined.
func (r *Runner) RunAll(ctx context.Context, scripts []*Script) ([]Report, error) {
	concur := r.Concurrency
	if concur < 1 {
		concur = 1
	}
	reports := make([]Report, len(scripts))
	errs := make([]error, len(scripts))

	gr := syncs.NewSizedGroup(concur)
	for i, s := range scripts {
		gr.Go(func(context.Context) {
			log.Printf("[DEBUG] run script %q", s.Name)
			rep, err := r.Run(ctx, s)
			if err != nil {
				rep.Err = err
				errs[i] = fmt.Errorf("script %q: %w", s.Name, err)
			}
			reports[i] = rep
		})
	}
	gr.Wait()

	var res *multierror.Error
	for _, err := range errs {
		if err != nil {
			res = multierror.Append(res, err)
		}
	}
	return reports, res.ErrorOrNil()
}

func (r *Runner) runStatement(ctx context.Context, conn *sqlite.Conn, st Statement, idx int) ([]Result, error) {
	if st.Exec {
		before := countersOf(conn)
		err := r.retryBusy(ctx, func() error { return conn.Exec(st.SQL) })
		if err != nil {
			return nil, err
		}
		res := Result{Name: st.Label(idx)}
		before.modified(conn, &res)
		return []Result{res}, nil
	}

	var results []Result
	sql, args := st.SQL, st.Args
	for part := 0; ; part++ {
		name := st.Label(idx)
		if part > 0 {
			name = fmt.Sprintf("%s.%d", name, part+1)
		}
		res, tail, err := r.query(ctx, conn, name, sql, args)
		if part > 0 && sqlite.IsNoStatement(err) {
			break // only comments left
		}
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if strings.TrimSpace(tail) == "" {
			break
		}
		sql, args = tail, nil
	}
	return results, nil
}

// query prepares the first statement of sql, binds args and steps it to the end, collecting rows.
// The unparsed remainder of sql is returned as tail.
func (r *Runner) query(ctx context.Context, conn *sqlite.Conn, name, sql string, args []any) (res Result, tail string, err error) {
	var stmt *sqlite.Stmt
	err = r.retryBusy(ctx, func() (e error) {
		stmt, e = conn.Prepare(sql)
		return e
	})
	if err != nil {
		return Result{}, "", err
	}
	defer stmt.Finalize()

	if err = stmt.BindAll(args...); err != nil {
		return Result{}, "", err
	}

	res = Result{Name: name, Columns: stmt.ColumnNames()}
	before := countersOf(conn)
	err = r.retryBusy(ctx, func() error {
		_ = stmt.Reset() // reports the error of the previous attempt, already handled
		res.Rows = res.Rows[:0]
		for {
			row, err := stmt.Step()
			if err != nil {
				return err
			}
			if !row {
				return nil
			}
			vals := make([]any, len(res.Columns))
			for i := range vals {
				if vals[i], err = stmt.Column(i); err != nil {
					return err
				}
			}
			res.Rows = append(res.Rows, vals)
		}
	})
	if err != nil {
		return Result{}, "", err
	}

	if len(res.Columns) == 0 {
		before.modified(conn, &res)
	}
	return res, stmt.Tail(), nil
}

// retryBusy calls fn with the repeater, only busy errors are retried
func (r *Runner) retryBusy(ctx context.Context, fn func() error) error {
	if r.Repeater == nil {
		return fn()
	}
	var fatal error
	err := r.Repeater.Do(ctx, func() error {
		fatal = nil
		err := fn()
		if err != nil && !sqlite.IsBusy(err) {
			fatal = err
			return nil
		}
		if err != nil {
			log.Printf("[DEBUG] busy, retrying, %v", err)
		}
		return err
	})
	if fatal != nil {
		return fatal
	}
	return err
}

// Print writes results as tab separated columns, followed by changes for statements without rows
func (rep Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range rep.Results {
		fmt.Fprintf(tw, "-- %s\n", res.Name)
		if len(res.Columns) == 0 {
			fmt.Fprintf(tw, "changes: %d, last insert id: %d\n", res.Changes, res.LastInsertID)
			continue
		}
		fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))
		for _, row := range res.Rows {
			vals := make([]string, len(row))
			for i, v := range row {
				vals[i] = formatValue(v)
			}
			fmt.Fprintln(tw, strings.Join(vals, "\t"))
		}
		fmt.Fprintf(tw, "(%d rows)\n", len(res.Rows))
	}
	return tw.Flush()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return "x'" + hex.EncodeToString(val) + "'"
	default:
		return fmt.Sprintf("%v", val)
	}
}
