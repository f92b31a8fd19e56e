package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/sqlbind/app/engine"
	"github.com/umputun/sqlbind/app/history"
	"github.com/umputun/sqlbind/app/script"
)

var opts struct {
	DB          string        `short:"d" long:"db" env:"SQLBIND_DB" description:"database file, overrides database of scripts"`
	BusyTimeout time.Duration `short:"t" long:"busy-timeout" env:"SQLBIND_BUSY_TIMEOUT" default:"5s" description:"how long to wait for a locked database, 0 fails right away"`
	Command     string        `short:"c" long:"command" env:"SQLBIND_COMMAND" description:"sql to run"`
	Files       []string      `short:"f" long:"file" env:"SQLBIND_FILE" env-delim:"," description:"yaml script file(s)"`
	Concurrency int           `long:"concurrency" env:"SQLBIND_CONCURRENCY" default:"4" description:"max scripts run in parallel"`
	History     string        `long:"history" env:"SQLBIND_HISTORY" description:"sqlite file to record runs in"`
	Schema      bool          `long:"schema" description:"print json schema of script files and exit"`
	Dbg         bool          `long:"dbg" env:"SQLBIND_DEBUG" description:"debug mode"`

	Repeater struct {
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"5" description:"how many times to try a statement failed on a locked database"`
		Duration time.Duration `long:"duration" env:"DURATION" default:"100ms" description:"initial duration"`
		Factor   float64       `long:"factor" env:"FACTOR" default:"2" description:"backoff factor"`
		Jitter   bool          `long:"jitter" env:"JITTER" description:"jitter"`
	} `group:"repeater" namespace:"repeater" env-namespace:"SQLBIND_REPEATER"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		Filename        string `long:"file" env:"FILE" description:"log file, stdout if not set"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of rotated log files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max age of rotated log files in days, 0 keeps all"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"SQLBIND_LOG"`
}

var revision = "unknown"

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if opts.Schema {
		if err := printSchema(os.Stdout); err != nil {
			log.Printf("[ERROR] %v", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("sqlbind %s, sqlite %s\n", revision, engine.Native{}.Version())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals(cancel) // handle SIGQUIT, SIGINT and SIGTERM

	if err := run(ctx, os.Stdout); err != nil {
		log.Printf("[ERROR] %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	scripts, err := loadScripts()
	if err != nil {
		return err
	}

	runner := script.Runner{
		Repeater:    makeRepeater(),
		Concurrency: opts.Concurrency,
		DB:          opts.DB,
		BusyTimeout: opts.BusyTimeout,
	}
	reports, runErr := runner.RunAll(ctx, scripts)
	if opts.History != "" {
		recordHistory(opts.History, reports)
	}
	for _, rep := range reports {
		if len(reports) > 1 {
			fmt.Fprintf(out, "== %s (%s, %v)\n", rep.Script, rep.Database, rep.Duration.Round(time.Millisecond))
		}
		if err := rep.Print(out); err != nil {
			return fmt.Errorf("can't print report for %s: %w", rep.Script, err)
		}
	}
	return runErr
}

func loadScripts() ([]*script.Script, error) {
	if opts.Command == "" && len(opts.Files) == 0 {
		return nil, errors.New("nothing to run, set --command or --file")
	}

	var res []*script.Script
	if opts.Command != "" {
		res = append(res, script.Inline(opts.Command))
	}
	for _, f := range opts.Files {
		s, err := script.Load(f)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

// recordHistory saves reports to the history database. Failures are logged, the run itself is done.
func recordHistory(dbPath string, reports []script.Report) {
	store, err := history.NewSQLiteStore(dbPath)
	if err != nil {
		log.Printf("[WARN] can't open history %s, %v", dbPath, err)
		return
	}
	defer store.Close()
	for _, rep := range reports {
		if _, err := store.Record(rep); err != nil {
			log.Printf("[WARN] can't record %s in history, %v", rep.Script, err)
		}
	}
}

func makeRepeater() *repeater.Repeater {
	// zero repeats would never call the statement at all
	return repeater.New(&strategy.Backoff{Repeats: max(opts.Repeater.Attempts, 1), Duration: opts.Repeater.Duration,
		Factor: opts.Repeater.Factor, Jitter: opts.Repeater.Jitter})
}

func printSchema(out io.Writer) error {
	data, err := json.MarshalIndent(script.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("can't marshal schema: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// setupLogs configures lgr and returns the writer logs go to
func setupLogs() io.Writer {
	if !opts.Log.Enabled {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return os.Stdout
	}

	var out io.Writer = os.Stdout
	if opts.Log.Filename != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(out), log.Err(out))
		return out
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			cancel() // terminate on SIGINT and SIGTERM
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGTERM)
}
