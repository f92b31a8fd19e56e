// Package script loads SQL scripts from YAML and runs them through the sqlite binding.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/umputun/sqlbind/app/sqlite"
)

// Script is a list of SQL statements run on one connection
type Script struct {
	Name        string        `yaml:"-" json:"-"`
	Database    string        `yaml:"database,omitempty" json:"database,omitempty" jsonschema:"description=database file or file: URI (--db takes precedence)"`
	BusyTimeout time.Duration `yaml:"busy_timeout,omitempty" json:"busy_timeout,omitempty" jsonschema:"type=string,description=how long to wait for a locked database (i.e. 5s)"`
	Transaction string        `yaml:"transaction,omitempty" json:"transaction,omitempty" jsonschema:"enum=deferred,enum=immediate,enum=exclusive,description=wrap all statements in a transaction of this mode"`
	Statements  []Statement   `yaml:"statements" json:"statements" jsonschema:"required,minItems=1"`
}

// Statement is a single SQL statement of a script
type Statement struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"description=label used in the report"`
	Exec bool   `yaml:"exec,omitempty" json:"exec,omitempty" jsonschema:"description=run as a batch of statements without results and args"`
	SQL  string `yaml:"sql" json:"sql" jsonschema:"required,description=SQL text"`
	Args []any  `yaml:"args,omitempty" json:"args,omitempty" jsonschema:"description=positional parameters bound to ? placeholders"`
}

// Label returns the statement name or its position, 1-based
func (s Statement) Label(idx int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("#%d", idx+1)
}

// Load reads and validates a script file
func Load(file string) (*Script, error) {
	data, err := os.ReadFile(file) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(err, "can't load script %s", file)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", file)
	}
	s.Name = filepath.Base(file)
	return s, nil
}

// Parse decodes and validates a YAML script
func Parse(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "can't parse yaml")
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Inline makes a single statement script from sql, used for the command line
func Inline(sql string) *Script {
	return &Script{Name: "command", Statements: []Statement{{SQL: sql}}}
}

// Validate checks the script can be run
func Validate(s *Script) error {
	if len(s.Statements) == 0 {
		return errors.New("at least one statement is required")
	}
	if _, err := sqlite.ParseTxMode(s.Transaction); err != nil {
		return errors.Wrap(err, "invalid transaction")
	}
	if s.BusyTimeout < 0 {
		return errors.Errorf("busy_timeout %v is negative", s.BusyTimeout)
	}

	for i, st := range s.Statements {
		if strings.TrimSpace(st.SQL) == "" {
			return errors.Errorf("statement %s: sql is required", st.Label(i))
		}
		if st.Exec && len(st.Args) > 0 {
			return errors.Errorf("statement %s: exec statements take no args", st.Label(i))
		}
		for j, arg := range st.Args {
			switch arg.(type) {
			case nil, bool, int, int64, uint64, float64, string, time.Time:
			default:
				return errors.Errorf("statement %s: arg %d has unsupported type %T", st.Label(i), j+1, arg)
			}
		}
	}
	return nil
}

//go:generate go run ./internal/schema ../../schema.json

// Schema returns the JSON schema of the script format
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Script{})
}
