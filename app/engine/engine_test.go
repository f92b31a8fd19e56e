package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tbl := []struct {
		status Status
		want   string
	}{
		{StatusOK, "SQLITE_OK"},
		{StatusBusy, "SQLITE_BUSY"},
		{StatusConstraint, "SQLITE_CONSTRAINT"},
		{StatusDone, "SQLITE_DONE"},
		{Status(2067), "SQLITE_CONSTRAINT(2067)"}, // SQLITE_CONSTRAINT_UNIQUE
		{Status(517), "SQLITE_BUSY(517)"},         // SQLITE_BUSY_SNAPSHOT
		{Status(99), "SQLITE_UNKNOWN(99)"},
		{Status(0x300), "SQLITE_UNKNOWN(768)"},
		{Status(0x10005), "SQLITE_UNKNOWN(65541)"},
		{Status(-1), "SQLITE_UNKNOWN(-1)"},
	}

	for _, tt := range tbl {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_Primary(t *testing.T) {
	assert.Equal(t, StatusConstraint, Status(2067).Primary())
	assert.Equal(t, StatusBusy, Status(517).Primary())
	assert.Equal(t, StatusLocked, Status(262).Primary())
	assert.Equal(t, StatusRow, StatusRow.Primary())
}

func TestStatus_Known(t *testing.T) {
	assert.True(t, StatusOK.Known())
	assert.True(t, StatusWarning.Known())
	assert.True(t, Status(1555).Known())
	assert.False(t, Status(29).Known())
	assert.False(t, Status(99).Known())
	assert.False(t, Status(-5).Known())
	assert.True(t, Status(256).Known())  // SQLITE_OK_LOAD_PERMANENTLY
	assert.True(t, Status(8714).Known()) // SQLITE_IOERR_IN_PAGE
	assert.False(t, Status(0x300).Known())
	assert.False(t, Status(0x700).Known())
	assert.False(t, Status(0x905).Known(), "busy primary with undocumented extended bits")
}

func TestColumnType_String(t *testing.T) {
	assert.Equal(t, "INTEGER", TypeInteger.String())
	assert.Equal(t, "FLOAT", TypeFloat.String())
	assert.Equal(t, "TEXT", TypeText.String())
	assert.Equal(t, "BLOB", TypeBlob.String())
	assert.Equal(t, "NULL", TypeNull.String())
	assert.Equal(t, "UNKNOWN", ColumnType(42).String())
}
