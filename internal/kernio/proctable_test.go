package kernio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spasctl/internal/spas"
)

func TestForkAssignsDefaultPriorityAndIncrementingPIDs(t *testing.T) {
	pt := NewProcTable()
	a := pt.Fork("a", "job-a", 10)
	b := pt.Fork("b", "job-b", 20)

	assert.Equal(t, int32(spas.DefaultPriority), a.Priority)
	assert.Equal(t, ProcRunnable, a.State)
	assert.Less(t, a.PID, b.PID)
}

func TestExitRemovesProcess(t *testing.T) {
	pt := NewProcTable()
	p := pt.Fork("a", "job-a", 10)
	pt.Exit(p.PID)

	_, ok := pt.Lookup(p.PID)
	assert.False(t, ok)
}

func TestSetPriorityReportsUnknownPID(t *testing.T) {
	pt := NewProcTable()
	assert.False(t, pt.SetPriority(1234, 5))
}

func TestSetPriorityMutatesKnownPID(t *testing.T) {
	pt := NewProcTable()
	p := pt.Fork("a", "job-a", 10)

	require.True(t, pt.SetPriority(p.PID, 3))
	got, ok := pt.Lookup(p.PID)
	require.True(t, ok)
	assert.Equal(t, int32(3), got.Priority)
}

func TestSnapshotIsAShallowCopy(t *testing.T) {
	pt := NewProcTable()
	p := pt.Fork("a", "job-a", 10)

	snap := pt.Snapshot()
	require.Len(t, snap, 1)

	snap[0].Priority = 999
	got, ok := pt.Lookup(p.PID)
	require.True(t, ok)
	assert.Equal(t, int32(spas.DefaultPriority), got.Priority, "mutating the snapshot must not affect the table")
}
