package hostkernel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnWorkloadForksNTaggedProcesses(t *testing.T) {
	k := New(time.Millisecond, nil)
	spawned := k.SpawnWorkload(ShapeBursty, 3)
	require.Len(t, spawned, 3)

	seen := make(map[string]bool)
	for _, sp := range spawned {
		p, ok := k.Procs.Lookup(sp.PID)
		require.True(t, ok)
		assert.Equal(t, ShapeBursty.WorkTicks, p.WorkRemaining)
		assert.Equal(t, sp.JobID, p.JobID)
		assert.False(t, seen[sp.JobID], "job ids must be unique per spawned process")
		seen[sp.JobID] = true
	}
}

// TestStartStopDrivesWorkloadToCompletion is a smoke test for the
// goroutine-driven timer loop (as opposed to the unit tests that call
// tick() directly): a short light workload should fully exit well
// within the test's wait budget.
func TestStartStopDrivesWorkloadToCompletion(t *testing.T) {
	k := New(time.Millisecond, nil)
	k.SpawnWorkload(ShapeLight, 1)
	k.Start()
	defer k.Stop()

	deadline := time.After(2 * time.Second)
	tick := time.NewTicker(5 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-deadline:
			t.Fatal("workload did not complete in time")
		case <-tick.C:
			if len(k.Procs.Snapshot()) == 0 {
				return
			}
		}
	}
}
