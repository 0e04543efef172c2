package spas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLoadLockedBasic(t *testing.T) {
	s := NewSchedulerState()
	s.totTicks = 10
	s.idleTicks = 3
	load := s.computeLoadLocked()
	assert.Equal(t, int32(70), load)
	assert.Equal(t, int32(70), s.CPULoad.Load())
}

// TestComputeLoadLockedZeroTicks covers the counter-anomaly branch:
// tot_ticks==0 must produce load 0, not a division fault.
func TestComputeLoadLockedZeroTicks(t *testing.T) {
	s := NewSchedulerState()
	s.totTicks = 0
	s.idleTicks = 0
	assert.Equal(t, int32(0), s.computeLoadLocked())
}

func TestComputeLoadLockedFullyIdle(t *testing.T) {
	s := NewSchedulerState()
	s.totTicks = LoadPeriod
	s.idleTicks = LoadPeriod
	assert.Equal(t, int32(0), s.computeLoadLocked())
}

func TestComputeLoadLockedFullyBusy(t *testing.T) {
	s := NewSchedulerState()
	s.totTicks = LoadPeriod
	s.idleTicks = 0
	assert.Equal(t, int32(100), s.computeLoadLocked())
}
