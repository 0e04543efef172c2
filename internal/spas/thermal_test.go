package spas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateThermalHeatsUnderLoad(t *testing.T) {
	s := NewSchedulerState()
	temp := s.updateThermalLocked(100)
	want := int32(AmbientTemp + (100*HeatingFactor)/100 - CoolingFactor)
	assert.Equal(t, want, temp)
}

// TestUpdateThermalAmbientFloor checks temperature never drops below
// AmbientTemp even under sustained idle cooling.
func TestUpdateThermalAmbientFloor(t *testing.T) {
	s := NewSchedulerState()
	for i := 0; i < 100; i++ {
		s.updateThermalLocked(0)
	}
	assert.Equal(t, int32(AmbientTemp), s.VirtualTemp.Load())
}

func TestUpdateThermalNoCeiling(t *testing.T) {
	s := NewSchedulerState()
	for i := 0; i < 500; i++ {
		s.updateThermalLocked(100)
	}
	assert.Greater(t, s.VirtualTemp.Load(), int32(TempThrottleLimit))
}
