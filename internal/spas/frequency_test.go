package spas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideBands(t *testing.T) {
	tests := []struct {
		name                           string
		predictedLoad, virtualTemp     int32
		threshLowToMed, threshMedToHigh int32
		want                           Frequency
	}{
		{"below low threshold stays LOW", 10, AmbientTemp, 30, 70, FreqLow},
		{"exactly at low threshold stays LOW", 30, AmbientTemp, 30, 70, FreqLow},
		{"just above low threshold is MEDIUM", 31, AmbientTemp, 30, 70, FreqMedium},
		{"exactly at high threshold stays MEDIUM", 70, AmbientTemp, 30, 70, FreqMedium},
		{"just above high threshold is HIGH", 71, AmbientTemp, 30, 70, FreqHigh},
		{"throttle forces LOW despite high load", 100, TempThrottleLimit + 1, 30, 70, FreqLow},
		{"temp exactly at limit does not throttle", 100, TempThrottleLimit, 30, 70, FreqHigh},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := decide(tc.predictedLoad, tc.virtualTemp, tc.threshLowToMed, tc.threshMedToHigh)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFrequencyString(t *testing.T) {
	assert.Equal(t, "LOW", FreqLow.String())
	assert.Equal(t, "MEDIUM", FreqMedium.String())
	assert.Equal(t, "HIGH", FreqHigh.String())
	assert.Equal(t, "UNKNOWN", Frequency(99).String())
}

func TestUpdateFrequencyLockedCommitsAndReturns(t *testing.T) {
	s := NewSchedulerState()
	s.PredictedLoad.Store(80)
	next := s.updateFrequencyLocked()
	assert.Equal(t, FreqHigh, next)
	assert.Equal(t, int32(FreqHigh), s.CurrentFrequency.Load())
}
