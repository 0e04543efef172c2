package spas

// Frequency is the simulated CPU frequency level SPAS drives the
// dispatcher with. It is a tagged variant, not a raw int: integer
// comparisons stay confined to the controller's decision (decide,
// below), everywhere else Frequency stays opaque.
type Frequency int32

const (
	FreqLow Frequency = iota
	FreqMedium
	FreqHigh
)

// String renders the label the reporter utility prints.
func (f Frequency) String() string {
	switch f {
	case FreqLow:
		return "LOW"
	case FreqMedium:
		return "MEDIUM"
	case FreqHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// quantumTable is the total function from frequency level to base
// quantum length, in ticks. Grows with frequency.
var quantumTable = map[Frequency]int32{
	FreqLow:    1,
	FreqMedium: 2,
	FreqHigh:   4,
}

// decide computes the frequency the controller would choose for
// predictedLoad and virtualTemp against the current thresholds, before
// any state is committed. Comparisons are strict: a load exactly at a
// threshold stays in the lower band.
func decide(predictedLoad, virtualTemp, threshLowToMed, threshMedToHigh int32) Frequency {
	var next Frequency
	switch {
	case predictedLoad > threshMedToHigh:
		next = FreqHigh
	case predictedLoad > threshLowToMed:
		next = FreqMedium
	default:
		next = FreqLow
	}
	if virtualTemp > TempThrottleLimit {
		next = FreqLow
	}
	return next
}

// updateFrequencyLocked runs C5: it computes and commits the next
// frequency from the state C2-C4 produced this period, and returns it so
// C6 can react to the transition. Callers must hold tickLock.
func (s *SchedulerState) updateFrequencyLocked() Frequency {
	predicted := s.PredictedLoad.Load()
	temp := s.VirtualTemp.Load()
	low := s.ThreshLowToMed.Load()
	high := s.ThreshMedToHigh.Load()

	next := decide(predicted, temp, low, high)
	s.CurrentFrequency.Store(int32(next))
	return next
}
