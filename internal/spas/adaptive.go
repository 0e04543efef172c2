package spas

// updateAdaptiveLocked runs C6, after C5 has committed next as
// CurrentFrequency. It accounts for oscillation, widens the thresholds
// reactively, and narrows them periodically when the system has been
// calm. The retrieved original C sources predate this phase, so this is
// implemented from the design notes directly rather than ported.
// Callers must hold tickLock.
func (s *SchedulerState) updateAdaptiveLocked(next Frequency) {
	// Oscillation accounting. prevFrequency is updated after the
	// widening decision below, not here, so the first period following
	// widening still sees the transition.
	switched := next != s.prevFrequency
	if switched {
		s.oscillationCount++
		s.lastSwitchTick = s.ticks
	}
	if s.ticks-s.lastSwitchTick > OscillationWindow {
		s.oscillationCount = 0
	}

	// Widening (reactive).
	if s.oscillationCount >= MaxOscillation {
		low := s.ThreshLowToMed.Load() + thresholdWidenStep
		high := s.ThreshMedToHigh.Load() + thresholdWidenStep
		if high > threshMedToHighCeiling {
			high = threshMedToHighCeiling
		}
		if low > high-thresholdMinGap {
			low = high - thresholdMinGap
		}
		s.ThreshLowToMed.Store(low)
		s.ThreshMedToHigh.Store(high)
		s.oscillationCount = 0
	}

	if switched {
		s.prevFrequency = next
	}

	// Narrowing (periodic). Note: oscillationCount may already have been
	// zeroed above by the stale-burst reset rather than by a genuinely
	// calm window. One might expect narrowing to require a full calm
	// window, but a widen-then-go-quiet sequence can satisfy
	// oscillationCount==0 one period earlier than that. This quirk is
	// preserved, not fixed.
	s.adaptationCounter++
	if s.adaptationCounter >= adaptationPeriodSamples {
		s.adaptationCounter = 0
		if s.oscillationCount == 0 && s.PredictedLoad.Load() < narrowingLoadCeiling {
			low := s.ThreshLowToMed.Load() - thresholdNarrowStep
			high := s.ThreshMedToHigh.Load() - thresholdNarrowStep
			if low < threshLowToMedFloor {
				low = threshLowToMedFloor
			}
			if high < threshMedToHighFloor {
				high = threshMedToHighFloor
			}
			s.ThreshLowToMed.Store(low)
			s.ThreshMedToHigh.Store(high)
		}
	}
}
