package spas

// Tick is the entry point called from the timer-interrupt handler (C1).
// It increments the global tick counter and the period-local
// accumulators, and, every LoadPeriod ticks, runs the full analytics
// pipeline (C2-C6). It is a no-op off the boot processor, since the
// control loop only ever runs on the boot CPU's timer-interrupt handler;
// original_source/trap.c guards the equivalent block on cpuid()==0
// rather than assuming a single core.
//
// idle reports whether the scheduler was idle for this tick; that flag
// belongs to the surrounding scheduler, not to SPAS itself. Returns true
// if an analytics update ran this tick.
func (s *SchedulerState) Tick(cpuID int, idle bool) bool {
	if cpuID != 0 {
		return false
	}

	s.tickLock.Lock()
	defer s.tickLock.Unlock()

	s.ticks++
	s.totTicks++
	if idle {
		s.idleTicks++
	}

	if s.ticks%LoadPeriod == 0 {
		s.updateAnalyticsLocked()
		return true
	}
	return false
}

// updateAnalyticsLocked runs C2 through C6 in order and resets the
// period counters last, so C6 observes the same predictedLoad that C5
// used. Callers must hold tickLock.
func (s *SchedulerState) updateAnalyticsLocked() {
	load := s.computeLoadLocked()     // C2
	s.recordSampleLocked(load)        // C3
	s.updateThermalLocked(load)       // C4
	next := s.updateFrequencyLocked() // C5
	s.updateAdaptiveLocked(next)      // C6

	s.totTicks = 0
	s.idleTicks = 0
}
