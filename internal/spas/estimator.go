package spas

// computeLoadLocked runs C2: the utilisation percentage for the period
// that just ended. Ported line-for-line from
// original_source/trap.c's update_scheduler_analytics. tot_ticks==0 is
// treated as a benign counter anomaly (cpu_load := 0, no panic) rather
// than a division fault; it should not occur because LoadPeriod >= 1,
// but the defensive branch is kept because the original kernel keeps it
// too. Callers must hold tickLock.
func (s *SchedulerState) computeLoadLocked() int32 {
	var load int32
	if s.totTicks > 0 {
		load = int32((uint64(s.totTicks-s.idleTicks) * 100) / uint64(s.totTicks))
	}
	if load < 0 {
		load = 0
	}
	if load > 100 {
		load = 100
	}
	s.CPULoad.Store(load)
	return load
}
