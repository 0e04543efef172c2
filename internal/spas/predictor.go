package spas

// recordSampleLocked runs C3: writes load into the ring at
// historyIndex, advances the index modulo HistorySize, and recomputes
// predictedLoad as the integer mean of the ring. O(HistorySize), ported
// from original_source/trap.c's moving-average block. Zero-padding for
// samples not yet written is intentional, a deliberate cold-start bias
// that is not corrected for here or anywhere else. Callers must hold
// tickLock.
func (s *SchedulerState) recordSampleLocked(load int32) int32 {
	s.loadHistory[s.historyIndex] = load
	s.historyIndex = (s.historyIndex + 1) % HistorySize

	var total int32
	for _, v := range s.loadHistory {
		total += v
	}
	predicted := total / HistorySize
	s.PredictedLoad.Store(predicted)
	return predicted
}
