package spas

// updateThermalLocked runs C4: load-proportional heating, a constant
// cooling drain, and an ambient floor (never a ceiling: sustained load
// can grow virtual_temp without bound, which is exactly the condition
// the frequency controller's throttle reacts to). Ported from
// original_source/trap.c's Phase 4 block. Callers must hold tickLock.
func (s *SchedulerState) updateThermalLocked(load int32) int32 {
	temp := s.VirtualTemp.Load()
	temp += (load * HeatingFactor) / 100
	temp -= CoolingFactor
	if temp < AmbientTemp {
		temp = AmbientTemp
	}
	s.VirtualTemp.Store(temp)
	return temp
}
