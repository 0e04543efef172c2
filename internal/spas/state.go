// Package spas implements the SPAS core: the load estimator, predictor,
// thermal model, frequency controller, adaptive-threshold controller and
// quantum dispatcher (C1-C7). It holds no opinion about how ticks arrive
// or how processes are represented: C7 takes a plain frequency and
// priority, and the process table lives in internal/kernio, driven by
// the host kernel harness in internal/hostkernel.
package spas

import (
	"sync"
	"sync/atomic"
)

// SchedulerState is the single record owning all process-wide SPAS
// state: one SchedulerState is owned by the boot-CPU timer handler.
// Fields read by cpustat are atomics so that API never blocks on, or
// races with, the tick handler's critical section. Fields only ever
// touched inside that critical section sit behind tickLock instead,
// since they never need to be read independently of one another.
type SchedulerState struct {
	// tickLock serializes the C1-C6 update, the "tick lock" the host
	// kernel provides. Holding it is equivalent to running with
	// interrupts disabled on the boot CPU.
	tickLock sync.Mutex

	// ticks is the global monotonic tick counter.
	ticks uint32

	// totTicks/idleTicks are the period-local accumulators (C1).
	totTicks  uint32
	idleTicks uint32

	// loadHistory/historyIndex back the moving average (C3). Only ever
	// touched under tickLock.
	loadHistory  [HistorySize]int32
	historyIndex int

	// prevFrequency, oscillationCount, lastSwitchTick and
	// adaptationCounter are C6's private bookkeeping; never read outside
	// the tick handler, so no atomics are needed for them.
	prevFrequency     Frequency
	oscillationCount  int32
	lastSwitchTick    uint32
	adaptationCounter int32

	// Hot-read fields: loaded by cpustat without tickLock.
	CPULoad          atomic.Int32
	PredictedLoad    atomic.Int32
	VirtualTemp      atomic.Int32
	ThreshLowToMed   atomic.Int32
	ThreshMedToHigh  atomic.Int32
	CurrentFrequency atomic.Int32 // holds a Frequency value
}

// NewSchedulerState returns a freshly booted state: LOW frequency,
// ambient temperature, the default threshold pair, and a zeroed history
// ring (the deliberate cold-start bias recordSampleLocked describes).
func NewSchedulerState() *SchedulerState {
	s := &SchedulerState{}
	s.VirtualTemp.Store(AmbientTemp)
	s.ThreshLowToMed.Store(initialThreshLowToMed)
	s.ThreshMedToHigh.Store(initialThreshMedToHigh)
	s.CurrentFrequency.Store(int32(FreqLow))
	s.prevFrequency = FreqLow
	return s
}

// Ticks returns the current global tick count. Safe for concurrent use.
func (s *SchedulerState) Ticks() uint32 {
	s.tickLock.Lock()
	defer s.tickLock.Unlock()
	return s.ticks
}
