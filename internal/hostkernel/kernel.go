// Package hostkernel is a minimal host-kernel harness: a boot-CPU timer
// loop, a toy round-robin dispatcher that applies C7's quantum, and a
// process table. It is not part of SPAS proper; it plays the role of
// the trap dispatcher, process table and context-switch primitive that
// SPAS itself treats as out-of-scope external collaborators, so the
// core in internal/spas can be driven end to end without a real kernel
// underneath it.
package hostkernel

import (
	"fmt"
	"sync"
	"time"

	"spasctl/internal/kernio"
	"spasctl/internal/spas"
)

// Kernel bundles the SPAS core state, the process table, and the
// round-robin dispatcher that applies the quantum C7 hands out. One
// Kernel models one boot CPU; the control loop only ever runs on that
// single CPU, so there is no provision here for more than one.
type Kernel struct {
	State *spas.SchedulerState
	Procs *kernio.ProcTable

	mu       sync.Mutex
	runQueue []int
	current  int // pid of the running process, 0 if idle

	tickInterval time.Duration
	log          func(format string, args ...any)

	stop    chan struct{}
	stopped chan struct{}
}

// New builds a Kernel ready to Start. tickInterval is the wall-clock
// duration standing in for one hardware timer tick; log receives
// dispatch, yield and exit trace lines plus one analytics line per
// sampling period with load, predicted load, frequency and temperature
// (pass a no-op func to silence it; cmd/root.go's logDebug is the intended caller in
// practice, kept out of this package to avoid an import back into cmd).
func New(tickInterval time.Duration, log func(string, ...any)) *Kernel {
	if log == nil {
		log = func(string, ...any) {}
	}
	return &Kernel{
		State:        spas.NewSchedulerState(),
		Procs:        kernio.NewProcTable(),
		tickInterval: tickInterval,
		log:          log,
		stop:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}
}

// Fork adds a new runnable process needing workTicks of simulated CPU
// time to the table and queues it for dispatch, tagged with jobID for
// log correlation (the same correlation role uuid.New().String() plays
// for the teacher's cmd/run.go job submissions).
func (k *Kernel) Fork(name, jobID string, workTicks int32) *kernio.Proc {
	p := k.Procs.Fork(name, jobID, workTicks)
	k.mu.Lock()
	k.runQueue = append(k.runQueue, p.PID)
	k.mu.Unlock()
	return p
}

// IsIdle reports whether the boot CPU currently has no process running.
func (k *Kernel) IsIdle() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.current == 0
}

// Current returns the currently running process, or nil if the CPU is
// idle.
func (k *Kernel) Current() *kernio.Proc {
	k.mu.Lock()
	pid := k.current
	k.mu.Unlock()
	if pid == 0 {
		return nil
	}
	p, _ := k.Procs.Lookup(pid)
	return p
}

// Yield forces the running process, if any, to relinquish the CPU
// immediately rather than waiting for its quantum to expire.
func (k *Kernel) Yield() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.current == 0 {
		return
	}
	p, ok := k.Procs.Lookup(k.current)
	if ok {
		k.requeueLocked(p)
	}
	k.current = 0
}

// Ticks returns the global tick count the scheduler has observed.
func (k *Kernel) Ticks() uint32 {
	return k.State.Ticks()
}

// CopyOut implements kernio.CopyOut, the port introspect.CPUStat calls
// through on every cpustat request; a zero destination is the only
// failure this simulation models, standing in for a bad user pointer.
func (k *Kernel) CopyOut(dst uintptr, _ any, _ int) error {
	if dst == 0 {
		return fmt.Errorf("hostkernel: bad user pointer")
	}
	return nil
}

// Start launches the timer-tick goroutine. Stop must be called to clean
// it up; Start is not safe to call twice on the same Kernel.
func (k *Kernel) Start() {
	go k.run()
}

// Stop signals the timer loop to exit and waits for it to do so.
func (k *Kernel) Stop() {
	close(k.stop)
	<-k.stopped
}

func (k *Kernel) run() {
	defer close(k.stopped)
	ticker := time.NewTicker(k.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-k.stop:
			return
		case <-ticker.C:
			k.tick()
		}
	}
}

// tick is the simulated timer-interrupt handler: it feeds C1 exactly
// once (cpuID 0, since this harness only ever models the boot
// processor), applies C7's quantum to whatever is running, and dispatches
// the next runnable process if the CPU fell idle.
func (k *Kernel) tick() {
	k.mu.Lock()
	defer k.mu.Unlock()

	idle := k.current == 0
	ranAnalytics := k.State.Tick(0, idle)

	if k.current != 0 {
		p, ok := k.Procs.Lookup(k.current)
		if ok {
			p.QuantumRemaining--
			p.WorkRemaining--
			switch {
			case p.WorkRemaining <= 0:
				k.log("pid=%d job=%s exited", p.PID, p.JobID)
				k.Procs.Exit(p.PID)
				k.current = 0
			case p.QuantumRemaining <= 0:
				k.log("pid=%d job=%s quantum expired, yielding", p.PID, p.JobID)
				k.requeueLocked(p)
				k.current = 0
			}
		} else {
			k.current = 0
		}
	}

	if k.current == 0 {
		k.dispatchLocked()
	}

	if ranAnalytics {
		freq := spas.Frequency(k.State.CurrentFrequency.Load())
		k.log("analytics: load=%d predicted=%d freq=%s temp=%d",
			k.State.CPULoad.Load(), k.State.PredictedLoad.Load(), freq, k.State.VirtualTemp.Load())
	}
}

// requeueLocked puts p back at the end of the run queue, runnable
// again. Callers must hold mu.
func (k *Kernel) requeueLocked(p *kernio.Proc) {
	p.State = kernio.ProcRunnable
	k.runQueue = append(k.runQueue, p.PID)
}

// dispatchLocked pops the next runnable pid and assigns it the quantum
// C7 computes from the current frequency and its priority. Callers
// must hold mu.
func (k *Kernel) dispatchLocked() {
	for len(k.runQueue) > 0 {
		pid := k.runQueue[0]
		k.runQueue = k.runQueue[1:]
		p, ok := k.Procs.Lookup(pid)
		if !ok || p.State == kernio.ProcExited {
			continue
		}
		freq := spas.Frequency(k.State.CurrentFrequency.Load())
		p.QuantumRemaining = spas.QuantumFor(freq, p.Priority)
		p.State = kernio.ProcRunning
		k.current = pid
		k.log("pid=%d job=%s dispatched, quantum=%d", p.PID, p.JobID, p.QuantumRemaining)
		return
	}
	k.current = 0
}
