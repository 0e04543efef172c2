// Package kernio models the external collaborators SPAS itself never
// implements: the process table and the copy-out primitive the
// surrounding kernel's context-switch machinery would otherwise supply.
// It is stubbed here so the core can be exercised end to end
// (internal/hostkernel drives it).
package kernio

import (
	"sync"

	"spasctl/internal/spas"
)

// ProcState mirrors the small slice of a process control block's
// lifecycle SPAS cares about.
type ProcState int

const (
	ProcRunnable ProcState = iota
	ProcRunning
	ProcSleeping
	ProcExited
)

// Proc is the per-process control-block slice SPAS adds to the existing
// kernel's process table: priority and the remaining quantum, plus
// enough bookkeeping for a toy round-robin dispatcher to drive them.
type Proc struct {
	PID              int
	JobID            string // correlation id tagged by the workload generator
	Name             string
	Priority         int32 // 0..20, lower preferred; default 10 on fork
	QuantumRemaining int32
	WorkRemaining    int32 // simulated ticks of CPU work left before exit
	State            ProcState
}

// ProcTable is the process table: a map of pid to *Proc guarded by a
// single lock, grounded directly on the teacher's ClusterState
// (cmd/peer.go: map[string]NodeData + sync.RWMutex, Update/Snapshot),
// re-keyed from peer IP to pid and re-purposed from cluster-node
// bookkeeping to process bookkeeping.
type ProcTable struct {
	mu    sync.RWMutex
	procs map[int]*Proc
	next  int
}

// NewProcTable returns an empty process table.
func NewProcTable() *ProcTable {
	return &ProcTable{procs: make(map[int]*Proc)}
}

// Fork allocates a new process with the default priority and work
// ticks, and adds it to the table, returning the new process.
func (t *ProcTable) Fork(name, jobID string, workTicks int32) *Proc {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	p := &Proc{
		PID:           t.next,
		JobID:         jobID,
		Name:          name,
		Priority:      spas.DefaultPriority,
		WorkRemaining: workTicks,
		State:         ProcRunnable,
	}
	t.procs[p.PID] = p
	return p
}

// Exit marks a process exited and removes it from the table.
func (t *ProcTable) Exit(pid int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.procs[pid]; ok {
		p.State = ProcExited
	}
	delete(t.procs, pid)
}

// Lookup returns the process for pid, if present.
func (t *ProcTable) Lookup(pid int) (*Proc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.procs[pid]
	return p, ok
}

// SetPriority validates nothing itself (introspect.SetPriority does
// that); it finds pid under the table lock and assigns priority,
// reporting whether the process existed. The search is a single map
// lookup keyed by pid, not a scan; original_source/sysproc.c's
// sys_setpriority loops over the whole table instead, with the same
// externally observable result.
func (t *ProcTable) SetPriority(pid int, priority int32) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.procs[pid]
	if !ok {
		return false
	}
	p.Priority = priority
	return true
}

// Snapshot returns a shallow copy of the live process list, for
// reporting tools.
func (t *ProcTable) Snapshot() []Proc {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Proc, 0, len(t.procs))
	for _, p := range t.procs {
		out = append(out, *p)
	}
	return out
}
