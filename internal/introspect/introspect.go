// Package introspect implements C8: the system-call boundary SPAS
// exposes to user space. cpustat reads C2-C6 state; setpriority mutates
// C7 state. Neither participates in the control loop itself.
package introspect

import (
	"errors"

	"spasctl/internal/kernio"
	"spasctl/internal/spas"
)

// Sentinel errors mapped to the -1 syscall return at the CLI boundary,
// grounded on original_source/sysproc.c's EINVAL/ESRCH-shaped failures.
var (
	ErrInvalidPriority = errors.New("spas: priority out of range")
	ErrNoSuchProcess   = errors.New("spas: no such process")
	ErrBadPointer      = errors.New("spas: bad user pointer")
)

// Snapshot is the fixed-layout, user-visible record cpustat copies out:
// six 32-bit signed integers in order. FrequencyLevel is 0=LOW, 1=MEDIUM,
// 2=HIGH. Temp is in tenths of a degree Celsius.
type Snapshot struct {
	Load           int32
	PredictedLoad  int32
	FrequencyLevel int32
	Temp           int32
	ThreshLowMed   int32
	ThreshMedHigh  int32
}

// snapshotSize is the encoded size of a Snapshot: six int32 fields.
const snapshotSize = 6 * 4

// CPUStat is the cpustat syscall. It reads scheduler globals without the
// tick lock: every field is an independent atomic load, so the snapshot
// is consistent per-field but not necessarily atomic across fields
// (best-effort, by design). It then copies the snapshot out through out,
// returning ErrBadPointer if dst is not a usable destination, the same
// -1 return original_source/cpustat.c gives on a bad pointer, rather
// than a signal or a partial write.
func CPUStat(s *spas.SchedulerState, out kernio.CopyOut, dst uintptr) (Snapshot, error) {
	snap := Snapshot{
		Load:           s.CPULoad.Load(),
		PredictedLoad:  s.PredictedLoad.Load(),
		FrequencyLevel: s.CurrentFrequency.Load(),
		Temp:           s.VirtualTemp.Load(),
		ThreshLowMed:   s.ThreshLowToMed.Load(),
		ThreshMedHigh:  s.ThreshMedToHigh.Load(),
	}
	if err := out.CopyOut(dst, snap, snapshotSize); err != nil {
		return Snapshot{}, ErrBadPointer
	}
	return snap, nil
}

// SetPriority is the setpriority syscall. It validates the priority
// range before touching the process table (no kernel state is mutated
// on a bad argument), then asks the table to find and update the
// process, failing ErrNoSuchProcess when no process has that pid.
func SetPriority(pt *kernio.ProcTable, pid int, priority int32) error {
	if priority < spas.MinPriority || priority > spas.MaxPriority {
		return ErrInvalidPriority
	}
	if !pt.SetPriority(pid, priority) {
		return ErrNoSuchProcess
	}
	return nil
}
