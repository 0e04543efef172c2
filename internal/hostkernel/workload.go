package hostkernel

import "github.com/google/uuid"

// WorkloadShape describes a synthetic CPU-bound task, grounded on the
// teacher's cmd/run.go workload profiles (IMG_RESIZE/DATA_ETL/
// MATRIX_OPS), re-purposed from stress-ng container arguments to
// goroutine-free, tick-counted simulated work: a process forked with
// this shape simply needs WorkTicks timer ticks of CPU time before it
// exits, the same way the teacher's profiles differ by how much CPU a
// stress-ng container burns before --timeout.
type WorkloadShape struct {
	Name      string
	WorkTicks int32
}

// Named workload shapes the workload generator command chooses between,
// forking N CPU-bound children of a given shape.
var (
	// ShapeCPUBound is a long, uninterrupted compute-bound task,
	// grounded on IMG_RESIZE's "high CPU usage, low memory footprint".
	ShapeCPUBound = WorkloadShape{Name: "CPU_BOUND", WorkTicks: 400}

	// ShapeBursty is a shorter task, useful for generating frequency
	// oscillation when several are forked in a staggered pattern,
	// grounded on MATRIX_OPS's brief, intensive compute burst.
	ShapeBursty = WorkloadShape{Name: "BURSTY", WorkTicks: 40}

	// ShapeLight is a short task that exits after a few ticks and leaves
	// the CPU idle once done, grounded on DATA_ETL's comparatively low
	// CPU share.
	ShapeLight = WorkloadShape{Name: "LIGHT", WorkTicks: 10}
)

// SpawnWorkload forks n processes of the given shape into the kernel,
// each tagged with its own job id for log correlation, the same
// correlation role uuid.New().String() plays tagging each
// pb.JobRequest in the teacher's cmd/run.go.
func (k *Kernel) SpawnWorkload(shape WorkloadShape, n int) []SpawnedProc {
	entries := make([]SpawnedProc, 0, n)
	for i := 0; i < n; i++ {
		jobID := uuid.New().String()
		p := k.Fork(shape.Name, jobID, shape.WorkTicks)
		entries = append(entries, SpawnedProc{PID: p.PID, JobID: jobID})
	}
	return entries
}

// SpawnedProc is the minimal record the workload CLI command needs back
// from a spawn call to report what it started.
type SpawnedProc struct {
	PID   int
	JobID string
}
