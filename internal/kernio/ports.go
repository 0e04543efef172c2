package kernio

// CopyOut copies a fixed-size record into user memory: the one
// external-collaborator contract that SPAS's own callers
// (cmd/cpustat.go, cmd/workload.go) actually drive end to end, through
// introspect.CPUStat; internal/hostkernel.Kernel is the implementation.
// Go has no separate user/kernel address space to model faithfully; dst
// stands in for a user pointer and is considered bad only when zero,
// which the CLI's --bad-pointer flag exercises deliberately.
type CopyOut interface {
	CopyOut(dst uintptr, rec any, size int) error
}
