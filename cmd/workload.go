package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"spasctl/internal/hostkernel"
	"spasctl/internal/introspect"
	"spasctl/internal/kernio"
)

var (
	workloadShape    string
	workloadInterval time.Duration
	workloadBoostPID int
)

var workloadCmd = &cobra.Command{
	Use:   "workload <n>",
	Short: "Fork N simulated CPU-bound children and watch the scheduler adapt",
	Long: `workload boots the host-kernel harness, forks n processes of the
chosen shape, and reports scheduler snapshots and the process table at
a fixed cadence while they run, grounded on the teacher's cmd/run.go
workload profiles and cmd/aggregate.go's ticker-driven reporting loop.

Pass --boost-pid to call setpriority on one of the forked pids partway
through the run: the new priority only takes effect on that process's
next dispatch, not its current quantum.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkload,
}

func init() {
	workloadCmd.Flags().StringVar(&workloadShape, "shape", "cpu", "Workload shape: cpu, bursty, or light")
	workloadCmd.Flags().DurationVar(&workloadInterval, "interval", 500*time.Millisecond, "Reporting interval")
	workloadCmd.Flags().IntVar(&workloadBoostPID, "boost-pid", 0, "Pid to raise to priority 0 partway through the run (0 disables)")
	rootCmd.AddCommand(workloadCmd)
}

func shapeFor(name string) (hostkernel.WorkloadShape, error) {
	switch name {
	case "cpu":
		return hostkernel.ShapeCPUBound, nil
	case "bursty":
		return hostkernel.ShapeBursty, nil
	case "light":
		return hostkernel.ShapeLight, nil
	default:
		return hostkernel.WorkloadShape{}, fmt.Errorf("unknown shape %q (want cpu, bursty, or light)", name)
	}
}

func runWorkload(cmd *cobra.Command, args []string) error {
	n, err := parsePositiveInt(args[0])
	if err != nil {
		return err
	}
	shape, err := shapeFor(workloadShape)
	if err != nil {
		return err
	}

	k := hostkernel.New(10*time.Millisecond, debugLogger())
	spawned := k.SpawnWorkload(shape, n)
	for _, sp := range spawned {
		fmt.Printf("forked pid=%d job=%s shape=%s\n", sp.PID, sp.JobID, shape.Name)
	}

	k.Start()
	defer k.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(workloadInterval)
	defer ticker.Stop()

	boosted := workloadBoostPID == 0
	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			st, err := introspect.CPUStat(k.State, k, 1)
			if err != nil {
				return err
			}
			printSnapshot(st)
			procs := k.Procs.Snapshot()
			if len(procs) == 0 {
				fmt.Println("all processes exited")
				return nil
			}
			printProcTable(procs)

			if !boosted {
				if err := introspect.SetPriority(k.Procs, workloadBoostPID, 0); err == nil {
					fmt.Printf("boosted pid=%d to priority 0\n", workloadBoostPID)
				}
				boosted = true
			}
		}
	}
}

func printProcTable(procs []kernio.Proc) {
	for _, p := range procs {
		fmt.Printf("  pid=%-4d job=%s prio=%-2d quantum=%-2d work_left=%-4d state=%d\n",
			p.PID, p.JobID, p.Priority, p.QuantumRemaining, p.WorkRemaining, p.State)
	}
}

func parsePositiveInt(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("count must be positive, got %d", n)
	}
	return n, nil
}
