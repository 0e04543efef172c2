package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"spasctl/internal/hostkernel"
	"spasctl/internal/introspect"
)

var setpriorityCmd = &cobra.Command{
	Use:   "setpriority <pid> <priority>",
	Short: "Set a process's scheduling priority",
	Long: `setpriority calls the setpriority syscall against a freshly booted
harness with one demo process forked (pid 1), grounded on
original_source/sysproc.c's sys_setpriority and the teacher's
cobra.ExactArgs single-shot commands (cmd/run.go).

Priority must be in [0, 20]; a pid other than the demo process's
reports "no such process", the same ESRCH path sys_setpriority takes
for an unknown pid.`,
	Args: cobra.ExactArgs(2),
	RunE: runSetPriority,
}

func init() {
	rootCmd.AddCommand(setpriorityCmd)
}

func runSetPriority(cmd *cobra.Command, args []string) error {
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid pid %q: %w", args[0], err)
	}
	priority, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid priority %q: %w", args[1], err)
	}

	k := hostkernel.New(10*time.Millisecond, debugLogger())
	demo := k.Fork("DEMO", "setpriority-demo", 1)
	logDebug("forked demo process pid=%d", demo.PID)

	if err := introspect.SetPriority(k.Procs, pid, int32(priority)); err != nil {
		fmt.Fprintf(os.Stderr, "setpriority: %v\n", err)
		return err
	}
	fmt.Printf("pid %d priority set to %d\n", pid, priority)
	return nil
}
