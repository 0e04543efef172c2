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
	"spasctl/internal/spas"
)

var (
	cpustatInterval   time.Duration
	cpustatBadPointer bool
)

var cpustatCmd = &cobra.Command{
	Use:   "cpustat",
	Short: "Report SPAS scheduler snapshots at a fixed cadence",
	Long: `cpustat polls the cpustat syscall at a fixed cadence and prints the
scheduler's load, predicted load, frequency and virtual temperature,
grounded on original_source/cpustat.c's ten-report polling loop.

This simulation has no persistent kernel process shared across separate
CLI invocations the way real syscalls do, so cpustat boots its own
momentary, idle harness instance to demonstrate the call; see
"spasctl workload" to watch load drive real frequency/temperature
transitions.

Pass --bad-pointer to drive a zero destination through the copy-out
path instead, the same -1 return original_source/cpustat.c gives a
caller that passes a bad pointer.`,
	Run: runCPUStat,
}

func init() {
	cpustatCmd.Flags().DurationVar(&cpustatInterval, "interval", 1*time.Second, "Polling interval")
	cpustatCmd.Flags().BoolVar(&cpustatBadPointer, "bad-pointer", false, "Pass a bad destination pointer to exercise the -1 error path")
	rootCmd.AddCommand(cpustatCmd)
}

func runCPUStat(cmd *cobra.Command, args []string) {
	k := hostkernel.New(10*time.Millisecond, debugLogger())
	k.Start()
	defer k.Stop()

	dst := uintptr(1)
	if cpustatBadPointer {
		dst = 0
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cpustatInterval)
	defer ticker.Stop()

	fmt.Println("--- SPAS Scheduler Status --- (CTRL+C to stop)")
	for count := 0; count < 10; count++ {
		select {
		case <-ticker.C:
			st, err := introspect.CPUStat(k.State, k, dst)
			if err != nil {
				fmt.Printf("cpustat: %v (-1)\n", err)
				return
			}
			printSnapshot(st)
		case <-stop:
			return
		}
	}
}

func printSnapshot(st introspect.Snapshot) {
	freq := spas.Frequency(st.FrequencyLevel)
	fmt.Printf("CPU Load:     %d%%\n", st.Load)
	fmt.Printf("Pred. Load:   %d%%\n", st.PredictedLoad)
	fmt.Printf("Frequency:    %s\n", freq)
	fmt.Printf("Virtual Temp: %d.%d°C\n", st.Temp/10, st.Temp%10)
	fmt.Printf("Thresholds:   L->M %d%%, M->H %d%%\n", st.ThreshLowMed, st.ThreshMedHigh)
	fmt.Println()
}
