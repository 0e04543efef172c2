package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"spasctl/internal/hostkernel"
)

var bootInterval time.Duration

var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Boot the host-kernel harness standalone with no workload",
	Long: `boot starts the timer-tick loop and leaves the CPU idle, the
baseline scenario S1 describes (sustained idle converges load, predicted
load and frequency to zero while virtual temperature decays to ambient).
Run "spasctl workload" in another terminal-equivalent invocation to see
load actually move the frequency; this command exists for the idle
baseline on its own, and logs one analytics line per sampling period
with --verbose.`,
	RunE: runBoot,
}

func init() {
	bootCmd.Flags().DurationVar(&bootInterval, "tick", 10*time.Millisecond, "Simulated timer-tick interval")
	rootCmd.AddCommand(bootCmd)
}

func runBoot(cmd *cobra.Command, args []string) error {
	k := hostkernel.New(bootInterval, debugLogger())
	k.Start()
	defer k.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("spas harness booted, idle (CTRL+C to stop)")
	<-stop
	fmt.Println("shutting down")
	return nil
}
