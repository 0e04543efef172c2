package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Verbose controls whether debug logs are printed.
var Verbose bool

var rootCmd = &cobra.Command{
	Use:   "spasctl",
	Short: "SPAS: Self-adapting Predictive-And-Thermal-aware Scheduler",
	Long:  "spasctl boots a minimal host-kernel harness around the SPAS core and offers cpustat/setpriority/workload utilities against it.",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable verbose output")
}

// logDebug prints only if the --verbose flag is set.
func logDebug(format string, a ...any) {
	if Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", a...)
	}
}

// debugLogger adapts logDebug to the func(string, ...any) shape
// hostkernel.New expects, so every command boots its harness with the
// same --verbose-gated trace line.
func debugLogger() func(string, ...any) {
	return logDebug
}
