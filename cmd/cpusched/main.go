// cpusched simulates uniprocessor CPU scheduling policies (FCFS, SRTN, RR,
// NPP, PP, SJF) over a fixed set of processes and reports per-process
// metrics and a Gantt chart.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	configFile string
	inputFile  string
	formatFlag string
	xlsxPath   string
	quantum    int
	verbose    bool
	noColor    bool

	// run
	echoInput  bool
	policyFlag string

	// compare / batch
	policiesFlag []string
	workers      int
	failFast     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Simulate CPU scheduling policies",
	Long: `cpusched runs classical uniprocessor scheduling policies over a fixed set of
processes and prints per-process exit, turnaround and waiting times together
with the execution trace (Gantt chart).

Input files name the policy on the first line, followed by comma-separated
process numbers, arrival times, burst times and, depending on the policy,
a quantum (RR) or priorities (NPP, PP).`,
	Version:           fmt.Sprintf("%s (%s)", version, commit),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate the policy named in an input file",
	Long: `Simulate the policy named on the first line of the input file.

Examples:
  cpusched run -i fcfs.txt
  cpusched run -i procs.txt --policy srtn --echo
  cpusched run -i rr.txt --format yaml --xlsx rr.xlsx`,
	RunE: runRun,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Simulate one input under several policies and compare averages",
	Long: `Run every policy the input has data for (or the ones given with --policies)
concurrently and print a comparison of average waiting, turnaround and
response times.

Examples:
  cpusched compare -i procs.txt
  cpusched compare -i procs.txt --policies fcfs,sjf,rr --quantum 4`,
	RunE: runCompare,
}

var batchCmd = &cobra.Command{
	Use:   "batch [input-file...]",
	Short: "Simulate many input files in parallel",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run an input file every time it is saved",
	RunE:  runWatch,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in process mix under every policy",
	RunE:  runDemo,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or initialise configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to ~/.cpusched/config.yaml",
	RunE:  runConfigInit,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.cpusched/config.yaml, ./.cpusched.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format (table, yaml, json)")
	rootCmd.PersistentFlags().StringVar(&xlsxPath, "xlsx", "", "Also write results to this xlsx workbook")
	rootCmd.PersistentFlags().IntVarP(&quantum, "quantum", "q", 0, "Round robin quantum when the input has none")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	// Run command flags
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file path (required)")
	runCmd.Flags().StringVarP(&policyFlag, "policy", "p", "", "Override the policy named in the file")
	runCmd.Flags().BoolVar(&echoInput, "echo", false, "Print the parsed input before the results")
	runCmd.MarkFlagRequired("input")

	// Compare command flags
	compareCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file path (required)")
	compareCmd.Flags().StringSliceVar(&policiesFlag, "policies", nil, "Policies to compare (default: all applicable)")
	compareCmd.Flags().IntVar(&workers, "workers", 0, "Parallel simulations (0 = NumCPU)")
	compareCmd.MarkFlagRequired("input")

	// Batch command flags
	batchCmd.Flags().IntVar(&workers, "workers", 0, "Parallel files (0 = NumCPU)")
	batchCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failing file")

	// Watch command flags
	watchCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file path (required)")
	watchCmd.MarkFlagRequired("input")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}
