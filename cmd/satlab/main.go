package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"satlab/internal/sat"
)

var solvers = map[string]func() sat.SATSolver{
	"gophersat":     sat.NewGophersatSolver,
	"gini":          sat.NewGiniSolver,
	"kissat":        sat.NewKissatSolver,
	"cadical":       sat.NewCadicalSolver,
	"cryptominisat": sat.NewCryptominisatSolver,
}

var incrementalFactories = map[string]sat.IncrementalFactory{
	"gophersat": sat.NewGophersatIncremental,
	"gini":      sat.NewGiniIncremental,
}

func solverByName(name string) (sat.SATSolver, error) {
	factory, ok := solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver %q", name)
	}
	return factory(), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "satlab",
		Short: "SAT encoding, enumeration and preprocessing tools",
		Long: `satlab bundles three small SAT tools: a DIMACS graph-coloring-to-CNF
encoder, an N-Queens solution counter based on incremental SAT solving, and a
conservative vivification pass over LSAT constraint programs.`,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newColoringCmd())
	rootCmd.AddCommand(newQueensCmd())
	rootCmd.AddCommand(newVivifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
