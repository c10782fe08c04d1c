package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"satlab/internal/logic"
)

var (
	vivifyEvaluate bool
	vivifySolver   string
)

func newVivifyCmd() *cobra.Command {
	vivifyCmd := &cobra.Command{
		Use:   "vivify <program_file>",
		Short: "Remove obviously redundant constraints from an LSAT program",
		Long: `The vivify command reads an LSAT constraint program, drops constraints
that are obviously redundant (exact duplicates, and inequalities implied by an
equality on the same left-hand side), and prints the regenerated program along
with reduction statistics.

With --evaluate the program's options are additionally checked by refutation:
an option is valid when the constraints together with its negation are
unsatisfiable.`,
		Args: cobra.ExactArgs(1),
		RunE: vivifyFunc,
	}

	vivifyCmd.Flags().BoolVar(&vivifyEvaluate, "evaluate", false, "evaluate the program options after vivification")
	vivifyCmd.Flags().StringVar(&vivifySolver, "solver", "gophersat", "solver used with --evaluate")

	return vivifyCmd
}

func vivifyFunc(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read program file: %v", err)
	}

	program, err := logic.Parse(string(source))
	if err != nil {
		return fmt.Errorf("cannot parse program file %v: %v", args[0], err)
	}

	vivified, stats := logic.NewVivifier().Vivify(program)

	fmt.Println("=== Vivification Statistics ===")
	fmt.Printf("Original constraints: %v\n", stats.Original)
	fmt.Printf("Final constraints: %v\n", stats.Final)
	fmt.Printf("Removed constraints: %v\n", stats.Removed)
	fmt.Printf("Processing time: %v\n", stats.Duration)
	if stats.Original > 0 {
		reduction := float64(stats.Removed) / float64(stats.Original) * 100
		fmt.Printf("Constraint reduction: %.1f%%\n", reduction)
	}

	fmt.Println()
	fmt.Println(strings.TrimRight(vivified.String(), "\n"))

	if !vivifyEvaluate {
		return nil
	}

	solver, err := solverByName(vivifySolver)
	if err != nil {
		return err
	}

	valid, err := logic.NewEvaluator(solver).Evaluate(vivified)
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}

	fmt.Println()
	if len(valid) == 0 {
		fmt.Println("No option is valid")
	} else {
		fmt.Printf("Valid options: %v\n", strings.Join(valid, " "))
	}

	return nil
}
