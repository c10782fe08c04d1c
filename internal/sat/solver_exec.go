package sat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

// execSolver shells out to an external SAT solver binary following the DIMACS
// conventions: formula over standard input, "v" model lines on standard output.
type execSolver struct {
	name string
	args []string
}

func NewKissatSolver() SATSolver {
	return &execSolver{name: "kissat", args: []string{"-q", "--relaxed"}}
}

func NewCadicalSolver() SATSolver {
	return &execSolver{name: "cadical", args: []string{"-q"}}
}

func NewCryptominisatSolver() SATSolver {
	return &execSolver{name: "cryptominisat", args: []string{"--verb", "0"}}
}

func (solver *execSolver) Solve(instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	cmd := exec.Command(executablePath(solver.name), solver.args...)
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into the solver's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if cmd.ProcessState == nil { // The solver binary could not be started at all
		return nil, fmt.Errorf("an error occurred during %v execution: %v", solver.name, err)
	}
	if err != nil && cmd.ProcessState.ExitCode() != exitSatisfiable && cmd.ProcessState.ExitCode() != exitUnsatisfiable {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", solver.name, err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == exitUnsatisfiable {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
