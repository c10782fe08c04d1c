package sat

import (
	"fmt"

	gophersat "github.com/crillab/gophersat/solver"
)

type gophersatSolver struct {
	variables uint64
	solver    *gophersat.Solver
	satisfied bool
}

// NewGophersatSolver returns a pure-Go batch solver, so no external binary is
// required. Each Solve call loads the instance into a fresh gophersat solver.
func NewGophersatSolver() SATSolver {
	return &batchAdapter{factory: NewGophersatIncremental}
}

// NewGophersatIncremental loads a SAT instance into a gophersat solver that
// accepts appended clauses between decision calls.
func NewGophersatIncremental(instance SAT) (IncrementalSolver, error) {
	cnf := make([][]int, 0, len(instance.Clauses)+int(instance.Variables))
	referenced := make([]bool, instance.Variables+1)

	for _, clause := range instance.Clauses {
		literals := make([]int, len(clause))
		for i, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if variable == 0 || uint64(variable) > instance.Variables {
				return nil, fmt.Errorf("literal %d out of range: instance declares %d variables", literal, instance.Variables)
			}
			referenced[variable] = true
			literals[i] = int(literal)
		}
		cnf = append(cnf, literals)
	}

	// Gophersat sizes its variable space from the literals it has seen, so pad
	// unreferenced variables with tautologies to keep the model width stable
	for variable := uint64(1); variable <= instance.Variables; variable++ {
		if !referenced[variable] {
			cnf = append(cnf, []int{int(variable), -int(variable)})
		}
	}

	return &gophersatSolver{
		variables: instance.Variables,
		solver:    gophersat.New(gophersat.ParseSlice(cnf)),
	}, nil
}

func (s *gophersatSolver) AddClause(clause []int64) error {
	if s.solver == nil {
		return fmt.Errorf("solver already released")
	} else if len(clause) == 0 {
		return fmt.Errorf("cannot add an empty clause")
	}

	literals := make([]gophersat.Lit, len(clause))
	for i, literal := range clause {
		variable := literal
		if variable < 0 {
			variable = -variable
		}
		if variable == 0 || uint64(variable) > s.variables {
			return fmt.Errorf("literal %d out of range: instance declares %d variables", literal, s.variables)
		}
		literals[i] = gophersat.IntToLit(int32(literal))
	}

	s.solver.AppendClause(gophersat.NewClause(literals))
	s.satisfied = false
	return nil
}

func (s *gophersatSolver) Solve() (bool, error) {
	if s.solver == nil {
		return false, fmt.Errorf("solver already released")
	}

	switch status := s.solver.Solve(); status {
	case gophersat.Sat:
		s.satisfied = true
		return true, nil
	case gophersat.Unsat:
		s.satisfied = false
		return false, nil
	default:
		return false, fmt.Errorf("gophersat returned an inconclusive status: %v", status)
	}
}

func (s *gophersatSolver) Model() (SATSolution, error) {
	if s.solver == nil {
		return nil, fmt.Errorf("solver already released")
	} else if !s.satisfied {
		return nil, fmt.Errorf("no model available: last decision call was not satisfiable")
	}

	bindings := s.solver.Model()
	solution := make(SATSolution, 0, s.variables)
	for variable := uint64(1); variable <= s.variables; variable++ {
		literal := int64(variable)
		if int(variable) > len(bindings) || !bindings[variable-1] {
			literal = -literal
		}
		solution = append(solution, literal)
	}
	return solution, nil
}

func (s *gophersatSolver) Release() {
	s.solver = nil
}
