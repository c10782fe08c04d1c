package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct {
	variables uint64
	solver    *gini.Gini
	satisfied bool
}

// NewGiniSolver returns a pure-Go batch solver backed by gini.
func NewGiniSolver() SATSolver {
	return &batchAdapter{factory: NewGiniIncremental}
}

// NewGiniIncremental loads a SAT instance into a gini solver. Gini is natively
// incremental: clauses are streamed in literal by literal, 0 ends a clause.
func NewGiniIncremental(instance SAT) (IncrementalSolver, error) {
	solver := &giniSolver{
		variables: instance.Variables,
		solver:    gini.NewV(int(instance.Variables)),
	}

	for _, clause := range instance.Clauses {
		if err := solver.AddClause(clause); err != nil {
			return nil, err
		}
	}

	return solver, nil
}

func (s *giniSolver) AddClause(clause []int64) error {
	if s.solver == nil {
		return fmt.Errorf("solver already released")
	} else if len(clause) == 0 {
		return fmt.Errorf("cannot add an empty clause")
	}

	for _, literal := range clause {
		variable := literal
		if variable < 0 {
			variable = -variable
		}
		if variable == 0 || uint64(variable) > s.variables {
			return fmt.Errorf("literal %d out of range: instance declares %d variables", literal, s.variables)
		}

		if literal > 0 {
			s.solver.Add(z.Var(literal).Pos())
		} else {
			s.solver.Add(z.Var(-literal).Neg())
		}
	}
	s.solver.Add(0)
	s.satisfied = false
	return nil
}

func (s *giniSolver) Solve() (bool, error) {
	if s.solver == nil {
		return false, fmt.Errorf("solver already released")
	}

	switch result := s.solver.Solve(); result {
	case 1:
		s.satisfied = true
		return true, nil
	case -1:
		s.satisfied = false
		return false, nil
	default:
		return false, fmt.Errorf("gini returned an inconclusive result: %v", result)
	}
}

func (s *giniSolver) Model() (SATSolution, error) {
	if s.solver == nil {
		return nil, fmt.Errorf("solver already released")
	} else if !s.satisfied {
		return nil, fmt.Errorf("no model available: last decision call was not satisfiable")
	}

	solution := make(SATSolution, 0, s.variables)
	for variable := uint64(1); variable <= s.variables; variable++ {
		literal := int64(variable)
		if !s.solver.Value(z.Var(variable).Pos()) {
			literal = -literal
		}
		solution = append(solution, literal)
	}
	return solution, nil
}

func (s *giniSolver) Release() {
	s.solver = nil
}
