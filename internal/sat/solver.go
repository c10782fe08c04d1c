package sat

// SATSolver decides a whole SAT instance in a single shot.
type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// IncrementalSolver keeps a SAT instance loaded and accepts further clauses
// between decision calls, which is what blocking-clause enumeration needs.
type IncrementalSolver interface {
	// Adds a clause to the loaded instance. Literals must reference variables
	// already declared by the instance.
	AddClause(clause []int64) error
	// Runs the decision procedure over the instance plus every clause added so far
	Solve() (bool, error)
	// Returns the full assignment found by the last satisfiable Solve call
	Model() (SATSolution, error)
	// Releases the underlying solver. The handle must not be used afterwards.
	Release()
}

// IncrementalFactory loads a SAT instance into a fresh incremental solver
type IncrementalFactory func(SAT) (IncrementalSolver, error)
