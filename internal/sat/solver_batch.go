package sat

// batchAdapter turns an incremental backend into a one-shot SATSolver: the
// instance is loaded, decided once and the handle is released right away.
type batchAdapter struct {
	factory IncrementalFactory
}

func (adapter *batchAdapter) Solve(instance SAT) (SATSolution, error) {
	solver, err := adapter.factory(instance)
	if err != nil {
		return nil, err
	}
	defer solver.Release()

	satisfiable, err := solver.Solve()
	if err != nil {
		return nil, err
	} else if !satisfiable {
		return nil, nil
	}

	return solver.Model()
}
