package coloring

import (
	"fmt"

	"satlab/internal/graph"
	"satlab/internal/sat"
)

type Colorer interface {
	// Color returns a proper coloring with one 0-indexed color per vertex, or
	// nil when the graph is not colorable with the given number of colors
	Color(g graph.Graph, colors uint64) ([]uint64, error)
	// Verify checks that a coloring is total, in range and proper
	Verify(g graph.Graph, coloring []uint64, colors uint64) bool
}

func NewColorer(solver sat.SATSolver) Colorer {
	return &satColorer{solver: solver}
}

type satColorer struct {
	//** Dependencies
	solver sat.SATSolver
}

func (colorer *satColorer) Color(g graph.Graph, colors uint64) ([]uint64, error) {
	if colors == 0 {
		return nil, fmt.Errorf("number of colors must be positive")
	}

	instance := Encode(g, colors)

	solution, err := colorer.solver.Solve(instance)
	if err != nil {
		return nil, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, nil
	}

	return Decode(solution, g, colors), nil
}

func (colorer *satColorer) Verify(g graph.Graph, coloring []uint64, colors uint64) bool {
	if uint64(len(coloring)) != g.Vertices {
		return false
	}

	for _, color := range coloring {
		if color >= colors {
			return false
		}
	}

	for _, edge := range g.Edges {
		if coloring[edge[0]-1] == coloring[edge[1]-1] {
			return false
		}
	}

	return true
}
