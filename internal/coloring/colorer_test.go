package coloring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"satlab/internal/graph"
	"satlab/internal/sat"
)

func triangle() graph.Graph {
	return graph.Graph{
		Vertices: 3,
		Edges:    [][2]uint64{{1, 2}, {2, 3}, {1, 3}},
	}
}

// Petersen graph: outer 5-cycle, inner pentagram, spokes. Chromatic number 3.
func petersen() graph.Graph {
	return graph.Graph{
		Vertices: 10,
		Edges: [][2]uint64{
			{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1},
			{1, 6}, {2, 7}, {3, 8}, {4, 9}, {5, 10},
			{6, 8}, {8, 10}, {10, 7}, {7, 9}, {9, 6},
		},
	}
}

func TestEncodeClauseCount(t *testing.T) {
	scenarios := []struct {
		name   string
		graph  graph.Graph
		colors uint64
	}{
		{"triangle with 3 colors", triangle(), 3},
		{"petersen with 3 colors", petersen(), 3},
		{"petersen with 5 colors", petersen(), 5},
		{"edgeless with 2 colors", graph.Graph{Vertices: 4}, 2},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			//** Act
			instance := Encode(scenario.graph, scenario.colors)

			//** Assert: n*k variables and exactly n + n*k*(k-1)/2 + m*k clauses
			n := scenario.graph.Vertices
			m := uint64(len(scenario.graph.Edges))
			k := scenario.colors

			assert.Equal(t, n*k, instance.Variables)
			assert.Equal(t, n+n*k*(k-1)/2+m*k, uint64(len(instance.Clauses)))
		})
	}
}

func TestColor(t *testing.T) {
	colorer := NewColorer(sat.NewGophersatSolver())

	t.Run("Proper colorings are found and verified", func(t *testing.T) {
		scenarios := []struct {
			name   string
			graph  graph.Graph
			colors uint64
		}{
			{"triangle with 3 colors", triangle(), 3},
			{"petersen with 3 colors", petersen(), 3},
			{"edgeless with 1 color", graph.Graph{Vertices: 5}, 1},
		}

		for _, scenario := range scenarios {
			t.Run(scenario.name, func(t *testing.T) {
				//** Act
				coloring, err := colorer.Color(scenario.graph, scenario.colors)

				//** Assert
				assert.NoError(t, err)
				assert.NotNil(t, coloring)
				assert.True(t, colorer.Verify(scenario.graph, coloring, scenario.colors))
			})
		}
	})

	t.Run("Under-provisioned instances are unsatisfiable", func(t *testing.T) {
		scenarios := []struct {
			name   string
			graph  graph.Graph
			colors uint64
		}{
			{"triangle with 2 colors", triangle(), 2},
			{"petersen with 2 colors", petersen(), 2},
		}

		for _, scenario := range scenarios {
			t.Run(scenario.name, func(t *testing.T) {
				coloring, err := colorer.Color(scenario.graph, scenario.colors)
				assert.NoError(t, err)
				assert.Nil(t, coloring)
			})
		}
	})

	t.Run("Zero colors is rejected", func(t *testing.T) {
		_, err := colorer.Color(triangle(), 0)
		assert.Error(t, err)
	})
}

func TestVerifyRejectsImproperColorings(t *testing.T) {
	colorer := NewColorer(sat.NewGophersatSolver())

	assert.False(t, colorer.Verify(triangle(), []uint64{0, 1}, 3))       // not total
	assert.False(t, colorer.Verify(triangle(), []uint64{0, 1, 3}, 3))    // color out of range
	assert.False(t, colorer.Verify(triangle(), []uint64{0, 1, 1}, 3))    // monochromatic edge
	assert.True(t, colorer.Verify(triangle(), []uint64{0, 1, 2}, 3))
}
