package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadDIMACS(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Arrange
		input := `c triangle plus a pendant vertex
p edge 4 4
e 1 2
e 2 3
e 1 3
e 3 4
`

		//** Act
		graph, err := ReadDIMACS(strings.NewReader(input))

		//** Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(4), graph.Vertices)
		assert.Equal(t, [][2]uint64{{1, 2}, {2, 3}, {1, 3}, {3, 4}}, graph.Edges)
	})

	t.Run("Isolated vertices", func(t *testing.T) {
		graph, err := ReadDIMACS(strings.NewReader("p edge 3 0\n"))
		assert.NoError(t, err)
		assert.Equal(t, uint64(3), graph.Vertices)
		assert.Empty(t, graph.Edges)
	})

	t.Run("Malformed input", func(t *testing.T) {
		inputs := []string{
			"",                        // empty file
			"e 1 2\np edge 2 1\n",     // edge before problem line
			"p edge 2 1\ne 1 3\n",     // vertex out of range
			"p edge 2 1\ne 0 1\n",     // vertices are 1-indexed
			"p edge 2 1\ne 1\n",       // missing endpoint
			"p cnf 2 1\ne 1 2\n",      // wrong format keyword
			"p edge 2 1\nx 1 2\n",     // unknown line type
			"p edge two 1\ne 1 2\n",   // non-numeric vertex count
			"p edge 2 1\np edge 2 1\n", // duplicated problem line
		}

		for _, input := range inputs {
			_, err := ReadDIMACS(strings.NewReader(input))
			assert.Error(t, err, "input %q should be rejected", input)
		}
	})
}
