package coloring

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesBijection(t *testing.T) {
	for i := 0; i < 10; i++ {
		// Arrange
		var Vertices uint64 = uint64(rand.Intn(50) + 1)
		var Colors uint64 = uint64(rand.Intn(10) + 1)

		// Act
		indexer := NewIndexer(Colors)

		indices := make([]uint64, 0, Vertices*Colors)
		for vertex := uint64(1); vertex <= Vertices; vertex++ {
			for color := uint64(1); color <= Colors; color++ {
				indices = append(indices, indexer.Index(vertex, color))
			}
		}

		// Assert
		for _, index := range indices {
			vertex, color := indexer.Attributes(index)
			assert.Equal(t, index, indexer.Index(vertex, color))
		}

		slices.Sort(indices)
		for i, index := range indices {
			if i == 0 {
				// First index should be 1
				assert.Equal(t, uint64(1), index)
				continue
			}

			// Each index should be one more than the previous index
			assert.Equal(t, indices[i-1]+1, index)
		}
	}
}
