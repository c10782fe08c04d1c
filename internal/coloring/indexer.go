package coloring

// Indexer gives a unique SAT variable to a (vertex, color) pair and vice versa.
// Vertices, colors and variables are all 1-indexed.
type Indexer interface {
	// Returns the SAT variable stating that vertex has color
	Index(vertex, color uint64) uint64
	// Returns the (vertex, color) pair encoded by a SAT variable
	Attributes(index uint64) (vertex uint64, color uint64)
}

func NewIndexer(colors uint64) Indexer {
	return &vertexColorIndexer{colors: colors}
}

type vertexColorIndexer struct {
	colors uint64
}

func (indexer *vertexColorIndexer) Index(vertex, color uint64) uint64 {
	return (vertex-1)*indexer.colors + color
}

func (indexer *vertexColorIndexer) Attributes(index uint64) (vertex uint64, color uint64) {
	vertex = (index-1)/indexer.colors + 1
	color = (index-1)%indexer.colors + 1
	return vertex, color
}
