package queens

// Indexer gives a unique SAT variable to a (row, column) board position and
// vice versa. Positions are 0-indexed, variables are 1-indexed.
type Indexer interface {
	// Returns the SAT variable stating that a queen sits on (row, column)
	Index(row, column uint64) uint64
	// Returns the (row, column) position encoded by a SAT variable
	Attributes(index uint64) (row uint64, column uint64)
}

func NewIndexer(size uint64) Indexer {
	return &boardIndexer{size: size}
}

type boardIndexer struct {
	size uint64
}

func (indexer *boardIndexer) Index(row, column uint64) uint64 {
	return row*indexer.size + column + 1
}

func (indexer *boardIndexer) Attributes(index uint64) (row uint64, column uint64) {
	row = (index - 1) / indexer.size
	column = (index - 1) % indexer.size
	return row, column
}
