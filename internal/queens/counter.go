package queens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"satlab/internal/sat"
)

// ErrBoardTooSmall reports a board size rejected before any solving happens.
// It is not the same thing as a board with zero solutions.
var ErrBoardTooSmall = errors.New("board size must be greater than 3")

// KnownCounts holds the solution counts of OEIS sequence A000170 used to
// cross-check enumeration results.
var KnownCounts = map[uint64]uint64{
	4: 2, 5: 10, 6: 4, 7: 40, 8: 92, 9: 352, 10: 724,
	11: 2680, 12: 14200, 13: 73712, 14: 365596,
}

type Counter interface {
	// Count enumerates every solution of the size-N board and returns how many
	// there are. The injected solver handle is released before returning.
	Count(size uint64) (uint64, error)
}

// NewCounter builds a counter on top of an incremental solver backend. The
// onSolution callback, if not nil, is invoked with every decoded solution in
// the order they are found.
func NewCounter(factory sat.IncrementalFactory, onSolution func(queens [][2]uint64)) Counter {
	return &satCounter{
		factory:    factory,
		onSolution: onSolution,
	}
}

type satCounter struct {
	//** Dependencies
	factory    sat.IncrementalFactory
	onSolution func(queens [][2]uint64)
}

func (counter *satCounter) Count(size uint64) (uint64, error) {
	if size <= 3 {
		return 0, ErrBoardTooSmall
	}

	solver, err := counter.factory(Encode(size))
	if err != nil {
		return 0, err
	}
	defer solver.Release()

	var count uint64
	for {
		satisfiable, err := solver.Solve()
		if err != nil {
			return 0, err
		} else if !satisfiable { // The assignment space is exhausted
			return count, nil
		}

		model, err := solver.Model()
		if err != nil {
			return 0, err
		}

		queens := Decode(model, size)
		if !Verify(queens, size) {
			return 0, fmt.Errorf("decoded solution %v violates the placement constraints", queens)
		}

		count++
		if counter.onSolution != nil {
			counter.onSolution(queens)
		}

		// Block this exact assignment so the next solve call must find a new one
		blocking := lo.Map(model, func(literal int64, _ int) int64 { return -literal })
		if err := solver.AddClause(blocking); err != nil {
			return 0, err
		}
	}
}

// Decode maps a satisfying assignment to the occupied board positions.
func Decode(model sat.SATSolution, size uint64) [][2]uint64 {
	indexer := NewIndexer(size)
	queens := [][2]uint64{}

	for _, literal := range model {
		if literal <= 0 || uint64(literal) > size*size {
			continue
		}
		row, column := indexer.Attributes(uint64(literal))
		queens = append(queens, [2]uint64{row, column})
	}

	return queens
}

// Verify checks that a placement is a valid N-Queens solution: one queen per
// row and no two queens sharing a column, diagonal or anti-diagonal.
func Verify(queens [][2]uint64, size uint64) bool {
	if uint64(len(queens)) != size {
		return false
	}

	rows := map[uint64]bool{}
	columns := map[uint64]bool{}
	diagonals := map[int64]bool{}
	antiDiagonals := map[uint64]bool{}

	for _, queen := range queens {
		row, column := queen[0], queen[1]
		if row >= size || column >= size {
			return false
		}

		diagonal := int64(row) - int64(column)
		antiDiagonal := row + column
		if rows[row] || columns[column] || diagonals[diagonal] || antiDiagonals[antiDiagonal] {
			return false
		}

		rows[row] = true
		columns[column] = true
		diagonals[diagonal] = true
		antiDiagonals[antiDiagonal] = true
	}

	return true
}

// Board renders a placement as a printable grid.
func Board(queens [][2]uint64, size uint64) string {
	occupied := lo.SliceToMap(queens, func(queen [2]uint64) ([2]uint64, bool) { return queen, true })

	var builder strings.Builder
	for row := uint64(0); row < size; row++ {
		cells := make([]string, 0, size)
		for column := uint64(0); column < size; column++ {
			if occupied[[2]uint64{row, column}] {
				cells = append(cells, "Q")
			} else {
				cells = append(cells, ".")
			}
		}
		builder.WriteString(strings.Join(cells, " "))
		builder.WriteString("\n")
	}
	return builder.String()
}
