// Package queens counts the solutions of the N-Queens problem by SAT
// enumeration: one variable per board square, one queen per row, no two
// queens sharing a column, diagonal or anti-diagonal.
package queens

import "satlab/internal/sat"

type encoder struct {
	size    uint64
	indexer Indexer
}

func Encode(size uint64) sat.SAT {
	enc := &encoder{
		size:    size,
		indexer: NewIndexer(size),
	}

	instance := sat.SAT{
		Variables: size * size,
		Clauses:   [][]int64{},
	}

	instance.Clauses = append(instance.Clauses, enc.rowConstraints()...)
	instance.Clauses = append(instance.Clauses, enc.columnConstraints()...)
	instance.Clauses = append(instance.Clauses, enc.diagonalConstraints()...)
	instance.Clauses = append(instance.Clauses, enc.antiDiagonalConstraints()...)

	return instance
}

// Exactly one queen per row: at least one square of the row is occupied and
// no two squares of the row are occupied together
func (enc *encoder) rowConstraints() [][]int64 {
	clauses := [][]int64{}
	for row := uint64(0); row < enc.size; row++ {
		clause := make([]int64, 0, enc.size)
		for column := uint64(0); column < enc.size; column++ {
			clause = append(clause, int64(enc.indexer.Index(row, column)))
		}
		clauses = append(clauses, clause)

		clauses = append(clauses, enc.atMostOne(clause)...)
	}
	return clauses
}

// At most one queen per column
func (enc *encoder) columnConstraints() [][]int64 {
	clauses := [][]int64{}
	for column := uint64(0); column < enc.size; column++ {
		variables := make([]int64, 0, enc.size)
		for row := uint64(0); row < enc.size; row++ {
			variables = append(variables, int64(enc.indexer.Index(row, column)))
		}
		clauses = append(clauses, enc.atMostOne(variables)...)
	}
	return clauses
}

// At most one queen per diagonal (top-left to bottom-right)
func (enc *encoder) diagonalConstraints() [][]int64 {
	size := int64(enc.size)
	clauses := [][]int64{}
	for offset := -(size - 1); offset < size; offset++ {
		variables := []int64{}
		for row := int64(0); row < size; row++ {
			column := row + offset
			if column >= 0 && column < size {
				variables = append(variables, int64(enc.indexer.Index(uint64(row), uint64(column))))
			}
		}
		clauses = append(clauses, enc.atMostOne(variables)...)
	}
	return clauses
}

// At most one queen per anti-diagonal (top-right to bottom-left)
func (enc *encoder) antiDiagonalConstraints() [][]int64 {
	size := int64(enc.size)
	clauses := [][]int64{}
	for sum := int64(0); sum < 2*size-1; sum++ {
		variables := []int64{}
		for row := int64(0); row < size; row++ {
			column := sum - row
			if column >= 0 && column < size {
				variables = append(variables, int64(enc.indexer.Index(uint64(row), uint64(column))))
			}
		}
		clauses = append(clauses, enc.atMostOne(variables)...)
	}
	return clauses
}

// Pairwise at-most-one over a set of variables
func (enc *encoder) atMostOne(variables []int64) [][]int64 {
	clauses := [][]int64{}
	for i := range variables {
		for j := i + 1; j < len(variables); j++ {
			clauses = append(clauses, []int64{-variables[i], -variables[j]})
		}
	}
	return clauses
}
