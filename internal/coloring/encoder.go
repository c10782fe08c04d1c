// Package coloring encodes graph k-coloring instances as SAT using the
// traditional encoding: one variable per (vertex, color) pair, every vertex
// gets at least and at most one color, adjacent vertices get different colors.
package coloring

import (
	"satlab/internal/graph"
	"satlab/internal/sat"
)

type encoder struct {
	graph   graph.Graph
	colors  uint64
	indexer Indexer
}

// Encode is a pure transformation: the resulting instance is satisfiable
// exactly when the graph is colorable with the given number of colors.
func Encode(g graph.Graph, colors uint64) sat.SAT {
	enc := &encoder{
		graph:   g,
		colors:  colors,
		indexer: NewIndexer(colors),
	}

	instance := sat.SAT{
		Variables: g.Vertices * colors,
		Clauses:   [][]int64{},
	}

	instance.Clauses = append(instance.Clauses, enc.atLeastOneColorConstraints()...)
	instance.Clauses = append(instance.Clauses, enc.atMostOneColorConstraints()...)
	instance.Clauses = append(instance.Clauses, enc.edgeConflictConstraints()...)

	return instance
}

// Every vertex must have at least one color
func (enc *encoder) atLeastOneColorConstraints() [][]int64 {
	clauses := [][]int64{}
	for vertex := uint64(1); vertex <= enc.graph.Vertices; vertex++ {
		clause := make([]int64, 0, enc.colors)
		for color := uint64(1); color <= enc.colors; color++ {
			clause = append(clause, int64(enc.indexer.Index(vertex, color)))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// Every vertex must have at most one color
func (enc *encoder) atMostOneColorConstraints() [][]int64 {
	clauses := [][]int64{}
	for vertex := uint64(1); vertex <= enc.graph.Vertices; vertex++ {
		for first := uint64(1); first <= enc.colors; first++ {
			for second := first + 1; second <= enc.colors; second++ {
				clauses = append(clauses, []int64{
					-int64(enc.indexer.Index(vertex, first)),
					-int64(enc.indexer.Index(vertex, second)),
				})
			}
		}
	}
	return clauses
}

// Adjacent vertices must have different colors
func (enc *encoder) edgeConflictConstraints() [][]int64 {
	clauses := [][]int64{}
	for _, edge := range enc.graph.Edges {
		for color := uint64(1); color <= enc.colors; color++ {
			clauses = append(clauses, []int64{
				-int64(enc.indexer.Index(edge[0], color)),
				-int64(enc.indexer.Index(edge[1], color)),
			})
		}
	}
	return clauses
}

// Decode maps a satisfying assignment back to a coloring: one 0-indexed color
// per vertex.
func Decode(solution sat.SATSolution, g graph.Graph, colors uint64) []uint64 {
	indexer := NewIndexer(colors)
	coloring := make([]uint64, g.Vertices)

	for _, literal := range solution {
		if literal <= 0 || uint64(literal) > g.Vertices*colors {
			continue
		}
		vertex, color := indexer.Attributes(uint64(literal))
		coloring[vertex-1] = color - 1
	}

	return coloring
}
