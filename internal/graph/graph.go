// Package graph reads undirected graphs in the DIMACS challenge format used
// by the graph-coloring benchmarks: a "p edge n m" problem line followed by
// one "e u v" line per edge, with "c" comment lines interleaved.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type Graph struct {
	Vertices uint64 // Vertices are numbered from 1 to Vertices
	Edges    [][2]uint64
}

func ReadDIMACSFile(filename string) (Graph, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Graph{}, fmt.Errorf("cannot open graph file: %v", err)
	}
	defer file.Close()

	graph, err := ReadDIMACS(file)
	if err != nil {
		return Graph{}, fmt.Errorf("cannot parse graph file %v: %v", filename, err)
	}
	return graph, nil
}

func ReadDIMACS(reader io.Reader) (Graph, error) {
	var graph Graph
	headerSeen := false

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if headerSeen {
				return Graph{}, fmt.Errorf("duplicated problem line: %q", line)
			} else if len(fields) != 4 || fields[1] != "edge" {
				return Graph{}, fmt.Errorf("invalid problem line: %q", line)
			}

			vertices, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return Graph{}, fmt.Errorf("invalid vertex count in problem line: %v", err)
			}
			graph.Vertices = vertices
			headerSeen = true

		case "e":
			if !headerSeen {
				return Graph{}, fmt.Errorf("edge line %q before problem line", line)
			} else if len(fields) != 3 {
				return Graph{}, fmt.Errorf("invalid edge line: %q", line)
			}

			endpoints := [2]uint64{}
			for i, field := range fields[1:] {
				vertex, err := strconv.ParseUint(field, 10, 64)
				if err != nil {
					return Graph{}, fmt.Errorf("invalid vertex in edge line %q: %v", line, err)
				} else if vertex == 0 || vertex > graph.Vertices {
					return Graph{}, fmt.Errorf("vertex %d in edge line %q out of range [1, %d]", vertex, line, graph.Vertices)
				}
				endpoints[i] = vertex
			}
			graph.Edges = append(graph.Edges, endpoints)

		default:
			return Graph{}, fmt.Errorf("unexpected line: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Graph{}, fmt.Errorf("cannot read graph input: %v", err)
	}

	if !headerSeen {
		return Graph{}, fmt.Errorf("missing problem line")
	}
	return graph, nil
}
