package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SATSolution is a full assignment expressed as signed literals: a positive
// literal means the variable is true, a negative one means it is false.
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// ParseDIMACS reads a CNF formula in DIMACS format. Comment lines are skipped
// and clauses may span multiple lines: a clause ends at each 0 literal.
func ParseDIMACS(reader io.Reader) (SAT, error) {
	var instance SAT
	headerSeen := false
	clause := []int64{}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' || line[0] == '%' {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == "p" {
			if headerSeen {
				return SAT{}, fmt.Errorf("duplicated problem line: %q", line)
			} else if len(fields) != 4 || fields[1] != "cnf" {
				return SAT{}, fmt.Errorf("invalid problem line: %q", line)
			}
			variables, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid variable count in problem line: %v", err)
			}
			instance.Variables = variables
			headerSeen = true
			continue
		}

		if !headerSeen {
			return SAT{}, fmt.Errorf("clause line %q before problem line", line)
		}

		for _, field := range fields {
			literal, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return SAT{}, fmt.Errorf("invalid literal %q: %v", field, err)
			}

			if literal == 0 {
				instance.Clauses = append(instance.Clauses, clause)
				clause = []int64{}
				continue
			}

			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if uint64(variable) > instance.Variables {
				return SAT{}, fmt.Errorf("literal %d out of range: formula declares %d variables", literal, instance.Variables)
			}
			clause = append(clause, literal)
		}
	}
	if err := scanner.Err(); err != nil {
		return SAT{}, fmt.Errorf("cannot read DIMACS input: %v", err)
	}

	if !headerSeen {
		return SAT{}, fmt.Errorf("missing problem line")
	} else if len(clause) > 0 {
		return SAT{}, fmt.Errorf("last clause is not terminated by 0")
	}

	return instance, nil
}
