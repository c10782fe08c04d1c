package logic

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"satlab/internal/sat"
)

// Evaluator grounds a program over its finite enum domains into SAT and
// checks each option by refutation: an expression is valid exactly when the
// constraints together with its negation are unsatisfiable.
type Evaluator interface {
	// Evaluate returns the labels of the valid options, in program order
	Evaluate(program *Program) ([]string, error)
}

func NewEvaluator(solver sat.SATSolver) Evaluator {
	return &satEvaluator{solver: solver}
}

type satEvaluator struct {
	//** Dependencies
	solver sat.SATSolver
}

var atomPattern = regexp.MustCompile(`^(\w+)\(([^)]*)\)\s*(==|!=)\s*(\w+)$`)

func (evaluator *satEvaluator) Evaluate(program *Program) ([]string, error) {
	grounding, err := newGrounding(program)
	if err != nil {
		return nil, err
	}

	preconditions := grounding.baseClauses()
	for _, constraint := range program.Constraints {
		literal, err := grounding.literal(constraint.Expr)
		if err != nil {
			return nil, err
		}
		preconditions = append(preconditions, []int64{literal})
	}

	valid := []string{}
	for _, option := range program.Options {
		literal, err := grounding.literal(option.Expr)
		if err != nil {
			return nil, err
		}

		// is_valid(expr) holds when preconditions plus the negation of expr
		// admit no model
		instance := sat.SAT{
			Variables: grounding.variables,
			Clauses:   append(slices.Clone(preconditions), []int64{-literal}),
		}

		solution, err := evaluator.solver.Solve(instance)
		if err != nil {
			return nil, err
		} else if solution == nil {
			valid = append(valid, option.Label)
		}
	}

	return valid, nil
}

// grounding assigns one SAT variable to every (function, arguments, value)
// triple and keeps the clauses forcing each application to take exactly one
// value of its range sort.
type grounding struct {
	program   *Program
	variables uint64
	atoms     map[string]uint64
	clauses   [][]int64
}

func newGrounding(program *Program) (*grounding, error) {
	g := &grounding{
		program: program,
		atoms:   map[string]uint64{},
		clauses: [][]int64{},
	}

	for _, function := range program.Functions {
		rangeSort, ok := program.sortByName(function.Range)
		if !ok {
			return nil, fmt.Errorf("function %v has undeclared range sort %v", function.Name, function.Range)
		}

		domains := make([][]string, len(function.Domain))
		for i, sortName := range function.Domain {
			sort, ok := program.sortByName(sortName)
			if !ok {
				return nil, fmt.Errorf("function %v has undeclared domain sort %v", function.Name, sortName)
			}
			domains[i] = sort.Values
		}

		for _, arguments := range cartesian(domains) {
			// Each application takes at least one and at most one range value
			atLeastOne := make([]int64, 0, len(rangeSort.Values))
			for _, value := range rangeSort.Values {
				g.variables++
				g.atoms[atomKey(function.Name, arguments, value)] = g.variables
				atLeastOne = append(atLeastOne, int64(g.variables))
			}

			g.clauses = append(g.clauses, atLeastOne)
			for i := range atLeastOne {
				for j := i + 1; j < len(atLeastOne); j++ {
					g.clauses = append(g.clauses, []int64{-atLeastOne[i], -atLeastOne[j]})
				}
			}
		}
	}

	return g, nil
}

func (g *grounding) baseClauses() [][]int64 {
	return slices.Clone(g.clauses)
}

// literal translates an atomic expression of the form f(a, b) == v (or !=)
// into a signed reference to its grounded variable.
func (g *grounding) literal(expr string) (int64, error) {
	match := atomPattern.FindStringSubmatch(strings.TrimSpace(expr))
	if match == nil {
		return 0, fmt.Errorf("unsupported expression: %q", expr)
	}

	name, operator, value := match[1], match[3], match[4]
	arguments := splitList(match[2])

	function, ok := g.program.functionByName(name)
	if !ok {
		return 0, fmt.Errorf("expression %q references undeclared function %v", expr, name)
	} else if len(arguments) != len(function.Domain) {
		return 0, fmt.Errorf("expression %q passes %d arguments to %v, which takes %d", expr, len(arguments), name, len(function.Domain))
	}

	for i, argument := range arguments {
		sort, _ := g.program.sortByName(function.Domain[i])
		if !slices.Contains(sort.Values, argument) {
			return 0, fmt.Errorf("expression %q: %v is not a value of sort %v", expr, argument, sort.Name)
		}
	}

	rangeSort, _ := g.program.sortByName(function.Range)
	if !slices.Contains(rangeSort.Values, value) {
		return 0, fmt.Errorf("expression %q: %v is not a value of sort %v", expr, value, rangeSort.Name)
	}

	literal := int64(g.atoms[atomKey(name, arguments, value)])
	if operator == "!=" {
		literal = -literal
	}
	return literal, nil
}

func atomKey(function string, arguments []string, value string) string {
	return fmt.Sprintf("%v(%v)=%v", function, strings.Join(arguments, ","), value)
}

func cartesian(domains [][]string) [][]string {
	tuples := [][]string{{}}
	for _, domain := range domains {
		next := make([][]string, 0, len(tuples)*len(domain))
		for _, tuple := range tuples {
			for _, value := range domain {
				extended := make([]string, len(tuple), len(tuple)+1)
				copy(extended, tuple)
				next = append(next, append(extended, value))
			}
		}
		tuples = next
	}
	return tuples
}
