// Package logic works with LSAT-style constraint programs: a declarations
// section introducing finite enum sorts and functions over them, a list of
// constraints paired with their natural-language reading, and multiple-choice
// options checked for validity.
package logic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

type EnumSort struct {
	Name   string
	Values []string
}

type Function struct {
	Name   string
	Domain []string // argument sort names
	Range  string   // result sort name
}

type Constraint struct {
	Expr string
	Text string // natural-language reading of the expression
}

type Option struct {
	Expr  string // inner expression of the is_valid(...) check
	Label string // answer label, e.g. "(A)"
}

type Program struct {
	Sorts       []EnumSort
	Functions   []Function
	Constraints []Constraint
	Question    string
	Options     []Option
}

const (
	declarationsHeader = "# Declarations"
	constraintsHeader  = "# Constraints"
	optionsHeader      = "# Options"

	separator = ":::"
)

var (
	enumSortPattern = regexp.MustCompile(`^(\w+)\s*=\s*EnumSort\(\[([^\]]*)\]\)$`)
	functionPattern = regexp.MustCompile(`^(\w+)\s*=\s*Function\(\[([^\]]*)\]\s*->\s*\[([^\]]*)\]\)$`)
	isValidPattern  = regexp.MustCompile(`^is_valid\((.*)\)$`)
)

func Parse(source string) (*Program, error) {
	program := &Program{}
	section := ""

	for _, rawLine := range strings.Split(source, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		switch line {
		case declarationsHeader, constraintsHeader, optionsHeader:
			section = line
			continue
		}

		switch section {
		case declarationsHeader:
			if err := program.parseDeclaration(line); err != nil {
				return nil, err
			}
		case constraintsHeader:
			if err := program.parseConstraint(line); err != nil {
				return nil, err
			}
		case optionsHeader:
			if err := program.parseOption(line); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("line %q appears before any section header", line)
		}
	}

	if len(program.Sorts) == 0 {
		return nil, fmt.Errorf("program declares no enum sorts")
	}
	return program, nil
}

func (program *Program) parseDeclaration(line string) error {
	if match := enumSortPattern.FindStringSubmatch(line); match != nil {
		program.Sorts = append(program.Sorts, EnumSort{
			Name:   match[1],
			Values: splitList(match[2]),
		})
		return nil
	}

	if match := functionPattern.FindStringSubmatch(line); match != nil {
		ranges := splitList(match[3])
		if len(ranges) != 1 {
			return fmt.Errorf("function %v must have exactly one range sort", match[1])
		}
		program.Functions = append(program.Functions, Function{
			Name:   match[1],
			Domain: splitList(match[2]),
			Range:  ranges[0],
		})
		return nil
	}

	return fmt.Errorf("invalid declaration: %q", line)
}

func (program *Program) parseConstraint(line string) error {
	expr, text, found := strings.Cut(line, separator)
	if !found || strings.TrimSpace(expr) == "" {
		return fmt.Errorf("invalid constraint line: %q", line)
	}

	program.Constraints = append(program.Constraints, Constraint{
		Expr: strings.TrimSpace(expr),
		Text: strings.TrimSpace(text),
	})
	return nil
}

func (program *Program) parseOption(line string) error {
	expr, text, found := strings.Cut(line, separator)
	if !found {
		return fmt.Errorf("invalid option line: %q", line)
	}
	expr = strings.TrimSpace(expr)
	text = strings.TrimSpace(text)

	if expr == "Question" {
		program.Question = text
		return nil
	}

	match := isValidPattern.FindStringSubmatch(expr)
	if match == nil {
		return fmt.Errorf("invalid option check: %q", expr)
	}

	program.Options = append(program.Options, Option{
		Expr:  strings.TrimSpace(match[1]),
		Label: text,
	})
	return nil
}

// String regenerates the program text, so a vivified program can be written
// back in the same format it was read from.
func (program *Program) String() string {
	var builder strings.Builder

	builder.WriteString(declarationsHeader + "\n")
	for _, sort := range program.Sorts {
		fmt.Fprintf(&builder, "%v = EnumSort([%v])\n", sort.Name, strings.Join(sort.Values, ", "))
	}
	for _, function := range program.Functions {
		fmt.Fprintf(&builder, "%v = Function([%v] -> [%v])\n", function.Name, strings.Join(function.Domain, ", "), function.Range)
	}

	builder.WriteString("\n" + constraintsHeader + "\n")
	for _, constraint := range program.Constraints {
		fmt.Fprintf(&builder, "%v %v %v\n", constraint.Expr, separator, constraint.Text)
	}

	builder.WriteString("\n" + optionsHeader + "\n")
	if program.Question != "" {
		fmt.Fprintf(&builder, "Question %v %v\n", separator, program.Question)
	}
	for _, option := range program.Options {
		fmt.Fprintf(&builder, "is_valid(%v) %v %v\n", option.Expr, separator, option.Label)
	}

	return builder.String()
}

func (program *Program) sortByName(name string) (EnumSort, bool) {
	return lo.Find(program.Sorts, func(sort EnumSort) bool { return sort.Name == name })
}

func (program *Program) functionByName(name string) (Function, bool) {
	return lo.Find(program.Functions, func(function Function) bool { return function.Name == name })
}

func splitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	return lo.Map(strings.Split(list, ","), func(item string, _ int) string { return strings.TrimSpace(item) })
}
