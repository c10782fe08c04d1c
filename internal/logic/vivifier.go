package logic

import (
	"strings"
	"time"
)

type Stats struct {
	Original int
	Final    int
	Removed  int
	Duration time.Duration
}

// Vivifier removes obviously redundant constraints from a program. The checks
// are purely textual over the constraint expressions: no solver is involved.
type Vivifier interface {
	Vivify(program *Program) (*Program, Stats)
}

func NewVivifier() Vivifier {
	return &conservativeVivifier{}
}

type conservativeVivifier struct{}

func (vivifier *conservativeVivifier) Vivify(program *Program) (*Program, Stats) {
	start := time.Now()

	kept := []Constraint{}
	for index, constraint := range program.Constraints {
		if !vivifier.isObviouslyRedundant(constraint, program.Constraints, index) {
			kept = append(kept, constraint)
		}
	}

	vivified := *program
	vivified.Constraints = kept

	return &vivified, Stats{
		Original: len(program.Constraints),
		Final:    len(kept),
		Removed:  len(program.Constraints) - len(kept),
		Duration: time.Since(start),
	}
}

func (vivifier *conservativeVivifier) isObviouslyRedundant(target Constraint, constraints []Constraint, targetIndex int) bool {
	// An exact duplicate of an earlier constraint is dropped, the first
	// occurrence stays
	for _, earlier := range constraints[:targetIndex] {
		if earlier.Expr == target.Expr {
			return true
		}
	}

	// "x != b" is implied by any other "x == a" with a different value on the
	// same left-hand side
	if lhs, negated, found := strings.Cut(target.Expr, " != "); found {
		lhs = strings.TrimSpace(lhs)
		negated = strings.TrimSpace(negated)

		for index, other := range constraints {
			if index == targetIndex {
				continue
			}

			otherLhs, asserted, isEquality := strings.Cut(other.Expr, " == ")
			if !isEquality {
				continue
			}

			if strings.TrimSpace(otherLhs) == lhs && strings.TrimSpace(asserted) != negated {
				return true
			}
		}
	}

	return false
}
