package logic

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestVivifyRemovesImpliedInequalities(t *testing.T) {
	g := NewGomegaWithT(t)

	program, err := Parse(aliceProgram)
	g.Expect(err).ToNot(HaveOccurred())

	vivified, stats := NewVivifier().Vivify(program)

	// likes(Alice) == red makes both != constraints redundant
	g.Expect(vivified.Constraints).To(HaveLen(1))
	g.Expect(vivified.Constraints[0].Expr).To(Equal("likes(Alice) == red"))

	g.Expect(stats.Original).To(Equal(3))
	g.Expect(stats.Final).To(Equal(1))
	g.Expect(stats.Removed).To(Equal(2))
}

func TestVivifyRemovesExactDuplicates(t *testing.T) {
	g := NewGomegaWithT(t)

	program := &Program{
		Constraints: []Constraint{
			{Expr: "likes(Alice) == red", Text: "first"},
			{Expr: "likes(Alice) == red", Text: "again"},
			{Expr: "likes(Bob) == blue", Text: "unrelated"},
		},
	}

	vivified, stats := NewVivifier().Vivify(program)

	// The first occurrence stays, the copy goes
	g.Expect(vivified.Constraints).To(Equal([]Constraint{
		{Expr: "likes(Alice) == red", Text: "first"},
		{Expr: "likes(Bob) == blue", Text: "unrelated"},
	}))
	g.Expect(stats.Removed).To(Equal(1))
}

func TestVivifyKeepsIndependentConstraints(t *testing.T) {
	g := NewGomegaWithT(t)

	program := &Program{
		Constraints: []Constraint{
			{Expr: "likes(Alice) == red"},
			{Expr: "likes(Bob) != red"},     // different left-hand side
			{Expr: "likes(Carol) != green"}, // no equality anywhere near it
		},
	}

	vivified, stats := NewVivifier().Vivify(program)

	g.Expect(vivified.Constraints).To(Equal(program.Constraints))
	g.Expect(stats.Removed).To(BeZero())
}

func TestVivifyKeepsInequalityMatchingTheAssertedValue(t *testing.T) {
	g := NewGomegaWithT(t)

	// likes(Alice) == red does not make likes(Alice) != red redundant: the
	// pair is contradictory, not redundant, and stays for the solver to judge
	program := &Program{
		Constraints: []Constraint{
			{Expr: "likes(Alice) == red"},
			{Expr: "likes(Alice) != red"},
		},
	}

	vivified, _ := NewVivifier().Vivify(program)

	g.Expect(vivified.Constraints).To(Equal(program.Constraints))
}

func TestVivifyLeavesTheInputProgramUntouched(t *testing.T) {
	g := NewGomegaWithT(t)

	program, err := Parse(aliceProgram)
	g.Expect(err).ToNot(HaveOccurred())

	NewVivifier().Vivify(program)

	g.Expect(program.Constraints).To(HaveLen(3))
}
