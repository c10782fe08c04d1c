package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"satlab/internal/sat"
)

func TestEvaluate(t *testing.T) {
	evaluator := NewEvaluator(sat.NewGophersatSolver())

	t.Run("Only the entailed option is valid", func(t *testing.T) {
		//** Arrange
		program, err := Parse(aliceProgram)
		assert.NoError(t, err)

		//** Act
		valid, err := evaluator.Evaluate(program)

		//** Assert
		assert.NoError(t, err)
		assert.Equal(t, []string{"(A)"}, valid)
	})

	t.Run("Vivification preserves the answers", func(t *testing.T) {
		program, err := Parse(aliceProgram)
		assert.NoError(t, err)

		original, err := evaluator.Evaluate(program)
		assert.NoError(t, err)

		vivified, stats := NewVivifier().Vivify(program)
		assert.Positive(t, stats.Removed)

		answers, err := evaluator.Evaluate(vivified)
		assert.NoError(t, err)
		assert.Equal(t, original, answers)
	})

	t.Run("Inequalities entail over two-value domains", func(t *testing.T) {
		source := `# Declarations
person = EnumSort([Alice])
color = EnumSort([red, blue])
likes = Function([person] -> [color])

# Constraints
likes(Alice) != blue ::: Alice doesn't like blue

# Options
is_valid(likes(Alice) == red) ::: (A)
is_valid(likes(Alice) == blue) ::: (B)`

		program, err := Parse(source)
		assert.NoError(t, err)

		valid, err := evaluator.Evaluate(program)
		assert.NoError(t, err)

		// With only two colors, != blue does entail == red
		assert.Equal(t, []string{"(A)"}, valid)
	})

	t.Run("Binary functions", func(t *testing.T) {
		source := `# Declarations
person = EnumSort([Alice, Bob])
day = EnumSort([monday, tuesday])
slot = EnumSort([first, second])
meets = Function([person, day] -> [slot])

# Constraints
meets(Alice, monday) == first ::: Alice meets first on Monday
meets(Bob, monday) != first ::: Bob does not meet first on Monday

# Options
is_valid(meets(Bob, monday) == second) ::: (A)
is_valid(meets(Alice, tuesday) == first) ::: (B)`

		program, err := Parse(source)
		assert.NoError(t, err)

		valid, err := evaluator.Evaluate(program)
		assert.NoError(t, err)
		assert.Equal(t, []string{"(A)"}, valid)
	})

	t.Run("Invalid expressions are rejected", func(t *testing.T) {
		exprs := []string{
			"hates(Alice) == red",          // undeclared function
			"likes(Alice, Bob) == red",     // wrong arity
			"likes(red) == red",            // argument of the wrong sort
			"likes(Alice) == Alice",        // value outside the range sort
			"likes(Alice) == red or likes(Alice) == blue", // unsupported connective
		}

		for _, expr := range exprs {
			program, err := Parse(aliceProgram)
			assert.NoError(t, err)
			program.Constraints = append(program.Constraints, Constraint{Expr: expr})

			_, err = evaluator.Evaluate(program)
			assert.Error(t, err, "expression %q should be rejected", expr)
		}
	})
}
