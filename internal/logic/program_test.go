package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const aliceProgram = `# Declarations
person = EnumSort([Alice])
color = EnumSort([red, blue, green])
likes = Function([person] -> [color])

# Constraints
likes(Alice) == red ::: Alice likes red
likes(Alice) != blue ::: Alice doesn't like blue
likes(Alice) != green ::: Alice doesn't like green

# Options
Question ::: What does Alice like?
is_valid(likes(Alice) == red) ::: (A)
is_valid(likes(Alice) == blue) ::: (B)
is_valid(likes(Alice) == green) ::: (C)`

func TestParse(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		//** Act
		program, err := Parse(aliceProgram)

		//** Assert
		assert.NoError(t, err)
		assert.Equal(t, []EnumSort{
			{Name: "person", Values: []string{"Alice"}},
			{Name: "color", Values: []string{"red", "blue", "green"}},
		}, program.Sorts)
		assert.Equal(t, []Function{
			{Name: "likes", Domain: []string{"person"}, Range: "color"},
		}, program.Functions)
		assert.Len(t, program.Constraints, 3)
		assert.Equal(t, "likes(Alice) == red", program.Constraints[0].Expr)
		assert.Equal(t, "Alice likes red", program.Constraints[0].Text)
		assert.Equal(t, "What does Alice like?", program.Question)
		assert.Equal(t, []Option{
			{Expr: "likes(Alice) == red", Label: "(A)"},
			{Expr: "likes(Alice) == blue", Label: "(B)"},
			{Expr: "likes(Alice) == green", Label: "(C)"},
		}, program.Options)
	})

	t.Run("Serialization round trip", func(t *testing.T) {
		program, err := Parse(aliceProgram)
		assert.NoError(t, err)

		reparsed, err := Parse(program.String())
		assert.NoError(t, err)
		assert.Equal(t, program, reparsed)
	})

	t.Run("Malformed programs", func(t *testing.T) {
		sources := []string{
			"",                                      // no sections at all
			"likes(Alice) == red ::: text",          // content before any header
			"# Declarations\nperson = Enum([A])",    // unknown declaration form
			"# Declarations\nperson = EnumSort([A])\n# Constraints\n ::: only text", // empty constraint expression
			"# Declarations\nperson = EnumSort([A])\n# Options\nlikes(A) == red ::: (A)", // option without is_valid
			"# Declarations\nf = Function([a] -> [b, c])",                                // multi-sort range
		}

		for _, source := range sources {
			_, err := Parse(source)
			assert.Error(t, err, "program %q should be rejected", source)
		}
	})
}
