package problems

import (
	"fmt"
	"math/rand"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

var levelOneOperators = []string{
	constants.OperatorAdd,
	constants.OperatorSubtract,
	constants.OperatorMultiply,
	constants.OperatorDivide,
}

var constantSideOperators = []string{
	constants.OperatorAdd,
	constants.OperatorSubtract,
	constants.OperatorMultiply,
}

// Stats counts how the generator has worked so far.
type Stats struct {
	Generated int
	// DivisionRejections counts rejected level 1 division draws
	DivisionRejections int
	// DivisionFallbacks counts level 1 divisions built after MaxDivisionAttempts rejections
	DivisionFallbacks int
}

// Generator builds problems whose answers are exact by construction.
// A Generator is not safe for concurrent use.
type Generator struct {
	rand  *rand.Rand
	stats Stats
}

// NewGenerator creates a generator. The same seed yields the same problems.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Stats returns the generator's counters.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Generate returns a new problem for the level.
// It panics if the level is outside 1..MaxLevel.
func (g *Generator) Generate(level int) types.Problem {
	var p types.Problem
	switch level {
	case 1:
		p = g.basicOperation()
	case 2:
		p = g.bracketedExpression()
	case 3:
		p = g.linearEquation()
	case 4:
		p = g.twoSidedEquation()
	default:
		panic(fmt.Sprintf("problems: invalid level %d", level))
	}
	p.Level = level
	g.stats.Generated++
	return p
}

// between returns a uniform integer in [min, max].
func (g *Generator) between(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

func (g *Generator) basicOperation() types.Problem {
	var a, b, answer int
	operator := levelOneOperators[g.rand.Intn(len(levelOneOperators))]

	switch operator {
	case constants.OperatorAdd:
		a = g.between(1, 100)
		b = g.between(1, 100)
		answer = a + b
	case constants.OperatorSubtract:
		a = g.between(1, 100)
		b = g.between(1, 100)
		if a < b {
			a, b = b, a
		}
		answer = a - b
	case constants.OperatorMultiply:
		a = g.between(1, 12)
		b = g.between(1, 12)
		answer = a * b
	case constants.OperatorDivide:
		a, b = g.division()
		answer = a / b
	default:
		panic(fmt.Sprintf("problems: invalid operator %q", operator))
	}

	return types.Problem{
		Text:   fmt.Sprintf("%d %s %d", a, operator, b),
		Answer: answer,
		Kind:   types.ProblemKindArithmetic,
	}
}

// division draws a divisor and a multiplier until the dividend is at most
// 100 and differs from the divisor.
func (g *Generator) division() (dividend int, divisor int) {
	for attempt := 0; attempt < constants.MaxDivisionAttempts; attempt++ {
		divisor = g.between(2, 11)
		dividend = divisor * g.between(1, 10)
		if dividend <= 100 && dividend != divisor {
			return dividend, divisor
		}
		g.stats.DivisionRejections++
	}

	// every pair in [2,10]x[2,10] satisfies both constraints
	g.stats.DivisionFallbacks++
	divisor = g.between(2, 10)
	return divisor * g.between(2, 10), divisor
}

func (g *Generator) bracketedExpression() types.Problem {
	if g.rand.Intn(2) == 0 {
		// (a + b) ÷ c, built from the quotient
		c := g.between(2, 9)
		result := g.between(2, 11)
		sum := c * result
		a := g.between(1, sum-1)
		b := sum - a
		return types.Problem{
			Text:   fmt.Sprintf("(%d %s %d) %s %d", a, constants.OperatorAdd, b, constants.OperatorDivide, c),
			Answer: result,
			Kind:   types.ProblemKindArithmetic,
		}
	}

	// (a - b) × c with b < a
	c := g.between(2, 11)
	a := g.between(5, 14)
	b := g.between(1, a-2)
	return types.Problem{
		Text:   fmt.Sprintf("(%d %s %d) %s %d", a, constants.OperatorSubtract, b, constants.OperatorMultiply, c),
		Answer: (a - b) * c,
		Kind:   types.ProblemKindArithmetic,
	}
}

// root returns a nonzero integer in [-9, 9].
func (g *Generator) root() int {
	x := g.between(1, 9)
	if g.rand.Intn(2) == 0 {
		return -x
	}
	return x
}

func (g *Generator) linearEquation() types.Problem {
	x := g.root()
	a := g.between(2, 9)
	b := g.between(-15, 15)
	c := a*x + b

	return types.Problem{
		Text:   fmt.Sprintf("%s = %d", variableSide(a, b), c),
		Answer: x,
		Kind:   types.ProblemKindEquation,
	}
}

func (g *Generator) twoSidedEquation() types.Problem {
	operator := constantSideOperators[g.rand.Intn(len(constantSideOperators))]
	xOnLeft := g.rand.Intn(2) == 0
	x := g.root()
	a := g.between(2, 9)

	var c, d, value int
	switch operator {
	case constants.OperatorAdd:
		c = g.between(1, 50)
		d = g.between(1, 50)
		value = c + d
	case constants.OperatorSubtract:
		d = g.between(1, 49)
		c = g.between(d+1, d+50)
		value = c - d
	case constants.OperatorMultiply:
		c = g.between(2, 10)
		d = g.between(2, 10)
		value = c * d
	default:
		panic(fmt.Sprintf("problems: invalid operator %q", operator))
	}

	b := value - a*x
	xSide := variableSide(a, b)
	constantSide := fmt.Sprintf("%d %s %d", c, operator, d)

	text := fmt.Sprintf("%s = %s", constantSide, xSide)
	if xOnLeft {
		text = fmt.Sprintf("%s = %s", xSide, constantSide)
	}
	return types.Problem{
		Text:   text,
		Answer: x,
		Kind:   types.ProblemKindEquation,
	}
}

// variableSide renders ax + b, omitting the offset when it is zero.
func variableSide(a, b int) string {
	switch {
	case b > 0:
		return fmt.Sprintf("%dx %s %d", a, constants.OperatorAdd, b)
	case b < 0:
		return fmt.Sprintf("%dx %s %d", a, constants.OperatorSubtract, -b)
	default:
		return fmt.Sprintf("%dx", a)
	}
}
