package problems

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/expr"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problemsPerLevel = 10000

func TestGenerator_answersMatchText(t *testing.T) {
	tests := []struct {
		name  string
		level int
		kind  types.ProblemKind
	}{
		{name: "level 1 basic operations", level: 1, kind: types.ProblemKindArithmetic},
		{name: "level 2 bracketed expressions", level: 2, kind: types.ProblemKindArithmetic},
		{name: "level 3 linear equations", level: 3, kind: types.ProblemKindEquation},
		{name: "level 4 two-sided equations", level: 4, kind: types.ProblemKindEquation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(int64(tt.level))
			for i := 0; i < problemsPerLevel; i++ {
				p := g.Generate(tt.level)
				require.Equal(t, tt.level, p.Level)
				require.Equal(t, tt.kind, p.Kind)
				require.NoError(t, expr.Check(p), "problem %d", i)
			}
			assert.Equal(t, problemsPerLevel, g.Stats().Generated)
		})
	}
}

var divisionPattern = regexp.MustCompile(`^(\d+) ÷ (\d+)$`)

func TestGenerator_levelOneDivision(t *testing.T) {
	g := NewGenerator(42)
	divisions := 0
	for i := 0; i < problemsPerLevel; i++ {
		p := g.Generate(1)
		m := divisionPattern.FindStringSubmatch(p.Text)
		if m == nil {
			continue
		}
		divisions++
		dividend, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		divisor, err := strconv.Atoi(m[2])
		require.NoError(t, err)

		assert.Zero(t, dividend%divisor, p.Text)
		assert.NotEqual(t, divisor, dividend, p.Text)
		assert.LessOrEqual(t, dividend, 100, p.Text)
		assert.Equal(t, dividend/divisor, p.Answer, p.Text)
	}
	assert.Greater(t, divisions, 0)
	assert.Zero(t, g.Stats().DivisionFallbacks, "rejection sampling exhausted %d attempts", constants.MaxDivisionAttempts)
}

func TestGenerator_levelOneResultsNonNegative(t *testing.T) {
	g := NewGenerator(7)
	for i := 0; i < problemsPerLevel; i++ {
		p := g.Generate(1)
		assert.GreaterOrEqual(t, p.Answer, 0, p.Text)
	}
}

func TestGenerator_levelTwoShapes(t *testing.T) {
	sumPattern := regexp.MustCompile(`^\((\d+) \+ (\d+)\) ÷ (\d+)$`)
	differencePattern := regexp.MustCompile(`^\((\d+) - (\d+)\) × (\d+)$`)

	g := NewGenerator(3)
	var sums, differences int
	for i := 0; i < problemsPerLevel; i++ {
		p := g.Generate(2)
		switch {
		case sumPattern.MatchString(p.Text):
			sums++
		case differencePattern.MatchString(p.Text):
			m := differencePattern.FindStringSubmatch(p.Text)
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			assert.Less(t, b, a, p.Text)
			differences++
		default:
			t.Fatalf("unexpected level 2 problem %q", p.Text)
		}
	}
	assert.Greater(t, sums, 0)
	assert.Greater(t, differences, 0)
}

func TestGenerator_equationsHaveUniqueNonZeroRoot(t *testing.T) {
	for _, level := range []int{3, 4} {
		t.Run(fmt.Sprintf("level %d", level), func(t *testing.T) {
			g := NewGenerator(int64(100 + level))
			for i := 0; i < problemsPerLevel; i++ {
				p := g.Generate(level)
				root, err := expr.Solve(p.Text)
				require.NoError(t, err, p.Text)
				assert.Equal(t, p.Answer, root, p.Text)
				assert.NotZero(t, p.Answer, p.Text)
				assert.GreaterOrEqual(t, p.Answer, -9, p.Text)
				assert.LessOrEqual(t, p.Answer, 9, p.Text)
			}
		})
	}
}

func TestVariableSide(t *testing.T) {
	assert.Equal(t, "3x + 4", variableSide(3, 4))
	assert.Equal(t, "3x - 4", variableSide(3, -4))
	assert.Equal(t, "3x", variableSide(3, 0))
}

func TestGenerator_deterministic(t *testing.T) {
	a := NewGenerator(99)
	b := NewGenerator(99)
	for level := 1; level <= constants.MaxLevel; level++ {
		for i := 0; i < 50; i++ {
			assert.Equal(t, a.Generate(level), b.Generate(level))
		}
	}
}

func TestGenerator_invalidLevelPanics(t *testing.T) {
	g := NewGenerator(1)
	assert.Panics(t, func() { g.Generate(0) })
	assert.Panics(t, func() { g.Generate(constants.MaxLevel + 1) })
}
