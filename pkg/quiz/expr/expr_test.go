package expr

import (
	"testing"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr error
	}{
		{name: "addition", text: "45 + 17", want: 62},
		{name: "subtraction", text: "45 - 17", want: 28},
		{name: "multiplication", text: "7 × 12", want: 84},
		{name: "division", text: "84 ÷ 7", want: 12},
		{name: "ascii operators", text: "6 * 4 / 3", want: 8},
		{name: "precedence", text: "2 + 3 × 4", want: 14},
		{name: "parentheses", text: "(2 + 3) × 4", want: 20},
		{name: "bracketed division", text: "(13 + 5) ÷ 3", want: 6},
		{name: "bracketed product", text: "(14 - 9) × 11", want: 55},
		{name: "unary minus", text: "-3 + 10", want: 7},
		{name: "left associative", text: "20 - 5 - 3", want: 12},
		{name: "inexact division", text: "7 ÷ 2", wantErr: ErrInexact},
		{name: "division by zero", text: "7 ÷ (3 - 3)", wantErr: ErrDivisionByZero},
		{name: "variable", text: "3x + 1", wantErr: ErrNotExpression},
		{name: "equation", text: "1 + 1 = 2", wantErr: ErrNotExpression},
		{name: "unclosed paren", text: "(1 + 2", wantErr: ErrSyntax},
		{name: "dangling operator", text: "1 +", wantErr: ErrSyntax},
		{name: "unknown rune", text: "1 % 2", wantErr: ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr error
	}{
		{name: "offset added", text: "3x + 4 = 19", want: 5},
		{name: "offset subtracted", text: "4x - 3 = -15", want: -3},
		{name: "no offset", text: "9x = -81", want: -9},
		{name: "variable on the right", text: "12 + 30 = 5x + 2", want: 8},
		{name: "product constant side", text: "7x - 5 = 4 × 4", want: 3},
		{name: "difference constant side", text: "60 - 12 = 6x", want: 8},
		{name: "variable on both sides", text: "2x + 3 = x + 5", want: 2},
		{name: "not an equation", text: "3x + 4", wantErr: ErrNotEquation},
		{name: "no variable", text: "2 = 2", wantErr: ErrNoUniqueSolution},
		{name: "variable cancels", text: "x + 1 = x + 2", wantErr: ErrNoUniqueSolution},
		{name: "fractional root", text: "2x = 3", wantErr: ErrInexact},
		{name: "non linear", text: "x × x = 4", wantErr: ErrNonLinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(types.Problem{Text: "(8 - 3) × 4", Answer: 20, Kind: types.ProblemKindArithmetic}))
	assert.NoError(t, Check(types.Problem{Text: "5x - 2 = 23", Answer: 5, Kind: types.ProblemKindEquation}))

	err := Check(types.Problem{Text: "2 + 2", Answer: 5, Kind: types.ProblemKindArithmetic})
	var mismatch *MismatchError
	assert.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 4, mismatch.Got)

	err = Check(types.Problem{Text: "2x = 5", Answer: 2, Kind: types.ProblemKindEquation})
	assert.ErrorIs(t, err, ErrInexact)
}
