package types

// ProblemKind tells the presentation layer how to prompt for a problem.
type ProblemKind string

const (
	// ProblemKindArithmetic is an expression whose value is the answer
	ProblemKindArithmetic ProblemKind = "arithmetic"
	// ProblemKindEquation is a linear equation in x whose root is the answer
	ProblemKindEquation ProblemKind = "equation"
)

// Problem is one generated exercise. It is immutable once created.
type Problem struct {
	// Text is the expression or equation as displayed, e.g. "(12 + 6) ÷ 3" or "4x - 3 = 9"
	Text string `json:"text"`
	// Answer is the value of the expression or the root of the equation
	Answer int `json:"answer"`
	// Level is the level the problem was generated for
	Level int `json:"level"`
	// Kind is arithmetic for levels 1 and 2 and equation for levels 3 and 4
	Kind ProblemKind `json:"kind"`
}

// Prompt returns the text shown to the player.
func (p Problem) Prompt() string {
	if p.Kind == ProblemKindEquation {
		return p.Text
	}
	return p.Text + " = ?"
}
