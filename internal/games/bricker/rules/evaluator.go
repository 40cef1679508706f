package rules

// Outcome is the result of one end-of-tick evaluation.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Lose
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "continue"
	}
}

// Verdict is what GameEndEvaluator decided for a tick.
type Verdict struct {
	Outcome  Outcome
	LifeLost bool // The ball left the bottom this tick
}

// Terminal reports whether the game is over.
func (v Verdict) Terminal() bool {
	return v.Outcome != Continue
}

// Prompt returns the restart question shown for a terminal verdict.
func (v Verdict) Prompt() string {
	switch v.Outcome {
	case Win:
		return "You Win! Play again?"
	case Lose:
		return "You Lose! Play again?"
	default:
		return ""
	}
}

// GameEndEvaluator checks win, life loss and lose conditions.
type GameEndEvaluator struct {
	Bottom float64 // Ball centers below this line are lost
}

// Evaluate runs once per tick after all entity mutations. loseLife is called
// every tick the ball is below the bottom, before the life count is checked.
// A lose overrides a win in the same tick.
func (g GameEndEvaluator) Evaluate(m *EntityManager, forceWin bool, loseLife func()) Verdict {
	var v Verdict

	if forceWin || (m.TotalBricks() > 0 && m.BricksDestroyed() == m.TotalBricks()) {
		v.Outcome = Win
	}

	if m.Ball != nil && m.Ball.Center.Y > g.Bottom {
		loseLife()
		v.LifeLost = true
	}

	if m.Lives() <= 0 {
		v.Outcome = Lose
	}
	return v
}
