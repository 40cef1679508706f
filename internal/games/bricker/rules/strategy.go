package rules

// Strategy is the behavior a brick runs when struck. Children is set only
// for Composite and never contains another Composite.
type Strategy struct {
	Behavior Behavior
	Children []Strategy
}

// Execute removes the struck brick once and applies the behavior's effects.
func (s Strategy) Execute(e *Engine, struck, other *Entity) {
	e.Manager.RemoveBrick(struck)
	s.apply(e, struck, other)
}

func (s Strategy) apply(e *Engine, struck, other *Entity) {
	switch s.Behavior {
	case Basic:
	case SpawnPacks:
		e.spawnPacks(struck.Center)
	case SpawnExtraPaddle:
		e.spawnExtraPaddle()
	case EnableTurbo:
		if other.Kind != KindPack && !e.Turbo.Active() {
			e.Turbo.Arm(e.Manager.Ball)
			e.log.Info("turbo on", "armed_at", e.Turbo.ArmedAt())
		}
	case GrantLife:
		e.spawnHeart(struck.Center)
	case Composite:
		for _, child := range s.Children {
			child.apply(e, struck, other)
		}
	default:
		panic("rules: unknown behavior " + s.Behavior.String())
	}
}

// Behaviors flattens the strategy into its effective behaviors.
func (s Strategy) Behaviors() []Behavior {
	if s.Behavior != Composite {
		return []Behavior{s.Behavior}
	}
	out := make([]Behavior, 0, len(s.Children))
	for _, c := range s.Children {
		out = append(out, c.Behavior)
	}
	return out
}
