package rules

import (
	"errors"
	"fmt"
	"math"
)

// Behavior is a brick collision category. The order matches the weight vector.
type Behavior int

const (
	Basic Behavior = iota
	SpawnPacks
	SpawnExtraPaddle
	EnableTurbo
	GrantLife
	Composite

	numBehaviors
)

var behaviorNames = [...]string{"basic", "spawn_packs", "extra_paddle", "turbo", "grant_life", "composite"}

// String returns the config key of the behavior.
func (b Behavior) String() string {
	if b < 0 || b >= numBehaviors {
		return fmt.Sprintf("behavior(%d)", int(b))
	}
	return behaviorNames[b]
}

// WeightTolerance is how far the weight vector may drift from 1.0.
const WeightTolerance = 1e-6

// Weight vector errors.
var (
	ErrWeightsLength  = errors.New("rules: strategy weights must have one entry per behavior")
	ErrNegativeWeight = errors.New("rules: strategy weight is negative")
	ErrWeightsSum     = errors.New("rules: strategy weights do not sum to 1")
)

// Catalog draws brick strategies from a fixed weight vector.
type Catalog struct {
	cumulative [numBehaviors]float64
	rng        Source
}

// NewCatalog validates weights and builds the cumulative distribution.
func NewCatalog(weights []float64, rng Source) (*Catalog, error) {
	if len(weights) != int(numBehaviors) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWeightsLength, len(weights), numBehaviors)
	}

	c := &Catalog{rng: rng}
	sum := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: %s = %g", ErrNegativeWeight, Behavior(i), w)
		}
		sum += w
		c.cumulative[i] = sum
	}
	if math.Abs(sum-1) > WeightTolerance {
		return nil, fmt.Errorf("%w: sum is %g", ErrWeightsSum, sum)
	}
	return c, nil
}

// Category maps a draw r in [0, 1) to the smallest behavior whose
// cumulative weight is >= r. Zero-weight behaviors are never chosen, and a
// draw above the rounded total lands on the last behavior with a non-zero
// weight.
func (c *Catalog) Category(r float64) Behavior {
	prev := 0.0
	for i, cum := range c.cumulative {
		if r <= cum && cum > prev {
			return Behavior(i)
		}
		prev = cum
	}
	last := numBehaviors - 1
	for last > 0 && c.cumulative[last] == c.cumulative[last-1] {
		last--
	}
	return last
}

// Select draws a category and builds its strategy.
func (c *Catalog) Select() Strategy {
	b := c.Category(c.rng.Float64())
	if b == Composite {
		return NewComposite(c.compositeBehaviors()...)
	}
	return Instantiate(b)
}

// compositeBehaviors picks two or three non-composite behaviors.
// If the first round draws Composite, a third behavior is added and the
// first slot keeps the non-composite draw. The third slot is only kept
// distinct from the second.
func (c *Catalog) compositeBehaviors() []Behavior {
	behave1 := c.drawFrom(SpawnPacks, Composite)
	behave2 := c.drawFrom(SpawnPacks, Composite)
	for behave2 == behave1 {
		behave2 = c.drawFrom(SpawnPacks, Composite)
	}

	three := false
	if behave1 == Composite || behave2 == Composite {
		three = true
		if behave1 == Composite {
			behave1 = behave2
		}
	}

	behave2 = c.drawFrom(SpawnPacks, GrantLife)
	behave3 := c.drawFrom(SpawnPacks, GrantLife)
	for behave3 == behave2 {
		behave3 = c.drawFrom(SpawnPacks, GrantLife)
	}

	if three {
		return []Behavior{behave1, behave2, behave3}
	}
	return []Behavior{behave1, behave2}
}

// drawFrom returns a uniform behavior in [lo, hi].
func (c *Catalog) drawFrom(lo, hi Behavior) Behavior {
	return lo + Behavior(c.rng.Intn(int(hi-lo)+1))
}

// Instantiate builds the concrete strategy for a non-composite behavior.
// Anything else is a programming error and panics.
func Instantiate(b Behavior) Strategy {
	switch b {
	case Basic, SpawnPacks, SpawnExtraPaddle, EnableTurbo, GrantLife:
		return Strategy{Behavior: b}
	default:
		panic(fmt.Sprintf("rules: cannot instantiate %s", b))
	}
}

// NewComposite wraps non-composite behaviors into a Composite strategy.
func NewComposite(children ...Behavior) Strategy {
	s := Strategy{Behavior: Composite, Children: make([]Strategy, 0, len(children))}
	for _, b := range children {
		s.Children = append(s.Children, Instantiate(b))
	}
	return s
}
