package bricker

import (
	"github.com/vovakirdan/bricker/internal/core"
	"github.com/vovakirdan/bricker/internal/games/bricker/rules"
)

// Contact is a detected overlap between a moving entity and another entity.
type Contact struct {
	Mover  *rules.Entity
	Other  *rules.Entity
	Normal core.Vec2 // Unit normal pushing Mover away from Other
	Depth  float64   // Penetration along Normal
}

// DetectContact reports whether a and b overlap and, if so, the axis of
// least penetration as a unit normal pointing from b toward a.
func DetectContact(a, b *rules.Entity) (Contact, bool) {
	dx, dy := a.Box().Overlap(b.Box())
	if dx <= 0 || dy <= 0 {
		return Contact{}, false
	}

	c := Contact{Mover: a, Other: b}
	if dx < dy {
		c.Depth = dx
		c.Normal = core.V(1, 0)
		if a.Center.X < b.Center.X {
			c.Normal = core.V(-1, 0)
		}
	} else {
		c.Depth = dy
		c.Normal = core.V(0, 1)
		if a.Center.Y < b.Center.Y {
			c.Normal = core.V(0, -1)
		}
	}
	return c, true
}

// resolveContacts finds every contact of the moving entities and reports
// both sides of each one to the engine. Balls and packs are pushed out of
// what they hit so a contact is reported once.
func resolveContacts(e *rules.Engine) {
	entities := e.Manager.Entities()

	for _, mover := range entities {
		switch mover.Kind {
		case rules.KindBall, rules.KindPack, rules.KindHeart:
		default:
			continue
		}

		for _, other := range entities {
			if mover.Removed() || !e.ShouldCollide(mover, other) {
				continue
			}

			c, ok := DetectContact(mover, other)
			if !ok {
				continue
			}
			if mover.Kind.IsMover() {
				mover.Center = mover.Center.Add(c.Normal.Mult(c.Depth))
			}
			e.OnCollision(mover, other, c.Normal)
			e.OnCollision(other, mover, c.Normal.Mult(-1))
		}
	}
}
