package rules

// EntityManager owns every entity collection and the brick and life counters.
// Removal only marks an entity; collections are compacted by Sweep, so
// callers may remove entities while iterating a snapshot from Entities.
type EntityManager struct {
	Ball   *Entity
	Paddle *Entity
	Walls  []*Entity
	Bricks []*Entity
	Packs  []*Entity
	Hearts []*Entity

	extra           *Entity
	nextID          int
	totalBricks     int
	bricksDestroyed int
	lives           LifeCounter
}

// NewEntityManager creates an empty manager.
func NewEntityManager(startLives, maxLives int) *EntityManager {
	return &EntityManager{lives: NewLifeCounter(startLives, maxLives)}
}

func (m *EntityManager) track(e *Entity) bool {
	if e == nil || e.ID != 0 {
		return false
	}
	m.nextID++
	e.ID = m.nextID
	e.removed = false
	return true
}

// SetBall registers the ball.
func (m *EntityManager) SetBall(e *Entity) {
	if m.track(e) {
		m.Ball = e
	}
}

// SetPaddle registers the primary paddle.
func (m *EntityManager) SetPaddle(e *Entity) {
	if m.track(e) {
		m.Paddle = e
	}
}

// AddWall registers a wall.
func (m *EntityManager) AddWall(e *Entity) {
	if m.track(e) {
		m.Walls = append(m.Walls, e)
	}
}

// AddBrick registers a brick and counts it toward the win total.
func (m *EntityManager) AddBrick(e *Entity) {
	if e == nil || e.Kind != KindBrick || !m.track(e) {
		return
	}
	m.Bricks = append(m.Bricks, e)
	m.totalBricks++
}

// AddPack registers a pack.
func (m *EntityManager) AddPack(e *Entity) {
	if e == nil || e.Kind != KindPack || !m.track(e) {
		return
	}
	m.Packs = append(m.Packs, e)
}

// AddHeart registers a falling heart.
func (m *EntityManager) AddHeart(e *Entity) {
	if e == nil || e.Kind != KindHeart || !m.track(e) {
		return
	}
	m.Hearts = append(m.Hearts, e)
}

// AddPaddle registers an extra paddle. The request is dropped while another
// extra paddle is active; the return value reports whether it was added.
func (m *EntityManager) AddPaddle(e *Entity) bool {
	if e == nil || e.Kind != KindExtraPaddle || m.extra != nil {
		return false
	}
	if !m.track(e) {
		return false
	}
	m.extra = e
	return true
}

// ExtraPaddle returns the active extra paddle, or nil.
func (m *EntityManager) ExtraPaddle() *Entity {
	return m.extra
}

// RemoveBrick removes a brick. Only the first removal counts as destroyed.
func (m *EntityManager) RemoveBrick(e *Entity) bool {
	if e == nil || e.Kind != KindBrick || e.ID == 0 || e.removed {
		return false
	}
	e.removed = true
	m.bricksDestroyed++
	return true
}

// RemovePack removes a pack; repeated calls are no-ops.
func (m *EntityManager) RemovePack(e *Entity) bool {
	return m.remove(e, KindPack)
}

// RemoveHeart removes a heart; repeated calls are no-ops.
func (m *EntityManager) RemoveHeart(e *Entity) bool {
	return m.remove(e, KindHeart)
}

// RemovePaddle removes the extra paddle and frees its slot.
// The primary paddle is never removed.
func (m *EntityManager) RemovePaddle(e *Entity) bool {
	if e == nil || e != m.extra {
		return false
	}
	e.removed = true
	m.extra = nil
	return true
}

func (m *EntityManager) remove(e *Entity, kind Kind) bool {
	if e == nil || e.Kind != kind || e.ID == 0 || e.removed {
		return false
	}
	e.removed = true
	return true
}

// Sweep drops packs and hearts whose center is below lowerBound, removes
// the extra paddle once it has taken hitCap hits and compacts every
// collection. It returns the number of entities dropped by this call.
func (m *EntityManager) Sweep(lowerBound float64, hitCap int) int {
	dropped := 0
	below := func(e *Entity) {
		if !e.removed && e.Center.Y > lowerBound {
			e.removed = true
			dropped++
		}
	}
	for _, p := range m.Packs {
		below(p)
	}
	for _, h := range m.Hearts {
		below(h)
	}
	if m.extra != nil && m.extra.Collisions >= hitCap {
		m.RemovePaddle(m.extra)
		dropped++
	}

	m.Packs = survivors(m.Packs)
	m.Hearts = survivors(m.Hearts)
	m.Bricks = survivors(m.Bricks)
	return dropped
}

// survivors copies the live entities into a new slice.
func survivors(list []*Entity) []*Entity {
	out := make([]*Entity, 0, len(list))
	for _, e := range list {
		if !e.removed {
			out = append(out, e)
		}
	}
	return out
}

// Entities returns a snapshot of all live entities in a stable order:
// walls, paddles, bricks, hearts, packs, ball.
func (m *EntityManager) Entities() []*Entity {
	out := make([]*Entity, 0, len(m.Walls)+len(m.Bricks)+len(m.Packs)+len(m.Hearts)+3)
	out = append(out, m.Walls...)
	if m.Paddle != nil {
		out = append(out, m.Paddle)
	}
	if m.extra != nil {
		out = append(out, m.extra)
	}
	for _, group := range [][]*Entity{m.Bricks, m.Hearts, m.Packs} {
		for _, e := range group {
			if !e.removed {
				out = append(out, e)
			}
		}
	}
	if m.Ball != nil {
		out = append(out, m.Ball)
	}
	return out
}

// BricksDestroyed returns how many bricks were removed this game.
func (m *EntityManager) BricksDestroyed() int {
	return m.bricksDestroyed
}

// TotalBricks returns how many bricks the scene started with.
func (m *EntityManager) TotalBricks() int {
	return m.totalBricks
}

// BricksLeft returns the number of live bricks.
func (m *EntityManager) BricksLeft() int {
	return m.totalBricks - m.bricksDestroyed
}

// Lives returns the current number of lives.
func (m *EntityManager) Lives() int {
	return m.lives.Value()
}

// MaxLives returns the life cap.
func (m *EntityManager) MaxLives() int {
	return m.lives.Max()
}

// UpdateLives adds or removes one life within [0, MaxLives].
func (m *EntityManager) UpdateLives(add bool) bool {
	return m.lives.Update(add)
}

// ResetCounters zeroes the destroyed-brick count and restores the lives.
func (m *EntityManager) ResetCounters(startLives int) {
	m.bricksDestroyed = 0
	m.lives.Reset(startLives)
}

// Clear drops every entity and the brick total. The destroyed count and
// lives are left untouched.
func (m *EntityManager) Clear() {
	m.Ball = nil
	m.Paddle = nil
	m.Walls = nil
	m.Bricks = nil
	m.Packs = nil
	m.Hearts = nil
	m.extra = nil
	m.totalBricks = 0
}
