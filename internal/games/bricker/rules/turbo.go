package rules

// TurboController is the Off / On(armedAt) state machine layered on the ball.
type TurboController struct {
	factor    float64
	threshold int
	normal    Handle
	turbo     Handle

	active  bool
	armedAt int
}

// NewTurboController creates a controller in the Off state.
func NewTurboController(factor float64, threshold int, normal, turbo Handle) *TurboController {
	return &TurboController{factor: factor, threshold: threshold, normal: normal, turbo: turbo}
}

// Active reports whether turbo is on.
func (t *TurboController) Active() bool {
	return t.active
}

// ArmedAt returns the ball collision count recorded when turbo was armed.
func (t *TurboController) ArmedAt() int {
	return t.armedAt
}

// ExpiresAt returns the collision count at which turbo turns off.
func (t *TurboController) ExpiresAt() int {
	return t.armedAt + t.threshold
}

// Arm switches turbo on for ball. It is a no-op while already on.
func (t *TurboController) Arm(ball *Entity) bool {
	if t.active || ball == nil {
		return false
	}
	t.active = true
	t.armedAt = ball.Collisions
	ball.Velocity = ball.Velocity.Mult(t.factor)
	ball.Sprite = t.turbo
	return true
}

// Check turns turbo off once the ball has collided threshold times since
// arming. It reports whether turbo was switched off.
func (t *TurboController) Check(ball *Entity) bool {
	if !t.active || ball == nil || ball.Collisions < t.ExpiresAt() {
		return false
	}
	t.revert(ball)
	return true
}

// ForceOff turns turbo off regardless of the collision count.
// A nil ball only clears the state.
func (t *TurboController) ForceOff(ball *Entity) {
	if !t.active {
		return
	}
	if ball == nil {
		t.active = false
		t.armedAt = 0
		return
	}
	t.revert(ball)
}

func (t *TurboController) revert(ball *Entity) {
	t.active = false
	t.armedAt = 0
	ball.Velocity = ball.Velocity.Mult(1 / t.factor)
	ball.Sprite = t.normal
}
