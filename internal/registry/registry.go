// Package registry maps game IDs to factories. Game packages register
// their variants from init(), so the platform and the CLI can list and
// start them by name without importing each variant directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/bricker/internal/core"
)

// Game is what the platform drives. Implementations hold pure rules and
// never touch the terminal: the platform maps keys to actions, runs the
// fixed-rate clock and paints the screen buffer.
type Game interface {
	// ID is the stable identifier used on the command line and in stored runs.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh scene for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held during it.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current frame into dst.
	Render(dst *core.Screen)

	// State reports counters and flags without advancing the game.
	State() core.GameState
}

// GameInfo describes a registered game variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on an empty or duplicate id,
// both of which are programming errors in a game package.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create returns a new instance of the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// IDs returns the registered IDs in sorted order.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}
