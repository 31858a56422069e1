package loop

import (
	"math/rand"

	"platforms/internal/world"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateDead                     // Health ran out, show restart prompt
)

// Game holds everything one player session needs: the simulation world plus
// presentation-side state that the simulation itself does not own.
type Game struct {
	World *world.World
	State GameState

	// HealthView trails the real health for the damage animation on the
	// health bar. Pure presentation; the world never reads it.
	HealthView float64

	rng *rand.Rand
}

// NewGame creates a game with a freshly generated level.
func NewGame(rng *rand.Rand) *Game {
	w := world.New(world.DefaultLevel(rng))
	return &Game{
		World:      w,
		State:      GameStateStart,
		HealthView: w.Player.MaxHealth,
		rng:        rng,
	}
}

// Restart throws the current world away and starts over on a new level.
// Used from the death screen; the in-game reset key instead restores the
// same level via world.Reset.
func (g *Game) Restart() {
	g.World = world.New(world.DefaultLevel(g.rng))
	g.HealthView = g.World.Player.MaxHealth
	g.State = GameStatePlaying
}
