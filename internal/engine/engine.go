// Package engine is the deterministic rules core: validation, the reducer
// state machine, boss resolution, deck setup and the scripted opponent. It
// performs no I/O and never logs; callers own persistence and serialise
// access to a State.
package engine

import "github.com/ericogr/boss-cards/internal/cards"

const (
	DefaultRosterSize  = 3
	DefaultOpeningHand = 3
)

// Engine binds the rules to a card dataset and a dice source. It holds no
// per-game state and is safe for concurrent use across different games.
type Engine struct {
	cards       *cards.Dataset
	dice        Roller
	rosterSize  int
	openingHand int
}

// Option customises an Engine.
type Option func(*Engine)

// WithRoller replaces the default sha256-based dice.
func WithRoller(r Roller) Option {
	return func(e *Engine) {
		if r != nil {
			e.dice = r
		}
	}
}

// WithRosterSize sets how many catalog adventurers each side fields.
func WithRosterSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.rosterSize = n
		}
	}
}

// WithOpeningHand sets the number of cards dealt at game start.
func WithOpeningHand(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.openingHand = n
		}
	}
}

func New(ds *cards.Dataset, opts ...Option) *Engine {
	e := &Engine{
		cards:       ds,
		dice:        SeededRoller{},
		rosterSize:  DefaultRosterSize,
		openingHand: DefaultOpeningHand,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Cards returns the dataset the engine reads from.
func (e *Engine) Cards() *cards.Dataset { return e.cards }
