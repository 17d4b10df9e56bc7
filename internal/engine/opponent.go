package engine

import (
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/keys"
)

// DefaultPriority is the support preference of the scripted opponent.
var DefaultPriority = []string{"Potion", "War Cry", "Second Wind", "Blessing", "Sabotage"}

// Opponent is a scripted player: one support card, one basic attack with
// the strongest unit, then end the turn.
type Opponent struct {
	engine   *Engine
	priority []string
}

func NewOpponent(e *Engine, priority []string) *Opponent {
	if len(priority) == 0 {
		priority = DefaultPriority
	}
	return &Opponent{engine: e, priority: append([]string(nil), priority...)}
}

// TakeTurn plays side's turn. Failed support or attack attempts are
// skipped; the closing end_turn is always issued and its error returned.
func (o *Opponent) TakeTurn(st *game.State, side game.Side) error {
	p := st.Player(side)

	if !p.Flags.SupportUsedThisTurn {
		if card := o.pickSupport(p); card != "" {
			_ = o.engine.ApplyAction(st, side, o.supportAction(p, card))
		}
	}

	if u := strongest(p); u != nil {
		if def, ok := o.engine.cards.Adventurer(u.Name); ok {
			if act := basicAttack(def); act != "" {
				_ = o.engine.ApplyAction(st, side, game.UseAction{Unit: u.ID, Action: act})
			}
		}
	}

	return o.engine.EndTurn(st, side)
}

// pickSupport returns the first priority card held in hand.
func (o *Opponent) pickSupport(p *game.PlayerSide) string {
	for _, want := range o.priority {
		for _, c := range p.Hand {
			if keys.SameCard(c, want) {
				return c
			}
		}
	}
	return ""
}

func (o *Opponent) supportAction(p *game.PlayerSide, card string) game.PlaySupport {
	act := game.PlaySupport{Card: card, Mode: game.ModeAdventurer}
	if def, ok := o.engine.cards.Support(card); ok && def.Adventurer == nil {
		act.Mode = game.ModeBoss
	}
	if u := strongest(p); u != nil {
		act.Target = u.ID
	}
	return act
}
