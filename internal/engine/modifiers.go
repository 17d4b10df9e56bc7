package engine

import "github.com/ericogr/boss-cards/internal/game"

// pendingTotals is the folded result of a boss's modifier queue.
type pendingTotals struct {
	dice     int
	damageUp int
	sources  []string
}

// takeModifiers drains the boss's queue. All dice_mod entries are summed
// onto the die; all damage_up entries are summed onto attack magnitudes.
// Order inside the queue does not change the outcome.
func takeModifiers(b *game.Boss) pendingTotals {
	var t pendingTotals
	for _, m := range b.Stash {
		switch m.Kind {
		case game.ModifierDice:
			t.dice += m.Value
		case game.ModifierDamageUp:
			t.damageUp += m.Value
		}
		t.sources = append(t.sources, m.Source)
	}
	b.Stash = nil
	return t
}

// clampDie keeps a modified die on the table's faces.
func clampDie(v int) int {
	if v < 1 {
		return 1
	}
	if v > 6 {
		return 6
	}
	return v
}
