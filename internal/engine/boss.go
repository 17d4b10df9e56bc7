package engine

import (
	"fmt"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/game"
)

// BossOutcome describes one boss turn for logging and callers.
type BossOutcome struct {
	Side    game.Side
	Boss    string
	RawDie  int
	Die     int
	Kind    cards.BehaviorKind
	Value   int
	Targets []string
}

// ResolveBoss rolls side's boss die and applies the matching dice-table
// entry against the opposing side. The boss's modifier queue is consumed
// first. A face with no entry is a no-op and returns nil.
//
// Exactly one roll is drawn per call.
func (e *Engine) ResolveBoss(st *game.State, side game.Side) (*BossOutcome, error) {
	p, opp := st.Player(side), st.Opponent(side)
	def, ok := e.cards.Boss(p.Boss.Name)
	if !ok {
		return nil, invariant(CodeInvariantBossMissing, "boss %q missing from dataset", p.Boss.Name)
	}

	mods := takeModifiers(&p.Boss)
	raw := e.nextDie(st)
	die := clampDie(raw + mods.dice)
	entry := game.LogEntry{Kind: game.LogBossRoll, Side: side, Unit: p.Boss.Name, Die: die, RawDie: raw, RollNo: st.RNG.RollNo}

	bh, ok := def.Behavior(die)
	if !ok {
		entry.Message = fmt.Sprintf("%s rolls %d: nothing happens", p.Boss.Name, die)
		st.Append(entry)
		return nil, nil
	}

	out := &BossOutcome{Side: side, Boss: p.Boss.Name, RawDie: raw, Die: die, Kind: bh.Kind, Value: bh.Value}
	if bh.Kind != cards.BehaviorSelfHeal {
		out.Value += mods.damageUp
	}

	switch bh.Kind {
	case cards.BehaviorSingleAttack:
		if t := lowestHP(opp); t != nil {
			DamageUnit(t, out.Value)
			out.Targets = []string{t.Name}
		} else {
			DamageBoss(&opp.Boss, out.Value)
			out.Targets = []string{opp.Boss.Name}
		}
	case cards.BehaviorAoE:
		for i := range opp.Adv {
			t := &opp.Adv[i]
			if !t.Alive() {
				continue
			}
			DamageUnit(t, out.Value)
			out.Targets = append(out.Targets, t.Name)
		}
	case cards.BehaviorSelfHeal:
		HealBoss(&p.Boss, out.Value)
		out.Targets = []string{p.Boss.Name}
	}

	entry.Action = string(bh.Kind)
	entry.Value = out.Value
	entry.Targets = out.Targets
	entry.Message = fmt.Sprintf("%s rolls %d: %s for %d", p.Boss.Name, die, bh.Kind, out.Value)
	st.Append(entry)
	return out, nil
}
