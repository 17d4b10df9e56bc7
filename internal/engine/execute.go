package engine

import (
	"fmt"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/game"
)

// Every apply* function performs its lookups before the first write so a
// failed lookup leaves the state untouched.

func (e *Engine) applyUse(st *game.State, side game.Side, v game.UseAction) error {
	p, opp := st.Player(side), st.Opponent(side)
	u := p.Unit(v.Unit)
	if u == nil {
		return invariant(CodeInvariantUnitMissing, "unit %q missing on side %s", v.Unit, side)
	}
	def, ok := e.cards.Action(u.Name, v.Action)
	if !ok {
		return invariant(CodeInvariantActionMissing, "action %q missing for %s", v.Action, u.Name)
	}

	u.AP -= def.Cost
	u.MarkStatus(game.StatusActed)
	entry := game.LogEntry{Kind: game.LogUseAction, Side: side, Unit: u.Name, Action: def.Name}

	switch def.Kind {
	case cards.ActionAttack, cards.ActionAttackBossOnly:
		entry.Value = DamageBoss(&opp.Boss, damageFor(u, def))
		entry.Targets = []string{opp.Boss.Name}
		entry.Message = fmt.Sprintf("%s uses %s on %s for %d", u.Name, def.Name, opp.Boss.Name, entry.Value)
	case cards.ActionAoE:
		dmg := damageFor(u, def)
		for i := range opp.Adv {
			t := &opp.Adv[i]
			if !t.Alive() {
				continue
			}
			DamageUnit(t, dmg)
			entry.Targets = append(entry.Targets, t.Name)
		}
		entry.Value = dmg
		entry.Message = fmt.Sprintf("%s uses %s, hitting %d enemies for %d", u.Name, def.Name, len(entry.Targets), dmg)
	case cards.ActionHeal:
		if def.Target == cards.TargetAllyAll {
			for i := range p.Adv {
				if HealUnit(&p.Adv[i], def.Heal) > 0 {
					entry.Targets = append(entry.Targets, p.Adv[i].Name)
				}
			}
		} else if t := healTarget(p, v.Target); t != nil {
			HealUnit(t, def.Heal)
			entry.Targets = []string{t.Name}
		}
		entry.Value = def.Heal
		entry.Message = fmt.Sprintf("%s uses %s", u.Name, def.Name)
	}
	st.Append(entry)

	if opp.Boss.Defeated() {
		e.finish(st, game.WinFor(side), side)
	}
	return nil
}

func (e *Engine) applySupport(st *game.State, side game.Side, v game.PlaySupport) error {
	p, opp := st.Player(side), st.Opponent(side)
	def, ok := e.cards.Support(v.Card)
	if !ok {
		return invariant(CodeInvariantCardMissing, "support %q missing from dataset", v.Card)
	}
	if (v.Mode == game.ModeAdventurer && def.Adventurer == nil) || (v.Mode == game.ModeBoss && def.Boss == nil) ||
		(v.Mode != game.ModeAdventurer && v.Mode != game.ModeBoss) {
		return invariant(CodeInvariantCardMissing, "support %q has no %q effect", def.Name, v.Mode)
	}
	var target *game.Adventurer
	if v.Mode == game.ModeAdventurer && def.Adventurer != nil && needsSingleTarget(def.Adventurer) {
		if target = supportTarget(p, v.Target); target == nil {
			return invariant(CodeInvariantUnitMissing, "support target %q missing on side %s", v.Target, side)
		}
	}
	name, ok := p.TakeFromHand(v.Card)
	if !ok {
		return invariant(CodeInvariantCardMissing, "card %q not in hand of side %s", v.Card, side)
	}
	p.Discard = append(p.Discard, name)
	p.Flags.SupportUsedThisTurn = true

	entry := game.LogEntry{Kind: game.LogSupport, Side: side, Card: name, Mode: string(v.Mode)}
	if v.Mode == game.ModeAdventurer {
		eff := def.Adventurer
		switch eff.Kind {
		case cards.EffectHeal:
			if eff.Target == cards.TargetAllyAll {
				for i := range p.Adv {
					if HealUnit(&p.Adv[i], eff.Value) > 0 {
						entry.Targets = append(entry.Targets, p.Adv[i].Name)
					}
				}
			} else {
				HealUnit(target, eff.Value)
				entry.Targets = []string{target.Name}
			}
			entry.Value = eff.Value
		case cards.EffectBuff:
			// Buff tags stack, so this bypasses MarkStatus.
			target.Statuses = append(target.Statuses, buffTag(eff.Multiplier))
			entry.Targets = []string{target.Name}
			entry.Message = fmt.Sprintf("%s empowered x%g", target.Name, eff.Multiplier)
		case cards.EffectDraw:
			n := p.DefeatedCount() * eff.PerDefeated
			if n > eff.Cap {
				n = eff.Cap
			}
			entry.Value = p.Draw(n)
		}
	} else {
		eff := def.Boss
		switch eff.Kind {
		case cards.EffectDiceMod:
			p.Boss.Stash = append(p.Boss.Stash, game.PendingModifier{Kind: game.ModifierDice, Value: eff.Value, Source: name})
			entry.Value = eff.Value
		case cards.EffectDamageUp:
			p.Boss.Stash = append(p.Boss.Stash, game.PendingModifier{Kind: game.ModifierDamageUp, Value: eff.Value, Source: name})
			entry.Value = eff.Value
		case cards.EffectDisrupt:
			n := eff.Value
			if n > len(opp.Hand) {
				n = len(opp.Hand)
			}
			moved := append([]string(nil), opp.Hand[:n]...)
			opp.Hand = append([]string(nil), opp.Hand[n:]...)
			opp.Deck = append(opp.Deck, moved...)
			entry.Value = n
		}
	}
	st.Append(entry)
	return nil
}

func (e *Engine) applyField(st *game.State, side game.Side, v game.PlayField) error {
	p := st.Player(side)
	name, ok := p.TakeFromHand(v.Card)
	if !ok {
		return invariant(CodeInvariantCardMissing, "card %q not in hand of side %s", v.Card, side)
	}
	p.Discard = append(p.Discard, name)
	if v.Side == game.FieldSlotBoss {
		p.FieldBoss = name
	} else {
		p.FieldAdv = name
	}
	st.Append(game.LogEntry{Kind: game.LogField, Side: side, Card: name, Mode: string(v.Side)})
	return nil
}

func (e *Engine) applyEquip(st *game.State, side game.Side, v game.Equip) error {
	p := st.Player(side)
	u := p.Unit(v.Unit)
	if u == nil {
		return invariant(CodeInvariantUnitMissing, "equip target %q missing on side %s", v.Unit, side)
	}
	name, ok := p.TakeFromHand(v.Card)
	if !ok {
		return invariant(CodeInvariantCardMissing, "card %q not in hand of side %s", v.Card, side)
	}
	// Equipment stats are not applied; the card is only recorded.
	u.Equipment = append(u.Equipment, name)
	st.Append(game.LogEntry{Kind: game.LogEquip, Side: side, Card: name, Unit: u.Name})
	return nil
}

func (e *Engine) applyEvent(st *game.State, side game.Side, v game.PlayEvent) error {
	p := st.Player(side)
	name, ok := p.TakeFromHand(v.Card)
	if !ok {
		return invariant(CodeInvariantCardMissing, "card %q not in hand of side %s", v.Card, side)
	}
	p.Discard = append(p.Discard, name)
	st.Append(game.LogEntry{Kind: game.LogEvent, Side: side, Card: name})
	return nil
}
