package engine

import (
	"strconv"
	"strings"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/game"
)

// firstLiving returns the first adventurer with hp > 0 in roster order.
func firstLiving(p *game.PlayerSide) *game.Adventurer {
	for i := range p.Adv {
		if p.Adv[i].Alive() {
			return &p.Adv[i]
		}
	}
	return nil
}

// lowestHP returns the living adventurer with the least hp; ties go to the
// earliest in roster order.
func lowestHP(p *game.PlayerSide) *game.Adventurer {
	var best *game.Adventurer
	for i := range p.Adv {
		u := &p.Adv[i]
		if !u.Alive() {
			continue
		}
		if best == nil || u.HP < best.HP {
			best = u
		}
	}
	return best
}

// strongest returns the living adventurer with the highest Atk; ties go to
// the earliest in roster order.
func strongest(p *game.PlayerSide) *game.Adventurer {
	var best *game.Adventurer
	for i := range p.Adv {
		u := &p.Adv[i]
		if !u.Alive() {
			continue
		}
		if best == nil || u.Atk > best.Atk {
			best = u
		}
	}
	return best
}

// healTarget picks the unit a single-target heal action lands on: the named
// ally, or the first ally when the reference is empty or unknown.
func healTarget(p *game.PlayerSide, ref string) *game.Adventurer {
	if u := p.Unit(ref); u != nil {
		return u
	}
	if len(p.Adv) == 0 {
		return nil
	}
	return &p.Adv[0]
}

// supportTarget picks the unit a single-target support effect lands on. A
// named target must exist and be alive; an empty one means the first
// living ally.
func supportTarget(p *game.PlayerSide, ref string) *game.Adventurer {
	if ref == "" {
		return firstLiving(p)
	}
	u := p.Unit(ref)
	if u == nil || !u.Alive() {
		return nil
	}
	return u
}

// needsSingleTarget reports whether an adventurer effect is aimed at one
// unit.
func needsSingleTarget(eff *cards.AdventurerEffect) bool {
	switch eff.Kind {
	case cards.EffectBuff:
		return true
	case cards.EffectHeal:
		return eff.Target != cards.TargetAllyAll
	}
	return false
}

func buffTag(mult float64) string {
	return game.BuffTagPrefix + "x" + strconv.FormatFloat(mult, 'g', -1, 64)
}

// takeBuffs removes every buff tag from u and returns the product of their
// multipliers (1 when there are none).
func takeBuffs(u *game.Adventurer) float64 {
	mult := 1.0
	kept := u.Statuses[:0]
	for _, s := range u.Statuses {
		if !strings.HasPrefix(s, game.BuffTagPrefix) {
			kept = append(kept, s)
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimPrefix(s, game.BuffTagPrefix+"x"), 64)
		if err != nil || v <= 0 {
			continue
		}
		mult *= v
	}
	u.Statuses = kept
	return mult
}

// damageFor returns what a damaging action deals, consuming the unit's buffs.
func damageFor(u *game.Adventurer, def *cards.ActionDef) int {
	base := def.Damage
	if base == 0 {
		base = u.Atk
	}
	return int(float64(base) * takeBuffs(u))
}

// basicAttack names the action the scripted opponent swings with: the first
// plain attack in the catalog, else the first damaging action.
func basicAttack(def *cards.AdventurerDef) string {
	for _, a := range def.Actions {
		if a.Kind == cards.ActionAttack {
			return a.Name
		}
	}
	for _, a := range def.Actions {
		if a.Damaging() {
			return a.Name
		}
	}
	return ""
}
