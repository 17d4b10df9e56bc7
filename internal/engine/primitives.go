package engine

import "github.com/ericogr/boss-cards/internal/game"

// DamageBoss lowers the boss's hp by amount, never below zero, and returns
// the damage actually dealt.
func DamageBoss(b *game.Boss, amount int) int {
	if amount <= 0 || b.HP <= 0 {
		return 0
	}
	if amount > b.HP {
		amount = b.HP
	}
	b.HP -= amount
	return amount
}

// HealBoss restores hp up to MaxHP. A defeated boss stays defeated.
func HealBoss(b *game.Boss, amount int) int {
	if amount <= 0 || b.HP <= 0 {
		return 0
	}
	if b.HP+amount > b.MaxHP {
		amount = b.MaxHP - b.HP
	}
	b.HP += amount
	return amount
}

// DamageUnit lowers the unit's hp by amount, never below zero, and returns
// the damage actually dealt.
func DamageUnit(u *game.Adventurer, amount int) int {
	if amount <= 0 || u.HP <= 0 {
		return 0
	}
	if amount > u.HP {
		amount = u.HP
	}
	u.HP -= amount
	return amount
}

// HealUnit restores hp up to MaxHP and returns the amount healed. Heals do
// not revive a unit at zero hp.
func HealUnit(u *game.Adventurer, amount int) int {
	if amount <= 0 || u.HP <= 0 {
		return 0
	}
	if u.HP+amount > u.MaxHP {
		amount = u.MaxHP - u.HP
	}
	u.HP += amount
	return amount
}
