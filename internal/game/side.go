package game

import "github.com/ericogr/boss-cards/internal/keys"

// Unit finds an adventurer by ID or, failing that, by name.
func (p *PlayerSide) Unit(ref string) *Adventurer {
	if ref == "" {
		return nil
	}
	for i := range p.Adv {
		if p.Adv[i].ID == ref {
			return &p.Adv[i]
		}
	}
	for i := range p.Adv {
		if keys.SameCard(p.Adv[i].Name, ref) {
			return &p.Adv[i]
		}
	}
	return nil
}

// Living returns the adventurers with hp > 0 in roster order.
func (p *PlayerSide) Living() []*Adventurer {
	out := make([]*Adventurer, 0, len(p.Adv))
	for i := range p.Adv {
		if p.Adv[i].Alive() {
			out = append(out, &p.Adv[i])
		}
	}
	return out
}

// DefeatedCount counts adventurers with hp <= 0.
func (p *PlayerSide) DefeatedCount() int {
	n := 0
	for i := range p.Adv {
		if !p.Adv[i].Alive() {
			n++
		}
	}
	return n
}

// HandIndex returns the position of card in hand, or -1.
func (p *PlayerSide) HandIndex(card string) int {
	for i, c := range p.Hand {
		if keys.SameCard(c, card) {
			return i
		}
	}
	return -1
}

// InHand reports whether card is currently held.
func (p *PlayerSide) InHand(card string) bool { return p.HandIndex(card) >= 0 }

// TakeFromHand removes card from hand and returns the stored name. The
// second result is false when the card is not held.
func (p *PlayerSide) TakeFromHand(card string) (string, bool) {
	i := p.HandIndex(card)
	if i < 0 {
		return "", false
	}
	name := p.Hand[i]
	p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
	return name, true
}

// Draw moves up to n cards from the front of the deck to the hand and
// returns how many were drawn.
func (p *PlayerSide) Draw(n int) int {
	if n > len(p.Deck) {
		n = len(p.Deck)
	}
	if n <= 0 {
		return 0
	}
	p.Hand = append(p.Hand, p.Deck[:n]...)
	p.Deck = append([]string(nil), p.Deck[n:]...)
	return n
}
