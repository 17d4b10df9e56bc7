package engine

import (
	"fmt"
	"strings"

	"github.com/ericogr/boss-cards/internal/game"
)

// StartGame builds a fresh match. Both sides field the same roster slice,
// get a seeded shuffle of every deck card and an opening hand. Side A opens
// the first round; its opening turn skips the draw so both sides start with
// equal hands.
func (e *Engine) StartGame(seed, bossA, bossB string) (*game.State, error) {
	st := &game.State{
		Turn:         game.SideA,
		Phase:        game.PhaseDraw,
		Status:       game.StatusActive,
		RoundStarter: game.SideA,
		Round:        1,
		RNG:          game.RNGState{Seed: seed},
	}
	for _, s := range []struct {
		side game.Side
		boss string
	}{{game.SideA, bossA}, {game.SideB, bossB}} {
		ps, err := e.buildSide(seed, s.side, s.boss)
		if err != nil {
			return nil, err
		}
		*st.Player(s.side) = *ps
	}
	st.Append(game.LogEntry{
		Kind:    game.LogGameStart,
		Message: fmt.Sprintf("%s vs %s", st.SideA.Boss.Name, st.SideB.Boss.Name),
	})
	e.startTurn(st, game.SideA, false)
	return st, nil
}

func (e *Engine) buildSide(seed string, side game.Side, bossName string) (*game.PlayerSide, error) {
	def, ok := e.cards.Boss(bossName)
	if !ok {
		return nil, reject(CodeBossNotFound, "unknown boss %q", bossName)
	}
	prefix := strings.ToLower(string(side))
	ps := &game.PlayerSide{
		Boss: game.Boss{ID: "boss" + string(side), Name: def.Name, HP: def.HP, MaxHP: def.HP},
	}
	for i, a := range e.cards.Roster(e.rosterSize) {
		ps.Adv = append(ps.Adv, game.Adventurer{
			ID:        fmt.Sprintf("%s%d", prefix, i+1),
			Name:      a.Name,
			HP:        a.HP,
			MaxHP:     a.HP,
			Atk:       a.Atk,
			MaxAP:     a.MaxAP,
			Statuses:  []string{},
			Equipment: []string{},
		})
	}
	ps.Deck = shuffled(seed, side, e.cards.DeckCards())
	ps.Hand = []string{}
	ps.Discard = []string{}
	ps.Draw(e.openingHand)
	return ps, nil
}
