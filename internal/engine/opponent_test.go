package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpponentPlaysSupportAttacksAndEnds(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(3)))
	setHand(st, game.SideA, []string{"Ambush", "War Cry"}, []string{"Fog"})

	require.NoError(t, NewOpponent(e, nil).TakeTurn(st, game.SideA))

	assert.Equal(t, []string{"War Cry"}, st.SideA.Discard)
	assert.Equal(t, 20, st.SideB.Boss.HP, "knight slash doubled by war cry")
	assert.Equal(t, []string{game.StatusActed}, st.SideA.Adv[0].Statuses)
	assert.Equal(t, game.SideB, st.Turn)
}

func TestOpponentRespectsPriorityOrder(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(3)))
	setHand(st, game.SideA, []string{"War Cry", "Potion"}, nil)
	st.SideA.Adv[0].HP = 10

	require.NoError(t, NewOpponent(e, []string{"potion", "war cry"}).TakeTurn(st, game.SideA))
	assert.Equal(t, []string{"Potion"}, st.SideA.Discard)
	assert.Equal(t, 16, st.SideA.Adv[0].HP)
}

func TestOpponentSwallowsFailedMoves(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(3)))
	setHand(st, game.SideA, []string{"Potion"}, nil)
	st.SideA.Flags.SupportUsedThisTurn = true
	for i := range st.SideA.Adv {
		st.SideA.Adv[i].AP = 0
	}

	require.NoError(t, NewOpponent(e, nil).TakeTurn(st, game.SideA))
	assert.Equal(t, []string{"Potion"}, st.SideA.Hand)
	assert.Equal(t, 30, st.SideB.Boss.HP)
	assert.Equal(t, game.SideB, st.Turn)
}

func TestOpponentEndTurnFailurePropagates(t *testing.T) {
	e, st := newTestGame(t)

	err := NewOpponent(e, nil).TakeTurn(st, game.SideB)
	assert.True(t, errors.Is(err, ErrNotYourTurn))
}

// Self-play over many seeds with the default dataset. After every turn the
// board must satisfy the state invariants.
func TestSelfPlayKeepsInvariants(t *testing.T) {
	e := New(cards.Default())
	bot := NewOpponent(e, nil)
	bosses := e.Cards().Bosses

	for n := 0; n < 25; n++ {
		seed := fmt.Sprintf("selfplay-%d", n)
		st, err := e.StartGame(seed, bosses[n%len(bosses)].Name, bosses[(n+1)%len(bosses)].Name)
		require.NoError(t, err)

		for turn := 0; turn < 300 && !st.Status.Terminal(); turn++ {
			err := bot.TakeTurn(st, st.Turn)
			if err != nil {
				require.True(t, errors.Is(err, ErrGameOver), "seed %s: %v", seed, err)
				require.True(t, st.Status.Terminal())
			}
			checkInvariants(t, st)
		}
	}
}

func checkInvariants(t *testing.T, st *game.State) {
	t.Helper()
	assert.Equal(t, game.PhaseDraw, st.Phase)
	for _, s := range []game.Side{game.SideA, game.SideB} {
		p := st.Player(s)
		require.GreaterOrEqual(t, p.Boss.HP, 0)
		require.LessOrEqual(t, p.Boss.HP, p.Boss.MaxHP)
		for _, u := range p.Adv {
			require.GreaterOrEqual(t, u.HP, 0)
			require.LessOrEqual(t, u.HP, u.MaxHP)
			require.GreaterOrEqual(t, u.AP, 0)
			require.LessOrEqual(t, u.AP, u.MaxAP)
		}
		seen := map[string]bool{}
		for _, zone := range [][]string{p.Hand, p.Deck, p.Discard} {
			for _, c := range zone {
				require.False(t, seen[c], "card %s duplicated on side %s", c, s)
				seen[c] = true
			}
		}
	}
	for i, entry := range st.Log {
		require.Equal(t, i+1, entry.Seq)
	}
}
