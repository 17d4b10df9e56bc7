package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ericogr/boss-cards/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndTurnHandsOverToSecondMover(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(3)))
	st.SideB.Flags.SupportUsedThisTurn = true
	handB := len(st.SideB.Hand)

	require.NoError(t, e.EndTurn(st, game.SideA))

	assert.Equal(t, game.SideB, st.Turn)
	assert.Equal(t, game.PhaseDraw, st.Phase)
	assert.Equal(t, 0, st.RNG.RollNo, "no boss rolls yet")
	assert.Len(t, st.SideB.Hand, handB+1)
	assert.False(t, st.SideB.Flags.SupportUsedThisTurn)
	for _, u := range st.SideB.Adv {
		assert.Equal(t, 1, u.AP)
	}

	err := e.EndTurn(st, game.SideA)
	assert.True(t, errors.Is(err, ErrNotYourTurn))
	require.NoError(t, e.ApplyAction(st, game.SideB, game.UseAction{Unit: "b1", Action: "Slash"}))
}

func TestRoundCompletion(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(3)))
	apA := st.SideA.Adv[0].AP

	require.NoError(t, e.EndTurn(st, game.SideA))
	apB := st.SideB.Adv[0].AP
	handB := len(st.SideB.Hand)
	require.NoError(t, e.EndTurn(st, game.SideB))

	assert.Equal(t, game.PhaseDraw, st.Phase)
	assert.Equal(t, game.StatusActive, st.Status)
	assert.Equal(t, game.SideB, st.RoundStarter, "starter flips")
	assert.Equal(t, game.SideB, st.Turn, "new starter moves first")
	assert.Equal(t, 2, st.Round)
	assert.Equal(t, 2, st.RNG.RollNo)

	rolls := logKinds(st, game.LogBossRoll)
	require.Len(t, rolls, 2)
	assert.Equal(t, game.SideA, rolls[0].Side, "round starter resolves first")
	assert.Equal(t, game.SideB, rolls[1].Side)
	assert.Equal(t, 1, rolls[0].RollNo)
	assert.Equal(t, 2, rolls[1].RollNo)

	// Only the new starter's bookkeeping ran after the boss phase.
	assert.Equal(t, apA, st.SideA.Adv[0].AP)
	assert.Equal(t, apB+1, st.SideB.Adv[0].AP)
	assert.Len(t, st.SideB.Hand, handB+1)
	assert.False(t, st.SideB.Adv[0].HasStatus(game.StatusActed))
}

func TestAPIsCappedAtMax(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(3)))
	for i := 0; i < 6; i++ {
		require.NoError(t, e.EndTurn(st, st.Turn))
	}
	for _, s := range []game.Side{game.SideA, game.SideB} {
		for _, u := range st.Player(s).Adv {
			assert.LessOrEqual(t, u.AP, u.MaxAP)
			assert.GreaterOrEqual(t, u.AP, 0)
		}
	}
	assert.Equal(t, 2, st.SideA.Adv[0].AP)
	assert.Equal(t, 3, st.SideA.Adv[2].AP)
}

func TestSimultaneousBossKillIsDraw(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(1)))
	for _, s := range []game.Side{game.SideA, game.SideB} {
		p := st.Player(s)
		for i := range p.Adv {
			p.Adv[i].HP = 0
		}
		p.Boss.HP = 5
	}

	require.NoError(t, e.EndTurn(st, game.SideA))
	require.NoError(t, e.EndTurn(st, game.SideB))

	assert.Equal(t, game.StatusDraw, st.Status)
	assert.Equal(t, game.PhaseDraw, st.Phase)
	assert.Equal(t, 0, st.SideA.Boss.HP)
	assert.Equal(t, 0, st.SideB.Boss.HP)
}

func TestSingleBossKillWins(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(1)))
	for i := range st.SideB.Adv {
		st.SideB.Adv[i].HP = 0
	}
	st.SideB.Boss.HP = 5

	require.NoError(t, e.EndTurn(st, game.SideA))
	require.NoError(t, e.EndTurn(st, game.SideB))

	assert.Equal(t, game.StatusSideAWin, st.Status)
	over := logKinds(st, game.LogGameOver)
	require.Len(t, over, 1)
	assert.Equal(t, game.SideA, over[0].Side, "credited to the killing boss")
	assert.Equal(t, 1, st.Round, "no new round after a decisive boss phase")

	err := e.EndTurn(st, game.SideA)
	assert.True(t, errors.Is(err, ErrGameOver))
}

func TestRollIsDeterministic(t *testing.T) {
	first := []int{Roll("seed1", 1, 6), Roll("seed1", 2, 6), Roll("seed1", 3, 6)}
	for run := 0; run < 5; run++ {
		again := []int{Roll("seed1", 1, 6), Roll("seed1", 2, 6), Roll("seed1", 3, 6)}
		assert.Equal(t, first, again)
	}
	for n := 1; n <= 200; n++ {
		v := Roll(fmt.Sprintf("s%d", n), n, 6)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
	assert.Equal(t, 0, Roll("x", 1, 0))
}

func TestResolveBossReplaysSameDice(t *testing.T) {
	e := New(testCards(t))
	dice := func() []int {
		st, err := e.StartGame("seed1", "BossX", "BossY")
		require.NoError(t, err)
		var out []int
		for i := 0; i < 3; i++ {
			_, err := e.ResolveBoss(st, game.SideA)
			require.NoError(t, err)
			out = append(out, logKinds(st, game.LogBossRoll)[i].Die)
		}
		assert.Equal(t, 3, st.RNG.RollNo)
		return out
	}
	assert.Equal(t, dice(), dice())
	assert.Equal(t, []int{Roll("seed1", 1, 6), Roll("seed1", 2, 6), Roll("seed1", 3, 6)}, dice())
}
