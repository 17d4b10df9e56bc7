package engine

import (
	"testing"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleAttackTargetsLowestHP(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(1)))
	st.SideA.Adv[0].HP = 20
	st.SideA.Adv[1].HP = 7
	st.SideA.Adv[2].HP = 7

	out, err := e.ResolveBoss(st, game.SideB)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, cards.BehaviorSingleAttack, out.Kind)
	assert.Equal(t, []string{"Cleric"}, out.Targets, "tie goes to roster order")
	assert.Equal(t, 2, st.SideA.Adv[1].HP)
	assert.Equal(t, 7, st.SideA.Adv[2].HP)
}

func TestSingleAttackFallsThroughToBoss(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(4)))
	for i := range st.SideA.Adv {
		st.SideA.Adv[i].HP = 0
	}

	out, err := e.ResolveBoss(st, game.SideB)
	require.NoError(t, err)
	assert.Equal(t, []string{"BossX"}, out.Targets)
	assert.Equal(t, 0, st.SideA.Boss.HP, "clamped, never negative")
}

func TestAoEAndSelfHeal(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(2, 3)))
	st.SideA.Adv[2].HP = 2
	st.SideB.Boss.HP = 28

	out, err := e.ResolveBoss(st, game.SideB)
	require.NoError(t, err)
	assert.Equal(t, cards.BehaviorAoE, out.Kind)
	assert.Equal(t, 17, st.SideA.Adv[0].HP)
	assert.Equal(t, 12, st.SideA.Adv[1].HP)
	assert.Equal(t, 0, st.SideA.Adv[2].HP)

	out, err = e.ResolveBoss(st, game.SideB)
	require.NoError(t, err)
	assert.Equal(t, cards.BehaviorSelfHeal, out.Kind)
	assert.Equal(t, 30, st.SideB.Boss.HP, "clamped at max")
}

func TestMissingFaceIsNoOp(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(5)))
	before := append([]game.Adventurer(nil), st.SideA.Adv...)

	out, err := e.ResolveBoss(st, game.SideB)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, 1, st.RNG.RollNo, "the roll is still consumed")
	assert.Equal(t, before, st.SideA.Adv)
	rolls := logKinds(st, game.LogBossRoll)
	require.Len(t, rolls, 1)
	assert.Equal(t, 5, rolls[0].Die)
}

func TestModifierQueue(t *testing.T) {
	cases := []struct {
		name     string
		face     int
		stash    []game.PendingModifier
		wantDie  int
		wantKind cards.BehaviorKind
		wantVal  int
	}{
		{"dice shift", 1, []game.PendingModifier{{Kind: game.ModifierDice, Value: 2}}, 3, cards.BehaviorSelfHeal, 4},
		{"dice sum clamps high", 4, []game.PendingModifier{{Kind: game.ModifierDice, Value: 2}, {Kind: game.ModifierDice, Value: 3}}, 6, cards.BehaviorSingleAttack, 6},
		{"dice clamps low", 2, []game.PendingModifier{{Kind: game.ModifierDice, Value: -4}}, 1, cards.BehaviorSingleAttack, 5},
		{"damage up on attack", 1, []game.PendingModifier{{Kind: game.ModifierDamageUp, Value: 3}}, 1, cards.BehaviorSingleAttack, 8},
		{"damage up skips heal", 3, []game.PendingModifier{{Kind: game.ModifierDamageUp, Value: 3}}, 3, cards.BehaviorSelfHeal, 4},
		{"both", 1, []game.PendingModifier{{Kind: game.ModifierDamageUp, Value: 1}, {Kind: game.ModifierDice, Value: 1}}, 2, cards.BehaviorAoE, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, st := newTestGame(t, WithRoller(fixedDice(c.face)))
			st.SideB.Boss.Stash = c.stash

			out, err := e.ResolveBoss(st, game.SideB)
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Equal(t, c.face, out.RawDie)
			assert.Equal(t, c.wantDie, out.Die)
			assert.Equal(t, c.wantKind, out.Kind)
			assert.Equal(t, c.wantVal, out.Value)
			assert.Empty(t, st.SideB.Boss.Stash, "queue consumed")
		})
	}
}

func TestModifiersApplyOnlyToOwnBoss(t *testing.T) {
	e, st := newTestGame(t, WithRoller(fixedDice(1)))
	st.SideA.Boss.Stash = []game.PendingModifier{{Kind: game.ModifierDamageUp, Value: 10}}

	out, err := e.ResolveBoss(st, game.SideB)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Value)
	assert.Len(t, st.SideA.Boss.Stash, 1)
}
