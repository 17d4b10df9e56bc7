package main

import (
	"bytes"
	"testing"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateIsDeterministic(t *testing.T) {
	e := engine.New(cards.Default())
	opt := options{games: 12, prefix: "t", maxTurns: 500}

	first, err := simulate(e, opt)
	require.NoError(t, err)
	second, err := simulate(e, opt)
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))

	total := 0
	for i := range first {
		assert.Equal(t, *first[i], *second[i])
		total += first[i].aWins + first[i].bWins + first[i].draws + first[i].unfinished
	}
	assert.Equal(t, 12, total)
}

func TestSimulateFixedPairing(t *testing.T) {
	e := engine.New(cards.Default())
	results, err := simulate(e, options{games: 5, prefix: "p", bossA: "iron golem", bossB: "Lich King", priority: "War Cry, Potion", maxTurns: 500})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Iron Golem", results[0].bossA)
	assert.Equal(t, "Lich King", results[0].bossB)

	var buf bytes.Buffer
	report(&buf, results)
	assert.Contains(t, buf.String(), "Iron Golem")
	assert.Contains(t, buf.String(), "AVG ROUNDS")
}

func TestSimulateUnknownBoss(t *testing.T) {
	_, err := simulate(engine.New(cards.Default()), options{games: 1, bossA: "Nobody", maxTurns: 10})
	assert.ErrorIs(t, err, engine.ErrBossNotFound)
}
