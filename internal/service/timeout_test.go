package service

import (
	"testing"
	"time"

	"github.com/ericogr/boss-cards/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expire(repo *mockRepo, id string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	g := repo.games[id]
	past := fixedNow.Add(-time.Second)
	g.ActionDeadline = &past
	repo.games[id] = g
}

func TestHandleTimedOutGameNotDue(t *testing.T) {
	repo := newMockRepo()
	r := testRules(t)
	g := startTestGame(t, repo, r, false)
	before, _ := repo.GetGame(g.ID)

	require.NoError(t, HandleTimedOutGame(repo, r, g.ID))
	after, _ := repo.GetGame(g.ID)
	assert.Equal(t, before.StateJSON, after.StateJSON)
}

func TestHandleTimedOutGamePlaysIdleSide(t *testing.T) {
	repo := newMockRepo()
	r := testRules(t)
	g := startTestGame(t, repo, r, false)
	expire(repo, g.ID)

	due, err := repo.FindTimedOutGames(fixedNow)
	require.NoError(t, err)
	require.Len(t, due, 1)

	require.NoError(t, HandleTimedOutGame(repo, r, g.ID))
	rec, st := storedState(t, repo, g.ID)
	assert.Equal(t, game.SideB, st.Turn)
	var aEnds int
	for _, e := range st.Log {
		if e.Kind == game.LogEndTurn && e.Side == game.SideA {
			aEnds++
		}
	}
	assert.Equal(t, 1, aEnds)
	require.NotNil(t, rec.ActionDeadline)
	assert.Equal(t, fixedNow.Add(time.Minute), *rec.ActionDeadline)

	due, err = repo.FindTimedOutGames(fixedNow)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestHandleTimedOutGameAgainstComputer(t *testing.T) {
	repo := newMockRepo()
	r := testRules(t)
	g := startTestGame(t, repo, r, true)
	expire(repo, g.ID)

	require.NoError(t, HandleTimedOutGame(repo, r, g.ID))
	_, st := storedState(t, repo, g.ID)
	assert.Equal(t, game.SideA, st.Turn)
	assert.Equal(t, 2, st.Round)
}

func TestHandleTimedOutGameFinishedIsNoop(t *testing.T) {
	repo := newMockRepo()
	r := testRules(t)
	g := startTestGame(t, repo, r, false)

	repo.mu.Lock()
	rec := repo.games[g.ID]
	st, err := rec.State()
	require.NoError(t, err)
	st.Status = game.StatusDraw
	require.NoError(t, rec.SetState(st))
	past := fixedNow.Add(-time.Hour)
	rec.ActionDeadline = &past
	repo.games[g.ID] = rec
	repo.mu.Unlock()

	require.NoError(t, HandleTimedOutGame(repo, r, g.ID))
	after, _ := repo.GetGame(g.ID)
	assert.Equal(t, rec.StateJSON, after.StateJSON)
	assert.Empty(t, repo.results)

	assert.ErrorIs(t, HandleTimedOutGame(repo, r, "missing"), ErrGameNotFound)
}
