package service

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/engine"
	"github.com/ericogr/boss-cards/internal/storage"
)

// mockRepo keeps records by value so a failed WithGame leaves them as they
// were, like a rolled back transaction.
type mockRepo struct {
	mu      sync.Mutex
	games   map[string]storage.GameRecord
	results []string
	topCall int
}

func newMockRepo() *mockRepo {
	return &mockRepo{games: map[string]storage.GameRecord{}}
}

func (m *mockRepo) CreateGame(g *storage.GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = *g
	return nil
}

func (m *mockRepo) GetGame(id string) (*storage.GameRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &g, nil
}

func (m *mockRepo) WithGame(id string, fn func(tx storage.Repository, g *storage.GameRecord) error) error {
	g, err := m.GetGame(id)
	if err != nil {
		return err
	}
	staged := &mockTx{mockRepo: m}
	if err := fn(staged, g); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = *g
	m.results = append(m.results, staged.results...)
	return nil
}

func (m *mockRepo) FindTimedOutGames(now time.Time) ([]storage.GameRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []storage.GameRecord
	for _, g := range m.games {
		if !g.Finished() && g.ActionDeadline != nil && !g.ActionDeadline.After(now) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockRepo) RecordBossResult(boss string, result storage.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, boss+":"+string(result))
	return nil
}

func (m *mockRepo) TopBosses(limit int) ([]storage.BossStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topCall++
	return []storage.BossStat{{Boss: "Lich King", Played: 2, Wins: 2}}, nil
}

// mockTx buffers stat writes until the surrounding WithGame succeeds.
type mockTx struct {
	*mockRepo
	results []string
}

func (t *mockTx) RecordBossResult(boss string, result storage.Result) error {
	t.results = append(t.results, boss+":"+string(result))
	return nil
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testRules(t *testing.T) Rules {
	t.Helper()
	r := NewRules(engine.New(cards.Default()), nil, time.Minute)
	r.Now = func() time.Time { return fixedNow }
	return r
}
