package service

import (
	"strings"

	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/storage"

	"github.com/google/uuid"
)

type StartGameRequest struct {
	// Seed is generated when empty.
	Seed  string `json:"seed"`
	BossA string `json:"boss_a" binding:"required"`
	BossB string `json:"boss_b" binding:"required"`
	// VsAI hands side B to the heuristic opponent.
	VsAI bool `json:"vs_ai"`
}

// StartGame creates and stores a new match. The game identifier doubles as
// the state ID so log entries and records line up.
func StartGame(repo storage.Repository, r Rules, req StartGameRequest) (*storage.GameRecord, *game.State, error) {
	seed := strings.TrimSpace(req.Seed)
	if seed == "" {
		seed = uuid.NewString()
	}
	st, err := r.Engine.StartGame(seed, req.BossA, req.BossB)
	if err != nil {
		logEngineErr("", game.SideA, nil, err)
		return nil, nil, err
	}
	st.ID = uuid.NewString()
	if req.VsAI {
		if err := playComputer(r, st); err != nil {
			logEngineErr(st.ID, game.SideB, nil, err)
			return nil, nil, err
		}
	}

	g := &storage.GameRecord{
		ID:    st.ID,
		Seed:  seed,
		BossA: st.SideA.Boss.Name,
		BossB: st.SideB.Boss.Name,
		VsAI:  req.VsAI,
	}
	if err := persist(repo, r, g, st); err != nil {
		return nil, nil, err
	}
	if err := repo.CreateGame(g); err != nil {
		logging.Error("failed to store new game", err, logging.Fields{constants.LogFieldGameID: g.ID})
		return nil, nil, err
	}
	logging.Info("game started", logging.Fields{
		constants.LogFieldGameID: g.ID,
		constants.LogFieldSeed:   seed,
		constants.LogFieldBoss:   g.BossA + " vs " + g.BossB,
		"vs_ai":                  g.VsAI,
	})
	return g, st, nil
}
