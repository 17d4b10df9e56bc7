package api

import (
	"github.com/ericogr/boss-cards/internal/service"
	"github.com/ericogr/boss-cards/internal/storage"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo  storage.Repository
	rules service.Rules
}

// NewGameHandler creates a new GameHandler over the given repository and
// game rules.
func NewGameHandler(repo storage.Repository, rules service.Rules) *GameHandler {
	return &GameHandler{repo: repo, rules: rules}
}
