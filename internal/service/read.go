package service

import (
	"strconv"

	"github.com/ericogr/boss-cards/internal/dedupe"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/storage"
)

// GetView returns the projection of a stored game for side. Concurrent
// reads of the same game and side share one load.
func GetView(repo storage.Repository, gameID string, side game.Side) (*game.View, error) {
	if !side.Valid() {
		return nil, ErrInvalidSide
	}
	v, err, _ := dedupe.ViewGroup.Do(gameID+":"+string(side), func() (interface{}, error) {
		g, err := repo.GetGame(gameID)
		if err != nil {
			return nil, mapRepoErr(err)
		}
		st, err := loadState(g)
		if err != nil {
			return nil, err
		}
		view := game.ViewFor(st, side)
		return &view, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.View), nil
}

// Leaderboard returns the top bosses by wins.
func Leaderboard(repo storage.Repository, limit int) ([]storage.BossStat, error) {
	v, err, _ := dedupe.LeaderboardGroup.Do(strconv.Itoa(limit), func() (interface{}, error) {
		return repo.TopBosses(limit)
	})
	if err != nil {
		return nil, err
	}
	return v.([]storage.BossStat), nil
}
