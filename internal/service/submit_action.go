package service

import (
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/storage"
)

// SubmitAction applies a player's action inside the game's transaction and,
// for games against the computer, lets it move whenever side B is to play.
// Rejected actions leave the stored game untouched.
func SubmitAction(repo storage.Repository, r Rules, gameID string, side game.Side, a game.Action) (*game.State, error) {
	if !side.Valid() {
		return nil, ErrInvalidSide
	}
	var out *game.State
	err := repo.WithGame(gameID, func(tx storage.Repository, g *storage.GameRecord) error {
		if g.VsAI && side == game.SideB {
			return ErrSideControlledByAI
		}
		st, err := loadState(g)
		if err != nil {
			return err
		}
		if err := r.Engine.ApplyAction(st, side, a); err != nil {
			logEngineErr(g.ID, side, a, err)
			return err
		}
		if g.VsAI {
			if err := playComputer(r, st); err != nil {
				logEngineErr(g.ID, game.SideB, nil, err)
				return err
			}
		}
		if err := persist(tx, r, g, st); err != nil {
			return err
		}
		out = st
		return nil
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return out, nil
}

// ValidateAction reports whether a would be accepted right now without
// changing anything.
func ValidateAction(repo storage.Repository, r Rules, gameID string, side game.Side, a game.Action) error {
	if !side.Valid() {
		return ErrInvalidSide
	}
	g, err := repo.GetGame(gameID)
	if err != nil {
		return mapRepoErr(err)
	}
	if g.VsAI && side == game.SideB {
		return ErrSideControlledByAI
	}
	st, err := loadState(g)
	if err != nil {
		return err
	}
	return r.Engine.Validate(st, side, a)
}
