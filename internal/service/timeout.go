package service

import (
	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/storage"
)

// HandleTimedOutGame plays the idle side's turn with the heuristic opponent.
// The deadline is checked again inside the transaction so a move that
// landed after the scan wins over the timeout.
func HandleTimedOutGame(repo storage.Repository, r Rules, gameID string) error {
	err := repo.WithGame(gameID, func(tx storage.Repository, g *storage.GameRecord) error {
		if g.Finished() || g.ActionDeadline == nil || g.ActionDeadline.After(r.now()) {
			return nil
		}
		st, err := loadState(g)
		if err != nil {
			return err
		}
		idle := st.Turn
		logging.Info("auto-playing idle side", logging.Fields{
			constants.LogFieldGameID: g.ID,
			constants.LogFieldSide:   string(idle),
			constants.LogFieldRound:  st.Round,
		})
		if err := autoTurn(r, st, idle); err != nil {
			logEngineErr(g.ID, idle, game.EndTurn{}, err)
			return err
		}
		if g.VsAI {
			if err := playComputer(r, st); err != nil {
				logEngineErr(g.ID, game.SideB, nil, err)
				return err
			}
		}
		return persist(tx, r, g, st)
	})
	return mapRepoErr(err)
}
