package service

import (
	"errors"
	"time"

	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/engine"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/storage"
)

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrInvalidSide        = errors.New("side must be A or B")
	ErrSideControlledByAI = errors.New("side is controlled by the computer")
)

// maxComputerTurns bounds the computer loop. The snake round order gives a
// side at most two consecutive turns.
const maxComputerTurns = 4

// Rules bundles what the use-cases need besides storage.
type Rules struct {
	Engine        *engine.Engine
	Opponent      *engine.Opponent
	ActionTimeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRules builds Rules with the heuristic opponent using priority.
func NewRules(e *engine.Engine, priority []string, actionTimeout time.Duration) Rules {
	return Rules{
		Engine:        e,
		Opponent:      engine.NewOpponent(e, priority),
		ActionTimeout: actionTimeout,
		Now:           time.Now,
	}
}

func (r Rules) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func loadState(g *storage.GameRecord) (*game.State, error) {
	st, err := g.State()
	if err != nil {
		logging.Error("stored game state is unreadable", err, logging.Fields{constants.LogFieldGameID: g.ID})
		return nil, err
	}
	return st, nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrGameNotFound
	}
	return err
}

// playComputer lets the heuristic opponent move side B while it is to move.
func playComputer(r Rules, st *game.State) error {
	for i := 0; i < maxComputerTurns && !st.Status.Terminal() && st.Turn == game.SideB; i++ {
		if err := autoTurn(r, st, game.SideB); err != nil {
			return err
		}
	}
	return nil
}

// autoTurn plays one heuristic turn for side. A turn that wins the match
// before its closing end_turn is not an error.
func autoTurn(r Rules, st *game.State, side game.Side) error {
	err := r.Opponent.TakeTurn(st, side)
	if err != nil && st.Status.Terminal() {
		return nil
	}
	return err
}

// persist writes st into g, refreshes the idle deadline and, the first time
// a match is seen finished, records the boss statistics through tx.
func persist(tx storage.Repository, r Rules, g *storage.GameRecord, st *game.State) error {
	if err := g.SetState(st); err != nil {
		return err
	}
	if !g.Finished() {
		d := r.now().Add(r.ActionTimeout).UTC()
		g.ActionDeadline = &d
		return nil
	}
	g.ActionDeadline = nil
	if g.StatsCounted {
		return nil
	}
	if err := recordResults(tx, st); err != nil {
		return err
	}
	g.StatsCounted = true
	logging.Info("game finished", logging.Fields{
		constants.LogFieldGameID: g.ID,
		constants.LogFieldStatus: g.Status,
		constants.LogFieldRound:  st.Round,
	})
	return nil
}

func recordResults(tx storage.Repository, st *game.State) error {
	a, b := storage.ResultDraw, storage.ResultDraw
	switch st.Status {
	case game.StatusSideAWin:
		a, b = storage.ResultWin, storage.ResultLoss
	case game.StatusSideBWin:
		a, b = storage.ResultLoss, storage.ResultWin
	}
	if err := tx.RecordBossResult(st.SideA.Boss.Name, a); err != nil {
		return err
	}
	return tx.RecordBossResult(st.SideB.Boss.Name, b)
}

// logEngineErr logs invariant violations loudly and rejections quietly.
func logEngineErr(gameID string, side game.Side, a game.Action, err error) {
	fields := logging.Fields{
		constants.LogFieldGameID: gameID,
		constants.LogFieldSide:   string(side),
		constants.LogFieldCode:   string(engine.CodeOf(err)),
	}
	if a != nil {
		fields[constants.LogFieldAction] = string(a.Type())
	}
	if engine.IsInvariant(err) {
		logging.Error("engine invariant violated", err, fields)
		return
	}
	logging.Warn("action rejected", fields)
}
