package engine

import (
	"fmt"

	"github.com/ericogr/boss-cards/internal/game"
)

// endTurn hands the turn over or, when the round's second mover ends,
// resolves both bosses and opens the next round.
func (e *Engine) endTurn(st *game.State, side game.Side) error {
	if side == st.RoundStarter {
		st.Append(game.LogEntry{Kind: game.LogEndTurn, Side: side})
		st.Turn = side.Other()
		e.startTurn(st, st.Turn, true)
		return nil
	}

	// Both bosses must exist before anything is written.
	for _, s := range []game.Side{game.SideA, game.SideB} {
		if _, ok := e.cards.Boss(st.Player(s).Boss.Name); !ok {
			return invariant(CodeInvariantBossMissing, "boss %q missing from dataset", st.Player(s).Boss.Name)
		}
	}

	st.Append(game.LogEntry{Kind: game.LogEndTurn, Side: side})
	st.Phase = game.PhaseBoss
	order := []game.Side{st.RoundStarter, st.RoundStarter.Other()}
	killer := side
	for _, s := range order {
		alive := !st.Opponent(s).Boss.Defeated()
		if _, err := e.ResolveBoss(st, s); err != nil {
			return err
		}
		if alive && st.Opponent(s).Boss.Defeated() {
			killer = s
		}
	}
	st.Phase = game.PhaseDraw

	if e.settle(st, killer) {
		return nil
	}
	st.RoundStarter = st.RoundStarter.Other()
	st.Turn = st.RoundStarter
	st.Round++
	e.startTurn(st, st.Turn, true)
	return nil
}

// startTurn runs a side's start-of-turn bookkeeping: +1 AP per living unit
// up to its cap, clear "acted", reset the support flag and draw one card.
func (e *Engine) startTurn(st *game.State, side game.Side, draw bool) {
	p := st.Player(side)
	for i := range p.Adv {
		u := &p.Adv[i]
		u.ClearStatus(game.StatusActed)
		if u.Alive() && u.AP < u.MaxAP {
			u.AP++
		}
	}
	p.Flags.SupportUsedThisTurn = false
	drawn := 0
	if draw {
		drawn = p.Draw(1)
	}
	st.Append(game.LogEntry{Kind: game.LogTurnStart, Turn: side, Side: side, Value: drawn})
}

// settle applies the win rules after the boss phase. Two fallen bosses is a
// draw; one fallen boss gives the other side the win.
func (e *Engine) settle(st *game.State, lastActor game.Side) bool {
	aDown, bDown := st.SideA.Boss.Defeated(), st.SideB.Boss.Defeated()
	switch {
	case aDown && bDown:
		e.finish(st, game.StatusDraw, lastActor)
	case aDown:
		e.finish(st, game.StatusSideBWin, lastActor)
	case bDown:
		e.finish(st, game.StatusSideAWin, lastActor)
	default:
		return false
	}
	return true
}

// finish moves the game into a terminal status. by is the side whose move
// dealt the final blow.
func (e *Engine) finish(st *game.State, status game.Status, by game.Side) {
	st.Status = status
	st.Phase = game.PhaseDraw
	st.Append(game.LogEntry{
		Kind:    game.LogGameOver,
		Side:    by,
		Message: fmt.Sprintf("game over: %s", status),
	})
}
