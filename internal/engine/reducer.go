package engine

import "github.com/ericogr/boss-cards/internal/game"

// ApplyAction validates a and, if accepted, applies it to st in place. A
// rejected or failed action leaves st unchanged. The caller must hold
// exclusive access to st for the duration of the call.
func (e *Engine) ApplyAction(st *game.State, side game.Side, a game.Action) error {
	if err := e.Validate(st, side, a); err != nil {
		return err
	}
	switch v := a.(type) {
	case game.UseAction:
		return e.applyUse(st, side, v)
	case game.PlaySupport:
		return e.applySupport(st, side, v)
	case game.PlayField:
		return e.applyField(st, side, v)
	case game.Equip:
		return e.applyEquip(st, side, v)
	case game.PlayEvent:
		return e.applyEvent(st, side, v)
	case game.EndTurn:
		return e.endTurn(st, side)
	}
	return ErrUnknownAction
}

// EndTurn is shorthand for applying game.EndTurn{}.
func (e *Engine) EndTurn(st *game.State, side game.Side) error {
	return e.ApplyAction(st, side, game.EndTurn{})
}
