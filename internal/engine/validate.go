package engine

import (
	"github.com/ericogr/boss-cards/internal/cards"
	"github.com/ericogr/boss-cards/internal/game"
)

// Validate checks whether side may play a against st. It never mutates st.
// Game-over and turn checks come first so they always win over
// action-specific reasons.
func (e *Engine) Validate(st *game.State, side game.Side, a game.Action) error {
	if st.Status.Terminal() {
		return ErrGameOver
	}
	if side != st.Turn {
		return ErrNotYourTurn
	}
	if st.Phase != game.PhaseDraw {
		return ErrWrongPhase
	}
	p := st.Player(side)

	switch v := a.(type) {
	case game.UseAction:
		u := p.Unit(v.Unit)
		if u == nil || !u.Alive() || u.HasStatus(game.StatusActed) {
			return ErrUnitNotAvailable
		}
		def, ok := e.cards.Action(u.Name, v.Action)
		if !ok {
			return ErrActionNotFound
		}
		if u.AP < def.Cost {
			return ErrAPNotEnough
		}
		return nil

	case game.PlaySupport:
		if p.Flags.SupportUsedThisTurn {
			return ErrSupportAlreadyUsed
		}
		if !p.InHand(v.Card) {
			return ErrCardNotInHand
		}
		def, ok := e.cards.Support(v.Card)
		if !ok {
			return ErrCardTypeMismatch
		}
		switch v.Mode {
		case game.ModeAdventurer:
			if def.Adventurer == nil {
				return reject(CodeCardTypeMismatch, "%s has no adventurer effect", def.Name)
			}
			if needsSingleTarget(def.Adventurer) && supportTarget(p, v.Target) == nil {
				return ErrInvalidTarget
			}
		case game.ModeBoss:
			if def.Boss == nil {
				return reject(CodeCardTypeMismatch, "%s has no boss effect", def.Name)
			}
		default:
			return reject(CodeUnknownAction, "unknown support mode %q", v.Mode)
		}
		return nil

	case game.PlayField:
		if err := e.requireCard(p, v.Card, cards.KindField); err != nil {
			return err
		}
		if v.Side != game.FieldSlotBoss && v.Side != game.FieldSlotAdventurer {
			return reject(CodeUnknownAction, "unknown field side %q", v.Side)
		}
		return nil

	case game.Equip:
		if err := e.requireCard(p, v.Card, cards.KindEquipment); err != nil {
			return err
		}
		if p.Unit(v.Unit) == nil {
			return ErrEquipTargetNotFound
		}
		return nil

	case game.PlayEvent:
		return e.requireCard(p, v.Card, cards.KindEvent)

	case game.EndTurn:
		return nil
	}
	return ErrUnknownAction
}

func (e *Engine) requireCard(p *game.PlayerSide, card string, kind cards.CardKind) error {
	if !p.InHand(card) {
		return ErrCardNotInHand
	}
	if k, ok := e.cards.KindOf(card); !ok || k != kind {
		return reject(CodeCardTypeMismatch, "%s is not a %s card", card, kind)
	}
	return nil
}
