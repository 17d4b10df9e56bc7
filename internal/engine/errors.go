package engine

import (
	"errors"
	"fmt"
)

// Kind separates expected rejections from internal consistency failures.
type Kind string

const (
	// KindRejection is a failed precondition; the caller should surface the
	// reason and nothing was changed.
	KindRejection Kind = "rejection"
	// KindInvariant is a lookup that validation should have caught. It is
	// fatal to the request, not to the process.
	KindInvariant Kind = "invariant"
)

// Code is the stable symbolic reason carried by every engine failure.
type Code string

const (
	CodeGameOver               Code = "game_over"
	CodeNotYourTurn            Code = "not_your_turn"
	CodeWrongPhase             Code = "wrong_phase"
	CodeUnitNotAvailable       Code = "unit_not_available"
	CodeActionNotFound         Code = "action_not_found"
	CodeAPNotEnough            Code = "ap_not_enough"
	CodeCardNotInHand          Code = "card_not_in_hand"
	CodeCardTypeMismatch       Code = "card_type_mismatch"
	CodeSupportAlreadyUsed     Code = "support_already_used"
	CodeEquipTargetNotFound    Code = "equip_target_not_found"
	CodeUnknownAction          Code = "unknown_action"
	CodeInvalidTarget          Code = "invalid_target"
	CodeBossNotFound           Code = "boss_not_found"
	CodeInvariantUnitMissing   Code = "invariant_unit_missing"
	CodeInvariantActionMissing Code = "invariant_action_missing"
	CodeInvariantCardMissing   Code = "invariant_card_missing"
	CodeInvariantBossMissing   Code = "invariant_boss_missing"
)

// Error is the typed failure returned by validation and transitions.
// errors.Is matches on Code, so callers can compare against the sentinels
// below regardless of the message.
type Error struct {
	Code    Code
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrGameOver            = &Error{Code: CodeGameOver, Message: "game is over", Kind: KindRejection}
	ErrNotYourTurn         = &Error{Code: CodeNotYourTurn, Message: "not your turn", Kind: KindRejection}
	ErrWrongPhase          = &Error{Code: CodeWrongPhase, Message: "actions are locked while bosses resolve", Kind: KindRejection}
	ErrUnitNotAvailable    = &Error{Code: CodeUnitNotAvailable, Message: "unit is not available", Kind: KindRejection}
	ErrActionNotFound      = &Error{Code: CodeActionNotFound, Message: "unit has no such action", Kind: KindRejection}
	ErrAPNotEnough         = &Error{Code: CodeAPNotEnough, Message: "not enough action points", Kind: KindRejection}
	ErrCardNotInHand       = &Error{Code: CodeCardNotInHand, Message: "card is not in hand", Kind: KindRejection}
	ErrCardTypeMismatch    = &Error{Code: CodeCardTypeMismatch, Message: "card cannot be played this way", Kind: KindRejection}
	ErrSupportAlreadyUsed  = &Error{Code: CodeSupportAlreadyUsed, Message: "support card already used this turn", Kind: KindRejection}
	ErrEquipTargetNotFound = &Error{Code: CodeEquipTargetNotFound, Message: "equip target not found", Kind: KindRejection}
	ErrUnknownAction       = &Error{Code: CodeUnknownAction, Message: "unknown action", Kind: KindRejection}
	ErrInvalidTarget       = &Error{Code: CodeInvalidTarget, Message: "invalid target", Kind: KindRejection}
	ErrBossNotFound        = &Error{Code: CodeBossNotFound, Message: "boss not found", Kind: KindRejection}
)

func reject(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Kind: KindRejection}
}

func invariant(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Kind: KindInvariant}
}

// CodeOf extracts the engine code from err, or "" if err is not an engine
// error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsRejection reports whether err is an expected validation failure.
func IsRejection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRejection
}

// IsInvariant reports whether err signals an internal inconsistency.
func IsInvariant(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvariant
}
