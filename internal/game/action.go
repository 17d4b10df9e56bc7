package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ActionType is the wire tag of an action variant.
type ActionType string

const (
	ActionUse     ActionType = "use_action"
	ActionSupport ActionType = "play_support"
	ActionField   ActionType = "play_field"
	ActionEquip   ActionType = "equip"
	ActionEvent   ActionType = "play_event"
	ActionEndTurn ActionType = "end_turn"
)

// ErrUnknownActionType is returned when decoding an unrecognised tag.
var ErrUnknownActionType = errors.New("unknown action type")

// Action is the closed set of moves a side can submit. Only the variants
// declared in this package implement it.
type Action interface {
	Type() ActionType
	isAction()
}

// UseAction spends a unit's AP on one of its catalog actions.
type UseAction struct {
	Unit   string `json:"unit"`
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

// SupportMode selects which face of a support card is played.
type SupportMode string

const (
	ModeAdventurer SupportMode = "adventurer"
	ModeBoss       SupportMode = "boss"
)

type PlaySupport struct {
	Card   string      `json:"card"`
	Mode   SupportMode `json:"mode"`
	Target string      `json:"target,omitempty"`
}

// FieldSlot selects which field slot a field card occupies.
type FieldSlot string

const (
	FieldSlotBoss       FieldSlot = "boss"
	FieldSlotAdventurer FieldSlot = "adventurer"
)

type PlayField struct {
	Card string    `json:"card"`
	Side FieldSlot `json:"side"`
}

type Equip struct {
	Card string `json:"card"`
	Unit string `json:"unit"`
}

type PlayEvent struct {
	Card string `json:"card"`
}

type EndTurn struct{}

func (UseAction) Type() ActionType   { return ActionUse }
func (PlaySupport) Type() ActionType { return ActionSupport }
func (PlayField) Type() ActionType   { return ActionField }
func (Equip) Type() ActionType       { return ActionEquip }
func (PlayEvent) Type() ActionType   { return ActionEvent }
func (EndTurn) Type() ActionType     { return ActionEndTurn }

func (UseAction) isAction()   {}
func (PlaySupport) isAction() {}
func (PlayField) isAction()   {}
func (Equip) isAction()       {}
func (PlayEvent) isAction()   {}
func (EndTurn) isAction()     {}

// DecodeAction parses a {"type": ...} tagged JSON object into its variant.
func DecodeAction(b []byte) (Action, error) {
	var tag struct {
		Type ActionType `json:"type"`
	}
	if err := json.Unmarshal(b, &tag); err != nil {
		return nil, err
	}
	var a Action
	var err error
	switch tag.Type {
	case ActionUse:
		var v UseAction
		err = json.Unmarshal(b, &v)
		a = v
	case ActionSupport:
		var v PlaySupport
		err = json.Unmarshal(b, &v)
		a = v
	case ActionField:
		var v PlayField
		err = json.Unmarshal(b, &v)
		a = v
	case ActionEquip:
		var v Equip
		err = json.Unmarshal(b, &v)
		a = v
	case ActionEvent:
		var v PlayEvent
		err = json.Unmarshal(b, &v)
		a = v
	case ActionEndTurn:
		a = EndTurn{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActionType, tag.Type)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeAction renders a variant with its type tag.
func EncodeAction(a Action) ([]byte, error) {
	if a == nil {
		return nil, ErrUnknownActionType
	}
	body, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	m["type"] = a.Type()
	return json.Marshal(m)
}

// Envelope adapts Action to encoding/json so it can sit inside request
// payloads.
type Envelope struct {
	Action Action
}

func (e *Envelope) UnmarshalJSON(b []byte) error {
	a, err := DecodeAction(b)
	if err != nil {
		return err
	}
	e.Action = a
	return nil
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	return EncodeAction(e.Action)
}
