package game

// Side identifies one of the two competing players.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool { return s == SideA || s == SideB }

// Phase is the sub-step of the active side's turn.
type Phase string

const (
	// PhaseDraw is the action phase of the side to move.
	PhaseDraw Phase = "draw"
	// PhaseBoss is entered from end_turn while both bosses resolve and is
	// left again before the transition returns.
	PhaseBoss Phase = "boss"
)

// Status is the overall lifecycle of a match.
type Status string

const (
	StatusActive   Status = "active"
	StatusSideAWin Status = "sideA_win"
	StatusSideBWin Status = "sideB_win"
	StatusDraw     Status = "draw"
)

// Terminal reports whether no further actions are accepted.
func (s Status) Terminal() bool { return s != StatusActive }

// WinFor returns the win status code for side.
func WinFor(side Side) Status {
	if side == SideA {
		return StatusSideAWin
	}
	return StatusSideBWin
}

// ModifierKind names a deferred boss modifier queued by a support card.
type ModifierKind string

const (
	ModifierDice     ModifierKind = "dice_mod"
	ModifierDamageUp ModifierKind = "damage_up"
)

// PendingModifier is one entry of a boss's deferred-modifier queue. The
// queue is consumed as a whole at the start of that boss's next resolution.
type PendingModifier struct {
	Kind   ModifierKind `json:"kind"`
	Value  int          `json:"value"`
	Source string       `json:"source"`
}

type Boss struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	HP    int               `json:"hp"`
	MaxHP int               `json:"max_hp"`
	Stash []PendingModifier `json:"stash,omitempty"`
}

// Defeated reports whether the boss has been reduced to zero.
func (b *Boss) Defeated() bool { return b.HP <= 0 }

// Status tags carried by adventurers.
const (
	StatusActed = "acted"
	// BuffTagPrefix starts every buff tag; the remainder is "x<multiplier>".
	BuffTagPrefix = "buff:"
)

type Adventurer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	HP        int      `json:"hp"`
	MaxHP     int      `json:"max_hp"`
	Atk       int      `json:"atk"`
	AP        int      `json:"ap"`
	MaxAP     int      `json:"max_ap"`
	Statuses  []string `json:"statuses"`
	Equipment []string `json:"equipment"`
}

// Alive reports whether the unit can still act or be targeted.
func (a *Adventurer) Alive() bool { return a.HP > 0 }

// HasStatus reports whether tag is present.
func (a *Adventurer) HasStatus(tag string) bool {
	for _, s := range a.Statuses {
		if s == tag {
			return true
		}
	}
	return false
}

// MarkStatus adds tag once; marker tags have set semantics.
func (a *Adventurer) MarkStatus(tag string) {
	if !a.HasStatus(tag) {
		a.Statuses = append(a.Statuses, tag)
	}
}

// ClearStatus removes every occurrence of tag.
func (a *Adventurer) ClearStatus(tag string) {
	out := a.Statuses[:0]
	for _, s := range a.Statuses {
		if s != tag {
			out = append(out, s)
		}
	}
	a.Statuses = out
}

type Flags struct {
	SupportUsedThisTurn bool `json:"support_used_this_turn"`
}

// PlayerSide is one half of the board. Hand, Deck and Discard hold card
// names; a name is in at most one of them at any instant.
type PlayerSide struct {
	Boss      Boss         `json:"boss"`
	Adv       []Adventurer `json:"adv"`
	Hand      []string     `json:"hand"`
	Deck      []string     `json:"deck"`
	Discard   []string     `json:"discard"`
	FieldBoss string       `json:"field_boss,omitempty"`
	FieldAdv  string       `json:"field_adv,omitempty"`
	Flags     Flags        `json:"flags"`
}

// RNGState scopes dice rolls to a game. RollNo is incremented exactly once
// per die drawn.
type RNGState struct {
	Seed   string `json:"seed"`
	RollNo int    `json:"roll_no"`
}

// State is the single mutable aggregate of a match. A transition owns it
// exclusively; callers serialise access per game.
type State struct {
	ID           string     `json:"id"`
	Turn         Side       `json:"turn"`
	Phase        Phase      `json:"phase"`
	Status       Status     `json:"status"`
	RoundStarter Side       `json:"round_starter"`
	Round        int        `json:"round"`
	SideA        PlayerSide `json:"side_a"`
	SideB        PlayerSide `json:"side_b"`
	RNG          RNGState   `json:"rng"`
	Log          []LogEntry `json:"log"`
}

// Player returns the side aggregate for s.
func (st *State) Player(s Side) *PlayerSide {
	if s == SideB {
		return &st.SideB
	}
	return &st.SideA
}

// Opponent returns the side aggregate facing s.
func (st *State) Opponent(s Side) *PlayerSide { return st.Player(s.Other()) }

// Append records an event, stamping its sequence number and turn context.
func (st *State) Append(e LogEntry) {
	e.Seq = len(st.Log) + 1
	e.Round = st.Round
	if e.Turn == "" {
		e.Turn = st.Turn
	}
	st.Log = append(st.Log, e)
}
