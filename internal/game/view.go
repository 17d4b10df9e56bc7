package game

// SideView is a PlayerSide with private zones reduced to counts. Hand is
// nil unless the viewer owns the side.
type SideView struct {
	Boss        Boss         `json:"boss"`
	Adv         []Adventurer `json:"adv"`
	Hand        []string     `json:"hand,omitempty"`
	HandCount   int          `json:"hand_count"`
	DeckCount   int          `json:"deck_count"`
	Discard     []string     `json:"discard"`
	FieldBoss   string       `json:"field_boss,omitempty"`
	FieldAdv    string       `json:"field_adv,omitempty"`
	SupportUsed bool         `json:"support_used_this_turn"`
}

// View is what one side is allowed to see of a State.
type View struct {
	ID           string     `json:"id"`
	Viewer       Side       `json:"viewer"`
	Turn         Side       `json:"turn"`
	Phase        Phase      `json:"phase"`
	Status       Status     `json:"status"`
	RoundStarter Side       `json:"round_starter"`
	Round        int        `json:"round"`
	You          SideView   `json:"you"`
	Opponent     SideView   `json:"opponent"`
	RollNo       int        `json:"roll_no"`
	Log          []LogEntry `json:"log"`
}

// ViewFor projects st for viewer. The seed is never exposed so future dice
// cannot be predicted; the opponent's hand and both decks are counts only.
func ViewFor(st *State, viewer Side) View {
	return View{
		ID:           st.ID,
		Viewer:       viewer,
		Turn:         st.Turn,
		Phase:        st.Phase,
		Status:       st.Status,
		RoundStarter: st.RoundStarter,
		Round:        st.Round,
		You:          projectSide(st.Player(viewer), true),
		Opponent:     projectSide(st.Opponent(viewer), false),
		RollNo:       st.RNG.RollNo,
		Log:          append([]LogEntry(nil), st.Log...),
	}
}

func projectSide(p *PlayerSide, own bool) SideView {
	v := SideView{
		Boss:        p.Boss,
		Adv:         append([]Adventurer(nil), p.Adv...),
		HandCount:   len(p.Hand),
		DeckCount:   len(p.Deck),
		Discard:     append([]string(nil), p.Discard...),
		FieldBoss:   p.FieldBoss,
		FieldAdv:    p.FieldAdv,
		SupportUsed: p.Flags.SupportUsedThisTurn,
	}
	if own {
		v.Hand = append([]string(nil), p.Hand...)
	}
	return v
}
