package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ericogr/boss-cards/internal/game"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRecord is one persisted match. The full engine state lives in
// StateJSON; the remaining columns mirror the parts of it that queries
// filter on.
type GameRecord struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Seed      string `json:"seed"`
	BossA     string `json:"boss_a"`
	BossB     string `json:"boss_b"`
	VsAI      bool   `json:"vs_ai"`
	Status    string `gorm:"index" json:"status"`
	Turn      string `json:"turn"`
	Round     int    `json:"round"`
	StateJSON string `gorm:"type:text" json:"-"`
	// ActionDeadline is when the side to move is considered idle. Nil for
	// finished games.
	ActionDeadline *time.Time `gorm:"index" json:"action_deadline,omitempty"`
	StatsCounted   bool       `json:"stats_counted"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (GameRecord) TableName() string { return "games" }

// BeforeSave assigns an identifier to records created without one.
func (g *GameRecord) BeforeSave(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// State decodes the stored engine state.
func (g *GameRecord) State() (*game.State, error) {
	var st game.State
	if err := json.Unmarshal([]byte(g.StateJSON), &st); err != nil {
		return nil, fmt.Errorf("decode state of game %s: %w", g.ID, err)
	}
	return &st, nil
}

// SetState encodes st into the record and refreshes the mirrored columns.
func (g *GameRecord) SetState(st *game.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state of game %s: %w", g.ID, err)
	}
	g.StateJSON = string(b)
	g.Status = string(st.Status)
	g.Turn = string(st.Turn)
	g.Round = st.Round
	return nil
}

// Finished reports whether the stored match has ended.
func (g *GameRecord) Finished() bool {
	return game.Status(g.Status).Terminal()
}

// BossStat accumulates the results of every finished match a boss took
// part in.
type BossStat struct {
	Boss      string    `gorm:"primaryKey" json:"boss"`
	Played    int       `json:"played"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	Draws     int       `json:"draws"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BossStat) TableName() string { return "boss_stats" }

// Result is a single boss's outcome in one finished match.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)
