package storage

import (
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a game record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

type Repository interface {
	CreateGame(g *GameRecord) error
	GetGame(id string) (*GameRecord, error)
	// WithGame loads the game inside a transaction, runs fn and saves the
	// record if fn returns nil. fn receives a repository bound to the same
	// transaction; any further writes must go through it.
	WithGame(id string, fn func(tx Repository, g *GameRecord) error) error
	// FindTimedOutGames returns active games whose action deadline is at or
	// before now.
	FindTimedOutGames(now time.Time) ([]GameRecord, error)
	// RecordBossResult adds one finished match to the boss's statistics.
	RecordBossResult(boss string, result Result) error
	// TopBosses returns up to limit bosses ordered by wins, then matches
	// played.
	TopBosses(limit int) ([]BossStat, error)
}
