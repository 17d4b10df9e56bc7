package storage

import (
	"time"

	"github.com/ericogr/boss-cards/internal/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateGame(g *GameRecord) error {
	return r.db.Create(g).Error
}

func (r *sqliteRepository) GetGame(id string) (*GameRecord, error) {
	var g GameRecord
	if err := r.db.Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *sqliteRepository) WithGame(id string, fn func(tx Repository, g *GameRecord) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var g GameRecord
		if err := tx.Where("id = ?", id).First(&g).Error; err != nil {
			return err
		}
		if err := fn(&sqliteRepository{db: tx}, &g); err != nil {
			return err
		}
		return tx.Save(&g).Error
	})
}

func (r *sqliteRepository) FindTimedOutGames(now time.Time) ([]GameRecord, error) {
	var games []GameRecord
	err := r.db.
		Where("status = ? AND action_deadline IS NOT NULL AND action_deadline <= ?", string(game.StatusActive), now.UTC()).
		Order("action_deadline ASC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *sqliteRepository) RecordBossResult(boss string, result Result) error {
	row := BossStat{Boss: boss, Played: 1}
	updates := map[string]interface{}{
		"played":     gorm.Expr("played + 1"),
		"updated_at": time.Now().UTC(),
	}
	switch result {
	case ResultWin:
		row.Wins = 1
		updates["wins"] = gorm.Expr("wins + 1")
	case ResultLoss:
		row.Losses = 1
		updates["losses"] = gorm.Expr("losses + 1")
	case ResultDraw:
		row.Draws = 1
		updates["draws"] = gorm.Expr("draws + 1")
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "boss"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&row).Error
}

// TopBosses returns top N bosses ordered by Wins desc, then Played desc.
func (r *sqliteRepository) TopBosses(limit int) ([]BossStat, error) {
	if limit <= 0 {
		limit = 10
	}
	stats := []BossStat{}
	if err := r.db.Model(&BossStat{}).
		Order("wins DESC").
		Order("played DESC").
		Order("boss ASC").
		Limit(limit).
		Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
