package main

import (
	"time"

	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/service"
	"github.com/ericogr/boss-cards/internal/storage"
)

// startTimeoutScanner periodically finds games whose side to move went idle
// and delegates each one to service.HandleTimedOutGame.
func startTimeoutScanner(repo storage.Repository, rules service.Rules, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for range ticker.C {
			games, err := repo.FindTimedOutGames(time.Now())
			if err != nil {
				logging.Error("timeout scanner failed to list games", err, nil)
				continue
			}
			// process each game sequentially (keeps DB safe under SQLite)
			for _, g := range games {
				if err := service.HandleTimedOutGame(repo, rules, g.ID); err != nil {
					logging.Error("failed to auto-play idle game", err, logging.Fields{constants.LogFieldGameID: g.ID})
				}
			}
		}
	}()
}
