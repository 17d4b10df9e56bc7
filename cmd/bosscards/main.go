package main

import (
	"os"
	"time"

	"github.com/ericogr/boss-cards/internal/api"
	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/engine"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/service"
	"github.com/ericogr/boss-cards/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)
	repo := createRepositoryOrExit(cfg.Database.Path)

	e := engine.New(cfg.Cards,
		engine.WithRosterSize(cfg.Game.RosterSize),
		engine.WithOpeningHand(cfg.Game.OpeningHand),
	)
	rules := service.NewRules(e, cfg.Game.OpponentPriority, cfg.Game.ActionTimeout)

	startTimeoutScanner(repo, rules, 5*time.Second)

	router := gin.Default()
	api.NewGameHandler(repo, rules).Register(router)

	addr := cfg.Server.Address
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr:  addr,
		constants.LogFieldCount: len(cfg.Cards.Bosses),
		"action_timeout":        cfg.Game.ActionTimeout.String(),
		"build":                 version.String(),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
