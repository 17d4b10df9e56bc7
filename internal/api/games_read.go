package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/service"

	"github.com/gin-gonic/gin"
)

// GetGame returns the projected view of a game for ?side= (default A).
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID := c.Param("gameID")
	side := game.Side(strings.ToUpper(strings.TrimSpace(c.DefaultQuery("side", string(game.SideA)))))
	view, err := service.GetView(h.repo, gameID, side)
	if err != nil {
		writeError(c, gameID, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListCards returns the card dataset in use.
func (h *GameHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.rules.Engine.Cards())
}

// ListLeaderboard returns the top bosses by wins (desc), limited to top 10 by default.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	stats, err := service.Leaderboard(h.repo, limit)
	if err != nil {
		logging.Error("failed to fetch leaderboard", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, stats)
}
