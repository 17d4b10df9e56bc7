package api

import (
	"net/http"

	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateGame starts a new match and returns side A's view of it.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	g, st, err := service.StartGame(h.repo, h.rules, req)
	if err != nil {
		writeError(c, "", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		constants.JSONKeyGameID: g.ID,
		constants.JSONKeyView:   game.ViewFor(st, game.SideA),
	})
}
