package api

import (
	"net/http"
	"strings"

	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/engine"
	"github.com/ericogr/boss-cards/internal/game"
	"github.com/ericogr/boss-cards/internal/service"

	"github.com/gin-gonic/gin"
)

type ActionRequest struct {
	Side   string         `json:"side" binding:"required"`
	Action *game.Envelope `json:"action" binding:"required"`
}

// bindAction decodes the request body. It writes the 400 response itself
// and reports false when the body is unusable.
func bindAction(c *gin.Context) (game.Side, game.Action, bool) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == nil || req.Action.Action == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidAction})
		return "", nil, false
	}
	side := game.Side(strings.ToUpper(strings.TrimSpace(req.Side)))
	if !side.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSide})
		return "", nil, false
	}
	return side, req.Action.Action, true
}

// SubmitAction applies one action and returns the acting side's view.
func (h *GameHandler) SubmitAction(c *gin.Context) {
	gameID := c.Param("gameID")
	side, action, ok := bindAction(c)
	if !ok {
		return
	}
	st, err := service.SubmitAction(h.repo, h.rules, gameID, side, action)
	if err != nil {
		writeError(c, gameID, err)
		return
	}
	c.JSON(http.StatusOK, game.ViewFor(st, side))
}

// ValidateAction reports whether an action would be accepted. Rejections
// are a normal answer here, not an HTTP error.
func (h *GameHandler) ValidateAction(c *gin.Context) {
	gameID := c.Param("gameID")
	side, action, ok := bindAction(c)
	if !ok {
		return
	}
	err := service.ValidateAction(h.repo, h.rules, gameID, side, action)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyOK: true})
	case engine.IsRejection(err):
		body := rejectionBody(err)
		body[constants.JSONKeyOK] = false
		c.JSON(http.StatusOK, body)
	default:
		writeError(c, gameID, err)
	}
}
