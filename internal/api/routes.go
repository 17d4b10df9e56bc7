package api

import (
	"github.com/ericogr/boss-cards/internal/constants"

	"github.com/gin-gonic/gin"
)

// Register mounts every endpoint under /api.
func (h *GameHandler) Register(router *gin.Engine) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteCards, h.ListCards)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)

		apiRoutes.POST(constants.RouteGames, h.CreateGame)
		apiRoutes.GET(constants.RouteGameByID, h.GetGame)
		apiRoutes.POST(constants.RouteGameValidate, h.ValidateAction)
		apiRoutes.POST(constants.RouteGameAction, h.SubmitAction)
	}
}
