package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/boss-cards/internal/constants"
	"github.com/ericogr/boss-cards/internal/engine"
	"github.com/ericogr/boss-cards/internal/logging"
	"github.com/ericogr/boss-cards/internal/service"

	"github.com/gin-gonic/gin"
)

var rejectionMessages = map[engine.Code]string{
	engine.CodeGameOver:            constants.ErrGameOver,
	engine.CodeNotYourTurn:         constants.ErrNotYourTurn,
	engine.CodeWrongPhase:          constants.ErrWrongPhase,
	engine.CodeUnitNotAvailable:    constants.ErrUnitNotAvailable,
	engine.CodeActionNotFound:      constants.ErrActionNotFound,
	engine.CodeAPNotEnough:         constants.ErrAPNotEnough,
	engine.CodeCardNotInHand:       constants.ErrCardNotInHand,
	engine.CodeCardTypeMismatch:    constants.ErrCardTypeMismatch,
	engine.CodeSupportAlreadyUsed:  constants.ErrSupportAlreadyUsed,
	engine.CodeEquipTargetNotFound: constants.ErrEquipTargetNotFound,
	engine.CodeUnknownAction:       constants.ErrUnknownAction,
	engine.CodeInvalidTarget:       constants.ErrInvalidTarget,
	engine.CodeBossNotFound:        constants.ErrBossNotFound,
}

// rejectionStatus is 409 for turn-order conflicts and 422 for everything
// else the rules refuse.
func rejectionStatus(code engine.Code) int {
	switch code {
	case engine.CodeGameOver, engine.CodeNotYourTurn, engine.CodeWrongPhase:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

// rejectionBody renders an engine rejection for clients.
func rejectionBody(err error) gin.H {
	code := engine.CodeOf(err)
	msg, ok := rejectionMessages[code]
	if !ok {
		msg = constants.ErrInvalidAction
	}
	return gin.H{constants.JSONKeyError: msg, constants.JSONKeyCode: string(code)}
}

// writeError maps service and engine failures onto HTTP responses.
// Anything unexpected becomes a generic 500 and is logged with its code.
func writeError(c *gin.Context, gameID string, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrGameNotFound})
	case errors.Is(err, service.ErrInvalidSide):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSide})
	case errors.Is(err, service.ErrSideControlledByAI):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrSideControlledByAI})
	case engine.IsRejection(err):
		c.JSON(rejectionStatus(engine.CodeOf(err)), rejectionBody(err))
	default:
		logging.Error("request failed", err, logging.Fields{
			constants.LogFieldGameID: gameID,
			constants.LogFieldCode:   string(engine.CodeOf(err)),
			constants.LogFieldPath:   c.FullPath(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrServerError})
	}
}
