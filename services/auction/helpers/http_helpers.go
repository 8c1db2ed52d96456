package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"freightbid/internal/auctionerrors"
	model "freightbid/internal/models"
	"freightbid/utils"

	"github.com/gin-gonic/gin"
)

// ActorContextKey is where the actor middleware stores the request identity.
const ActorContextKey = "actor"

// ActorFrom returns the request actor placed in the context by the identity
// middleware; a missing actor yields the zero Actor, which fails every guard.
func ActorFrom(c *gin.Context) model.Actor {
	if v, ok := c.Get(ActorContextKey); ok {
		if actor, ok := v.(model.Actor); ok {
			return actor
		}
	}
	return model.Actor{}
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrOfferNotFound):
		return http.StatusNotFound, "offer not found"
	case errors.Is(err, auctionerrors.ErrInvalidOffer):
		return http.StatusBadRequest, "invalid offer details"
	case errors.Is(err, auctionerrors.ErrOfferRejected):
		return http.StatusConflict, "offer does not beat the current leader"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed for offers"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "operation not allowed for this actor"
	case errors.Is(err, auctionerrors.ErrWrongStatus):
		return http.StatusConflict, "auction is not in the required status"
	case errors.Is(err, auctionerrors.ErrOfferMismatch):
		return http.StatusUnprocessableEntity, "offer does not belong to this auction"
	case errors.Is(err, auctionerrors.ErrAuctionHasOffers):
		return http.StatusConflict, "auction received offers"
	case errors.Is(err, auctionerrors.ErrCodeTaken):
		return http.StatusConflict, "auction code already in use"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
