package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bid4service/internal/marketerrors"
	"bid4service/internal/models"
	"bid4service/utils"
)

// CurrentUser reads the identity resolved by the auth middleware.
func CurrentUser(c *gin.Context) (userID, role string) {
	return c.GetString("user_id"), c.GetString("user_role")
}

// IsAdmin reports whether the resolved role is administrative.
func IsAdmin(role string) bool {
	return role == models.RoleAdmin
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
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "not permitted"
	case errors.Is(err, marketerrors.ErrJobNotFound),
		errors.Is(err, marketerrors.ErrBidNotFound),
		errors.Is(err, marketerrors.ErrProjectNotFound),
		errors.Is(err, marketerrors.ErrMilestoneNotFound),
		errors.Is(err, marketerrors.ErrPaymentNotFound),
		errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, marketerrors.ErrDuplicateBid):
		return http.StatusConflict, "provider already has a live bid on this job"
	case errors.Is(err, marketerrors.ErrJobNotBiddable):
		return http.StatusConflict, "job is no longer accepting bids"
	case errors.Is(err, marketerrors.ErrBidNotPending):
		return http.StatusConflict, "bid is not pending"
	case errors.Is(err, marketerrors.ErrAlreadyFunded):
		return http.StatusConflict, "escrow already funded"
	case errors.Is(err, marketerrors.ErrAlreadyReleased):
		return http.StatusConflict, "milestone payment already released"
	case errors.Is(err, marketerrors.ErrNothingRemaining):
		return http.StatusConflict, "no remaining amount to release"
	case errors.Is(err, marketerrors.ErrEscrowExceeded):
		return http.StatusConflict, "amount exceeds the agreed contract"
	case errors.Is(err, marketerrors.ErrConflict):
		return http.StatusConflict, "operation conflicts with current state"
	case errors.Is(err, marketerrors.ErrGateway):
		return http.StatusBadGateway, "payment processor error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
