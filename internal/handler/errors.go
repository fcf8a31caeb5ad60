package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/dto"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/logger"
)

// handleError maps domain errors to HTTP responses. Business-rule failures
// carry a human-readable message; unexpected failures get a generic body and
// full detail in the log only.
func handleError(c *gin.Context, err error) {
	var insufficient *domain.InsufficientSeatsError

	switch {
	case errors.As(err, &insufficient):
		remaining := insufficient.Remaining
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:     "insufficient_seats",
			Code:      "INSUFFICIENT_SEATS",
			Message:   err.Error(),
			Remaining: &remaining,
		})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_transition",
			Code:    "INVALID_TRANSITION",
			Message: "The requested status change is not allowed",
		})

	case domain.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})

	case errors.Is(err, domain.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "authentication_required",
			Code:    "UNAUTHORIZED",
			Message: "You must be signed in to perform this action",
		})

	case errors.Is(err, domain.ErrAdminRequired):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error:   "forbidden",
			Code:    "FORBIDDEN",
			Message: "You do not have permission to perform this action",
		})

	case domain.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		logger.Get().Error("payment gateway failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "gateway_error",
			Code:    "GATEWAY_ERROR",
			Message: "Payment provider is currently unavailable, please try again later",
		})

	default:
		logger.Get().Error("unhandled error", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Code:    "INTERNAL_ERROR",
			Message: "Something went wrong, please try again later",
		})
	}
}

// bindError reports a malformed request body
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "invalid_request",
		Code:    "INVALID_REQUEST",
		Message: err.Error(),
	})
}

// invalidID reports an unparseable path id
func invalidID(c *gin.Context, what string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "invalid_request",
		Code:    "INVALID_REQUEST",
		Message: what + " id must be a valid UUID",
	})
}
