package serverutils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"style-match-be/internal/pkg/apperror"
	"style-match-be/internal/pkg/logger"
	"style-match-be/pkg/embedding"
	"style-match-be/pkg/pinterest"
)

// ErrorHandler renders any error returned by a handler as an ErrorBody.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		appErr := toAppError(err)

		details := map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": appErr.Status,
			"error":  err.Error(),
		}
		if appErr.Status >= http.StatusInternalServerError {
			log.Error("HTTP", "Request failed", details)
		} else {
			log.Warn("HTTP", "Request rejected", details)
		}

		return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr))
	}
}

func toAppError(err error) *apperror.Error {
	if appErr, ok := apperror.As(err); ok {
		return appErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &apperror.Error{Status: fiberErr.Code, Message: fiberErr.Message}
	}

	var upstream *pinterest.UpstreamError
	if errors.As(err, &upstream) {
		return apperror.Upstream(upstream.StatusCode, "Pinterest request failed.", upstream.Details, err)
	}

	if embedding.IsCircuitOpen(err) {
		return apperror.New(http.StatusServiceUnavailable, "Embedding provider is temporarily unavailable.", err)
	}

	var providerErr *embedding.ProviderError
	if errors.As(err, &providerErr) {
		var details interface{}
		if len(providerErr.Body) > 0 {
			details = providerErr.Body
		}
		return apperror.Provider("Failed to generate embeddings or rank products.", details, err)
	}

	return apperror.Internal("Unexpected error.", err)
}
