package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/dto"
	"github.com/saragoldblat100/br-sales/internal/utils/i18n"
)

// respondWithError maps a service error onto the API error body.
// fallback is the message used for unexpected failures.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var missing *apperrors.MissingPricingDataError
	switch {
	case errors.As(err, &missing):
		lang := i18n.Match(c.GetHeader("Accept-Language"))
		logger.Info("Pricing data missing", slog.Any("fields", missing.Fields))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing pricing data", i18n.FieldLabels(lang, missing.Fields)...))
	case errors.Is(err, apperrors.ErrItemNotFound):
		logger.Warn("Item not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Item not found"))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrCategoryMarginMissing):
		logger.Warn("Category margin missing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No active margin is defined for the item's category"))
	case errors.Is(err, apperrors.ErrFreightRateMissing):
		logger.Warn("Freight rate missing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No active freight rate for the port and container size"))
	case errors.Is(err, apperrors.ErrNoCurrencyRateAvailable):
		logger.Error("No currency rate available", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No currency rate is available"))
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback))
	}
}

// bindingError answers a request whose body or query failed to bind.
func bindingError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error()))
}
