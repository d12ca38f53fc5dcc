package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/dto"
	"github.com/saragoldblat100/br-sales/internal/middleware"
)

// currencyRateHandler handles HTTP requests related to the daily USD rate.
type currencyRateHandler struct {
	rateService portssvc.CurrencyRateSvcFacade
}

func newCurrencyRateHandler(rs portssvc.CurrencyRateSvcFacade) *currencyRateHandler {
	return &currencyRateHandler{rateService: rs}
}

// registerCurrencyRateRoutes registers routes related to currency rates.
func registerCurrencyRateRoutes(rg *gin.RouterGroup, rateService portssvc.CurrencyRateSvcFacade) {
	h := newCurrencyRateHandler(rateService)

	rates := rg.Group("/currency-rates")
	{
		rates.GET("/current", h.getCurrentRate)
		rates.GET("", h.listRates)
		rates.POST("/refresh", h.refreshToday)
	}
}

// getCurrentRate godoc
// @Summary Get the rate in effect today
// @Description Returns today's USD to ILS rate, fetching it from the bank when missing, or the most recent stored rate
// @Tags currency-rates
// @Produce  json
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} dto.ErrorResponse "No currency rate available"
// @Failure 500 {object} dto.ErrorResponse "Failed to resolve currency rate"
// @Security BearerAuth
// @Router /currency-rates/current [get]
func (h *currencyRateHandler) getCurrentRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.rateService.CurrentRate(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve currency rate")
		return
	}

	logger.Debug("Current rate resolved", slog.String("rate_date", rate.RateDate.Format("2006-01-02")))
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}

// listRates godoc
// @Summary List stored currency rates
// @Description Lists daily rates newest first
// @Tags currency-rates
// @Produce  json
// @Param   limit query int false "Page size" default(30)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCurrencyRatesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 500 {object} dto.ErrorResponse "Failed to list currency rates"
// @Security BearerAuth
// @Router /currency-rates [get]
func (h *currencyRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCurrencyRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, logger, err)
		return
	}

	rates, next, err := h.rateService.ListRates(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currency rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyRatesResponse(rates, next))
}

// refreshToday godoc
// @Summary Fetch today's rate from the bank
// @Description Fetches today's USD to ILS rate and stores it unless a rate for today already exists
// @Tags currency-rates
// @Produce  json
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} dto.ErrorResponse "No bank rate source configured"
// @Failure 500 {object} dto.ErrorResponse "Failed to refresh currency rate"
// @Security BearerAuth
// @Router /currency-rates/refresh [post]
func (h *currencyRateHandler) refreshToday(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.rateService.RefreshToday(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to refresh currency rate")
		return
	}

	logger.Info("Currency rate refreshed", slog.String("rate_id", rate.RateID))
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}
