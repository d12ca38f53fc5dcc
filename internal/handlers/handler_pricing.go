package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/dto"
	"github.com/saragoldblat100/br-sales/internal/middleware"
	"github.com/saragoldblat100/br-sales/internal/utils"
)

// pricingHandler handles HTTP requests for price calculation.
type pricingHandler struct {
	pricingService portssvc.PricingSvc
	posthogClient  *utils.PosthogClientWrapper
}

func newPricingHandler(ps portssvc.PricingSvc, posthogClient *utils.PosthogClientWrapper) *pricingHandler {
	return &pricingHandler{
		pricingService: ps,
		posthogClient:  posthogClient,
	}
}

// registerPricingRoutes registers the price calculation routes.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newPricingHandler(pricingService, posthogClient)

	pricing := rg.Group("/pricing")
	{
		pricing.POST("/calculate", h.calculatePrice)
		pricing.POST("/preview", h.previewPrice)
	}
}

// calculatePrice godoc
// @Summary Calculate the selling price of an item
// @Description Resolves the price actually charged: a customer special price when one exists, otherwise the cost buildup floored by the last sale
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculatePriceRequest true "Item and optional customer, quantity and shipping"
// @Success 200 {object} dto.PricingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or missing pricing data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to calculate price"
// @Security BearerAuth
// @Router /pricing/calculate [post]
func (h *pricingHandler) calculatePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("item_id", req.ItemID))
	logger.Info("Received request to calculate price")

	result, err := h.pricingService.CalculatePrice(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate price")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "price_calculated", map[string]any{
		"item_id":      result.Item.ItemID,
		"price_source": string(result.Chain.PriceSource),
		"has_customer": req.CustomerCode != nil,
	})

	logger.Info("Price calculated successfully", slog.String("price_source", string(result.Chain.PriceSource)))
	c.JSON(http.StatusOK, dto.ToPricingResponse(result))
}

// previewPrice godoc
// @Summary Preview a price with overridden inputs
// @Description Runs the cost buildup with any input overridden and reports where each input came from. Override money values are in USD. No special price or last-sale floor applies.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.PreviewPriceRequest true "Item and overrides"
// @Success 200 {object} dto.PricingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or missing pricing data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to preview price"
// @Security BearerAuth
// @Router /pricing/preview [post]
func (h *pricingHandler) previewPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PreviewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("item_id", req.ItemID))
	logger.Info("Received request to preview price")

	result, err := h.pricingService.PreviewPrice(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to preview price")
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingResponse(result))
}
