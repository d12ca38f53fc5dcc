package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/dto"
	"github.com/saragoldblat100/br-sales/internal/middleware"
)

// pricingRuleHandler handles HTTP requests that maintain margin rules,
// freight rates and customer special prices.
type pricingRuleHandler struct {
	ruleService portssvc.PricingRuleSvc
}

func newPricingRuleHandler(rs portssvc.PricingRuleSvc) *pricingRuleHandler {
	return &pricingRuleHandler{ruleService: rs}
}

// registerPricingRuleRoutes registers routes related to pricing rules.
func registerPricingRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.PricingRuleSvc) {
	h := newPricingRuleHandler(ruleService)

	rules := rg.Group("/pricing-rules")
	{
		rules.POST("/margins", h.createMarginRule)
		rules.DELETE("/margins/:ruleID", h.deactivateMarginRule)
		rules.POST("/freight", h.createFreightRate)
		rules.PUT("/special-prices", h.upsertSpecialPrice)
	}
}

// createMarginRule godoc
// @Summary Add a margin rule version
// @Description Adds a new margin version for a category. The latest version valid at pricing time wins.
// @Tags pricing-rules
// @Accept  json
// @Produce  json
// @Param   rule body dto.CreateMarginRuleRequest true "Margin rule"
// @Success 201 {object} dto.MarginRuleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create margin rule"
// @Security BearerAuth
// @Router /pricing-rules/margins [post]
func (h *pricingRuleHandler) createMarginRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMarginRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context for CreateMarginRule")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	rule, err := h.ruleService.CreateMarginRule(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create margin rule")
		return
	}

	logger.Info("Margin rule created", slog.String("rule_id", rule.RuleID), slog.String("category_id", rule.CategoryID))
	c.JSON(http.StatusCreated, dto.ToMarginRuleResponse(rule))
}

// deactivateMarginRule godoc
// @Summary Deactivate a margin rule version
// @Tags pricing-rules
// @Param   ruleID path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to deactivate margin rule"
// @Security BearerAuth
// @Router /pricing-rules/margins/{ruleID} [delete]
func (h *pricingRuleHandler) deactivateMarginRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("ruleID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context for DeactivateMarginRule")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	if err := h.ruleService.DeactivateMarginRule(c.Request.Context(), ruleID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate margin rule")
		return
	}

	logger.Info("Margin rule deactivated", slog.String("rule_id", ruleID))
	c.Status(http.StatusNoContent)
}

// createFreightRate godoc
// @Summary Add a freight rate version
// @Description Adds a new freight cost version for a port and container size
// @Tags pricing-rules
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateFreightRateRequest true "Freight rate"
// @Success 201 {object} dto.FreightRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create freight rate"
// @Security BearerAuth
// @Router /pricing-rules/freight [post]
func (h *pricingRuleHandler) createFreightRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFreightRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context for CreateFreightRate")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	rate, err := h.ruleService.CreateFreightRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create freight rate")
		return
	}

	logger.Info("Freight rate created", slog.String("rate_id", rate.RateID), slog.String("port", rate.PortOfOrigin))
	c.JSON(http.StatusCreated, dto.ToFreightRateResponse(rate))
}

// upsertSpecialPrice godoc
// @Summary Set a customer special price
// @Description Creates or replaces the negotiated price of an item for a customer
// @Tags pricing-rules
// @Accept  json
// @Produce  json
// @Param   price body dto.UpsertSpecialPriceRequest true "Special price"
// @Success 200 {object} dto.SpecialPriceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to save special price"
// @Security BearerAuth
// @Router /pricing-rules/special-prices [put]
func (h *pricingRuleHandler) upsertSpecialPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertSpecialPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context for UpsertSpecialPrice")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	price, err := h.ruleService.UpsertSpecialPrice(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to save special price")
		return
	}

	logger.Info("Special price saved", slog.String("customer_code", price.CustomerCode), slog.String("item_code", price.ItemCode))
	c.JSON(http.StatusOK, dto.ToSpecialPriceResponse(price))
}
