package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/middleware"
)

// insightsHandler handles read-only spending aggregation requests.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

func newInsightsHandler(is portssvc.InsightsSvcFacade) *insightsHandler {
	return &insightsHandler{insightsService: is}
}

// registerInsightsRoutes registers routes related to insights.
func registerInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := newInsightsHandler(insightsService)

	insights := rg.Group("/insights")
	{
		insights.GET("/categories", h.categoryTotals)
		insights.GET("/top-category", h.topCategory)
		insights.GET("/spending", h.spendingByCategory)
	}
}

// categoryTotals godoc
// @Summary Expense totals per category
// @Description Sums the logged-in user's expenses per category, biggest spender first
// @Tags insights
// @Produce  json
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to aggregate categories"
// @Security BearerAuth
// @Router /insights/categories [get]
func (h *insightsHandler) categoryTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	totals, err := h.insightsService.CategoryTotals(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to aggregate categories")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// topCategory godoc
// @Summary Highest-spend category
// @Description Returns the category with the highest expense total, or an empty result when there are no expenses
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.TopCategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute top category"
// @Security BearerAuth
// @Router /insights/top-category [get]
func (h *insightsHandler) topCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	top, err := h.insightsService.TopCategory(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute top category")
		return
	}

	c.JSON(http.StatusOK, top)
}

// spendingByCategory godoc
// @Summary Spending for one category
// @Description Sums expenses whose category matches the query parameter case-insensitively; zero when nothing matches
// @Tags insights
// @Produce  json
// @Param   category query string true "Category name"
// @Success 200 {object} dto.CategoryTotalResponse
// @Failure 400 {object} map[string]string "Missing category parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to aggregate spending"
// @Security BearerAuth
// @Router /insights/spending [get]
func (h *insightsHandler) spendingByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query parameter is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	total, err := h.insightsService.SpendingByCategory(c.Request.Context(), category, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to aggregate spending")
		return
	}

	c.JSON(http.StatusOK, total)
}
