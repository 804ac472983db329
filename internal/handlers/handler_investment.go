package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
	"github.com/workdevapi-byte/the-reserve-backend/internal/middleware"
)

// investmentHandler handles HTTP requests related to investments.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// registerInvestmentRoutes registers routes related to investments. The
// static /categories and /history routes must be declared before the /:id
// parameter routes so gin does not capture them.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.GET("/categories", h.listCategories)
		investments.POST("/categories", h.createCategory)
		investments.GET("/history", h.listHistory)
		investments.POST("", h.contribute)
		investments.GET("", h.listInvestments)
		investments.PUT("/:id", h.correctInvestment)
		investments.DELETE("/:id", h.deleteInvestment)
	}
}

// listCategories godoc
// @Summary List investment categories
// @Description Lists the logged-in user's investment categories, name ascending
// @Tags investments
// @Produce  json
// @Success 200 {array} dto.InvestmentCategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list investment categories"
// @Security BearerAuth
// @Router /investments/categories [get]
func (h *investmentHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cats, err := h.investmentService.ListInvestmentCategories(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list investment categories")
		return
	}

	c.JSON(http.StatusOK, cats)
}

// createCategory godoc
// @Summary Create an investment category
// @Description Creates a named investment category; names are unique per user, compared case-insensitively
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateInvestmentCategoryRequest true "Category details"
// @Success 201 {object} dto.InvestmentCategoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Category name already exists"
// @Failure 500 {object} map[string]string "Failed to create investment category"
// @Security BearerAuth
// @Router /investments/categories [post]
func (h *investmentHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvestmentCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cat, err := h.investmentService.CreateInvestmentCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create investment category")
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// contribute godoc
// @Summary Contribute to an investment
// @Description Debits the funding bank and folds the amount into the investment for the (category, bank) pair, creating it on first contribution. Always appends a history record.
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   contribution body dto.ContributeInvestmentRequest true "Contribution details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Validation error or insufficient funds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank or category not found"
// @Failure 500 {object} map[string]string "Failed to contribute to investment"
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) contribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ContributeInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ContributeInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	inv, err := h.investmentService.Contribute(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to contribute to investment")
		return
	}

	logger.Info("Investment contribution recorded", slog.String("investment_id", inv.InvestmentID))
	c.JSON(http.StatusCreated, inv)
}

// listInvestments godoc
// @Summary List investments
// @Description Lists the logged-in user's investments, date descending, with category and bank populated
// @Tags investments
// @Produce  json
// @Success 200 {array} dto.InvestmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list investments"
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invs, err := h.investmentService.ListInvestments(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list investments")
		return
	}

	c.JSON(http.StatusOK, invs)
}

// listHistory godoc
// @Summary List investment contribution history
// @Description Lists every contribution record, date descending, with category and bank populated
// @Tags investments
// @Produce  json
// @Success 200 {array} dto.InvestmentTransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list investment history"
// @Security BearerAuth
// @Router /investments/history [get]
func (h *investmentHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := h.investmentService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list investment history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// correctInvestment godoc
// @Summary Manually correct an investment
// @Description Overwrites the cumulative amount and/or date without moving money or writing history. This deliberately breaks the balance/history tie; use it only to fix drifted records.
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   id path string true "Investment ID"
// @Param   correction body dto.CorrectInvestmentRequest true "Fields to overwrite"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to correct investment"
// @Security BearerAuth
// @Router /investments/{id} [put]
func (h *investmentHandler) correctInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	var req dto.CorrectInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CorrectInvestment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	inv, err := h.investmentService.Correct(c.Request.Context(), investmentID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to correct investment")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// deleteInvestment godoc
// @Summary Delete an investment
// @Description Refunds the cumulative amount to the funding bank and deletes the investment with its whole history
// @Tags investments
// @Produce  json
// @Param   id path string true "Investment ID"
// @Success 204 "Investment deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Investment not found"
// @Failure 500 {object} map[string]string "Failed to delete investment"
// @Security BearerAuth
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investmentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.investmentService.Delete(c.Request.Context(), investmentID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete investment")
		return
	}

	c.Status(http.StatusNoContent)
}
