package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
	"github.com/workdevapi-byte/the-reserve-backend/internal/middleware"
)

// incomeHandler handles HTTP requests related to income entries.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{incomeService: is}
}

// registerIncomeRoutes registers routes related to income entries.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	income := rg.Group("/income")
	{
		income.POST("", h.createIncome)
		income.GET("", h.listIncomes)
		income.PUT("/:id", h.updateIncome)
		income.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Record an income entry
// @Description Records an income entry and credits its bank
// @Tags income
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to create income"
// @Security BearerAuth
// @Router /income [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create income")
		return
	}

	logger.Info("Income created", slog.String("income_id", income.IncomeID))
	c.JSON(http.StatusCreated, income)
}

// listIncomes godoc
// @Summary List income entries
// @Description Lists the logged-in user's income entries, date descending then amount descending
// @Tags income
// @Produce  json
// @Success 200 {array} dto.IncomeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list income"
// @Security BearerAuth
// @Router /income [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	incomes, err := h.incomeService.ListIncomes(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list income")
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// updateIncome godoc
// @Summary Update an income entry
// @Description Replaces an income entry, reversing the original credit before applying the new one
// @Tags income
// @Accept  json
// @Produce  json
// @Param   id path string true "Income ID"
// @Param   income body dto.UpdateIncomeRequest true "New income values"
// @Success 200 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Income or bank not found"
// @Failure 500 {object} map[string]string "Failed to update income"
// @Security BearerAuth
// @Router /income/{id} [put]
func (h *incomeHandler) updateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	income, err := h.incomeService.UpdateIncome(c.Request.Context(), incomeID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update income")
		return
	}

	c.JSON(http.StatusOK, income)
}

// deleteIncome godoc
// @Summary Delete an income entry
// @Description Deletes an income entry and debits its amount back off the bank, even if the balance goes negative
// @Tags income
// @Produce  json
// @Param   id path string true "Income ID"
// @Success 204 "Income deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Income not found"
// @Failure 500 {object} map[string]string "Failed to delete income"
// @Security BearerAuth
// @Router /income/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.incomeService.DeleteIncome(c.Request.Context(), incomeID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete income")
		return
	}

	c.Status(http.StatusNoContent)
}
