package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
	"github.com/workdevapi-byte/the-reserve-backend/internal/middleware"
)

// bankHandler handles HTTP requests related to bank accounts.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// registerBankRoutes registers routes related to banks.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.PUT("/:id", h.updateBank)
		banks.DELETE("/:id", h.deleteBank)
	}
}

// createBank godoc
// @Summary Create a new bank account
// @Description Creates a bank account for the logged-in user, optionally with an opening balance
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create bank"
// @Security BearerAuth
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bank")
		return
	}

	logger.Info("Bank created", slog.String("bank_id", bank.BankID))
	c.JSON(http.StatusCreated, bank)
}

// listBanks godoc
// @Summary List bank accounts
// @Description Lists the logged-in user's bank accounts, newest first
// @Tags banks
// @Produce  json
// @Success 200 {array} dto.BankResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list banks"
// @Security BearerAuth
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	banks, err := h.bankService.ListBanks(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list banks")
		return
	}

	c.JSON(http.StatusOK, banks)
}

// updateBank godoc
// @Summary Update a bank account
// @Description Partially updates a bank's name and/or balance. Setting the balance is a manual correction that does not create a ledger event.
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   id path string true "Bank ID"
// @Param   bank body dto.UpdateBankRequest true "Fields to update"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to update bank"
// @Security BearerAuth
// @Router /banks/{id} [put]
func (h *bankHandler) updateBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("id")

	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bank, err := h.bankService.UpdateBank(c.Request.Context(), bankID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update bank")
		return
	}

	c.JSON(http.StatusOK, bank)
}

// deleteBank godoc
// @Summary Delete a bank account
// @Description Deletes a bank and every expense, income, transfer, investment and allocation referencing it. Transfer effects on surviving counterparty banks are reversed.
// @Tags banks
// @Produce  json
// @Param   id path string true "Bank ID"
// @Success 204 "Bank deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 409 {object} map[string]string "Conflicting concurrent changes"
// @Failure 500 {object} map[string]string "Failed to delete bank"
// @Security BearerAuth
// @Router /banks/{id} [delete]
func (h *bankHandler) deleteBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.bankService.DeleteBank(c.Request.Context(), bankID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete bank")
		return
	}

	logger.Info("Bank deleted with cascade", slog.String("bank_id", bankID))
	c.Status(http.StatusNoContent)
}
