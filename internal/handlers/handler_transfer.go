package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
	"github.com/workdevapi-byte/the-reserve-backend/internal/middleware"
)

// transferHandler handles HTTP requests related to transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{transferService: ts}
}

// registerTransferRoutes registers routes related to transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
		transfers.DELETE("/:id", h.deleteTransfer)
	}
}

// createTransfer godoc
// @Summary Transfer money between banks
// @Description Debits the source bank and credits the destination atomically; fails when the source cannot cover the amount
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferCreateResponse
// @Failure 400 {object} map[string]string "Validation error or insufficient funds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to create transfer"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transfer")
		return
	}

	logger.Info("Transfer created", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusCreated, transfer)
}

// listTransfers godoc
// @Summary List transfers
// @Description Lists the logged-in user's transfers, date descending, with both bank names
// @Tags transfers
// @Produce  json
// @Success 200 {array} dto.TransferResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transfers"
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfers, err := h.transferService.ListTransfers(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, transfers)
}

// deleteTransfer godoc
// @Summary Delete a transfer
// @Description Deletes a transfer and reverses the movement: the source is refunded and the destination debited, without a sufficiency check
// @Tags transfers
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 204 "Transfer deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transfer not found"
// @Failure 500 {object} map[string]string "Failed to delete transfer"
// @Security BearerAuth
// @Router /transfers/{id} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transferID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.transferService.DeleteTransfer(c.Request.Context(), transferID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transfer")
		return
	}

	c.Status(http.StatusNoContent)
}
