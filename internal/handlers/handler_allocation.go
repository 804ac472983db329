package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
	"github.com/workdevapi-byte/the-reserve-backend/internal/middleware"
)

// allocationHandler handles HTTP requests related to budget allocations.
type allocationHandler struct {
	allocationService portssvc.AllocationSvcFacade
}

func newAllocationHandler(as portssvc.AllocationSvcFacade) *allocationHandler {
	return &allocationHandler{allocationService: as}
}

// registerAllocationRoutes registers routes related to allocations.
func registerAllocationRoutes(rg *gin.RouterGroup, allocationService portssvc.AllocationSvcFacade) {
	h := newAllocationHandler(allocationService)

	allocations := rg.Group("/allocations")
	{
		allocations.GET("/:bankId", h.getBankAllocations)
		allocations.PUT("/:bankId", h.replaceBankAllocations)
	}
}

// getBankAllocations godoc
// @Summary Get a bank's allocation plan
// @Description Lists the allocation plan for a bank, with category names
// @Tags allocations
// @Produce  json
// @Param   bankId path string true "Bank ID"
// @Success 200 {array} dto.AllocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to list allocations"
// @Security BearerAuth
// @Router /allocations/{bankId} [get]
func (h *allocationHandler) getBankAllocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("bankId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	allocs, err := h.allocationService.GetBankAllocations(c.Request.Context(), bankID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list allocations")
		return
	}

	c.JSON(http.StatusOK, allocs)
}

// replaceBankAllocations godoc
// @Summary Replace a bank's allocation plan
// @Description Replaces the whole allocation set for a bank. The total cannot exceed the bank's current balance, checked under lock.
// @Tags allocations
// @Accept  json
// @Produce  json
// @Param   bankId path string true "Bank ID"
// @Param   allocations body dto.ReplaceAllocationsRequest true "New allocation set"
// @Success 200 {array} dto.AllocationResponse
// @Failure 400 {object} map[string]string "Validation error or total exceeds balance"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank or category not found"
// @Failure 500 {object} map[string]string "Failed to replace allocations"
// @Security BearerAuth
// @Router /allocations/{bankId} [put]
func (h *allocationHandler) replaceBankAllocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("bankId")

	var req dto.ReplaceAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceAllocations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	allocs, err := h.allocationService.ReplaceBankAllocations(c.Request.Context(), bankID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to replace allocations")
		return
	}

	c.JSON(http.StatusOK, allocs)
}
