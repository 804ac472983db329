package services

import (
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(cfg, repos),
		Bank:       NewBankService(repos),
		Expense:    NewExpenseService(repos),
		Income:     NewIncomeService(repos),
		Transfer:   NewTransferService(repos),
		Investment: NewInvestmentService(repos),
		Allocation: NewAllocationService(repos),
		Category:   NewCategoryService(repos),
		Insights:   NewInsightsService(repos),
	}
}
