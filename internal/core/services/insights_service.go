package services

import (
	"context"

	"github.com/shopspring/decimal"

	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// insightsService exposes read-only aggregations over expense data.
type insightsService struct {
	BaseService
	insightsRepo portsrepo.InsightsRepositoryFacade
}

// NewInsightsService creates a new insights service.
func NewInsightsService(repos portsrepo.RepositoryProvider) portssvc.InsightsSvcFacade {
	return &insightsService{insightsRepo: repos.InsightsRepo}
}

var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

func (s *insightsService) CategoryTotals(ctx context.Context, userID string) ([]dto.CategoryTotalResponse, error) {
	totals, err := s.insightsRepo.CategoryTotals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate category totals")
		return nil, err
	}
	return dto.ToListCategoryTotalResponse(totals), nil
}

// TopCategory returns the highest-spend category, or an empty result with an
// explanatory message when the user has no expenses yet.
func (s *insightsService) TopCategory(ctx context.Context, userID string) (*dto.TopCategoryResponse, error) {
	totals, err := s.insightsRepo.CategoryTotals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to compute top category")
		return nil, err
	}
	if len(totals) == 0 {
		return &dto.TopCategoryResponse{Total: decimal.Zero, Message: "no expenses recorded yet"}, nil
	}
	top := totals[0]
	return &dto.TopCategoryResponse{Category: &top.Category, Total: top.Total}, nil
}

func (s *insightsService) SpendingByCategory(ctx context.Context, category, userID string) (*dto.CategoryTotalResponse, error) {
	total, err := s.insightsRepo.SpendingByCategory(ctx, category, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate category spending", "category", category)
		return nil, err
	}
	return &dto.CategoryTotalResponse{Category: total.Category, Total: total.Total}, nil
}
