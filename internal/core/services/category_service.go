package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// categoryService manages expense/income label categories. Ledger records
// carry their category as plain text, so deleting a category never touches
// existing records.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(repos portsrepo.RepositoryProvider) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repos.CategoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]dto.CategoryResponse, error) {
	cats, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list categories")
		return nil, err
	}
	return dto.ToListCategoryResponse(cats), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*dto.CategoryResponse, error) {
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       strings.TrimSpace(req.Name),
		Type:       req.Type,
		CreatedAt:  time.Now(),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to create category", "name", category.Name)
		return nil, err
	}
	resp := dto.ToCategoryResponse(&category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID, userID)
}
