package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	repos   *mockRepos
	service portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.service = services.NewCategoryService(suite.repos.provider())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateCategoryRequest{Name: "  Utilities ", Type: domain.CategoryExpense}

	suite.repos.categoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Utilities" && c.Type == domain.CategoryExpense && c.UserID == userID
	})).Return(nil).Once()

	resp, err := suite.service.CreateCategory(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Equal("Utilities", resp.Name)
	suite.NotEmpty(resp.CategoryID)
	suite.repos.categoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Food", Type: domain.CategoryExpense}

	suite.repos.categoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Return(apperrors.ErrDuplicate).Once()

	resp, err := suite.service.CreateCategory(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestListCategories_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	cats := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Food", Type: domain.CategoryExpense},
		{CategoryID: uuid.NewString(), Name: "Salary", Type: domain.CategoryIncome},
	}

	suite.repos.categoryRepo.On("ListCategories", ctx, userID).Return(cats, nil).Once()

	resp, err := suite.service.ListCategories(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.Equal(domain.CategoryIncome, resp[1].Type)
	suite.repos.categoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	userID := uuid.NewString()

	suite.repos.categoryRepo.On("DeleteCategory", ctx, categoryID, userID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, categoryID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repos.categoryRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
