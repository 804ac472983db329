package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

type InvestmentServiceTestSuite struct {
	suite.Suite
	repos   *mockRepos
	service portssvc.InvestmentSvcFacade
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.service = services.NewInvestmentService(suite.repos.provider())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestmentCategory_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentCategoryByName", mock.Anything, mock.Anything, "Index Funds", userID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.repos.investmentRepo.On("SaveInvestmentCategory", mock.Anything, mock.Anything,
		mock.MatchedBy(func(c domain.InvestmentCategory) bool { return c.Name == "Index Funds" })).Return(nil).Once()

	resp, err := suite.service.CreateInvestmentCategory(ctx, dto.CreateInvestmentCategoryRequest{Name: " Index Funds "}, userID)

	suite.Require().NoError(err)
	suite.Equal("Index Funds", resp.Name)
	suite.NotEmpty(resp.CategoryID)
	suite.repos.investmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCreateInvestmentCategory_DuplicateName() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.InvestmentCategory{CategoryID: uuid.NewString(), UserID: userID, Name: "Index Funds"}

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentCategoryByName", mock.Anything, mock.Anything, "index funds", userID).
		Return(existing, nil).Once()

	resp, err := suite.service.CreateInvestmentCategory(ctx, dto.CreateInvestmentCategoryRequest{Name: "index funds"}, userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repos.investmentRepo.AssertNotCalled(suite.T(), "SaveInvestmentCategory")
}

func (suite *InvestmentServiceTestSuite) TestContribute_FirstContributionCreatesRow() {
	ctx := context.Background()
	userID := uuid.NewString()
	bankID := uuid.NewString()
	categoryID := uuid.NewString()
	category := &domain.InvestmentCategory{CategoryID: categoryID, UserID: userID, Name: "Stocks"}
	bank := &domain.Bank{BankID: bankID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(1000)}
	debited := &domain.Bank{BankID: bankID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(800)}
	req := dto.ContributeInvestmentRequest{
		CategoryID: categoryID,
		BankID:     bankID,
		Amount:     decimal.NewFromInt(200),
		Name:       "Monthly buy",
	}

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentCategoryByID", mock.Anything, mock.Anything, categoryID, userID).
		Return(category, nil).Once()
	suite.repos.bankRepo.On("FindBankByIDForUpdate", mock.Anything, mock.Anything, bankID, userID).Return(bank, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, bankID, userID,
		mock.MatchedBy(deltaEquals(-200)), mock.AnythingOfType("time.Time")).Return(debited, nil).Once()
	suite.repos.investmentRepo.On("FindInvestmentForUpdate", mock.Anything, mock.Anything, categoryID, bankID, userID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.repos.investmentRepo.On("SaveInvestment", mock.Anything, mock.Anything,
		mock.MatchedBy(func(inv domain.Investment) bool {
			return inv.CategoryID == categoryID && inv.BankID == bankID && inv.Amount.Equal(decimal.NewFromInt(200))
		})).Return(nil).Once()
	suite.repos.investmentRepo.On("SaveInvestmentTransaction", mock.Anything, mock.Anything,
		mock.MatchedBy(func(txn domain.InvestmentTransaction) bool {
			return txn.Amount.Equal(decimal.NewFromInt(200)) && txn.Name == "Monthly buy"
		})).Return(nil).Once()

	resp, err := suite.service.Contribute(ctx, req, userID)

	suite.Require().NoError(err)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(200)))
	suite.Equal("Stocks", resp.Category.Name)
	suite.True(resp.Bank.Balance.Equal(decimal.NewFromInt(800)))
	suite.repos.investmentRepo.AssertExpectations(suite.T())
	suite.repos.bankRepo.AssertExpectations(suite.T())
}

// A second contribution to the same (category, bank) pair folds into the
// existing row instead of creating another.
func (suite *InvestmentServiceTestSuite) TestContribute_AggregatesIntoExistingRow() {
	ctx := context.Background()
	userID := uuid.NewString()
	bankID := uuid.NewString()
	categoryID := uuid.NewString()
	investmentID := uuid.NewString()
	category := &domain.InvestmentCategory{CategoryID: categoryID, UserID: userID, Name: "Stocks"}
	bank := &domain.Bank{BankID: bankID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(500)}
	debited := &domain.Bank{BankID: bankID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(400)}
	existing := &domain.Investment{
		InvestmentID: investmentID, UserID: userID, CategoryID: categoryID, BankID: bankID,
		Amount: decimal.NewFromInt(300), CategoryName: "Stocks",
	}
	req := dto.ContributeInvestmentRequest{
		CategoryID: categoryID,
		BankID:     bankID,
		Amount:     decimal.NewFromInt(100),
		Name:       "Top-up",
	}

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentCategoryByID", mock.Anything, mock.Anything, categoryID, userID).
		Return(category, nil).Once()
	suite.repos.bankRepo.On("FindBankByIDForUpdate", mock.Anything, mock.Anything, bankID, userID).Return(bank, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, bankID, userID,
		mock.MatchedBy(deltaEquals(-100)), mock.AnythingOfType("time.Time")).Return(debited, nil).Once()
	suite.repos.investmentRepo.On("FindInvestmentForUpdate", mock.Anything, mock.Anything, categoryID, bankID, userID).
		Return(existing, nil).Once()
	suite.repos.investmentRepo.On("AddToInvestment", mock.Anything, mock.Anything, investmentID,
		mock.MatchedBy(deltaEquals(100)), mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.repos.investmentRepo.On("SaveInvestmentTransaction", mock.Anything, mock.Anything,
		mock.AnythingOfType("domain.InvestmentTransaction")).Return(nil).Once()

	resp, err := suite.service.Contribute(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Equal(investmentID, resp.InvestmentID)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(400)))
	suite.repos.investmentRepo.AssertNotCalled(suite.T(), "SaveInvestment")
	suite.repos.investmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestContribute_ReusesExistingNameCaseInsensitively() {
	ctx := context.Background()
	userID := uuid.NewString()
	bankID := uuid.NewString()
	categoryID := uuid.NewString()
	category := &domain.InvestmentCategory{CategoryID: categoryID, UserID: userID, Name: "Crypto"}
	bank := &domain.Bank{BankID: bankID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(100)}
	debited := &domain.Bank{BankID: bankID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(50)}
	req := dto.ContributeInvestmentRequest{
		NewCategoryName: "crypto",
		BankID:          bankID,
		Amount:          decimal.NewFromInt(50),
		Name:            "DCA",
	}

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentCategoryByName", mock.Anything, mock.Anything, "crypto", userID).
		Return(category, nil).Once()
	suite.repos.bankRepo.On("FindBankByIDForUpdate", mock.Anything, mock.Anything, bankID, userID).Return(bank, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, bankID, userID,
		mock.MatchedBy(deltaEquals(-50)), mock.AnythingOfType("time.Time")).Return(debited, nil).Once()
	suite.repos.investmentRepo.On("FindInvestmentForUpdate", mock.Anything, mock.Anything, categoryID, bankID, userID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.repos.investmentRepo.On("SaveInvestment", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Investment")).Return(nil).Once()
	suite.repos.investmentRepo.On("SaveInvestmentTransaction", mock.Anything, mock.Anything,
		mock.AnythingOfType("domain.InvestmentTransaction")).Return(nil).Once()

	resp, err := suite.service.Contribute(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Equal(categoryID, resp.Category.CategoryID)
	suite.repos.investmentRepo.AssertNotCalled(suite.T(), "SaveInvestmentCategory")
}

func (suite *InvestmentServiceTestSuite) TestContribute_BothCategoryReferences() {
	req := dto.ContributeInvestmentRequest{
		CategoryID:      uuid.NewString(),
		NewCategoryName: "Stocks",
		BankID:          uuid.NewString(),
		Amount:          decimal.NewFromInt(10),
		Name:            "Buy",
	}

	suite.repos.expectTx()

	resp, err := suite.service.Contribute(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repos.bankRepo.AssertNotCalled(suite.T(), "AdjustBalance")
}

func (suite *InvestmentServiceTestSuite) TestContribute_MissingCategoryReference() {
	req := dto.ContributeInvestmentRequest{
		BankID: uuid.NewString(),
		Amount: decimal.NewFromInt(10),
		Name:   "Buy",
	}

	suite.repos.expectTx()

	resp, err := suite.service.Contribute(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvestmentServiceTestSuite) TestContribute_InsufficientFunds() {
	ctx := context.Background()
	userID := uuid.NewString()
	bankID := uuid.NewString()
	categoryID := uuid.NewString()
	category := &domain.InvestmentCategory{CategoryID: categoryID, UserID: userID, Name: "Stocks"}
	bank := &domain.Bank{BankID: bankID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(99)}
	req := dto.ContributeInvestmentRequest{
		CategoryID: categoryID,
		BankID:     bankID,
		Amount:     decimal.NewFromInt(100),
		Name:       "Buy",
	}

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentCategoryByID", mock.Anything, mock.Anything, categoryID, userID).
		Return(category, nil).Once()
	suite.repos.bankRepo.On("FindBankByIDForUpdate", mock.Anything, mock.Anything, bankID, userID).Return(bank, nil).Once()

	resp, err := suite.service.Contribute(ctx, req, userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.repos.investmentRepo.AssertNotCalled(suite.T(), "SaveInvestmentTransaction")
}

func (suite *InvestmentServiceTestSuite) TestCorrect_AmountOnly() {
	ctx := context.Background()
	userID := uuid.NewString()
	investmentID := uuid.NewString()
	existing := &domain.Investment{
		InvestmentID: investmentID, UserID: userID, CategoryID: uuid.NewString(), BankID: uuid.NewString(),
		Amount: decimal.NewFromInt(300), Date: time.Now().Add(-24 * time.Hour),
		BankName: "Checking", BankBalance: decimal.NewFromInt(700),
	}
	corrected := decimal.NewFromInt(275)

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentByID", mock.Anything, mock.Anything, investmentID, userID).
		Return(existing, nil).Once()
	suite.repos.investmentRepo.On("UpdateInvestment", mock.Anything, mock.Anything,
		mock.MatchedBy(func(inv domain.Investment) bool {
			return inv.Amount.Equal(corrected) && inv.Date.Equal(existing.Date)
		})).Return(nil).Once()

	resp, err := suite.service.Correct(ctx, investmentID, dto.CorrectInvestmentRequest{Amount: &corrected}, userID)

	suite.Require().NoError(err)
	suite.True(resp.Amount.Equal(corrected))
	suite.True(resp.Bank.Balance.Equal(decimal.NewFromInt(700)))
	// Corrections never move money.
	suite.repos.bankRepo.AssertNotCalled(suite.T(), "AdjustBalance")
	suite.repos.investmentRepo.AssertNotCalled(suite.T(), "SaveInvestmentTransaction")
	suite.repos.investmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestCorrect_NothingToCorrect() {
	resp, err := suite.service.Correct(context.Background(), uuid.NewString(), dto.CorrectInvestmentRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repos.txm.AssertNotCalled(suite.T(), "RunInTx")
}

func (suite *InvestmentServiceTestSuite) TestCorrect_NegativeAmount() {
	negative := decimal.NewFromInt(-1)
	resp, err := suite.service.Correct(context.Background(), uuid.NewString(), dto.CorrectInvestmentRequest{Amount: &negative}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvestmentServiceTestSuite) TestDelete_RefundsFundingBank() {
	ctx := context.Background()
	userID := uuid.NewString()
	bankID := uuid.NewString()
	investmentID := uuid.NewString()
	existing := &domain.Investment{
		InvestmentID: investmentID, UserID: userID, CategoryID: uuid.NewString(), BankID: bankID,
		Amount: decimal.NewFromInt(450),
	}
	refunded := &domain.Bank{BankID: bankID, UserID: userID, Balance: decimal.NewFromInt(450)}

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentByID", mock.Anything, mock.Anything, investmentID, userID).
		Return(existing, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, bankID, userID,
		mock.MatchedBy(deltaEquals(450)), mock.AnythingOfType("time.Time")).Return(refunded, nil).Once()
	suite.repos.investmentRepo.On("DeleteInvestmentTransactions", mock.Anything, mock.Anything, investmentID, userID).Return(nil).Once()
	suite.repos.investmentRepo.On("DeleteInvestment", mock.Anything, mock.Anything, investmentID, userID).Return(nil).Once()

	err := suite.service.Delete(ctx, investmentID, userID)

	suite.Require().NoError(err)
	suite.repos.bankRepo.AssertExpectations(suite.T())
	suite.repos.investmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestDelete_ZeroAmountSkipsRefund() {
	ctx := context.Background()
	userID := uuid.NewString()
	investmentID := uuid.NewString()
	existing := &domain.Investment{
		InvestmentID: investmentID, UserID: userID, CategoryID: uuid.NewString(), BankID: uuid.NewString(),
		Amount: decimal.Zero,
	}

	suite.repos.expectTx()
	suite.repos.investmentRepo.On("FindInvestmentByID", mock.Anything, mock.Anything, investmentID, userID).
		Return(existing, nil).Once()
	suite.repos.investmentRepo.On("DeleteInvestmentTransactions", mock.Anything, mock.Anything, investmentID, userID).Return(nil).Once()
	suite.repos.investmentRepo.On("DeleteInvestment", mock.Anything, mock.Anything, investmentID, userID).Return(nil).Once()

	err := suite.service.Delete(ctx, investmentID, userID)

	suite.Require().NoError(err)
	suite.repos.bankRepo.AssertNotCalled(suite.T(), "AdjustBalance")
	suite.repos.investmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestListInvestments_CarriesBankBalance() {
	ctx := context.Background()
	userID := uuid.NewString()
	invs := []domain.Investment{
		{
			InvestmentID: uuid.NewString(), UserID: userID, CategoryID: uuid.NewString(),
			BankID: uuid.NewString(), Amount: decimal.NewFromInt(400),
			CategoryName: "Stocks", BankName: "Checking", BankBalance: decimal.NewFromInt(600),
		},
	}

	suite.repos.investmentRepo.On("ListInvestments", ctx, userID).Return(invs, nil).Once()

	resp, err := suite.service.ListInvestments(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("Checking", resp[0].Bank.Name)
	suite.True(resp[0].Bank.Balance.Equal(decimal.NewFromInt(600)))
	suite.repos.investmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestListHistory_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	txns := []domain.InvestmentTransaction{
		{TransactionID: uuid.NewString(), CategoryName: "Stocks", BankName: "Checking", Amount: decimal.NewFromInt(100)},
	}

	suite.repos.investmentRepo.On("ListInvestmentHistory", ctx, userID).Return(txns, nil).Once()

	resp, err := suite.service.ListHistory(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("Stocks", resp[0].Category)
	suite.repos.investmentRepo.AssertExpectations(suite.T())
}

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
