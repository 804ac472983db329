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

type TransferServiceTestSuite struct {
	suite.Suite
	repos   *mockRepos
	service portssvc.TransferSvcFacade
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.service = services.NewTransferService(suite.repos.provider())
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	req := dto.CreateTransferRequest{
		FromBankID: fromID,
		ToBankID:   toID,
		Amount:     decimal.NewFromInt(150),
		Notes:      "rent share",
		Date:       time.Now(),
	}
	from := domain.Bank{BankID: fromID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(400)}
	to := domain.Bank{BankID: toID, UserID: userID, Name: "Savings", Balance: decimal.NewFromInt(50)}
	fromAfter := &domain.Bank{BankID: fromID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(250)}
	toAfter := &domain.Bank{BankID: toID, UserID: userID, Name: "Savings", Balance: decimal.NewFromInt(200)}

	suite.repos.expectTx()
	suite.repos.bankRepo.On("FindBanksByIDsForUpdate", mock.Anything, mock.Anything, []string{fromID, toID}, userID).
		Return(map[string]domain.Bank{fromID: from, toID: to}, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, fromID, userID,
		mock.MatchedBy(deltaEquals(-150)), mock.AnythingOfType("time.Time")).Return(fromAfter, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, toID, userID,
		mock.MatchedBy(deltaEquals(150)), mock.AnythingOfType("time.Time")).Return(toAfter, nil).Once()
	suite.repos.transferRepo.On("SaveTransfer", mock.Anything, mock.Anything, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.FromBankID == fromID && t.ToBankID == toID && t.Amount.Equal(decimal.NewFromInt(150))
	})).Return(nil).Once()

	resp, err := suite.service.CreateTransfer(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.FromBankBalance.Equal(decimal.NewFromInt(250)))
	suite.True(resp.ToBankBalance.Equal(decimal.NewFromInt(200)))
	suite.Equal("Checking", resp.FromBank.Name)
	suite.Equal("Savings", resp.ToBank.Name)
	suite.repos.bankRepo.AssertExpectations(suite.T())
	suite.repos.transferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_SameBank() {
	bankID := uuid.NewString()
	req := dto.CreateTransferRequest{
		FromBankID: bankID,
		ToBankID:   bankID,
		Amount:     decimal.NewFromInt(10),
		Date:       time.Now(),
	}

	resp, err := suite.service.CreateTransfer(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repos.txm.AssertNotCalled(suite.T(), "RunInTx")
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_InsufficientFunds() {
	ctx := context.Background()
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	req := dto.CreateTransferRequest{
		FromBankID: fromID,
		ToBankID:   toID,
		Amount:     decimal.NewFromInt(500),
		Date:       time.Now(),
	}
	from := domain.Bank{BankID: fromID, UserID: userID, Name: "Checking", Balance: decimal.NewFromInt(499)}
	to := domain.Bank{BankID: toID, UserID: userID, Name: "Savings", Balance: decimal.Zero}

	suite.repos.expectTx()
	suite.repos.bankRepo.On("FindBanksByIDsForUpdate", mock.Anything, mock.Anything, []string{fromID, toID}, userID).
		Return(map[string]domain.Bank{fromID: from, toID: to}, nil).Once()

	resp, err := suite.service.CreateTransfer(ctx, req, userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	// Neither leg may land when the source cannot cover the amount.
	suite.repos.bankRepo.AssertNotCalled(suite.T(), "AdjustBalance")
	suite.repos.transferRepo.AssertNotCalled(suite.T(), "SaveTransfer")
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_ConflictAfterRetries() {
	req := dto.CreateTransferRequest{
		FromBankID: uuid.NewString(),
		ToBankID:   uuid.NewString(),
		Amount:     decimal.NewFromInt(10),
		Date:       time.Now(),
	}

	suite.repos.txm.On("RunInTx", mock.Anything, mock.Anything).Return(apperrors.ErrConflict).Once()

	resp, err := suite.service.CreateTransfer(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.repos.txm.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestListTransfers_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	transfers := []domain.Transfer{
		{TransferID: uuid.NewString(), FromBankName: "Checking", ToBankName: "Savings", Amount: decimal.NewFromInt(25)},
	}

	suite.repos.transferRepo.On("ListTransfers", ctx, userID).Return(transfers, nil).Once()

	resp, err := suite.service.ListTransfers(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("Checking", resp[0].FromBank.Name)
	suite.repos.transferRepo.AssertExpectations(suite.T())
}

// Deleting a transfer refunds the source and debits the destination, even
// when that leaves the destination negative.
func (suite *TransferServiceTestSuite) TestDeleteTransfer_ReversesBothLegs() {
	ctx := context.Background()
	userID := uuid.NewString()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	transferID := uuid.NewString()
	existing := &domain.Transfer{
		TransferID: transferID, UserID: userID,
		FromBankID: fromID, ToBankID: toID, Amount: decimal.NewFromInt(80),
	}
	fromAfter := &domain.Bank{BankID: fromID, UserID: userID, Balance: decimal.NewFromInt(180)}
	toAfter := &domain.Bank{BankID: toID, UserID: userID, Balance: decimal.NewFromInt(-30)}

	suite.repos.expectTx()
	suite.repos.transferRepo.On("FindTransferByID", mock.Anything, mock.Anything, transferID, userID).Return(existing, nil).Once()
	suite.repos.bankRepo.On("FindBanksByIDsForUpdate", mock.Anything, mock.Anything, []string{fromID, toID}, userID).
		Return(map[string]domain.Bank{}, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, fromID, userID,
		mock.MatchedBy(deltaEquals(80)), mock.AnythingOfType("time.Time")).Return(fromAfter, nil).Once()
	suite.repos.bankRepo.On("AdjustBalance", mock.Anything, mock.Anything, toID, userID,
		mock.MatchedBy(deltaEquals(-80)), mock.AnythingOfType("time.Time")).Return(toAfter, nil).Once()
	suite.repos.transferRepo.On("DeleteTransfer", mock.Anything, mock.Anything, transferID, userID).Return(nil).Once()

	err := suite.service.DeleteTransfer(ctx, transferID, userID)

	suite.Require().NoError(err)
	suite.repos.bankRepo.AssertExpectations(suite.T())
	suite.repos.transferRepo.AssertExpectations(suite.T())
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
