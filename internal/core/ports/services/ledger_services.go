package services

import (
	"context"

	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// BankSvcFacade exposes bank account operations.
type BankSvcFacade interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*dto.BankResponse, error)
	ListBanks(ctx context.Context, userID string) ([]dto.BankResponse, error)
	UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest, userID string) (*dto.BankResponse, error)
	// DeleteBank removes the bank and cascades every event referencing it,
	// reversing cascaded transfer effects on surviving counterparty banks.
	DeleteBank(ctx context.Context, bankID, userID string) error
}

// ExpenseSvcFacade exposes expense ledger operations.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*dto.ExpenseResponse, error)
	ListExpenses(ctx context.Context, userID string) ([]dto.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, expenseID, userID string) error
}

// IncomeSvcFacade exposes income ledger operations.
type IncomeSvcFacade interface {
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*dto.IncomeResponse, error)
	ListIncomes(ctx context.Context, userID string) ([]dto.IncomeResponse, error)
	UpdateIncome(ctx context.Context, incomeID string, req dto.UpdateIncomeRequest, userID string) (*dto.IncomeResponse, error)
	DeleteIncome(ctx context.Context, incomeID, userID string) error
}

// TransferSvcFacade exposes transfer ledger operations.
type TransferSvcFacade interface {
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*dto.TransferCreateResponse, error)
	ListTransfers(ctx context.Context, userID string) ([]dto.TransferResponse, error)
	DeleteTransfer(ctx context.Context, transferID, userID string) error
}
