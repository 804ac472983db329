package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

// MockTxManager is a mock type for the TxManager interface. When the
// configured expectation returns nil, the callback runs with a nil tx so the
// repository mocks behind it are exercised as they would be inside a real
// transaction. Returning a non-nil error simulates retry exhaustion without
// running the callback.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, nil)
}

// MockBankRepository is a mock type for the BankRepositoryFacade interface.
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) FindBankByID(ctx context.Context, bankID, userID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) ListBanks(ctx context.Context, userID string) ([]domain.Bank, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) UpdateBank(ctx context.Context, tx pgx.Tx, bank domain.Bank) error {
	args := m.Called(ctx, tx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) FindBankByIDForUpdate(ctx context.Context, tx pgx.Tx, bankID, userID string) (*domain.Bank, error) {
	args := m.Called(ctx, tx, bankID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) FindBanksByIDsForUpdate(ctx context.Context, tx pgx.Tx, bankIDs []string, userID string) (map[string]domain.Bank, error) {
	args := m.Called(ctx, tx, bankIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Bank), args.Error(1)
}

func (m *MockBankRepository) AdjustBalance(ctx context.Context, tx pgx.Tx, bankID, userID string, delta decimal.Decimal, now time.Time) (*domain.Bank, error) {
	args := m.Called(ctx, tx, bankID, userID, delta, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) DeleteBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	args := m.Called(ctx, tx, bankID, userID)
	return args.Error(0)
}

// MockExpenseRepository is a mock type for the ExpenseRepositoryFacade interface.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, tx pgx.Tx, expenseID, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, tx, expenseID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	args := m.Called(ctx, tx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, tx pgx.Tx, expenseID, userID string) error {
	args := m.Called(ctx, tx, expenseID, userID)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpensesByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	args := m.Called(ctx, tx, bankID, userID)
	return args.Error(0)
}

// MockIncomeRepository is a mock type for the IncomeRepositoryFacade interface.
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) ListIncomes(ctx context.Context, userID string) ([]domain.Income, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, tx pgx.Tx, incomeID, userID string) (*domain.Income, error) {
	args := m.Called(ctx, tx, incomeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, tx pgx.Tx, income domain.Income) error {
	args := m.Called(ctx, tx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, tx pgx.Tx, income domain.Income) error {
	args := m.Called(ctx, tx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, tx pgx.Tx, incomeID, userID string) error {
	args := m.Called(ctx, tx, incomeID, userID)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteIncomesByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	args := m.Called(ctx, tx, bankID, userID)
	return args.Error(0)
}

// MockTransferRepository is a mock type for the TransferRepositoryFacade interface.
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, userID string) ([]domain.Transfer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, tx pgx.Tx, transferID, userID string) (*domain.Transfer, error) {
	args := m.Called(ctx, tx, transferID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) FindTransfersByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) ([]domain.Transfer, error) {
	args := m.Called(ctx, tx, bankID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) DeleteTransfer(ctx context.Context, tx pgx.Tx, transferID, userID string) error {
	args := m.Called(ctx, tx, transferID, userID)
	return args.Error(0)
}

func (m *MockTransferRepository) DeleteTransfersByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	args := m.Called(ctx, tx, bankID, userID)
	return args.Error(0)
}

// MockInvestmentRepository is a mock type for the InvestmentRepositoryFacade interface.
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) ListInvestmentCategories(ctx context.Context, userID string) ([]domain.InvestmentCategory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentCategory), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentCategoryByID(ctx context.Context, tx pgx.Tx, categoryID, userID string) (*domain.InvestmentCategory, error) {
	args := m.Called(ctx, tx, categoryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentCategory), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentCategoryByName(ctx context.Context, tx pgx.Tx, name, userID string) (*domain.InvestmentCategory, error) {
	args := m.Called(ctx, tx, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvestmentCategory), args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestmentCategory(ctx context.Context, tx pgx.Tx, category domain.InvestmentCategory) error {
	args := m.Called(ctx, tx, category)
	return args.Error(0)
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) ListInvestmentHistory(ctx context.Context, userID string) ([]domain.InvestmentTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentTransaction), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, tx pgx.Tx, investmentID, userID string) (*domain.Investment, error) {
	args := m.Called(ctx, tx, investmentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentForUpdate(ctx context.Context, tx pgx.Tx, categoryID, bankID, userID string) (*domain.Investment, error) {
	args := m.Called(ctx, tx, categoryID, bankID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	args := m.Called(ctx, tx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) AddToInvestment(ctx context.Context, tx pgx.Tx, investmentID string, amount decimal.Decimal, date time.Time) error {
	args := m.Called(ctx, tx, investmentID, amount, date)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	args := m.Called(ctx, tx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestment(ctx context.Context, tx pgx.Tx, investmentID, userID string) error {
	args := m.Called(ctx, tx, investmentID, userID)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestmentsByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	args := m.Called(ctx, tx, bankID, userID)
	return args.Error(0)
}

func (m *MockInvestmentRepository) SaveInvestmentTransaction(ctx context.Context, tx pgx.Tx, txn domain.InvestmentTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockInvestmentRepository) DeleteInvestmentTransactions(ctx context.Context, tx pgx.Tx, investmentID, userID string) error {
	args := m.Called(ctx, tx, investmentID, userID)
	return args.Error(0)
}

// MockAllocationRepository is a mock type for the AllocationRepositoryFacade interface.
type MockAllocationRepository struct {
	mock.Mock
}

func (m *MockAllocationRepository) ListAllocationsByBank(ctx context.Context, bankID, userID string) ([]domain.Allocation, error) {
	args := m.Called(ctx, bankID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) ReplaceAllocations(ctx context.Context, tx pgx.Tx, bankID, userID string, allocations []domain.Allocation) error {
	args := m.Called(ctx, tx, bankID, userID, allocations)
	return args.Error(0)
}

func (m *MockAllocationRepository) DeleteAllocationsByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	args := m.Called(ctx, tx, bankID, userID)
	return args.Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByIDs(ctx context.Context, categoryIDs []string, userID string) (map[string]domain.Category, error) {
	args := m.Called(ctx, categoryIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	args := m.Called(ctx, categoryID, userID)
	return args.Error(0)
}

// MockInsightsRepository is a mock type for the InsightsRepositoryFacade interface.
type MockInsightsRepository struct {
	mock.Mock
}

func (m *MockInsightsRepository) CategoryTotals(ctx context.Context, userID string) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockInsightsRepository) SpendingByCategory(ctx context.Context, category, userID string) (*domain.CategoryTotal, error) {
	args := m.Called(ctx, category, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryTotal), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// mockRepos bundles one instance of every repository mock into the provider
// shape the service constructors take.
type mockRepos struct {
	txm            *MockTxManager
	bankRepo       *MockBankRepository
	expenseRepo    *MockExpenseRepository
	incomeRepo     *MockIncomeRepository
	transferRepo   *MockTransferRepository
	investmentRepo *MockInvestmentRepository
	allocationRepo *MockAllocationRepository
	categoryRepo   *MockCategoryRepository
	insightsRepo   *MockInsightsRepository
	userRepo       *MockUserRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		txm:            new(MockTxManager),
		bankRepo:       new(MockBankRepository),
		expenseRepo:    new(MockExpenseRepository),
		incomeRepo:     new(MockIncomeRepository),
		transferRepo:   new(MockTransferRepository),
		investmentRepo: new(MockInvestmentRepository),
		allocationRepo: new(MockAllocationRepository),
		categoryRepo:   new(MockCategoryRepository),
		insightsRepo:   new(MockInsightsRepository),
		userRepo:       new(MockUserRepository),
	}
}

func (r *mockRepos) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Tx:             r.txm,
		BankRepo:       r.bankRepo,
		ExpenseRepo:    r.expenseRepo,
		IncomeRepo:     r.incomeRepo,
		TransferRepo:   r.transferRepo,
		InvestmentRepo: r.investmentRepo,
		AllocationRepo: r.allocationRepo,
		CategoryRepo:   r.categoryRepo,
		InsightsRepo:   r.insightsRepo,
		UserRepo:       r.userRepo,
	}
}

// expectTx makes every RunInTx call execute its callback.
func (r *mockRepos) expectTx() {
	r.txm.On("RunInTx", mock.Anything, mock.Anything).Return(nil)
}
