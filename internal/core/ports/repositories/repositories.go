package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Tx             TxManager
	BankRepo       BankRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	IncomeRepo     IncomeRepositoryFacade
	TransferRepo   TransferRepositoryFacade
	InvestmentRepo InvestmentRepositoryFacade
	AllocationRepo AllocationRepositoryFacade
	CategoryRepo   CategoryRepositoryFacade
	InsightsRepo   InsightsRepositoryFacade
	UserRepo       UserRepositoryFacade
}
