package services

// ServiceContainer holds every service facade the handlers need.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Bank       BankSvcFacade
	Expense    ExpenseSvcFacade
	Income     IncomeSvcFacade
	Transfer   TransferSvcFacade
	Investment InvestmentSvcFacade
	Allocation AllocationSvcFacade
	Category   CategorySvcFacade
	Insights   InsightsSvcFacade
}
