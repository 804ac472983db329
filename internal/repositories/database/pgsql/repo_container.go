package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository around the shared
// pool. txMaxRetries bounds the conflict retry loop of the transaction
// coordinator; zero or negative falls back to DefaultTxMaxRetries.
func NewRepositoryProvider(dbPool *pgxpool.Pool, txMaxRetries int) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Tx:             &BaseRepository{Pool: dbPool, MaxRetries: txMaxRetries},
		BankRepo:       newPgxBankRepository(dbPool),
		ExpenseRepo:    newPgxExpenseRepository(dbPool),
		IncomeRepo:     newPgxIncomeRepository(dbPool),
		TransferRepo:   newPgxTransferRepository(dbPool),
		InvestmentRepo: newPgxInvestmentRepository(dbPool),
		AllocationRepo: newPgxAllocationRepository(dbPool),
		CategoryRepo:   newPgxCategoryRepository(dbPool),
		InsightsRepo:   newPgxInsightsRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
	}
}
