package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

type PgxAllocationRepository struct {
	BaseRepository
}

func newPgxAllocationRepository(pool *pgxpool.Pool) portsrepo.AllocationRepositoryFacade {
	return &PgxAllocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AllocationRepositoryFacade = (*PgxAllocationRepository)(nil)

// ListAllocationsByBank returns the bank's allocation plan with category names.
func (r *PgxAllocationRepository) ListAllocationsByBank(ctx context.Context, bankID, userID string) ([]domain.Allocation, error) {
	query := `
		SELECT a.allocation_id, a.user_id, a.bank_id, a.category_id, a.amount, a.updated_at, c.name
		FROM allocations a
		JOIN categories c ON c.category_id = a.category_id
		WHERE a.bank_id = $1 AND a.user_id = $2
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, bankID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations for bank %s: %w", bankID, err)
	}
	defer rows.Close()

	allocs := []domain.Allocation{}
	for rows.Next() {
		var a domain.Allocation
		err := rows.Scan(&a.AllocationID, &a.UserID, &a.BankID, &a.CategoryID, &a.Amount, &a.UpdatedAt, &a.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation row: %w", err)
		}
		allocs = append(allocs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allocation rows: %w", err)
	}
	return allocs, nil
}

// ReplaceAllocations swaps the bank's plan for the given set atomically.
func (r *PgxAllocationRepository) ReplaceAllocations(ctx context.Context, tx pgx.Tx, bankID, userID string, allocations []domain.Allocation) error {
	_, err := tx.Exec(ctx, `DELETE FROM allocations WHERE bank_id = $1 AND user_id = $2;`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to clear allocations for bank %s: %w", bankID, err)
	}
	for _, a := range allocations {
		_, err := tx.Exec(ctx, `
			INSERT INTO allocations (allocation_id, user_id, bank_id, category_id, amount, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
			a.AllocationID, a.UserID, a.BankID, a.CategoryID, a.Amount, a.UpdatedAt,
		)
		if err != nil {
			return mapPgError(err, "failed to insert allocation for category "+a.CategoryID)
		}
	}
	return nil
}

// DeleteAllocationsByBank drops the plan when the bank goes away.
func (r *PgxAllocationRepository) DeleteAllocationsByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM allocations WHERE bank_id = $1 AND user_id = $2;`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to cascade allocations for bank %s: %w", bankID, err)
	}
	return nil
}
