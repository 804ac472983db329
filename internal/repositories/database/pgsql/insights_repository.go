package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

type PgxInsightsRepository struct {
	BaseRepository
}

func newPgxInsightsRepository(pool *pgxpool.Pool) portsrepo.InsightsRepositoryFacade {
	return &PgxInsightsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InsightsRepositoryFacade = (*PgxInsightsRepository)(nil)

// CategoryTotals aggregates expense amounts per category, biggest spender first.
func (r *PgxInsightsRepository) CategoryTotals(ctx context.Context, userID string) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1
		GROUP BY category
		ORDER BY 2 DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total row: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}
	return totals, nil
}

// SpendingByCategory sums expenses for one category, matched case-insensitively.
func (r *PgxInsightsRepository) SpendingByCategory(ctx context.Context, category, userID string) (*domain.CategoryTotal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1 AND lower(category) = lower($2);
	`
	total := domain.CategoryTotal{Category: category, Total: decimal.Zero}
	if err := r.Pool.QueryRow(ctx, query, userID, category).Scan(&total.Total); err != nil {
		return nil, fmt.Errorf("failed to query spending for category %s: %w", category, err)
	}
	return &total, nil
}
