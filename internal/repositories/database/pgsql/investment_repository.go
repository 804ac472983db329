package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

type PgxInvestmentRepository struct {
	BaseRepository
}

// newPgxInvestmentRepository creates a new repository for investments, their
// categories and their contribution history.
func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryFacade {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

// --- Investment categories ---

// ListInvestmentCategories returns the owner's categories, name asc.
func (r *PgxInvestmentRepository) ListInvestmentCategories(ctx context.Context, userID string) ([]domain.InvestmentCategory, error) {
	query := `
		SELECT category_id, user_id, name, created_at
		FROM investment_categories
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment categories: %w", err)
	}
	defer rows.Close()

	cats := []domain.InvestmentCategory{}
	for rows.Next() {
		var c domain.InvestmentCategory
		if err := rows.Scan(&c.CategoryID, &c.UserID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan investment category row: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment category rows: %w", err)
	}
	return cats, nil
}

func scanInvestmentCategory(row pgx.Row) (*domain.InvestmentCategory, error) {
	var c domain.InvestmentCategory
	if err := row.Scan(&c.CategoryID, &c.UserID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan investment category: %w", err)
	}
	return &c, nil
}

// FindInvestmentCategoryByID retrieves a category by id for the owner.
func (r *PgxInvestmentRepository) FindInvestmentCategoryByID(ctx context.Context, tx pgx.Tx, categoryID, userID string) (*domain.InvestmentCategory, error) {
	query := `
		SELECT category_id, user_id, name, created_at
		FROM investment_categories
		WHERE category_id = $1 AND user_id = $2;
	`
	return scanInvestmentCategory(tx.QueryRow(ctx, query, categoryID, userID))
}

// FindInvestmentCategoryByName matches case-insensitively.
func (r *PgxInvestmentRepository) FindInvestmentCategoryByName(ctx context.Context, tx pgx.Tx, name, userID string) (*domain.InvestmentCategory, error) {
	query := `
		SELECT category_id, user_id, name, created_at
		FROM investment_categories
		WHERE lower(name) = lower($1) AND user_id = $2;
	`
	return scanInvestmentCategory(tx.QueryRow(ctx, query, name, userID))
}

// SaveInvestmentCategory inserts a category inside the caller's transaction.
func (r *PgxInvestmentRepository) SaveInvestmentCategory(ctx context.Context, tx pgx.Tx, category domain.InvestmentCategory) error {
	query := `
		INSERT INTO investment_categories (category_id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := tx.Exec(ctx, query, category.CategoryID, category.UserID, category.Name, category.CreatedAt)
	if err != nil {
		return mapPgError(err, "failed to save investment category "+category.Name)
	}
	return nil
}

// --- Investments ---

const investmentSelect = `
	SELECT i.investment_id, i.user_id, i.category_id, i.bank_id, i.amount, i.date, i.created_at,
	       c.name, b.name, b.balance
	FROM investments i
	JOIN investment_categories c ON c.category_id = i.category_id
	JOIN banks b ON b.bank_id = i.bank_id
`

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(
		&inv.InvestmentID, &inv.UserID, &inv.CategoryID, &inv.BankID, &inv.Amount, &inv.Date,
		&inv.CreatedAt, &inv.CategoryName, &inv.BankName, &inv.BankBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan investment row: %w", err)
	}
	return &inv, nil
}

// ListInvestments returns the owner's investments, date desc, populated.
func (r *PgxInvestmentRepository) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := investmentSelect + ` WHERE i.user_id = $1 ORDER BY i.date DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments for user %s: %w", userID, err)
	}
	defer rows.Close()

	invs := []domain.Investment{}
	for rows.Next() {
		var inv domain.Investment
		err := rows.Scan(
			&inv.InvestmentID, &inv.UserID, &inv.CategoryID, &inv.BankID, &inv.Amount, &inv.Date,
			&inv.CreatedAt, &inv.CategoryName, &inv.BankName, &inv.BankBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", err)
	}
	return invs, nil
}

// ListInvestmentHistory returns all contribution records, date desc.
func (r *PgxInvestmentRepository) ListInvestmentHistory(ctx context.Context, userID string) ([]domain.InvestmentTransaction, error) {
	query := `
		SELECT t.transaction_id, t.investment_id, t.user_id, t.bank_id, t.amount, t.name, t.notes,
		       t.date, t.created_at, c.name, b.name
		FROM investment_transactions t
		JOIN investments i ON i.investment_id = t.investment_id
		JOIN investment_categories c ON c.category_id = i.category_id
		JOIN banks b ON b.bank_id = t.bank_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment history for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.InvestmentTransaction{}
	for rows.Next() {
		var t domain.InvestmentTransaction
		err := rows.Scan(
			&t.TransactionID, &t.InvestmentID, &t.UserID, &t.BankID, &t.Amount, &t.Name, &t.Notes,
			&t.Date, &t.CreatedAt, &t.CategoryName, &t.BankName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment transaction rows: %w", err)
	}
	return txns, nil
}

// FindInvestmentByID retrieves one investment for the owner within the
// transaction, locking it so a concurrent contribution or delete serializes.
func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, tx pgx.Tx, investmentID, userID string) (*domain.Investment, error) {
	query := investmentSelect + ` WHERE i.investment_id = $1 AND i.user_id = $2 FOR UPDATE OF i;`
	return scanInvestment(tx.QueryRow(ctx, query, investmentID, userID))
}

// FindInvestmentForUpdate locks the unique (category, bank, owner) row.
func (r *PgxInvestmentRepository) FindInvestmentForUpdate(ctx context.Context, tx pgx.Tx, categoryID, bankID, userID string) (*domain.Investment, error) {
	query := investmentSelect + ` WHERE i.category_id = $1 AND i.bank_id = $2 AND i.user_id = $3 FOR UPDATE OF i;`
	return scanInvestment(tx.QueryRow(ctx, query, categoryID, bankID, userID))
}

// SaveInvestment inserts a new investment row. The unique index on
// (user_id, category_id, bank_id) rejects a duplicate triple.
func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	query := `
		INSERT INTO investments (investment_id, user_id, category_id, bank_id, amount, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		investment.InvestmentID, investment.UserID, investment.CategoryID, investment.BankID,
		investment.Amount, investment.Date, investment.CreatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save investment "+investment.InvestmentID)
	}
	return nil
}

// AddToInvestment adds a contribution to the cumulative amount and moves the
// investment date to the contribution's date.
func (r *PgxInvestmentRepository) AddToInvestment(ctx context.Context, tx pgx.Tx, investmentID string, amount decimal.Decimal, date time.Time) error {
	query := `
		UPDATE investments
		SET amount = amount + $2, date = $3
		WHERE investment_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, investmentID, amount, date)
	if err != nil {
		return fmt.Errorf("failed to add to investment %s: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateInvestment overwrites amount and date directly (manual correction).
func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	query := `
		UPDATE investments
		SET amount = $3, date = $4
		WHERE investment_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		investment.InvestmentID, investment.UserID, investment.Amount, investment.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment %s: %w", investment.InvestmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvestment removes the investment row.
func (r *PgxInvestmentRepository) DeleteInvestment(ctx context.Context, tx pgx.Tx, investmentID, userID string) error {
	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM investments WHERE investment_id = $1 AND user_id = $2;`, investmentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvestmentsByBank removes all investments funded by the bank along
// with their history (cascade).
func (r *PgxInvestmentRepository) DeleteInvestmentsByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM investment_transactions
		WHERE user_id = $2 AND investment_id IN (
			SELECT investment_id FROM investments WHERE bank_id = $1 AND user_id = $2
		);`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to cascade investment history for bank %s: %w", bankID, err)
	}
	_, err = tx.Exec(ctx, `DELETE FROM investments WHERE bank_id = $1 AND user_id = $2;`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to cascade investments for bank %s: %w", bankID, err)
	}
	return nil
}

// --- Contribution history ---

// SaveInvestmentTransaction appends one history record.
func (r *PgxInvestmentRepository) SaveInvestmentTransaction(ctx context.Context, tx pgx.Tx, txn domain.InvestmentTransaction) error {
	query := `
		INSERT INTO investment_transactions (transaction_id, investment_id, user_id, bank_id, amount, name, notes, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID, txn.InvestmentID, txn.UserID, txn.BankID, txn.Amount,
		txn.Name, txn.Notes, txn.Date, txn.CreatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save investment transaction "+txn.TransactionID)
	}
	return nil
}

// DeleteInvestmentTransactions removes an investment's whole history.
func (r *PgxInvestmentRepository) DeleteInvestmentTransactions(ctx context.Context, tx pgx.Tx, investmentID, userID string) error {
	_, err := tx.Exec(ctx,
		`DELETE FROM investment_transactions WHERE investment_id = $1 AND user_id = $2;`,
		investmentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete history for investment %s: %w", investmentID, err)
	}
	return nil
}
