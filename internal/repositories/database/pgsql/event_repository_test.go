package pgsql

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
)

// Event rows read inside an update or delete scope must be locked, so two
// concurrent scopes over the same event serialize instead of one reversing
// an amount the other already changed.

func TestFindExpenseByID_LocksEventRow(t *testing.T) {
	repo := &PgxExpenseRepository{}
	tx := &stubTx{}

	_, err := repo.FindExpenseByID(context.Background(), tx, "e1", "u1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.True(t, strings.Contains(tx.lastSQL, "FOR UPDATE"))
}

func TestFindIncomeByID_LocksEventRow(t *testing.T) {
	repo := &PgxIncomeRepository{}
	tx := &stubTx{}

	_, err := repo.FindIncomeByID(context.Background(), tx, "i1", "u1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.True(t, strings.Contains(tx.lastSQL, "FOR UPDATE"))
}

func TestFindInvestmentByID_LocksEventRow(t *testing.T) {
	repo := &PgxInvestmentRepository{}
	tx := &stubTx{}

	_, err := repo.FindInvestmentByID(context.Background(), tx, "inv1", "u1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.True(t, strings.Contains(tx.lastSQL, "FOR UPDATE"))
}
