package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		name   string
		dir    domain.Direction
		amount decimal.Decimal
		want   decimal.Decimal
	}{
		{
			name:   "debit negates the amount",
			dir:    domain.Debit,
			amount: decimal.NewFromInt(100),
			want:   decimal.NewFromInt(-100),
		},
		{
			name:   "credit keeps the amount",
			dir:    domain.Credit,
			amount: decimal.NewFromInt(100),
			want:   decimal.NewFromInt(100),
		},
		{
			name:   "debit of zero stays zero",
			dir:    domain.Debit,
			amount: decimal.Zero,
			want:   decimal.Zero,
		},
		{
			name:   "fractional debit",
			dir:    domain.Debit,
			amount: decimal.RequireFromString("12.34"),
			want:   decimal.RequireFromString("-12.34"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dir.Delta(tt.amount)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDirection_RequiresFunds(t *testing.T) {
	assert.True(t, domain.Debit.RequiresFunds())
	assert.False(t, domain.Credit.RequiresFunds())
}

// Reversal is always the negation of the original delta, whichever direction
// the event had.
func TestDirection_ReversalRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("57.25")
	for _, dir := range []domain.Direction{domain.Debit, domain.Credit} {
		applied := dir.Delta(amount)
		reversed := dir.Delta(amount).Neg()
		assert.True(t, applied.Add(reversed).IsZero())
	}
}
