//go:build unit

package rental_test

import (
	"testing"
	"time"

	"masterbikes-api/internal/domain/rental"
	"masterbikes-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RentalBuilder)
	errIs  error
}

func TestRental(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, int64(1), actual.SequenceNumber())
		assert.Equal(t, rental.StatusActive, actual.Status())
		assert.True(t, actual.IsActive())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, "12.345.678-9", actual.Customer().Rut())
	})

	t.Run("period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "end before start",
				mutate: func(b *builder.RentalBuilder) {
					b.EndDate = b.StartDate.AddDate(0, 0, -1)
				},
				errIs: rental.ErrEndBeforeStart,
			},
			{
				name: "same day rental",
				mutate: func(b *builder.RentalBuilder) {
					b.EndDate = b.StartDate
				},
			},
			{
				name: "time of day is ignored",
				mutate: func(b *builder.RentalBuilder) {
					b.StartDate = b.StartDate.Add(23 * time.Hour)
					b.EndDate = b.StartDate.Add(30 * time.Minute)
				},
			},
		})
	})

	t.Run("customer validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty rut",
				mutate: func(b *builder.RentalBuilder) { b.CustomerRut = "" },
				errIs:  rental.ErrEmptyRut,
			},
			{
				name:   "whitespace-only rut",
				mutate: func(b *builder.RentalBuilder) { b.CustomerRut = "   " },
				errIs:  rental.ErrEmptyRut,
			},
			{
				name:   "rut without other contact fields",
				mutate: func(b *builder.RentalBuilder) { b.CustomerName, b.CustomerEmail, b.CustomerPhone = "", "", "" },
			},
		})
	})

	t.Run("quote validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative daily rate",
				mutate: func(b *builder.RentalBuilder) { b.DailyRate = -1 },
				errIs:  rental.ErrNegativeRate,
			},
			{
				name:   "negative deposit",
				mutate: func(b *builder.RentalBuilder) { b.Deposit = -1 },
				errIs:  rental.ErrNegativeDeposit,
			},
			{
				name:   "zero rate and deposit",
				mutate: func(b *builder.RentalBuilder) { b.DailyRate, b.Deposit = 0, 0 },
			},
		})
	})
}

func TestRentalPricing(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		dailyRate  int
		wantDays   int
		wantTotal  int
	}{
		{
			name:      "three calendar days inclusive",
			start:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			dailyRate: 15000,
			wantDays:  3,
			wantTotal: 45000,
		},
		{
			name:      "same day counts as one",
			start:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			dailyRate: 15000,
			wantDays:  1,
			wantTotal: 15000,
		},
		{
			name:      "late start still counts whole days",
			start:     time.Date(2025, 3, 12, 23, 59, 0, 0, time.UTC),
			end:       time.Date(2025, 3, 13, 0, 1, 0, 0, time.UTC),
			dailyRate: 10000,
			wantDays:  2,
			wantTotal: 20000,
		},
		{
			name:      "month boundary",
			start:     time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			dailyRate: 10000,
			wantDays:  4,
			wantTotal: 40000,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period, err := rental.NewPeriod(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDays, period.Days())

			quote, err := rental.NewQuote(period, tc.dailyRate, 50000)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDays, quote.Days())
			assert.Equal(t, tc.wantTotal, quote.Total())
			// The deposit is carried on the order but never added to the total.
			assert.Equal(t, 50000, quote.Deposit())
		})
	}
}

func TestRentalFinish(t *testing.T) {
	t.Run("finish active rental", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		finishedAt := actual.CreatedAt().Add(48 * time.Hour)
		require.NoError(t, actual.Finish(finishedAt))

		assert.Equal(t, rental.StatusFinished, actual.Status())
		assert.False(t, actual.IsActive())
		assert.Equal(t, finishedAt, actual.UpdatedAt())
	})

	t.Run("finishing twice fails", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		now := actual.CreatedAt().Add(time.Hour)
		require.NoError(t, actual.Finish(now))

		err = actual.Finish(now.Add(time.Hour))
		assert.ErrorIs(t, err, rental.ErrAlreadyFinished)
		assert.Equal(t, now, actual.UpdatedAt(), "failed finish must not touch the entity")
	})
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, rental.StatusActive.IsValid())
	assert.True(t, rental.StatusFinished.IsValid())
	assert.False(t, rental.Status("cancelado").IsValid())
	assert.False(t, rental.Status("").IsValid())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRentalBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
