package repository

import (
	"context"

	"masterbikes-api/internal/infra"
)

// SequenceRepository issues rental sequence numbers from a database sequence.
// nextval is atomic in the store, so concurrent callers can never observe the
// same value; numbers are never derived from a max() read of existing rows.
type SequenceRepository struct{}

func NewSequenceRepository() *SequenceRepository {
	return &SequenceRepository{}
}

func (r *SequenceRepository) Next(ctx context.Context, db infra.DBTX) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx, `SELECT nextval('rental_seq')`).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to fetch next rental sequence number", err)
	}
	return n, nil
}
