package repository

import (
	"context"
	"errors"

	"github.com/rapodaca/cas-number/internal/domain"
	"github.com/rapodaca/cas-number/pkg/cas"
)

var (
	ErrSampleNotFound  = errors.New("sample not found")
	ErrDuplicateNumber = errors.New("cas number already stored")
)

// SampleRepository defines persistence for seeded CAS numbers.
type SampleRepository interface {
	// CreateBatch stores numbers under batchID in one transaction,
	// skipping numbers that are already stored. It returns the inserted rows.
	CreateBatch(ctx context.Context, batchID string, numbers []cas.Number) ([]*domain.Sample, error)
	GetByNumber(ctx context.Context, n cas.Number) (*domain.Sample, error)
	// List returns samples in ascending CAS number order.
	List(ctx context.Context, limit, offset int) ([]*domain.Sample, error)
	Count(ctx context.Context) (int64, error)
}
