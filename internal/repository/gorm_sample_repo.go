package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rapodaca/cas-number/internal/domain"
	"github.com/rapodaca/cas-number/pkg/cas"
)

// GormSampleRepository implements SampleRepository using GORM.
type GormSampleRepository struct {
	db *gorm.DB
}

// NewGormSampleRepository creates a new GORM-based sample repository.
func NewGormSampleRepository(db *gorm.DB) *GormSampleRepository {
	return &GormSampleRepository{db: db}
}

// CreateBatch stores numbers under batchID. Numbers that are already
// stored, including ones committed concurrently, are skipped by the unique
// index; the result holds only the rows this call inserted, in insert order.
func (r *GormSampleRepository) CreateBatch(ctx context.Context, batchID string, numbers []cas.Number) ([]*domain.Sample, error) {
	if len(numbers) == 0 {
		return []*domain.Sample{}, nil
	}

	models := make([]*domain.SampleModel, 0, len(numbers))
	texts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		models = append(models, &domain.SampleModel{Number: n, BatchID: batchID})
		texts = append(texts, n.String())
	}

	var inserted []domain.SampleModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cas_number"}},
			DoNothing: true,
		}).CreateInBatches(models, 100).Error
		if err != nil {
			return err
		}
		// Skipped rows get no usable ID back on every dialect, so read the
		// batch's rows instead of trusting the models.
		return tx.
			Where("batch_id = ? AND cas_number IN ?", batchID, texts).
			Order("id ASC").
			Find(&inserted).Error
	})
	if err != nil {
		return nil, r.handleError(err)
	}

	samples := make([]*domain.Sample, 0, len(inserted))
	for i := range inserted {
		samples = append(samples, inserted[i].ToDomain())
	}
	return samples, nil
}

// GetByNumber retrieves a sample by its CAS number.
func (r *GormSampleRepository) GetByNumber(ctx context.Context, n cas.Number) (*domain.Sample, error) {
	var model domain.SampleModel
	result := r.db.WithContext(ctx).First(&model, "cas_number = ?", n)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSampleNotFound
		}
		return nil, result.Error
	}
	return model.ToDomain(), nil
}

// List returns samples ordered by CAS number.
func (r *GormSampleRepository) List(ctx context.Context, limit, offset int) ([]*domain.Sample, error) {
	var models []domain.SampleModel
	err := r.db.WithContext(ctx).
		Order(r.orderByNumber()).
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	samples := make([]*domain.Sample, 0, len(models))
	for i := range models {
		samples = append(samples, models[i].ToDomain())
	}
	return samples, nil
}

// Count returns the number of stored samples.
func (r *GormSampleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SampleModel{}).Count(&count).Error
	return count, err
}

// orderByNumber sorts byte-wise regardless of the column's default
// collation, matching cas.Compare.
func (r *GormSampleRepository) orderByNumber() string {
	switch r.db.Dialector.Name() {
	case "postgres":
		return `cas_number COLLATE "C" ASC`
	case "mysql":
		return "cas_number COLLATE utf8mb4_bin ASC"
	default:
		return "cas_number ASC"
	}
}

// handleError converts database-specific errors to domain errors.
func (r *GormSampleRepository) handleError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateNumber
	}

	errStr := err.Error()
	// PostgreSQL, SQLite, MySQL unique constraint violations
	if strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "Duplicate entry") {
		return ErrDuplicateNumber
	}
	return err
}
