package domain

import (
	"time"

	"github.com/rapodaca/cas-number/pkg/cas"
)

// Sample is a CAS number persisted as seed data.
type Sample struct {
	ID        uint       `json:"id"`
	Number    cas.Number `json:"number"`
	BatchID   string     `json:"batch_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// SampleModel is the GORM model for the cas_samples table.
// The CAS column uses cas.Number's Scanner/Valuer, so rows that are not
// well-formed CAS numbers fail to load.
type SampleModel struct {
	ID        uint       `gorm:"primaryKey"`
	Number    cas.Number `gorm:"column:cas_number;uniqueIndex;not null"`
	BatchID   string     `gorm:"type:varchar(27);index;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

// TableName specifies the table name for SampleModel.
func (SampleModel) TableName() string {
	return "cas_samples"
}

// ToDomain converts SampleModel to domain Sample.
func (m *SampleModel) ToDomain() *Sample {
	return &Sample{
		ID:        m.ID,
		Number:    m.Number,
		BatchID:   m.BatchID,
		CreatedAt: m.CreatedAt,
	}
}
