package domain

import (
	"time"

	"github.com/rapodaca/cas-number/pkg/cas"
)

// GenerateRequest asks for one or more random CAS numbers.
// Count 0 means a single number.
type GenerateRequest struct {
	Count int `json:"count" binding:"min=0"`
}

// CompareRequest holds two CAS numbers to order.
type CompareRequest struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

// CompareResponse holds -1, 0 or +1.
type CompareResponse struct {
	Result int `json:"result"`
}

// ValidateResponse reports whether an input is a valid CAS number.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// SeedRequest asks for count random samples to be stored.
type SeedRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// SeedResponse describes a stored batch.
type SeedResponse struct {
	BatchID  string    `json:"batch_id"`
	Inserted int       `json:"inserted"`
	Samples  []*Sample `json:"samples"`
}

// SampleListResponse is one page of stored samples.
type SampleListResponse struct {
	Samples []*Sample `json:"samples"`
	Total   int64     `json:"total"`
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
}

// FixtureRequest asks for a fixture file of count numbers.
type FixtureRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// FixtureResponse describes an exported fixture file.
type FixtureResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	URL   string `json:"url"`
}

// FixtureInfo is one stored fixture file.
type FixtureInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// FixtureContentResponse carries the numbers read back from a fixture.
type FixtureContentResponse struct {
	Key     string       `json:"key"`
	Numbers []cas.Number `json:"numbers"`
}
