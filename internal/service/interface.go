package service

import (
	"github.com/rapodaca/cas-number/pkg/cas"
)

// CASService defines generation, validation and parsing of CAS numbers.
type CASService interface {
	Generate() (cas.Number, error)
	GenerateBatch(count int) ([]cas.Number, error)
	Validate(text string) (bool, string) // (valid, reason)
	Parse(text string) (*ParseResult, error)
	Compare(a, b string) (int, error)
}

// ParseResult holds the parsed fields of a CAS number.
type ParseResult struct {
	Number      cas.Number `json:"number"`
	FirstGroup  string     `json:"first_group"`
	SecondGroup string     `json:"second_group"`
	CheckDigit  int        `json:"check_digit"`
	DigitCount  int        `json:"digit_count"`  // digits covered by the checksum
	WeightedSum int        `json:"weighted_sum"` // checksum before mod 10
}
