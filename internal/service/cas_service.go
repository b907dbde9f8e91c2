package service

import (
	"errors"

	"github.com/rapodaca/cas-number/pkg/cas"
)

type casService struct {
	gen *cas.Generator
}

// NewCASService creates a CASService drawing from gen.
func NewCASService(gen *cas.Generator) CASService {
	return &casService{gen: gen}
}

func (s *casService) Generate() (cas.Number, error) {
	return s.gen.Generate(), nil
}

func (s *casService) GenerateBatch(count int) ([]cas.Number, error) {
	return s.gen.GenerateBatch(count)
}

func (s *casService) Validate(text string) (bool, string) {
	if err := cas.Check(text); err != nil {
		return false, reason(err)
	}
	return true, ""
}

func (s *casService) Parse(text string) (*ParseResult, error) {
	n, err := cas.Parse(text)
	if err != nil {
		return nil, err
	}

	first, second, check := n.Segments()
	return &ParseResult{
		Number:      n,
		FirstGroup:  first,
		SecondGroup: second,
		CheckDigit:  check,
		DigitCount:  len(first) + len(second),
		WeightedSum: n.WeightedSum(),
	}, nil
}

func (s *casService) Compare(a, b string) (int, error) {
	na, err := cas.Parse(a)
	if err != nil {
		return 0, err
	}
	nb, err := cas.Parse(b)
	if err != nil {
		return 0, err
	}
	return cas.Compare(na, nb), nil
}

func reason(err error) string {
	var invalidErr *cas.InvalidNumberError
	if errors.As(err, &invalidErr) {
		return invalidErr.Reason
	}
	return err.Error()
}
