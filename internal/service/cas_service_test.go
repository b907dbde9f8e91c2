package service

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rapodaca/cas-number/pkg/cas"
)

func newTestService() CASService {
	return NewCASService(cas.NewGenerator(cas.WithSource(rand.NewPCG(11, 13))))
}

func TestGenerate(t *testing.T) {
	svc := newTestService()

	n, err := svc.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if valid, reason := svc.Validate(n.String()); !valid {
		t.Errorf("generated %q invalid: %s", n, reason)
	}

	batch, err := svc.GenerateBatch(25)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 25 {
		t.Errorf("len = %d, want 25", len(batch))
	}
	if _, err := svc.GenerateBatch(cas.MaxBatch + 1); err == nil {
		t.Error("oversized batch succeeded")
	}
}

func TestValidate(t *testing.T) {
	svc := newTestService()
	testCases := []struct {
		input  string
		valid  bool
		reason string
	}{
		{"7732-18-5", true, ""},
		{"7732-18-6", false, "check digit is 6, expected 5"},
		{"", false, "empty input"},
		{"07732-18-5", false, "first group must not start with 0"},
	}
	for _, tc := range testCases {
		valid, reason := svc.Validate(tc.input)
		if valid != tc.valid || reason != tc.reason {
			t.Errorf("Validate(%q) = (%v, %q), want (%v, %q)", tc.input, valid, reason, tc.valid, tc.reason)
		}
	}
}

func TestParse(t *testing.T) {
	svc := newTestService()

	got, err := svc.Parse("7732-18-5")
	if err != nil {
		t.Fatal(err)
	}
	want := &ParseResult{
		Number:      cas.MustParse("7732-18-5"),
		FirstGroup:  "7732",
		SecondGroup: "18",
		CheckDigit:  5,
		DigitCount:  6,
		WeightedSum: 105,
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b cas.Number) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}

	if _, err := svc.Parse("7732-18-6"); !errors.Is(err, cas.ErrInvalidNumber) {
		t.Errorf("Parse invalid = %v, want ErrInvalidNumber", err)
	}
}

func TestCompare(t *testing.T) {
	svc := newTestService()
	testCases := []struct {
		a, b string
		want int
	}{
		{"50-00-0", "7732-18-5", -1},
		{"7732-18-5", "7732-18-5", 0},
		{"7732-18-5", "1000000-00-9", 1},
	}
	for _, tc := range testCases {
		got, err := svc.Compare(tc.a, tc.b)
		if err != nil {
			t.Fatalf("Compare(%s, %s): %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}

	if _, err := svc.Compare("7732-18-5", "bogus"); !errors.Is(err, cas.ErrInvalidNumber) {
		t.Errorf("Compare with invalid = %v", err)
	}
}
