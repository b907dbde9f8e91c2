package cas

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{"water", "7732-18-5", true},
		{"formaldehyde", "50-00-0", true},
		{"ethanol", "64-17-5", true},
		{"caffeine", "58-08-2", true},
		{"carbon", "7440-44-0", true},
		{"shortest", "10-00-4", true},
		{"longest", "1000000-00-9", true},
		{"wrong checksum", "7732-18-6", false},
		{"longest wrong checksum", "1000000-00-3", false},
		{"empty", "", false},
		{"single digit first group", "0-00-0", false},
		{"leading zero", "07732-18-5", false},
		{"first group too long", "10000000-00-8", false},
		{"second group too short", "7732-1-5", false},
		{"second group too long", "7732-185-0", false},
		{"missing first group", "-18-5", false},
		{"check group too long", "7732-18-55", false},
		{"missing check group", "7732-18-", false},
		{"letter", "7732-1a-5", false},
		{"spaces", "7732 18 5", false},
		{"missing hyphen", "773218-5", false},
		{"extra hyphen", "7732--18-5", false},
		{"leading space", " 7732-18-5", false},
		{"trailing space", "7732-18-5 ", false},
		{"trailing newline", "7732-18-5\n", false},
		{"fullwidth digits", "７７３２-18-5", false},
		{"unicode hyphen", "7732‐18‐5", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(tc.input); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestCheckReason(t *testing.T) {
	testCases := []struct {
		input  string
		reason string
	}{
		{"", "empty input"},
		{"7732-1a-5", `unexpected byte 'a' at offset 6`},
		{"773218-5", "expected 3 hyphen-separated groups, got 2"},
		{"0-00-0", "first group must have 2 to 7 digits, got 1"},
		{"07732-18-5", "first group must not start with 0"},
		{"7732-185-0", "second group must have 2 digits, got 3"},
		{"7732-18-55", "check group must have 1 digit, got 2"},
		{"7732-18-6", "check digit is 6, expected 5"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			err := Check(tc.input)
			if err == nil {
				t.Fatalf("Check(%q) = nil, want error", tc.input)
			}
			var invalidErr *InvalidNumberError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("Check(%q) error type = %T, want *InvalidNumberError", tc.input, err)
			}
			if invalidErr.Input != tc.input {
				t.Errorf("Input = %q, want %q", invalidErr.Input, tc.input)
			}
			if invalidErr.Reason != tc.reason {
				t.Errorf("Reason = %q, want %q", invalidErr.Reason, tc.reason)
			}
			if !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("errors.Is(err, ErrInvalidNumber) = false")
			}
			if !strings.Contains(err.Error(), tc.reason) {
				t.Errorf("Error() = %q, missing reason", err.Error())
			}
		})
	}
}

func TestWeightedSum(t *testing.T) {
	// 6·7 + 5·7 + 4·3 + 3·2 + 2·1 + 1·8
	if got := weightedSum("773218"); got != 105 {
		t.Errorf("weightedSum(773218) = %d, want 105", got)
	}
	if got := weightedSum("100000000"); got != 9 {
		t.Errorf("weightedSum(100000000) = %d, want 9", got)
	}
}

// Every two-digit first group with every second group has exactly one
// valid check digit.
func TestExactlyOneCheckDigit(t *testing.T) {
	for first := 10; first <= 99; first++ {
		for second := 0; second <= 99; second++ {
			valid := 0
			for check := 0; check <= 9; check++ {
				text := strings.Join([]string{itoa(first, 2), itoa(second, 2), itoa(check, 1)}, "-")
				if Validate(text) {
					valid++
				}
			}
			if valid != 1 {
				t.Fatalf("%02d-%02d: %d valid check digits, want 1", first, second, valid)
			}
		}
	}
}

func itoa(v, width int) string {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = byte('0' + v%10)
		v /= 10
	}
	return string(b)
}
