package cas

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinLength is the byte length of the shortest canonical form, e.g. 10-00-4.
	MinLength = 7
	// MaxLength is the byte length of the longest canonical form, e.g. 1000000-00-9.
	MaxLength = 11
)

// Go's \d only matches ASCII digits.
var pattern = regexp.MustCompile(`^([1-9]\d{1,6})-(\d{2})-(\d)$`)

// Validate reports whether text is a well-formed CAS number with a
// correct check digit.
func Validate(text string) bool {
	return Check(text) == nil
}

// Check is Validate with a diagnosis. It returns nil for a well-formed
// CAS number and an *InvalidNumberError naming the first violated rule
// otherwise.
func Check(text string) error {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return invalid(text, syntaxReason(text))
	}

	want := weightedSum(m[1]+m[2]) % 10
	if got := int(m[3][0] - '0'); got != want {
		return invalid(text, fmt.Sprintf("check digit is %d, expected %d", got, want))
	}
	return nil
}

// weightedSum multiplies each digit by its 1-based position from the
// right and adds the products. digits must be ASCII decimal.
func weightedSum(digits string) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += (len(digits) - i) * int(digits[i]-'0')
	}
	return sum
}

// syntaxReason explains why text failed the grammar.
func syntaxReason(text string) string {
	if text == "" {
		return "empty input"
	}
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != '-' && (c < '0' || c > '9') {
			return fmt.Sprintf("unexpected byte %q at offset %d", c, i)
		}
	}

	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return fmt.Sprintf("expected 3 hyphen-separated groups, got %d", len(parts))
	}

	first, second, check := parts[0], parts[1], parts[2]
	switch {
	case len(first) < 2 || len(first) > 7:
		return fmt.Sprintf("first group must have 2 to 7 digits, got %d", len(first))
	case first[0] == '0':
		return "first group must not start with 0"
	case len(second) != 2:
		return fmt.Sprintf("second group must have 2 digits, got %d", len(second))
	case len(check) != 1:
		return fmt.Sprintf("check group must have 1 digit, got %d", len(check))
	}
	return "malformed"
}
