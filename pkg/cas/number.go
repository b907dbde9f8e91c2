package cas

import (
	"hash/fnv"
	"strings"
)

// Number is a validated CAS Registry Number. The zero value is not a
// valid CAS number; it stands for an absent value (SQL NULL, JSON null).
type Number struct {
	text string
}

// Parse validates text and wraps it. The input bytes are stored as-is;
// there is no trimming or other normalization.
func Parse(text string) (Number, error) {
	if err := Check(text); err != nil {
		return Number{}, err
	}
	return Number{text: text}, nil
}

// MustParse is like Parse but panics if text is invalid. Use it for
// package-level constants.
func MustParse(text string) Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the canonical text, or "" for the zero Number.
func (n Number) String() string {
	return n.text
}

// IsZero reports whether n is the zero Number.
func (n Number) IsZero() bool {
	return n.text == ""
}

// Equal reports whether n and other have the same canonical text.
func (n Number) Equal(other Number) bool {
	return n.text == other.text
}

// Compare returns -1, 0 or +1 by byte-wise comparison of the canonical
// texts. The zero Number sorts first.
func (n Number) Compare(other Number) int {
	return strings.Compare(n.text, other.text)
}

// Compare is the function form of Number.Compare, for slices.SortFunc.
func Compare(a, b Number) int {
	return a.Compare(b)
}

// Hash returns the 64-bit FNV-1a hash of the canonical text. It is
// stable across processes and consistent with Equal.
func (n Number) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(n.text))
	return h.Sum64()
}

// Segments splits n into its three groups. check is the numeric value
// of the check digit.
func (n Number) Segments() (first, second string, check int) {
	if n.IsZero() {
		return "", "", 0
	}
	i := strings.IndexByte(n.text, '-')
	first, second = n.text[:i], n.text[i+1:i+3]
	check = int(n.text[len(n.text)-1] - '0')
	return first, second, check
}

// WeightedSum returns the checksum sum over the first two groups before
// the modulo is applied. WeightedSum() % 10 equals the check digit.
func (n Number) WeightedSum() int {
	first, second, _ := n.Segments()
	return weightedSum(first + second)
}
