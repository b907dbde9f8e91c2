package cas

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// MaxBatch bounds GenerateBatch.
const MaxBatch = 1000

const (
	minFirstGroup = 4
	maxFirstGroup = 7
)

// Generator produces uniformly random, well-formed CAS numbers. It is
// safe for concurrent use. Randomness is not cryptographically strong.
type Generator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	fullRange bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource draws from src instead of the runtime-seeded source.
// A fixed seed makes the output sequence reproducible.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rng = rand.New(src)
	}
}

// WithFullDigitRange draws digits from 0..9 (leading digit 1..9).
// By default digits come from 0..8 (leading digit 1..8), so 9 only ever
// appears as a check digit. Both settings only yield valid numbers.
func WithFullDigitRange() Option {
	return func(g *Generator) {
		g.fullRange = true
	}
}

// NewGenerator returns a Generator configured by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(runtimeSource{})
	}
	return g
}

var defaultGenerator = NewGenerator()

// Random returns a fresh CAS number from the process-wide generator.
func Random() Number {
	return defaultGenerator.Generate()
}

// Generate returns a fresh CAS number.
func (g *Generator) Generate() Number {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generateLocked()
}

// GenerateBatch returns count fresh CAS numbers. count must be between
// 1 and MaxBatch. Numbers in a batch are independent draws and may repeat.
func (g *Generator) GenerateBatch(count int) ([]Number, error) {
	if count < 1 || count > MaxBatch {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxBatch, count)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	numbers := make([]Number, 0, count)
	for i := 0; i < count; i++ {
		numbers = append(numbers, g.generateLocked())
	}
	return numbers, nil
}

// generateLocked must be called with g.mu held.
func (g *Generator) generateLocked() Number {
	// Length of the first group, 4..7. An 8-digit first group would not
	// satisfy the grammar.
	k := minFirstGroup + g.rng.IntN(maxFirstGroup-minFirstGroup+1)
	n := k + 2

	var buf [MaxLength]byte
	b := buf[:0]
	sum := 0
	for i := 0; i < n; i++ {
		if i == k {
			b = append(b, '-')
		}
		d := g.digit(i == 0)
		sum += (n - i) * d
		b = append(b, byte('0'+d))
	}
	b = append(b, '-', byte('0'+sum%10))

	return Number{text: string(b)}
}

func (g *Generator) digit(leading bool) int {
	upper := 9
	if g.fullRange {
		upper = 10
	}
	if leading {
		return 1 + g.rng.IntN(upper-1)
	}
	return g.rng.IntN(upper)
}

// runtimeSource adapts the goroutine-safe top-level math/rand/v2
// functions, which are seeded by the runtime, to rand.Source.
type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 {
	return rand.Uint64()
}
