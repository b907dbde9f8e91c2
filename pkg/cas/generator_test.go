package cas

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGeneratorProperties(t *testing.T) {
	const n = 10000
	g := NewGenerator(WithSource(rand.NewPCG(1, 2)))

	lengths := make(map[int]int)
	for i := 0; i < n; i++ {
		num := g.Generate()
		text := num.String()
		if err := Check(text); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		parsed, err := Parse(text)
		if err != nil {
			t.Fatalf("draw %d: Parse(%q): %v", i, text, err)
		}
		if !parsed.Equal(num) {
			t.Fatalf("draw %d: Parse(%q) = %q", i, text, parsed)
		}

		first, second, _ := num.Segments()
		if strings.ContainsRune(first+second, '9') {
			t.Fatalf("draw %d: %q has digit 9 outside the check group", i, text)
		}
		lengths[len(first)]++
	}

	// Each of the four lengths should get about n/4 draws.
	expected := n / (maxFirstGroup - minFirstGroup + 1)
	tolerance := expected / 10
	for k := minFirstGroup; k <= maxFirstGroup; k++ {
		if got := lengths[k]; got < expected-tolerance || got > expected+tolerance {
			t.Errorf("first group length %d drawn %d times, want %d±%d", k, got, expected, tolerance)
		}
	}
	if len(lengths) != maxFirstGroup-minFirstGroup+1 {
		t.Errorf("unexpected first group lengths: %v", lengths)
	}
}

func TestGeneratorFullDigitRange(t *testing.T) {
	g := NewGenerator(WithSource(rand.NewPCG(3, 4)), WithFullDigitRange())

	sawNine, sawLeadingNine := false, false
	for i := 0; i < 5000; i++ {
		num := g.Generate()
		if !Validate(num.String()) {
			t.Fatalf("draw %d: %q is invalid", i, num)
		}
		first, second, _ := num.Segments()
		if strings.ContainsRune(first+second, '9') {
			sawNine = true
		}
		if first[0] == '9' {
			sawLeadingNine = true
		}
	}
	if !sawNine || !sawLeadingNine {
		t.Errorf("full digit range never produced 9 (any=%v, leading=%v)", sawNine, sawLeadingNine)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(WithSource(rand.NewPCG(7, 7)))
	b := NewGenerator(WithSource(rand.NewPCG(7, 7)))

	batchA, err := a.GenerateBatch(50)
	if err != nil {
		t.Fatal(err)
	}
	batchB, err := b.GenerateBatch(50)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(batchA, batchB, cmp.Comparer(func(x, y Number) bool { return x.Equal(y) })); diff != "" {
		t.Errorf("same seed produced different batches (-a +b):\n%s", diff)
	}
}

func TestGenerateBatchBounds(t *testing.T) {
	g := NewGenerator()
	for _, count := range []int{0, -1, MaxBatch + 1} {
		if _, err := g.GenerateBatch(count); err == nil {
			t.Errorf("GenerateBatch(%d) succeeded, want error", count)
		}
	}

	batch, err := g.GenerateBatch(MaxBatch)
	if err != nil {
		t.Fatalf("GenerateBatch(%d): %v", MaxBatch, err)
	}
	if len(batch) != MaxBatch {
		t.Errorf("len = %d, want %d", len(batch), MaxBatch)
	}
}

func TestRandomConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 8*200)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if n := Random(); !Validate(n.String()) {
					errs <- n.String()
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for text := range errs {
		t.Errorf("Random() produced invalid %q", text)
	}
}
