package world

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Range is an inclusive integer range.
type Range struct {
	Min, Max int
}

// Sample returns a value uniformly drawn from [Min, Max].
func (r Range) Sample(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Valid reports whether Min <= Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// ParseRange parses "min-max" or a single integer "n" (meaning n-n).
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("parse range %q: %w", s, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("parse range %q: %w", s, err)
	}
	r := Range{Min: min, Max: max}
	if !r.Valid() {
		return Range{}, fmt.Errorf("parse range %q: min greater than max", s)
	}
	return r, nil
}
