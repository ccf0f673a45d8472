package random

import (
	"math/rand"
	"time"
)

// Generator wraps a rand.Rand so callers can seed it for reproducible output
type Generator struct {
	rnd *rand.Rand
}

// New creates a Generator from seed. A zero seed uses the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Read fills p with random bytes; it lets the Generator feed uuid.NewRandomFromReader
func (g *Generator) Read(p []byte) (int, error) {
	return g.rnd.Read(p)
}

// IntBetween returns a random int in [min, max]
func (g *Generator) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rnd.Intn(max-min+1)
}

// Chance returns true with probability percent/100
func (g *Generator) Chance(percent float64) bool {
	if percent <= 0 {
		return false
	}
	return g.rnd.Float64()*100 < percent
}

// Pick returns a random element of items, or "" when items is empty
func (g *Generator) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[g.rnd.Intn(len(items))]
}

// SelectRandomItems returns n distinct random indices in [0, totalCount)
func (g *Generator) SelectRandomItems(totalCount, n int) []int {
	if n <= 0 || totalCount <= 0 {
		return []int{}
	}

	allIndices := make([]int, totalCount)
	for i := range allIndices {
		allIndices[i] = i
	}

	if n >= totalCount {
		return allIndices
	}

	// Shuffle using Fisher-Yates algorithm
	for i := len(allIndices) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		allIndices[i], allIndices[j] = allIndices[j], allIndices[i]
	}

	return allIndices[:n]
}
