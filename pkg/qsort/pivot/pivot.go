package pivot

import "math/rand/v2"

// Picker chooses the pivot position for a partition step.
type Picker interface {
	// Pick returns an offset in [0, n). n must be >= 1; pickers are never
	// asked to choose within an empty range.
	Pick(n int) int
	// Fork returns a picker that a newly spawned worker can use without
	// synchronizing with the parent.
	Fork() Picker
}

type randomPicker struct {
	src *rand.Rand
}

// NewRandom returns a picker that draws uniformly distributed offsets from
// its own generator. The picker itself is not safe for concurrent use; give
// each worker a Fork instead of sharing one instance.
func NewRandom() Picker {
	return &randomPicker{
		src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewRandomSeeded returns a random picker with a fixed seed, for
// reproducible pivot sequences.
func NewRandomSeeded(seed1, seed2 uint64) Picker {
	return &randomPicker{
		src: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

func (p *randomPicker) Pick(n int) int {
	return p.src.IntN(n)
}

// Fork seeds an independent generator from the parent stream, so sibling
// workers never mutate shared state.
func (p *randomPicker) Fork() Picker {
	return &randomPicker{
		src: rand.New(rand.NewPCG(p.src.Uint64(), p.src.Uint64())),
	}
}

type midpointPicker struct{}

// Midpoint returns the stateless picker that always selects the positional
// middle of the range (offset n/2). It is not a statistical median.
func Midpoint() Picker {
	return midpointPicker{}
}

func (midpointPicker) Pick(n int) int {
	return n / 2
}

func (m midpointPicker) Fork() Picker {
	return m
}
