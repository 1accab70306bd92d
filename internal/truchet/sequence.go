package truchet

// RNG abstracts random number generation for deterministic testing.
// *rand.Rand satisfies it.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Symbol is one half of the two-letter tile label.
type Symbol byte

const (
	Head Symbol = 'H'
	Tail Symbol = 'T'
)

// KindFromSymbols maps a symbol pair onto its tile kind:
// HH is TopLeft, TH is BottomLeft, HT is BottomRight and TT is TopRight.
func KindFromSymbols(first, second Symbol) (TileKind, bool) {
	switch {
	case first == Head && second == Head:
		return TopLeft, true
	case first == Tail && second == Head:
		return BottomLeft, true
	case first == Head && second == Tail:
		return BottomRight, true
	case first == Tail && second == Tail:
		return TopRight, true
	}
	return 0, false
}

// GenerateSequence returns width*depth tile kinds, each chosen independently
// and uniformly from rng. A non-positive dimension yields an empty sequence.
func GenerateSequence(rng RNG, width, depth int) []TileKind {
	if width <= 0 || depth <= 0 {
		return []TileKind{}
	}
	seq := make([]TileKind, width*depth)
	for i := range seq {
		seq[i] = Kinds[rng.Intn(len(Kinds))]
	}
	return seq
}
