package reedsolomon

import "sync"

// Encoder computes error correction codewords. Generator polynomials
// g(x) = (x - a^1)(x - a^2)...(x - a^k) are cached per degree; an Encoder
// is safe for concurrent use.
type Encoder struct {
	field *Field

	mu         sync.Mutex
	generators []*Poly
}

// NewEncoder creates an Encoder over field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{field: field, generators: []*Poly{field.One()}}
}

// Generator returns the generator polynomial of the given degree.
func (e *Encoder) Generator(degree int) *Poly {
	e.mu.Lock()
	defer e.mu.Unlock()
	last := e.generators[len(e.generators)-1]
	for d := len(e.generators); d <= degree; d++ {
		last = last.Multiply(NewPoly(e.field, []int{1, e.field.Subtract(0, e.field.Exp(d))}))
		e.generators = append(e.generators, last)
	}
	return e.generators[degree]
}

// Encode returns ecCount error correction codewords for data, highest
// degree first. Appended to data they form a polynomial with roots
// a^1..a^ecCount.
func (e *Encoder) Encode(data []int, ecCount int) []int {
	if ecCount <= 0 {
		panic("reedsolomon: no error correction codewords requested")
	}
	if len(data) == 0 {
		panic("reedsolomon: no data codewords provided")
	}
	info := NewPoly(e.field, data).MultiplyByMonomial(ecCount, 1)
	_, remainder := info.Divide(e.Generator(ecCount))
	coefficients := remainder.Negative().Coefficients()
	ec := make([]int, ecCount)
	if !remainder.IsZero() {
		copy(ec[ecCount-len(coefficients):], coefficients)
	}
	return ec
}
