// Package reedsolomon computes Reed-Solomon error correction codewords over
// prime fields, as used by PDF417 (GF(929), generator 3).
package reedsolomon

// Field is the prime field of integers modulo a prime, with exp/log tables
// over a primitive generator.
type Field struct {
	expTable []int
	logTable []int
	zero     *Poly
	one      *Poly
	modulus  int
}

// PDF417Field is GF(929) with generator 3.
var PDF417Field = NewField(929, 3)

// NewField builds the field of integers modulo modulus. generator must be
// a primitive root of modulus.
func NewField(modulus, generator int) *Field {
	f := &Field{
		modulus:  modulus,
		expTable: make([]int, modulus),
		logTable: make([]int, modulus),
	}
	x := 1
	for i := 0; i < modulus; i++ {
		f.expTable[i] = x
		x = (x * generator) % modulus
	}
	for i := 0; i < modulus-1; i++ {
		f.logTable[f.expTable[i]] = i
	}
	f.zero = NewPoly(f, []int{0})
	f.one = NewPoly(f, []int{1})
	return f
}

// Zero returns the zero polynomial.
func (f *Field) Zero() *Poly { return f.zero }

// One returns the constant polynomial 1.
func (f *Field) One() *Poly { return f.one }

// BuildMonomial returns coefficient * x^degree.
func (f *Field) BuildMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return f.zero
	}
	c := make([]int, degree+1)
	c[0] = coefficient
	return NewPoly(f, c)
}

func (f *Field) Add(a, b int) int { return (a + b) % f.modulus }

func (f *Field) Subtract(a, b int) int { return (f.modulus + a - b) % f.modulus }

// Exp returns generator^a.
func (f *Field) Exp(a int) int { return f.expTable[a%(f.modulus-1)] }

// Log returns the discrete logarithm of a. It panics on 0.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return f.logTable[a]
}

// Inverse returns the multiplicative inverse of a. It panics on 0.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return f.expTable[f.modulus-f.logTable[a]-1]
}

func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTable[(f.logTable[a]+f.logTable[b])%(f.modulus-1)]
}

// Size returns the modulus.
func (f *Field) Size() int { return f.modulus }
