package reedsolomon

import (
	"fmt"
	"strings"
)

// Poly is a polynomial over a Field. Coefficients are stored highest degree
// first; a Poly is never modified after construction.
type Poly struct {
	field        *Field
	coefficients []int
}

// NewPoly creates a polynomial, stripping leading zero coefficients.
func NewPoly(field *Field, coefficients []int) *Poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	first := 0
	for first < len(coefficients)-1 && coefficients[first] == 0 {
		first++
	}
	return &Poly{field: field, coefficients: append([]int(nil), coefficients[first:]...)}
}

// Coefficients returns the coefficients, highest degree first.
func (p *Poly) Coefficients() []int { return p.coefficients }

func (p *Poly) Degree() int { return len(p.coefficients) - 1 }

func (p *Poly) IsZero() bool { return p.coefficients[0] == 0 }

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates the polynomial at a using Horner's rule.
func (p *Poly) EvaluateAt(a int) int {
	result := 0
	for _, c := range p.coefficients {
		result = p.field.Add(p.field.Multiply(a, result), c)
	}
	return result
}

func (p *Poly) Add(other *Poly) *Poly {
	p.checkField(other)
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}
	small, large := p.coefficients, other.coefficients
	if len(small) > len(large) {
		small, large = large, small
	}
	sum := make([]int, len(large))
	diff := len(large) - len(small)
	copy(sum, large[:diff])
	for i := diff; i < len(large); i++ {
		sum[i] = p.field.Add(small[i-diff], large[i])
	}
	return NewPoly(p.field, sum)
}

func (p *Poly) Subtract(other *Poly) *Poly {
	p.checkField(other)
	if other.IsZero() {
		return p
	}
	return p.Add(other.Negative())
}

func (p *Poly) Multiply(other *Poly) *Poly {
	p.checkField(other)
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			product[i+j] = p.field.Add(product[i+j], p.field.Multiply(a, b))
		}
	}
	return NewPoly(p.field, product)
}

func (p *Poly) Negative() *Poly {
	neg := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		neg[i] = p.field.Subtract(0, c)
	}
	return NewPoly(p.field, neg)
}

// MultiplyByMonomial returns p * coefficient * x^degree.
func (p *Poly) MultiplyByMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return NewPoly(p.field, product)
}

// Divide returns the quotient and remainder of p / other.
func (p *Poly) Divide(other *Poly) (quotient, remainder *Poly) {
	p.checkField(other)
	if other.IsZero() {
		panic("reedsolomon: divide by zero")
	}
	quotient, remainder = p.field.Zero(), p
	inverseLead := p.field.Inverse(other.Coefficient(other.Degree()))
	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := p.field.Multiply(remainder.Coefficient(remainder.Degree()), inverseLead)
		quotient = quotient.Add(p.field.BuildMonomial(degreeDiff, scale))
		remainder = remainder.Subtract(other.MultiplyByMonomial(degreeDiff, scale))
	}
	return quotient, remainder
}

func (p *Poly) String() string {
	var sb strings.Builder
	for degree := p.Degree(); degree >= 0; degree-- {
		c := p.Coefficient(degree)
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		if degree == 0 || c != 1 {
			fmt.Fprintf(&sb, "%d", c)
		}
		switch degree {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", degree)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

func (p *Poly) checkField(other *Poly) {
	if p.field != other.field {
		panic("reedsolomon: polynomials are over different fields")
	}
}
