// Package rational implements exact fractions for musical time values.
package rational

import (
	"errors"
	"strconv"
)

// ErrZeroDenominator is returned when constructing a fraction with a zero
// denominator.
var ErrZeroDenominator = errors.New("rational: zero denominator")

// A Rational is an immutable fraction. It is always stored in lowest terms
// with a positive denominator. The zero value is not valid; use Zero.
type Rational struct {
	n, d int
}

// Zero is 0/1.
var Zero = Rational{0, 1}

// New returns the fraction n/d in lowest terms.
func New(n, d int) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrZeroDenominator
	}
	n, d = simplify(n, d)
	return Rational{n, d}, nil
}

// Must is like New, but panics if d is zero.
func Must(n, d int) Rational {
	r, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns n/1.
func Int(n int) Rational {
	return Rational{n, 1}
}

// Num returns the numerator.
func (r Rational) Num() int {
	return r.n
}

// Den returns the denominator, which is always positive.
func (r Rational) Den() int {
	if r.d == 0 {
		return 1
	}
	return r.d
}

// IsZero returns true if the value is zero.
func (r Rational) IsZero() bool {
	return r.n == 0
}

// Float64 returns the nearest floating-point value.
func (r Rational) Float64() float64 {
	return float64(r.n) / float64(r.Den())
}

// Cmp returns -1, 0, or +1 depending on whether r is less than, equal to, or
// greater than s.
func (r Rational) Cmp(s Rational) int {
	if r.n == s.n && r.Den() == s.Den() {
		return 0
	}
	if r.n*s.Den()-s.n*r.Den() < 0 {
		return -1
	}
	return 1
}

// Equal returns true if r and s are the same value.
func (r Rational) Equal(s Rational) bool {
	return r.n == s.n && r.Den() == s.Den()
}

// Add returns r+s.
func (r Rational) Add(s Rational) Rational {
	var a Ratio
	a.Set(r)
	a.Add(s)
	return a.Rational()
}

// Sub returns r-s.
func (r Rational) Sub(s Rational) Rational {
	var a Ratio
	a.Set(r)
	a.Sub(s)
	return a.Rational()
}

func (r Rational) String() string {
	return strconv.Itoa(r.n) + "/" + strconv.Itoa(r.Den())
}

func simplify(n, d int) (int, int) {
	if n == 0 {
		return 0, 1
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(n, d)
	return n / g, d / g
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
