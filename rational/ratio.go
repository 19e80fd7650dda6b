package rational

// A Ratio is a mutable fraction used as a scratch accumulator. It is
// simplified lazily, before it is read and after each arithmetic operation.
// The zero value is 0/1.
type Ratio struct {
	n, d       int
	simplified bool

	hasFloat bool
	float    float64
}

// NewRatio returns a Ratio initialized to r.
func NewRatio(r Rational) *Ratio {
	var a Ratio
	a.Set(r)
	return &a
}

// Set sets the value to r.
func (a *Ratio) Set(r Rational) {
	a.n = r.n
	a.d = r.Den()
	a.simplified = true
	a.hasFloat = false
}

// SetFrac sets the value to n/d, which need not be in lowest terms.
func (a *Ratio) SetFrac(n, d int) error {
	if d == 0 {
		return ErrZeroDenominator
	}
	a.n = n
	a.d = d
	a.simplified = false
	a.hasFloat = false
	return nil
}

func (a *Ratio) norm() {
	if a.d == 0 {
		a.n, a.d = 0, 1
		a.simplified = true
		return
	}
	if !a.simplified {
		a.n, a.d = simplify(a.n, a.d)
		a.simplified = true
	}
}

// Add adds r.
func (a *Ratio) Add(r Rational) {
	a.norm()
	a.n = a.n*r.Den() + r.n*a.d
	a.d = a.d * r.Den()
	a.simplified = false
	a.norm()
	a.hasFloat = false
}

// Sub subtracts r.
func (a *Ratio) Sub(r Rational) {
	a.norm()
	a.n = a.n*r.Den() - r.n*a.d
	a.d = a.d * r.Den()
	a.simplified = false
	a.norm()
	a.hasFloat = false
}

// Num returns the numerator in lowest terms.
func (a *Ratio) Num() int {
	a.norm()
	return a.n
}

// Den returns the denominator in lowest terms.
func (a *Ratio) Den() int {
	a.norm()
	return a.d
}

// Float64 returns the value as a float, caching the result until the next
// change.
func (a *Ratio) Float64() float64 {
	if !a.hasFloat {
		d := a.d
		if d == 0 {
			d = 1
		}
		a.float = float64(a.n) / float64(d)
		a.hasFloat = true
	}
	return a.float
}

// Cmp compares the accumulated value with r.
func (a *Ratio) Cmp(r Rational) int {
	a.norm()
	return Rational{a.n, a.d}.Cmp(r)
}

// Rational returns the current value as an immutable Rational.
func (a *Ratio) Rational() Rational {
	a.norm()
	return Rational{a.n, a.d}
}

func (a *Ratio) String() string {
	return a.Rational().String()
}
