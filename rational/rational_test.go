package rational

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	type testcase struct {
		n, d   int
		en, ed int
	}
	cases := []testcase{
		{0, 5, 0, 1},
		{2, 4, 1, 2},
		{-2, 4, -1, 2},
		{2, -4, -1, 2},
		{-6, -9, 2, 3},
		{7, 1, 7, 1},
		{12, 16, 3, 4},
	}
	for _, c := range cases {
		r, err := New(c.n, c.d)
		if err != nil {
			t.Errorf("New(%d, %d): %v", c.n, c.d, err)
			continue
		}
		if r.Num() != c.en || r.Den() != c.ed {
			t.Errorf("New(%d, %d) = %v, expect %d/%d", c.n, c.d, r, c.en, c.ed)
		}
		if r.Den() <= 0 {
			t.Errorf("New(%d, %d): denominator %d not positive", c.n, c.d, r.Den())
		}
		if g := gcd(r.Num(), r.Den()); g != 1 {
			t.Errorf("New(%d, %d) = %v: gcd is %d", c.n, c.d, r, g)
		}
	}
}

func TestZeroDenominator(t *testing.T) {
	if _, err := New(1, 0); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("New(1, 0): err = %v, expect ErrZeroDenominator", err)
	}
	var a Ratio
	if err := a.SetFrac(3, 0); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("SetFrac(3, 0): err = %v, expect ErrZeroDenominator", err)
	}
}

func TestCmp(t *testing.T) {
	vals := []Rational{
		Must(-3, 2), Must(-1, 3), Zero, Must(1, 4), Must(1, 3),
		Must(2, 6), Must(1, 2), Must(3, 4), Int(1), Must(7, 3),
	}
	for _, a := range vals {
		if c := a.Cmp(a); c != 0 {
			t.Errorf("%v.Cmp(%v) = %d, expect 0", a, a, c)
		}
		for _, b := range vals {
			c := a.Cmp(b)
			var e int
			switch fa, fb := a.Float64(), b.Float64(); {
			case fa < fb:
				e = -1
			case fa > fb:
				e = 1
			}
			if c != e {
				t.Errorf("%v.Cmp(%v) = %d, expect %d", a, b, c, e)
			}
			if a.Equal(b) != (c == 0) {
				t.Errorf("%v.Equal(%v) inconsistent with Cmp", a, b)
			}
		}
	}
}

func TestRatio(t *testing.T) {
	var a Ratio
	quarter := Must(1, 4)
	var count int
	for a.Cmp(Must(3, 2)) < 0 {
		a.Add(quarter)
		count++
	}
	if count != 6 {
		t.Errorf("count = %d, expect 6", count)
	}
	if r := a.Rational(); !r.Equal(Must(3, 2)) {
		t.Errorf("sum = %v, expect 3/2", r)
	}
	a.Sub(Must(5, 2))
	if a.Num() != -1 || a.Den() != 1 {
		t.Errorf("difference = %v, expect -1/1", &a)
	}
	if f := a.Float64(); f != -1 {
		t.Errorf("Float64 = %v, expect -1", f)
	}
	if err := a.SetFrac(6, -8); err != nil {
		t.Fatal(err)
	}
	if f := a.Float64(); f != -0.75 {
		t.Errorf("Float64 = %v, expect -0.75", f)
	}
	if a.Num() != -3 || a.Den() != 4 {
		t.Errorf("SetFrac(6, -8) = %v, expect -3/4", &a)
	}
}

func TestArithmetic(t *testing.T) {
	type testcase struct {
		a, b, sum, diff Rational
	}
	cases := []testcase{
		{Must(1, 4), Must(1, 4), Must(1, 2), Zero},
		{Must(1, 3), Must(1, 6), Must(1, 2), Must(1, 6)},
		{Int(2), Must(3, 4), Must(11, 4), Must(5, 4)},
		{Zero, Must(-1, 8), Must(-1, 8), Must(1, 8)},
	}
	for _, c := range cases {
		if s := c.a.Add(c.b); !s.Equal(c.sum) {
			t.Errorf("%v + %v = %v, expect %v", c.a, c.b, s, c.sum)
		}
		if d := c.a.Sub(c.b); !d.Equal(c.diff) {
			t.Errorf("%v - %v = %v, expect %v", c.a, c.b, d, c.diff)
		}
	}
}
