package motif

import (
	"fmt"
	"math/big"
)

// Rational is an exact signed rational number of arbitrary precision,
// always held in lowest terms with a strictly positive denominator.
//
// The zero value is not a valid Rational; use Zero, One, Integer, or
// NewRational to construct one.
type Rational struct {
	num *big.Int
	den *big.Int
}

// NewRational builds a Rational from int64 numerator and denominator,
// reducing to lowest terms and normalizing the sign onto the numerator.
// It panics if den is zero.
func NewRational(num, den int64) Rational {
	return NewRationalBig(big.NewInt(num), big.NewInt(den))
}

// NewRationalBig builds a Rational from arbitrary-precision numerator and
// denominator, reducing to lowest terms and normalizing the sign onto the
// numerator. It panics if den is zero. The supplied big.Ints are copied,
// never aliased.
func NewRationalBig(num, den *big.Int) Rational {
	if den.Sign() == 0 {
		panic("motif: rational with zero denominator")
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Rational{num: n, den: d}
}

// Integer builds the Rational n/1.
func Integer(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// Zero is the rational 0/1.
func Zero() Rational { return Integer(0) }

// One is the rational 1/1.
func One() Rational { return Integer(1) }

// Num returns the (reduced) numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns the (reduced, positive) denominator.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.den) }

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	n := new(big.Int).Add(
		new(big.Int).Mul(r.num, other.den),
		new(big.Int).Mul(other.num, r.den),
	)
	d := new(big.Int).Mul(r.den, other.den)
	return NewRationalBig(n, d)
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return r.Add(other.Neg())
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	n := new(big.Int).Mul(r.num, other.num)
	d := new(big.Int).Mul(r.den, other.den)
	return NewRationalBig(n, d)
}

// Div returns r / other. It panics if other is zero.
func (r Rational) Div(other Rational) Rational {
	if other.IsZero() {
		panic("motif: division by zero rational")
	}
	n := new(big.Int).Mul(r.num, other.den)
	d := new(big.Int).Mul(r.den, other.num)
	return NewRationalBig(n, d)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{num: new(big.Int).Abs(r.num), den: new(big.Int).Set(r.den)}
}

// IsZero reports whether r is 0.
func (r Rational) IsZero() bool { return r.num.Sign() == 0 }

// IsPositive reports whether r > 0.
func (r Rational) IsPositive() bool { return r.num.Sign() > 0 }

// IsNegative reports whether r < 0.
func (r Rational) IsNegative() bool { return r.num.Sign() < 0 }

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater than
// other.
func (r Rational) Cmp(other Rational) int {
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs)
}

// Equals reports whether r and other denote the same rational number.
func (r Rational) Equals(other Rational) bool { return r.Cmp(other) == 0 }

// Less reports whether r < other.
func (r Rational) Less(other Rational) bool { return r.Cmp(other) < 0 }

// ToFloat returns the nearest float64 approximation of r.
func (r Rational) ToFloat() float64 {
	f := new(big.Rat).SetFrac(r.num, r.den)
	v, _ := f.Float64()
	return v
}

// String renders r as "num/den", or just "num" when den is 1.
func (r Rational) String() string {
	if r.den.Cmp(big.NewInt(1)) == 0 {
		return r.num.String()
	}
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}
