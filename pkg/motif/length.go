package motif

// Factor is a strictly positive rational multiplier, used to express time
// scaling (the Scale combinator) and the cumulative scale a sequence of
// nested Scale nodes applies to a descendant.
//
// Factor forms a multiplicative monoid with identity FactorOne; nothing in
// this package ever constructs a non-positive Factor.
type Factor struct {
	value Rational
}

// FactorOne is the multiplicative identity.
func FactorOne() Factor { return Factor{value: One()} }

// NewFactor wraps r as a Factor. It panics if r is not strictly positive.
func NewFactor(r Rational) Factor {
	if !r.IsPositive() {
		panic("motif: factor must be strictly positive")
	}
	return Factor{value: r}
}

// Rational returns the underlying rational value of f.
func (f Factor) Rational() Rational { return f.value }

// Mul returns f * other.
func (f Factor) Mul(other Factor) Factor {
	return Factor{value: f.value.Mul(other.value)}
}

// String renders the factor's rational value.
func (f Factor) String() string { return f.value.String() }

// Length is a duration that is either a non-negative exact rational or
// Unbounded (the length of an infinitely recurring definition). Unbounded
// is the top element of Length's order: it compares greater than every
// Bounded value and absorbs under addition and under Factor multiplication.
type Length struct {
	unbounded bool
	value     Rational // meaningful only when unbounded is false
}

// LengthBounded wraps a non-negative rational as a finite Length. It
// panics if value is negative.
func LengthBounded(value Rational) Length {
	if value.IsNegative() {
		panic("motif: bounded length must be non-negative")
	}
	return Length{value: value}
}

// LengthUnbounded is the length of a definition with no finite duration.
func LengthUnbounded() Length { return Length{unbounded: true} }

// LengthZero is the additive identity, Bounded(0).
func LengthZero() Length { return LengthBounded(Zero()) }

// LengthOne is Bounded(1), the length of a single atomic event.
func LengthOne() Length { return LengthBounded(One()) }

// IsUnbounded reports whether l is the Unbounded length.
func (l Length) IsUnbounded() bool { return l.unbounded }

// Value returns the finite rational value of l. It panics if l is
// Unbounded; callers must check IsUnbounded first.
func (l Length) Value() Rational {
	if l.unbounded {
		panic("motif: Value called on an unbounded length")
	}
	return l.value
}

// Add returns l + other. Unbounded absorbs: if either operand is
// Unbounded the result is Unbounded.
func (l Length) Add(other Length) Length {
	if l.unbounded || other.unbounded {
		return LengthUnbounded()
	}
	return LengthBounded(l.value.Add(other.value))
}

// MulFactor returns l scaled by f. Unbounded scaled by any positive
// factor remains Unbounded.
func (l Length) MulFactor(f Factor) Length {
	if l.unbounded {
		return LengthUnbounded()
	}
	return LengthBounded(l.value.Mul(f.Rational()))
}

// Cmp orders Length values with Unbounded strictly greater than every
// Bounded value, and Bounded values ordered by their rational value.
func (l Length) Cmp(other Length) int {
	switch {
	case l.unbounded && other.unbounded:
		return 0
	case l.unbounded:
		return 1
	case other.unbounded:
		return -1
	default:
		return l.value.Cmp(other.value)
	}
}

// Less reports whether l < other under Cmp's order.
func (l Length) Less(other Length) bool { return l.Cmp(other) < 0 }

// Max returns whichever of l and other is greater (Unbounded wins).
func (l Length) Max(other Length) Length {
	if l.Less(other) {
		return other
	}
	return l
}

// String renders l as its rational value, or "unbounded".
func (l Length) String() string {
	if l.unbounded {
		return "unbounded"
	}
	return l.value.String()
}

// Time is a non-negative rational position along a definition's timeline,
// the running "start" offset the evaluator tracks while unfolding a
// Sequence.
type Time struct {
	value Rational
}

// TimeZero is the origin.
func TimeZero() Time { return Time{value: Zero()} }

// NewTime wraps r as a Time. It panics if r is negative.
func NewTime(r Rational) Time {
	if r.IsNegative() {
		panic("motif: time must be non-negative")
	}
	return Time{value: r}
}

// Rational returns the underlying rational value of t.
func (t Time) Rational() Rational { return t.value }

// Add advances t by a bounded length. It panics if length is Unbounded:
// a valid evaluation never adds an unbounded length to a running clock,
// since Sequence stops unfolding further siblings once an unbounded child
// is reached (see Evaluator).
func (t Time) Add(length Length) Time {
	if length.IsUnbounded() {
		panic("motif: cannot advance time by an unbounded length")
	}
	return Time{value: t.value.Add(length.Value())}
}

// Cmp orders Time values by their rational position.
func (t Time) Cmp(other Time) int { return t.value.Cmp(other.value) }

// Less reports whether t < other.
func (t Time) Less(other Time) bool { return t.Cmp(other) < 0 }

// String renders t as its rational value.
func (t Time) String() string { return t.value.String() }
