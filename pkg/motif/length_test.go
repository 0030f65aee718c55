package motif

import "testing"

func TestLengthOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b Length
		want int
	}{
		{"equal bounded", LengthBounded(NewRational(1, 2)), LengthBounded(NewRational(2, 4)), 0},
		{"bounded less", LengthBounded(NewRational(1, 4)), LengthBounded(NewRational(1, 2)), -1},
		{"unbounded beats bounded", LengthUnbounded(), LengthBounded(NewRational(1000, 1)), 1},
		{"bounded loses to unbounded", LengthBounded(NewRational(1000, 1)), LengthUnbounded(), -1},
		{"unbounded equal", LengthUnbounded(), LengthUnbounded(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cmp(tt.b); got != tt.want {
				t.Errorf("Cmp() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLengthAddAbsorbsUnbounded(t *testing.T) {
	sum := LengthBounded(One()).Add(LengthUnbounded())
	if !sum.IsUnbounded() {
		t.Error("Bounded + Unbounded should be Unbounded")
	}
	sum = LengthUnbounded().Add(LengthUnbounded())
	if !sum.IsUnbounded() {
		t.Error("Unbounded + Unbounded should be Unbounded")
	}
	sum = LengthBounded(NewRational(1, 2)).Add(LengthBounded(NewRational(1, 2)))
	if sum.IsUnbounded() || !sum.Value().Equals(One()) {
		t.Errorf("1/2 + 1/2 = %s, want 1", sum)
	}
}

func TestLengthMulFactor(t *testing.T) {
	l := LengthBounded(NewRational(1, 2)).MulFactor(NewFactor(Integer(4)))
	if l.IsUnbounded() || !l.Value().Equals(Integer(2)) {
		t.Errorf("1/2 * 4 = %s, want 2", l)
	}
	u := LengthUnbounded().MulFactor(NewFactor(NewRational(1, 1000)))
	if !u.IsUnbounded() {
		t.Error("Unbounded scaled by a positive factor should remain Unbounded")
	}
}

func TestLengthValuePanicsOnUnbounded(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Value on Unbounded")
		}
	}()
	LengthUnbounded().Value()
}

func TestTimeAddAdvancesByBoundedLength(t *testing.T) {
	start := TimeZero()
	next := start.Add(LengthBounded(NewRational(3, 2)))
	if !next.Rational().Equals(NewRational(3, 2)) {
		t.Errorf("got time %s, want 3/2", next)
	}
}

func TestTimeAddPanicsOnUnboundedLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic advancing time by an unbounded length")
		}
	}()
	TimeZero().Add(LengthUnbounded())
}

func TestFactorMustBePositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing a non-positive factor")
		}
	}()
	NewFactor(Zero())
}

func TestFactorMul(t *testing.T) {
	f := NewFactor(NewRational(1, 2)).Mul(NewFactor(Integer(4)))
	if !f.Rational().Equals(Integer(2)) {
		t.Errorf("1/2 * 4 = %s, want 2", f)
	}
}
