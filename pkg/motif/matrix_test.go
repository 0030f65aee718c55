package motif

import "testing"

func ratRow(vals ...int64) []Rational {
	row := make([]Rational, len(vals))
	for i, v := range vals {
		row[i] = Integer(v)
	}
	return row
}

func TestSolveSystem2x2(t *testing.T) {
	// x + y = 3, x - y = 1  =>  x=2, y=1
	coeffs := [][]Rational{
		ratRow(1, 1),
		ratRow(1, -1),
	}
	constants := ratRow(3, 1)
	res := SolveSystem(coeffs, constants)
	if res.Outcome != OutcomeSuccess {
		t.Fatalf("outcome = %s, want success", res.Outcome)
	}
	if !res.Values[0].Equals(Integer(2)) || !res.Values[1].Equals(Integer(1)) {
		t.Errorf("values = %v, want [2 1]", res.Values)
	}
}

func TestSolveSystemFractalRecursion(t *testing.T) {
	// v = 1 + (1/2)v  =>  v - (1/2)v = 1  =>  v = 2
	coeffs := [][]Rational{
		{NewRational(1, 2)},
	}
	constants := []Rational{Integer(1)}
	res := SolveSystem(coeffs, constants)
	if res.Outcome != OutcomeSuccess {
		t.Fatalf("outcome = %s, want success", res.Outcome)
	}
	if !res.Values[0].Equals(Integer(2)) {
		t.Errorf("v = %s, want 2", res.Values[0])
	}
}

func TestSolveSystemContradiction(t *testing.T) {
	// 0*x = 5: unsolvable.
	coeffs := [][]Rational{
		{Zero()},
	}
	constants := []Rational{Integer(5)}
	res := SolveSystem(coeffs, constants)
	if res.Outcome != OutcomeContradiction {
		t.Fatalf("outcome = %s, want contradiction", res.Outcome)
	}
}

func TestSolveSystemUnfounded(t *testing.T) {
	// 0*x = 0: consistent but doesn't pin down x.
	coeffs := [][]Rational{
		{Zero()},
	}
	constants := []Rational{Zero()}
	res := SolveSystem(coeffs, constants)
	if res.Outcome != OutcomeUnfounded {
		t.Fatalf("outcome = %s, want unfounded", res.Outcome)
	}
}

func TestSolveSystemUnfoundedBeatsContradictionOnTie(t *testing.T) {
	// Two rows both entirely zero in every coefficient column: one with
	// a zero constant (tautological) and one with a nonzero constant
	// (contradictory). Unfounded must win.
	coeffs := [][]Rational{
		{Zero(), Zero()},
		{Zero(), Zero()},
	}
	constants := []Rational{Zero(), Integer(7)}
	res := SolveSystem(coeffs, constants)
	if res.Outcome != OutcomeUnfounded {
		t.Fatalf("outcome = %s, want unfounded (tie-break over contradiction)", res.Outcome)
	}
}

func TestSolveSystem3x3(t *testing.T) {
	// x=1, y=2, z=3 via x+y+z=6, x-y+z=2, 2x+y-z=1
	coeffs := [][]Rational{
		ratRow(1, 1, 1),
		ratRow(1, -1, 1),
		ratRow(2, 1, -1),
	}
	constants := ratRow(6, 2, 1)
	res := SolveSystem(coeffs, constants)
	if res.Outcome != OutcomeSuccess {
		t.Fatalf("outcome = %s, want success", res.Outcome)
	}
	want := []int64{1, 2, 3}
	for i, w := range want {
		if !res.Values[i].Equals(Integer(w)) {
			t.Errorf("values[%d] = %s, want %d", i, res.Values[i], w)
		}
	}
}
