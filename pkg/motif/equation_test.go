package motif

import "testing"

func countTermsInConstantSums(sums []Sum) []Length {
	lengths := make([]Length, 0, len(sums))
	for _, s := range sums {
		total := LengthZero()
		for _, term := range s.Terms {
			c, ok := term.(TermConstant)
			if !ok {
				continue
			}
			total = total.Add(c.Value)
		}
		lengths = append(lengths, total)
	}
	return lengths
}

func TestBuildEquationsPause(t *testing.T) {
	in := NewInterner()
	a := in.Intern("a")
	p := NewImplicitProgram("test")
	p.Define(a, NewSpan("test", 0, 1), ImplicitPause{Span_: NewSpan("test", 0, 1)})

	eqs := BuildEquations(p, []Name{a}, map[Name]Length{})
	if len(eqs) != 1 {
		t.Fatalf("got %d equations, want 1", len(eqs))
	}
	if len(eqs[0].Alternatives) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(eqs[0].Alternatives))
	}
	lengths := countTermsInConstantSums(eqs[0].Alternatives)
	if !lengths[0].Value().Equals(One()) {
		t.Errorf("pause length = %s, want 1", lengths[0])
	}
}

func TestBuildEquationsSequenceOfSolvedReferencesHasOneAlternative(t *testing.T) {
	in := NewInterner()
	a, x, y := in.Intern("a"), in.Intern("x"), in.Intern("y")
	p := NewImplicitProgram("test")
	// a = (x y) where x and y are each a Stack of two pauses with
	// different scale factors, giving each of x and y two alternatives of
	// its own; once x and y are solved, a reference to either is a single
	// constant, so a has one alternative.
	stackChild := func(f1, f2 Factor) ImplicitNode {
		return ImplicitStack{Children: []ImplicitNode{
			ImplicitScale{Span_: NewSpan("test", 0, 1), By: f1, Child: ImplicitPause{Span_: NewSpan("test", 0, 1)}},
			ImplicitScale{Span_: NewSpan("test", 0, 1), By: f2, Child: ImplicitPause{Span_: NewSpan("test", 0, 1)}},
		}}
	}
	p.Define(x, NewSpan("test", 0, 1), stackChild(NewFactor(Integer(1)), NewFactor(Integer(2))))
	p.Define(y, NewSpan("test", 0, 1), stackChild(NewFactor(Integer(3)), NewFactor(Integer(4))))
	p.Define(a, NewSpan("test", 0, 2), ImplicitSequence{Children: []ImplicitNode{
		ImplicitNameRef{Span_: NewSpan("test", 0, 1), Name: x},
		ImplicitNameRef{Span_: NewSpan("test", 1, 2), Name: y},
	}})

	// Equations for x and y alone (each a standalone component) should
	// have 2 alternatives (from their internal Stack).
	xEqs := BuildEquations(p, []Name{x}, map[Name]Length{})
	if len(xEqs[0].Alternatives) != 2 {
		t.Fatalf("x alternatives = %d, want 2", len(xEqs[0].Alternatives))
	}

	solved := map[Name]Length{
		x: LengthBounded(Integer(2)), // pretend x solved to 2 (max of 1,2)
		y: LengthBounded(Integer(4)), // pretend y solved to 4 (max of 3,4)
	}
	aEqs := BuildEquations(p, []Name{a}, solved)
	if len(aEqs[0].Alternatives) != 1 {
		t.Fatalf("a (referencing already-solved x,y) alternatives = %d, want 1", len(aEqs[0].Alternatives))
	}
}

func TestBuildEquationsStackConcatenatesAlternatives(t *testing.T) {
	in := NewInterner()
	a := in.Intern("a")
	p := NewImplicitProgram("test")
	p.Define(a, NewSpan("test", 0, 2), ImplicitStack{Children: []ImplicitNode{
		ImplicitPause{Span_: NewSpan("test", 0, 1)},
		ImplicitScale{Span_: NewSpan("test", 1, 2), By: NewFactor(Integer(3)), Child: ImplicitPause{Span_: NewSpan("test", 1, 2)}},
	}})
	eqs := BuildEquations(p, []Name{a}, map[Name]Length{})
	if len(eqs[0].Alternatives) != 2 {
		t.Fatalf("got %d alternatives, want 2 (one per stacked child)", len(eqs[0].Alternatives))
	}
	lengths := countTermsInConstantSums(eqs[0].Alternatives)
	foundOne, foundThree := false, false
	for _, l := range lengths {
		if l.Value().Equals(One()) {
			foundOne = true
		}
		if l.Value().Equals(Integer(3)) {
			foundThree = true
		}
	}
	if !foundOne || !foundThree {
		t.Errorf("alternatives = %v, want lengths 1 and 3", lengths)
	}
}

func TestBuildEquationsUnresolvedNamePanics(t *testing.T) {
	in := NewInterner()
	a, b := in.Intern("a"), in.Intern("b")
	p := NewImplicitProgram("test")
	p.Define(a, NewSpan("test", 0, 1), ImplicitNameRef{Span_: NewSpan("test", 0, 1), Name: b})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic referencing a name with no variable and no solved length")
		}
	}()
	BuildEquations(p, []Name{a}, map[Name]Length{})
}
