package motif

// ComponentResult is the outcome of solving one strongly-connected
// component's length equations: one Length per variable, in the
// component's variable-index order, plus an error when the component was
// unfounded (in which case every Length is the placeholder Bounded(0), so
// lowering can still proceed and collect further errors).
type ComponentResult struct {
	Lengths []Length
	Err     error
}

// SolveComponent resolves the max-of-sums equations built by
// BuildEquations for one strongly-connected component.
//
// It enumerates the Cartesian product of each equation's alternative
// sums (one alternative chosen per equation), builds one n-variable
// linear system per combination, and solves each with SolveSystem:
//
//   - If any alternative anywhere in the component contains an unbounded
//     constant (a cross-component reference to a name already solved to
//     Unbounded), the whole component is Unbounded; no system is built.
//   - If any combination's system is a Contradiction, the whole component
//     is Unbounded — a contradictory alternative signals the recursive
//     definition has no finite realization.
//   - If any combination's system is Unfounded (and no Contradiction was
//     seen), the whole component is an unfounded recursion: span names
//     the union of every definition's span in the component.
//   - Otherwise, every combination succeeds; each variable's solved
//     length is the pointwise maximum across every successful solution,
//     reflecting the max the equation builder's alternatives encode.
func SolveComponent(equations []Equation, names []Name, interner *Interner, nameSpan Span) ComponentResult {
	n := len(equations)

	if anyUnboundedConstant(equations) {
		lengths := make([]Length, n)
		for i := range lengths {
			lengths[i] = LengthUnbounded()
		}
		return ComponentResult{Lengths: lengths}
	}

	unfounded := false
	var successes [][]Rational

	for _, combo := range cartesianCombinations(equations) {
		coeffs := make([][]Rational, n)
		constants := make([]Rational, n)
		for i, sum := range combo {
			row := make([]Rational, n)
			row[i] = One()
			constant := Zero()
			for _, term := range sum.Terms {
				switch t := term.(type) {
				case TermConstant:
					constant = constant.Add(t.Value.Value())
				case TermVariable:
					j := t.Var.Index()
					row[j] = row[j].Sub(t.Factor.Rational())
				}
			}
			coeffs[i] = row
			constants[i] = constant
		}

		res := SolveSystem(coeffs, constants)
		switch res.Outcome {
		case OutcomeSuccess:
			successes = append(successes, res.Values)
		case OutcomeContradiction:
			lengths := make([]Length, n)
			for i := range lengths {
				lengths[i] = LengthUnbounded()
			}
			return ComponentResult{Lengths: lengths}
		case OutcomeUnfounded:
			unfounded = true
		}
	}

	if unfounded {
		lengths := make([]Length, n)
		for i := range lengths {
			lengths[i] = LengthBounded(Zero())
		}
		names2 := make([]string, len(names))
		for i, nm := range names {
			names2[i] = interner.Text(nm)
		}
		return ComponentResult{
			Lengths: lengths,
			Err:     NewUnfoundedRecursionError(names2, nameSpan),
		}
	}

	values := make([]Rational, n)
	for i := range values {
		best := successes[0][i]
		for _, sol := range successes[1:] {
			if sol[i].Cmp(best) > 0 {
				best = sol[i]
			}
		}
		values[i] = best
	}
	lengths := make([]Length, n)
	for i, v := range values {
		lengths[i] = LengthBounded(v)
	}
	return ComponentResult{Lengths: lengths}
}

func anyUnboundedConstant(equations []Equation) bool {
	for _, eq := range equations {
		for _, sum := range eq.Alternatives {
			for _, term := range sum.Terms {
				if c, ok := term.(TermConstant); ok && c.Value.IsUnbounded() {
					return true
				}
			}
		}
	}
	return false
}

// cartesianCombinations enumerates every way to pick one alternative Sum
// per equation, preserving equation order in each combination.
func cartesianCombinations(equations []Equation) [][]Sum {
	result := [][]Sum{{}}
	for _, eq := range equations {
		var next [][]Sum
		for _, combo := range result {
			for _, alt := range eq.Alternatives {
				c := make([]Sum, len(combo)+1)
				copy(c, combo)
				c[len(combo)] = alt
				next = append(next, c)
			}
		}
		result = next
	}
	return result
}
