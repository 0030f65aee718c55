package motif

// Variable names one of the fresh unknowns introduced while solving a
// single strongly-connected component: one unknown per definition in that
// component, representing its (still unknown) Length.
type Variable struct {
	id int
}

// Index returns v's position in the component's variable ordering, used
// as a matrix column index by the Gaussian-elimination solver.
func (v Variable) Index() int { return v.id }

// Term is one summand of a Sum: either a known Length, or a variable
// scaled by a positive Factor.
type Term interface {
	isTerm()
}

// TermConstant is a known-Length summand.
type TermConstant struct {
	Value Length
}

func (TermConstant) isTerm() {}

// TermVariable is factor*var.
type TermVariable struct {
	Factor Factor
	Var    Variable
}

func (TermVariable) isTerm() {}

// Sum is a linear combination of Terms: their lengths added together.
type Sum struct {
	Terms []Term
}

// Equation binds one component variable to a set of alternative Sums: the
// variable's length must equal at least one of these (Stack introduces
// the alternatives; a component solver tries each and keeps whichever
// alternative's solution is consistent, taking the pointwise max across
// every alternative that solves).
type Equation struct {
	Var          Variable
	Alternatives []Sum
}

// BuildEquations constructs one Equation per name in component. solved
// supplies the already-finalized Length of every name outside this
// component (from components processed earlier, in dependency order);
// BuildEquations panics if a name reference resolves to neither a
// component variable nor an entry in solved, which would mean the driver
// called it out of order — an internal invariant violation, not a
// reportable user error (those are caught earlier by Dependencies).
func BuildEquations(program *ImplicitProgram, component []Name, solved map[Name]Length) []Equation {
	vars := make(map[Name]Variable, len(component))
	for i, n := range component {
		vars[n] = Variable{id: i}
	}
	equations := make([]Equation, len(component))
	for i, n := range component {
		alternatives := buildSums(vars, solved, program.Defs[n], FactorOne())
		equations[i] = Equation{Var: vars[n], Alternatives: alternatives}
	}
	return equations
}

func buildSums(vars map[Name]Variable, solved map[Name]Length, node ImplicitNode, factor Factor) []Sum {
	switch n := node.(type) {
	case ImplicitPause:
		return []Sum{{Terms: []Term{TermConstant{Value: LengthOne().MulFactor(factor)}}}}
	case ImplicitNoteEvent:
		return []Sum{{Terms: []Term{TermConstant{Value: LengthOne().MulFactor(factor)}}}}
	case ImplicitNameRef:
		if v, ok := vars[n.Name]; ok {
			return []Sum{{Terms: []Term{TermVariable{Factor: factor, Var: v}}}}
		}
		if length, ok := solved[n.Name]; ok {
			return []Sum{{Terms: []Term{TermConstant{Value: length.MulFactor(factor)}}}}
		}
		panic("motif: name reference resolves to neither a component variable nor a solved length")
	case ImplicitScale:
		return buildSums(vars, solved, n.Child, factor.Mul(n.By))
	case ImplicitSharp:
		return buildSums(vars, solved, n.Child, factor)
	case ImplicitOffset:
		return buildSums(vars, solved, n.Child, factor)
	case ImplicitSequence:
		return sequenceSums(vars, solved, n.Children, factor)
	case ImplicitStack:
		return stackSums(vars, solved, n.Children, factor)
	default:
		panic("motif: unhandled ImplicitNode kind in BuildEquations")
	}
}

// sequenceSums folds a pairwise Cartesian product across children: each
// combination of one alternative per child becomes one alternative whose
// terms are the concatenation (summed) of the chosen per-child terms.
func sequenceSums(vars map[Name]Variable, solved map[Name]Length, children []ImplicitNode, factor Factor) []Sum {
	if len(children) == 0 {
		return []Sum{{Terms: []Term{TermConstant{Value: LengthZero()}}}}
	}
	acc := buildSums(vars, solved, children[0], factor)
	for _, c := range children[1:] {
		next := buildSums(vars, solved, c, factor)
		acc = cartesianConcat(acc, next)
	}
	return acc
}

func cartesianConcat(a, b []Sum) []Sum {
	result := make([]Sum, 0, len(a)*len(b))
	for _, sa := range a {
		for _, sb := range b {
			terms := make([]Term, 0, len(sa.Terms)+len(sb.Terms))
			terms = append(terms, sa.Terms...)
			terms = append(terms, sb.Terms...)
			result = append(result, Sum{Terms: terms})
		}
	}
	return result
}

// stackSums concatenates (rather than multiplies) every child's
// alternatives: Stack's length is the max over children, and max is
// represented not as a linear term but as a menu of candidate systems for
// the component solver to try.
func stackSums(vars map[Name]Variable, solved map[Name]Length, children []ImplicitNode, factor Factor) []Sum {
	if len(children) == 0 {
		return []Sum{{Terms: []Term{TermConstant{Value: LengthZero()}}}}
	}
	var result []Sum
	for _, c := range children {
		result = append(result, buildSums(vars, solved, c, factor)...)
	}
	return result
}
