package motif

// Dependencies walks every definition in program and returns, for each
// name, the set of defined names it directly references (including itself,
// for a self-referencing definition). Every
// reference to a name with no definition is collected as an
// UnknownNameError rather than aborting at the first one, so a single
// pass reports every broken reference in the program. interner supplies
// the original spelling for unknown-name diagnostics.
func Dependencies(program *ImplicitProgram, interner *Interner) (map[Name]map[Name]struct{}, []error) {
	graph := make(map[Name]map[Name]struct{}, len(program.Defs))
	var errs []error

	for name, node := range program.Defs {
		deps := make(map[Name]struct{})
		walkDependencies(program, interner, node, deps, &errs)
		graph[name] = deps
	}
	return graph, errs
}

func walkDependencies(program *ImplicitProgram, interner *Interner, node ImplicitNode, deps map[Name]struct{}, errs *[]error) {
	switch n := node.(type) {
	case ImplicitPause:
		// no references
	case ImplicitNoteEvent:
		// no references
	case ImplicitNameRef:
		if _, ok := program.Defs[n.Name]; ok {
			deps[n.Name] = struct{}{}
		} else {
			*errs = append(*errs, NewUnknownNameError(interner.Text(n.Name), n.Span()))
		}
	case ImplicitScale:
		walkDependencies(program, interner, n.Child, deps, errs)
	case ImplicitSharp:
		walkDependencies(program, interner, n.Child, deps, errs)
	case ImplicitOffset:
		walkDependencies(program, interner, n.Child, deps, errs)
	case ImplicitSequence:
		for _, c := range n.Children {
			walkDependencies(program, interner, c, deps, errs)
		}
	case ImplicitStack:
		for _, c := range n.Children {
			walkDependencies(program, interner, c, deps, errs)
		}
	default:
		panic("motif: unhandled ImplicitNode kind in Dependencies")
	}
}
