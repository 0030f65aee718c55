package motif

// Compile runs the full pipeline over program: dependency extraction,
// strongly-connected-component ordering, per-component length inference,
// and lowering to a checked program. interner must be the same Interner
// that produced program's Names (used only to render diagnostics).
// allocators selects where checked-AST nodes are stored.
//
// On success it returns (nil, checkedProgram). NoPublicNamesError and
// UnknownNameError stop the pipeline before any equation is built (a name
// the dependency graph never resolved would panic deeper in the pipeline)
// and are returned with a nil program. UnfoundedRecursionError and
// UnboundedNotLastError do not stop it — checking continues into later,
// independent components so a single compilation surfaces every problem it
// can find — and are returned together with the partially checked program.
func Compile(program *ImplicitProgram, interner *Interner, allocators CheckedAllocators) ([]error, *CheckedProgram) {
	if len(program.Public) == 0 {
		return []error{NewNoPublicNamesError(wholeProgramSpan(program))}, nil
	}

	graph, depErrs := Dependencies(program, interner)
	if len(depErrs) > 0 {
		return depErrs, nil
	}

	components := OrderComponents(graph)

	var errs []error
	lengths := make(map[Name]Length)
	defs := make(map[Name]*CheckedMelody)

	for _, component := range components {
		equations := BuildEquations(program, component, lengths)
		componentSpan := componentSpan(program, component)
		result := SolveComponent(equations, component, interner, componentSpan)
		for i, n := range component {
			lengths[n] = result.Lengths[i]
		}
		if result.Err != nil {
			errs = append(errs, result.Err)
		}

		roots, lowerErrs := LowerComponent(program, component, lengths, allocators)
		errs = append(errs, lowerErrs...)
		for n, root := range roots {
			defs[n] = root
		}
	}

	return errs, &CheckedProgram{Defs: defs, Public: program.Public, Source: program.Source}
}

func componentSpan(program *ImplicitProgram, component []Name) Span {
	spans := make([]Span, len(component))
	for i, n := range component {
		spans[i] = program.Spans[n]
	}
	return CombineSpans(spans)
}

func wholeProgramSpan(program *ImplicitProgram) Span {
	if len(program.Spans) == 0 {
		return NewSpan(program.Source, 0, 0)
	}
	spans := make([]Span, 0, len(program.Spans))
	for _, s := range program.Spans {
		spans = append(spans, s)
	}
	return CombineSpans(spans)
}
