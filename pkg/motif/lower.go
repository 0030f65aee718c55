package motif

// CheckedAllocators bundles the two Allocator instantiations LowerComponent needs:
// one for individual CheckedMelody nodes, one for the contiguous child
// slices Sequence and Stack nodes hold.
type CheckedAllocators struct {
	Nodes Allocator[CheckedMelody]
	Lists Allocator[*CheckedMelody]
}

// NewOwningCheckedAllocators returns allocators that heap-allocate each
// node and child slice independently.
func NewOwningCheckedAllocators() CheckedAllocators {
	return CheckedAllocators{
		Nodes: NewOwningAllocator[CheckedMelody](),
		Lists: NewOwningAllocator[*CheckedMelody](),
	}
}

// NewArenaCheckedAllocators returns allocators that pack nodes into
// bump-allocated chunks of chunkSize.
func NewArenaCheckedAllocators(chunkSize int) CheckedAllocators {
	return CheckedAllocators{
		Nodes: NewArenaAllocator[CheckedMelody](chunkSize),
		Lists: NewArenaAllocator[*CheckedMelody](chunkSize),
	}
}

// LowerComponent walks every definition in component, translating its
// implicit AST into a checked one. lengths must already contain a solved
// Length for every name in component (from SolveComponent) and for every
// name outside it that component's definitions reference (from earlier,
// already-lowered components). It returns the checked root for each name
// in component, and every UnboundedNotLastError found along the way
// (collected rather than aborting at the first).
func LowerComponent(program *ImplicitProgram, component []Name, lengths map[Name]Length, allocators CheckedAllocators) (map[Name]*CheckedMelody, []error) {
	inComponent := make(map[Name]bool, len(component))
	for _, n := range component {
		inComponent[n] = true
	}

	roots := make(map[Name]*CheckedMelody, len(component))
	var errs []error
	for _, n := range component {
		roots[n] = lowerNode(program.Defs[n], inComponent, lengths, allocators, &errs)
	}
	return roots, errs
}

func lowerNode(node ImplicitNode, inComponent map[Name]bool, lengths map[Name]Length, allocators CheckedAllocators, errs *[]error) *CheckedMelody {
	switch n := node.(type) {
	case ImplicitPause:
		return allocators.Nodes.Pack(CheckedMelody{Node: CheckedPause{}, Span: n.Span(), Length: LengthOne()})

	case ImplicitNoteEvent:
		return allocators.Nodes.Pack(CheckedMelody{Node: CheckedNoteEvent{Note: n.Note}, Span: n.Span(), Length: LengthOne()})

	case ImplicitNameRef:
		length, ok := lengths[n.Name]
		if !ok {
			panic("motif: name has no solved length at lowering time")
		}
		var kind CheckedNodeKind
		if inComponent[n.Name] && !length.IsUnbounded() {
			kind = CheckedRecur{Name: n.Name}
		} else {
			kind = CheckedNameRef{Name: n.Name}
		}
		return allocators.Nodes.Pack(CheckedMelody{Node: kind, Span: n.Span(), Length: length})

	case ImplicitScale:
		child := lowerNode(n.Child, inComponent, lengths, allocators, errs)
		length := child.Length.MulFactor(n.By)
		return allocators.Nodes.Pack(CheckedMelody{Node: CheckedScale{By: n.By, Child: child}, Span: n.Span(), Length: length})

	case ImplicitSharp:
		child := lowerNode(n.Child, inComponent, lengths, allocators, errs)
		return allocators.Nodes.Pack(CheckedMelody{Node: CheckedSharp{By: n.By, Child: child}, Span: n.Span(), Length: child.Length})

	case ImplicitOffset:
		child := lowerNode(n.Child, inComponent, lengths, allocators, errs)
		return allocators.Nodes.Pack(CheckedMelody{Node: CheckedOffset{By: n.By, Child: child}, Span: n.Span(), Length: child.Length})

	case ImplicitSequence:
		children := make([]*CheckedMelody, len(n.Children))
		for i, c := range n.Children {
			children[i] = lowerNode(c, inComponent, lengths, allocators, errs)
		}
		for i := 0; i < len(children)-1; i++ {
			if children[i].Length.IsUnbounded() {
				*errs = append(*errs, NewUnboundedNotLastError(children[i].Span))
			}
		}
		total := LengthZero()
		for _, c := range children {
			total = total.Add(c.Length)
		}
		packed := allocators.Lists.PackMany(children)
		return allocators.Nodes.Pack(CheckedMelody{Node: CheckedSequence{Children: packed}, Span: n.Span(), Length: total})

	case ImplicitStack:
		children := make([]*CheckedMelody, len(n.Children))
		for i, c := range n.Children {
			children[i] = lowerNode(c, inComponent, lengths, allocators, errs)
		}
		max := LengthZero()
		for _, c := range children {
			max = max.Max(c.Length)
		}
		packed := allocators.Lists.PackMany(children)
		return allocators.Nodes.Pack(CheckedMelody{Node: CheckedStack{Children: packed}, Span: n.Span(), Length: max})

	default:
		panic("motif: unhandled ImplicitNode kind in LowerComponent")
	}
}
