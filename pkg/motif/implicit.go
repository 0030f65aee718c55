package motif

// ImplicitNode is a node of the pre-check AST: the shape a parser (out of
// scope for this package) would hand to Compile. It carries only what a
// parser can know on its own — no node here has been assigned a Length or
// distinguishes a back-reference from a forward one; that is the checked
// AST's job (see CheckedMelody).
type ImplicitNode interface {
	// Span returns the source range the node was parsed from.
	Span() Span
}

// ImplicitPause is a rest: it occupies time but produces no event.
type ImplicitPause struct {
	Span_ Span
}

// Span implements ImplicitNode.
func (n ImplicitPause) Span() Span { return n.Span_ }

// ImplicitNoteEvent is a single atomic note literal.
type ImplicitNoteEvent struct {
	Span_ Span
	Note  Note
}

// Span implements ImplicitNode.
func (n ImplicitNoteEvent) Span() Span { return n.Span_ }

// ImplicitNameRef references another definition by name.
type ImplicitNameRef struct {
	Span_ Span
	Name  Name
}

// Span implements ImplicitNode.
func (n ImplicitNameRef) Span() Span { return n.Span_ }

// ImplicitScale scales its child's time by a positive factor.
type ImplicitScale struct {
	Span_ Span
	By    Factor
	Child ImplicitNode
}

// Span implements ImplicitNode.
func (n ImplicitScale) Span() Span { return n.Span_ }

// ImplicitSharp transparently raises its child's notes by By semitones
// (By is always non-negative; repeated Sharp nodes accumulate by nesting).
type ImplicitSharp struct {
	Span_ Span
	By    int
	Child ImplicitNode
}

// Span implements ImplicitNode.
func (n ImplicitSharp) Span() Span { return n.Span_ }

// ImplicitOffset transparently shifts its child's notes by By octaves
// (By may be negative).
type ImplicitOffset struct {
	Span_ Span
	By    int
	Child ImplicitNode
}

// Span implements ImplicitNode.
func (n ImplicitOffset) Span() Span { return n.Span_ }

// ImplicitSequence plays its children one after another.
type ImplicitSequence struct {
	Children []ImplicitNode
}

// Span is the combination of every child's span.
func (n ImplicitSequence) Span() Span { return spanOfChildren(n.Children) }

// ImplicitStack plays its children simultaneously, starting together.
type ImplicitStack struct {
	Children []ImplicitNode
}

// Span is the combination of every child's span.
func (n ImplicitStack) Span() Span { return spanOfChildren(n.Children) }

func spanOfChildren(children []ImplicitNode) Span {
	spans := make([]Span, len(children))
	for i, c := range children {
		spans[i] = c.Span()
	}
	return CombineSpans(spans)
}

// ImplicitProgram is a complete pre-check program: a set of named
// definitions, the span each was declared at (for diagnostics), and the
// subset of names a caller considers public (at least one of which must
// exist, or Compile reports NoPublicNames).
type ImplicitProgram struct {
	Defs   map[Name]ImplicitNode
	Spans  map[Name]Span
	Public []Name
	Source SourceID
}

// NewImplicitProgram returns an empty program attributed to source.
func NewImplicitProgram(source SourceID) *ImplicitProgram {
	return &ImplicitProgram{
		Defs:   make(map[Name]ImplicitNode),
		Spans:  make(map[Name]Span),
		Source: source,
	}
}

// Define records name's right-hand side and declaration span, overwriting
// any prior definition of the same name.
func (p *ImplicitProgram) Define(name Name, span Span, node ImplicitNode) {
	p.Defs[name] = node
	p.Spans[name] = span
}

// MarkPublic adds name to the program's public surface.
func (p *ImplicitProgram) MarkPublic(name Name) {
	p.Public = append(p.Public, name)
}
