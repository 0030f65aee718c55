package motif

// CheckedNodeKind is the node-shape portion of a CheckedMelody: the same
// combinators as ImplicitNode, plus Recur, and without Name where lowering
// determined the reference is an intra-component back-reference (see
// LowerComponent). Children are pointers so Sequence/Stack can reuse nodes already
// allocated elsewhere in the program without copying.
type CheckedNodeKind interface {
	isCheckedNodeKind()
}

// CheckedPause is a rest.
type CheckedPause struct{}

func (CheckedPause) isCheckedNodeKind() {}

// CheckedNoteEvent is a single atomic note literal.
type CheckedNoteEvent struct {
	Note Note
}

func (CheckedNoteEvent) isCheckedNodeKind() {}

// CheckedNameRef references another, already-solved definition: either one
// outside the current strongly-connected component, or a same-component
// definition whose solved length is Unbounded.
type CheckedNameRef struct {
	Name Name
}

func (CheckedNameRef) isCheckedNodeKind() {}

// CheckedRecur references a definition in the same strongly-connected
// component whose solved length is exactly the recursive variable's own
// length — lowering emits this instead of CheckedNameRef precisely when
// the reference is intra-component and bounded.
type CheckedRecur struct {
	Name Name
}

func (CheckedRecur) isCheckedNodeKind() {}

// CheckedScale scales its child's time by a positive factor.
type CheckedScale struct {
	By    Factor
	Child *CheckedMelody
}

func (CheckedScale) isCheckedNodeKind() {}

// CheckedSharp transparently raises its child's notes by By semitones.
type CheckedSharp struct {
	By    int
	Child *CheckedMelody
}

func (CheckedSharp) isCheckedNodeKind() {}

// CheckedOffset transparently shifts its child's notes by By octaves.
type CheckedOffset struct {
	By    int
	Child *CheckedMelody
}

func (CheckedOffset) isCheckedNodeKind() {}

// CheckedSequence plays its children one after another.
type CheckedSequence struct {
	Children []*CheckedMelody
}

func (CheckedSequence) isCheckedNodeKind() {}

// CheckedStack plays its children simultaneously.
type CheckedStack struct {
	Children []*CheckedMelody
}

func (CheckedStack) isCheckedNodeKind() {}

// CheckedMelody is a node of the checked AST: an ImplicitNode's shape
// (lowered, with name resolution finalized into CheckedNameRef/CheckedRecur)
// annotated with its solved Length.
type CheckedMelody struct {
	Node   CheckedNodeKind
	Span   Span
	Length Length
}

// CheckedProgram is the output of Compile: every definition, public or not,
// solved and lowered, each reachable through Entry.
type CheckedProgram struct {
	Defs    map[Name]*CheckedMelody
	Public  []Name
	Source  SourceID
}

// Entry returns the checked melody for name, public or not — Recur and
// NameRef nodes need to resolve any defined name, not only a public one.
// It panics if name has no definition.
func (p *CheckedProgram) Entry(name Name) *CheckedMelody {
	m, ok := p.Defs[name]
	if !ok {
		panic("motif: entry name not found in checked program")
	}
	return m
}
