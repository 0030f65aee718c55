package motif

// Name is an interned identifier for a definition. Names are compared by
// identity (the ID assigned at interning time), never by the spelling of
// the string they came from, mirroring the ID()-based identity of the
// teacher's Variable/FDVariable rather than raw string equality.
type Name struct {
	id int
}

// Equals reports whether n and other were interned to the same
// identifier.
func (n Name) Equals(other Name) bool { return n.id == other.id }

// Interner assigns a stable Name to each distinct spelling it is asked to
// intern, reusing the same Name for repeated spellings.
type Interner struct {
	ids   map[string]int
	texts []string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]int)}
}

// Intern returns the Name for text, assigning a fresh one on first sight.
func (in *Interner) Intern(text string) Name {
	if id, ok := in.ids[text]; ok {
		return Name{id: id}
	}
	id := len(in.texts)
	in.texts = append(in.texts, text)
	in.ids[text] = id
	return Name{id: id}
}

// Text returns the original spelling that produced n. It panics if n was
// not produced by this Interner.
func (in *Interner) Text(n Name) string {
	if n.id < 0 || n.id >= len(in.texts) {
		panic("motif: name not interned by this Interner")
	}
	return in.texts[n.id]
}

// Len returns the number of distinct names interned so far.
func (in *Interner) Len() int { return len(in.texts) }
