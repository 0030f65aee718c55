package motif

import "testing"

func namesIn(component []Name) map[Name]bool {
	set := make(map[Name]bool, len(component))
	for _, n := range component {
		set[n] = true
	}
	return set
}

func indexOfComponentContaining(components [][]Name, n Name) int {
	for i, c := range components {
		if namesIn(c)[n] {
			return i
		}
	}
	return -1
}

func TestOrderComponentsChain(t *testing.T) {
	in := NewInterner()
	a, b, c := in.Intern("a"), in.Intern("b"), in.Intern("c")
	graph := map[Name]map[Name]struct{}{
		a: {b: {}},
		b: {c: {}},
		c: {},
	}
	components := OrderComponents(graph)
	if len(components) != 3 {
		t.Fatalf("got %d components, want 3", len(components))
	}
	// c has no dependencies, so its component must be solved before b's,
	// and b's before a's.
	if indexOfComponentContaining(components, c) >= indexOfComponentContaining(components, b) {
		t.Error("c's component should precede b's")
	}
	if indexOfComponentContaining(components, b) >= indexOfComponentContaining(components, a) {
		t.Error("b's component should precede a's")
	}
}

func TestOrderComponentsCycle(t *testing.T) {
	in := NewInterner()
	a, b := in.Intern("a"), in.Intern("b")
	graph := map[Name]map[Name]struct{}{
		a: {b: {}},
		b: {a: {}},
	}
	components := OrderComponents(graph)
	if len(components) != 1 {
		t.Fatalf("got %d components, want 1", len(components))
	}
	set := namesIn(components[0])
	if !set[a] || !set[b] {
		t.Error("a and b should be in the same component")
	}
}

func TestOrderComponentsDisjoint(t *testing.T) {
	in := NewInterner()
	a, b := in.Intern("a"), in.Intern("b")
	graph := map[Name]map[Name]struct{}{
		a: {},
		b: {},
	}
	components := OrderComponents(graph)
	if len(components) != 2 {
		t.Fatalf("got %d components, want 2", len(components))
	}
}

func TestOrderComponentsDependOnCycle(t *testing.T) {
	in := NewInterner()
	a, b, c := in.Intern("a"), in.Intern("b"), in.Intern("c")
	// a depends on the {b,c} cycle.
	graph := map[Name]map[Name]struct{}{
		a: {b: {}},
		b: {c: {}},
		c: {b: {}},
	}
	components := OrderComponents(graph)
	if len(components) != 2 {
		t.Fatalf("got %d components, want 2", len(components))
	}
	cycleIdx := indexOfComponentContaining(components, b)
	aIdx := indexOfComponentContaining(components, a)
	if cycleIdx >= aIdx {
		t.Error("the {b,c} cycle's component should precede a's")
	}
}
