package motif

import "sort"

// OrderComponents partitions graph's names into strongly-connected
// components using Tarjan's algorithm, returned in an order where every
// component appears after all the components it depends on — so solving
// length equations component by component in the returned order never
// needs a length that hasn't been solved yet.
func OrderComponents(graph map[Name]map[Name]struct{}) [][]Name {
	f := &sccFinder{
		graph:   graph,
		indices: make(map[Name]int),
		lowlink: make(map[Name]int),
		onStack: make(map[Name]bool),
	}
	for _, n := range sortedNames(graph) {
		if _, visited := f.indices[n]; !visited {
			f.strongConnect(n)
		}
	}
	return f.components
}

type sccFinder struct {
	graph      map[Name]map[Name]struct{}
	index      int
	indices    map[Name]int
	lowlink    map[Name]int
	onStack    map[Name]bool
	stack      []Name
	components [][]Name
}

func (f *sccFinder) strongConnect(v Name) {
	f.indices[v] = f.index
	f.lowlink[v] = f.index
	f.index++
	f.stack = append(f.stack, v)
	f.onStack[v] = true

	for _, w := range sortedNameSet(f.graph[v]) {
		if _, visited := f.indices[w]; !visited {
			f.strongConnect(w)
			if f.lowlink[w] < f.lowlink[v] {
				f.lowlink[v] = f.lowlink[w]
			}
		} else if f.onStack[w] {
			if f.indices[w] < f.lowlink[v] {
				f.lowlink[v] = f.indices[w]
			}
		}
	}

	if f.lowlink[v] == f.indices[v] {
		var component []Name
		for {
			n := len(f.stack) - 1
			w := f.stack[n]
			f.stack = f.stack[:n]
			f.onStack[w] = false
			component = append(component, w)
			if w == v {
				break
			}
		}
		f.components = append(f.components, component)
	}
}

func sortedNames(graph map[Name]map[Name]struct{}) []Name {
	names := make([]Name, 0, len(graph))
	for n := range graph {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].id < names[j].id })
	return names
}

func sortedNameSet(set map[Name]struct{}) []Name {
	names := make([]Name, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].id < names[j].id })
	return names
}
