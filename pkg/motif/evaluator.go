package motif

import "container/heap"

// DefaultMaxDepth bounds how many Recur traversals a path through the
// checked AST may take before the evaluator discards it.
const DefaultMaxDepth = 10

// DefaultMinLength is the shortest effective length the evaluator will
// still emit an event for.
func DefaultMinLength() Length { return LengthBounded(NewRational(1, 512)) }

// Event is one note emitted by an Evaluator: a concrete pitch, the span
// of the leaf node it came from, and its position and duration along the
// entry definition's timeline.
type Event struct {
	Note   Note
	Span   Span
	Start  Time
	Length Length
}

type frame struct {
	node   *CheckedMelody
	start  Time
	factor Factor
	offset int
	sharps int
	depth  int
}

type frameHeap []frame

func (h frameHeap) Len() int            { return len(h) }
func (h frameHeap) Less(i, j int) bool  { return h[i].start.Less(h[j].start) }
func (h frameHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *frameHeap) Push(x interface{}) { *h = append(*h, x.(frame)) }
func (h *frameHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Evaluator lazily unfolds a CheckedProgram entry into a time-ordered,
// depth- and minimum-length-bounded stream of Events. It holds a
// min-priority queue of pending frames ordered by start time; each call
// to Next pops the earliest-starting frame, discards it if it has
// recursed too deep or decayed below the minimum length, and otherwise
// either emits an event or pushes its children.
//
// An Evaluator is built with NewEvaluator and tuned with the chainable
// With* methods before the first call to Next; once iteration begins,
// only Next should be called.
type Evaluator struct {
	program   *CheckedProgram
	heap      frameHeap
	maxDepth  int
	minLength Length
}

// NewEvaluator returns an Evaluator seeded at entry's checked root, with
// DefaultMaxDepth and DefaultMinLength.
func NewEvaluator(program *CheckedProgram, entry Name) Evaluator {
	root := program.Entry(entry)
	h := frameHeap{{node: root, start: TimeZero(), factor: FactorOne(), offset: 0, sharps: 0, depth: 0}}
	heap.Init(&h)
	return Evaluator{program: program, heap: h, maxDepth: DefaultMaxDepth, minLength: DefaultMinLength()}
}

// WithMaxDepth returns a copy of e with its recursion-depth cutoff set to
// maxDepth.
func (e Evaluator) WithMaxDepth(maxDepth int) Evaluator {
	e.maxDepth = maxDepth
	return e
}

// WithMinLength returns a copy of e with its minimum effective-length
// cutoff set to minLength.
func (e Evaluator) WithMinLength(minLength Length) Evaluator {
	e.minLength = minLength
	return e
}

// Next pops and processes frames until it can emit an Event or the queue
// empties, in which case it returns (Event{}, false).
func (e *Evaluator) Next() (Event, bool) {
	for e.heap.Len() > 0 {
		f := heap.Pop(&e.heap).(frame)
		effectiveLength := f.node.Length.MulFactor(f.factor)
		if f.depth >= e.maxDepth || effectiveLength.Less(e.minLength) {
			continue
		}

		switch node := f.node.Node.(type) {
		case CheckedPause:
			continue

		case CheckedNoteEvent:
			note := node.Note.AddOctave(f.offset).AddSharp(f.sharps)
			return Event{Note: note, Span: f.node.Span, Start: f.start, Length: effectiveLength}, true

		case CheckedNameRef:
			child := e.program.Entry(node.Name)
			heap.Push(&e.heap, frame{node: child, start: f.start, factor: f.factor, offset: f.offset, sharps: f.sharps, depth: f.depth})

		case CheckedRecur:
			child := e.program.Entry(node.Name)
			heap.Push(&e.heap, frame{node: child, start: f.start, factor: f.factor, offset: f.offset, sharps: f.sharps, depth: f.depth + 1})

		case CheckedScale:
			heap.Push(&e.heap, frame{node: node.Child, start: f.start, factor: f.factor.Mul(node.By), offset: f.offset, sharps: f.sharps, depth: f.depth})

		case CheckedSharp:
			heap.Push(&e.heap, frame{node: node.Child, start: f.start, factor: f.factor, offset: f.offset, sharps: f.sharps + node.By, depth: f.depth})

		case CheckedOffset:
			heap.Push(&e.heap, frame{node: node.Child, start: f.start, factor: f.factor, offset: f.offset + node.By, sharps: f.sharps, depth: f.depth})

		case CheckedSequence:
			start := f.start
			for _, child := range node.Children {
				heap.Push(&e.heap, frame{node: child, start: start, factor: f.factor, offset: f.offset, sharps: f.sharps, depth: f.depth})
				if child.Length.IsUnbounded() {
					break
				}
				start = start.Add(child.Length.MulFactor(f.factor))
			}

		case CheckedStack:
			for _, child := range node.Children {
				heap.Push(&e.heap, frame{node: child, start: f.start, factor: f.factor, offset: f.offset, sharps: f.sharps, depth: f.depth})
			}

		default:
			panic("motif: unhandled CheckedNodeKind in Evaluator")
		}
	}
	return Event{}, false
}
