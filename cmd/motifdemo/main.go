// Package main demonstrates the motif compiler and evaluator against the
// literal scenarios from the specification's worked-examples section.
//
// There is no lexer or parser in this module (out of scope, §1), so every
// program below is built by hand with ImplicitProgram/ImplicitNode values —
// the shape a parser would otherwise produce.
package main

import (
	"fmt"

	"github.com/gitrdm/motif/pkg/motif"
)

func main() {
	fmt.Println("=== motif Examples ===")
	fmt.Println()

	loneNote()
	sequenceOfPauseAndNote()
	stack()
	fractalRecursion()
	infiniteTail()
	unboundedNotLast()
	unfoundedRecursion()
	mutualComponent()
}

func run(label string, program *motif.ImplicitProgram, in *motif.Interner, entry motif.Name, maxDepth int) {
	fmt.Printf("%s:\n", label)

	errs, checked := motif.Compile(program, in, motif.NewOwningCheckedAllocators())
	for _, err := range errs {
		fmt.Printf("   error: %v\n", err)
	}
	if checked == nil {
		fmt.Println()
		return
	}

	root := checked.Entry(entry)
	fmt.Printf("   length(%s) = %s\n", in.Text(entry), root.Length)

	if len(errs) > 0 {
		// A real caller would stop here: the checked program above is
		// partial, built only so later SCCs could still be checked.
		fmt.Println()
		return
	}

	ev := motif.NewEvaluator(checked, entry)
	if maxDepth > 0 {
		ev = ev.WithMaxDepth(maxDepth)
	}
	for {
		e, ok := ev.Next()
		if !ok {
			break
		}
		fmt.Printf("   note=%s start=%s length=%s\n", e.Note, e.Start, e.Length)
	}
	fmt.Println()
}

// loneNote is scenario (a): it = A.
func loneNote() {
	in := motif.NewInterner()
	it := in.Intern("it")
	p := motif.NewImplicitProgram("demo")
	span := motif.NewSpan("demo", 0, 1)
	p.Define(it, span, motif.ImplicitNoteEvent{Span_: span, Note: motif.NewPitchClass('A', 4)})
	p.MarkPublic(it)
	run("1. Lone note", p, in, it, 0)
}

// sequenceOfPauseAndNote is scenario (c): it = (Pause, A).
func sequenceOfPauseAndNote() {
	in := motif.NewInterner()
	it := in.Intern("it")
	p := motif.NewImplicitProgram("demo")
	pauseSpan := motif.NewSpan("demo", 0, 1)
	noteSpan := motif.NewSpan("demo", 1, 2)
	seqSpan := motif.NewSpan("demo", 0, 2)
	p.Define(it, seqSpan, motif.ImplicitSequence{Children: []motif.ImplicitNode{
		motif.ImplicitPause{Span_: pauseSpan},
		motif.ImplicitNoteEvent{Span_: noteSpan, Note: motif.NewPitchClass('A', 4)},
	}})
	p.MarkPublic(it)
	run("2. Sequence of pause and note", p, in, it, 0)
}

// stack is scenario (d): it = (Pause ‖ A).
func stack() {
	in := motif.NewInterner()
	it := in.Intern("it")
	p := motif.NewImplicitProgram("demo")
	pauseSpan := motif.NewSpan("demo", 0, 1)
	noteSpan := motif.NewSpan("demo", 1, 2)
	stackSpan := motif.NewSpan("demo", 0, 2)
	p.Define(it, stackSpan, motif.ImplicitStack{Children: []motif.ImplicitNode{
		motif.ImplicitPause{Span_: pauseSpan},
		motif.ImplicitNoteEvent{Span_: noteSpan, Note: motif.NewPitchClass('A', 4)},
	}})
	p.MarkPublic(it)
	run("3. Stack", p, in, it, 0)
}

// fractalRecursion is scenario (e): a = (A, 1/2 a), capped at max_depth=5.
func fractalRecursion() {
	in := motif.NewInterner()
	a := in.Intern("a")
	p := motif.NewImplicitProgram("demo")
	noteSpan := motif.NewSpan("demo", 0, 1)
	refSpan := motif.NewSpan("demo", 1, 2)
	scaleSpan := motif.NewSpan("demo", 1, 3)
	seqSpan := motif.NewSpan("demo", 0, 3)
	p.Define(a, seqSpan, motif.ImplicitSequence{Children: []motif.ImplicitNode{
		motif.ImplicitNoteEvent{Span_: noteSpan, Note: motif.NewPitchClass('A', 4)},
		motif.ImplicitScale{
			Span_: scaleSpan,
			By:    motif.NewFactor(motif.NewRational(1, 2)),
			Child: motif.ImplicitNameRef{Span_: refSpan, Name: a},
		},
	}})
	p.MarkPublic(a)
	run("4. Fractal recursion (max_depth=5)", p, in, a, 5)
}

// infiniteTail is scenario (f): x = (A, B, x). Its length solves to
// Unbounded, so the self-reference lowers to Name(x), not Recur(x) — per
// §4.G, Recur requires a bounded solved length. A Name push carries depth
// unchanged, so max_depth never trips here; the consumer bounds the stream
// itself by only asking for a fixed number of events, exactly as the
// specification's "continue until the consumer stops polling" escape hatch
// anticipates.
func infiniteTail() {
	in := motif.NewInterner()
	x := in.Intern("x")
	p := motif.NewImplicitProgram("demo")
	aSpan := motif.NewSpan("demo", 0, 1)
	bSpan := motif.NewSpan("demo", 1, 2)
	refSpan := motif.NewSpan("demo", 2, 3)
	seqSpan := motif.NewSpan("demo", 0, 3)
	p.Define(x, seqSpan, motif.ImplicitSequence{Children: []motif.ImplicitNode{
		motif.ImplicitNoteEvent{Span_: aSpan, Note: motif.NewPitchClass('A', 4)},
		motif.ImplicitNoteEvent{Span_: bSpan, Note: motif.NewPitchClass('B', 4)},
		motif.ImplicitNameRef{Span_: refSpan, Name: x},
	}})
	p.MarkPublic(x)

	fmt.Println("5. Infinite tail (first 6 events only):")
	errs, checked := motif.Compile(p, in, motif.NewOwningCheckedAllocators())
	for _, err := range errs {
		fmt.Printf("   error: %v\n", err)
	}
	root := checked.Entry(x)
	fmt.Printf("   length(%s) = %s\n", in.Text(x), root.Length)

	ev := motif.NewEvaluator(checked, x)
	for i := 0; i < 6; i++ {
		e, ok := ev.Next()
		if !ok {
			break
		}
		fmt.Printf("   note=%s start=%s length=%s\n", e.Note, e.Start, e.Length)
	}
	fmt.Println()
}

// unboundedNotLast is scenario (g): x = (A, x, B) — illegal, the unbounded
// reference to x is not the sequence's last element.
func unboundedNotLast() {
	in := motif.NewInterner()
	x := in.Intern("x")
	p := motif.NewImplicitProgram("demo")
	aSpan := motif.NewSpan("demo", 0, 1)
	refSpan := motif.NewSpan("demo", 1, 2)
	bSpan := motif.NewSpan("demo", 2, 3)
	seqSpan := motif.NewSpan("demo", 0, 3)
	p.Define(x, seqSpan, motif.ImplicitSequence{Children: []motif.ImplicitNode{
		motif.ImplicitNoteEvent{Span_: aSpan, Note: motif.NewPitchClass('A', 4)},
		motif.ImplicitNameRef{Span_: refSpan, Name: x},
		motif.ImplicitNoteEvent{Span_: bSpan, Note: motif.NewPitchClass('B', 4)},
	}})
	p.MarkPublic(x)
	run("6. Unbounded reference not last (expect an error)", p, in, x, 0)
}

// unfoundedRecursion is scenario (h): x = x.
func unfoundedRecursion() {
	in := motif.NewInterner()
	x := in.Intern("x")
	p := motif.NewImplicitProgram("demo")
	span := motif.NewSpan("demo", 0, 1)
	p.Define(x, span, motif.ImplicitNameRef{Span_: span, Name: x})
	p.MarkPublic(x)
	run("7. Unfounded recursion (expect an error)", p, in, x, 0)
}

// mutualComponent is scenario (j): it = 1/2 (at, it, bt); at = (A, B); bt = (B, C).
func mutualComponent() {
	in := motif.NewInterner()
	it, at, bt := in.Intern("it"), in.Intern("at"), in.Intern("bt")
	p := motif.NewImplicitProgram("demo")

	atSpan := motif.NewSpan("demo", 0, 2)
	p.Define(at, atSpan, motif.ImplicitSequence{Children: []motif.ImplicitNode{
		motif.ImplicitNoteEvent{Span_: motif.NewSpan("demo", 0, 1), Note: motif.NewPitchClass('A', 4)},
		motif.ImplicitNoteEvent{Span_: motif.NewSpan("demo", 1, 2), Note: motif.NewPitchClass('B', 4)},
	}})

	btSpan := motif.NewSpan("demo", 2, 4)
	p.Define(bt, btSpan, motif.ImplicitSequence{Children: []motif.ImplicitNode{
		motif.ImplicitNoteEvent{Span_: motif.NewSpan("demo", 2, 3), Note: motif.NewPitchClass('B', 4)},
		motif.ImplicitNoteEvent{Span_: motif.NewSpan("demo", 3, 4), Note: motif.NewPitchClass('C', 4)},
	}})

	atRefSpan := motif.NewSpan("demo", 4, 5)
	itRefSpan := motif.NewSpan("demo", 5, 6)
	btRefSpan := motif.NewSpan("demo", 6, 7)
	itSpan := motif.NewSpan("demo", 4, 8)
	p.Define(it, itSpan, motif.ImplicitScale{
		Span_: itSpan,
		By:    motif.NewFactor(motif.NewRational(1, 2)),
		Child: motif.ImplicitSequence{Children: []motif.ImplicitNode{
			motif.ImplicitNameRef{Span_: atRefSpan, Name: at},
			motif.ImplicitNameRef{Span_: itRefSpan, Name: it},
			motif.ImplicitNameRef{Span_: btRefSpan, Name: bt},
		}},
	})

	p.MarkPublic(it)
	p.MarkPublic(at)
	p.MarkPublic(bt)
	run("8. Mutual strongly-connected component", p, in, it, 10)
}
