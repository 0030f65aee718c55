// Package motif implements the core compiler and evaluator for a small
// declarative language of recursive, hierarchical music.
//
// A source program is a set of named equations whose right-hand sides
// compose atomic events (notes, pauses), named references, and a small
// algebra of combinators: sequencing, parallel stacking, time scaling, and
// pitch transposition. The package consumes a parsed [ImplicitProgram] and
// runs it through three stages:
//
//  1. Dependency extraction and strongly-connected-component ordering of
//     the name-reference graph ([Dependencies], [OrderComponents]).
//  2. Length inference: for each component, a system of max-of-linear
//     equations over exact rationals is built and solved, giving every
//     definition a symbolic duration ([BuildEquations], [SolveComponent]).
//  3. Lowering to a [CheckedProgram] that annotates every node with its
//     solved length and distinguishes intra-component back-references
//     ([LowerComponent]).
//
// A [CheckedProgram] can then be lazily unfolded into a time-ordered stream
// of note events with a depth- and minimum-length-bounded [Evaluator].
//
// Out of scope: lexing and parsing (the package accepts an already-parsed
// [ImplicitProgram]), CLI and file I/O, and any MIDI/audio/SVG/GUI
// back-end. See the driver in [Compile] for the single entry point that
// ties the pipeline together.
package motif
