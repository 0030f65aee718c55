package motif

import (
	"strconv"
	"strings"
)

// Note is the atomic event a melody ultimately unfolds into. The core is
// polymorphic over note representations: it never inspects a Note's
// contents, only threads the Sharp and Offset combinators' effects
// through AddSharp and AddOctave and hands the result back to the caller
// unchanged otherwise.
//
// A back-end note type is expected to realize this interface with exactly
// one concrete implementation (PitchClass is this package's reference one)
// and to pair it with a package-level Parse function of its own — parsing
// is a constructor, not a method, so it cannot live on the interface
// itself; see Parse and ParsePitchClass below.
type Note interface {
	// AddSharp returns a copy of the note raised by n semitones. n is
	// always non-negative; repeated Sharp combinators accumulate by
	// calling AddSharp again with their own shift.
	AddSharp(n int) Note
	// AddOctave returns a copy of the note shifted by by octaves. by may
	// be negative.
	AddOctave(by int) Note
	// String renders the note for display.
	String() string
}

// Parse parses s in the form String renders (e.g. "C4", "C#4", "Ebb3")
// into the reference Note implementation. It reports false if s is not a
// valid pitch class.
func Parse(s string) (Note, bool) {
	return ParsePitchClass(s)
}

// PitchClass is a reference Note implementation: a letter name (A-G), an
// accidental in semitones (positive for sharp, negative for flat), and an
// octave number.
type PitchClass struct {
	Letter     byte
	Accidental int
	Octave     int
}

// NewPitchClass builds a natural PitchClass (no accidental) at letter and
// octave. letter must be one of 'A'-'G' (case-insensitive).
func NewPitchClass(letter byte, octave int) PitchClass {
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		panic("motif: pitch letter must be A-G")
	}
	return PitchClass{Letter: letter, Octave: octave}
}

// AddSharp returns p raised by n semitones.
func (p PitchClass) AddSharp(n int) Note {
	p.Accidental += n
	return p
}

// AddOctave returns p shifted by by octaves.
func (p PitchClass) AddOctave(by int) Note {
	p.Octave += by
	return p
}

// String renders p as e.g. "C4", "C#4", "Cbb3".
func (p PitchClass) String() string {
	var b strings.Builder
	b.WriteByte(p.Letter)
	switch {
	case p.Accidental > 0:
		b.WriteString(strings.Repeat("#", p.Accidental))
	case p.Accidental < 0:
		b.WriteString(strings.Repeat("b", -p.Accidental))
	}
	b.WriteString(strconv.Itoa(p.Octave))
	return b.String()
}

// ParsePitchClass parses s as a letter name (A-G, case-insensitive),
// followed by a run of accidentals ('#' for sharp, 'b' for flat, not
// mixed), followed by a signed octave number — the inverse of String.
// It reports false for any malformed input rather than panicking, since
// unlike NewPitchClass this is the entry point for untrusted text.
func ParsePitchClass(s string) (PitchClass, bool) {
	if len(s) == 0 {
		return PitchClass{}, false
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return PitchClass{}, false
	}

	rest := s[1:]
	i := 0
	accidental := 0
	sawSharp, sawFlat := false, false
	for i < len(rest) && (rest[i] == '#' || rest[i] == 'b') {
		if rest[i] == '#' {
			accidental++
			sawSharp = true
		} else {
			accidental--
			sawFlat = true
		}
		i++
	}
	if sawSharp && sawFlat {
		return PitchClass{}, false
	}

	octaveText := rest[i:]
	if octaveText == "" {
		return PitchClass{}, false
	}
	octave, err := strconv.Atoi(octaveText)
	if err != nil {
		return PitchClass{}, false
	}

	return PitchClass{Letter: letter, Accidental: accidental, Octave: octave}, true
}
