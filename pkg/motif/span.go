package motif

// SourceID identifies the source text a Span's offsets are measured
// against (for example a file name, or a single constant for a
// hand-built test fixture). Spans combined via Add must share a
// SourceID.
type SourceID string

// Span is a half-open byte-offset range into a single source text,
// carried through the implicit and checked ASTs purely for diagnostics —
// no component in this package inspects a Span's value, only combines it.
type Span struct {
	Source SourceID
	Start  int
	End    int
}

// NewSpan builds a Span over [start, end) in source.
func NewSpan(source SourceID, start, end int) Span {
	return Span{Source: source, Start: start, End: end}
}

// Add returns the smallest Span covering both s and other. It panics if
// the two spans come from different sources.
func (s Span) Add(other Span) Span {
	if s.Source != other.Source {
		panic("motif: cannot combine spans from different sources")
	}
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Source: s.Source, Start: start, End: end}
}

// CombineSpans folds Add over spans, which must be non-empty and share a
// SourceID.
func CombineSpans(spans []Span) Span {
	if len(spans) == 0 {
		panic("motif: CombineSpans requires at least one span")
	}
	result := spans[0]
	for _, s := range spans[1:] {
		result = result.Add(s)
	}
	return result
}
