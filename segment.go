package gitignore

// arenaSegment is the arena-resident form of a Segment: either a globstar
// marker, or a range [elemStart, elemStart+elemCount) into the owning
// arena's element vector. Segments never contain '/'.
type arenaSegment struct {
	globstar  bool
	elemStart int
	elemCount int
}

func (s *arenaSegment) elements(a *arena) []Element {
	return a.elements[s.elemStart : s.elemStart+s.elemCount]
}

// PatternFlags are the three booleans attached to every compiled pattern.
type PatternFlags struct {
	Negated  bool // leading '!'
	DirOnly  bool // trailing '/'
	Anchored bool // leading '/', or any other '/' unless the pattern starts with "**"
}

// CompiledPattern is the compiled form of one non-skipped gitignore line.
// Its segment data lives in the owning GitIgnore's arena; CompiledPattern
// itself only stores the offset/length range into it.
type CompiledPattern struct {
	Raw             string
	Flags           PatternFlags
	IsLiteral       bool
	LiteralBasename string
	MinDepth        int

	segStart int
	segCount int
}

func (cp *CompiledPattern) segments(a *arena) []arenaSegment {
	return a.segments[cp.segStart : cp.segStart+cp.segCount]
}
