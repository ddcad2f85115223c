// Package gitignore implements Git-compatible .gitignore pattern matching.
package gitignore

import "strings"

// Options defines matcher-wide behavior for a GitIgnore.
type Options struct {
	// CaseFold enables ASCII-only case-insensitive matching. New sets it to
	// true; NewOptions uses the value given, so a zero Options leaves it off.
	CaseFold bool
	// TrackStats enables the per-call counters exposed by Stats. Leaving it
	// false avoids the bookkeeping cost entirely.
	TrackStats bool
}

// GitIgnore holds a compiled, ordered set of gitignore patterns. Construct
// with New or NewOptions. Matching semantics follow Git's .gitignore rules:
// last match wins, with parent-directory exclusion layered on top.
//
// Once construction and all Add/AddOwned/Append calls have completed, a
// GitIgnore is immutable and safe for concurrent Ignored/Match calls
// without external synchronization. Mixing mutation with concurrent
// queries is the caller's responsibility to serialize.
type GitIgnore struct {
	patterns []CompiledPattern
	arena    *arena
	litIndex literalIndex
	opts     Options
	stats    Stats
	errs     []CompileError
}

// CompileError records one malformed gitignore line skipped during Add,
// AddOwned, or Append. It is a diagnostic only: the line was still safely
// skipped and the rest of the ruleset compiled normally.
type CompileError struct {
	Pattern string // the raw line text that was skipped
	Reason  string
}

// New compiles gitignore-style lines with case folding enabled, the
// default most callers want.
func New(lines ...string) *GitIgnore {
	return NewOptions(Options{CaseFold: true}, lines...)
}

// NewOptions compiles gitignore-style lines with explicit options.
func NewOptions(opts Options, lines ...string) *GitIgnore {
	g := &GitIgnore{
		arena: &arena{},
		opts:  opts,
	}

	g.Append(lines...)

	return g
}

// Add compiles text (one or more lines separated by '\n', each optionally
// ending in '\r') and appends the resulting patterns, preserving
// last-match-wins order. Malformed lines are silently skipped. The pattern
// text is retained by reference (safe, since Go strings are immutable), so
// a retained line keeps the string it was sliced from reachable. Use
// AddOwned to avoid that.
func (g *GitIgnore) Add(text string) {
	for _, line := range strings.Split(text, "\n") {
		g.addLine(strings.TrimSuffix(line, "\r"))
	}
}

// AddOwned behaves like Add but clones each retained pattern string first,
// so the retained patterns do not keep the larger string text was sliced
// from reachable.
func (g *GitIgnore) AddOwned(text string) {
	for _, line := range strings.Split(text, "\n") {
		g.addLine(strings.Clone(strings.TrimSuffix(line, "\r")))
	}
}

// Append compiles and appends each line in lines, preserving
// last-match-wins order. Equivalent to calling Add once per line.
func (g *GitIgnore) Append(lines ...string) {
	for _, line := range lines {
		g.Add(line)
	}
}

func (g *GitIgnore) addLine(line string) {
	cp, ok, reason := compilePattern(line, g.arena)
	if !ok {
		if reason != "" {
			g.errs = append(g.errs, CompileError{Pattern: line, Reason: reason})
		}

		return
	}

	idx := len(g.patterns)
	g.patterns = append(g.patterns, cp)

	if cp.IsLiteral {
		g.litIndex.add(cp.LiteralBasename, idx)
	}
}

// Errors returns the diagnostics accumulated for malformed lines skipped
// so far. It never includes ordinary blank lines or comments, only lines
// that failed to compile for a specific, nameable reason.
func (g *GitIgnore) Errors() []CompileError {
	return g.errs
}

// Patterns returns the original pattern text in input order, one entry per
// successfully compiled line.
func (g *GitIgnore) Patterns() []string {
	out := make([]string, len(g.patterns))
	for i, cp := range g.patterns {
		out[i] = cp.Raw
	}

	return out
}

// Match is a detailed result mirroring `git check-ignore -v` semantics.
// Pattern holds the deciding pattern's raw text (or the ancestor's pattern,
// when parent exclusion decides the outcome), and is empty when nothing
// matched.
type Match struct {
	Ignored bool
	Pattern string
}

// Match returns a detailed match result, including the deciding pattern.
func (g *GitIgnore) Match(pathname string, isDir bool) Match {
	if g.opts.TrackStats {
		g.stats.TotalCalls++
	}

	comps, effectiveDir, ok := splitPath(pathname, isDir)
	if !ok {
		return Match{}
	}

	if parentExcluded, pattern := g.parentExcluded(comps); parentExcluded {
		return Match{Ignored: true, Pattern: pattern}
	}

	d := g.evaluateAll(comps, effectiveDir)

	return Match{Ignored: d.ignored, Pattern: d.pattern}
}

// Ignored reports whether a relative path should be ignored. The caller
// must indicate whether the path is a directory.
func (g *GitIgnore) Ignored(pathname string, isDir bool) bool {
	return g.Match(pathname, isDir).Ignored
}

// IgnoresPath is a convenience for callers who encode directory-ness as a
// trailing slash in pathname rather than passing isDir separately.
func (g *GitIgnore) IgnoresPath(pathname string) bool {
	return g.Ignored(pathname, false)
}

// Stats returns the current per-call counters. It is a snapshot: the
// returned value does not change with the GitIgnore's subsequent calls.
func (g *GitIgnore) Stats() Stats {
	return g.stats
}
