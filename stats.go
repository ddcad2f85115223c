package gitignore

// Stats holds per-call counters a GitIgnore accumulates when
// Options.TrackStats is enabled. Counters never influence a match result;
// they exist purely for callers that want visibility into how much work a
// ruleset costs.
type Stats struct {
	// TotalCalls counts every Ignored/Match/IgnoresPath invocation.
	TotalCalls uint64
	// LiteralHits counts pattern evaluations (in the parent-directory
	// pre-pass and the final pass alike) made while the evaluated path's
	// last component has a literal-index bucket (see litindex.go), so one
	// call can add more than one — an approximate measure of how often the
	// fast path could, in principle, help.
	LiteralHits uint64
	// GlobChecks counts individual non-literal pattern evaluations
	// performed across all calls.
	GlobChecks uint64
}
