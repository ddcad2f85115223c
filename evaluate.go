package gitignore

import "strings"

// maxPathComponents bounds how many components a path may split into. A
// path beyond this is rejected as not-ignored rather than evaluated. It is
// a resource cap, not a correctness property.
const maxPathComponents = 64

// splitPath validates and normalizes a candidate path. It returns the
// path's components, the effective isDir flag (folding in a trailing
// slash), and whether the path was valid at all.
func splitPath(path string, isDir bool) (comps []string, effectiveDir bool, ok bool) {
	if path == "" {
		return nil, false, false
	}

	if strings.HasPrefix(path, "/") {
		return nil, false, false
	}

	if len(path) >= 2 && path[1] == ':' {
		return nil, false, false
	}

	if path == "." || path == ".." || strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return nil, false, false
	}

	effectiveDir = isDir
	if strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
		effectiveDir = true
	}

	if path == "" {
		return nil, false, false
	}

	raw := strings.Split(path, "/")
	comps = raw[:0]

	for _, c := range raw {
		if c != "" {
			comps = append(comps, c)
		}
	}

	if len(comps) == 0 {
		return nil, false, false
	}

	if len(comps) > maxPathComponents {
		return nil, false, false
	}

	return comps, effectiveDir, true
}

// decision is the outcome of one forward last-match-wins scan: whether the
// scan ended ignored, and (for diagnostics) the deciding pattern's raw text.
type decision struct {
	ignored bool
	pattern string
}

// evaluateAll runs every compiled pattern against comps in insertion order,
// tracking a running ignored state that each matching pattern flips
// according to its Negated flag. Last match wins; the same scan is used for
// both the parent-exclusion pre-pass and the final evaluation.
func (g *GitIgnore) evaluateAll(comps []string, isDir bool) decision {
	var d decision

	for i := range g.patterns {
		cp := &g.patterns[i]
		if cp.MinDepth > len(comps) {
			continue
		}

		if g.opts.TrackStats {
			if g.litIndex.hasHint(lastComponent(comps)) {
				g.stats.LiteralHits++
			}

			if !cp.IsLiteral {
				g.stats.GlobChecks++
			}
		}

		if !matchPattern(cp, g.arena, comps, isDir, g.opts.CaseFold) {
			continue
		}

		d.ignored = !cp.Flags.Negated
		d.pattern = cp.Raw
	}

	return d
}

func lastComponent(comps []string) string {
	if len(comps) == 0 {
		return ""
	}

	return comps[len(comps)-1]
}

// parentExcluded scans every proper prefix of comps, evaluated as a
// directory, and reports the first one whose last-match-wins outcome is
// ignored — along with the pattern that decided it, for Match's
// diagnostics. A path under an ignored directory is ignored even if a
// later pattern would otherwise re-include the path itself.
func (g *GitIgnore) parentExcluded(comps []string) (bool, string) {
	for k := 1; k < len(comps); k++ {
		d := g.evaluateAll(comps[:k], true)
		if d.ignored {
			return true, d.pattern
		}
	}

	return false, ""
}
