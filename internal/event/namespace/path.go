package namespace

import "strings"

// Path is a dot separated location in the event namespace tree.
// Examples: "Config.update", "Cookie.State.delete", "Model.Project.State.update"
type Path string

// Wildcard and separator constants for path queries.
const (
	// WildcardSingle matches exactly one segment.
	WildcardSingle = "*"

	// WildcardMulti matches zero or more segments.
	WildcardMulti = "**"

	// Separator separates path segments.
	Separator = "."

	// StateSegment is the sub-namespace holding notifications about things
	// that already happened.
	StateSegment = "State"
)

// String returns the path as a string.
func (p Path) String() string {
	return string(p)
}

// Segments returns the path split by the separator.
func (p Path) Segments() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), Separator)
}

// Depth returns the number of segments.
func (p Path) Depth() int {
	if p == "" {
		return 0
	}
	return strings.Count(string(p), Separator) + 1
}

// Parent returns the enclosing namespace, or "" for a top level segment.
//
// Example: "Cookie.State.update" -> "Cookie.State"
func (p Path) Parent() Path {
	s := string(p)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return ""
	}
	return Path(s[:idx])
}

// Child appends a segment.
func (p Path) Child(segment string) Path {
	if p == "" {
		return Path(segment)
	}
	return Path(string(p) + Separator + segment)
}

// Base returns the operation name (the last segment).
func (p Path) Base() string {
	s := string(p)
	idx := strings.LastIndex(s, Separator)
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// Domain returns the first segment.
func (p Path) Domain() string {
	s := string(p)
	idx := strings.Index(s, Separator)
	if idx < 0 {
		return s
	}
	return s[:idx]
}

// IsState reports whether the path lives under a State sub-namespace.
func (p Path) IsState() bool {
	return p.Parent().Base() == StateSegment
}

// HasPrefix reports whether p is prefix or lives below it. Only whole
// segments match: "Model.Project" is not a prefix of "Model.ProjectX.read".
func (p Path) HasPrefix(prefix Path) bool {
	if prefix == "" {
		return true
	}
	s, pre := string(p), string(prefix)
	if !strings.HasPrefix(s, pre) {
		return false
	}
	if len(s) == len(pre) {
		return true
	}
	return s[len(pre)] == '.'
}

// IsPattern reports whether the path contains wildcards.
func (p Path) IsPattern() bool {
	return strings.Contains(string(p), WildcardSingle)
}

// IsValid reports whether the path is a concrete, well formed location:
// non empty, no empty segments and no wildcards.
func (p Path) IsValid() bool {
	if p == "" || p.IsPattern() {
		return false
	}
	for _, seg := range p.Segments() {
		if seg == "" {
			return false
		}
	}
	return true
}

// Matches reports whether p matches pattern.
func (p Path) Matches(pattern Path) bool {
	return matchSegments(p.Segments(), pattern.Segments())
}

func matchSegments(path, pattern []string) bool {
	pi, qi := 0, 0
	for qi < len(pattern) {
		if pattern[qi] == WildcardMulti {
			for pi <= len(path) {
				if matchSegments(path[pi:], pattern[qi+1:]) {
					return true
				}
				pi++
			}
			return false
		}
		if pi >= len(path) {
			return false
		}
		if pattern[qi] != WildcardSingle && pattern[qi] != path[pi] {
			return false
		}
		pi++
		qi++
	}
	return pi == len(path)
}

// Join builds a path from segments.
func Join(segments ...string) Path {
	return Path(strings.Join(segments, Separator))
}
