package domish

import (
	"iter"
	"regexp"
)

// Fragment is an immutable view into a source string.  It never copies or
// mutates the source; slicing a fragment yields another view into the same
// backing string.  Invariant: 0 <= start <= end <= len(source).
type Fragment struct {
	source string
	start  int
	end    int
}

func newFragment(source string, start, end int) Fragment {
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	if end < start {
		end = start
	}
	return Fragment{source: source, start: start, end: end}
}

// Text returns the covered substring.
func (f Fragment) Text() string {
	return f.source[f.start:f.end]
}

func (f Fragment) Len() int {
	return f.end - f.start
}

// Start returns the byte offset of the fragment in its source.
func (f Fragment) Start() int {
	return f.start
}

// End returns the byte offset one past the fragment in its source.
func (f Fragment) End() int {
	return f.end
}

func (f Fragment) String() string {
	return f.Text()
}

// Slice returns a sub-fragment.  Negative indices count from the fragment's
// own end; out-of-range indices are clamped.
func (f Fragment) Slice(a, b int) Fragment {
	n := f.Len()
	if a < 0 {
		a += n
	}
	if b < 0 {
		b += n
	}
	if a < 0 {
		a = 0
	}
	if b > n {
		b = n
	}
	if b < a {
		b = a
	}
	return Fragment{source: f.source, start: f.start + a, end: f.start + b}
}

// matchSpan is one step of a contiguous cover of a scanned string: either a
// regexp match (match holds the submatch index pairs, offsets absolute in the
// source) or an unmatched run (match is nil).
type matchSpan struct {
	match []int
	frag  Fragment
}

// iterMatches lazily covers text with alternating unmatched and matched
// spans.  The sequence is finite, non-restartable and owns its scan cursor,
// so concurrent scans of different inputs never interfere.  A zero-length
// match still advances the cursor by one byte to guarantee termination.
func iterMatches(re *regexp.Regexp, text string) iter.Seq[matchSpan] {
	return func(yield func(matchSpan) bool) {
		covered := 0 // coverage watermark
		scan := 0    // search start
		for scan <= len(text) {
			m := re.FindStringSubmatchIndex(text[scan:])
			if m == nil {
				break
			}
			for i, v := range m {
				if v >= 0 {
					m[i] = v + scan
				}
			}
			if m[0] > covered {
				gap := matchSpan{frag: newFragment(text, covered, m[0])}
				if !yield(gap) {
					return
				}
			}
			if !yield(matchSpan{match: m, frag: newFragment(text, m[0], m[1])}) {
				return
			}
			covered = m[1]
			if m[1] == m[0] {
				scan = m[0] + 1
			} else {
				scan = m[1]
			}
		}
		if covered < len(text) {
			yield(matchSpan{frag: newFragment(text, covered, len(text))})
		}
	}
}

// group returns the text of a named capture group, or "" when absent.
func (s matchSpan) group(re *regexp.Regexp, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || 2*i+1 >= len(s.match) || s.match[2*i] < 0 {
		return ""
	}
	return s.frag.source[s.match[2*i]:s.match[2*i+1]]
}

// groupSpan returns the absolute byte range of a named capture group.
func (s matchSpan) groupSpan(re *regexp.Regexp, name string) (int, int, bool) {
	i := re.SubexpIndex(name)
	if i < 0 || 2*i+1 >= len(s.match) || s.match[2*i] < 0 {
		return 0, 0, false
	}
	return s.match[2*i], s.match[2*i+1], true
}
