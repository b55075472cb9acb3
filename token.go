package domish

import (
	"iter"
	"regexp"
)

// MarkerKind classifies one parse event.
type MarkerKind int

const (
	invalidMarker MarkerKind = iota
	// ContentMarker covers a run of text between tags.
	ContentMarker
	// StartMarker covers an opening tag.
	StartMarker
	// EndMarker covers a closing tag.
	EndMarker
	// InlineMarker covers a self-closing tag.
	InlineMarker
)

func (kind MarkerKind) String() string {
	switch kind {
	case ContentMarker:
		return "ContentMarker"
	case StartMarker:
		return "StartMarker"
	case EndMarker:
		return "EndMarker"
	case InlineMarker:
		return "InlineMarker"
	default:
		return "invalidMarker"
	}
}

// Marker is a discrete parse event paired with the source fragment it covers.
// The markers produced for one input cover it contiguously.
type Marker struct {
	Kind      MarkerKind
	Frag      Fragment
	Namespace string    // tag namespace prefix, "" when unprefixed
	Name      string    // tag local name; "!DOCTYPE", "!COMMENT", "!CDATA" or "!PI" for specials
	Attrs     *AttrList // nil for Content and End markers
}

// The combined scanning grammar.  Alternatives are tried in priority order:
// DOCTYPE, comment, CDATA, processing instruction, then a generic tag whose
// kind is decided by the close/inline captures.  The special constructs
// tolerate a missing terminator by running to end of input.
var reMarkup = regexp.MustCompile(`(?is)` +
	`<!DOCTYPE(?P<doctype>[^>]*)(?:>|$)` +
	`|<!--(?P<comment>.*?)(?:-->|$)` +
	`|<!\[CDATA\[(?P<cdata>.*?)(?:\]\]>|$)` +
	`|<\?(?P<pi>.*?)(?:\?>|$)` +
	`|<(?P<close>/)?(?:(?P<prefix>[A-Za-z_][\w.-]*):)?(?P<name>[A-Za-z_][\w.-]*)(?P<attrs>(?:"[^"]*"|'[^']*'|[^>])*?)\s*(?P<inline>/)?>`)

// Tokenizer scans markup left to right, producing an ordered sequence of
// markers.  The scan cursor lives in the instance, never in package state,
// so concurrent parses of different inputs are independent.
type Tokenizer struct {
	text  string
	pull  func() (matchSpan, bool)
	stop  func()
	queue []Marker // synthesized triples pending delivery
	done  bool
}

func newTokenizer(text string) *Tokenizer {
	pull, stop := iter.Pull(iterMatches(reMarkup, text))
	return &Tokenizer{text: text, pull: pull, stop: stop}
}

// Next returns the next marker, or ok == false once the input is exhausted.
func (t *Tokenizer) Next() (Marker, bool) {
	if len(t.queue) > 0 {
		m := t.queue[0]
		t.queue = t.queue[1:]
		return m, true
	}
	if t.done {
		return Marker{}, false
	}
	span, ok := t.pull()
	if !ok {
		t.done = true
		t.stop()
		return Marker{}, false
	}
	if span.match == nil {
		return Marker{Kind: ContentMarker, Frag: span.frag}, true
	}
	return t.tagMarker(span), true
}

// Markers exposes the remaining markers as a sequence.
func (t *Tokenizer) Markers() iter.Seq[Marker] {
	return func(yield func(Marker) bool) {
		for {
			m, ok := t.Next()
			if !ok || !yield(m) {
				return
			}
		}
	}
}

// tagMarker converts one grammar match into a marker, queueing the trailing
// pair of a synthesized special triple.
func (t *Tokenizer) tagMarker(span matchSpan) Marker {
	for _, special := range [...]struct{ group, name string }{
		{"doctype", "!DOCTYPE"},
		{"comment", "!COMMENT"},
		{"cdata", "!CDATA"},
		{"pi", "!PI"},
	} {
		if s, e, ok := span.groupSpan(reMarkup, special.group); ok {
			return t.synthesize(span, special.name, s, e)
		}
	}

	kind := StartMarker
	var attrs *AttrList
	if span.group(reMarkup, "close") != "" {
		kind = EndMarker
	} else {
		if span.group(reMarkup, "inline") != "" {
			kind = InlineMarker
		}
		attrs = ParseAttributes(span.group(reMarkup, "attrs"))
	}
	return Marker{
		Kind:      kind,
		Frag:      span.frag,
		Namespace: span.group(reMarkup, "prefix"),
		Name:      span.group(reMarkup, "name"),
		Attrs:     attrs,
	}
}

// synthesize turns a DOCTYPE/comment/CDATA match into a Start/Content/End
// triple.  The Start and End fragments carve out exactly the delimiters and
// the Content fragment is the strict interior; an unterminated construct gets
// an empty End fragment at end of input.
func (t *Tokenizer) synthesize(span matchSpan, name string, bodyStart, bodyEnd int) Marker {
	t.queue = append(t.queue,
		Marker{Kind: ContentMarker, Frag: newFragment(t.text, bodyStart, bodyEnd), Name: name},
		Marker{Kind: EndMarker, Frag: newFragment(t.text, bodyEnd, span.frag.End()), Name: name},
	)
	return Marker{
		Kind: StartMarker,
		Frag: newFragment(t.text, span.frag.Start(), bodyStart),
		Name: name,
	}
}
