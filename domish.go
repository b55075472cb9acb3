// Package domish parses HTML/XML-like markup into a mutable, DOM-like node
// tree and serializes trees back to markup or plain text.
//
// Parsing is permissive by design: malformed input never fails, it degrades
// to the most reasonable partial structure.  Unmatched closing tags are
// ignored, unclosed elements close implicitly at end of input, malformed
// attribute text gets a best-effort reading and unknown entities stay
// verbatim.  Errors are reserved for misuse of the mutation API.
//
// Trees are plain mutable data.  Parsing different inputs concurrently is
// safe; mutating one tree from several goroutines is not and must be
// serialized by the caller.
package domish

// Parse builds a fresh document from markup.  It never fails.
func Parse(text string) *Document {
	doc := NewDocument()
	build(doc, newTokenizer(text))
	return doc
}
