package domish

import (
	"strings"
)

// build consumes the tokenizer's marker stream and grows the document tree.
// The stack of open containers starts at the document; end markers only pop
// while something besides the root is open, so excess closers are ignored,
// and anything still open at end of input is implicitly closed.
func build(doc *Document, tz *Tokenizer) {
	stk := make(stack[*Node], 0, 16)
	stk.Push(&doc.Node)

	for {
		m, ok := tz.Next()
		if !ok {
			break
		}
		current, _ := stk.Peek()

		switch m.Kind {
		case ContentMarker:
			text := expand(m.Frag.Text())
			if strings.TrimSpace(text) == "" {
				continue
			}
			// original spacing kept; only the blankness test trims
			current.AppendChild(doc.CreateTextNode(text))

		case StartMarker:
			if strings.HasPrefix(m.Name, "!") {
				// DOCTYPE, comment and CDATA all collapse into a single
				// comment node holding the raw interior text; processing
				// instructions (the XML prolog included) are dropped
				body, _ := tz.Next()
				tz.Next()
				if m.Name != "!PI" {
					current.AppendChild(doc.CreateComment(body.Frag.Text()))
				}
				continue
			}
			el := elementFromMarker(doc, m)
			current.AppendChild(el)
			stk.Push(el)

		case EndMarker:
			if stk.Len() > 1 {
				stk.Pop()
			}

		case InlineMarker:
			// self-closing: appended, never pushed, never gets children
			current.AppendChild(elementFromMarker(doc, m))
		}
	}
}

func elementFromMarker(doc *Document, m Marker) *Node {
	el := doc.CreateElementNS(m.Namespace, m.Name)
	if m.Attrs == nil {
		return el
	}
	for i := 0; i < m.Attrs.Len(); i++ {
		a := m.Attrs.At(i)
		// values are entity-decoded here, not in ParseAttributes; boolean
		// attributes surface as empty string values
		el.SetAttribute(a.Name, expand(a.Value))
	}
	return el
}
