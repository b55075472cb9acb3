package domish

import (
	"strings"
)

// Attr is an attribute node.  Attr values are shared by pointer between the
// node and its owner's attribute list, so writing Value through either view
// is seen by both.  An Attr belongs to at most one element at a time.
type Attr struct {
	Name      string
	Namespace string
	Value     string
	Bool      bool // present without a value, e.g. <input disabled>
	owner     *Node
}

// Owner returns the element this attribute is attached to, or nil.
func (a *Attr) Owner() *Node {
	return a.owner
}

// SetValue assigns a string value, clearing the boolean flag.
func (a *Attr) SetValue(value string) {
	a.Value = value
	a.Bool = false
}

func (a *Attr) clone() *Attr {
	return &Attr{Name: a.Name, Namespace: a.Namespace, Value: a.Value, Bool: a.Bool}
}

// AttrList is an insertion-ordered name to value mapping.  Setting an
// existing name updates it in place; names are unique within a list.
type AttrList struct {
	items []*Attr
}

func NewAttrList() *AttrList {
	return &AttrList{}
}

func (l *AttrList) Len() int {
	return len(l.items)
}

// At returns the i-th attribute in insertion order.
func (l *AttrList) At(i int) *Attr {
	return l.items[i]
}

// Get returns the attribute node for name, or nil.
func (l *AttrList) Get(name string) *Attr {
	for _, a := range l.items {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Value returns the string value for name; boolean and missing attributes
// both read as "" (use Get to tell them apart).
func (l *AttrList) Value(name string) string {
	if a := l.Get(name); a != nil && !a.Bool {
		return a.Value
	}
	return ""
}

// Set assigns a string value, updating an existing attribute in place or
// appending a new one.
func (l *AttrList) Set(name, value string) *Attr {
	if a := l.Get(name); a != nil {
		a.SetValue(value)
		return a
	}
	a := &Attr{Name: name, Value: value}
	l.items = append(l.items, a)
	return a
}

// SetBool records a value-less (boolean) attribute.
func (l *AttrList) SetBool(name string) *Attr {
	if a := l.Get(name); a != nil {
		a.Value = ""
		a.Bool = true
		return a
	}
	a := &Attr{Name: name, Bool: true}
	l.items = append(l.items, a)
	return a
}

// Remove detaches and returns the attribute for name, or nil.
func (l *AttrList) Remove(name string) *Attr {
	for i, a := range l.items {
		if a.Name == name {
			l.items = append(l.items[:i], l.items[i+1:]...)
			a.owner = nil
			return a
		}
	}
	return nil
}

// Names returns the attribute names in insertion order.
func (l *AttrList) Names() []string {
	names := make([]string, len(l.items))
	for i, a := range l.items {
		names[i] = a.Name
	}
	return names
}

func (l *AttrList) clone() *AttrList {
	out := &AttrList{items: make([]*Attr, len(l.items))}
	for i, a := range l.items {
		out.items[i] = a.clone()
	}
	return out
}

func isSpace(c byte) bool {
	return c == '\t' || c == '\n' || c == '\f' || c == '\r' || c == ' '
}

// ParseAttributes parses the raw text between a tag's name and its closing
// '>' into an ordered attribute list.  The scan is permissive and never
// fails: a token without '=' is a boolean attribute, a quoted value runs to
// the matching quote (quotes stripped, entities left alone), an unquoted
// value runs to the next whitespace, a missing closing quote takes the rest
// of the input trimmed, and a trailing '=' yields an empty value.
func ParseAttributes(text string) *AttrList {
	attrs := NewAttrList()
	rest := strings.TrimSpace(text)

	for rest != "" {
		i := 0
		for i < len(rest) && rest[i] != '=' && !isSpace(rest[i]) {
			i++
		}
		name := rest[:i]
		if i >= len(rest) || isSpace(rest[i]) {
			// no '=' before the boundary: boolean attribute
			if name != "" {
				attrs.SetBool(name)
			}
			rest = strings.TrimLeft(rest[i:], "\t\n\f\r ")
			continue
		}

		// rest[i] == '='
		if name == "" {
			// stray '=': skip it and keep going
			rest = strings.TrimLeft(rest[i+1:], "\t\n\f\r ")
			continue
		}
		value := rest[i+1:]
		switch {
		case value == "":
			attrs.Set(name, "")
			rest = ""
		case value[0] == '"' || value[0] == '\'':
			quote := value[0]
			j := strings.IndexByte(value[1:], quote)
			if j < 0 {
				// missing closing quote: rest of input, trimmed
				attrs.Set(name, strings.TrimSpace(value[1:]))
				rest = ""
			} else {
				attrs.Set(name, value[1:1+j])
				rest = strings.TrimLeft(value[j+2:], "\t\n\f\r ")
			}
		default:
			j := 0
			for j < len(value) && !isSpace(value[j]) {
				j++
			}
			attrs.Set(name, strings.TrimSpace(value[:j]))
			rest = strings.TrimLeft(value[j:], "\t\n\f\r ")
		}
	}

	return attrs
}
