package domish

import (
	"strings"
)

// Attribute access.  These operate on ElementNodes; on any other kind they
// read as empty and write as no-ops.

// Attributes returns the element's default-namespace attribute list, creating
// it on first use.
func (n *Node) Attributes() *AttrList {
	if n.attrs == nil {
		n.attrs = NewAttrList()
	}
	return n.attrs
}

// GetAttribute returns the attribute value, "" when missing or boolean.
func (n *Node) GetAttribute(name string) string {
	if n.Kind != ElementNode || n.attrs == nil {
		return ""
	}
	return n.attrs.Value(name)
}

// HasAttribute reports attribute presence, boolean attributes included.
func (n *Node) HasAttribute(name string) bool {
	return n.Kind == ElementNode && n.attrs != nil && n.attrs.Get(name) != nil
}

// SetAttribute assigns a default-namespace attribute.
func (n *Node) SetAttribute(name, value string) {
	if n.Kind != ElementNode {
		return
	}
	a := n.Attributes().Set(name, value)
	a.owner = n
}

// RemoveAttribute drops a default-namespace attribute if present.
func (n *Node) RemoveAttribute(name string) {
	if n.Kind != ElementNode || n.attrs == nil {
		return
	}
	n.attrs.Remove(name)
}

// GetAttributeNode returns the attribute node for name, or nil.  The node is
// two-way synchronized with the element: writing its value is visible through
// GetAttribute and vice versa.
func (n *Node) GetAttributeNode(name string) *Attr {
	if n.Kind != ElementNode || n.attrs == nil {
		return nil
	}
	return n.attrs.Get(name)
}

// SetAttributeNode attaches an attribute node, replacing any attribute of the
// same name.  An attribute still owned by a different element is rejected
// with ErrAttributeInUse and nothing changes.
func (n *Node) SetAttributeNode(a *Attr) (*Attr, error) {
	if n.Kind != ElementNode {
		return nil, nil
	}
	if a.owner != nil && a.owner != n {
		return nil, ErrAttributeInUse
	}
	replaced := n.Attributes().Remove(a.Name)
	a.owner = n
	n.attrs.items = append(n.attrs.items, a)
	return replaced, nil
}

// GetAttributeNS returns an attribute value in the given namespace URI.
func (n *Node) GetAttributeNS(uri, name string) string {
	if n.Kind != ElementNode || n.nsAttrs == nil {
		return ""
	}
	if list := n.nsAttrs[uri]; list != nil {
		return list.Value(name)
	}
	return ""
}

// SetAttributeNS assigns an attribute in the given namespace URI.
func (n *Node) SetAttributeNS(uri, name, value string) {
	if n.Kind != ElementNode {
		return
	}
	if n.nsAttrs == nil {
		n.nsAttrs = make(map[string]*AttrList)
	}
	list := n.nsAttrs[uri]
	if list == nil {
		list = NewAttrList()
		n.nsAttrs[uri] = list
	}
	a := list.Set(name, value)
	a.Namespace = uri
	a.owner = n
}

// RemoveAttributeNS drops an attribute in the given namespace URI.
func (n *Node) RemoveAttributeNS(uri, name string) {
	if n.Kind != ElementNode || n.nsAttrs == nil {
		return
	}
	if list := n.nsAttrs[uri]; list != nil {
		list.Remove(name)
	}
}

// GetDataAttribute reads the "data-" prefixed attribute for name.  This is
// the explicit accessor for dataset-style lookups.
func (n *Node) GetDataAttribute(name string) string {
	return n.GetAttribute("data-" + name)
}

// SetDataAttribute writes the "data-" prefixed attribute for name.
func (n *Node) SetDataAttribute(name, value string) {
	n.SetAttribute("data-"+name, value)
}

// ID is shorthand for GetAttribute("id").
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// ClassList is a live token view over an element's class attribute.  Every
// operation reads and writes the attribute itself.
type ClassList struct {
	owner *Node
}

func (n *Node) ClassList() ClassList {
	return ClassList{owner: n}
}

// Tokens returns the whitespace-separated class tokens in order.
func (c ClassList) Tokens() []string {
	return strings.Fields(c.owner.GetAttribute("class"))
}

func (c ClassList) Contains(token string) bool {
	for _, t := range c.Tokens() {
		if t == token {
			return true
		}
	}
	return false
}

func (c ClassList) Add(tokens ...string) {
	current := c.Tokens()
	for _, token := range tokens {
		if token == "" || c.Contains(token) {
			continue
		}
		current = append(current, token)
	}
	c.owner.SetAttribute("class", strings.Join(current, " "))
}

func (c ClassList) Remove(tokens ...string) {
	kept := make([]string, 0, 4)
	for _, t := range c.Tokens() {
		drop := false
		for _, token := range tokens {
			if t == token {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, t)
		}
	}
	c.owner.SetAttribute("class", strings.Join(kept, " "))
}

// Toggle flips token membership and reports whether it is now present.
func (c ClassList) Toggle(token string) bool {
	if c.Contains(token) {
		c.Remove(token)
		return false
	}
	c.Add(token)
	return true
}

// Style returns the element's live inline-style dictionary.  Entries here win
// over the parsed style attribute at serialization time.
func (n *Node) Style() map[string]string {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	return n.style
}

// StyleSheet wraps the text of a <style> element.
type StyleSheet struct {
	owner *Node
}

// Text returns the sheet source, i.e. the element's text content.
func (s *StyleSheet) Text() string {
	return s.owner.TextContent()
}

// Sheet returns the element's style sheet.  Non-nil only when the element's
// name is "style".
func (n *Node) Sheet() *StyleSheet {
	if n.Kind != ElementNode || n.Name != "style" {
		return nil
	}
	if n.sheet == nil {
		n.sheet = &StyleSheet{owner: n}
	}
	return n.sheet
}

// AddEventListener records a handler for event.  Handlers are only stored;
// cloning a node duplicates the handler sets while sharing the handlers
// themselves by reference.
func (n *Node) AddEventListener(event string, handler EventHandler) {
	if n.handlers == nil {
		n.handlers = make(map[string][]EventHandler)
	}
	n.handlers[event] = append(n.handlers[event], handler)
}

// Listeners returns the handler set for event.
func (n *Node) Listeners(event string) []EventHandler {
	return n.handlers[event]
}

// RemoveEventListeners drops every handler for event.
func (n *Node) RemoveEventListeners(event string) {
	delete(n.handlers, event)
}
