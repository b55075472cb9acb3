package domish

import (
	"regexp"
	"strings"
)

// A selector string is a whitespace-separated list of descendant steps; each
// step is an AND-combined conjunction of simple selectors: a tag name,
// ".class" tokens, "#id" and "[attr]" presence tests.  Attribute value
// operators ([a~=b] and friends) are recognized by the grammar but matching
// stays presence-only.

type simpleKind int

const (
	matchTag simpleKind = iota
	matchClass
	matchID
	matchAttr
)

type simpleSelector struct {
	kind  simpleKind
	value string
}

type selectorStep struct {
	simples []simpleSelector
}

var reSimple = regexp.MustCompile(
	`([.#]?[\w-]+)` +
		`|\[\s*([\w-]+)\s*(?:[~|^$*]?=\s*(?:"[^"]*"|'[^']*'|[^\]]*))?\]`)

// compileSelector parses a selector string into descendant steps.  Unparsable
// pieces are dropped rather than reported: queries are permissive like the
// rest of the parsing surface.
func compileSelector(selector string) []selectorStep {
	steps := make([]selectorStep, 0, 2)
	for _, raw := range strings.Fields(selector) {
		var step selectorStep
		for _, m := range reSimple.FindAllStringSubmatch(raw, -1) {
			switch {
			case m[2] != "":
				step.simples = append(step.simples, simpleSelector{kind: matchAttr, value: m[2]})
			case strings.HasPrefix(m[1], "."):
				step.simples = append(step.simples, simpleSelector{kind: matchClass, value: m[1][1:]})
			case strings.HasPrefix(m[1], "#"):
				step.simples = append(step.simples, simpleSelector{kind: matchID, value: m[1][1:]})
			case m[1] != "":
				step.simples = append(step.simples, simpleSelector{kind: matchTag, value: m[1]})
			}
		}
		if len(step.simples) > 0 {
			steps = append(steps, step)
		}
	}
	return steps
}

func (s selectorStep) matches(n *Node) bool {
	if n.Kind != ElementNode {
		return false
	}
	for _, simple := range s.simples {
		switch simple.kind {
		case matchTag:
			if n.Name != simple.value {
				return false
			}
		case matchClass:
			if !n.ClassList().Contains(simple.value) {
				return false
			}
		case matchID:
			if n.GetAttribute("id") != simple.value {
				return false
			}
		case matchAttr:
			if !n.HasAttribute(simple.value) {
				return false
			}
		}
	}
	return true
}

// findAll collects the elements under root (root excluded) matching step, in
// document order.
func (s selectorStep) findAll(root *Node) []*Node {
	var out []*Node
	w := NewTreeWalker(root, ShowElement)
	for el := w.Next(); el != nil; el = w.Next() {
		if s.matches(el) {
			out = append(out, el)
		}
	}
	return out
}

// QuerySelectorAll returns all descendant elements matching the selector.
// Each whitespace-separated step re-walks the subtrees of the previous step's
// matches; this sequential descendant scoping is a deliberate simplification
// of CSS combinator semantics.
func (n *Node) QuerySelectorAll(selector string) []*Node {
	steps := compileSelector(selector)
	if len(steps) == 0 {
		return nil
	}
	scopes := []*Node{n}
	var matches []*Node
	for _, step := range steps {
		matches = matches[:0]
		seen := make(map[*Node]bool)
		for _, scope := range scopes {
			for _, hit := range step.findAll(scope) {
				if !seen[hit] {
					seen[hit] = true
					matches = append(matches, hit)
				}
			}
		}
		scopes = append([]*Node(nil), matches...)
	}
	return append([]*Node(nil), matches...)
}

// QuerySelector returns the first match of QuerySelectorAll, or nil.
func (n *Node) QuerySelector(selector string) *Node {
	if all := n.QuerySelectorAll(selector); len(all) > 0 {
		return all[0]
	}
	return nil
}

// Matches reports whether the node itself satisfies every step-conjunction of
// a single-step selector.
func (n *Node) Matches(selector string) bool {
	for _, step := range compileSelector(selector) {
		if !step.matches(n) {
			return false
		}
	}
	return true
}

// GetElementsByTagName returns all descendant elements with the given local
// name.
func (n *Node) GetElementsByTagName(name string) []*Node {
	var out []*Node
	w := NewTreeWalker(n, ShowElement)
	for el := w.Next(); el != nil; el = w.Next() {
		if el.Name == name {
			out = append(out, el)
		}
	}
	return out
}

// GetElementsByClassName returns all descendant elements carrying the class
// token.
func (n *Node) GetElementsByClassName(class string) []*Node {
	var out []*Node
	w := NewTreeWalker(n, ShowElement)
	for el := w.Next(); el != nil; el = w.Next() {
		if el.ClassList().Contains(class) {
			out = append(out, el)
		}
	}
	return out
}
