package domish

import (
	"strings"
)

// Kind of node (e.g. element node, text node, etc.).
type NodeKind int

const (
	InvalidNode  NodeKind = iota // Signifies an erroneous or zero node
	DocumentNode                 // Tree root for a whole document
	FragmentNode                 // Parentless container whose children splice on insertion
	ElementNode                  // Element
	AttributeNode                // Attribute viewed as a node
	TextNode                     // Content between start and end tags
	CommentNode                  // Comment (also normalized DOCTYPE and CDATA)
)

func (kind NodeKind) String() string {
	switch kind {
	case DocumentNode:
		return "DocumentNode"
	case FragmentNode:
		return "FragmentNode"
	case ElementNode:
		return "ElementNode"
	case AttributeNode:
		return "AttributeNode"
	case TextNode:
		return "TextNode"
	case CommentNode:
		return "CommentNode"
	default:
		return "InvalidNode"
	}
}

// EventHandler is an opaque callback attached to a node.  The tree only
// stores handlers; dispatching is up to the embedding application.
type EventHandler func(target *Node, event string)

// Node is one vertex of the document tree, tagged by Kind.  Children are
// owned exclusively by their parent; the parent pointer is a non-owning back
// reference.  A tree is plain mutable data: single-owner mutation is safe,
// concurrent mutation must be serialized by the caller.
type Node struct {
	// Kind tags which variant this node is.
	Kind NodeKind

	// Name is the local tag name.  Only applicable to ElementNode.
	Name string

	// Namespace is the tag prefix (e.g. "svg").  Only applicable to
	// ElementNode; empty when unprefixed.
	Namespace string

	// Data is the payload of TextNode and CommentNode.
	Data string

	attrs    *AttrList            // default-namespace attributes, ordered
	nsAttrs  map[string]*AttrList // per-namespace-URI attributes, ordered
	style    map[string]string    // inline style dictionary
	sheet    *StyleSheet          // only for elements named "style"
	handlers map[string][]EventHandler

	children []*Node
	parent   *Node
	owner    *Document
}

// NodeName follows the DOM convention: the qualified tag name for elements,
// a "#"-prefixed label otherwise.
func (n *Node) NodeName() string {
	switch n.Kind {
	case DocumentNode:
		return "#document"
	case FragmentNode:
		return "#document-fragment"
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	case ElementNode:
		return n.QualifiedName()
	default:
		return "#invalid"
	}
}

// QualifiedName returns "ns:name" for namespaced elements, "name" otherwise.
func (n *Node) QualifiedName() string {
	if n.Namespace != "" {
		return n.Namespace + ":" + n.Name
	}
	return n.Name
}

// Owner returns the document whose factories created this node, or nil.
func (n *Node) Owner() *Document {
	return n.owner
}

func (n *Node) Parent() *Node {
	return n.parent
}

// ChildNodes returns the children in order.  The returned slice is a copy;
// mutating it does not affect the tree.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the i-th child, or nil when out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) FirstChild() *Node {
	return n.ChildAt(0)
}

func (n *Node) LastChild() *Node {
	return n.ChildAt(len(n.children) - 1)
}

// indexOf locates child by identity, -1 when absent.
func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	return n.parent.ChildAt(i + 1)
}

func (n *Node) PreviousSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	return n.parent.ChildAt(i - 1)
}

// detach breaks the parent link, keeping the single-parent invariant for the
// insertion that follows.
func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	if i := n.parent.indexOf(n); i >= 0 {
		n.parent.children = append(n.parent.children[:i], n.parent.children[i+1:]...)
	}
	n.parent = nil
}

// AppendChild adds child as the last child, detaching it from any previous
// parent first.  Appending a FragmentNode splices its children in place and
// leaves the fragment empty.  Appending a node that contains the target
// (itself included) would create a cycle and is a no-op.  Returns child.
func (n *Node) AppendChild(child *Node) *Node {
	if child.Contains(n) {
		return child
	}
	if child.Kind == FragmentNode {
		for _, c := range child.ChildNodes() {
			n.AppendChild(c)
		}
		return child
	}
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// InsertBefore inserts child before ref, which must be a current child of n;
// a nil ref appends.  When ref is not found the mutation fails atomically
// with ErrReferenceNotFound; when child contains n (the tree would go
// cyclic) it fails with ErrHierarchy.
func (n *Node) InsertBefore(child, ref *Node) (*Node, error) {
	if child.Contains(n) {
		return nil, ErrHierarchy
	}
	if ref == nil {
		return n.AppendChild(child), nil
	}
	if n.indexOf(ref) < 0 {
		return nil, ErrReferenceNotFound
	}
	if child == ref {
		return child, nil
	}
	if child.Kind == FragmentNode {
		for _, c := range child.ChildNodes() {
			if _, err := n.InsertBefore(c, ref); err != nil {
				return nil, err
			}
		}
		return child, nil
	}
	child.detach()
	// re-resolve: detaching child may have shifted ref's position
	i := n.indexOf(ref)
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child, nil
}

// RemoveChild breaks the parent link of child, which must be a current child
// of n.  The node itself is left intact and can be re-inserted.
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if n.indexOf(child) < 0 {
		return nil, ErrReferenceNotFound
	}
	child.detach()
	return child, nil
}

// ReplaceChild puts newChild where oldChild currently is and detaches
// oldChild.  Fails with ErrReferenceNotFound when oldChild is not a child.
func (n *Node) ReplaceChild(newChild, oldChild *Node) (*Node, error) {
	if n.indexOf(oldChild) < 0 {
		return nil, ErrReferenceNotFound
	}
	if newChild == oldChild {
		return oldChild, nil
	}
	if _, err := n.InsertBefore(newChild, oldChild); err != nil {
		return nil, err
	}
	oldChild.detach()
	return oldChild, nil
}

// CloneNode copies the node.  A shallow clone duplicates identity fields and
// re-creates every attribute bound to the clone (values copied, not shared);
// handler sets are duplicated while the handlers themselves stay shared by
// reference.  A deep clone recurses into children.
func (n *Node) CloneNode(deep bool) *Node {
	clone := n.cloneShallow()
	if deep {
		for _, c := range n.children {
			clone.AppendChild(c.CloneNode(true))
		}
	}
	return clone
}

// cloneShallow dispatches on the kind tag, each variant copying its own
// payload.
func (n *Node) cloneShallow() *Node {
	clone := &Node{Kind: n.Kind, owner: n.owner}
	switch n.Kind {
	case ElementNode:
		clone.Name = n.Name
		clone.Namespace = n.Namespace
		if n.attrs != nil {
			clone.attrs = n.attrs.clone()
			for _, a := range clone.attrs.items {
				a.owner = clone
			}
		}
		if n.nsAttrs != nil {
			clone.nsAttrs = make(map[string]*AttrList, len(n.nsAttrs))
			for uri, list := range n.nsAttrs {
				cc := list.clone()
				for _, a := range cc.items {
					a.owner = clone
				}
				clone.nsAttrs[uri] = cc
			}
		}
		if n.style != nil {
			clone.style = make(map[string]string, len(n.style))
			for k, v := range n.style {
				clone.style[k] = v
			}
		}
		if n.handlers != nil {
			clone.handlers = make(map[string][]EventHandler, len(n.handlers))
			for event, set := range n.handlers {
				clone.handlers[event] = append([]EventHandler(nil), set...)
			}
		}
		if n.owner != nil {
			n.owner.register(clone)
		}
	case TextNode, CommentNode:
		clone.Data = n.Data
	}
	return clone
}

// TextContent returns the concatenated contents of all descendant text
// nodes, this node included when it is a text node.
func (n *Node) TextContent() string {
	contents := make([]string, 0, len(n.children))

	stk := make(stack[*Node], 0, 16)
	stk.Push(n)

	for node, ok := stk.Pop(); ok; node, ok = stk.Pop() {
		if node.Kind == TextNode {
			contents = append(contents, node.Data)
		}

		// reverse iteration so that first child is pushed last
		for i := len(node.children) - 1; i >= 0; i-- {
			stk.Push(node.children[i])
		}
	}

	return strings.Join(contents, "")
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(text string) {
	for _, c := range n.ChildNodes() {
		c.detach()
	}
	if text == "" {
		return
	}
	t := &Node{Kind: TextNode, Data: text, owner: n.owner}
	n.AppendChild(t)
}

// Contains reports whether other sits in the subtree rooted at n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}
