package domish

// ShowMask filters tree-walker traversal by node kind.
type ShowMask uint

const (
	ShowDocument ShowMask = 1 << DocumentNode
	ShowFragment ShowMask = 1 << FragmentNode
	ShowElement  ShowMask = 1 << ElementNode
	ShowText     ShowMask = 1 << TextNode
	ShowComment  ShowMask = 1 << CommentNode
	ShowAll      ShowMask = ^ShowMask(0)
)

func (m ShowMask) accepts(kind NodeKind) bool {
	return m&(1<<kind) != 0
}

// TreeWalker is a stateful, forward-only cursor over the subtree rooted at
// root: first child, else next sibling, else the nearest ancestor's next
// sibling, never leaving the root.  The root itself is not yielded.
type TreeWalker struct {
	root    *Node
	mask    ShowMask
	current *Node
}

func NewTreeWalker(root *Node, mask ShowMask) *TreeWalker {
	return &TreeWalker{root: root, mask: mask, current: root}
}

// Current returns the node the cursor sits on, initially the root.
func (w *TreeWalker) Current() *Node {
	return w.current
}

// Next advances to the next node accepted by the mask, or returns nil once
// the subtree is exhausted.
func (w *TreeWalker) Next() *Node {
	for {
		next := w.step()
		if next == nil {
			return nil
		}
		w.current = next
		if w.mask.accepts(next.Kind) {
			return next
		}
	}
}

// step moves the cursor one node in document order, ignoring the filter.
func (w *TreeWalker) step() *Node {
	if w.current == nil {
		return nil
	}
	if first := w.current.FirstChild(); first != nil {
		return first
	}
	for cur := w.current; cur != nil && cur != w.root; cur = cur.parent {
		if sib := cur.NextSibling(); sib != nil {
			return sib
		}
	}
	return nil
}
