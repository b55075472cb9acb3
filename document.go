package domish

// Document is the tree root.  Its factory methods are the only sanctioned way
// to create nodes bound to it; every element the factories (or cloning) make
// is recorded in a flat registry backing GetElementByID.  The registry is
// never pruned on detachment, so id lookup can return detached elements.
type Document struct {
	Node
	elements []*Node
}

// NewDocument returns a fresh, empty document.  There is no shared global
// document: every call makes an independent tree root.
func NewDocument() *Document {
	doc := &Document{Node: Node{Kind: DocumentNode}}
	doc.Node.owner = doc
	return doc
}

func (d *Document) register(el *Node) {
	d.elements = append(d.elements, el)
}

// CreateElement makes a detached element bound to this document.
func (d *Document) CreateElement(name string) *Node {
	return d.CreateElementNS("", name)
}

// CreateElementNS makes a detached element with a namespace prefix.
func (d *Document) CreateElementNS(ns, name string) *Node {
	el := &Node{Kind: ElementNode, Name: name, Namespace: ns, owner: d, attrs: NewAttrList()}
	d.register(el)
	return el
}

// CreateTextNode makes a detached text node.
func (d *Document) CreateTextNode(data string) *Node {
	return &Node{Kind: TextNode, Data: data, owner: d}
}

// CreateComment makes a detached comment node.
func (d *Document) CreateComment(data string) *Node {
	return &Node{Kind: CommentNode, Data: data, owner: d}
}

// CreateDocumentFragment makes an empty fragment container.  Inserting it
// into the tree splices its children in place and empties it.
func (d *Document) CreateDocumentFragment() *Node {
	return &Node{Kind: FragmentNode, owner: d}
}

// DocumentElement returns the first element child of the document, or nil.
func (d *Document) DocumentElement() *Node {
	for _, c := range d.children {
		if c.Kind == ElementNode {
			return c
		}
	}
	return nil
}

// GetElementByID returns the first element ever created by this document
// whose id attribute equals id, attached or not, or nil.
func (d *Document) GetElementByID(id string) *Node {
	for _, el := range d.elements {
		if el.GetAttribute("id") == id {
			return el
		}
	}
	return nil
}
