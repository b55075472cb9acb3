package domish

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendChildInvariants(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	n := doc.CreateElement("n")

	a.AppendChild(n)
	require.Equal(t, a, n.Parent())
	require.Equal(t, 1, a.NumChildren())
	require.Equal(t, n, a.ChildAt(0))

	// appending again keeps the child unique
	a.AppendChild(n)
	require.Equal(t, 1, a.NumChildren())
}

func TestAppendChildDetachesFromPreviousParent(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	n := doc.CreateElement("n")

	a.AppendChild(n)
	b.AppendChild(n)

	require.Equal(t, b, n.Parent())
	require.Equal(t, 0, a.NumChildren())
	require.Equal(t, 1, b.NumChildren())
}

func TestAppendChildRefusesCycle(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	a.AppendChild(b)

	// appending an ancestor (or self) is a no-op: the tree stays acyclic
	b.AppendChild(a)
	require.Nil(t, a.Parent())
	require.Equal(t, a, b.Parent())
	require.Equal(t, 0, b.NumChildren())

	a.AppendChild(a)
	require.Nil(t, a.Parent())
	require.Equal(t, []*Node{b}, a.ChildNodes())

	// the tree is still finite and walkable
	require.Equal(t, "", a.TextContent())
	require.Equal(t, `<a><b /></a>`, a.ToXML())
}

func TestInsertBeforeRefusesCycle(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")
	a.AppendChild(b)
	b.AppendChild(c)

	_, err := b.InsertBefore(a, c)
	require.ErrorIs(t, err, ErrHierarchy)

	// nothing moved
	require.Nil(t, a.Parent())
	require.Equal(t, []*Node{c}, b.ChildNodes())

	_, err = b.InsertBefore(b, c)
	require.ErrorIs(t, err, ErrHierarchy)
}

func TestReplaceChildRefusesCycle(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")
	a.AppendChild(b)
	b.AppendChild(c)

	_, err := b.ReplaceChild(a, c)
	require.ErrorIs(t, err, ErrHierarchy)

	// atomic: the old child was not detached
	require.Equal(t, b, c.Parent())
	require.Equal(t, []*Node{c}, b.ChildNodes())
}

func TestRemoveChild(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	n := doc.CreateElement("n")
	a.AppendChild(n)

	removed, err := a.RemoveChild(n)
	require.NoError(t, err)
	require.Equal(t, n, removed)
	require.Nil(t, n.Parent())
	require.Equal(t, 0, a.NumChildren())

	_, err = a.RemoveChild(n)
	require.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestInsertBefore(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	a := doc.CreateElement("a")
	c := doc.CreateElement("c")
	p.AppendChild(a)
	p.AppendChild(c)

	b := doc.CreateElement("b")
	_, err := p.InsertBefore(b, c)
	require.NoError(t, err)
	require.Equal(t, []*Node{a, b, c}, p.ChildNodes())

	// nil reference appends
	d := doc.CreateElement("d")
	_, err = p.InsertBefore(d, nil)
	require.NoError(t, err)
	require.Equal(t, d, p.LastChild())
}

func TestInsertBeforeUnknownReferenceIsAtomic(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	other := doc.CreateElement("other")
	stranger := doc.CreateElement("stranger")
	child := doc.CreateElement("child")
	other.AppendChild(child)

	_, err := p.InsertBefore(child, stranger)
	require.ErrorIs(t, err, ErrReferenceNotFound)

	// nothing moved
	require.Equal(t, other, child.Parent())
	require.Equal(t, 0, p.NumChildren())
}

func TestReplaceChild(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	old := doc.CreateElement("old")
	p.AppendChild(old)

	repl := doc.CreateElement("new")
	got, err := p.ReplaceChild(repl, old)
	require.NoError(t, err)
	require.Equal(t, old, got)
	require.Nil(t, old.Parent())
	require.Equal(t, []*Node{repl}, p.ChildNodes())

	_, err = p.ReplaceChild(repl, old)
	require.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestFragmentSplicesOnInsertion(t *testing.T) {
	doc := NewDocument()
	frag := doc.CreateDocumentFragment()
	x := doc.CreateElement("x")
	y := doc.CreateElement("y")
	frag.AppendChild(x)
	frag.AppendChild(y)

	p := doc.CreateElement("p")
	p.AppendChild(frag)

	require.Equal(t, []*Node{x, y}, p.ChildNodes())
	require.Equal(t, 0, frag.NumChildren(), "fragment must be left empty")
	require.Equal(t, p, x.Parent())
}

func TestFragmentSplicesOnInsertBefore(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	z := doc.CreateElement("z")
	p.AppendChild(z)

	frag := doc.CreateDocumentFragment()
	x := doc.CreateElement("x")
	y := doc.CreateElement("y")
	frag.AppendChild(x)
	frag.AppendChild(y)

	_, err := p.InsertBefore(frag, z)
	require.NoError(t, err)
	require.Equal(t, []*Node{x, y, z}, p.ChildNodes())
	require.Equal(t, 0, frag.NumChildren())
}

func TestSiblings(t *testing.T) {
	doc := Parse(`<p><a/><b/><c/></p>`)
	p := doc.DocumentElement()
	a, b, c := p.ChildAt(0), p.ChildAt(1), p.ChildAt(2)

	require.Equal(t, b, a.NextSibling())
	require.Equal(t, b, c.PreviousSibling())
	require.Nil(t, a.PreviousSibling())
	require.Nil(t, c.NextSibling())
}

func TestCloneShallow(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	el.SetAttribute("href", "x")
	el.AppendChild(doc.CreateTextNode("child"))

	clone := el.CloneNode(false)
	require.Equal(t, "a", clone.Name)
	require.Equal(t, "x", clone.GetAttribute("href"))
	require.Equal(t, 0, clone.NumChildren())
	require.Nil(t, clone.Parent())
}

func TestCloneAttributesAreIndependent(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	el.SetAttribute("href", "x")

	clone := el.CloneNode(false)
	clone.SetAttribute("href", "y")

	require.Equal(t, "x", el.GetAttribute("href"))
	require.Equal(t, clone, clone.GetAttributeNode("href").Owner())
	require.Equal(t, el, el.GetAttributeNode("href").Owner())
}

func TestCloneDeep(t *testing.T) {
	doc := Parse(`<div class="a"><span id="x">text</span></div>`)
	div := doc.DocumentElement()

	clone := div.CloneNode(true)
	require.Equal(t, 1, clone.NumChildren())
	span := clone.FirstChild()
	require.Equal(t, "span", span.Name)
	require.Equal(t, clone, span.Parent())
	require.Equal(t, "text", span.TextContent())

	// mutating the clone leaves the original alone
	span.SetAttribute("id", "y")
	require.Equal(t, "x", div.FirstChild().GetAttribute("id"))
}

func TestCloneSharesHandlerReferences(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	called := 0
	el.AddEventListener("click", func(*Node, string) { called++ })

	clone := el.CloneNode(false)
	require.Len(t, clone.Listeners("click"), 1)

	// the set is duplicated: growing one does not grow the other
	clone.AddEventListener("click", func(*Node, string) {})
	require.Len(t, el.Listeners("click"), 1)
	require.Len(t, clone.Listeners("click"), 2)

	// but the handler itself is shared by reference
	clone.Listeners("click")[0](clone, "click")
	require.Equal(t, 1, called)
}

func TestTextContent(t *testing.T) {
	doc := Parse(`<div>a<span>b</span>c</div>`)
	require.Equal(t, "abc", doc.DocumentElement().TextContent())
}

func TestSetTextContent(t *testing.T) {
	doc := Parse(`<div><span>old</span></div>`)
	div := doc.DocumentElement()
	div.SetTextContent("new")
	require.Equal(t, 1, div.NumChildren())
	require.Equal(t, "new", div.TextContent())
}

func TestContains(t *testing.T) {
	doc := Parse(`<a><b><c/></b></a>`)
	a := doc.DocumentElement()
	c := a.FirstChild().FirstChild()

	require.True(t, a.Contains(c))
	require.True(t, a.Contains(a))
	require.False(t, c.Contains(a))
}

func TestNodeName(t *testing.T) {
	doc := NewDocument()
	require.Equal(t, "#document", doc.NodeName())
	require.Equal(t, "#text", doc.CreateTextNode("x").NodeName())
	require.Equal(t, "#comment", doc.CreateComment("x").NodeName())
	require.Equal(t, "#document-fragment", doc.CreateDocumentFragment().NodeName())
	require.Equal(t, "svg:rect", doc.CreateElementNS("svg", "rect").NodeName())
}
