package domish

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func walkNames(root *Node, mask ShowMask) []string {
	var names []string
	w := NewTreeWalker(root, mask)
	for n := w.Next(); n != nil; n = w.Next() {
		names = append(names, n.NodeName())
	}
	return names
}

func TestTreeWalkerDocumentOrder(t *testing.T) {
	doc := Parse(`<a><b><c/></b><d/></a><e/>`)

	got := walkNames(&doc.Node, ShowElement)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
}

func TestTreeWalkerMask(t *testing.T) {
	doc := Parse(`<a>x<!--c--><b>y</b></a>`)

	require.Equal(t, []string{"#text", "#text"}, walkNames(&doc.Node, ShowText))
	require.Equal(t, []string{"#comment"}, walkNames(&doc.Node, ShowComment))
	require.Equal(t,
		[]string{"a", "#text", "#comment", "b", "#text"},
		walkNames(&doc.Node, ShowAll))
}

func TestTreeWalkerStaysInsideRoot(t *testing.T) {
	doc := Parse(`<a><b/></a><c/>`)
	a := doc.DocumentElement()

	require.Equal(t, []string{"b"}, walkNames(a, ShowElement))
}

func TestTreeWalkerExhausted(t *testing.T) {
	doc := NewDocument()
	w := NewTreeWalker(&doc.Node, ShowAll)
	require.Nil(t, w.Next())
	require.Nil(t, w.Next())
}

func TestTreeWalkerIsStateful(t *testing.T) {
	doc := Parse(`<a/><b/>`)
	w := NewTreeWalker(&doc.Node, ShowElement)

	first := w.Next()
	require.Equal(t, "a", first.Name)
	require.Equal(t, first, w.Current())

	second := w.Next()
	require.Equal(t, "b", second.Name)
	require.Nil(t, w.Next())
}
