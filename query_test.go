package domish

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuerySelectorByID(t *testing.T) {
	doc := Parse(`<div class="a b"><span id="x"/></div>`)

	span := doc.QuerySelector("#x")
	require.NotNil(t, span)
	require.Equal(t, "span", span.Name)
}

func TestQuerySelectorAllByClass(t *testing.T) {
	doc := Parse(`<div class="a b"><span id="x"/></div>`)

	hits := doc.QuerySelectorAll(".a")
	require.Len(t, hits, 1)
	require.Equal(t, "div", hits[0].Name)
}

func TestQuerySelectorDescendantSteps(t *testing.T) {
	doc := Parse(`<div class="a b"><span id="x"/></div>`)

	hits := doc.QuerySelectorAll("div span")
	require.Len(t, hits, 1)
	require.Equal(t, "span", hits[0].Name)

	require.Empty(t, doc.QuerySelectorAll("span div"))
}

func TestQuerySelectorConjunction(t *testing.T) {
	doc := Parse(`<a class="x"/><b class="x"/><a class="y"/>`)

	hits := doc.QuerySelectorAll("a.x")
	require.Len(t, hits, 1)
	require.Equal(t, "a", hits[0].Name)
	require.True(t, hits[0].ClassList().Contains("x"))
}

func TestQuerySelectorAttributePresence(t *testing.T) {
	doc := Parse(`<a href="x"/><a/>`)

	hits := doc.QuerySelectorAll("[href]")
	require.Len(t, hits, 1)
	require.Equal(t, "x", hits[0].GetAttribute("href"))
}

func TestQuerySelectorValueOperatorsArePresenceOnly(t *testing.T) {
	// value operators are grammar-recognized but matching stays
	// presence-only
	doc := Parse(`<a href="x"/><a href="y"/>`)

	for _, sel := range []string{`[href="x"]`, `[href^=x]`, `[href~='x']`} {
		hits := doc.QuerySelectorAll(sel)
		require.Len(t, hits, 2, "selector %s", sel)
	}
}

func TestQuerySelectorNoMatch(t *testing.T) {
	doc := Parse(`<a/>`)
	require.Nil(t, doc.QuerySelector("#missing"))
	require.Empty(t, doc.QuerySelectorAll(""))
}

func TestQuerySelectorDeduplicatesAcrossScopes(t *testing.T) {
	// the span is reachable from both div scopes; it must appear once
	doc := Parse(`<div><div><span/></div></div>`)

	hits := doc.QuerySelectorAll("div span")
	require.Len(t, hits, 1)
}

func TestQuerySelectorScopedToElement(t *testing.T) {
	doc := Parse(`<div><a id="in"/></div><a id="out"/>`)
	div := doc.DocumentElement()

	hits := div.QuerySelectorAll("a")
	require.Len(t, hits, 1)
	require.Equal(t, "in", hits[0].GetAttribute("id"))
}

func TestMatches(t *testing.T) {
	doc := Parse(`<a class="x" href="h"/>`)
	a := doc.DocumentElement()

	require.True(t, a.Matches("a"))
	require.True(t, a.Matches("a.x[href]"))
	require.False(t, a.Matches("b"))
	require.False(t, a.Matches(".y"))
}

func TestGetElementsByTagName(t *testing.T) {
	doc := Parse(`<ul><li/><li/><p/></ul>`)
	require.Len(t, doc.GetElementsByTagName("li"), 2)
	require.Len(t, doc.GetElementsByTagName("nope"), 0)
}

func TestGetElementsByClassName(t *testing.T) {
	doc := Parse(`<a class="x y"/><b class="y"/><c/>`)
	require.Len(t, doc.GetElementsByClassName("y"), 2)
	require.Len(t, doc.GetElementsByClassName("x"), 1)
}
