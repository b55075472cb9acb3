package domish

import (
	"iter"
	"sort"
	"strings"
)

// Elements that cannot hold children and close without an end tag in HTML.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Elements that always get an explicit closing tag, children or not.
var neverVoidElements = map[string]bool{
	"script":   true,
	"slot":     true,
	"template": true,
	"textarea": true,
}

// Known namespace URIs mapped back to their conventional prefixes.
// Attributes in any other namespace are dropped from output.
var namespacePrefixes = []struct{ uri, prefix string }{
	{"http://www.w3.org/XML/1998/namespace", "xml"},
	{"http://www.w3.org/1999/xlink", "xlink"},
	{"http://www.w3.org/2000/svg", "svg"},
}

const xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>`

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")
)

type serializeConfig struct {
	comments bool
	doctype  bool
	html     bool
}

// SerializeOption adjusts serialization.  Defaults: comments and the XML
// prolog on, HTML rules off.
type SerializeOption func(*serializeConfig)

// WithComments includes (default) or omits comment nodes.
func WithComments(on bool) SerializeOption {
	return func(c *serializeConfig) { c.comments = on }
}

// WithDoctype includes (default) or omits the XML prolog line.
func WithDoctype(on bool) SerializeOption {
	return func(c *serializeConfig) { c.doctype = on }
}

// AsHTML switches void-element and closing-tag rules to HTML mode.
func AsHTML(on bool) SerializeOption {
	return func(c *serializeConfig) { c.html = on }
}

func newSerializeConfig(opts []SerializeOption) serializeConfig {
	cfg := serializeConfig{comments: true, doctype: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Chunks lazily emits the markup for the subtree as a depth-first sequence
// of text chunks.
func (n *Node) Chunks(opts ...SerializeOption) iter.Seq[string] {
	cfg := newSerializeConfig(opts)
	return func(yield func(string) bool) {
		n.emit(cfg, yield)
	}
}

// ToXML serializes the subtree with strict closing rules: every non-empty
// element gets an end tag, every empty element self-closes.
func (n *Node) ToXML(opts ...SerializeOption) string {
	var b strings.Builder
	for chunk := range n.Chunks(opts...) {
		b.WriteString(chunk)
	}
	return b.String()
}

// ToHTML serializes the subtree with HTML void-element rules.
func (n *Node) ToHTML(opts ...SerializeOption) string {
	return n.ToXML(append(append([]SerializeOption(nil), opts...), AsHTML(true))...)
}

// emit walks the subtree depth-first, yielding chunks until done or the
// consumer stops.  Returns false once yield does.
func (n *Node) emit(cfg serializeConfig, yield func(string) bool) bool {
	switch n.Kind {
	case DocumentNode:
		if cfg.doctype && !cfg.html {
			if !yield(xmlProlog + "\n") {
				return false
			}
		}
		fallthrough
	case FragmentNode:
		for _, c := range n.children {
			if !c.emit(cfg, yield) {
				return false
			}
		}
		return true
	case TextNode:
		return yield(textEscaper.Replace(n.Data))
	case CommentNode:
		if !cfg.comments {
			return true
		}
		return yield("<!--" + n.Data + "-->")
	case ElementNode:
		return n.emitElement(cfg, yield)
	default:
		return true
	}
}

func (n *Node) emitElement(cfg serializeConfig, yield func(string) bool) bool {
	var open strings.Builder
	open.WriteByte('<')
	open.WriteString(n.QualifiedName())
	n.writeAttributes(&open, cfg)

	empty := len(n.children) == 0
	if empty && (!cfg.html || (voidElements[n.Name] && !neverVoidElements[n.Name])) {
		open.WriteString(" />")
		return yield(open.String())
	}

	open.WriteByte('>')
	if !yield(open.String()) {
		return false
	}
	for _, c := range n.children {
		if !c.emit(cfg, yield) {
			return false
		}
	}
	return yield("</" + n.QualifiedName() + ">")
}

func (n *Node) writeAttributes(b *strings.Builder, cfg serializeConfig) {
	styled := len(n.style) > 0

	if n.attrs != nil {
		for _, a := range n.attrs.items {
			if styled && a.Name == "style" {
				continue // merged below
			}
			b.WriteByte(' ')
			b.WriteString(a.Name)
			if a.Bool && cfg.html {
				continue
			}
			b.WriteString(`="`)
			b.WriteString(attrEscaper.Replace(a.Value))
			b.WriteByte('"')
		}
	}

	if styled {
		b.WriteString(` style="`)
		b.WriteString(attrEscaper.Replace(n.mergedStyle()))
		b.WriteByte('"')
	}

	// fixed reverse map keeps namespaced attribute output deterministic
	for _, ns := range namespacePrefixes {
		list := n.nsAttrs[ns.uri]
		if list == nil {
			continue
		}
		for _, a := range list.items {
			b.WriteByte(' ')
			b.WriteString(ns.prefix)
			b.WriteByte(':')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(attrEscaper.Replace(a.Value))
			b.WriteByte('"')
		}
	}
}

// mergedStyle folds the parsed style attribute and the live style dictionary
// into one declaration list.  Dictionary entries win on name conflicts;
// camelCase property names are rewritten to kebab-case.
func (n *Node) mergedStyle() string {
	type decl struct{ name, value string }
	var decls []decl
	index := make(map[string]int)

	if n.attrs != nil {
		for _, part := range strings.Split(n.attrs.Value("style"), ";") {
			name, value, ok := strings.Cut(part, ":")
			name = strings.TrimSpace(name)
			if !ok || name == "" {
				continue
			}
			index[name] = len(decls)
			decls = append(decls, decl{name: name, value: strings.TrimSpace(value)})
		}
	}

	names := make([]string, 0, len(n.style))
	for name := range n.style {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kebab := kebabCase(name)
		if i, ok := index[kebab]; ok {
			decls[i].value = n.style[name]
			continue
		}
		index[kebab] = len(decls)
		decls = append(decls, decl{name: kebab, value: n.style[name]})
	}

	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.name + ":" + d.value
	}
	return strings.Join(parts, ";")
}

// kebabCase rewrites camelCase property names: "backgroundColor" becomes
// "background-color".
func kebabCase(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToText strips all markup: text nodes are emitted with &, < and > escaped,
// a br element becomes a newline, everything else contributes only its
// children.  No serialization option affects text output: comments and the
// prolog never appear in it to begin with.
func (n *Node) ToText() string {
	var b strings.Builder
	n.emitText(&b)
	return b.String()
}

func (n *Node) emitText(b *strings.Builder) {
	switch n.Kind {
	case TextNode:
		b.WriteString(textEscaper.Replace(n.Data))
	case ElementNode:
		if n.Name == "br" {
			b.WriteByte('\n')
			return
		}
		fallthrough
	case DocumentNode, FragmentNode:
		for _, c := range n.children {
			c.emitText(b)
		}
	}
}
