package markdown

import "strings"

// defaultHTMLArray is the default Array rule's "html" output (spec
// §4.5): it folds consecutive text nodes (see foldText) and concatenates
// each child's rendered string.
func defaultHTMLArray(nodes []Node, recurse OutputRecurse, state *State) any {
	folded := foldText(nodes)
	var b strings.Builder
	for _, n := range folded {
		b.WriteString(asString(recurse(n, state)))
	}
	return b.String()
}

// asString coerces an OutputRecurse result to a string for html
// rendering; non-string results (e.g. a stray []any from a misconfigured
// "tree" rule reused under "html") render as "" rather than panicking,
// since a renderer must tolerate whatever a user rule table hands back.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// hrefAttr resolves the href/src URL a link/image/autolink node should
// render, applying SanitizeURL and tolerating an unset (never-defined
// reference) target by rendering an empty href (spec §7: ref-link
// targets that are never defined remain without target/title; renderers
// must tolerate this).
func hrefAttr(n Node) string {
	raw := n.Str("target")
	sanitized, ok := SanitizeURL(raw)
	if !ok {
		return ""
	}
	return sanitized
}
