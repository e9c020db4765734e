package markdown

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html/atom"
)

// voidTags lists the HTML void elements. BuildTag does not consult it:
// every caller passes isClosed explicitly (this package's hr, br and img
// output functions pass false).
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// canonicalTagName normalizes a tag name the way cozy-prosemirror-go's
// DOM generators do, by resolving it through the HTML atom table
// (golang.org/x/net/html/atom); an unrecognized name (a custom node type)
// passes through unchanged rather than being rejected.
func canonicalTagName(name string) string {
	if a := atom.Lookup([]byte(strings.ToLower(name))); a != 0 {
		return a.String()
	}
	return name
}

// BuildTag builds a well-formed start/end HTML tag with attribute
// escaping (spec §4.3). Attributes with falsy values (nil, false, "", 0)
// are omitted; every emitted attribute name and value is passed through
// SanitizeText. When isClosed is false, only the opening tag is emitted
// (void elements: hr, br, img, ...). inner is spliced in raw between the
// open and close tag: it is the caller's responsibility to have already
// rendered/escaped it (the output dispatcher always has, by the time a
// rule's "html" function calls BuildTag).
func BuildTag(name string, inner string, attrs map[string]any, isClosed bool) string {
	tag := canonicalTagName(name)

	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		if isFalsy(v) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(SanitizeText(k))
		b.WriteString(`="`)
		b.WriteString(SanitizeText(fmt.Sprint(attrs[k])))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if !isClosed {
		return b.String()
	}
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}
