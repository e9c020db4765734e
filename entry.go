package markdown

import "regexp"

// DefaultRules is the complete default Markdown grammar (spec §4.6):
// block rules (heading, lheading, hr, codeBlock, fence, blockQuote, def,
// list, table, newline, paragraph) and inline rules (escape, autolink,
// mailto, url, link, image, reflink, refimage, em, strong, u, del,
// inlineCode, br, text, tableSeparator). Copy and modify it to extend or
// restrict the grammar; the zero value of a missing entry is simply
// absent from dispatch.
func DefaultRules() RuleTable {
	return RuleTable{
		"heading":        headingRule(),
		"lheading":       lheadingRule(),
		"hr":             hrRule(),
		"codeBlock":      codeBlockRule(),
		"fence":          fenceRule(),
		"blockQuote":     blockQuoteRule(),
		"def":            defRule(),
		"list":           listRule(),
		"table":          tableRule(),
		"newline":        newlineRule(),
		"paragraph":      paragraphRule(),
		"escape":         escapeRule(),
		"autolink":       autolinkRule(),
		"mailto":         mailtoRule(),
		"url":            urlRule(),
		"link":           linkRule(),
		"image":          imageRule(),
		"reflink":        reflinkRule(),
		"refimage":       refimageRule(),
		"em":             emRule(),
		"strong":         strongRule(),
		"u":              uRule(),
		"del":            delRule(),
		"inlineCode":     inlineCodeRule(),
		"br":             brRule(),
		"text":           textRule(),
		"tableSeparator": tableSeparatorRule(),
	}
}

// DefaultBlockParse parses source as a top-level Markdown document: block
// scope, with the outer "\n\n" auto-suffix spec §4.1 describes.
func DefaultBlockParse(source string, state *State) ([]Node, error) {
	parse, err := ParserFor(DefaultRules(), NewState())
	if err != nil {
		return nil, err
	}
	st := state
	if st == nil {
		st = NewState()
	}
	st.Inline = false
	return parse(source, st)
}

// DefaultInlineParse parses source as inline content (no block rules
// apply; no auto-suffix).
func DefaultInlineParse(source string, state *State) ([]Node, error) {
	parse, err := ParserFor(DefaultRules(), NewState())
	if err != nil {
		return nil, err
	}
	st := state
	if st == nil {
		st = NewState()
	}
	st.Inline = true
	return parse(source, st)
}

// implicitBlockSuffixRE tests whether source is already block-terminated
// (ends in a blank line), the same test simple-markdown's
// defaultImplicitParse uses to decide inline vs. block scope.
var implicitBlockSuffixRE = regexp.MustCompile(`(?s)^.*\n{2,}$`)

// DefaultImplicitParse parses source as inline content unless it is
// already block-terminated (ends in two-or-more newlines), in which case
// it parses as a block document instead (spec §6: inline iff the source
// is not block-terminated).
func DefaultImplicitParse(source string, state *State) ([]Node, error) {
	parse, err := ParserFor(DefaultRules(), NewState())
	if err != nil {
		return nil, err
	}
	st := state
	if st == nil {
		st = NewState()
	}
	st.Inline = !implicitBlockSuffixRE.MatchString(source)
	return parse(source, st)
}

// NewHTMLRenderer builds a render(ast, state) function for the "html"
// output property over rules.
func NewHTMLRenderer(rules RuleTable) (RenderFunc, error) {
	return OutputFor(rules, "html", NewState())
}

// NewTreeRenderer builds a render(ast, state) function for the "tree"
// output property over rules, for embedding into a component framework's
// createElement-style tree builder (spec §1, §9 Design Notes).
func NewTreeRenderer(rules RuleTable) (RenderFunc, error) {
	return OutputFor(rules, "tree", NewState())
}

// MarkdownToHTML is the common-case entry point: parse source as a
// top-level Markdown document with DefaultRules and render it to an HTML
// string in one call.
func MarkdownToHTML(source string, state *State) (string, error) {
	rules := DefaultRules()
	parse, err := ParserFor(rules, NewState())
	if err != nil {
		return "", err
	}
	st := state
	if st == nil {
		st = NewState()
	}
	st.Inline = false
	nodes, err := parse(source, st)
	if err != nil {
		return "", err
	}

	render, err := NewHTMLRenderer(rules)
	if err != nil {
		return "", err
	}
	out, err := render(nodes, st)
	if err != nil {
		return "", err
	}
	return asString(out), nil
}
