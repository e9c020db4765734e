package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Table-driven end-to-end scenarios, in the teacher's own test(t, in,
// want) style (formatting_test.go), covering the concrete HTML
// scenarios this module's requirements document calls out.
func testHTML(t *testing.T, in, want string) {
	t.Helper()
	got, err := MarkdownToHTML(in, nil)
	require.NoErrorf(t, err, "MarkdownToHTML(%q)", in)
	require.Equalf(t, want, got, "MarkdownToHTML(%q)", in)
}

func TestMarkdownToHTMLScenarios(t *testing.T) {
	testHTML(t, "# Hello\n\n", "<h1>Hello</h1>")
	testHTML(t, "- one\n- two\n\n", "<ul><li>one</li><li>two</li></ul>")
	// href/title attribute values go through the same seven-character
	// escaper as text content (spec §4.3), so the slashes in the URL are
	// entity-escaped too.
	testHTML(t, "[x][y]\n\n[y]: http://e.com \"T\"\n\n", `<p><a href="http:&#x2F;&#x2F;e.com" title="T">x</a></p>`)
}

func TestMarkdownToHTMLLinkHrefJavascriptSanitized(t *testing.T) {
	// A rejected URL sanitizes to "", which is a falsy attribute value and
	// is therefore omitted from the rendered tag entirely.
	got, err := MarkdownToHTML("[a](javascript:alert(1))\n\n", nil)
	require.NoError(t, err)
	require.Equal(t, `<p><a>a</a>)</p>`, got)
}

func TestMarkdownToHTMLFencedCodeBlock(t *testing.T) {
	testHTML(t, "```js\nfoo\n```\n\n", `<pre><code class="markdown-code-js">foo</code></pre>`)
}

func TestMarkdownToHTMLTable(t *testing.T) {
	got, err := MarkdownToHTML("| a | b |\n|---|--:|\n| 1 | 2 |\n\n", nil)
	require.NoError(t, err)
	want := `<table><thead><tr><th>a</th><th style="text-align:right">b</th></tr></thead><tbody><tr><td>1</td><td style="text-align:right">2</td></tr></tbody></table>`
	require.Equal(t, want, got)
}

func TestDefaultInlineParseScenario(t *testing.T) {
	rules := DefaultRules()
	nodes, err := DefaultInlineParse("*em* and **strong** and __u__", nil)
	require.NoError(t, err)
	render, err := NewHTMLRenderer(rules)
	require.NoError(t, err)
	got, err := render(nodes, NewState())
	require.NoError(t, err)
	require.Equal(t, "<em>em</em> and <strong>strong</strong> and <u>u</u>", got)
}

func TestMarkdownToHTMLTwoParagraphs(t *testing.T) {
	testHTML(t, "one\n\ntwo\n\n", "<p>one</p><p>two</p>")
}

// TestDefaultImplicitParseInlineWhenNotBlockTerminated is spec §6: a
// source with no trailing blank line parses inline (a bare text node,
// not a paragraph).
func TestDefaultImplicitParseInlineWhenNotBlockTerminated(t *testing.T) {
	nodes, err := DefaultImplicitParse("hello", nil)
	require.NoError(t, err)
	render, err := NewHTMLRenderer(DefaultRules())
	require.NoError(t, err)
	got, err := render(nodes, NewState())
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

// TestDefaultImplicitParseBlockWhenBlockTerminated: a source that already
// ends in a blank line parses as a block document instead.
func TestDefaultImplicitParseBlockWhenBlockTerminated(t *testing.T) {
	nodes, err := DefaultImplicitParse("hello\n\n", nil)
	require.NoError(t, err)
	render, err := NewHTMLRenderer(DefaultRules())
	require.NoError(t, err)
	got, err := render(nodes, NewState())
	require.NoError(t, err)
	require.Equal(t, "<p>hello</p>", got)
}
