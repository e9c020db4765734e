/*
Package markdown is an extensible, pluggable parser/renderer engine for a
Markdown-like grammar.

Given a source string and a rule table, the parser built by ParserFor
produces a tree of typed Nodes; given that tree and an output rule table,
the renderer built by OutputFor produces a
rendered artifact (an HTML string, or a tree of view objects for a
component framework). The same rule table carries both parse and output
behavior keyed by rule name, so grammars can be extended without forking
the engine.

The package ships a complete default Markdown rule set (DefaultRules):
headings, lists, block quotes, fenced/indented code, tables, reference
links/images, autolinks, inline emphasis, and more. Call MarkdownToHTML for
the common case of turning a Markdown string directly into an HTML string.

Usage

	html, err := markdown.MarkdownToHTML("# hi\n\nthere **bold** text\n\n", nil)

Extending the grammar means building a new RuleTable starting from
DefaultRules, overriding or adding entries, and building a parser/renderer
from it with ParserFor/OutputFor.
*/
package markdown
