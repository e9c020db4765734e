package markdown

import "regexp"

// Node is a record with a string Type (the producing rule's name, unless
// the rule's parse function chose a different one) and rule-specific
// payload fields stored in Props.
//
// Props is the "small any/dynamic escape hatch" a statically typed rule
// table needs: rule-specific fields (a heading's Level, a list's Items, a
// link's Target) live there instead of on a type per node kind, so user
// rule tables can introduce entirely new node shapes without touching
// this package.
type Node struct {
	Type  string
	Props map[string]any
}

// NewNode creates an empty Node of the given type.
func NewNode(typ string) Node {
	return Node{Type: typ, Props: map[string]any{}}
}

// Set stores a prop and returns the node for chaining.
func (n Node) Set(key string, val any) Node {
	n.Props[key] = val
	return n
}

// Has reports whether a prop was set.
func (n Node) Has(key string) bool {
	_, ok := n.Props[key]
	return ok
}

// Any returns a raw prop value, or nil if absent.
func (n Node) Any(key string) any {
	return n.Props[key]
}

// Str returns a string prop, or "" if absent or of another type.
func (n Node) Str(key string) string {
	s, _ := n.Props[key].(string)
	return s
}

// Int returns an int prop, or 0 if absent or of another type.
func (n Node) Int(key string) int {
	i, _ := n.Props[key].(int)
	return i
}

// Bool returns a bool prop, or false if absent or of another type.
func (n Node) Bool(key string) bool {
	b, _ := n.Props[key].(bool)
	return b
}

// Nodes returns a []Node prop, or nil if absent or of another type.
func (n Node) Nodes(key string) []Node {
	ns, _ := n.Props[key].([]Node)
	return ns
}

// NodeLists returns a [][]Node prop (used by list items), or nil.
func (n Node) NodeLists(key string) [][]Node {
	ns, _ := n.Props[key].([][]Node)
	return ns
}

// Capture is the ordered result of applying an anchored match to a
// source prefix. Groups[0] is the full match text; Groups[i] are subgroup
// captures, "" when a group did not participate in the match.
type Capture struct {
	Groups []string
	index  int // offset of Groups[0] within the probed source; must be 0
}

// Text returns the full match (Groups[0]).
func (c *Capture) Text() string {
	if c == nil || len(c.Groups) == 0 {
		return ""
	}
	return c.Groups[0]
}

// Group returns the i-th captured group, or "" if out of range.
func (c *Capture) Group(i int) string {
	if c == nil || i < 0 || i >= len(c.Groups) {
		return ""
	}
	return c.Groups[i]
}

// MatchFunc probes the prefix of source for a rule. It carries the
// originating regex (when built from InlineRegex/BlockRegex/AnyScopeRegex)
// for introspection; Regex is nil for hand-written matchers such as the
// list and tableSeparator rules.
type MatchFunc struct {
	Regex *regexp.Regexp
	Fn    func(source string, state *State, prevCaptureText string) *Capture
}

// Match runs the underlying matcher. A zero-value MatchFunc always misses.
func (m MatchFunc) Match(source string, state *State, prevCaptureText string) *Capture {
	if m.Fn == nil {
		return nil
	}
	return m.Fn(source, state, prevCaptureText)
}

// CustomMatch wraps a hand-written matcher with no backing regex, for
// rules (list, tableSeparator) whose match condition isn't a plain anchored
// regex probe.
func CustomMatch(fn func(source string, state *State, prevCaptureText string) *Capture) MatchFunc {
	return MatchFunc{Fn: fn}
}

// NestedParse is the recursive parse entry point passed to every rule's
// Parse function, and used directly by ParseInline/ParseBlock and by
// rules (blockQuote, list) that recurse into nested content.
type NestedParse func(source string, state *State) ([]Node, error)

// ParseResult is what a rule's Parse function returns: either a single
// node (Node non-nil) or a flat replacement list (Nodes non-nil). Exactly
// one should be set.
type ParseResult struct {
	Node  *Node
	Nodes []Node
}

// OneNode wraps a single node as a ParseResult.
func OneNode(n Node) ParseResult {
	return ParseResult{Node: &n}
}

// ManyNodes wraps a list of nodes as a ParseResult (the capture expands
// into several siblings, e.g. an escaped character split across runs).
func ManyNodes(ns []Node) ParseResult {
	return ParseResult{Nodes: ns}
}

// OutputFunc renders one node, delegating nested content to recurse.
type OutputFunc func(n Node, recurse OutputRecurse, state *State) any

// OutputRecurse renders a nested value: a Node, a []Node (dispatched
// through the property's Array rule), or nil (renders as the zero value
// for the property, "" for html).
type OutputRecurse func(content any, state *State) any

// Rule is a named entry in a RuleTable: parse behavior (Order, Match,
// Quality, Parse) plus zero or more named output properties (e.g. "html",
// "tree"). A rule lacking Match is not a parse rule and is excluded from
// ParserFor's dispatch list (an output-only rule, or a rule that only
// rewrites its own type during parse and declines rendering by omitting
// the property from Output).
type Rule struct {
	Order   float64
	Match   MatchFunc
	Quality func(c *Capture, state *State, prevCaptureText string) float64
	Parse   func(c *Capture, parse NestedParse, state *State) ParseResult
	Output  map[string]OutputFunc
}

// RuleTable maps a rule name to its Rule. Rule names double as the
// default node Type their Parse function produces.
type RuleTable map[string]*Rule

// ParseFunc parses a source string into a node list, given optional
// per-call state overriding the template captured by ParserFor.
type ParseFunc func(source string, state *State) ([]Node, error)

// RenderFunc, produced by OutputFor, renders an AST (a Node or []Node).
type RenderFunc func(ast any, state *State) (any, error)
