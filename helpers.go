package markdown

// ParseInline parses content under inline scope: it saves state.Inline,
// sets it true, invokes parse, and restores the saved value before
// returning (spec §4.7). Every scope-switching helper in this package
// follows this save/restore discipline so a rule that nests into another
// scope never leaks it back out to its caller.
func ParseInline(parse NestedParse, content string, state *State) ([]Node, error) {
	saved := state.Inline
	state.Inline = true
	defer func() { state.Inline = saved }()
	return parse(content, state)
}

// ParseBlock parses content under block scope, appending "\n\n" itself
// (the outer parse entry point's auto-suffix only applies to the
// top-level call, not to block content reached through recursion).
func ParseBlock(parse NestedParse, content string, state *State) ([]Node, error) {
	saved := state.Inline
	state.Inline = false
	defer func() { state.Inline = saved }()
	return parse(content+"\n\n", state)
}

// ParseCaptureInline is the common case of a rule whose sole payload is
// its first capture group, inline-parsed, stored under "content".
func ParseCaptureInline(c *Capture, parse NestedParse, state *State) (Node, error) {
	content, err := ParseInline(parse, c.Group(1), state)
	if err != nil {
		return Node{}, err
	}
	n := NewNode("")
	n.Set("content", content)
	return n, nil
}

// IgnoreCapture returns an empty, typeless node for rules whose captured
// text carries no payload (newline runs, the tableSeparator placeholder).
func IgnoreCapture() Node {
	return NewNode("")
}

// ParseRef canonicalizes the ref key from capture group 2 (falling back
// to group 1, the reflink/refimage grouping where the bracketed key is
// sometimes the same text as the label), copies target/title from an
// already-seen def if one exists, and records refNode so a def parsed
// later can still backpatch it (spec §4.6 reflink/refimage, §4.7).
func ParseRef(c *Capture, state *State, refNode Node) Node {
	key := c.Group(2)
	if key == "" {
		key = c.Group(1)
	}
	key = CanonicalRefKey(key)
	if def, ok := state.Defs[key]; ok {
		refNode.Set("target", def.Target)
		refNode.Set("title", def.Title)
	}
	state.Refs[key] = append(state.Refs[key], refNode)
	return refNode
}
