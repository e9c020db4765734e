package markdown

import "strings"

// RefDef is an accumulated reference definition: `[ref]: target "title"`.
type RefDef struct {
	Target string
	Title  string
}

// State is the mutable record threaded through every nested parse and
// output call of one invocation. It is exclusively owned by the
// invocation that created it; concurrent invocations must use independent
// State records (see spec §5). Nested parsers save and restore each scope
// field (Inline, InTable, List, Key) they change before returning.
type State struct {
	// Inline is the current scope: inline rules match only when true,
	// block rules only when false.
	Inline bool
	// DisableAutoBlockNewlines suppresses the automatic "\n\n" suffix
	// the outer parse entry point appends in block scope.
	DisableAutoBlockNewlines bool
	// InTable is true while parsing table rows; enables tableSeparator.
	InTable bool
	// List is true inside a list item body; re-enables the list rule
	// under inline (tight-list) scope.
	List bool
	// PrevCapture is the most recent successful capture, for limited
	// lookbehind (the list rule's start-of-line check).
	PrevCapture *Capture
	// Defs maps a canonicalized ref key to the definition that targets
	// it, accumulated as `def` rules are parsed.
	Defs map[string]RefDef
	// Refs maps a canonicalized ref key to the ref/image nodes awaiting
	// backpatch from a not-yet-seen def.
	Refs map[string][]Node
	// Key is the stable sibling index used by tree-shaped output, so a
	// component-framework consumer can assign list/array identity.
	Key string
	// Extra carries arbitrary client fields through untouched.
	Extra map[string]any
}

// NewState returns an empty State ready for use as a ParserFor/OutputFor
// call's per-invocation state or default template.
func NewState() *State {
	return &State{
		Defs:  map[string]RefDef{},
		Refs:  map[string][]Node{},
		Extra: map[string]any{},
	}
}

// clone returns an independent copy: map fields are copied, not shared,
// so each invocation owns its own Defs/Refs/Extra (Lifecycle, spec §3).
func (s *State) clone() *State {
	c := NewState()
	if s == nil {
		return c
	}
	c.Inline = s.Inline
	c.DisableAutoBlockNewlines = s.DisableAutoBlockNewlines
	c.InTable = s.InTable
	c.List = s.List
	c.Key = s.Key
	for k, v := range s.Defs {
		c.Defs[k] = v
	}
	for k, v := range s.Refs {
		c.Refs[k] = append([]Node(nil), v...)
	}
	for k, v := range s.Extra {
		c.Extra[k] = v
	}
	return c
}

// mergeState builds the per-invocation state for one ParseFunc call: a
// copy of the defaults template supplies the baseline, and an explicit
// caller state overrides its Inline and DisableAutoBlockNewlines flags and
// adds its client fields. Defs, Refs, InTable, List and Key come from the
// defaults copy only (the caller state's own values are not read), and
// PrevCapture always starts nil. The caller's state is not mutated.
func mergeState(state, defaults *State) *State {
	merged := defaults.clone()
	if state != nil {
		merged.Inline = state.Inline
		merged.DisableAutoBlockNewlines = state.DisableAutoBlockNewlines
		for k, v := range state.Extra {
			merged.Extra[k] = v
		}
	}
	merged.PrevCapture = nil
	return merged
}

// CanonicalRefKey collapses whitespace runs to a single space and
// lowercases, the canonicalization both `def` and reference-link/-image
// rules apply before consulting Defs/Refs (spec §3 invariant).
func CanonicalRefKey(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}
