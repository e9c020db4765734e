package markdown

import "strconv"

// ViewNode is the minimal shape this module gives the spec's "opaque
// output(node, state) callback" (spec §1's component-framework tree
// output is explicitly out of scope beyond the interface it is handed).
// It is deliberately generic — Tag plus Props plus Children — so it can
// be walked into whatever a real component framework's createElement
// wants without this package knowing about any specific one.
type ViewNode struct {
	Tag      string
	Props    map[string]any
	Children []any
}

// defaultTreeArray is the default Array rule's "tree" output (spec
// §4.5): it folds consecutive text nodes the same way defaultHTMLArray
// does, then renders each child in turn, threading state.Key through as
// the sibling index so a consumer can assign list/array identity, saving
// and restoring the caller's prior Key around the walk.
func defaultTreeArray(nodes []Node, recurse OutputRecurse, state *State) any {
	folded := foldText(nodes)
	savedKey := state.Key
	defer func() { state.Key = savedKey }()

	out := make([]any, 0, len(folded))
	for i, n := range folded {
		state.Key = strconv.Itoa(i)
		out = append(out, recurse(n, state))
	}
	return out
}
