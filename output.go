package markdown

// arrayRuleName is the synthetic rule name consulted for sibling-sequence
// joining, matching spec §4.5's "a special Array rule".
const arrayRuleName = "Array"

// OutputFor builds a render(ast, state) function for one output property
// (e.g. "html") from a rule table (spec §4.5, §6). For every non-array
// node it calls rules[node.Type].Output[property]; for []Node siblings it
// calls the table's Array rule for that property, falling back to this
// package's default html/tree joiners when the table doesn't supply one.
func OutputFor(rules RuleTable, property string, defaults *State) (RenderFunc, error) {
	if defaults == nil {
		defaults = NewState()
	}

	var recurse OutputRecurse
	recurse = func(content any, state *State) any {
		switch v := content.(type) {
		case nil:
			return ""
		case Node:
			return outputNode(rules, property, v, recurse, state)
		case []Node:
			return outputArray(rules, property, v, recurse, state)
		default:
			return v
		}
	}

	render := func(ast any, state *State) (out any, err error) {
		st := mergeState(state, defaults)
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					panic(r)
				}
			}
		}()
		if _, ok := ast.([]Node); ok {
			if !hasArrayRule(rules, property) && !hasDefaultArrayJoiner(property) {
				return nil, missingArrayJoinerError(property)
			}
		}
		return recurse(ast, st), nil
	}

	return render, nil
}

func hasArrayRule(rules RuleTable, property string) bool {
	r, ok := rules[arrayRuleName]
	if !ok || r.Output == nil {
		return false
	}
	_, ok = r.Output[property]
	return ok
}

func hasDefaultArrayJoiner(property string) bool {
	return property == "html" || property == "tree"
}

func outputNode(rules RuleTable, property string, n Node, recurse OutputRecurse, state *State) any {
	r, ok := rules[n.Type]
	if !ok || r.Output == nil {
		return ""
	}
	fn, ok := r.Output[property]
	if !ok || fn == nil {
		return ""
	}
	return fn(n, recurse, state)
}

func outputArray(rules RuleTable, property string, nodes []Node, recurse OutputRecurse, state *State) any {
	if r, ok := rules[arrayRuleName]; ok && r.Output != nil {
		if fn, ok := r.Output[property]; ok && fn != nil {
			return fn(Node{Type: arrayRuleName, Props: map[string]any{"nodes": nodes}}, recurse, state)
		}
	}
	switch property {
	case "html":
		return defaultHTMLArray(nodes, recurse, state)
	case "tree":
		return defaultTreeArray(nodes, recurse, state)
	}
	// Unreachable when OutputFor's missing-joiner check ran first; kept
	// as a safe fallback for direct outputArray use from tests.
	return ""
}

// foldText merges consecutive text-type nodes into one logical text node
// before delegating, so downstream text handling always sees maximal
// runs (spec §4.5, §8 property 3: idempotent on already-maximal input).
func foldText(nodes []Node) []Node {
	folded := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == "text" && len(folded) > 0 && folded[len(folded)-1].Type == "text" {
			prev := folded[len(folded)-1]
			folded[len(folded)-1] = NewNode("text").Set("content", prev.Str("content")+n.Str("content"))
			continue
		}
		folded = append(folded, n)
	}
	return folded
}
