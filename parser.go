package markdown

import (
	"math"
	"sort"
)

type ruleEntry struct {
	name string
	rule *Rule
}

// ParserFor builds a parse(source, state) function from a rule table
// (spec §4.4, §6). defaults, if non-nil, is the state template every call
// starts from; callers may still pass a per-call state overriding its
// scope flags and Extra fields (see mergeState).
//
// Construction filters out entries lacking a Match function (pure output
// rules), sorts the remainder by ascending Order, then quality-function
// presence, then rule name, and warns (but keeps) any rule with a
// non-finite Order.
func ParserFor(rules RuleTable, defaults *State) (ParseFunc, error) {
	entries := make([]ruleEntry, 0, len(rules))
	for name, r := range rules {
		if r.Match.Fn == nil {
			continue
		}
		if math.IsNaN(r.Order) || math.IsInf(r.Order, 0) {
			warnBadOrder(name, r.Order)
		}
		entries = append(entries, ruleEntry{name: name, rule: r})
	}
	sort.Slice(entries, func(i, j int) bool {
		oi, oj := entries[i].rule.Order, entries[j].rule.Order
		if oi != oj {
			return oi < oj
		}
		qi, qj := entries[i].rule.Quality != nil, entries[j].rule.Quality != nil
		if qi != qj {
			return qi // quality-bearing rules sort before non-quality ones at the same order
		}
		return entries[i].name < entries[j].name
	})

	if defaults == nil {
		defaults = NewState()
	}

	var nested NestedParse
	nested = func(source string, state *State) ([]Node, error) {
		var result []Node
		for len(source) > 0 {
			prevText := ""
			if state.PrevCapture != nil {
				prevText = state.PrevCapture.Text()
			}

			found := false
			bestEntry := -1
			var bestCapture *Capture
			bestQuality := math.NaN()

			for i := 0; i < len(entries); i++ {
				e := entries[i]
				capture := e.rule.Match.Match(source, state, prevText)
				if capture != nil {
					if !found {
						found = true
						bestEntry = i
						bestCapture = capture
						bestQuality = math.NaN()
						if e.rule.Quality != nil {
							bestQuality = e.rule.Quality(capture, state, prevText)
						}
					} else if e.rule.Order == entries[bestEntry].rule.Order && e.rule.Quality != nil {
						q := e.rule.Quality(capture, state, prevText)
						if math.IsNaN(bestQuality) || q > bestQuality {
							bestEntry = i
							bestCapture = capture
							bestQuality = q
						}
					}
				}

				if !found {
					continue // keep scanning every rule until something matches
				}
				if i+1 >= len(entries) {
					break
				}
				next := entries[i+1]
				if next.rule.Order != entries[bestEntry].rule.Order || next.rule.Quality == nil {
					break
				}
			}

			if !found {
				fallback := ""
				if len(entries) > 0 {
					fallback = entries[len(entries)-1].name
				}
				return nil, grammarExhaustionError(fallback, source)
			}
			if bestCapture.index != 0 {
				return nil, unanchoredMatchError(entries[bestEntry].name)
			}

			name := entries[bestEntry].name
			rule := entries[bestEntry].rule
			pr := rule.Parse(bestCapture, nested, state)
			if pr.Nodes != nil {
				for _, n := range pr.Nodes {
					if n.Type == "" {
						n.Type = name
					}
					result = append(result, n)
				}
			} else if pr.Node != nil {
				n := *pr.Node
				if n.Type == "" {
					n.Type = name
				}
				result = append(result, n)
			}

			state.PrevCapture = bestCapture
			source = source[len(bestCapture.Text()):]
		}
		return result, nil
	}

	parse := func(source string, state *State) ([]Node, error) {
		st := mergeState(state, defaults)
		st.PrevCapture = nil
		if !st.Inline && !st.DisableAutoBlockNewlines {
			source += "\n\n"
		}
		source = Preprocess(source)
		return nested(source, st)
	}

	return parse, nil
}
