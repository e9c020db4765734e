package markdown

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal conditions named in spec §7. Wrap with
// fmt.Errorf("%w: ...") so callers can errors.Is against these while still
// getting a message naming the offending rule.
var (
	// ErrGrammarExhaustion is returned when the dispatcher finds no
	// matching rule for a non-empty prefix. The default rule set's text
	// rule is the universal fallback; seeing this means a custom rule
	// table is missing an equivalent catch-all.
	ErrGrammarExhaustion = errors.New("no matching rule")
	// ErrUnanchoredMatch is returned when a selected capture's start
	// offset is non-zero; every rule's match function must probe from
	// position 0 of the source it is given.
	ErrUnanchoredMatch = errors.New("unanchored match")
	// ErrMissingArrayJoiner is returned by the render function OutputFor
	// builds, when it is handed a []Node and the requested output
	// property has no Array rule and no default joiner exists for it.
	ErrMissingArrayJoiner = errors.New("missing Array joiner")
)

func grammarExhaustionError(fallbackRule string, remaining string) error {
	const maxRemaining = 80
	r := remaining
	if len(r) > maxRemaining {
		r = r[:maxRemaining] + "…"
	}
	return fmt.Errorf("%w: fallback rule %q did not match remaining source: %q", ErrGrammarExhaustion, fallbackRule, r)
}

func unanchoredMatchError(ruleName string) error {
	return fmt.Errorf("%w: rule %q matched at a non-zero offset", ErrUnanchoredMatch, ruleName)
}

func missingArrayJoinerError(property string) error {
	return fmt.Errorf("%w: output property %q has no Array rule and no default joiner", ErrMissingArrayJoiner, property)
}
