package markdown

import "regexp"

// InlineRegex wraps re into a MatchFunc that only probes source when
// state.Inline is true. re must be anchored at position 0 (spec §4.1);
// an unanchored regex that matches mid-string surfaces as
// ErrUnanchoredMatch from the dispatcher rather than silently skipping
// text.
func InlineRegex(re *regexp.Regexp) MatchFunc {
	return MatchFunc{
		Regex: re,
		Fn: func(source string, state *State, _ string) *Capture {
			if !state.Inline {
				return nil
			}
			return captureFrom(re, source)
		},
	}
}

// BlockRegex wraps re into a MatchFunc that only probes source when
// state.Inline is false.
func BlockRegex(re *regexp.Regexp) MatchFunc {
	return MatchFunc{
		Regex: re,
		Fn: func(source string, state *State, _ string) *Capture {
			if state.Inline {
				return nil
			}
			return captureFrom(re, source)
		},
	}
}

// AnyScopeRegex wraps re into a MatchFunc that probes source regardless
// of scope (br and text are the default rule set's any-scope rules).
func AnyScopeRegex(re *regexp.Regexp) MatchFunc {
	return MatchFunc{
		Regex: re,
		Fn: func(source string, _ *State, _ string) *Capture {
			return captureFrom(re, source)
		},
	}
}

func captureFrom(re *regexp.Regexp, source string) *Capture {
	loc := re.FindStringSubmatchIndex(source)
	if loc == nil {
		return nil
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			continue
		}
		groups[i] = source[start:end]
	}
	return &Capture{Groups: groups, index: loc[0]}
}
