package markdown

import (
	"regexp"
	"strings"
)

var escapeRE = regexp.MustCompile(`^\\([^0-9A-Za-z\s])`)

func escapeRule() *Rule {
	return &Rule{
		Order: orderEscape,
		Match: InlineRegex(escapeRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			return OneNode(NewNode("text").Set("content", c.Group(1)))
		},
		Output: map[string]OutputFunc{
			"html": textHTML,
			"tree": textTree,
		},
	}
}

var autolinkRE = regexp.MustCompile(`^<([^: >]+:/[^ >]+)>`)

func autolinkRule() *Rule {
	return &Rule{
		Order: orderAutolink,
		Match: InlineRegex(autolinkRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			target := c.Group(1)
			n := NewNode("link")
			n.Set("target", target)
			n.Set("content", []Node{NewNode("text").Set("content", target)})
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": linkHTML,
			"tree": linkTree,
		},
	}
}

var mailtoRE = regexp.MustCompile(`^<([^ >]+@[^ >]+)>`)

func mailtoRule() *Rule {
	return &Rule{
		Order: orderMailto,
		Match: InlineRegex(mailtoRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			addr := c.Group(1)
			target := addr
			if !strings.HasPrefix(strings.ToLower(addr), "mailto:") {
				target = "mailto:" + addr
			}
			n := NewNode("link")
			n.Set("target", target)
			n.Set("content", []Node{NewNode("text").Set("content", addr)})
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": linkHTML,
			"tree": linkTree,
		},
	}
}

var urlRE = regexp.MustCompile(`^(https?://[^\s<]+[^<.,:;"')\]\s])`)

func urlRule() *Rule {
	return &Rule{
		Order: orderURL,
		Match: InlineRegex(urlRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			target := c.Group(1)
			n := NewNode("link")
			n.Set("target", target)
			n.Set("content", []Node{NewNode("text").Set("content", target)})
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": linkHTML,
			"tree": linkTree,
		},
	}
}

// linkLabelPattern matches the bracketed label of a link/image, allowing one
// level of nested brackets (spec §4.6 "bracket-balanced inside regex").
const linkLabelPattern = `((?:\[[^\[\]]*\]|[^\[\]])*)`

var linkRE = regexp.MustCompile(`^\[` + linkLabelPattern + `\]\(\s*<?((?:[^\s\\]|\\.)*?)>?(?:\s+['"]([\s\S]*?)['"])?\s*\)`)

func linkRule() *Rule {
	return &Rule{
		Order: orderLink,
		Match: InlineRegex(linkRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, c.Group(1), state)
			if err != nil {
				content = nil
			}
			n := NewNode("link")
			n.Set("content", content)
			n.Set("target", UnescapeURL(c.Group(2)))
			if c.Group(3) != "" {
				n.Set("title", c.Group(3))
			}
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": linkHTML,
			"tree": linkTree,
		},
	}
}

var imageRE = regexp.MustCompile(`^!\[` + linkLabelPattern + `\]\(\s*<?((?:[^\s\\]|\\.)*?)>?(?:\s+['"]([\s\S]*?)['"])?\s*\)`)

func imageRule() *Rule {
	return &Rule{
		Order: orderImage,
		Match: InlineRegex(imageRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			n := NewNode("image")
			n.Set("alt", c.Group(1))
			n.Set("target", UnescapeURL(c.Group(2)))
			if c.Group(3) != "" {
				n.Set("title", c.Group(3))
			}
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": imageHTML,
			"tree": imageTree,
		},
	}
}

var reflinkRE = regexp.MustCompile(`^\[` + linkLabelPattern + `\]\s*\[([^\]]*)\]`)

func reflinkRule() *Rule {
	return &Rule{
		Order: orderReflink,
		Match: InlineRegex(reflinkRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, c.Group(1), state)
			if err != nil {
				content = nil
			}
			n := NewNode("link")
			n.Set("content", content)
			n = ParseRef(c, state, n)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": linkHTML,
			"tree": linkTree,
		},
	}
}

var refimageRE = regexp.MustCompile(`^!\[` + linkLabelPattern + `\]\s*\[([^\]]*)\]`)

func refimageRule() *Rule {
	return &Rule{
		Order: orderRefimage,
		Match: InlineRegex(refimageRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			n := NewNode("image")
			n.Set("alt", c.Group(1))
			n = ParseRef(c, state, n)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": imageHTML,
			"tree": imageTree,
		},
	}
}

// Emphasis: em, strong, and u share orderEmphasis and each carry a
// Quality function so the dispatcher's tiebreak (spec §4.4 step 2) picks
// the longest match, with a fixed additive bias on exact ties (em >
// strong > u). strong/u dodge their negative lookahead the same way the
// teacher's patternBold/patternUnderline do: consume one trailing
// boundary character (or end of string) after the closing delimiter, then
// trim it back off the reported match, so Groups[0] ends at the closing
// delimiter and the peeked character stays in source for the next rule
// (matchEm does the same for its star form). em tries
// two plain anchored alternatives in turn (underscore-delimited,
// star-delimited) via CustomMatch instead of one combined regex, since
// Go's RE2 engine has no alternation priority match-length guarantee
// across differing delimiters.
var emUnderscoreRE = regexp.MustCompile(`^\b_((?:__|\\[\s\S]|[^\\_])+?)_\b`)
var emStarRE = regexp.MustCompile(`^\*((?:\*\*|[^\s*])(?:\*\*|\s+(?:[^*\s]|\*\*)|[^\s*])*?)\*(?:[^*]|$)`)

func matchEm(source string, state *State, _ string) *Capture {
	if !state.Inline {
		return nil
	}
	if c := captureFrom(emUnderscoreRE, source); c != nil {
		return c
	}
	loc := emStarRE.FindStringSubmatchIndex(source)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	// emStarRE's trailing (?:[^*]|$) is a peeked boundary check, like
	// matchStrong/matchUnderline: the real "*content*" span ends right
	// after the closing '*', one byte past where group 1 ends.
	fullEnd := loc[3] + 1
	return &Capture{Groups: []string{source[0:fullEnd], source[loc[2]:loc[3]]}}
}

func emRule() *Rule {
	return &Rule{
		Order: orderEmphasis,
		Match: CustomMatch(matchEm),
		Quality: func(c *Capture, state *State, prevCaptureText string) float64 {
			return float64(len(c.Text())) + 0.2
		},
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, c.Group(1), state)
			if err != nil {
				content = nil
			}
			n := NewNode("em")
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": simpleWrapHTML("em"),
			"tree": simpleWrapTree("em"),
		},
	}
}

var strongRE = regexp.MustCompile(`^(\*\*([\s\S]+?)\*\*)(?:[^*]|$)`)

// matchStrong trims the trailing peeked character strongRE had to consume
// to rule out a third '*' (RE2 has no negative lookahead): Groups[0]
// reports only the real "**content**" span so the dispatcher's cursor
// leaves the peeked character in source for the next rule to see. The
// groups keep strongRE's numbering: Group(1) is that same delimited span
// (what Quality measures), Group(2) the inner content (what Parse reads).
func matchStrong(source string, state *State, _ string) *Capture {
	if !state.Inline {
		return nil
	}
	loc := strongRE.FindStringSubmatchIndex(source)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	return &Capture{Groups: []string{source[loc[2]:loc[3]], source[loc[2]:loc[3]], source[loc[4]:loc[5]]}}
}

func strongRule() *Rule {
	return &Rule{
		Order: orderEmphasis,
		Match: CustomMatch(matchStrong),
		Quality: func(c *Capture, state *State, prevCaptureText string) float64 {
			return float64(len(c.Group(1))) + 0.1
		},
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, c.Group(2), state)
			if err != nil {
				content = nil
			}
			n := NewNode("strong")
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": simpleWrapHTML("strong"),
			"tree": simpleWrapTree("strong"),
		},
	}
}

var underlineRE = regexp.MustCompile(`^(__([\s\S]+?)__)(?:[^_]|$)`)

// matchUnderline mirrors matchStrong's trailing-peek trim for "__"-delimited
// underline spans.
func matchUnderline(source string, state *State, _ string) *Capture {
	if !state.Inline {
		return nil
	}
	loc := underlineRE.FindStringSubmatchIndex(source)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	return &Capture{Groups: []string{source[loc[2]:loc[3]], source[loc[2]:loc[3]], source[loc[4]:loc[5]]}}
}

func uRule() *Rule {
	return &Rule{
		Order: orderEmphasis,
		Match: CustomMatch(matchUnderline),
		Quality: func(c *Capture, state *State, prevCaptureText string) float64 {
			return float64(len(c.Group(1)))
		},
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, c.Group(2), state)
			if err != nil {
				content = nil
			}
			n := NewNode("u")
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": simpleWrapHTML("u"),
			"tree": simpleWrapTree("u"),
		},
	}
}

var delRE = regexp.MustCompile(`^~~(\S|\S[\s\S]*?\S)~~`)

func delRule() *Rule {
	return &Rule{
		Order: orderDel,
		Match: InlineRegex(delRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, c.Group(1), state)
			if err != nil {
				content = nil
			}
			n := NewNode("del")
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": simpleWrapHTML("del"),
			"tree": simpleWrapTree("del"),
		},
	}
}

func inlineCodeRule() *Rule {
	return &Rule{
		Order: orderInlineCode,
		Match: CustomMatch(matchInlineCode),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			n := NewNode("inlineCode")
			n.Set("content", c.Group(1))
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": inlineCodeHTML,
			"tree": inlineCodeTree,
		},
	}
}

func matchInlineCode(source string, state *State, _ string) *Capture {
	if !state.Inline || len(source) == 0 || source[0] != '`' {
		return nil
	}
	i := 0
	for i < len(source) && source[i] == '`' {
		i++
	}
	fenceLen := i
	j := i
	for j < len(source) {
		if source[j] != '`' {
			j++
			continue
		}
		k := j
		for k < len(source) && source[k] == '`' {
			k++
		}
		if k-j == fenceLen && j > i {
			content := source[i:j]
			if len(content) >= 2 && strings.HasPrefix(content, " ") && strings.HasSuffix(content, " ") && strings.TrimSpace(content) != "" {
				content = content[1 : len(content)-1]
			}
			return &Capture{Groups: []string{source[:k], content}}
		}
		j = k
	}
	return nil
}

var brRE = regexp.MustCompile(`^ {2,}\n`)

func brRule() *Rule {
	return &Rule{
		Order: orderBr,
		Match: AnyScopeRegex(brRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			return OneNode(NewNode("br"))
		},
		Output: map[string]OutputFunc{
			"html": func(n Node, recurse OutputRecurse, state *State) any {
				return BuildTag("br", "", nil, false)
			},
			"tree": func(n Node, recurse OutputRecurse, state *State) any {
				return ViewNode{Tag: "br"}
			},
		},
	}
}

func textRule() *Rule {
	return &Rule{
		Order: orderText,
		Match: CustomMatch(matchText),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			return OneNode(NewNode("text").Set("content", c.Group(1)))
		},
		Output: map[string]OutputFunc{
			"html": textHTML,
			"tree": textTree,
		},
	}
}

// matchText is the fallback rule's matcher: it consumes characters up to
// (but not including) the first symbol character, newline, or the start
// of a "word:" run followed by a non-space character — that last case
// stops text short of an autolink-looking "http:"/"mailto:" prefix so
// url/autolink/mailto (lower Order) still get a chance to match it on the
// next iteration. It always consumes at least one character so the
// dispatcher makes forward progress on otherwise-unmatched input.
func matchText(source string, _ *State, _ string) *Capture {
	if len(source) == 0 {
		return nil
	}
	i := 0
	for i < len(source) {
		if source[i] == '\n' {
			break
		}
		if isSymbolByte(source[i]) {
			break
		}
		if isWordByte(source[i]) && (i == 0 || !isWordByte(source[i-1])) && wordAheadHasColonNonSpace(source, i) {
			break
		}
		if source[i] == ' ' && (i == 0 || source[i-1] != ' ') && startsTrailingBreak(source, i) {
			break
		}
		i++
	}
	if i == 0 {
		i = 1
	}
	return &Capture{Groups: []string{source[:i], source[:i]}}
}

// startsTrailingBreak reports whether the run of spaces starting at i is
// two or more spaces immediately followed by a newline (the br rule's "
// {2,}\n" span), so the text rule stops before it and leaves it for br.
func startsTrailingBreak(source string, i int) bool {
	j := i
	for j < len(source) && source[j] == ' ' {
		j++
	}
	return j-i >= 2 && j < len(source) && source[j] == '\n'
}

func isSymbolByte(b byte) bool {
	isAlnum := (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	isSpace := b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
	return !isAlnum && !isSpace && b < 0x80
}

// wordAheadHasColonNonSpace reports whether the word run starting at i is
// immediately followed by ':' and then a non-space character.
func wordAheadHasColonNonSpace(source string, i int) bool {
	j := i
	for j < len(source) && isWordByte(source[j]) {
		j++
	}
	if j >= len(source) || source[j] != ':' {
		return false
	}
	if j+1 >= len(source) || source[j+1] == ' ' || source[j+1] == '\n' || source[j+1] == '\t' {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
