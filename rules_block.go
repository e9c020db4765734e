package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var headingRE = regexp.MustCompile(`^ *(#{1,6})([^\n]+?)#* *` + trailingBlankPattern)

func headingRule() *Rule {
	return &Rule{
		Order: orderHeading,
		Match: BlockRegex(headingRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, strings.TrimSpace(c.Group(2)), state)
			if err != nil {
				content = nil
			}
			n := NewNode("heading")
			n.Set("level", len(c.Group(1)))
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": headingHTML,
			"tree": headingTree,
		},
	}
}

func headingHTML(n Node, recurse OutputRecurse, state *State) any {
	tag := "h" + strconv.Itoa(n.Int("level"))
	inner := asString(recurse(n.Any("content"), state))
	return BuildTag(tag, inner, nil, true)
}

func headingTree(n Node, recurse OutputRecurse, state *State) any {
	tag := "h" + strconv.Itoa(n.Int("level"))
	return ViewNode{Tag: tag, Children: []any{recurse(n.Any("content"), state)}}
}

var lheadingRE = regexp.MustCompile(`^([^\n]+)\n *(=|-){3,} *` + trailingBlankPattern)

func lheadingRule() *Rule {
	return &Rule{
		Order: orderLheading,
		Match: BlockRegex(lheadingRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, c.Group(1), state)
			if err != nil {
				content = nil
			}
			level := 2
			if c.Group(2) == "=" {
				level = 1
			}
			n := NewNode("heading")
			n.Set("level", level)
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": headingHTML,
			"tree": headingTree,
		},
	}
}

var hrRE = regexp.MustCompile(`^( *[-*_]){3,} *` + trailingBlankPattern)

func hrRule() *Rule {
	return &Rule{
		Order: orderHr,
		Match: BlockRegex(hrRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			return OneNode(NewNode("hr"))
		},
		Output: map[string]OutputFunc{
			"html": func(n Node, recurse OutputRecurse, state *State) any {
				return BuildTag("hr", "", nil, false)
			},
			"tree": func(n Node, recurse OutputRecurse, state *State) any {
				return ViewNode{Tag: "hr"}
			},
		},
	}
}

var codeBlockRE = regexp.MustCompile(`^(?: {4}[^\n]+\n*)+` + trailingBlankPattern)

func codeBlockRule() *Rule {
	return &Rule{
		Order: orderCodeBlock,
		Match: BlockRegex(codeBlockRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			lines := strings.Split(strings.TrimRight(c.Text(), "\n"), "\n")
			for i, l := range lines {
				lines[i] = strings.TrimPrefix(l, "    ")
			}
			n := NewNode("codeBlock")
			n.Set("content", strings.Join(lines, "\n"))
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": codeHTML,
			"tree": codeTree,
		},
	}
}

func codeHTML(n Node, recurse OutputRecurse, state *State) any {
	inner := SanitizeText(n.Str("content"))
	lang := n.Str("lang")
	attrs := map[string]any{}
	if lang != "" {
		attrs["class"] = "markdown-code-" + lang
	}
	return BuildTag("pre", BuildTag("code", inner, attrs, true), nil, true)
}

func codeTree(n Node, recurse OutputRecurse, state *State) any {
	codeProps := map[string]any{}
	if lang := n.Str("lang"); lang != "" {
		codeProps["lang"] = lang
	}
	return ViewNode{
		Tag:      "pre",
		Children: []any{ViewNode{Tag: "code", Props: codeProps, Children: []any{n.Str("content")}}},
	}
}

// matchFence implements the spec's fenced code block (```/~~~, 3+
// delimiter characters, closing run must be at least as long as the
// opening run) procedurally, since RE2 cannot backreference the opening
// delimiter's exact character and length when matching the close.
func matchFence(source string, state *State, _ string) *Capture {
	if state.Inline || len(source) == 0 {
		return nil
	}
	rest := source
	indent := leadingSpaces(rest)
	if indent > 3 {
		return nil
	}
	rest = rest[indent:]
	if len(rest) == 0 || (rest[0] != '`' && rest[0] != '~') {
		return nil
	}
	fenceChar := rest[0]
	i := 0
	for i < len(rest) && rest[i] == fenceChar {
		i++
	}
	if i < 3 {
		return nil
	}
	fenceLen := i
	firstLine, firstLineLen, _ := nextLine(rest)
	info := strings.TrimSpace(firstLine[fenceLen:])

	pos := indent + firstLineLen
	bodyStart := pos
	for pos < len(source) {
		line, lineLen, hasNL := nextLine(source[pos:])
		trimmed := strings.TrimLeft(line, " \t")
		closeIndent := len(line) - len(trimmed)
		if closeIndent <= 3 {
			j := 0
			for j < len(trimmed) && trimmed[j] == fenceChar {
				j++
			}
			if j >= fenceLen && strings.TrimSpace(trimmed[j:]) == "" {
				body := strings.TrimSuffix(source[bodyStart:pos], "\n")
				end := pos + lineLen
				end += len(optionalBlankRunRE.FindString(source[end:]))
				return &Capture{Groups: []string{source[:end], info, body}}
			}
		}
		if !hasNL {
			// unterminated fence: the rest of the document is the body.
			end := pos + lineLen
			body := strings.TrimSuffix(source[bodyStart:end], "\n")
			return &Capture{Groups: []string{source[:end], info, body}}
		}
		pos += lineLen
	}
	return nil
}

func fenceRule() *Rule {
	return &Rule{
		Order: orderFence,
		Match: CustomMatch(matchFence),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			n := NewNode("codeBlock")
			n.Set("lang", c.Group(1))
			n.Set("content", c.Group(2))
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": codeHTML,
			"tree": codeTree,
		},
	}
}

var blockQuoteRE = regexp.MustCompile(`^( *>[^\n]*(\n[^\n]+)*\n*)+`)
var blockQuoteStripRE = regexp.MustCompile(`(?m)^ *> ?`)

func blockQuoteRule() *Rule {
	return &Rule{
		Order: orderBlockQuote,
		Match: BlockRegex(blockQuoteRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			stripped := blockQuoteStripRE.ReplaceAllString(c.Text(), "")
			content, err := ParseBlock(parse, stripped, state)
			if err != nil {
				content = nil
			}
			n := NewNode("blockQuote")
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": func(n Node, recurse OutputRecurse, state *State) any {
				inner := asString(recurse(n.Any("content"), state))
				return BuildTag("blockquote", inner, nil, true)
			},
			"tree": func(n Node, recurse OutputRecurse, state *State) any {
				return ViewNode{Tag: "blockquote", Children: []any{recurse(n.Any("content"), state)}}
			},
		},
	}
}

var defRE = regexp.MustCompile(`^ *\[([^\]]+)\]: *<?([^\s>]+)>?(?: +["']([^\n]+)["'])? *\n?`)

func defRule() *Rule {
	return &Rule{
		Order: orderDef,
		Match: BlockRegex(defRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			key := CanonicalRefKey(c.Group(1))
			def := RefDef{Target: UnescapeURL(c.Group(2)), Title: c.Group(3)}
			state.Defs[key] = def
			for _, refNode := range state.Refs[key] {
				refNode.Set("target", def.Target)
				refNode.Set("title", def.Title)
			}
			return OneNode(IgnoreCapture())
		},
		// def contributes no rendered output: it only records state.
	}
}

var newlineRE = regexp.MustCompile(`^(?:\n *)*\n`)

func newlineRule() *Rule {
	return &Rule{
		Order: orderNewline,
		Match: BlockRegex(newlineRE),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			return OneNode(IgnoreCapture())
		},
	}
}

// matchParagraph consumes everything up to (but not including) the first
// wholly blank line, replacing the spec's negative-lookahead-per-line
// scan with an explicit line walk — RE2 has no "(?! *\n)" equivalent.
// The trailing blank-line run itself is then consumed into the match (it
// becomes the inter-block separator), mirroring the other block rules'
// "(?:\n *)+\n"-style suffix.
func matchParagraph(source string, state *State, _ string) *Capture {
	if state.Inline || len(source) == 0 {
		return nil
	}
	pos := 0
	for pos < len(source) {
		line, lineLen, hasNL := nextLine(source[pos:])
		if strings.TrimSpace(line) == "" {
			break
		}
		pos += lineLen
		if !hasNL {
			break
		}
	}
	if pos == 0 {
		return nil
	}
	body := source[:pos]
	end := pos + len(optionalBlankRunRE.FindString(source[pos:]))
	return &Capture{Groups: []string{source[:end], body}}
}

func paragraphRule() *Rule {
	return &Rule{
		Order: orderParagraph,
		Match: CustomMatch(matchParagraph),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			content, err := ParseInline(parse, strings.TrimRight(c.Group(1), "\n"), state)
			if err != nil {
				content = nil
			}
			n := NewNode("paragraph")
			n.Set("content", content)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": func(n Node, recurse OutputRecurse, state *State) any {
				inner := asString(recurse(n.Any("content"), state))
				return BuildTag("p", inner, nil, true)
			},
			"tree": func(n Node, recurse OutputRecurse, state *State) any {
				return ViewNode{Tag: "p", Children: []any{recurse(n.Any("content"), state)}}
			},
		},
	}
}
