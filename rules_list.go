package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var listBulletRE = regexp.MustCompile(`^( {0,3})([*+-]|\d{1,9}[.)]) +`)
var listBlankLineRE = regexp.MustCompile(`^[ \t]*$`)

type listItemSpan struct {
	raw string
}

// matchList implements the spec's indentation-sensitive list sub-protocol
// procedurally rather than as one regex: it walks the source line by
// line, grouping lines into items by bullet markers and a content
// indentation column, and keeps matching consecutive items of the same
// bullet family (all of "*+-" are one family; digit bullets are another,
// provided the separator "." or ")" stays consistent) until a
// non-continuing line ends the list.
func matchList(source string, state *State, prevCaptureText string) *Capture {
	if state.Inline && !state.List {
		return nil
	}
	// Condition (a): a list can only start at the beginning of a line.
	// prevCaptureText's own trailing indentation (already consumed by
	// whatever matched just before this) isn't visible in source anymore,
	// so it's reconstructed here purely to give the bullet/indentation
	// arithmetic below the column it would have seen in the original
	// text; it's trimmed back off the returned capture's Text() below so
	// the dispatcher still advances by the real, unprepended length.
	if !isStartOfLine(prevCaptureText) {
		return nil
	}
	indent := trailingIndent(prevCaptureText)
	source = indent + source

	firstMarker := listBulletRE.FindStringSubmatch(source)
	if firstMarker == nil {
		return nil
	}
	ordered := firstMarker[2][0] >= '0' && firstMarker[2][0] <= '9'
	sep := firstMarker[2][len(firstMarker[2])-1:]

	pos := 0
	var items []listItemSpan
	loose := false

scanItems:
	for pos < len(source) {
		marker := listBulletRE.FindStringSubmatch(source[pos:])
		if marker == nil {
			break
		}
		curOrdered := marker[2][0] >= '0' && marker[2][0] <= '9'
		curSep := marker[2][len(marker[2])-1:]
		if curOrdered != ordered || (curOrdered && curSep != sep) {
			break
		}
		markerLine := marker[0]
		contentIndent := len(markerLine)
		pos += len(markerLine)

		var lineBuf strings.Builder
		firstLine, firstLineLen, _ := nextLine(source[pos:])
		lineBuf.WriteString(firstLine)
		pos += firstLineLen

		listEnded := false
		blankRun := 0
		for pos < len(source) {
			line, lineLen, hasNL := nextLine(source[pos:])
			if listBlankLineRE.MatchString(line) {
				blankRun++
				lineBuf.WriteByte('\n')
				pos += lineLen
				if !hasNL {
					break
				}
				// two blank lines in a row end the whole list.
				if blankRun >= 2 {
					listEnded = true
					break
				}
				continue
			}
			if listBulletRE.MatchString(line) && leadingSpaces(line) < contentIndent {
				break // a new item (or a sibling list) starts here
			}
			indent := leadingSpaces(line)
			if indent < contentIndent && blankRun > 0 {
				break // blank line not followed by a continuation: item (and list) ends
			}
			if blankRun > 0 {
				loose = true
			}
			blankRun = 0
			unindented := line
			if indent >= contentIndent {
				unindented = line[contentIndent:]
			} else {
				unindented = strings.TrimLeft(line, " \t")
			}
			lineBuf.WriteByte('\n')
			lineBuf.WriteString(unindented)
			pos += lineLen
			if !hasNL {
				break
			}
		}
		items = append(items, listItemSpan{raw: strings.TrimRight(lineBuf.String(), "\n")})
		if listEnded {
			break scanItems
		}
	}

	if len(items) == 0 {
		return nil
	}
	end := pos
	end += len(optionalBlankRunRE.FindString(source[end:]))

	start := 0
	if ordered {
		start = parseIntOr0(strings.TrimRight(firstMarker[2], ".)"))
	}

	c := &Capture{Groups: make([]string, 0, len(items)+3)}
	// end is in the indent-prepended coordinate space; the real source
	// never had those bytes, so they're trimmed back off here.
	c.Groups = append(c.Groups, source[len(indent):end])
	c.Groups = append(c.Groups, boolStr(ordered), strconv.Itoa(start), boolStr(loose))
	for _, it := range items {
		c.Groups = append(c.Groups, it.raw)
	}
	return c
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func listRule() *Rule {
	return &Rule{
		Order: orderList,
		Match: CustomMatch(matchList),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			ordered := c.Group(1) == "1"
			start := parseIntOr0(c.Group(2))
			loose := c.Group(3) == "1"

			savedList := state.List
			state.List = true
			defer func() { state.List = savedList }()

			items := make([][]Node, 0, len(c.Groups)-3)
			for i := 4; i < len(c.Groups); i++ {
				raw := c.Groups[i]
				nodes, err := ParseBlock(parse, raw, state)
				if err != nil {
					nodes = nil
				}
				if !loose && len(nodes) == 1 && nodes[0].Type == "paragraph" {
					nodes = nodes[0].Nodes("content")
				}
				items = append(items, nodes)
			}

			n := NewNode("list")
			n.Set("ordered", ordered)
			n.Set("start", start)
			n.Set("loose", loose)
			n.Set("items", items)
			return OneNode(n)
		},
		Output: map[string]OutputFunc{
			"html": listHTML,
			"tree": listTree,
		},
	}
}

func listHTML(n Node, recurse OutputRecurse, state *State) any {
	ordered := n.Bool("ordered")
	tag := "ul"
	attrs := map[string]any{}
	if ordered {
		tag = "ol"
		if start := n.Int("start"); start != 1 {
			attrs["start"] = start
		}
	}
	var b strings.Builder
	for _, item := range n.NodeLists("items") {
		inner := asString(recurse(item, state))
		b.WriteString(BuildTag("li", inner, nil, true))
	}
	return BuildTag(tag, b.String(), attrs, true)
}

func listTree(n Node, recurse OutputRecurse, state *State) any {
	ordered := n.Bool("ordered")
	tag := "ul"
	props := map[string]any{}
	if ordered {
		tag = "ol"
		if start := n.Int("start"); start != 1 {
			props["start"] = start
		}
	}
	children := make([]any, 0, len(n.NodeLists("items")))
	for _, item := range n.NodeLists("items") {
		children = append(children, ViewNode{Tag: "li", Children: []any{recurse(item, state)}})
	}
	return ViewNode{Tag: tag, Props: props, Children: children}
}
