package markdown

import (
	"regexp"
	"strings"
)

var alignCellRE = regexp.MustCompile(`^:?-+:?$`)

// matchTable implements the header/align/body table sub-protocol
// procedurally rather than as one mega-regex (spec §4.6): it reads the
// header line, the alignment row (validating each cell against
// alignCellRE), then takes every following non-blank line as a body row
// until a blank line. Piped rows and "nptable" (no leading/trailing pipe)
// rows go through the same splitter, splitTableRow, and produce the same
// node shape.
func matchTable(source string, state *State, _ string) *Capture {
	if state.Inline {
		return nil
	}
	headerLine, headerLen, hasNL := nextLine(source)
	if !hasNL || strings.TrimSpace(headerLine) == "" || !strings.Contains(headerLine, "|") {
		return nil
	}
	pos := headerLen
	alignLine, alignLen, hasNL2 := nextLine(source[pos:])
	if !hasNL2 && alignLine == "" {
		return nil
	}
	aligns, ok := parseAlignRow(alignLine)
	if !ok {
		return nil
	}
	pos += alignLen

	var bodyLines []string
	for pos < len(source) {
		line, lineLen, hasNL3 := nextLine(source[pos:])
		if strings.TrimSpace(line) == "" {
			break
		}
		bodyLines = append(bodyLines, line)
		pos += lineLen
		if !hasNL3 {
			break
		}
	}

	end := pos
	end += len(optionalBlankRunRE.FindString(source[end:]))

	c := &Capture{Groups: []string{source[:end], headerLine, strings.Join(aligns, ",")}}
	c.Groups = append(c.Groups, bodyLines...)
	return c
}

func parseAlignRow(line string) ([]string, bool) {
	cells := splitTableRow(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]string, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if !alignCellRE.MatchString(cell) {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = "center"
		case right:
			aligns[i] = "right"
		case left:
			aligns[i] = "left"
		default:
			aligns[i] = ""
		}
	}
	return aligns, true
}

// splitTableRow splits one row on unescaped '|', trimming a single
// leading/trailing pipe (the piped-table style) when present, and each
// cell's surrounding whitespace.
func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	var cells []string
	var cur strings.Builder
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '\\' && i+1 < len(trimmed) {
			cur.WriteByte(trimmed[i])
			cur.WriteByte(trimmed[i+1])
			i++
			continue
		}
		if trimmed[i] == '|' {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(trimmed[i])
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

func tableRule() *Rule {
	return &Rule{
		Order: orderTable,
		Match: CustomMatch(matchTable),
		Parse: parseTable,
		Output: map[string]OutputFunc{
			"html": tableHTML,
			"tree": tableTree,
		},
	}
}

func parseTable(c *Capture, parse NestedParse, state *State) ParseResult {
	aligns := strings.Split(c.Group(2), ",")
	header := splitTableRow(c.Group(1))

	savedInTable := state.InTable
	state.InTable = true
	defer func() { state.InTable = savedInTable }()

	headerCells := make([][]Node, len(header))
	for i, cell := range header {
		nodes, err := ParseInline(parse, cell, state)
		if err != nil {
			nodes = nil
		}
		headerCells[i] = nodes
	}

	var rows [][][]Node
	for i := 3; i < len(c.Groups); i++ {
		cells := splitTableRow(c.Groups[i])
		row := make([][]Node, len(cells))
		for j, cell := range cells {
			nodes, err := ParseInline(parse, cell, state)
			if err != nil {
				nodes = nil
			}
			row[j] = nodes
		}
		rows = append(rows, row)
	}

	n := NewNode("table")
	n.Set("aligns", aligns)
	n.Set("header", headerCells)
	n.Set("rows", rows)
	return OneNode(n)
}

func alignsOf(n Node) []string {
	a, _ := n.Props["aligns"].([]string)
	return a
}

func headerOf(n Node) [][]Node {
	h, _ := n.Props["header"].([][]Node)
	return h
}

func rowsOf(n Node) [][][]Node {
	r, _ := n.Props["rows"].([][][]Node)
	return r
}

func alignAttr(align string) map[string]any {
	if align == "" {
		return nil
	}
	return map[string]any{"style": "text-align:" + align}
}

func tableHTML(n Node, recurse OutputRecurse, state *State) any {
	aligns := alignsOf(n)
	var b strings.Builder
	b.WriteString("<thead><tr>")
	for i, cell := range headerOf(n) {
		align := ""
		if i < len(aligns) {
			align = aligns[i]
		}
		b.WriteString(BuildTag("th", asString(recurse(cell, state)), alignAttr(align), true))
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rowsOf(n) {
		b.WriteString("<tr>")
		for i, cell := range row {
			align := ""
			if i < len(aligns) {
				align = aligns[i]
			}
			b.WriteString(BuildTag("td", asString(recurse(cell, state)), alignAttr(align), true))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody>")
	return BuildTag("table", b.String(), nil, true)
}

func tableTree(n Node, recurse OutputRecurse, state *State) any {
	aligns := alignsOf(n)
	headerChildren := make([]any, 0, len(headerOf(n)))
	for i, cell := range headerOf(n) {
		align := ""
		if i < len(aligns) {
			align = aligns[i]
		}
		headerChildren = append(headerChildren, ViewNode{Tag: "th", Props: alignAttr(align), Children: []any{recurse(cell, state)}})
	}
	bodyChildren := make([]any, 0, len(rowsOf(n)))
	for _, row := range rowsOf(n) {
		cells := make([]any, 0, len(row))
		for i, cell := range row {
			align := ""
			if i < len(aligns) {
				align = aligns[i]
			}
			cells = append(cells, ViewNode{Tag: "td", Props: alignAttr(align), Children: []any{recurse(cell, state)}})
		}
		bodyChildren = append(bodyChildren, ViewNode{Tag: "tr", Children: cells})
	}
	return ViewNode{
		Tag: "table",
		Children: []any{
			ViewNode{Tag: "thead", Children: []any{ViewNode{Tag: "tr", Children: headerChildren}}},
			ViewNode{Tag: "tbody", Children: bodyChildren},
		},
	}
}

// tableSeparator is an inline-scope no-op rule enabled only while
// state.InTable is true: it exists so a user rule table can recognize an
// unescaped '|' inside a table cell's inline content as a cell boundary
// marker rather than having it fall through to textRule (spec §4.6). This
// package's own table cells are already pre-split before inline parsing,
// so this rule's Parse never actually fires during normal use; it is
// wired for custom rule tables that reparse raw, unsplit cell text.
var tableSeparatorRE = regexp.MustCompile(`^ *\| *`)

func tableSeparatorRule() *Rule {
	return &Rule{
		Order: orderTableSeparator,
		Match: CustomMatch(func(source string, state *State, _ string) *Capture {
			if !state.Inline || !state.InTable {
				return nil
			}
			return captureFrom(tableSeparatorRE, source)
		}),
		Parse: func(c *Capture, parse NestedParse, state *State) ParseResult {
			return OneNode(IgnoreCapture())
		},
	}
}
