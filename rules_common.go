package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Order constants fix the precedence total order from spec §4.6 (lower
// runs first). em/strong/u intentionally share orderEmphasis so the
// dispatcher's quality tiebreak (spec §4.4 step 2, §9 "quality function
// as soft tiebreak") decides between them by match length plus their
// fixed additive bias.
const (
	orderHeading        = 1
	orderLheading       = 3
	orderHr             = 4
	orderCodeBlock      = 5
	orderFence          = 6
	orderBlockQuote     = 7
	orderList           = 8
	orderDef            = 9
	orderTable          = 10
	orderNewline        = 11
	orderParagraph      = 12
	orderEscape         = 13
	orderTableSeparator = 14
	orderAutolink       = 15
	orderMailto         = 16
	orderURL            = 17
	orderLink           = 18
	orderImage          = 19
	orderReflink        = 20
	orderRefimage       = 21
	orderEmphasis       = 22
	orderDel            = 23
	orderInlineCode     = 24
	orderBr             = 25
	orderText           = 26
)

// trailingBlankPattern matches the spec's recurring "(?:\n *)+\n" suffix: one
// or more blank-ish lines followed by a final mandatory newline. Several
// block rules (heading, hr, codeBlock, lheading) embed it directly since
// it needs no backreference or lookaround.
const trailingBlankPattern = `(?:\n[ \t]*)+\n`

// optionalBlankRunRE matches zero or more fully-blank lines; used where a
// rule optionally swallows the blank lines that follow its last line
// (fence, paragraph, list, table).
var optionalBlankRunRE = regexp.MustCompile(`^(?:[ \t]*\n)*`)

var startOfLineSuffixRE = regexp.MustCompile(`\n[ \t]*$`)

// isStartOfLine reports whether prevCaptureText ends with a newline
// followed only by spaces/tabs (spec §4.6 List sub-protocol condition
// (a)), which is also vacuously true at the very start of a document
// (prevCaptureText == "").
func isStartOfLine(prevCaptureText string) bool {
	return prevCaptureText == "" || startOfLineSuffixRE.MatchString(prevCaptureText)
}

// trailingIndent returns the spaces/tabs after the last newline of s, or
// "" if s doesn't end in such a run.
func trailingIndent(s string) string {
	if s == "" {
		return ""
	}
	idx := strings.LastIndexByte(s, '\n')
	if idx == -1 {
		return ""
	}
	rest := s[idx+1:]
	if strings.Trim(rest, " \t") != "" {
		return ""
	}
	return rest
}

// nextLine splits s into its first line (without the trailing newline)
// and the byte length of that line including the newline if present.
func nextLine(s string) (line string, lineLenWithNL int, hasNL bool) {
	idx := strings.IndexByte(s, '\n')
	if idx == -1 {
		return s, len(s), false
	}
	return s[:idx], idx + 1, true
}

func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// parseIntOr0 parses s as a decimal integer, returning 0 on any error
// (used for list ordered-bullet start values, which spec.md leaves
// undefined for a malformed number rather than erroring the whole parse).
func parseIntOr0(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
