package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableNoAlignment(t *testing.T) {
	testHTML(t, "| a | b |\n|---|---|\n| 1 | 2 |\n\n",
		"<table><thead><tr><th>a</th><th>b</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>")
}

func TestTableLeftCenterRightAlignment(t *testing.T) {
	got, err := MarkdownToHTML("| a | b | c |\n|:--|:-:|--:|\n| 1 | 2 | 3 |\n\n", nil)
	require.NoError(t, err)
	want := `<table><thead><tr>` +
		`<th style="text-align:left">a</th>` +
		`<th style="text-align:center">b</th>` +
		`<th style="text-align:right">c</th>` +
		`</tr></thead><tbody><tr>` +
		`<td style="text-align:left">1</td>` +
		`<td style="text-align:center">2</td>` +
		`<td style="text-align:right">3</td>` +
		`</tr></tbody></table>`
	require.Equal(t, want, got)
}

// TestTableNoLeadingOrTrailingPipe covers the "nptable" row form: rows
// without a leading/trailing pipe split on the same rule (splitTableRow).
func TestTableNoLeadingOrTrailingPipe(t *testing.T) {
	testHTML(t, "a | b\n---|---\n1 | 2\n\n",
		"<table><thead><tr><th>a</th><th>b</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>")
}

func TestTableMultipleBodyRows(t *testing.T) {
	testHTML(t, "| a |\n|---|\n| 1 |\n| 2 |\n\n",
		"<table><thead><tr><th>a</th></tr></thead><tbody><tr><td>1</td></tr><tr><td>2</td></tr></tbody></table>")
}

func TestTableCellInlineContent(t *testing.T) {
	testHTML(t, "| a |\n|---|\n| *x* |\n\n",
		"<table><thead><tr><th>a</th></tr></thead><tbody><tr><td><em>x</em></td></tr></tbody></table>")
}

func TestTableRejectsMalformedAlignRow(t *testing.T) {
	// The second line isn't a valid align row (no dashes), so this isn't a
	// table at all and falls through to a plain paragraph.
	testHTML(t, "| a | b |\n| not an align row |\n\n", "<p>| a | b |\n| not an align row |</p>")
}
