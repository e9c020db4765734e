package markdown

import "testing"

func renderInline(t *testing.T, source string) string {
	t.Helper()
	nodes, err := DefaultInlineParse(source, nil)
	if err != nil {
		t.Fatalf("DefaultInlineParse(%q): %v", source, err)
	}
	render, err := NewHTMLRenderer(DefaultRules())
	if err != nil {
		t.Fatalf("NewHTMLRenderer: %v", err)
	}
	out, err := render(nodes, NewState())
	if err != nil {
		t.Fatalf("render(%q): %v", source, err)
	}
	return asString(out)
}

func TestInlineEscape(t *testing.T) {
	if got, want := renderInline(t, `\*not em\*`), "*not em*"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineAutolink(t *testing.T) {
	// Both the href attribute and the link text come from the same raw
	// target, so both go through the same slash-escaping.
	got := renderInline(t, "<http://example.com/p>")
	want := `<a href="http:&#x2F;&#x2F;example.com&#x2F;p">http:&#x2F;&#x2F;example.com&#x2F;p</a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineMailto(t *testing.T) {
	got := renderInline(t, "<a@b.com>")
	want := `<a href="mailto:a@b.com">a@b.com</a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineBareURL(t *testing.T) {
	got := renderInline(t, "see http://example.com/x for more")
	want := `see <a href="http:&#x2F;&#x2F;example.com&#x2F;x">http:&#x2F;&#x2F;example.com&#x2F;x</a> for more`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineLink(t *testing.T) {
	got := renderInline(t, `[text](http://e.com "Title")`)
	want := `<a href="http:&#x2F;&#x2F;e.com" title="Title">text</a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineImage(t *testing.T) {
	got := renderInline(t, `![alt](http://e.com/i.png)`)
	want := `<img alt="alt" src="http:&#x2F;&#x2F;e.com&#x2F;i.png">`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineEmphasisStrongUnderlineDel(t *testing.T) {
	cases := map[string]string{
		"*em*":     "<em>em</em>",
		"_em_":     "<em>em</em>",
		"**str**":  "<strong>str</strong>",
		"__u__":    "<u>u</u>",
		"~~del~~":  "<del>del</del>",
		"`code`":   "<code>code</code>",
		"` a `":    "<code>a</code>",
		"`` `a` ``": "<code>&#96;a&#96;</code>",
	}
	for in, want := range cases {
		if got := renderInline(t, in); got != want {
			t.Errorf("renderInline(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestInlineEmphasisQualityTiebreak reproduces spec §8 property 5: among
// equal-length captures, em beats strong beats u. em's Quality keys off
// the full match (Text()); strong/u key off Group(1) (their own full
// delimited span) — so captures of matching length, fed directly to each
// rule's Quality function, isolate the additive bias from match length.
func TestInlineEmphasisQualityTiebreak(t *testing.T) {
	st := NewState()
	rules := DefaultRules()

	sameLen := "xxxxx" // 5 bytes, used as both Text() and Group(1) below
	emCapture := &Capture{Groups: []string{sameLen, "xxx"}}
	strongCapture := &Capture{Groups: []string{"n/a", sameLen}}
	uCapture := &Capture{Groups: []string{"n/a", sameLen}}

	emQ := rules["em"].Quality(emCapture, st, "")
	strongQ := rules["strong"].Quality(strongCapture, st, "")
	uQ := rules["u"].Quality(uCapture, st, "")

	if !(emQ > strongQ && strongQ > uQ) {
		t.Errorf("quality ordering violated: em=%v strong=%v u=%v, want em > strong > u", emQ, strongQ, uQ)
	}
}

func TestInlineBreak(t *testing.T) {
	got := renderInline(t, "a  \nb")
	want := "a<br>b"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineTextStopsBeforeAutolinkLookingWord(t *testing.T) {
	// "http:" immediately followed by a non-space must not be consumed
	// by the text rule, so mailto/url/autolink get a chance on the next
	// dispatch iteration.
	got := renderInline(t, "see http://x.com now")
	want := `see <a href="http:&#x2F;&#x2F;x.com">http:&#x2F;&#x2F;x.com</a> now`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineTextDoesNotStopOnPlainColon(t *testing.T) {
	got := renderInline(t, "ratio 3: 1")
	want := "ratio 3: 1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
