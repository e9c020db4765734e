package markdown

import "testing"

func TestBuildTagBasic(t *testing.T) {
	got := BuildTag("p", "hello", nil, true)
	if want := "<p>hello</p>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildTagVoidElement(t *testing.T) {
	got := BuildTag("br", "ignored", nil, false)
	if want := "<br>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildTagOmitsFalsyAttributes(t *testing.T) {
	attrs := map[string]any{
		"title": "",
		"start": 0,
		"open":  false,
		"class": "kept",
	}
	got := BuildTag("div", "x", attrs, true)
	if want := `<div class="kept">x</div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildTagAttributesSortedAndEscaped(t *testing.T) {
	attrs := map[string]any{
		"b": `"quoted"`,
		"a": "<tag>",
	}
	got := BuildTag("span", "", attrs, false)
	want := `<span a="&lt;tag&gt;" b="&quot;quoted&quot;">`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildTagCanonicalizesTagName(t *testing.T) {
	got := BuildTag("DIV", "x", nil, true)
	if want := "<div>x</div>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildTagUnknownTagPassesThrough(t *testing.T) {
	got := BuildTag("customNode", "x", nil, true)
	if want := "<customNode>x</customNode>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIsFalsy(t *testing.T) {
	falsy := []any{nil, false, "", 0, int64(0), float64(0)}
	for _, v := range falsy {
		if !isFalsy(v) {
			t.Errorf("isFalsy(%#v) = false, want true", v)
		}
	}
	truthy := []any{true, "x", 1, int64(1), float64(1.5)}
	for _, v := range truthy {
		if isFalsy(v) {
			t.Errorf("isFalsy(%#v) = true, want false", v)
		}
	}
}
