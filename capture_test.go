package markdown

import (
	"regexp"
	"testing"
)

func TestInlineRegexScope(t *testing.T) {
	re := regexp.MustCompile(`^foo`)
	m := InlineRegex(re)

	st := NewState()
	st.Inline = false
	if c := m.Match("foo", st, ""); c != nil {
		t.Errorf("InlineRegex matched in block scope: %+v", c)
	}

	st.Inline = true
	c := m.Match("foo bar", st, "")
	if c == nil || c.Text() != "foo" {
		t.Errorf("InlineRegex: got %v, want capture of %q", c, "foo")
	}
}

func TestBlockRegexScope(t *testing.T) {
	re := regexp.MustCompile(`^foo`)
	m := BlockRegex(re)

	st := NewState()
	st.Inline = true
	if c := m.Match("foo", st, ""); c != nil {
		t.Errorf("BlockRegex matched in inline scope: %+v", c)
	}

	st.Inline = false
	c := m.Match("foo", st, "")
	if c == nil || c.Text() != "foo" {
		t.Errorf("BlockRegex: got %v, want capture of %q", c, "foo")
	}
}

func TestAnyScopeRegexIgnoresScope(t *testing.T) {
	re := regexp.MustCompile(`^ {2,}\n`)
	m := AnyScopeRegex(re)

	for _, inline := range []bool{true, false} {
		st := NewState()
		st.Inline = inline
		c := m.Match("  \nrest", st, "")
		if c == nil || c.Text() != "  \n" {
			t.Errorf("AnyScopeRegex(inline=%v): got %v", inline, c)
		}
	}
}

func TestCaptureFromGroups(t *testing.T) {
	re := regexp.MustCompile(`^(a)(b)?`)
	c := captureFrom(re, "a rest")
	if c == nil {
		t.Fatal("expected a match")
	}
	if c.Text() != "a" {
		t.Errorf("Text() = %q, want %q", c.Text(), "a")
	}
	if c.Group(1) != "a" {
		t.Errorf("Group(1) = %q, want %q", c.Group(1), "a")
	}
	if c.Group(2) != "" {
		t.Errorf("Group(2) = %q, want empty (unmatched optional group)", c.Group(2))
	}
	if c.Group(99) != "" {
		t.Errorf("Group(99) = %q, want empty (out of range)", c.Group(99))
	}
}

func TestCaptureFromNoMatch(t *testing.T) {
	re := regexp.MustCompile(`^xyz`)
	if c := captureFrom(re, "abc"); c != nil {
		t.Errorf("expected nil for non-matching prefix, got %+v", c)
	}
}

func TestNilCaptureIsSafe(t *testing.T) {
	var c *Capture
	if c.Text() != "" {
		t.Errorf("nil Capture.Text() = %q, want empty", c.Text())
	}
	if c.Group(0) != "" {
		t.Errorf("nil Capture.Group(0) = %q, want empty", c.Group(0))
	}
}
