package markdown

import "testing"

func TestListUnorderedTight(t *testing.T) {
	testHTML(t, "- one\n- two\n- three\n\n", "<ul><li>one</li><li>two</li><li>three</li></ul>")
}

func TestListOrderedWithStart(t *testing.T) {
	testHTML(t, "3. one\n4. two\n\n", `<ol start="3"><li>one</li><li>two</li></ol>`)
}

func TestListOrderedDefaultStartOmitsAttribute(t *testing.T) {
	testHTML(t, "1. one\n2. two\n\n", "<ol><li>one</li><li>two</li></ol>")
}

func TestListBulletMarkersPlusAndStar(t *testing.T) {
	testHTML(t, "+ one\n+ two\n\n", "<ul><li>one</li><li>two</li></ul>")
	testHTML(t, "* one\n* two\n\n", "<ul><li>one</li><li>two</li></ul>")
}

// TestListLoose checks that a blank line before a same-item continuation
// line marks the whole list loose, so every item's content renders
// paragraph-wrapped instead of the tight list's unwrapped inline.
func TestListLoose(t *testing.T) {
	testHTML(t, "- one\n\n  more\n- two\n\n", "<ul><li><p>one</p><p>more</p></li><li><p>two</p></li></ul>")
}

func TestListMixedBulletFamilyEndsTheList(t *testing.T) {
	// A digit-bullet item cannot continue a "-"-bullet list: the list
	// ends after the first item and a new list (or paragraph) follows.
	got, err := MarkdownToHTML("- one\n1. two\n\n", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul><li>one</li></ul><ol><li>two</li></ol>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestMatchListRequiresStartOfLine is spec §4.6 List condition (a): a
// list can only start at the beginning of a line, detected via
// prevCaptureText's own trailing newline+indentation (or its absence at
// the very start of a document).
func TestMatchListRequiresStartOfLine(t *testing.T) {
	st := NewState()
	if c := matchList("- item\n\n", st, "mid sentence"); c != nil {
		t.Errorf("matchList matched without a start-of-line prevCaptureText: %+v", c)
	}
}

func TestMatchListAllowsStartOfDocument(t *testing.T) {
	st := NewState()
	if c := matchList("- item\n\n", st, ""); c == nil {
		t.Error("matchList should match at the very start of a document (prevCaptureText == \"\")")
	}
}

func TestMatchListAllowsRightAfterNewline(t *testing.T) {
	st := NewState()
	if c := matchList("- item\n\n", st, "prior text\n\n"); c == nil {
		t.Error("matchList should match right after a newline-terminated prevCaptureText")
	}
}

// TestMatchListTrimsReprependedIndentFromCapture confirms the trailing
// indentation borrowed from prevCaptureText (to give the bullet's column
// its true context) doesn't leak into the returned capture's consumed
// length, since those bytes were already consumed by whatever produced
// prevCaptureText and aren't actually present in source anymore.
func TestMatchListTrimsReprependedIndentFromCapture(t *testing.T) {
	st := NewState()
	source := "- item\n\n"
	c := matchList(source, st, "parent\n  ")
	if c == nil {
		t.Fatal("expected a match")
	}
	if c.Text() != source {
		t.Errorf("capture Text() = %q, want %q", c.Text(), source)
	}
}

func TestListNestedContinuationIndent(t *testing.T) {
	got, err := MarkdownToHTML("- one\n  continued\n- two\n\n", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<ul><li>one\ncontinued</li><li>two</li></ul>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
