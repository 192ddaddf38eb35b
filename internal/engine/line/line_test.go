package line

import (
	"testing"

	"github.com/dshills/proofline/internal/engine/span"
)

func TestLocateMiddleLine(t *testing.T) {
	text := "first line\nsecond line\nthird line"

	got, ok := Locate(text, 15)
	if !ok {
		t.Fatal("Locate() returned no line, want second line")
	}
	if got.Text != "second line" {
		t.Errorf("Text = %q, want %q", got.Text, "second line")
	}
	if want := span.FromLength(11, 12); got.Span != want {
		t.Errorf("Span = %v, want %v", got.Span, want)
	}
}

func TestLocateTable(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		cursor   span.Offset
		wantText string
		wantSpan span.Span
		wantOK   bool
	}{
		{
			name:     "single line no terminator",
			text:     "hello world",
			cursor:   5,
			wantText: "hello world",
			wantSpan: span.NewSpan(0, 11),
			wantOK:   true,
		},
		{
			name:     "first line",
			text:     "first\nsecond",
			cursor:   2,
			wantText: "first",
			wantSpan: span.NewSpan(0, 6),
			wantOK:   true,
		},
		{
			name:     "last line includes no terminator in span",
			text:     "first\nsecond",
			cursor:   8,
			wantText: "second",
			wantSpan: span.NewSpan(6, 12),
			wantOK:   true,
		},
		{
			name:     "cursor exactly on terminator attributes backward",
			text:     "first\nsecond",
			cursor:   5,
			wantText: "first",
			wantSpan: span.NewSpan(0, 6),
			wantOK:   true,
		},
		{
			name:     "cursor at start of line",
			text:     "first\nsecond",
			cursor:   6,
			wantText: "second",
			wantSpan: span.NewSpan(6, 12),
			wantOK:   true,
		},
		{
			name:   "blank line between paragraphs",
			text:   "first\n\nthird",
			cursor: 6,
			wantOK: false,
		},
		{
			name:   "whitespace-only line",
			text:   "first\n   \t\nthird",
			cursor: 8,
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			cursor: 0,
			wantOK: false,
		},
		{
			name:     "negative cursor clamps to start",
			text:     "hello\nworld",
			cursor:   -10,
			wantText: "hello",
			wantSpan: span.NewSpan(0, 6),
			wantOK:   true,
		},
		{
			name:     "cursor beyond end clamps to last line",
			text:     "hello\nworld",
			cursor:   999,
			wantText: "world",
			wantSpan: span.NewSpan(6, 11),
			wantOK:   true,
		},
		{
			name:     "crlf terminator stripped from text kept in span",
			text:     "alpha\r\nbeta",
			cursor:   2,
			wantText: "alpha",
			wantSpan: span.NewSpan(0, 7),
			wantOK:   true,
		},
		{
			name:     "cursor inside crlf pair attributes backward",
			text:     "alpha\r\nbeta",
			cursor:   6,
			wantText: "alpha",
			wantSpan: span.NewSpan(0, 7),
			wantOK:   true,
		},
		{
			name:     "lone carriage return terminator",
			text:     "alpha\rbeta",
			cursor:   8,
			wantText: "beta",
			wantSpan: span.NewSpan(6, 10),
			wantOK:   true,
		},
		{
			name:     "surrogate pair counts as two code units",
			text:     "a🚀b\nnext",
			cursor:   2,
			wantText: "a🚀b",
			wantSpan: span.NewSpan(0, 5),
			wantOK:   true,
		},
		{
			name:     "cursor on final terminator attributes backward",
			text:     "only\n",
			cursor:   4,
			wantText: "only",
			wantSpan: span.NewSpan(0, 5),
			wantOK:   true,
		},
		{
			name:   "cursor past trailing newline sits on empty final line",
			text:   "only\n",
			cursor: 5,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(tt.text, tt.cursor)
			if ok != tt.wantOK {
				t.Fatalf("Locate(%q, %d) ok = %v, want %v", tt.text, tt.cursor, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if tt.wantText != "" && got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if tt.wantSpan != (span.Span{}) && got.Span != tt.wantSpan {
				t.Errorf("Span = %v, want %v", got.Span, tt.wantSpan)
			}
		})
	}
}

// Re-locating at any offset strictly inside a returned span must yield the
// identical span.
func TestLocateStable(t *testing.T) {
	text := "first line\nsecond line\r\nthird line"

	for cursor := -2; cursor <= span.Length(text)+2; cursor++ {
		got, ok := Locate(text, cursor)
		if !ok {
			continue
		}
		if got.Span.Start < 0 || got.Span.End > span.Length(text) {
			t.Fatalf("cursor %d: span %v escapes [0, %d]", cursor, got.Span, span.Length(text))
		}
		for off := got.Span.Start; off < got.Span.End; off++ {
			again, ok := Locate(text, off)
			if !ok {
				t.Fatalf("cursor %d: re-locate at %d found no line", cursor, off)
			}
			if again.Span != got.Span {
				t.Errorf("cursor %d: re-locate at %d = %v, want %v", cursor, off, again.Span, got.Span)
			}
		}
	}
}
