package export

import (
	"strings"
	"testing"

	"github.com/SUMMERxKx/Timeline/internal/timeline"
)

func lookupFrom(m map[string]string) Lookup {
	return func(key string) string { return m[key] }
}

func TestPlainTextGroupsByYear(t *testing.T) {
	t.Parallel()

	slots := timeline.Generate(timeline.Fall, 2026, 2027)
	notes := map[string]string{
		"fall-2026-0":   "MATH 1130",
		"summer-2027-2": "co-op placement",
	}

	got := PlainText(slots, lookupFrom(notes))

	if !strings.Contains(got, "Academic Plan: Fall 2026 to Winter 2027") {
		t.Fatalf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "MATH 1130") || !strings.Contains(got, "co-op placement") {
		t.Fatalf("missing note text:\n%s", got)
	}

	// One section per year, in order.
	idx2026 := strings.Index(got, "\n2026\n")
	idx2027 := strings.Index(got, "\n2027\n")
	if idx2026 == -1 || idx2027 == -1 || idx2026 > idx2027 {
		t.Fatalf("year sections missing or out of order:\n%s", got)
	}

	// Terms appear in cycle order within the 2027 section.
	section := got[idx2027:]
	summer := strings.Index(section, "Summer")
	fall := strings.Index(section, "Fall")
	winter := strings.Index(section, "Winter")
	if summer == -1 || fall == -1 || winter == -1 || !(summer < fall && fall < winter) {
		t.Fatalf("terms out of cycle order in year section:\n%s", section)
	}
}

func TestPlainTextEmptyNoteDash(t *testing.T) {
	t.Parallel()

	slots := timeline.Generate(timeline.Winter, 2026, 2026)
	got := PlainText(slots, nil)
	if !strings.Contains(got, "Winter  -") {
		t.Fatalf("empty note should render a dash:\n%s", got)
	}
}

func TestPlainTextMultilineNoteIndented(t *testing.T) {
	t.Parallel()

	slots := timeline.Generate(timeline.Summer, 2026, 2026)
	notes := map[string]string{"summer-2026-0": "CMPT 1010\nCMPT 1110"}

	got := PlainText(slots, lookupFrom(notes))
	if !strings.Contains(got, "Summer  CMPT 1010\n          CMPT 1110\n") {
		t.Fatalf("continuation line not aligned:\n%s", got)
	}
}

func TestPrintViewContainsCards(t *testing.T) {
	t.Parallel()

	slots := timeline.Generate(timeline.Summer, 2026, 2027)
	notes := map[string]string{"fall-2026-1": "ENGL 1100"}

	got := PrintView(slots, lookupFrom(notes))
	for _, want := range []string{"2026", "2027", "Summer", "Fall", "Winter", "ENGL 1100"} {
		if !strings.Contains(got, want) {
			t.Fatalf("print view missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "─") {
		t.Fatalf("print view missing card borders:\n%s", got)
	}
}

func TestPlainTextEmptySequence(t *testing.T) {
	t.Parallel()

	got := PlainText(nil, nil)
	if !strings.Contains(got, "Academic Plan") {
		t.Fatalf("empty sequence title:\n%s", got)
	}
}
