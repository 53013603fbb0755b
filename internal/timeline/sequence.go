package timeline

import (
	"fmt"
	"strings"
)

// Slot is one generated (term, year) unit in the planning sequence. Index is
// the 0-based position within the generated list. Slots are immutable; the
// whole sequence is rebuilt when the plan range changes.
type Slot struct {
	Term  Term
	Year  int
	Index int
}

// Key is the stable identity used by the note store, derived from
// (term, year, index).
func (s Slot) Key() string {
	return fmt.Sprintf("%s-%d-%d", strings.ToLower(s.Term.String()), s.Year, s.Index)
}

// Label is the human-readable form, e.g. "Fall 2026".
func (s Slot) Label() string {
	return fmt.Sprintf("%s %d", s.Term, s.Year)
}

// Generate builds the ordered slot sequence from (start, startYear) through
// the Winter term of endYear. It walks a (term, year) cursor through the
// fixed cycle, incrementing the year each time the cursor wraps to Summer.
// The caller guarantees endYear >= startYear; the result then has exactly
// (endYear-startYear+1)*3 - start.Position() slots, strictly increasing in
// LinearIndex with step 1.
func Generate(start Term, startYear, endYear int) []Slot {
	slots := make([]Slot, 0, (endYear-startYear+1)*TermsPerYear)
	term, year := start, startYear
	for year <= endYear {
		slots = append(slots, Slot{Term: term, Year: year, Index: len(slots)})
		term = term.Next()
		if term == Summer {
			year++
		}
	}
	return slots
}
