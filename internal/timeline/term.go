package timeline

import "fmt"

// Term is one academic session label. The cycle order Summer, Fall, Winter is
// fixed: a wrap back to Summer marks the start of the next academic year.
type Term int

const (
	Summer Term = iota
	Fall
	Winter
)

// TermsPerYear is the number of sessions in one academic year.
const TermsPerYear = 3

func (t Term) String() string {
	switch t {
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	case Winter:
		return "Winter"
	}
	return fmt.Sprintf("Term(%d)", int(t))
}

// Position returns the 0-based rank of the term within the cycle.
func (t Term) Position() int {
	return int(t)
}

// Next returns the term that follows t in the cycle, wrapping Winter to Summer.
func (t Term) Next() Term {
	return Term((int(t) + 1) % TermsPerYear)
}

// ParseTerm accepts the case-insensitive term name used in config files and on
// the command line.
func ParseTerm(s string) (Term, error) {
	switch s {
	case "summer", "Summer", "SUMMER":
		return Summer, nil
	case "fall", "Fall", "FALL":
		return Fall, nil
	case "winter", "Winter", "WINTER":
		return Winter, nil
	}
	return Summer, fmt.Errorf("unknown term %q (want summer, fall or winter)", s)
}

// LinearIndex is the monotonic integer encoding of (year, term) used for
// sequencing and layout. It is always recomputed, never stored.
func LinearIndex(t Term, year int) int {
	return year*TermsPerYear + t.Position()
}
