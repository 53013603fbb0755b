// Package export renders a generated plan as a plain-text or print-formatted
// document. Both forms group slots by year and keep the Summer, Fall, Winter
// order within a year.
package export

import (
	"fmt"
	"strings"

	"github.com/SUMMERxKx/Timeline/internal/timeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Lookup resolves the note text for a slot key; missing notes read as empty.
type Lookup func(key string) string

const printCardWidth = 22

var (
	printTitleStyle = lipgloss.NewStyle().Bold(true)
	printYearStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	printCardStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(printCardWidth)
)

type yearGroup struct {
	Year  int
	Slots []timeline.Slot
}

func groupByYear(slots []timeline.Slot) []yearGroup {
	var groups []yearGroup
	for _, slot := range slots {
		if len(groups) == 0 || groups[len(groups)-1].Year != slot.Year {
			groups = append(groups, yearGroup{Year: slot.Year})
		}
		last := &groups[len(groups)-1]
		last.Slots = append(last.Slots, slot)
	}
	return groups
}

func title(slots []timeline.Slot) string {
	if len(slots) == 0 {
		return "Academic Plan"
	}
	first, last := slots[0], slots[len(slots)-1]
	return fmt.Sprintf("Academic Plan: %s to %s", first.Label(), last.Label())
}

// PlainText renders the plan as indented text, one year section per block.
func PlainText(slots []timeline.Slot, lookup Lookup) string {
	var b strings.Builder
	b.WriteString(title(slots))
	b.WriteString("\n")

	for _, group := range groupByYear(slots) {
		fmt.Fprintf(&b, "\n%d\n", group.Year)
		for _, slot := range group.Slots {
			note := ""
			if lookup != nil {
				note = strings.TrimSpace(lookup(slot.Key()))
			}
			label := runewidth.FillRight(slot.Term.String(), 8)
			if note == "" {
				fmt.Fprintf(&b, "  %s-\n", label)
				continue
			}
			lines := strings.Split(note, "\n")
			fmt.Fprintf(&b, "  %s%s\n", label, lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "  %s%s\n", strings.Repeat(" ", 8), line)
			}
		}
	}
	return b.String()
}

// PrintView renders the plan for printing: a bordered card per term, three
// cards side by side per year section.
func PrintView(slots []timeline.Slot, lookup Lookup) string {
	sections := []string{printTitleStyle.Render(title(slots))}

	for _, group := range groupByYear(slots) {
		cards := make([]string, 0, len(group.Slots))
		for _, slot := range group.Slots {
			note := ""
			if lookup != nil {
				note = strings.TrimSpace(lookup(slot.Key()))
			}
			cards = append(cards, renderPrintCard(slot, note))
		}
		section := lipgloss.JoinVertical(lipgloss.Left,
			printYearStyle.Render(fmt.Sprintf("%d", group.Year)),
			lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		)
		sections = append(sections, section)
	}
	return strings.Join(sections, "\n\n")
}

func renderPrintCard(slot timeline.Slot, note string) string {
	inner := printCardWidth - 4
	lines := []string{runewidth.Truncate(slot.Term.String(), inner, "…")}
	if note == "" {
		lines = append(lines, "-")
	} else {
		for _, line := range strings.Split(note, "\n") {
			lines = append(lines, runewidth.Truncate(line, inner, "…"))
		}
	}
	return printCardStyle.Render(strings.Join(lines, "\n"))
}
