package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/SUMMERxKx/Timeline/internal/timeline"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// cardWidth is the inner width of a term card; the border adds two cells
	// and the inter-column gap one more, giving colWidth cells per year.
	cardWidth = 22
	colWidth  = cardWidth + 3

	notePreviewLines = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	yearStyle   = lipgloss.NewStyle().Bold(true).Width(colWidth - 1).Align(lipgloss.Center)
	statusStyle = lipgloss.NewStyle().Faint(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardWidth).
			MarginRight(1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("212"))
	termStyle         = lipgloss.NewStyle().Bold(true)
)

func (m *Model) View() string {
	if m.width <= 0 {
		return "loading…"
	}

	sections := []string{m.headerView(), m.stripView()}
	switch {
	case m.editing:
		sections = append(sections, m.editorView())
	case m.searching:
		sections = append(sections, "/"+m.search.View())
	}
	sections = append(sections, m.statusView())
	return strings.Join(sections, "\n")
}

func (m *Model) headerView() string {
	title := titleStyle.Render("Timeline")
	if len(m.slots) > 0 {
		first, last := m.slots[0], m.slots[len(m.slots)-1]
		title += dimStyle.Render(fmt.Sprintf("  %s to %s", first.Label(), last.Label()))
	}
	if m.planID != "" {
		short := m.planID
		if len(short) > 8 {
			short = short[:8]
		}
		title += dimStyle.Render("  plan " + short)
	}
	return title
}

// stripView windows the year columns by the scroll offset. Rendering is
// quantized to the nearest whole column; the scroller still tracks a
// real-valued offset so drags and jumps stay consistent with the content
// width.
func (m *Model) stripView() string {
	if len(m.years) == 0 {
		return dimStyle.Render("no terms in range")
	}
	visible := maxInt(m.width/colWidth, 1)
	first := int(math.Round(-m.scroller.Offset() / colWidth))
	first = minInt(first, len(m.years)-visible)
	first = maxInt(first, 0)
	end := minInt(len(m.years), first+visible)

	cols := make([]string, 0, end-first)
	for _, year := range m.years[first:end] {
		cols = append(cols, m.renderYearColumn(year))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) renderYearColumn(year yearColumn) string {
	rows := []string{yearStyle.Render(fmt.Sprintf("%d", year.Year))}
	for lane := 0; lane < timeline.TermsPerYear; lane++ {
		rows = append(rows, m.renderCard(timeline.Term(lane), year.Lanes[lane]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCard(term timeline.Term, slotIdx int) string {
	if slotIdx < 0 {
		// Lane before the plan's start term.
		return cardStyle.Render(dimStyle.Render(term.String()))
	}
	slot := m.slots[slotIdx]

	lines := []string{termStyle.Render(slot.Term.String())}
	note, err := m.notes.Get(slot.Key())
	if err != nil {
		note = ""
	}
	note = strings.TrimSpace(note)
	if note == "" {
		lines = append(lines, dimStyle.Render("-"))
	} else {
		noteLines := strings.Split(note, "\n")
		for i := 0; i < len(noteLines) && i < notePreviewLines; i++ {
			lines = append(lines, runewidth.Truncate(noteLines[i], cardWidth-2, "…"))
		}
		if len(noteLines) > notePreviewLines {
			lines = append(lines, dimStyle.Render("…"))
		}
	}

	style := cardStyle
	if slotIdx == m.selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) editorView() string {
	slot, ok := m.selectedSlot()
	if !ok {
		return ""
	}
	header := titleStyle.Render("Note — " + slot.Label())
	hint := dimStyle.Render("ctrl+s save · esc cancel")
	return strings.Join([]string{header, m.editor.View(), hint}, "\n")
}

func (m *Model) statusView() string {
	left := "◀"
	right := "▶"
	if m.pos.AtLeftEdge {
		left = dimStyle.Render(left)
	}
	if m.pos.AtRightEdge {
		right = dimStyle.Render(right)
	}

	parts := []string{left + " " + right}
	if slot, ok := m.selectedSlot(); ok {
		parts = append(parts, fmt.Sprintf("%s (%d/%d)", slot.Label(), m.selected+1, len(m.slots)))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, statusStyle.Render("←/→ select · [/] scroll · e edit · d clear · / search · y copy · q quit"))
	return strings.Join(parts, "  ")
}
