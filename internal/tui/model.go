package tui

import (
	"fmt"
	"strings"

	"github.com/SUMMERxKx/Timeline/internal/export"
	"github.com/SUMMERxKx/Timeline/internal/logger"
	"github.com/SUMMERxKx/Timeline/internal/notes"
	"github.com/SUMMERxKx/Timeline/internal/timeline"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

type Options struct {
	Slots  []timeline.Slot
	Notes  *notes.Store
	PlanID string
	Log    *logger.LogEntry
}

// yearColumn is one rendered column: a year with its three lanes. Lane holds
// the index into the slot sequence, or -1 where the plan starts mid-year.
type yearColumn struct {
	Year  int
	Lanes [timeline.TermsPerYear]int
}

type Model struct {
	slots  []timeline.Slot
	years  []yearColumn
	notes  *notes.Store
	planID string
	log    *logger.LogEntry

	scroller timeline.Scroller
	pos      timeline.Position
	selected int
	width    int
	height   int

	editor    textarea.Model
	editing   bool
	search    textinput.Model
	searching bool
	status    string

	dragging     bool
	dragStartX   int
	dragBaseline float64
}

func New(opts Options) *Model {
	editor := textarea.New()
	editor.Placeholder = "Courses, reminders, anything for this term…"
	editor.CharLimit = 0
	editor.SetWidth(cardWidth * 2)
	editor.SetHeight(5)

	search := textinput.New()
	search.Placeholder = "search notes"
	search.CharLimit = 128

	log := opts.Log
	if log == nil {
		log = logger.Named("tui")
	}

	m := &Model{
		slots:  opts.Slots,
		years:  buildYearColumns(opts.Slots),
		notes:  opts.Notes,
		planID: opts.PlanID,
		log:    log,
		editor: editor,
		search: search,
	}
	return m
}

func buildYearColumns(slots []timeline.Slot) []yearColumn {
	var years []yearColumn
	for i, slot := range slots {
		if len(years) == 0 || years[len(years)-1].Year != slot.Year {
			years = append(years, yearColumn{Year: slot.Year, Lanes: [timeline.TermsPerYear]int{-1, -1, -1}})
		}
		years[len(years)-1].Lanes[slot.Term.Position()] = i
	}
	return years
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// contentWidth is the full width of the card strip in terminal cells.
func (m *Model) contentWidth() float64 {
	return float64(len(m.years) * colWidth)
}

func (m *Model) viewportWidth() float64 {
	if m.width <= 0 {
		return 0
	}
	return float64(m.width)
}

func (m *Model) syncGeometry() {
	m.pos = m.scroller.SetGeometry(m.contentWidth(), m.viewportWidth())
}

// stepFor picks the arrow-jump magnitude: one column on narrow terminals,
// half the visible columns on wide ones.
func stepFor(viewportWidth int) float64 {
	cols := viewportWidth / colWidth
	if cols < 2 {
		return colWidth
	}
	return float64((cols / 2) * colWidth)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(maxInt(20, minInt(msg.Width-4, cardWidth*3)))
		m.syncGeometry()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditorKey(msg)
		}
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if m.selected > 0 {
			m.selected--
			m.ensureSelectedVisible()
		}
	case "right", "l":
		if m.selected < len(m.slots)-1 {
			m.selected++
			m.ensureSelectedVisible()
		}
	case "up", "k":
		if m.selected > 0 && m.slots[m.selected-1].Year == m.slots[m.selected].Year {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.slots)-1 && m.slots[m.selected+1].Year == m.slots[m.selected].Year {
			m.selected++
		}

	case "pgup", "[":
		m.pos = m.scroller.JumpBy(stepFor(m.width))
	case "pgdown", "]":
		m.pos = m.scroller.JumpBy(-stepFor(m.width))
	case "home":
		m.pos = m.scroller.JumpBy(m.contentWidth())
		if len(m.slots) > 0 {
			m.selected = 0
		}
	case "end":
		m.pos = m.scroller.JumpBy(-m.contentWidth())
		if len(m.slots) > 0 {
			m.selected = len(m.slots) - 1
		}

	case "enter", "e":
		m.openEditor()
	case "d":
		m.deleteSelectedNote()
	case "/":
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	case "y":
		m.copyPlan()
	}
	return m, nil
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editor.Blur()
		m.status = "edit cancelled"
		return m, nil
	case "ctrl+s":
		m.saveEditor()
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.jumpToNoteMatch(m.search.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.pos = m.scroller.JumpBy(colWidth)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.pos = m.scroller.JumpBy(-colWidth)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.dragStartX = msg.X
			m.dragBaseline = m.scroller.Offset()
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.pos = m.scroller.DragTo(float64(msg.X-m.dragStartX), m.dragBaseline)
		}
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

func (m *Model) selectedSlot() (timeline.Slot, bool) {
	if m.selected < 0 || m.selected >= len(m.slots) {
		return timeline.Slot{}, false
	}
	return m.slots[m.selected], true
}

func (m *Model) openEditor() {
	slot, ok := m.selectedSlot()
	if !ok {
		return
	}
	text, err := m.notes.Get(slot.Key())
	if err != nil {
		m.status = fmt.Sprintf("load note: %v", err)
		m.log.WithField("slot", slot.Key()).Warnf("load note: %v", err)
		return
	}
	m.editor.SetValue(text)
	m.editor.Focus()
	m.editing = true
	m.status = ""
}

func (m *Model) saveEditor() {
	slot, ok := m.selectedSlot()
	if !ok {
		return
	}
	if err := m.notes.Set(slot.Key(), m.editor.Value()); err != nil {
		m.status = fmt.Sprintf("save note: %v", err)
		m.log.WithField("slot", slot.Key()).Warnf("save note: %v", err)
		return
	}
	m.editing = false
	m.editor.Blur()
	m.status = fmt.Sprintf("saved note for %s", slot.Label())
	m.log.WithField("slot", slot.Key()).Info("saved note")
}

func (m *Model) deleteSelectedNote() {
	slot, ok := m.selectedSlot()
	if !ok {
		return
	}
	if err := m.notes.Set(slot.Key(), ""); err != nil {
		m.status = fmt.Sprintf("delete note: %v", err)
		return
	}
	m.status = fmt.Sprintf("cleared note for %s", slot.Label())
}

func (m *Model) copyPlan() {
	text := export.PlainText(m.slots, m.noteLookup())
	if err := clipboard.WriteAll(text); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		m.log.Warnf("clipboard copy: %v", err)
		return
	}
	m.status = "plan copied to clipboard"
}

func (m *Model) noteLookup() export.Lookup {
	return func(key string) string {
		text, err := m.notes.Get(key)
		if err != nil {
			return ""
		}
		return text
	}
}

// jumpToNoteMatch fuzzy-matches query against all stored note texts and moves
// selection (and the scroll window) to the best match.
func (m *Model) jumpToNoteMatch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	texts := make([]string, len(m.slots))
	for i, slot := range m.slots {
		texts[i], _ = m.notes.Get(slot.Key())
	}
	matches := fuzzy.Find(query, texts)
	if len(matches) == 0 {
		m.status = fmt.Sprintf("no note matches %q", query)
		return
	}
	m.selected = matches[0].Index
	m.ensureSelectedVisible()
	m.status = fmt.Sprintf("jumped to %s", m.slots[m.selected].Label())
}

// ensureSelectedVisible nudges the scroll offset so the selected slot's year
// column is fully inside the viewport.
func (m *Model) ensureSelectedVisible() {
	slot, ok := m.selectedSlot()
	if !ok || len(m.years) == 0 || m.width <= 0 {
		return
	}
	col := slot.Year - m.years[0].Year
	x0 := float64(col * colWidth)
	x1 := x0 + colWidth
	offset := m.scroller.Offset()
	view := m.viewportWidth()

	if x0 < -offset {
		m.pos = m.scroller.JumpBy(-x0 - offset)
	} else if x1 > -offset+view {
		m.pos = m.scroller.JumpBy(view - x1 - offset)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
