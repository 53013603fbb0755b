package timeline

import "math"

// Position is the result of a scroll operation: the clamped offset plus the
// edge flags the UI uses to disable its arrow buttons. When the content fits
// the viewport both flags are true at once.
type Position struct {
	Offset      float64
	AtLeftEdge  bool
	AtRightEdge bool
}

// Scroller owns the horizontal offset of the card strip. The offset is always
// kept within [min(0, viewport-content), 0]; it only moves through the three
// operations below, which all re-derive the bounds from the current widths
// before clamping. One Scroller belongs to one timeline instance.
type Scroller struct {
	offset        float64
	contentWidth  float64
	viewportWidth float64
}

// Offset returns the current clamped offset.
func (s *Scroller) Offset() float64 {
	return s.offset
}

// SetGeometry records new content/viewport widths and reclamps the offset in
// place. The offset is preserved where still valid, not reset, so a window
// resize keeps the user roughly where they were.
func (s *Scroller) SetGeometry(contentWidth, viewportWidth float64) Position {
	s.contentWidth = contentWidth
	s.viewportWidth = viewportWidth
	return s.clamp(s.offset)
}

// JumpBy shifts the offset by delta and clamps. Positive delta moves the
// content right, exposing earlier slots.
func (s *Scroller) JumpBy(delta float64) Position {
	return s.clamp(s.offset + delta)
}

// DragTo positions the offset at baseline+pointerDelta and clamps. The
// baseline is the offset captured at gesture start, not the live offset, so
// every move event of one drag is computed against the same snapshot and
// clamping feedback cannot accumulate into drift.
func (s *Scroller) DragTo(pointerDelta, baselineOffset float64) Position {
	return s.clamp(baselineOffset + pointerDelta)
}

func (s *Scroller) clamp(offset float64) Position {
	min := math.Min(0, s.viewportWidth-s.contentWidth)
	if offset > 0 {
		offset = 0
	}
	if offset < min {
		offset = min
	}
	s.offset = offset
	return Position{
		Offset:      offset,
		AtLeftEdge:  offset == 0,
		AtRightEdge: offset == min,
	}
}
