// Package layout chooses between the desktop and mobile navigation
// compositions based on the viewport width.
package layout

// Composition is a navigation layout family.
type Composition int

const (
	// Mobile stacks content above a bottom tab bar.
	Mobile Composition = iota
	// Desktop places a sidebar next to the content.
	Desktop
)

func (c Composition) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// DesktopBreakpoint is the smallest logical width that gets the desktop layout.
const DesktopBreakpoint = 900

// DefaultCellWidth is the number of logical units one terminal column spans.
const DefaultCellWidth = 8

// Select picks the composition for a logical width. There is no hysteresis.
func Select(width int) Composition {
	return selectAt(width, DesktopBreakpoint)
}

func selectAt(width, breakpoint int) Composition {
	if width >= breakpoint {
		return Desktop
	}
	return Mobile
}

// Selector tracks the active composition for a stream of terminal sizes.
type Selector struct {
	breakpoint int
	cellWidth  int

	current  Composition
	observed bool
}

// NewSelector creates a Selector. Non-positive arguments use the defaults.
func NewSelector(breakpoint, cellWidth int) *Selector {
	if breakpoint <= 0 {
		breakpoint = DesktopBreakpoint
	}
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return &Selector{breakpoint: breakpoint, cellWidth: cellWidth}
}

// Breakpoint returns the logical desktop breakpoint.
func (s *Selector) Breakpoint() int {
	return s.breakpoint
}

// LogicalWidth converts terminal columns to logical units.
func (s *Selector) LogicalWidth(columns int) int {
	if columns < 0 {
		return 0
	}
	return columns * s.cellWidth
}

// MinDesktopColumns is the narrowest terminal that gets the desktop layout.
func (s *Selector) MinDesktopColumns() int {
	return (s.breakpoint + s.cellWidth - 1) / s.cellWidth
}

// Compose picks the composition for a logical width.
func (s *Selector) Compose(width int) Composition {
	return selectAt(width, s.breakpoint)
}

// Observe records a new terminal width in columns and reports the resulting
// composition, and whether it differs from the previous observation. The
// first observation always counts as a change.
func (s *Selector) Observe(columns int) (Composition, bool) {
	next := s.Compose(s.LogicalWidth(columns))
	changed := !s.observed || next != s.current
	s.current = next
	s.observed = true
	return next, changed
}

// Current returns the last observed composition, if any.
func (s *Selector) Current() (Composition, bool) {
	return s.current, s.observed
}
