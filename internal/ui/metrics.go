// Package ui provides layout and input utilities shared by the view tree and
// the application loop.
package ui

// Reference sizes in pixels at BaseDPI. Every fixed band on screen is
// derived from these through Scale so that layouts keep their physical
// size across panels of different density.
const (
	BaseDPI = 300

	SmallBarHeight  = 121.0
	BigBarHeight    = 163.0
	FaveRowHeight   = 103.0
	ThicknessMedium = 2.0
)

// Scale converts a reference length to pixels for a panel of the given
// density. Fractions are truncated.
func Scale(length float64, dpi int) int {
	return int(length * float64(dpi) / BaseDPI)
}

// Metrics holds the DPI-scaled band heights used by containers to carve
// their rectangle into fixed chrome, anchor and overlays.
type Metrics struct {
	dpi       int
	smallBar  int
	bigBar    int
	thickness int
	faveRow   int
}

// NewMetrics computes the metrics for a panel of the given density.
func NewMetrics(dpi int) Metrics {
	return Metrics{
		dpi:       dpi,
		smallBar:  Scale(SmallBarHeight, dpi),
		bigBar:    Scale(BigBarHeight, dpi),
		thickness: Scale(ThicknessMedium, dpi),
		faveRow:   Scale(FaveRowHeight, dpi),
	}
}

// DPI returns the density the metrics were computed for.
func (m Metrics) DPI() int { return m.dpi }

// SmallBar returns the height of a small bar (top bar, search bar, bottom
// bar) including its separator.
func (m Metrics) SmallBar() int { return m.smallBar }

// BigBar returns the height of a big bar (menu entries, keyboard rows,
// listing rows).
func (m Metrics) BigBar() int { return m.bigBar }

// FaveRow returns the height of a favorite row on the home screen.
func (m Metrics) FaveRow() int { return m.faveRow }

// Thickness returns the separator line thickness.
func (m Metrics) Thickness() int { return m.thickness }

// ThicknessHalves splits the separator thickness so that a line can
// straddle a band boundary.
func (m Metrics) ThicknessHalves() (small, big int) {
	small = m.thickness / 2
	big = m.thickness - small
	return
}

// TopBarHeight is the height of a top bar band: the bar plus the lower
// half of its separator.
func (m Metrics) TopBarHeight() int {
	_, big := m.ThicknessHalves()
	return m.smallBar + big
}

// BottomBarHeight is the height reserved at the bottom of a container for
// the bottom separator and bar.
func (m Metrics) BottomBarHeight() int {
	small, _ := m.ThicknessHalves()
	return m.smallBar + small
}

// SearchBand is the height a search overlay takes from the anchor: one
// separator plus the search bar.
func (m Metrics) SearchBand() int { return m.smallBar }

// KeyboardBand is the height a keyboard overlay takes from the anchor: one
// separator plus three big rows and one small row of keys.
func (m Metrics) KeyboardBand() int { return m.smallBar + 3*m.bigBar }

// RowsForHeight returns how many big rows fit in h when rows are separated
// by a separator line.
func (m Metrics) RowsForHeight(h int) int {
	if m.bigBar == 0 || h <= 0 {
		return 0
	}
	return (h + m.thickness) / m.bigBar
}
