// Package reader holds the state of one open story: which page is showing,
// whether it is being read aloud, and how it is displayed.
package reader

import "math"

// Surface is the horizontally paged view the pager drives.
type Surface interface {
	ScrollTo(x float64, animated bool)
}

// Canceler stops narration. Explicit page turns cancel it.
type Canceler interface {
	Cancel()
}

// Pager owns the current page index of a fixed page sequence. Index changes
// come from button presses (Next, Previous) and from the surface reporting
// its scroll offset (ScrollChanged). The last write wins.
type Pager struct {
	count     int
	index     int
	pageWidth float64
	surface   Surface
	narration Canceler
}

// NewPager returns a pager positioned on the first of count pages.
func NewPager(count int, pageWidth float64, surface Surface, narration Canceler) *Pager {
	if count < 1 {
		count = 1
	}
	return &Pager{count: count, pageWidth: pageWidth, surface: surface, narration: narration}
}

// Next moves to the following page. On the last page it does nothing.
func (p *Pager) Next() bool {
	if p.index >= p.count-1 {
		return false
	}
	p.turnTo(p.index + 1)
	return true
}

// Previous moves to the preceding page. On the first page it does nothing.
func (p *Pager) Previous() bool {
	if p.index <= 0 {
		return false
	}
	p.turnTo(p.index - 1)
	return true
}

func (p *Pager) turnTo(index int) {
	p.index = index
	if p.surface != nil {
		p.surface.ScrollTo(float64(index)*p.pageWidth, true)
	}
	if p.narration != nil {
		p.narration.Cancel()
	}
}

// ScrollChanged adopts the page nearest to offset. Narration keeps playing.
func (p *Pager) ScrollChanged(offset float64) bool {
	if p.pageWidth <= 0 {
		return false
	}
	candidate := int(math.Round(offset / p.pageWidth))
	if candidate < 0 {
		candidate = 0
	}
	if candidate > p.count-1 {
		candidate = p.count - 1
	}
	if candidate == p.index {
		return false
	}
	p.index = candidate
	return true
}

// SetPageWidth updates the surface width and re-aligns the surface to the
// current page without animation.
func (p *Pager) SetPageWidth(width float64) {
	if width <= 0 || width == p.pageWidth {
		return
	}
	p.pageWidth = width
	if p.surface != nil {
		p.surface.ScrollTo(float64(p.index)*p.pageWidth, false)
	}
}

func (p *Pager) Index() int         { return p.index }
func (p *Pager) Count() int         { return p.count }
func (p *Pager) PageWidth() float64 { return p.pageWidth }
func (p *Pager) IsFirst() bool      { return p.index == 0 }
func (p *Pager) IsLast() bool       { return p.index == p.count-1 }
