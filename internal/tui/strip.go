package tui

import (
	"math"
	"strings"
)

// pageStrip is the reader's horizontally scrolling surface. Offsets are in
// the same units as the pager's page width. Animated scrolls advance one
// frame per stripFrameMsg; only the settled offset is reported to the pager.
type pageStrip struct {
	offset     float64
	pageWidth  float64
	pages      int
	overscroll float64

	from      float64
	target    float64
	frame     int
	animating bool
	seq       int
	scheduled bool
}

func newPageStrip(pages int, pageWidth float64) *pageStrip {
	return &pageStrip{pages: pages, pageWidth: pageWidth, overscroll: pageWidth / 4}
}

// ScrollTo implements reader.Surface.
func (s *pageStrip) ScrollTo(x float64, animated bool) {
	s.seq++
	if !animated {
		s.offset = x
		s.animating = false
		s.scheduled = false
		return
	}
	s.from = s.offset
	s.target = x
	s.frame = 0
	s.animating = true
	s.scheduled = false
}

// step advances an animation by one frame. It returns false when the frame
// is stale or nothing is animating.
func (s *pageStrip) step(seq int) bool {
	if seq != s.seq || !s.animating {
		return false
	}
	s.frame++
	progress := float64(s.frame) / stripFrames
	if progress >= 1 {
		s.offset = s.target
		s.animating = false
		return true
	}
	eased := 1 - math.Pow(1-progress, 3)
	s.offset = s.from + (s.target-s.from)*eased
	return true
}

// drag moves the strip directly, as a finger or wheel would, cancelling any
// animation.
func (s *pageStrip) drag(delta float64) {
	s.dragTo(s.offset + delta)
}

func (s *pageStrip) dragTo(x float64) {
	s.seq++
	s.animating = false
	s.scheduled = false
	lo := -s.overscroll
	hi := float64(s.pages-1)*s.pageWidth + s.overscroll
	s.offset = math.Max(lo, math.Min(hi, x))
}

// nearest is the page whose origin is closest to the offset.
func (s *pageStrip) nearest() int {
	if s.pageWidth <= 0 {
		return 0
	}
	idx := int(math.Round(s.offset / s.pageWidth))
	if idx < 0 {
		return 0
	}
	if idx > s.pages-1 {
		return s.pages - 1
	}
	return idx
}

func (s *pageStrip) resize(pageWidth float64) {
	if pageWidth <= 0 {
		return
	}
	if s.pageWidth > 0 {
		s.offset = s.offset / s.pageWidth * pageWidth
		s.target = s.target / s.pageWidth * pageWidth
		s.from = s.from / s.pageWidth * pageWidth
	}
	s.pageWidth = pageWidth
	s.overscroll = pageWidth / 4
}

// renderStripWindow shows columns [shift, shift+width) of the pages laid
// side by side. Each page is a block of plain text lines.
func renderStripWindow(pages [][]string, offset, pageWidth float64, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", width)
	pageAt := func(idx, line int) []rune {
		if idx < 0 || idx >= len(pages) || line >= len(pages[idx]) {
			return []rune(blank)
		}
		return padRunes([]rune(pages[idx][line]), width)
	}

	left := 0
	shift := 0
	if pageWidth > 0 {
		position := offset / pageWidth * float64(width)
		left = int(math.Floor(position / float64(width)))
		shift = int(math.Round(position - float64(left*width)))
		if shift >= width {
			left++
			shift = 0
		}
	}

	lines := make([]string, height)
	for y := 0; y < height; y++ {
		row := append(pageAt(left, y), pageAt(left+1, y)...)
		lines[y] = string(row[shift : shift+width])
	}
	return strings.Join(lines, "\n")
}

func padRunes(r []rune, width int) []rune {
	if len(r) >= width {
		return r[:width]
	}
	padded := make([]rune, width)
	copy(padded, r)
	for i := len(r); i < width; i++ {
		padded[i] = ' '
	}
	return padded
}
