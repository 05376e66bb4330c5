package reader

import "math"

const (
	DefaultFontSize = 16
	MinFontSize     = 12
	fontSizeStep    = 2
)

// Display holds the reader's font size, theme and settings panel state.
type Display struct {
	fontSize     int
	dark         bool
	settingsOpen bool
}

// NewDisplay returns display settings starting at fontSize, raised to
// MinFontSize if needed.
func NewDisplay(fontSize int, dark bool) *Display {
	if fontSize < MinFontSize {
		fontSize = MinFontSize
	}
	return &Display{fontSize: fontSize, dark: dark}
}

func (d *Display) IncreaseFontSize() { d.fontSize += fontSizeStep }

func (d *Display) DecreaseFontSize() {
	d.fontSize -= fontSizeStep
	if d.fontSize < MinFontSize {
		d.fontSize = MinFontSize
	}
}

func (d *Display) ToggleDarkMode() { d.dark = !d.dark }
func (d *Display) OpenSettings()   { d.settingsOpen = true }
func (d *Display) CloseSettings()  { d.settingsOpen = false }

func (d *Display) FontSize() int      { return d.fontSize }
func (d *Display) Dark() bool         { return d.dark }
func (d *Display) SettingsOpen() bool { return d.settingsOpen }

// Percent is the font size relative to the default, as shown in settings.
func (d *Display) Percent() int {
	return int(math.Round(float64(d.fontSize) / DefaultFontSize * 100))
}
