// Package render paints blend engine output into terminal cells.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/softglow/glowcat/blend"
)

// blockRune fills a cell completely so the foreground color is the
// only thing visible.
const blockRune = '█'

// Status carries the state shown on the bottom line
type Status struct {
	Mode     string
	Scene    string
	Pattern  string
	Theme    string
	Progress float64
	FPS      float64
	Paused   bool
}

// Painter draws blend engine colors onto a tcell screen, with an
// optional status line on the bottom row.
type Painter struct {
	screen        tcell.Screen
	width, height int
	showStatus    bool
}

// NewPainter wraps an initialized screen
func NewPainter(screen tcell.Screen) *Painter {
	width, height := screen.Size()
	return &Painter{
		screen:     screen,
		width:      width,
		height:     height,
		showStatus: true,
	}
}

// SetShowStatus toggles the bottom status line
func (p *Painter) SetShowStatus(show bool) {
	p.showStatus = show
}

// ShowStatus reports whether the status line is drawn
func (p *Painter) ShowStatus() bool {
	return p.showStatus
}

// Resize records new screen dimensions. The pattern area is everything
// above the status line.
func (p *Painter) Resize(width, height int) {
	p.width = width
	p.height = height
}

// PatternSize returns the dimensions of the pattern drawing area
func (p *Painter) PatternSize() (int, int) {
	h := p.height
	if p.showStatus && h > 1 {
		h--
	}
	return p.width, h
}

// Frame draws one full frame and flushes it to the terminal
func (p *Painter) Frame(engine *blend.Engine, status Status) {
	_, patternHeight := p.PatternSize()

	for y := 0; y < patternHeight; y++ {
		for x := 0; x < p.width; x++ {
			c := engine.ColorAt(x, y)
			r, g, b := c.RGB255()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			p.screen.SetContent(x, y, blockRune, nil, style)
		}
	}

	if p.showStatus && p.height > 1 {
		p.drawStatus(status)
	}

	p.screen.Show()
}

// drawStatus renders the bottom line, truncated to the screen width
func (p *Painter) drawStatus(status Status) {
	line := statusLine(status, p.width)
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack)

	y := p.height - 1
	x := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if x+w > p.width {
			break
		}
		p.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	for ; x < p.width; x++ {
		p.screen.SetContent(x, y, ' ', nil, style)
	}
}

// statusLine formats the status text and clips it to width cells
func statusLine(status Status, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, " %s", status.Mode)
	if status.Scene != "" {
		fmt.Fprintf(&b, " | %s", status.Scene)
	}
	fmt.Fprintf(&b, " | %s/%s", status.Pattern, status.Theme)
	if status.Mode != "off" {
		fmt.Fprintf(&b, " %s", progressBar(status.Progress, 10))
	}
	if status.Paused {
		b.WriteString(" | paused")
	} else if status.FPS > 0 {
		fmt.Fprintf(&b, " | %.0f fps", status.FPS)
	}

	return runewidth.Truncate(b.String(), width, "")
}

// progressBar renders scene progress as a fixed-width bar
func progressBar(progress float64, cells int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(cells))
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < cells; i++ {
		if i < filled {
			b.WriteRune('=')
		} else {
			b.WriteRune('-')
		}
	}
	b.WriteByte(']')
	return b.String()
}
