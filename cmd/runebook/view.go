package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/storyforge/runebook/internal/input/event"
)

// echoView renders the most recent events as a scrolling list. It
// subscribes at high priority and never consumes, so it observes the
// full stream including whatever the quit handler or a script consumes
// afterwards.
type echoView struct {
	screen tcell.Screen

	mu    sync.Mutex
	lines []string
	count int
	size  string
}

func newEchoView(sc tcell.Screen) *echoView {
	w, h := sc.Size()
	return &echoView{
		screen: sc,
		size:   fmt.Sprintf("%dx%d", w, h),
	}
}

// HandleInput records the event for the next draw.
func (v *echoView) HandleInput(ev event.Event) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.count++
	if rs, ok := ev.(event.ResizeEvent); ok {
		v.size = fmt.Sprintf("%dx%d", rs.Width, rs.Height)
	}
	v.lines = append(v.lines, fmt.Sprintf("%4d  %s", v.count, ev))

	// Keep a bounded backlog; the draw pass trims to the viewport.
	const backlog = 256
	if len(v.lines) > backlog {
		v.lines = v.lines[len(v.lines)-backlog:]
	}
	return false
}

// draw repaints the whole view. Called once per frame.
func (v *echoView) draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	width, height := v.screen.Size()
	v.screen.Clear()

	title := tcell.StyleDefault.Bold(true)
	drawString(v.screen, 0, 0, title, "runebook event stream")
	drawString(v.screen, 0, 1, tcell.StyleDefault,
		fmt.Sprintf("viewport %s, %d events", v.size, v.count))

	// Most recent events fill the space between header and footer.
	top, bottom := 3, height-2
	rows := bottom - top
	if rows > 0 {
		start := 0
		if len(v.lines) > rows {
			start = len(v.lines) - rows
		}
		for i, line := range v.lines[start:] {
			drawString(v.screen, 0, top+i, tcell.StyleDefault, truncate(line, width))
		}
	}

	footer := tcell.StyleDefault.Reverse(true)
	drawString(v.screen, 0, height-1, footer, pad("Ctrl+Q to quit", width))

	v.screen.Show()
}

// drawString writes s starting at cell x, y, advancing by display width
// so wide runes occupy their two cells.
func drawString(sc tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		sc.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// truncate cuts s to fit width display cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// pad extends s with spaces to width display cells.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
