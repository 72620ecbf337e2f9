package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

const defaultLogViewMaxLines = 500

// LogView shows a node's log lines in the detail panel: a bubbles viewport
// with auto-scroll tracking, a line cap, and a 1-column scrollbar.
type LogView struct {
	viewport   viewport.Model
	autoScroll bool // true = follow new lines at the bottom
	lines      []string
	maxLines   int
	width      int // total width including scrollbar
	height     int
}

// NewLogView creates a LogView with the given dimensions. maxLines caps the
// retained lines (0 uses the default). One column is reserved for the
// scrollbar.
func NewLogView(width, height, maxLines int) LogView {
	if maxLines <= 0 {
		maxLines = defaultLogViewMaxLines
	}

	contentWidth := width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	vp := viewport.New(contentWidth, height)
	vp.SetContent("")

	return LogView{
		viewport:   vp,
		autoScroll: true,
		maxLines:   maxLines,
		width:      width,
		height:     height,
	}
}

// SetSize updates the dimensions. Width includes the scrollbar column.
func (l *LogView) SetSize(width, height int) {
	if l.width == width && l.height == height {
		return
	}
	l.width = width
	l.height = height

	contentWidth := width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}
	l.viewport.Width = contentWidth
	l.viewport.Height = height
	l.viewport.SetContent(strings.Join(l.lines, "\n"))

	if l.autoScroll {
		l.viewport.GotoBottom()
	} else {
		l.viewport.SetYOffset(l.viewport.YOffset)
	}
}

// SetLines replaces the shown lines, keeping only the newest maxLines. When
// auto-scroll is on the view follows the bottom; otherwise the current
// offset is preserved and clamped.
func (l *LogView) SetLines(lines []string) {
	if len(lines) > l.maxLines {
		lines = lines[len(lines)-l.maxLines:]
	}
	l.lines = make([]string, len(lines))
	copy(l.lines, lines)

	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	if l.autoScroll {
		l.viewport.GotoBottom()
	} else {
		l.viewport.SetYOffset(l.viewport.YOffset)
	}
}

// Update handles scroll keys. Scrolling up pauses auto-scroll; returning to
// the bottom re-enables it.
func (l LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "pgup":
			l.autoScroll = false
		case "down", "pgdown":
			if l.viewport.AtBottom() {
				l.autoScroll = true
			}
		case "end":
			l.autoScroll = true
		case "home":
			l.autoScroll = false
		}
	}

	return l, cmd
}

// View renders the log lines with the scrollbar gutter on the right.
func (l LogView) View() string {
	contentLines := strings.Split(l.viewport.View(), "\n")
	bar := l.scrollbar()

	contentWidth := l.width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	var b strings.Builder
	for i := 0; i < l.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		b.WriteString(cl)
		if pad := contentWidth - runewidth.StringWidth(cl); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i < len(bar) {
			b.WriteString(bar[i])
		}
	}
	return b.String()
}

// scrollbar returns one gutter cell per row. The track is hidden until the
// content overflows the viewport.
func (l LogView) scrollbar() []string {
	out := make([]string, l.height)
	if l.height <= 0 {
		return out
	}

	if len(l.lines) <= l.height {
		for i := range out {
			out[i] = " "
		}
		return out
	}

	thumbSize := l.height * l.height / len(l.lines)
	if thumbSize < 1 {
		thumbSize = 1
	}
	maxYOffset := len(l.lines) - l.height
	thumbMaxTop := l.height - thumbSize

	thumbTop := 0
	if maxYOffset > 0 {
		thumbTop = l.viewport.YOffset * thumbMaxTop / maxYOffset
	}
	if thumbTop > thumbMaxTop {
		thumbTop = thumbMaxTop
	}
	if thumbTop < 0 {
		thumbTop = 0
	}

	for i := range out {
		if i >= thumbTop && i < thumbTop+thumbSize {
			out[i] = "█"
		} else {
			out[i] = "│"
		}
	}
	return out
}
