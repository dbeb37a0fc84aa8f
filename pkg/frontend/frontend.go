package frontend

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell"
	"github.com/mortenson/solvedmap/pkg/backend"
	"github.com/mortenson/solvedmap/pkg/pathfind"
	"github.com/rivo/tview"
)

const (
	backgroundColor = tcell.Color234
	textColor       = tcell.ColorWhite
)

// colorFor returns the tview color name used for a glyph.
func colorFor(symbol rune) string {
	switch symbol {
	case backend.GlyphStart:
		return "green"
	case backend.GlyphTarget:
		return "red"
	case backend.GlyphEmpty:
		return "gray"
	case pathfind.GlyphRoute:
		return "aqua"
	}
	return "yellow"
}

// Colorize converts a grid into tview color-tagged text. Consecutive cells
// of the same color share one tag. A '[' glyph is always followed by a tag so
// tview never reads it, or a later ']', as markup.
func Colorize(grid *backend.Grid) string {
	var sb strings.Builder
	for _, row := range grid.Cells {
		current := ""
		for _, symbol := range row {
			color := colorFor(symbol)
			if color != current {
				fmt.Fprintf(&sb, "[%s]", color)
				current = color
			}
			sb.WriteRune(symbol)
			if symbol == '[' {
				current = ""
			}
		}
		sb.WriteString("[-]\n")
	}
	return sb.String()
}

// View renders a solved map and waits for the user to quit.
type View struct {
	App  *tview.Application
	Text *tview.TextView
}

// NewView constructs a new View for grid.
func NewView(grid *backend.Grid, title string) *View {
	app := tview.NewApplication()
	text := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetText(Colorize(grid))
	text.SetBorder(true).
		SetTitle(fmt.Sprintf("%s %v..%v", title, grid.TopLeft, grid.BottomRight)).
		SetBackgroundColor(backgroundColor)
	text.SetTextColor(textColor)
	app.SetInputCapture(func(e *tcell.EventKey) *tcell.EventKey {
		if e.Key() == tcell.KeyEscape || e.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return e
	})
	app.SetRoot(text, true).SetFocus(text)
	return &View{App: app, Text: text}
}

// Start runs the view until the user quits.
func (view *View) Start() error {
	return view.App.Run()
}
