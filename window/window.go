//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package window

import (
	"fmt"
	"path/filepath"

	"github.com/mattn/go-runewidth"

	linedit "github.com/timburks/linedit/types"
)

// CommandHint is shown in the footer when there is nothing else to say.
const CommandHint = "Commands: :jump <n> :select <n> :copy :search <term> :edit [line] :quit | Arrow keys: navigate"

// Footer kinds
const (
	FooterHint   = 0
	FooterPrompt = 1
	FooterStatus = 2
	FooterError  = 3
)

// A Status is a transient message from the last command.
type Status struct {
	Message string
	Failed  bool
}

// The Header describes the document and the cursor position.
type Header struct {
	Title    string // file base name
	Position string // "Line x/y"
	Selected string // "N selected", empty without a selection
	Search   string // "Search: term", empty without a search
}

type Footer struct {
	Kind int
	Text string
}

// A Frame is everything a backend needs to draw one screen.
type Frame struct {
	Size     linedit.Size
	Mode     linedit.Mode
	Header   Header
	Viewport Viewport
	Footer   Footer
	Top      int           // screen row of the first viewport line
	Bottom   int           // rows reserved below the viewport
	Cursor   linedit.Point // screen position of the terminal cursor
}

// MoreText describes the lines below the viewport, or is empty.
func (f Frame) MoreText() string {
	if f.Viewport.Remaining <= 0 {
		return ""
	}
	return fmt.Sprintf("... %d more lines", f.Viewport.Remaining)
}

// The Window reserves header and footer rows around the viewport.
type Window struct {
	HeaderRows int
	FooterRows int
}

func NewWindow(headerRows, footerRows int) *Window {
	return &Window{HeaderRows: headerRows, FooterRows: footerRows}
}

// Margin is the number of rows not available to document lines.
func (w *Window) Margin() int {
	return w.HeaderRows + w.FooterRows
}

// Layout composes the frame for a document in a mode.
func (w *Window) Layout(doc Document, mode linedit.Mode, status Status, size linedit.Size) Frame {
	f := Frame{
		Size:     size,
		Mode:     mode,
		Viewport: Compute(doc, size, w.Margin()),
		Top:      w.HeaderRows,
		Bottom:   w.FooterRows,
	}
	cursor := doc.GetCursor()
	f.Header = Header{
		Title:    filepath.Base(doc.FileName()),
		Position: fmt.Sprintf("Line %d/%d", cursor.Row+1, doc.LineCount()),
	}
	if n := doc.SelectedCount(); n > 0 {
		f.Header.Selected = fmt.Sprintf("%d selected", n)
	}
	if term := doc.SearchTerm(); term != "" {
		f.Header.Search = "Search: " + term
	}

	switch m := mode.(type) {
	case linedit.CommandEntry:
		f.Footer = Footer{Kind: FooterPrompt, Text: ":" + m.Buffer}
		f.Cursor = linedit.Point{
			Row: size.Rows - 1,
			Col: min(runewidth.StringWidth(f.Footer.Text), max(0, size.Cols-1)),
		}
		return f
	case linedit.Normal, linedit.Suspended:
		switch {
		case status.Message != "" && status.Failed:
			f.Footer = Footer{Kind: FooterError, Text: status.Message}
		case status.Message != "":
			f.Footer = Footer{Kind: FooterStatus, Text: status.Message}
		default:
			f.Footer = Footer{Kind: FooterHint, Text: CommandHint}
		}
	}
	f.Cursor = linedit.Point{
		Row: f.Top + cursor.Row - f.Viewport.Start,
		Col: f.Viewport.TextOffset(),
	}
	for _, line := range f.Viewport.Lines {
		if line.Decoration == linedit.DecorationCursor {
			f.Cursor.Col += line.CursorCol
		}
	}
	return f
}
