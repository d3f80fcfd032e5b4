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

// Package screen draws frames on a terminal and reads raw input from it.
// Two backends are available: ANSI writes escape sequences directly and
// Termbox uses termbox-go.
package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"

	linedit "github.com/timburks/linedit/types"
	"github.com/timburks/linedit/window"
)

// Segment styles
const (
	styleText = iota
	styleTitle
	styleRule
	styleCursorLine
	styleCursorCell
	styleSelected
	styleSelectedLabel
	styleMatch
	styleMatchLabel
	styleMarker
	styleMore
	styleStatus
	styleError
	styleHint
	stylePrompt
)

type segment struct {
	text  string
	style int
}

// A row is one screen line made of styled segments.
type row []segment

func (r row) String() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.text)
	}
	return b.String()
}

// compose lays out a frame as one row per screen line.
func compose(f window.Frame) []row {
	rows := make([]row, max(0, f.Size.Rows))
	set := func(i int, r row) {
		if i >= 0 && i < len(rows) {
			rows[i] = r
		}
	}
	if f.Top >= 1 {
		set(0, header(f.Header))
	}
	if f.Top >= 2 {
		set(1, rule(f.Size.Cols))
	}
	for i, line := range f.Viewport.Lines {
		set(f.Top+i, textLine(line))
	}
	last := len(rows) - 1
	if more := f.MoreText(); more != "" && f.Bottom >= 3 {
		set(f.Top+len(f.Viewport.Lines), row{{more, styleMore}})
	}
	if f.Bottom >= 2 {
		set(last-1, rule(f.Size.Cols))
	}
	if f.Bottom >= 1 {
		set(last, footer(f.Footer))
	}
	return rows
}

func header(h window.Header) row {
	r := row{
		{"linedit", styleTitle},
		{" - " + h.Title + " | " + h.Position, styleText},
	}
	if h.Selected != "" {
		r = append(r, segment{" | ", styleText}, segment{h.Selected, styleSelectedLabel})
	}
	if h.Search != "" {
		r = append(r, segment{" | ", styleText}, segment{h.Search, styleMatchLabel})
	}
	return r
}

func rule(cols int) row {
	return row{{strings.Repeat("=", max(0, cols)), styleRule}}
}

func footer(f window.Footer) row {
	switch f.Kind {
	case window.FooterPrompt:
		return row{{f.Text, stylePrompt}}
	case window.FooterStatus:
		return row{{f.Text, styleStatus}}
	case window.FooterError:
		return row{{f.Text, styleError}}
	default:
		return row{{f.Text, styleHint}}
	}
}

func textLine(line window.Line) row {
	var r row
	switch line.Decoration {
	case linedit.DecorationCursor:
		before, at, after := splitAtCell(line.Text, line.CursorCol)
		r = row{
			{"> " + line.Number, styleCursorLine},
			{" | ", styleText},
			{before, styleCursorLine},
			{at, styleCursorCell},
			{after, styleCursorLine},
		}
	case linedit.DecorationSelected:
		r = row{{"  " + line.Number, styleSelectedLabel}, {" | ", styleText}, {nonEmpty(line.Text), styleSelected}}
	case linedit.DecorationMatch:
		r = row{{"  " + line.Number, styleText}, {" | ", styleText}, {nonEmpty(line.Text), styleMatch}}
	default:
		r = row{{"  " + line.Number, styleText}, {" | ", styleText}, {line.Text, styleText}}
	}
	if line.Truncated {
		r = append(r, segment{">", styleMarker})
	}
	return r
}

// splitAtCell splits text around the rune that starts at a display cell.
// A cell past the end of the text is drawn as a space.
func splitAtCell(text string, cell int) (string, string, string) {
	width := 0
	for i, ch := range text {
		if width >= cell {
			return text[:i], string(ch), text[i+len(string(ch)):]
		}
		width += runewidth.RuneWidth(ch)
	}
	return text, " ", ""
}

func nonEmpty(text string) string {
	if text == "" {
		return " "
	}
	return text
}
