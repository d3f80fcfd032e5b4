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

// Package window decides which part of a document is visible and how
// each visible line is decorated. It does no terminal output.
package window

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	linedit "github.com/timburks/linedit/types"
)

// A Document is the state a window shows.
type Document interface {
	FileName() string
	LineCount() int
	Line(i int) string
	GetCursor() linedit.Point
	IsSelected(row int) bool
	IsMatch(row int) bool
	SelectedCount() int
	SearchTerm() string
}

// Line gutter layout: a two-cell cursor marker, the number, and " | ".
const (
	markerWidth    = 2
	separatorWidth = 3
	minNumberWidth = 4
	tabWidth       = 8
)

// A Line is one visible document line.
type Line struct {
	Row        int    // zero-based document row
	Number     string // one-based line number, right-aligned
	Text       string // display text, clipped to the available width
	Truncated  bool
	Decoration linedit.Decoration
	CursorCol  int // display cell of the cursor on the cursor line
}

// A Viewport is the visible window [Start, End) of a document.
type Viewport struct {
	Start         int
	End           int
	NumberWidth   int
	MaxLineLength int
	Lines         []Line
	Remaining     int // lines below End
}

// TextOffset is the screen column where line text begins.
func (v Viewport) TextOffset() int {
	return markerWidth + v.NumberWidth + separatorWidth
}

// Compute centers a window of size.Rows-margin lines on the cursor.
func Compute(doc Document, size linedit.Size, margin int) Viewport {
	lineCount := doc.LineCount()
	cursor := doc.GetCursor()
	windowSize := max(1, size.Rows-margin)

	var v Viewport
	v.Start = max(0, cursor.Row-windowSize/2)
	v.End = min(lineCount, v.Start+windowSize)
	v.NumberWidth = max(minNumberWidth, len(strconv.Itoa(lineCount)))
	v.MaxLineLength = max(1, size.Cols-v.NumberWidth-6)
	v.Remaining = lineCount - v.End

	v.Lines = make([]Line, 0, v.End-v.Start)
	for i := v.Start; i < v.End; i++ {
		text := doc.Line(i)
		display := expandTabs(text)
		line := Line{
			Row:        i,
			Number:     padLeft(strconv.Itoa(i+1), v.NumberWidth),
			Text:       display,
			Decoration: decoration(doc, i, cursor.Row),
		}
		if runewidth.StringWidth(display) > v.MaxLineLength {
			line.Text = runewidth.Truncate(display, v.MaxLineLength, "")
			line.Truncated = true
		}
		if i == cursor.Row {
			line.CursorCol = min(cursorCell(text, cursor.Col), v.MaxLineLength)
		}
		v.Lines = append(v.Lines, line)
	}
	return v
}

// decoration applies cursor over selection over search match.
func decoration(doc Document, row int, cursorRow int) linedit.Decoration {
	switch {
	case row == cursorRow:
		return linedit.DecorationCursor
	case doc.IsSelected(row):
		return linedit.DecorationSelected
	case doc.IsMatch(row):
		return linedit.DecorationMatch
	default:
		return linedit.DecorationNone
	}
}

// expandTabs replaces each tab with tabWidth spaces for display.
func expandTabs(text string) string {
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
}

// cursorCell converts a rune column of the document text into a display
// cell of its expanded form.
func cursorCell(text string, col int) int {
	runes := []rune(text)
	if col > len(runes) {
		col = len(runes)
	}
	return runewidth.StringWidth(expandTabs(string(runes[:col])))
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}
