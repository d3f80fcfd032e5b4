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
package editor

import (
	"log"

	linedit "github.com/timburks/linedit/types"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Buffer    *Buffer            // document being edited
	cursor    linedit.Point      // cursor position
	selected  map[int]bool       // selected row indices
	clipboard []string           // rows captured by the last copy
	mirror    func(string) error // optional copy of the clipboard to the system
	search    searchState        // last search and its matches
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.selected = make(map[int]bool)
	e.search.reset()
	return e
}

// ReadFile loads path. The editor is always usable afterwards; see Buffer.ReadFile.
func (e *Editor) ReadFile(path string) error {
	err := e.Buffer.ReadFile(path)
	e.cursor = linedit.Point{}
	e.selected = make(map[int]bool)
	e.search.reset()
	return err
}

// Reload rereads the document from disk. Selection and search state
// describe the old contents, so both are dropped. On failure nothing changes.
func (e *Editor) Reload() error {
	if err := e.Buffer.Reload(); err != nil {
		return err
	}
	e.selected = make(map[int]bool)
	e.search.reset()
	e.clampCursor()
	return nil
}

func (e *Editor) FileName() string {
	return e.Buffer.FileName()
}

func (e *Editor) GetCursor() linedit.Point {
	return e.cursor
}

func (e *Editor) SetCursor(cursor linedit.Point) {
	e.cursor = cursor
	e.clampCursor()
}

func (e *Editor) LineCount() int {
	return e.Buffer.GetRowCount()
}

func (e *Editor) Line(i int) string {
	return e.Buffer.Line(i)
}

func (e *Editor) Lines() []string {
	lines := make([]string, e.Buffer.GetRowCount())
	for i := range lines {
		lines[i] = e.Buffer.Line(i)
	}
	return lines
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// SetClipboardMirror installs a function that receives every copy,
// joined with newlines. Mirror failures are logged and otherwise ignored.
func (e *Editor) SetClipboardMirror(mirror func(string) error) {
	e.mirror = mirror
}

func (e *Editor) clampCursor() {
	rows := e.Buffer.GetRowCount()
	if e.cursor.Row >= rows {
		e.cursor.Row = rows - 1
	}
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	length := e.Buffer.GetRowLength(e.cursor.Row)
	if e.cursor.Col > length {
		e.cursor.Col = length
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case linedit.MoveLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			// wrap to the end of the previous line
			e.cursor.Row--
			e.cursor.Col = e.Buffer.GetRowLength(e.cursor.Row)
		}
	case linedit.MoveRight:
		if e.cursor.Col < e.Buffer.GetRowLength(e.cursor.Row) {
			e.cursor.Col++
		} else if e.cursor.Row < e.Buffer.GetRowCount()-1 {
			// wrap to the start of the next line
			e.cursor.Row++
			e.cursor.Col = 0
		}
	case linedit.MoveUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
	case linedit.MoveDown:
		if e.cursor.Row < e.Buffer.GetRowCount()-1 {
			e.cursor.Row++
		}
	}
	e.clampCursor()
}

func (e *Editor) MoveToBeginningOfLine() {
	e.cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.cursor.Col = e.Buffer.GetRowLength(e.cursor.Row)
}

func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.SplitLine()
		return
	}
	e.Buffer.rows[e.cursor.Row].InsertChar(e.cursor.Col, c)
	e.cursor.Col++
}

// SplitLine breaks the current row at the cursor and moves to the start
// of the new row.
func (e *Editor) SplitLine() {
	newRow := e.Buffer.rows[e.cursor.Row].Split(e.cursor.Col)
	e.Buffer.insertRow(e.cursor.Row+1, newRow)
	e.renumber(rowInserted(e.cursor.Row + 1))
	e.cursor.Row++
	e.cursor.Col = 0
}

// BackspaceChar deletes the character before the cursor, joining with the
// previous row at the start of a line. It returns the deleted character,
// '\n' for a join, or 0 when nothing changed.
func (e *Editor) BackspaceChar() rune {
	if e.cursor.Col > 0 {
		c := e.Buffer.rows[e.cursor.Row].DeleteChar(e.cursor.Col - 1)
		e.cursor.Col--
		return c
	}
	if e.cursor.Row == 0 {
		return 0
	}
	// remove the current row and join it with the previous one
	previous := e.Buffer.rows[e.cursor.Row-1]
	col := previous.Length()
	previous.Join(e.Buffer.rows[e.cursor.Row])
	e.Buffer.deleteRow(e.cursor.Row)
	e.renumber(rowDeleted(e.cursor.Row))
	e.cursor.Row--
	e.cursor.Col = col
	return '\n'
}

// A rowMove maps a row index from before an edit to after it. The
// second result is false for a row that no longer exists.
type rowMove func(row int) (int, bool)

func rowInserted(at int) rowMove {
	return func(row int) (int, bool) {
		if row >= at {
			return row + 1, true
		}
		return row, true
	}
}

func rowDeleted(at int) rowMove {
	return func(row int) (int, bool) {
		switch {
		case row == at:
			return 0, false
		case row > at:
			return row - 1, true
		default:
			return row, true
		}
	}
}

// renumber keeps the selection and search matches on the rows they were
// made on after rows are inserted or deleted.
func (e *Editor) renumber(move rowMove) {
	selected := make(map[int]bool, len(e.selected))
	for row := range e.selected {
		if r, ok := move(row); ok {
			selected[r] = true
		}
	}
	e.selected = selected
	e.search.renumber(move)
}

// JumpToLine moves to the start of the 1-based line n.
func (e *Editor) JumpToLine(n int) error {
	if n < 1 || n > e.Buffer.GetRowCount() {
		return ErrInvalidLine
	}
	e.cursor = linedit.Point{Row: n - 1, Col: 0}
	return nil
}

// CopySelected replaces the clipboard with the selected rows in document
// order and returns how many were copied. The selection is kept.
func (e *Editor) CopySelected() (int, error) {
	rows := e.SelectedRows()
	if len(rows) == 0 {
		return 0, ErrNothingSelected
	}
	clipboard := make([]string, len(rows))
	for i, row := range rows {
		clipboard[i] = e.Buffer.Line(row)
	}
	e.clipboard = clipboard
	if e.mirror != nil {
		if err := e.mirror(e.ClipboardText()); err != nil {
			log.Printf("clipboard mirror: %v", err)
		}
	}
	return len(clipboard), nil
}

func (e *Editor) Clipboard() []string {
	return append([]string(nil), e.clipboard...)
}

func (e *Editor) ClipboardText() string {
	text := ""
	for i, line := range e.clipboard {
		if i > 0 {
			text += "\n"
		}
		text += line
	}
	return text
}
