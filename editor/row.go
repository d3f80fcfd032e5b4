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
	"strings"
)

// A row of text in the document
type Row struct {
	Text []rune
}

// NewRow drops the carriage return left by CRLF files. Tabs are kept so
// that copies and the saved text match the file.
func NewRow(text string) *Row {
	return &Row{Text: []rune(strings.TrimSuffix(text, "\r"))}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// inserts c before col; a col past the end appends
func (r *Row) InsertChar(col int, c rune) {
	if col > len(r.Text) {
		col = len(r.Text)
	}
	if col < 0 {
		col = 0
	}
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	c := r.Text[col]
	r.Text = append(r.Text[:col:col], r.Text[col+1:]...)
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col >= len(r.Text) {
		return &Row{Text: []rune{}}
	}
	after := make([]rune, len(r.Text)-col)
	copy(after, r.Text[col:])
	r.Text = r.Text[:col:col]
	return &Row{Text: after}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.Text = append(r.Text, other.Text...)
}
