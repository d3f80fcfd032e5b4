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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// A Buffer holds the lines of the document being edited.
// It always contains at least one row.
type Buffer struct {
	fileName string
	rows     []*Row
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

func (b *Buffer) FileName() string {
	return b.fileName
}

// ReadFile loads path into the buffer. A missing file gives an empty
// document. Any other failure leaves a single placeholder row describing
// the error, and the error is returned so the caller can log it.
func (b *Buffer) ReadFile(path string) error {
	b.fileName = path
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		b.rows = []*Row{NewRow("")}
		return nil
	}
	if err != nil {
		b.rows = []*Row{NewRow(fmt.Sprintf("Error reading file: %v", err))}
		return err
	}
	b.LoadBytes(data)
	return nil
}

// Reload rereads the file from disk. On any failure, including a file
// that no longer exists, the rows are left untouched.
func (b *Buffer) Reload() error {
	data, err := os.ReadFile(b.fileName)
	if err != nil {
		return fmt.Errorf("reload %s: %w", b.fileName, err)
	}
	b.LoadBytes(data)
	return nil
}

func (b *Buffer) LoadBytes(bytes []byte) {
	s := strings.TrimSuffix(string(bytes), "\n")
	b.rows = make([]*Row, 0)
	if s == "" {
		b.rows = append(b.rows, NewRow(""))
		return
	}
	for _, line := range strings.Split(s, "\n") {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Bytes() []byte {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return []byte(strings.Join(lines, "\n"))
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	text := b.rows[row].Text
	if col >= len(text) {
		return ""
	}
	if col < 0 {
		col = 0
	}
	return string(text[col:])
}

func (b *Buffer) Line(i int) string {
	return b.TextAfter(i, 0)
}

func (b *Buffer) insertRow(at int, row *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
}

func (b *Buffer) deleteRow(at int) {
	if len(b.rows) <= 1 || at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
}
