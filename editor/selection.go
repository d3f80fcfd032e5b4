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
	"sort"
)

// ToggleSelect flips the selection of the 1-based line n.
func (e *Editor) ToggleSelect(n int) error {
	if n < 1 || n > e.Buffer.GetRowCount() {
		return ErrInvalidLine
	}
	row := n - 1
	if e.selected[row] {
		delete(e.selected, row)
	} else {
		e.selected[row] = true
	}
	return nil
}

func (e *Editor) IsSelected(row int) bool {
	return e.selected[row]
}

func (e *Editor) SelectedCount() int {
	return len(e.selected)
}

// SelectedRows returns the selected row indices in ascending order.
func (e *Editor) SelectedRows() []int {
	rows := make([]int, 0, len(e.selected))
	for row := range e.selected {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}
