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

// current is -1 whenever matches is empty.
type searchState struct {
	term    string
	matches []int
	isMatch map[int]bool
	current int
}

func (s *searchState) reset() {
	s.term = ""
	s.matches = nil
	s.isMatch = nil
	s.current = -1
}

// renumber moves the matches with their rows. When the current match's row
// is gone, the previous surviving match becomes current, so the next
// advance lands on the match that followed it.
func (s *searchState) renumber(move rowMove) {
	if len(s.matches) == 0 {
		return
	}
	matches := make([]int, 0, len(s.matches))
	isMatch := make(map[int]bool, len(s.matches))
	current := -1
	for i, row := range s.matches {
		if r, ok := move(row); ok {
			matches = append(matches, r)
			isMatch[r] = true
		}
		if i == s.current {
			current = len(matches) - 1
		}
	}
	if len(matches) == 0 {
		s.reset()
		return
	}
	if current < 0 {
		current = len(matches) - 1
	}
	s.matches, s.isMatch, s.current = matches, isMatch, current
}

// Search finds every row containing term, ignoring case, and moves the
// cursor to the first one. It returns the number of matching rows.
// A search without matches clears any previous search.
func (e *Editor) Search(term string) int {
	needle := strings.ToLower(term)
	matches := make([]int, 0)
	isMatch := make(map[int]bool)
	for i, row := range e.Buffer.rows {
		if strings.Contains(strings.ToLower(row.String()), needle) {
			matches = append(matches, i)
			isMatch[i] = true
		}
	}
	if len(matches) == 0 {
		e.search.reset()
		return 0
	}
	e.search = searchState{term: term, matches: matches, isMatch: isMatch, current: 0}
	e.cursor.Row = matches[0]
	e.clampCursor()
	return len(matches)
}

// NextMatch advances cyclically to the next matching row and returns the
// zero-based index of that match and the number of matches.
func (e *Editor) NextMatch() (int, int, error) {
	if len(e.search.matches) == 0 {
		return 0, 0, ErrNoSearch
	}
	e.search.current = (e.search.current + 1) % len(e.search.matches)
	e.cursor.Row = e.search.matches[e.search.current]
	e.clampCursor()
	return e.search.current, len(e.search.matches), nil
}

// SearchTerm is empty when no search is active.
func (e *Editor) SearchTerm() string {
	return e.search.term
}

func (e *Editor) IsMatch(row int) bool {
	return e.search.isMatch[row]
}

func (e *Editor) Matches() []int {
	return append([]int(nil), e.search.matches...)
}

// CurrentMatch is -1 when no search is active.
func (e *Editor) CurrentMatch() int {
	return e.search.current
}
