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
package types

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A Point is a position in a document. Row and Col are zero-based.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Decoration marks how a visible line should be drawn.
// Only one decoration applies to a line; the highest one wins.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationMatch
	DecorationSelected
	DecorationCursor
)

// An ExternalEditor is a full-screen editor process that edits a file
// on disk. Edit blocks until the process exits.
type ExternalEditor interface {
	Edit(path string, line int) error
}
