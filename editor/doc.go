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

// Package editor implements the line buffer of linedit.
// A Buffer holds the rows of a single document; the Editor adds a
// cursor, a set of selected rows, a clipboard of copied rows and the
// results of the last search. The editor never writes the document to
// disk; changes made elsewhere are picked up with Reload.
package editor
