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

import "errors"

var (
	// ErrInvalidLine is returned for a 1-based line number outside the document.
	ErrInvalidLine = errors.New("invalid line number")
	// ErrNothingSelected is returned when copying with an empty selection.
	ErrNothingSelected = errors.New("no lines selected")
	// ErrNoSearch is returned by NextMatch when no search has matches.
	ErrNoSearch = errors.New("no search active")
)
