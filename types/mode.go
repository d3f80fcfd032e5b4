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

// A Mode gates how input is interpreted. Exactly one mode is active at a
// time. The set of modes is closed: Normal, CommandEntry and Suspended.
type Mode interface {
	mode()
	Name() string
}

// Normal mode edits the document directly.
type Normal struct{}

// CommandEntry mode accumulates a colon command in Buffer.
type CommandEntry struct {
	Buffer string
}

// Suspended mode is active while an external editor owns the terminal.
type Suspended struct{}

func (Normal) mode()       {}
func (CommandEntry) mode() {}
func (Suspended) mode()    {}

func (Normal) Name() string       { return "normal" }
func (CommandEntry) Name() string { return "command" }
func (Suspended) Name() string    { return "suspended" }
