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
package session

import (
	linedit "github.com/timburks/linedit/types"
)

// suspending hands the terminal to an external editor for the length of
// one edit. The session is Suspended until the editor exits.
type suspending struct {
	session *Session
	editor  linedit.ExternalEditor
}

func (x *suspending) Edit(path string, line int) error {
	s := x.session
	s.mode = linedit.Suspended{}
	defer func() {
		s.mode = linedit.Normal{}
		s.decoder.Reset()
		s.dirty = true
	}()
	// a failed release is not retried
	s.held = false
	if err := s.terminal.Release(); err != nil {
		s.fail(err)
		return err
	}
	err := x.editor.Edit(path, line)
	if aerr := s.terminal.Acquire(); aerr != nil {
		s.fail(aerr)
		return err
	}
	s.held = true
	return err
}
