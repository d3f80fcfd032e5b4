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
package commander

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/aymanbagabas/go-udiff/myers"

	"github.com/timburks/linedit/editor"
	"github.com/timburks/linedit/external"
	linedit "github.com/timburks/linedit/types"
)

// Result kinds
const (
	ResultStatus = 0
	ResultQuit   = 1
	ResultHelp   = 2
)

// A Result is the outcome of a command. Quit and help results are
// requests for the caller; status results carry a message to display.
type Result struct {
	Kind    int
	Message string
	Failed  bool // the message reports a problem
}

func status(format string, args ...any) Result {
	return Result{Kind: ResultStatus, Message: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) Result {
	return Result{Kind: ResultStatus, Message: fmt.Sprintf(format, args...), Failed: true}
}

// The Commander converts colon commands into calls on the Editor.
type Commander struct {
	editor   *editor.Editor
	external linedit.ExternalEditor
}

func NewCommander(e *editor.Editor, x linedit.ExternalEditor) *Commander {
	return &Commander{editor: e, external: x}
}

// SetExternalEditor replaces the editor used by the edit command.
func (c *Commander) SetExternalEditor(x linedit.ExternalEditor) {
	c.external = x
}

func (c *Commander) ExternalEditor() linedit.ExternalEditor {
	return c.external
}

// Perform runs one command line, given without its leading colon.
func (c *Commander) Perform(text string) Result {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return Result{}
	}
	switch command := strings.ToLower(parts[0]); command {
	case "j", "jump":
		return c.jump(parts)
	case "s", "search":
		return c.search(parts)
	case "n", "next":
		return c.next()
	case "sel", "select":
		return c.toggleSelect(parts)
	case "copy":
		return c.copySelected()
	case "e", "edit":
		return c.edit(parts)
	case "q", "quit":
		return Result{Kind: ResultQuit}
	case "h", "help":
		return Result{Kind: ResultHelp}
	default:
		return failure("unknown command: %s", command)
	}
}

func (c *Commander) jump(parts []string) Result {
	if len(parts) < 2 {
		return failure("Usage: :jump <line_number>")
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return failure("Line number must be integer")
	}
	if err := c.editor.JumpToLine(n); err != nil {
		return failure("Invalid line number")
	}
	return status("Jumped to line %d", n)
}

func (c *Commander) search(parts []string) Result {
	if len(parts) < 2 {
		return failure("Usage: :search <term>")
	}
	term := strings.Join(parts[1:], " ")
	if count := c.editor.Search(term); count > 0 {
		return status("Found %d matches", count)
	}
	return status("No matches found")
}

func (c *Commander) next() Result {
	current, total, err := c.editor.NextMatch()
	if err != nil {
		return failure("No search active")
	}
	return status("Match %d/%d", current+1, total)
}

func (c *Commander) toggleSelect(parts []string) Result {
	if len(parts) < 2 {
		return failure("Usage: :select <line_number>")
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return failure("Line number must be integer")
	}
	if err := c.editor.ToggleSelect(n); err != nil {
		return failure("Invalid line number")
	}
	return status("Toggled line %d", n)
}

func (c *Commander) copySelected() Result {
	count, err := c.editor.CopySelected()
	if err != nil {
		return status("No lines selected")
	}
	return status("Copied %d line(s)", count)
}

// edit hands the file to the external editor at a line, the cursor line
// by default, and rereads it afterwards. An editor that ran is followed
// by a reload whatever its exit status.
func (c *Commander) edit(parts []string) Result {
	line := c.editor.GetCursor().Row + 1
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
			line = n
		}
	}
	if c.external == nil {
		return failure("Failed to open editor")
	}
	before := c.editor.Bytes()
	err := c.external.Edit(c.editor.FileName(), line)
	var exitErr *external.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		log.Printf("edit %s: %v", c.editor.FileName(), err)
		return failure("Failed to open editor")
	}
	if err := c.editor.Reload(); err != nil {
		log.Printf("%v", err)
		return failure("File edited - reload failed")
	}
	return status("File edited - reloaded%s", changeSummary(before, c.editor.Bytes()))
}

// changeSummary counts the lines added and removed between two versions
// of the document, or returns "" if nothing changed. The edits are
// computed line by line, so a changed line counts once each way.
func changeSummary(before, after []byte) string {
	from := string(before) + "\n"
	added, removed := 0, 0
	for _, edit := range myers.ComputeEdits(from, string(after)+"\n") {
		removed += strings.Count(from[edit.Start:edit.End], "\n")
		added += strings.Count(edit.New, "\n")
	}
	if added == 0 && removed == 0 {
		return ""
	}
	return fmt.Sprintf(" (+%d -%d)", added, removed)
}
