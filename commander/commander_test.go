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
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timburks/linedit/editor"
	"github.com/timburks/linedit/external"
	linedit "github.com/timburks/linedit/types"
)

// fakeEditor rewrites the file it is asked to edit.
type fakeEditor struct {
	text  string
	err   error
	path  string
	line  int
	calls int
}

func (f *fakeEditor) Edit(path string, line int) error {
	f.calls++
	f.path = path
	f.line = line
	if f.text != "" {
		if err := os.WriteFile(path, []byte(f.text), 0644); err != nil {
			return err
		}
	}
	return f.err
}

func setup(t *testing.T, text string, x linedit.ExternalEditor) (*Commander, *editor.Editor) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	e := editor.NewEditor()
	if err := e.ReadFile(path); err != nil {
		t.Fatal(err)
	}
	return NewCommander(e, x), e
}

const fiveLines = "one\ntwo\nthree\nfour\nfive\n"

func TestJump(t *testing.T) {
	c, e := setup(t, fiveLines, nil)
	r := c.Perform("jump 3")
	if r.Failed || r.Message != "Jumped to line 3" {
		t.Errorf("Unexpected result: %+v", r)
	}
	if e.GetCursor() != (linedit.Point{Row: 2, Col: 0}) {
		t.Errorf("Cursor at %+v", e.GetCursor())
	}

	r = c.Perform("j 99")
	if !r.Failed || r.Message != "Invalid line number" {
		t.Errorf("Unexpected result: %+v", r)
	}
	if e.GetCursor() != (linedit.Point{Row: 2, Col: 0}) {
		t.Errorf("Cursor moved to %+v", e.GetCursor())
	}

	for command, message := range map[string]string{
		"jump":     "Usage: :jump <line_number>",
		"jump x":   "Line number must be integer",
		"jump 0":   "Invalid line number",
		"JUMP 2.5": "Line number must be integer",
	} {
		if r := c.Perform(command); !r.Failed || r.Message != message {
			t.Errorf("%q returned %+v, want %q", command, r, message)
		}
	}
}

func TestSearchAndNext(t *testing.T) {
	c, e := setup(t, "alpha\nbeta\nAlphabet\ngamma\n", nil)
	if r := c.Perform("next"); !r.Failed || r.Message != "No search active" {
		t.Errorf("next before search returned %+v", r)
	}
	if r := c.Perform("search ALPHA"); r.Message != "Found 2 matches" {
		t.Errorf("search returned %+v", r)
	}
	if e.GetCursor().Row != 0 {
		t.Errorf("search left cursor on row %d", e.GetCursor().Row)
	}
	if r := c.Perform("n"); r.Message != "Match 2/2" || e.GetCursor().Row != 2 {
		t.Errorf("next returned %+v with cursor on row %d", r, e.GetCursor().Row)
	}
	if r := c.Perform("n"); r.Message != "Match 1/2" || e.GetCursor().Row != 0 {
		t.Errorf("next returned %+v with cursor on row %d", r, e.GetCursor().Row)
	}
	if r := c.Perform("s delta"); r.Message != "No matches found" {
		t.Errorf("search returned %+v", r)
	}
	if r := c.Perform("search"); !r.Failed || r.Message != "Usage: :search <term>" {
		t.Errorf("search without term returned %+v", r)
	}
}

func TestSelectAndCopy(t *testing.T) {
	c, e := setup(t, fiveLines, nil)
	if r := c.Perform("copy"); r.Message != "No lines selected" {
		t.Errorf("copy returned %+v", r)
	}
	if r := c.Perform("select 4"); r.Message != "Toggled line 4" {
		t.Errorf("select returned %+v", r)
	}
	c.Perform("sel 2")
	if r := c.Perform("copy"); r.Message != "Copied 2 line(s)" {
		t.Errorf("copy returned %+v", r)
	}
	if text := e.ClipboardText(); text != "two\nfour" {
		t.Errorf("Clipboard holds %q", text)
	}
	for command, message := range map[string]string{
		"select":    "Usage: :select <line_number>",
		"select 6":  "Invalid line number",
		"select no": "Line number must be integer",
	} {
		if r := c.Perform(command); !r.Failed || r.Message != message {
			t.Errorf("%q returned %+v, want %q", command, r, message)
		}
	}
}

func TestRequests(t *testing.T) {
	c, _ := setup(t, fiveLines, nil)
	for command, kind := range map[string]int{
		"q":    ResultQuit,
		"quit": ResultQuit,
		"h":    ResultHelp,
		"help": ResultHelp,
		"":     ResultStatus,
		"   ":  ResultStatus,
	} {
		if r := c.Perform(command); r.Kind != kind {
			t.Errorf("%q returned %+v", command, r)
		}
	}
	if r := c.Perform("  "); r.Message != "" || r.Failed {
		t.Errorf("Empty command returned %+v", r)
	}
	if r := c.Perform("Frobnicate now"); !r.Failed || r.Message != "unknown command: frobnicate" {
		t.Errorf("Unknown command returned %+v", r)
	}
}

func TestEditReloads(t *testing.T) {
	fake := &fakeEditor{text: "one\n2\nthree\nfour\nfive\nsix\n"}
	c, e := setup(t, fiveLines, fake)
	c.Perform("select 1")
	c.Perform("search o")
	e.SetCursor(linedit.Point{Row: 3, Col: 2})

	r := c.Perform("edit")
	if r.Failed || r.Message != "File edited - reloaded (+2 -1)" {
		t.Errorf("edit returned %+v", r)
	}
	if fake.line != 4 || fake.path != e.FileName() {
		t.Errorf("Editor opened %s at line %d", fake.path, fake.line)
	}
	if e.LineCount() != 6 || e.Line(1) != "2" {
		t.Errorf("Document was not reloaded: %q", e.Lines())
	}
	if e.SelectedCount() != 0 || e.SearchTerm() != "" {
		t.Errorf("Reload kept selection or search")
	}

	c.Perform("e 2")
	if fake.line != 2 {
		t.Errorf("edit 2 opened line %d", fake.line)
	}
}

func TestEditWithoutChanges(t *testing.T) {
	fake := &fakeEditor{}
	c, _ := setup(t, fiveLines, fake)
	if r := c.Perform("edit"); r.Message != "File edited - reloaded" {
		t.Errorf("edit returned %+v", r)
	}
}

func TestEditFailures(t *testing.T) {
	fake := &fakeEditor{err: external.ErrNoEditor}
	c, e := setup(t, fiveLines, fake)
	e.SetCursor(linedit.Point{Row: 1, Col: 1})
	if r := c.Perform("edit"); !r.Failed || r.Message != "Failed to open editor" {
		t.Errorf("edit returned %+v", r)
	}
	if e.GetCursor() != (linedit.Point{Row: 1, Col: 1}) || e.LineCount() != 5 {
		t.Errorf("Failed edit changed the document")
	}

	c.SetExternalEditor(nil)
	if r := c.Perform("edit"); !r.Failed || r.Message != "Failed to open editor" {
		t.Errorf("edit without an editor returned %+v", r)
	}
}

func TestEditAfterEditorError(t *testing.T) {
	cmd := exec.Command("/bin/sh", "-c", "exit 1")
	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Skip("cannot produce an exit status")
	}
	fake := &fakeEditor{text: "changed\n", err: &external.ExitError{Editor: "fake", Err: exitErr}}
	c, e := setup(t, fiveLines, fake)
	r := c.Perform("edit")
	if !strings.HasPrefix(r.Message, "File edited - reloaded") {
		t.Errorf("edit returned %+v", r)
	}
	if e.LineCount() != 1 || e.Line(0) != "changed" {
		t.Errorf("Document was not reloaded: %q", e.Lines())
	}
}

func TestChangeSummary(t *testing.T) {
	if s := changeSummary([]byte("a\nb"), []byte("a\nb")); s != "" {
		t.Errorf("Identical documents summarized as %q", s)
	}
	if s := changeSummary([]byte("a\nb"), []byte("a\n---\nb")); s != " (+1 -0)" {
		t.Errorf("Insertion summarized as %q", s)
	}
	// a replaced line counts once each way
	after := "one\n2\nthree\nfour\nfive\nsix\n"
	if s := changeSummary([]byte(fiveLines), []byte(after)); s != " (+2 -1)" {
		t.Errorf("Replacement summarized as %q", s)
	}
}
