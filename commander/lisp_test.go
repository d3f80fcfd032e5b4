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
	"os"
	"path/filepath"
	"testing"
)

func TestParseEval(t *testing.T) {
	c, e := setup(t, fiveLines, nil)
	if value, err := c.ParseEval("(line-count)"); err != nil || value != "5" {
		t.Errorf("(line-count) = %q, %v", value, err)
	}
	if value, err := c.ParseEval("(jump 4)"); err != nil || value != "4" {
		t.Errorf("(jump 4) = %q, %v", value, err)
	}
	if e.GetCursor().Row != 3 {
		t.Errorf("Cursor on row %d after (jump 4)", e.GetCursor().Row)
	}
	if value, err := c.ParseEval("(line 2)"); err != nil || value != "two" {
		t.Errorf("(line 2) = %q, %v", value, err)
	}
	if value, err := c.ParseEval(`(command "search f")`); err != nil || value != "Found 2 matches" {
		t.Errorf("(command) = %q, %v", value, err)
	}
	if _, err := c.ParseEval("(jump 12)"); err == nil {
		t.Errorf("(jump 12) succeeded")
	}
	if _, err := c.ParseEval(`(command "jump 12")`); err == nil {
		t.Errorf("Failed command did not report an error")
	}
}

func TestParseEvalFile(t *testing.T) {
	c, e := setup(t, fiveLines, nil)
	script := filepath.Join(t.TempDir(), "select.lisp")
	source := "(toggle-select 1)\n(toggle-select 3)\n(copy-selected)\n"
	if err := os.WriteFile(script, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	value, err := c.ParseEvalFile(script)
	if err != nil || value != "2" {
		t.Errorf("ParseEvalFile = %q, %v", value, err)
	}
	if text := e.ClipboardText(); text != "one\nthree" {
		t.Errorf("Clipboard holds %q", text)
	}
	if _, err := c.ParseEvalFile(filepath.Join(t.TempDir(), "missing.lisp")); err == nil {
		t.Errorf("Missing script did not fail")
	}
}
