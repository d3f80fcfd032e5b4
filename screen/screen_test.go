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
package screen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	linedit "github.com/timburks/linedit/types"
	"github.com/timburks/linedit/window"
)

func frame() window.Frame {
	return window.Frame{
		Size: linedit.Size{Rows: 8, Cols: 30},
		Mode: linedit.Normal{},
		Header: window.Header{
			Title:    "doc.txt",
			Position: "Line 2/9",
			Selected: "1 selected",
		},
		Viewport: window.Viewport{
			Start:         0,
			End:           3,
			NumberWidth:   4,
			MaxLineLength: 20,
			Remaining:     6,
			Lines: []window.Line{
				{Row: 0, Number: "   1", Text: "first", Decoration: linedit.DecorationSelected},
				{Row: 1, Number: "   2", Text: "second", Decoration: linedit.DecorationCursor, CursorCol: 2},
				{Row: 2, Number: "   3", Text: strings.Repeat("x", 20), Truncated: true},
			},
		},
		Footer: window.Footer{Kind: window.FooterStatus, Text: "Jumped to line 2"},
		Top:    2,
		Bottom: 3,
		Cursor: linedit.Point{Row: 3, Col: 11},
	}
}

func TestCompose(t *testing.T) {
	rows := compose(frame())
	expected := []string{
		"linedit - doc.txt | Line 2/9 | 1 selected",
		strings.Repeat("=", 30),
		"     1 | first",
		">    2 | second",
		"     3 | " + strings.Repeat("x", 20) + ">",
		"... 6 more lines",
		strings.Repeat("=", 30),
		"Jumped to line 2",
	}
	if len(rows) != len(expected) {
		t.Fatalf("Composed %d rows, expected %d", len(rows), len(expected))
	}
	for i, r := range rows {
		if r.String() != expected[i] {
			t.Errorf("Row %d is %q, expected %q", i, r.String(), expected[i])
		}
	}
	cursorRow := rows[3]
	if cursorRow[3].text != "c" || cursorRow[3].style != styleCursorCell {
		t.Errorf("Cursor cell is %+v", cursorRow[3])
	}
}

func TestSplitAtCell(t *testing.T) {
	for _, test := range []struct {
		text              string
		cell              int
		before, at, after string
	}{
		{"hello", 0, "", "h", "ello"},
		{"hello", 4, "hell", "o", ""},
		{"hello", 5, "hello", " ", ""},
		{"", 0, "", " ", ""},
		{"日本", 2, "日", "本", ""},
	} {
		before, at, after := splitAtCell(test.text, test.cell)
		if before != test.before || at != test.at || after != test.after {
			t.Errorf("splitAtCell(%q, %d) = %q %q %q", test.text, test.cell, before, at, after)
		}
	}
}

func TestANSIDraw(t *testing.T) {
	SetColorProfile("ascii")
	var out bytes.Buffer
	a := NewANSI(nil, &out, DefaultTheme())
	if err := a.Draw(frame()); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	if !strings.HasPrefix(text, clearScreen) {
		t.Errorf("Draw did not clear the screen: %q", text)
	}
	if !strings.HasSuffix(text, "\x1b[4;12H") {
		t.Errorf("Draw did not place the cursor: %q", text)
	}
	lines := strings.Split(ansi.Strip(strings.TrimPrefix(text, clearScreen)), "\r\n")
	if len(lines) != 8 {
		t.Fatalf("Draw wrote %d lines", len(lines))
	}
	if lines[0] != "linedit - doc.txt | Line 2/9 |" {
		t.Errorf("Header not truncated to the screen width: %q", lines[0])
	}
	if lines[3] != ">    2 | second" {
		t.Errorf("Cursor line drawn as %q", lines[3])
	}
}

func TestColorProfile(t *testing.T) {
	for name, profile := range map[string]termenv.Profile{
		"ascii":     termenv.Ascii,
		"ANSI":      termenv.ANSI,
		"ansi256":   termenv.ANSI256,
		"truecolor": termenv.TrueColor,
	} {
		if p := ColorProfile(name); p != profile {
			t.Errorf("ColorProfile(%s) = %v", name, p)
		}
	}
}
