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
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	linedit "github.com/timburks/linedit/types"
	"github.com/timburks/linedit/window"
)

// Termbox draws with termbox-go and reads its raw input events.
type Termbox struct {
	theme  Theme
	active bool
	buffer []byte

	poll      func([]byte) termbox.Event
	interrupt func()
}

func NewTermbox(theme Theme) *Termbox {
	return &Termbox{
		theme:     theme,
		buffer:    make([]byte, 256),
		poll:      termbox.PollRawEvent,
		interrupt: termbox.Interrupt,
	}
}

func (t *Termbox) Acquire() error {
	if t.active {
		return nil
	}
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	t.active = true
	return nil
}

func (t *Termbox) Release() error {
	if !t.active {
		return nil
	}
	t.active = false
	termbox.Close()
	return nil
}

func (t *Termbox) Size() linedit.Size {
	cols, rows := termbox.Size()
	if cols <= 0 || rows <= 0 {
		return fallbackSize
	}
	return linedit.Size{Rows: rows, Cols: cols}
}

// Read waits up to timeout for raw input. A timer interrupts the poll.
// An interrupt can outlive the Read that scheduled it, when input wins the
// race against the timer, so only an interrupt from this Read's own timer
// ends it without input.
func (t *Termbox) Read(timeout time.Duration) ([]byte, error) {
	var expired atomic.Bool
	timer := time.AfterFunc(timeout, func() {
		expired.Store(true)
		t.interrupt()
	})
	defer timer.Stop()
	for {
		event := t.poll(t.buffer)
		switch event.Type {
		case termbox.EventRaw:
			return append([]byte(nil), t.buffer[:event.N]...), nil
		case termbox.EventError:
			return nil, event.Err
		case termbox.EventInterrupt:
			if expired.Load() {
				return nil, nil
			}
		}
		// resizes are picked up by the next redraw
	}
}

// color converts a palette index to a termbox attribute in 256 color mode.
func color(c string, fallback termbox.Attribute) termbox.Attribute {
	n, err := strconv.Atoi(c)
	if err != nil || n < 0 || n > 255 {
		return fallback
	}
	return termbox.Attribute(n + 1)
}

func (t *Termbox) attributes(style int) (termbox.Attribute, termbox.Attribute) {
	fg, bg := termbox.ColorDefault, termbox.ColorDefault
	black := termbox.Attribute(1)
	gray := termbox.Attribute(9)
	switch style {
	case styleTitle, stylePrompt:
		fg = color(t.theme.Title, fg) | termbox.AttrBold
	case styleRule:
		fg |= termbox.AttrBold
	case styleCursorLine:
		fg = color(t.theme.Cursor, fg) | termbox.AttrBold
	case styleCursorCell:
		fg |= termbox.AttrReverse
	case styleSelected:
		fg, bg = black, color(t.theme.Selected, bg)
	case styleSelectedLabel:
		fg = color(t.theme.Selected, fg) | termbox.AttrBold
	case styleMatch:
		fg, bg = black, color(t.theme.Match, bg)
	case styleMatchLabel:
		fg = color(t.theme.Match, fg)
	case styleMarker, styleMore, styleHint:
		fg = gray
	case styleStatus:
		fg = color(t.theme.Status, fg)
	case styleError:
		fg = color(t.theme.Error, fg) | termbox.AttrBold
	}
	return fg, bg
}

func (t *Termbox) drawText(x, y, cols int, text string, fg, bg termbox.Attribute) int {
	for _, ch := range text {
		if x >= cols {
			break
		}
		termbox.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (t *Termbox) Draw(f window.Frame) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for y, r := range compose(f) {
		x := 0
		for _, s := range r {
			fg, bg := t.attributes(s.style)
			x = t.drawText(x, y, f.Size.Cols, s.text, fg, bg)
		}
	}
	termbox.SetCursor(f.Cursor.Col, f.Cursor.Row)
	return termbox.Flush()
}

func (t *Termbox) ShowHelp(text string) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	cols, _ := termbox.Size()
	for y, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		t.drawText(0, y, cols, line, termbox.ColorDefault, termbox.ColorDefault)
	}
	termbox.HideCursor()
	return termbox.Flush()
}
