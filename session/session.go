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

// Package session runs the interactive loop: it reads raw input from a
// terminal, applies key events to the editor or the command line, and
// redraws.
package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/MakeNowJust/heredoc"

	"github.com/timburks/linedit/commander"
	"github.com/timburks/linedit/editor"
	"github.com/timburks/linedit/input"
	linedit "github.com/timburks/linedit/types"
	"github.com/timburks/linedit/window"
)

// ErrTerminal wraps failures to read, draw or change terminal modes.
var ErrTerminal = errors.New("terminal error")

// DefaultPollInterval is how long a read waits before an idle poll.
const DefaultPollInterval = 10 * time.Millisecond

// HelpText is shown by the help command.
var HelpText = heredoc.Doc(`
	Editor Commands

	Navigation:
	  Arrow keys              - Move cursor
	  Home, End               - Move to start or end of line
	  :jump <n>, :j <n>       - Jump to line n
	  :search <term>, :s      - Search for term
	  :next, :n               - Next search match

	Selection:
	  :select <n>, :sel <n>   - Toggle select line n
	  :copy                   - Copy selected lines

	Editing:
	  :edit, :e               - Open in vim/nano at cursor line
	  :edit <n>               - Open in vim/nano at line n

	Quit:
	  :quit, :q               - Quit editor
	  q, Ctrl-C               - Quit editor

	Press any key to continue...
`)

// A Terminal is a raw-mode input source and a frame display.
type Terminal interface {
	Acquire() error
	Release() error
	Size() linedit.Size
	// Read waits up to timeout and returns nothing if no input arrived.
	Read(timeout time.Duration) ([]byte, error)
	Draw(frame window.Frame) error
	ShowHelp(text string) error
}

// The Session owns the interaction mode.
type Session struct {
	terminal  Terminal
	editor    *editor.Editor
	commander *commander.Commander
	window    *window.Window
	decoder   *input.Decoder
	interval  time.Duration

	mode   linedit.Mode
	status window.Status
	help   bool // the help screen is up until the next key
	held   bool // the terminal is acquired
	done   bool
	dirty  bool
	size   linedit.Size
	err    error // terminal failure that ended the loop
}

func NewSession(t Terminal, e *editor.Editor, c *commander.Commander, w *window.Window, interval time.Duration) *Session {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	s := &Session{
		terminal:  t,
		editor:    e,
		commander: c,
		window:    w,
		decoder:   input.NewDecoder(),
		interval:  interval,
		mode:      linedit.Normal{},
		dirty:     true,
	}
	if x := c.ExternalEditor(); x != nil {
		c.SetExternalEditor(&suspending{session: s, editor: x})
	}
	return s
}

func (s *Session) Mode() linedit.Mode {
	return s.mode
}

func (s *Session) Status() window.Status {
	return s.status
}

// Done reports whether the loop has been asked to end.
func (s *Session) Done() bool {
	return s.done
}

// Run holds the terminal in raw mode until the user quits. A held
// terminal is released exactly once on every path out, including panics.
func (s *Session) Run() (err error) {
	if err := s.terminal.Acquire(); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminal, err)
	}
	s.held = true
	defer func() {
		if !s.held {
			return
		}
		s.held = false
		if rerr := s.terminal.Release(); rerr != nil {
			log.Printf("restore terminal: %v", rerr)
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrTerminal, rerr))
		}
	}()
	for !s.done {
		if err := s.redraw(); err != nil {
			return fmt.Errorf("%w: draw: %w", ErrTerminal, err)
		}
		data, err := s.terminal.Read(s.interval)
		if err != nil {
			return fmt.Errorf("%w: read: %w", ErrTerminal, err)
		}
		if len(data) == 0 {
			if event, ok := s.decoder.Flush(); ok {
				s.Handle(event)
			}
			continue
		}
		for _, b := range data {
			if event, ok := s.decoder.Feed(b); ok {
				s.Handle(event)
			}
			if s.done {
				break
			}
		}
	}
	return s.err
}

func (s *Session) redraw() error {
	size := s.terminal.Size()
	if !s.dirty && size == s.size {
		return nil
	}
	s.dirty = false
	s.size = size
	if s.help {
		return s.terminal.ShowHelp(HelpText)
	}
	return s.terminal.Draw(s.window.Layout(s.editor, s.mode, s.status, size))
}

// Handle applies one event in the current mode.
func (s *Session) Handle(event linedit.Event) {
	s.dirty = true
	if s.help {
		s.help = false
		return
	}
	switch m := s.mode.(type) {
	case linedit.Normal:
		s.handleNormal(event)
	case linedit.CommandEntry:
		s.handleCommandEntry(m, event)
	case linedit.Suspended:
		// the external editor has the terminal
	}
}

func (s *Session) handleNormal(event linedit.Event) {
	s.status = window.Status{}
	switch event.Kind {
	case linedit.EventModeSwitch:
		s.mode = linedit.CommandEntry{}
	case linedit.EventArrowUp:
		s.editor.MoveCursor(linedit.MoveUp)
	case linedit.EventArrowDown:
		s.editor.MoveCursor(linedit.MoveDown)
	case linedit.EventArrowRight:
		s.editor.MoveCursor(linedit.MoveRight)
	case linedit.EventArrowLeft:
		s.editor.MoveCursor(linedit.MoveLeft)
	case linedit.EventHome:
		s.editor.MoveToBeginningOfLine()
	case linedit.EventEnd:
		s.editor.MoveToEndOfLine()
	case linedit.EventEnter:
		s.editor.SplitLine()
	case linedit.EventBackspace:
		s.editor.BackspaceChar()
	case linedit.EventInterrupt:
		s.done = true
	case linedit.EventPrintable:
		if event.Ch == 'q' {
			s.done = true
			return
		}
		s.editor.InsertChar(event.Ch)
	}
}

func (s *Session) handleCommandEntry(m linedit.CommandEntry, event linedit.Event) {
	switch event.Kind {
	case linedit.EventEnter:
		s.mode = linedit.Normal{}
		s.perform(m.Buffer)
	case linedit.EventEscape, linedit.EventInterrupt:
		s.mode = linedit.Normal{}
	case linedit.EventBackspace:
		if runes := []rune(m.Buffer); len(runes) > 0 {
			s.mode = linedit.CommandEntry{Buffer: string(runes[:len(runes)-1])}
		}
	case linedit.EventPrintable, linedit.EventModeSwitch:
		s.mode = linedit.CommandEntry{Buffer: m.Buffer + string(event.Ch)}
	}
}

func (s *Session) perform(text string) {
	result := s.commander.Perform(text)
	switch result.Kind {
	case commander.ResultQuit:
		s.done = true
	case commander.ResultHelp:
		s.help = true
	default:
		s.status = window.Status{Message: result.Message, Failed: result.Failed}
	}
}

// fail ends the loop after the terminal could not be restored or taken back.
func (s *Session) fail(err error) {
	log.Printf("%v", err)
	s.err = errors.Join(s.err, fmt.Errorf("%w: %w", ErrTerminal, err))
	s.done = true
}
