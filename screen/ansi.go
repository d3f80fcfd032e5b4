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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	linedit "github.com/timburks/linedit/types"
	"github.com/timburks/linedit/window"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	showCursor  = "\x1b[?25h"
)

// Used when the terminal size cannot be read.
var fallbackSize = linedit.Size{Rows: 24, Cols: 80}

// ANSI drives a terminal with raw mode and escape sequences.
type ANSI struct {
	in     *os.File
	out    io.Writer
	styles map[int]lipgloss.Style
	state  *term.State // saved terminal state, nil when not raw
	buffer []byte
}

func NewANSI(in *os.File, out io.Writer, theme Theme) *ANSI {
	return &ANSI{
		in:     in,
		out:    out,
		styles: theme.styles(),
		buffer: make([]byte, 256),
	}
}

func (a *ANSI) fd() int {
	return int(a.in.Fd())
}

// Acquire puts the terminal in raw mode.
func (a *ANSI) Acquire() error {
	if a.state != nil {
		return nil
	}
	state, err := term.MakeRaw(a.fd())
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	a.state = state
	return nil
}

// Release restores the state saved by Acquire.
func (a *ANSI) Release() error {
	if a.state == nil {
		return nil
	}
	state := a.state
	a.state = nil
	_, werr := io.WriteString(a.out, showCursor)
	if err := term.Restore(a.fd(), state); err != nil {
		return errors.Join(fmt.Errorf("restore terminal: %w", err), werr)
	}
	return werr
}

func (a *ANSI) Size() linedit.Size {
	cols, rows, err := term.GetSize(a.fd())
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackSize
	}
	return linedit.Size{Rows: rows, Cols: cols}
}

// Read waits up to timeout for input. It returns nil and no error when
// nothing arrived.
func (a *ANSI) Read(timeout time.Duration) ([]byte, error) {
	fds := []unix.PollFd{{Fd: int32(a.fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if errors.Is(err, unix.EINTR) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("poll: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	count, err := a.in.Read(a.buffer)
	if count > 0 {
		return append([]byte(nil), a.buffer[:count]...), nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

func (a *ANSI) render(r row) string {
	var b strings.Builder
	for _, s := range r {
		if s.text == "" {
			continue
		}
		b.WriteString(a.styles[s.style].Render(s.text))
	}
	return b.String()
}

// Draw clears the screen and writes the frame. Raw mode disables output
// processing, so lines end with "\r\n".
func (a *ANSI) Draw(f window.Frame) error {
	var b strings.Builder
	b.WriteString(clearScreen)
	for i, r := range compose(f) {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(ansi.Truncate(a.render(r), f.Size.Cols, ""))
	}
	fmt.Fprintf(&b, "\x1b[%d;%dH", f.Cursor.Row+1, f.Cursor.Col+1)
	_, err := io.WriteString(a.out, b.String())
	return err
}

func (a *ANSI) ShowHelp(text string) error {
	text = strings.ReplaceAll(strings.TrimRight(text, "\n"), "\n", "\r\n")
	_, err := io.WriteString(a.out, clearScreen+a.styles[styleText].Render(text)+"\r\n")
	return err
}
