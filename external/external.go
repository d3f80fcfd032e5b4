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

// Package external runs a full-screen editor on a file and waits for it.
package external

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// ErrNoEditor is returned when none of the candidate editors is installed.
var ErrNoEditor = errors.New("no editor found")

// DefaultEditors are tried in order.
var DefaultEditors = []string{"vim", "nano", "vi"}

// An ExitError reports an editor that ran but exited unsuccessfully.
// The file on disk may still have been changed.
type ExitError struct {
	Editor string
	Err    *exec.ExitError
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Editor, e.Err.ExitCode())
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// A Launcher runs the first available editor from Editors.
type Launcher struct {
	Editors []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	lookPath func(string) (string, error)
}

func NewLauncher(editors []string) *Launcher {
	if len(editors) == 0 {
		editors = DefaultEditors
	}
	return &Launcher{
		Editors:  editors,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		lookPath: exec.LookPath,
	}
}

// Detect returns the name and path of the first installed editor.
func (l *Launcher) Detect() (string, string, error) {
	for _, name := range l.Editors {
		path, err := l.lookPath(name)
		if err == nil {
			return name, path, nil
		}
	}
	return "", "", ErrNoEditor
}

// Args builds the argument list for opening path at a 1-based line.
// vim and nano take the line first; other editors get it after the path.
// A line of 0 or less opens the file at its start.
func Args(editor string, path string, line int) []string {
	args := make([]string, 0, 3)
	switch filepath.Base(editor) {
	case "vim", "nano":
		if line > 0 {
			args = append(args, "+"+strconv.Itoa(line))
		}
		args = append(args, path)
	default:
		args = append(args, path)
		if line > 0 {
			args = append(args, "+"+strconv.Itoa(line))
		}
	}
	return args
}

// Edit runs the editor on path and blocks until it exits.
func (l *Launcher) Edit(path string, line int) error {
	name, executable, err := l.Detect()
	if err != nil {
		return err
	}
	cmd := exec.Command(executable, Args(name, path, line)...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Printf("%s exited with status %d", name, exitErr.ExitCode())
		return &ExitError{Editor: name, Err: exitErr}
	}
	return err
}
