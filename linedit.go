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
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/timburks/linedit/commander"
	"github.com/timburks/linedit/config"
	"github.com/timburks/linedit/editor"
	"github.com/timburks/linedit/external"
	"github.com/timburks/linedit/screen"
	"github.com/timburks/linedit/session"
	"github.com/timburks/linedit/window"
)

const usage = "usage: linedit [--config path] [--backend ansi|termbox] [--line n] [--eval script.lisp] file"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var configPath, backend, script string
	line := 0
	filenames := make([]string, 0)

	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--config", "--backend", "--line", "--eval":
			i++
			if i >= len(args) {
				fmt.Fprintf(os.Stderr, "No value specified for %s option\n%s\n", argi, usage)
				return 2
			}
			switch argi {
			case "--config":
				configPath = args[i]
			case "--backend":
				backend = args[i]
			case "--eval":
				script = args[i]
			case "--line":
				n, err := strconv.Atoi(args[i])
				if err != nil {
					fmt.Fprintf(os.Stderr, "Line number must be integer: %s\n", args[i])
					return 2
				}
				line = n
			}
		case "-h", "--help":
			fmt.Println(usage)
			return 0
		default:
			filenames = append(filenames, argi)
		}
	}
	if len(filenames) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	filename := filenames[0]

	cfg, cfgErr := config.Load(configPath)
	if backend != "" {
		cfg.Backend = backend
		cfg = cfg.Normalize()
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetPrefix(uuid.NewString()[:8] + " ")
	if cfgErr != nil {
		log.Printf("using default settings: %v", cfgErr)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	if err := e.ReadFile(filename); err != nil {
		log.Printf("%v", err)
	}
	if cfg.SystemClipboard {
		e.SetClipboardMirror(clipboard.WriteAll)
	}
	if line > 0 {
		if err := e.JumpToLine(line); err != nil {
			log.Printf("--line %d: %v", line, err)
		}
	}

	// The commander converts colon commands into calls on the editor.
	c := commander.NewCommander(e, external.NewLauncher(cfg.Editors))

	if script != "" {
		// Run a script and exit.
		value, err := c.ParseEvalFile(script)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(value)
		return 0
	}

	screen.SetColorProfile(cfg.ColorProfile)
	var terminal session.Terminal
	switch cfg.Backend {
	case config.BackendTermbox:
		terminal = screen.NewTermbox(cfg.Theme)
	default:
		terminal = screen.NewANSI(os.Stdin, os.Stdout, cfg.Theme)
	}

	w := window.NewWindow(cfg.HeaderRows, cfg.FooterRows)
	s := session.NewSession(terminal, e, c, w, cfg.PollInterval())
	log.Printf("editing %s with the %s backend", filename, cfg.Backend)
	if err := s.Run(); err != nil {
		log.Printf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
