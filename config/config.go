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

// Package config reads linedit settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/timburks/linedit/external"
	"github.com/timburks/linedit/screen"
)

// Backends
const (
	BackendANSI    = "ansi"
	BackendTermbox = "termbox"
)

const (
	formatTOML = "toml"
	formatYAML = "yaml"
)

type Config struct {
	Backend         string       `toml:"backend" yaml:"backend"`
	Editors         []string     `toml:"editors" yaml:"editors"`
	PollIntervalMS  int          `toml:"poll_interval_ms" yaml:"poll_interval_ms"`
	HeaderRows      int          `toml:"header_rows" yaml:"header_rows"`
	FooterRows      int          `toml:"footer_rows" yaml:"footer_rows"`
	SystemClipboard bool         `toml:"system_clipboard" yaml:"system_clipboard"`
	LogFile         string       `toml:"log_file" yaml:"log_file"`
	ColorProfile    string       `toml:"color_profile" yaml:"color_profile"`
	Theme           screen.Theme `toml:"theme" yaml:"theme"`
}

func Defaults() Config {
	return Config{
		Backend:        BackendANSI,
		Editors:        append([]string(nil), external.DefaultEditors...),
		PollIntervalMS: 10,
		HeaderRows:     2,
		FooterRows:     3,
		LogFile:        defaultLogFile(),
		ColorProfile:   "auto",
		Theme:          screen.DefaultTheme(),
	}
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".lineditlog")
}

// Dir is the directory searched for config.toml and config.yaml.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "linedit")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "linedit")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "linedit")
}

// PollInterval is the read timeout of the session loop.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Normalize replaces out-of-range values with defaults.
func (c Config) Normalize() Config {
	d := Defaults()
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend != BackendANSI && c.Backend != BackendTermbox {
		c.Backend = d.Backend
	}
	editors := c.Editors[:0:0]
	for _, name := range c.Editors {
		if name = strings.TrimSpace(name); name != "" {
			editors = append(editors, name)
		}
	}
	if len(editors) == 0 {
		editors = d.Editors
	}
	c.Editors = editors
	if c.PollIntervalMS <= 0 || c.PollIntervalMS > 1000 {
		c.PollIntervalMS = d.PollIntervalMS
	}
	if c.HeaderRows < 0 || c.HeaderRows > 2 {
		c.HeaderRows = d.HeaderRows
	}
	if c.FooterRows < 1 || c.FooterRows > 3 {
		c.FooterRows = d.FooterRows
	}
	if c.LogFile == "" {
		c.LogFile = d.LogFile
	}
	switch strings.ToLower(c.ColorProfile) {
	case "auto", "ascii", "ansi", "ansi256", "truecolor":
		c.ColorProfile = strings.ToLower(c.ColorProfile)
	default:
		c.ColorProfile = d.ColorProfile
	}
	c.Theme = normalizeTheme(c.Theme, d.Theme)
	return c
}

func normalizeTheme(t, d screen.Theme) screen.Theme {
	pick := func(value, fallback string) string {
		if strings.TrimSpace(value) == "" {
			return fallback
		}
		return strings.TrimSpace(value)
	}
	return screen.Theme{
		Title:    pick(t.Title, d.Title),
		Cursor:   pick(t.Cursor, d.Cursor),
		Selected: pick(t.Selected, d.Selected),
		Match:    pick(t.Match, d.Match),
		Status:   pick(t.Status, d.Status),
		Error:    pick(t.Error, d.Error),
	}
}

// Load reads the config at path, or when path is empty, the first of
// config.toml and config.yaml found in Dir. Missing files give defaults.
// Unset fields keep their defaults.
func Load(path string) (Config, error) {
	candidates := []string{
		filepath.Join(Dir(), "config.toml"),
		filepath.Join(Dir(), "config.yaml"),
	}
	if path != "" {
		candidates = []string{path}
	}
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Defaults(), fmt.Errorf("read config %q: %w", candidate, err)
		}
		c, err := decode(data, format(candidate))
		if err != nil {
			return Defaults(), fmt.Errorf("parse config %q: %w", candidate, err)
		}
		return c.Normalize(), nil
	}
	return Defaults(), nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatTOML
	}
}

func decode(data []byte, format string) (Config, error) {
	c := Defaults()
	switch format {
	case formatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, err
		}
	default:
		if err := toml.Unmarshal(data, &c); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}
