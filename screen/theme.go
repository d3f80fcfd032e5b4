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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// A Theme holds colors as ANSI palette indexes ("0" to "255") or, for the
// ANSI backend only, hex values like "#00aaff".
type Theme struct {
	Title    string `toml:"title" yaml:"title"`
	Cursor   string `toml:"cursor" yaml:"cursor"`
	Selected string `toml:"selected" yaml:"selected"`
	Match    string `toml:"match" yaml:"match"`
	Status   string `toml:"status" yaml:"status"`
	Error    string `toml:"error" yaml:"error"`
}

func DefaultTheme() Theme {
	return Theme{
		Title:    "6",
		Cursor:   "2",
		Selected: "3",
		Match:    "6",
		Status:   "3",
		Error:    "1",
	}
}

// ColorProfile maps a profile name to a termenv profile. Unknown names
// and "auto" use the profile detected from the environment.
func ColorProfile(name string) termenv.Profile {
	switch strings.ToLower(name) {
	case "ascii":
		return termenv.Ascii
	case "ansi":
		return termenv.ANSI
	case "ansi256":
		return termenv.ANSI256
	case "truecolor":
		return termenv.TrueColor
	default:
		return termenv.EnvColorProfile()
	}
}

// SetColorProfile sets the profile used to render styles.
func SetColorProfile(name string) {
	lipgloss.SetColorProfile(ColorProfile(name))
}

// styles returns a lipgloss style for each segment style.
func (t Theme) styles() map[int]lipgloss.Style {
	black := lipgloss.Color("0")
	gray := lipgloss.Color("8")
	return map[int]lipgloss.Style{
		styleText:          lipgloss.NewStyle(),
		styleTitle:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Title)),
		styleRule:          lipgloss.NewStyle().Bold(true),
		styleCursorLine:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Cursor)),
		styleCursorCell:    lipgloss.NewStyle().Reverse(true),
		styleSelected:      lipgloss.NewStyle().Foreground(black).Background(lipgloss.Color(t.Selected)),
		styleSelectedLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Selected)),
		styleMatch:         lipgloss.NewStyle().Foreground(black).Background(lipgloss.Color(t.Match)),
		styleMatchLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Match)),
		styleMarker:        lipgloss.NewStyle().Foreground(gray),
		styleMore:          lipgloss.NewStyle().Foreground(gray),
		styleStatus:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Status)),
		styleError:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Error)),
		styleHint:          lipgloss.NewStyle().Foreground(gray),
		stylePrompt:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Title)),
	}
}
