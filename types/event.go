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
package types

// EventKind classifies a decoded input event.
type EventKind int

const (
	EventPrintable EventKind = iota
	EventEnter
	EventBackspace
	EventInterrupt
	EventModeSwitch
	EventEscape
	EventArrowUp
	EventArrowDown
	EventArrowRight
	EventArrowLeft
	EventHome
	EventEnd
)

// An Event is one logical keypress. Ch is set for EventPrintable and
// EventModeSwitch.
type Event struct {
	Kind EventKind
	Ch   rune
}

func (k EventKind) String() string {
	switch k {
	case EventPrintable:
		return "printable"
	case EventEnter:
		return "enter"
	case EventBackspace:
		return "backspace"
	case EventInterrupt:
		return "interrupt"
	case EventModeSwitch:
		return "mode-switch"
	case EventEscape:
		return "escape"
	case EventArrowUp:
		return "up"
	case EventArrowDown:
		return "down"
	case EventArrowRight:
		return "right"
	case EventArrowLeft:
		return "left"
	case EventHome:
		return "home"
	case EventEnd:
		return "end"
	default:
		return "unknown"
	}
}
