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

// Package input decodes raw terminal bytes into key events.
package input

import (
	linedit "github.com/timburks/linedit/types"
)

const (
	keyEsc       = 0x1b
	keyCtrlC     = 0x03
	keyBackspace = 0x7f
	keyCtrlH     = 0x08
	keyEnter     = 0x0d
	keyNewline   = 0x0a
)

// maxSequence bounds the bytes held while waiting for an escape sequence
// to complete. Longer sequences are dropped.
const maxSequence = 3

// The Decoder is either idle or holding a partial escape sequence.
// It keeps no other state and can be fed one byte at a time.
type Decoder struct {
	sequence []byte // pending escape sequence, empty when idle
}

func NewDecoder() *Decoder {
	return &Decoder{sequence: make([]byte, 0, maxSequence+1)}
}

// Pending reports whether an escape sequence is being accumulated.
func (d *Decoder) Pending() bool {
	return len(d.sequence) > 0
}

func (d *Decoder) Reset() {
	d.sequence = d.sequence[:0]
}

// Feed classifies one byte. It returns false when the byte completes no
// event, either because it is held as part of an escape sequence or
// because it is ignored.
func (d *Decoder) Feed(b byte) (linedit.Event, bool) {
	if d.Pending() {
		return d.feedSequence(b)
	}
	switch {
	case b == keyEsc:
		d.sequence = append(d.sequence, b)
		return linedit.Event{}, false
	case b == keyEnter || b == keyNewline:
		return linedit.Event{Kind: linedit.EventEnter}, true
	case b == keyBackspace || b == keyCtrlH:
		return linedit.Event{Kind: linedit.EventBackspace}, true
	case b == keyCtrlC:
		return linedit.Event{Kind: linedit.EventInterrupt}, true
	case b == ':':
		return linedit.Event{Kind: linedit.EventModeSwitch, Ch: ':'}, true
	case b >= 0x20 && b < 0x7e:
		return linedit.Event{Kind: linedit.EventPrintable, Ch: rune(b)}, true
	default:
		return linedit.Event{}, false
	}
}

func (d *Decoder) feedSequence(b byte) (linedit.Event, bool) {
	d.sequence = append(d.sequence, b)
	if len(d.sequence) == maxSequence && d.sequence[1] == '[' {
		defer d.Reset()
		switch d.sequence[2] {
		case 'A':
			return linedit.Event{Kind: linedit.EventArrowUp}, true
		case 'B':
			return linedit.Event{Kind: linedit.EventArrowDown}, true
		case 'C':
			return linedit.Event{Kind: linedit.EventArrowRight}, true
		case 'D':
			return linedit.Event{Kind: linedit.EventArrowLeft}, true
		case 'H':
			return linedit.Event{Kind: linedit.EventHome}, true
		case 'F':
			return linedit.Event{Kind: linedit.EventEnd}, true
		}
		return linedit.Event{}, false
	}
	if len(d.sequence) > maxSequence {
		d.Reset()
	}
	return linedit.Event{}, false
}

// Flush ends a pending sequence when no more input is coming. An escape
// byte on its own is the escape key; anything else is dropped.
func (d *Decoder) Flush() (linedit.Event, bool) {
	if !d.Pending() {
		return linedit.Event{}, false
	}
	lone := len(d.sequence) == 1
	d.Reset()
	if lone {
		return linedit.Event{Kind: linedit.EventEscape}, true
	}
	return linedit.Event{}, false
}
