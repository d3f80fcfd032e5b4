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
package input

import (
	"testing"

	linedit "github.com/timburks/linedit/types"
)

func feed(d *Decoder, data string) []linedit.Event {
	events := make([]linedit.Event, 0)
	for i := 0; i < len(data); i++ {
		if event, ok := d.Feed(data[i]); ok {
			events = append(events, event)
		}
	}
	return events
}

func TestArrowSequenceOneByteAtATime(t *testing.T) {
	d := NewDecoder()
	if _, ok := d.Feed(0x1b); ok {
		t.Errorf("ESC produced an event")
	}
	if _, ok := d.Feed('['); ok {
		t.Errorf("ESC [ produced an event")
	}
	event, ok := d.Feed('A')
	if !ok || event.Kind != linedit.EventArrowUp {
		t.Errorf("ESC [ A produced %+v, %v", event, ok)
	}
	if d.Pending() {
		t.Errorf("Decoder still pending after a complete sequence")
	}
}

func TestCursorSequences(t *testing.T) {
	for _, test := range []struct {
		final byte
		kind  linedit.EventKind
	}{
		{'A', linedit.EventArrowUp},
		{'B', linedit.EventArrowDown},
		{'C', linedit.EventArrowRight},
		{'D', linedit.EventArrowLeft},
		{'H', linedit.EventHome},
		{'F', linedit.EventEnd},
	} {
		events := feed(NewDecoder(), "\x1b["+string(test.final))
		if len(events) != 1 || events[0].Kind != test.kind {
			t.Errorf("ESC [ %c produced %+v", test.final, events)
		}
	}
}

func TestUnrecognizedSequencesAreDropped(t *testing.T) {
	d := NewDecoder()
	if events := feed(d, "\x1bxyz"); len(events) != 0 {
		t.Errorf("ESC x y z produced %+v", events)
	}
	if d.Pending() {
		t.Errorf("Decoder did not return to idle")
	}

	if events := feed(d, "\x1b[Z"); len(events) != 0 {
		t.Errorf("ESC [ Z produced %+v", events)
	}
	if d.Pending() {
		t.Errorf("Decoder did not return to idle after ESC [ Z")
	}

	// decoding resumes normally afterwards
	events := feed(d, "a")
	if len(events) != 1 || events[0] != (linedit.Event{Kind: linedit.EventPrintable, Ch: 'a'}) {
		t.Errorf("Decoder did not recover: %+v", events)
	}
}

func TestControlBytes(t *testing.T) {
	for _, test := range []struct {
		b    byte
		kind linedit.EventKind
	}{
		{0x0d, linedit.EventEnter},
		{0x0a, linedit.EventEnter},
		{0x7f, linedit.EventBackspace},
		{0x08, linedit.EventBackspace},
		{0x03, linedit.EventInterrupt},
		{':', linedit.EventModeSwitch},
	} {
		event, ok := NewDecoder().Feed(test.b)
		if !ok || event.Kind != test.kind {
			t.Errorf("byte 0x%02x produced %+v, %v", test.b, event, ok)
		}
	}
}

func TestPrintableRange(t *testing.T) {
	d := NewDecoder()
	for b := 0; b < 0x100; b++ {
		if b == 0x1b {
			continue
		}
		event, ok := d.Feed(byte(b))
		printable := b >= 0x20 && b < 0x7e && b != ':'
		if printable && (!ok || event.Kind != linedit.EventPrintable || event.Ch != rune(b)) {
			t.Errorf("byte 0x%02x produced %+v, %v", b, event, ok)
		}
		if !printable && ok && event.Kind == linedit.EventPrintable {
			t.Errorf("byte 0x%02x decoded as printable", b)
		}
	}
	for _, b := range []byte{0x00, 0x01, 0x7e, 0x80, 0xff} {
		if event, ok := d.Feed(b); ok {
			t.Errorf("byte 0x%02x should be ignored, got %+v", b, event)
		}
	}
}

func TestFlush(t *testing.T) {
	d := NewDecoder()
	if _, ok := d.Flush(); ok {
		t.Errorf("Flush of an idle decoder produced an event")
	}
	d.Feed(0x1b)
	event, ok := d.Flush()
	if !ok || event.Kind != linedit.EventEscape {
		t.Errorf("Flush of a lone ESC produced %+v, %v", event, ok)
	}
	d.Feed(0x1b)
	d.Feed('[')
	if _, ok := d.Flush(); ok {
		t.Errorf("Flush of a partial sequence produced an event")
	}
	if d.Pending() {
		t.Errorf("Flush did not reset the decoder")
	}
}
