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
	"testing"
	"time"

	"github.com/nsf/termbox-go"
)

// replay returns a poll function that yields events in order, copying
// raw input into the read buffer.
func replay(t *testing.T, events []termbox.Event, input string) func([]byte) termbox.Event {
	return func(buffer []byte) termbox.Event {
		if len(events) == 0 {
			t.Fatalf("Poll called with no events left")
		}
		event := events[0]
		events = events[1:]
		if event.Type == termbox.EventRaw {
			event.N = copy(buffer, input)
		}
		return event
	}
}

func TestReadSkipsStaleInterrupts(t *testing.T) {
	tb := NewTermbox(DefaultTheme())
	tb.poll = replay(t, []termbox.Event{
		{Type: termbox.EventInterrupt},
		{Type: termbox.EventResize},
		{Type: termbox.EventRaw},
	}, "\x1b[A")
	tb.interrupt = func() {}
	data, err := tb.Read(time.Hour)
	if err != nil || string(data) != "\x1b[A" {
		t.Errorf("Read returned %q, %v", data, err)
	}
}

func TestReadTimesOut(t *testing.T) {
	interrupts := make(chan struct{}, 1)
	tb := NewTermbox(DefaultTheme())
	tb.poll = func([]byte) termbox.Event {
		<-interrupts
		return termbox.Event{Type: termbox.EventInterrupt}
	}
	tb.interrupt = func() { interrupts <- struct{}{} }
	data, err := tb.Read(10 * time.Millisecond)
	if err != nil || data != nil {
		t.Errorf("Read returned %q, %v", data, err)
	}
}
