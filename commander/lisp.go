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
package commander

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"

	"github.com/timburks/linedit/editor"
)

// active is the Commander that lisp primitives operate on.
var active *Commander

func init() {
	golisp.MakePrimitiveFunction("jump", "1", JumpImpl)
	golisp.MakePrimitiveFunction("search", "1", SearchImpl)
	golisp.MakePrimitiveFunction("next-match", "0", NextMatchImpl)
	golisp.MakePrimitiveFunction("toggle-select", "1", ToggleSelectImpl)
	golisp.MakePrimitiveFunction("copy-selected", "0", CopySelectedImpl)
	golisp.MakePrimitiveFunction("command", "1", CommandImpl)
	golisp.MakePrimitiveFunction("line", "1", LineImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("cursor-line", "0", CursorLineImpl)
	golisp.MakePrimitiveFunction("clipboard", "0", ClipboardImpl)
}

func current() (*Commander, error) {
	if active == nil {
		return nil, errors.New("no document is open")
	}
	return active, nil
}

func integerArgument(name string, args *golisp.Data) (int, error) {
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return int(golisp.FloatValue(val)), nil
	}
	return 0, fmt.Errorf("%s requires a numeric argument", name)
}

func stringArgument(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

// resultValue returns a command's status message, or an error if it failed.
func resultValue(r Result) (*golisp.Data, error) {
	if r.Failed {
		return nil, errors.New(r.Message)
	}
	return golisp.StringWithValue(r.Message), nil
}

func JumpImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	n, err := integerArgument("jump", args)
	if err != nil {
		return nil, err
	}
	if err := c.editor.JumpToLine(n); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(n)), nil
}

func SearchImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	term, err := stringArgument("search", args)
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.Search(term))), nil
}

func NextMatchImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	if _, _, err := c.editor.NextMatch(); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row + 1)), nil
}

func ToggleSelectImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	n, err := integerArgument("toggle-select", args)
	if err != nil {
		return nil, err
	}
	if err := c.editor.ToggleSelect(n); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.SelectedCount())), nil
}

func CopySelectedImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	count, err := c.editor.CopySelected()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(count)), nil
}

func CommandImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	text, err := stringArgument("command", args)
	if err != nil {
		return nil, err
	}
	return resultValue(c.Perform(text))
}

func LineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	n, err := integerArgument("line", args)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > c.editor.LineCount() {
		return nil, fmt.Errorf("line %d: %w", n, editor.ErrInvalidLine)
	}
	return golisp.StringWithValue(c.editor.Line(n - 1)), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.LineCount())), nil
}

func CursorLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row + 1)), nil
}

func ClipboardImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := current()
	if err != nil {
		return nil, err
	}
	lines := c.editor.Clipboard()
	values := make([]*golisp.Data, len(lines))
	for i, line := range lines {
		values[i] = golisp.StringWithValue(line)
	}
	return golisp.ArrayToList(values), nil
}

// ParseEval evaluates a lisp expression against the Commander's document
// and returns the printed value.
func (c *Commander) ParseEval(source string) (string, error) {
	active = c
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return c.ParseEval("(begin\n" + string(source) + "\n)")
}
