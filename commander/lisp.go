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

	"github.com/steelseries/golisp"

	zedit "zedit/types"
)

// The lisp interpreter has one global environment, so the editor it
// manipulates is global too. ParseEval points it at the caller's editor
// before each evaluation.
var lispEditor zedit.Editor

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("tab-width"), golisp.IntegerWithValue(4))
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("goto-line", "1", GotoLineImpl)
	golisp.MakePrimitiveFunction("search-forward", "1", SearchForwardImpl)
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if lispEditor == nil {
		return nil, errors.New("line-count requires an editor")
	}
	return golisp.IntegerWithValue(int64(lispEditor.GetBuffer().GetRowCount())), nil
}

func GotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if lispEditor == nil {
		return nil, errors.New("goto-line requires an editor")
	}
	val := golisp.Car(args)
	var line int
	switch {
	case golisp.IntegerP(val):
		line = int(golisp.IntegerValue(val))
	case golisp.FloatP(val):
		line = int(golisp.FloatValue(val))
	default:
		return nil, errors.New("goto-line requires a numeric argument")
	}
	lispEditor.MoveToLine(line - 1)
	return val, nil
}

func SearchForwardImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if lispEditor == nil {
		return nil, errors.New("search-forward requires an editor")
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("search-forward requires a string argument")
	}
	found, _ := lispEditor.PerformSearch(golisp.StringValue(val))
	return golisp.BooleanWithValue(found), nil
}

// ParseEval evaluates a lisp expression and renders the result for the
// message bar.
func (c *Commander) ParseEval(command string) string {
	lispEditor = c.editor
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("error: %+v", err)
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates a file of lisp code against the editor.
func (c *Commander) ParseEvalFile(path string) string {
	lispEditor = c.editor
	value, err := golisp.ProcessFile(path)
	if err != nil {
		return fmt.Sprintf("error: %+v", err)
	}
	return golisp.String(value)
}
