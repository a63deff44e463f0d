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
package editor

// A row of text in the buffer. Columns are codepoint indexes, never bytes,
// so a multibyte character counts as one position.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) DisplayText() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// character at col, if there is one
func (r *Row) Char(col int) (rune, bool) {
	if col < 0 || col >= len(r.Text) {
		return 0, false
	}
	return r.Text[col], true
}

// insert c before col; out-of-range columns leave the row unchanged
func (r *Row) InsertChar(col int, c rune) {
	if col < 0 || col > len(r.Text) {
		return
	}
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete the character at col and return it
func (r *Row) DeleteChar(col int) (rune, bool) {
	if col < 0 || col >= len(r.Text) {
		return 0, false
	}
	c := r.Text[col]
	r.Text = append(r.Text[0:col], r.Text[col+1:]...)
	return c, true
}

// split the row at col, returning a new row with the text from col on.
// Out-of-range columns leave the row unchanged and produce an empty row.
func (r *Row) Split(col int) *Row {
	if col < 0 || col >= len(r.Text) {
		return NewRow("")
	}
	after := make([]rune, len(r.Text)-col)
	copy(after, r.Text[col:])
	r.Text = r.Text[0:col]
	return &Row{Text: after}
}

// join rows by appending the passed-in row to this one
func (r *Row) Join(other *Row) {
	r.Text = append(r.Text, other.Text...)
}
