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

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"zedit/syntax"
	zedit "zedit/types"
)

// A Buffer represents a file being edited. It always holds at least one
// row, so every valid cursor position has a row under it.
type Buffer struct {
	rows        []*Row
	fileName    string
	modified    bool
	readOnly    bool
	highlighter *syntax.Highlighter
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	b.highlighter = syntax.NewHighlighter("")
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) GetModified() bool {
	return b.modified
}

func (b *Buffer) GetReadOnly() bool {
	return b.readOnly
}

func (b *Buffer) GetHighlighter() *syntax.Highlighter {
	return b.highlighter
}

// SetFileName records the name and picks the language for it.
func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.highlighter = syntax.NewHighlighter(b.Extension())
}

// Extension returns the lowercased file extension, without the dot.
// A name with no extension, or a dotfile like .bashrc, returns "".
func (b *Buffer) Extension() string {
	base := filepath.Base(b.fileName)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// LoadBytes replaces the buffer contents. A trailing newline marks the end
// of the last line rather than starting a new one, and empty input still
// produces one empty row.
func (b *Buffer) LoadBytes(bytes []byte) {
	s := strings.TrimSuffix(string(bytes), "\n")
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
	b.modified = false
}

// Bytes serializes the buffer as it would be written to disk, with exactly
// one newline after the final row.
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for _, row := range b.rows {
		sb.WriteString(row.DisplayText())
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// ReadFile loads a file into the buffer. A name that doesn't exist yet is
// fine: the buffer starts empty and the file appears on first save. Any
// other failure returns before the buffer changes at all, so the previous
// document, name, language, and read-only state survive a bad load.
func (b *Buffer) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	b.SetFileName(path)
	b.readOnly = false
	if err != nil {
		b.LoadBytes(nil)
		return nil
	}
	b.LoadBytes(data)
	if info, err := os.Stat(path); err == nil {
		b.readOnly = info.Mode().Perm()&0o222 == 0
	}
	return nil
}

// Save writes the buffer to its file and clears the modified flag.
func (b *Buffer) Save() error {
	if b.fileName == "" {
		return errors.New("no file name")
	}
	if err := os.WriteFile(b.fileName, b.Bytes(), 0644); err != nil {
		return err
	}
	b.modified = false
	return nil
}

// SaveAs saves under a new name, re-detecting the language for it.
func (b *Buffer) SaveAs(path string) error {
	b.SetFileName(path)
	return b.Save()
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowText(i int) string {
	if row := b.GetRow(i); row != nil {
		return row.DisplayText()
	}
	return ""
}

func (b *Buffer) GetRowLength(i int) int {
	if row := b.GetRow(i); row != nil {
		return row.Length()
	}
	return 0
}

func (b *Buffer) GetCharacterAtCursor(cursor zedit.Point) rune {
	if row := b.GetRow(cursor.Row); row != nil {
		if c, ok := row.Char(cursor.Col); ok {
			return c
		}
	}
	return rune(0)
}

func (b *Buffer) InsertChar(row, col int, c rune) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row].InsertChar(col, c)
	b.modified = true
}

func (b *Buffer) DeleteChar(row, col int) (rune, bool) {
	if row < 0 || row >= len(b.rows) {
		return 0, false
	}
	c, ok := b.rows[row].DeleteChar(col)
	if ok {
		b.modified = true
	}
	return c, ok
}

// InsertNewline splits a row at col; the remainder becomes the row below.
func (b *Buffer) InsertNewline(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	remainder := b.rows[row].Split(col)
	rows := make([]*Row, 0, len(b.rows)+1)
	rows = append(rows, b.rows[:row+1]...)
	rows = append(rows, remainder)
	rows = append(rows, b.rows[row+1:]...)
	b.rows = rows
	b.modified = true
}

// DeleteRow joins a row onto the one above and removes it. Row 0 never
// deletes: there is no row above it, and the buffer never goes empty.
func (b *Buffer) DeleteRow(row int) {
	if row <= 0 || row >= len(b.rows) {
		return
	}
	b.rows[row-1].Join(b.rows[row])
	b.rows = append(b.rows[:row], b.rows[row+1:]...)
	b.modified = true
}

// RemoveRow discards a row outright. The last remaining row stays put.
func (b *Buffer) RemoveRow(row int) {
	if row < 0 || row >= len(b.rows) || len(b.rows) <= 1 {
		return
	}
	b.rows = append(b.rows[:row], b.rows[row+1:]...)
	b.modified = true
}

func (b *Buffer) InsertEmptyRow(row int) {
	if row < 0 || row > len(b.rows) {
		return
	}
	rows := make([]*Row, 0, len(b.rows)+1)
	rows = append(rows, b.rows[:row]...)
	rows = append(rows, NewRow(""))
	rows = append(rows, b.rows[row:]...)
	b.rows = rows
	b.modified = true
}

// DisplayColumn converts a codepoint column to a screen column, counting
// wide runes by their display width.
func (b *Buffer) DisplayColumn(row, colOffset, col int) int {
	w := 0
	r := b.GetRow(row)
	if r == nil {
		return 0
	}
	for j := colOffset; j < col && j < len(r.Text); j++ {
		w += displayAdvance(r.Text[j])
	}
	return w
}

func displayAdvance(c rune) int {
	w := runewidth.RuneWidth(c)
	if w < 1 {
		w = 1
	}
	return w
}

func rowClasses(tokens []syntax.Token) []syntax.Class {
	var classes []syntax.Class
	for _, tok := range tokens {
		for range tok.Text {
			classes = append(classes, tok.Class)
		}
	}
	return classes
}

// Render draws the rows visible in an area defined by origin and size,
// with a specified offset into the buffer. Tokenizing starts at the top of
// the buffer each time so that comments and strings left open on earlier
// lines color the visible ones correctly.
func (b *Buffer) Render(origin zedit.Point, size zedit.Size, offset zedit.Size, display zedit.Display) {
	state := syntax.State{}
	for i := 0; i < offset.Rows && i < len(b.rows); i++ {
		_, state = b.highlighter.HighlightLine(b.rows[i].DisplayText(), state)
	}

	for i := 0; i < size.Rows; i++ {
		rowIndex := i + offset.Rows
		if rowIndex >= len(b.rows) {
			break
		}
		row := b.rows[rowIndex]
		var tokens []syntax.Token
		tokens, state = b.highlighter.HighlightLine(row.DisplayText(), state)
		classes := rowClasses(tokens)

		x := origin.Col
		maxX := origin.Col + size.Cols
		for j := offset.Cols; j < len(row.Text) && x < maxX; j++ {
			c := row.Text[j]
			class := syntax.ClassNormal
			if j < len(classes) {
				class = classes[j]
			}
			if c == '\t' {
				c = ' '
			}
			display.SetCell(x, origin.Row+i, c, class)
			x += displayAdvance(row.Text[j])
		}
	}
}
