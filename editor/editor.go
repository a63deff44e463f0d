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
	"os"
	"unicode"

	"zedit/browser"
	zedit "zedit/types"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	size    zedit.Size  // size of editing area
	Cursor  zedit.Point // cursor position
	Offset  zedit.Size  // display offset
	Buffer  *Buffer     // buffer being edited
	browser *browser.Browser
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// ReadFile loads a file into the buffer and moves the cursor to the top.
func (e *Editor) ReadFile(path string) error {
	if err := e.Buffer.ReadFile(path); err != nil {
		return err
	}
	e.Cursor = zedit.Point{}
	e.Offset = zedit.Size{}
	return nil
}

func (e *Editor) SaveFile() error {
	return e.Buffer.Save()
}

func (e *Editor) WriteFile(path string) error {
	return e.Buffer.SaveAs(path)
}

// OpenPath opens a directory in the file browser or a file in the buffer.
// A path that doesn't exist yet is treated as a new file.
func (e *Editor) OpenPath(path string) error {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		b, err := browser.NewBrowser(path)
		if err != nil {
			return err
		}
		e.browser = b
		return nil
	}
	return e.ReadFile(path)
}

func (e *Editor) GetBrowser() zedit.Browser {
	if e.browser == nil {
		return nil
	}
	return e.browser
}

func (e *Editor) CloseBrowser() {
	e.browser = nil
}

func (e *Editor) GetCursor() zedit.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor zedit.Point) {
	e.Cursor = cursor
	e.KeepCursorInRow()
}

func (e *Editor) SetSize(size zedit.Size) {
	e.size = size
}

func (e *Editor) GetSize() zedit.Size {
	return e.size
}

func (e *Editor) GetOffset() zedit.Size {
	return e.Offset
}

func (e *Editor) GetBuffer() zedit.Buffer {
	return e.Buffer
}

// Scroll adjusts the display offset to keep the cursor on screen.
func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.Cursor.Col < e.Offset.Cols {
		e.Offset.Cols = e.Cursor.Col
	}
	if e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
	}
}

// MoveCursor moves the cursor one step, stopping at the edges of the
// buffer. The cursor never rests past the last character of a row.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case zedit.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case zedit.MoveRight:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row)-1 {
			e.Cursor.Col++
		}
	case zedit.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case zedit.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	e.KeepCursorInRow()
}

// MoveCursorForInsert moves the cursor while inserting, where it may also
// rest just past the last character of a row.
func (e *Editor) MoveCursorForInsert(direction int) {
	switch direction {
	case zedit.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case zedit.MoveRight:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
	case zedit.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case zedit.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	if rowLength := e.Buffer.GetRowLength(e.Cursor.Row); e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row) - 1
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

func (e *Editor) MoveToFirstRow() {
	e.Cursor.Row = 0
	e.KeepCursorInRow()
}

func (e *Editor) MoveToLastRow() {
	e.Cursor.Row = e.Buffer.GetRowCount() - 1
	e.KeepCursorInRow()
}

// MoveToLine moves to the start of a row, clamped to the buffer.
func (e *Editor) MoveToLine(line int) {
	if line < 0 {
		line = 0
	}
	if line > e.Buffer.GetRowCount()-1 {
		line = e.Buffer.GetRowCount() - 1
	}
	e.Cursor = zedit.Point{Row: line, Col: 0}
}

// MoveToNextWord skips the rest of the current word and any separators
// after it, hopping to the next row when the current one runs out.
func (e *Editor) MoveToNextWord() {
	chars := e.Buffer.GetRow(e.Cursor.Row).Text
	col := e.Cursor.Col
	for col < len(chars) && isWordRune(chars[col]) {
		col++
	}
	for col < len(chars) && !isWordRune(chars[col]) {
		col++
	}
	if col >= len(chars) && e.Cursor.Row < e.Buffer.GetRowCount()-1 {
		e.Cursor.Row++
		e.Cursor.Col = 0
		return
	}
	if col > len(chars)-1 {
		col = len(chars) - 1
	}
	if col < 0 {
		col = 0
	}
	e.Cursor.Col = col
}

// MoveToPreviousWord moves back to the start of the previous word, hopping
// to the end of the row above when the cursor is at column zero.
func (e *Editor) MoveToPreviousWord() {
	if e.Cursor.Col == 0 && e.Cursor.Row > 0 {
		e.Cursor.Row--
		col := e.Buffer.GetRowLength(e.Cursor.Row) - 1
		if col < 0 {
			col = 0
		}
		e.Cursor.Col = col
		return
	}
	chars := e.Buffer.GetRow(e.Cursor.Row).Text
	col := e.Cursor.Col
	for col > 0 && !isWordRune(chars[col-1]) {
		col--
	}
	for col > 0 && isWordRune(chars[col-1]) {
		col--
	}
	e.Cursor.Col = col
}

func (e *Editor) PageUp() {
	e.Cursor.Row -= e.pageSize()
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	e.KeepCursorInRow()
}

func (e *Editor) PageDown() {
	e.Cursor.Row += e.pageSize()
	if e.Cursor.Row > e.Buffer.GetRowCount()-1 {
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
	}
	e.KeepCursorInRow()
}

// pageSize leaves two rows of context when paging.
func (e *Editor) pageSize() int {
	size := e.size.Rows - 2
	if size < 0 {
		size = 0
	}
	return size
}

// KeepCursorInRow clamps the cursor to a position that exists.
func (e *Editor) KeepCursorInRow() {
	if e.Cursor.Row > e.Buffer.GetRowCount()-1 {
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	lastIndexInRow := e.Buffer.GetRowLength(e.Cursor.Row) - 1
	if e.Cursor.Col > lastIndexInRow {
		e.Cursor.Col = lastIndexInRow
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

// BeginInsert places the cursor for an insertion.
func (e *Editor) BeginInsert(position int) {
	switch position {
	case zedit.InsertAtCursor:
		// insertion happens right where the cursor is
	case zedit.InsertAfterCursor:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
	case zedit.InsertAtStartOfLine:
		e.Cursor.Col = 0
	case zedit.InsertAfterEndOfLine:
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	case zedit.InsertAtNewLineBelowCursor:
		e.Buffer.InsertEmptyRow(e.Cursor.Row + 1)
		e.Cursor.Row++
		e.Cursor.Col = 0
	case zedit.InsertAtNewLineAboveCursor:
		e.Buffer.InsertEmptyRow(e.Cursor.Row)
		e.Cursor.Col = 0
	}
}

func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	e.Buffer.InsertChar(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

func (e *Editor) InsertNewline() {
	e.Buffer.InsertNewline(e.Cursor.Row, e.Cursor.Col)
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// BackspaceChar deletes the character before the cursor, joining the row
// onto the one above when the cursor is at column zero.
func (e *Editor) BackspaceChar() {
	if e.Cursor.Col > 0 {
		e.Cursor.Col--
		e.Buffer.DeleteChar(e.Cursor.Row, e.Cursor.Col)
	} else if e.Cursor.Row > 0 {
		col := e.Buffer.GetRowLength(e.Cursor.Row - 1)
		e.Buffer.DeleteRow(e.Cursor.Row)
		e.Cursor.Row--
		e.Cursor.Col = col
	}
}

// DeleteCharAtCursor deletes the character under the cursor.
func (e *Editor) DeleteCharAtCursor() {
	if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
		e.Buffer.DeleteChar(e.Cursor.Row, e.Cursor.Col)
	}
	e.KeepCursorInRow()
}

// DeleteCharForward deletes the character under the cursor, pulling the
// next row up when the cursor sits at the end of the row.
func (e *Editor) DeleteCharForward() {
	if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
		e.Buffer.DeleteChar(e.Cursor.Row, e.Cursor.Col)
	} else {
		e.Buffer.DeleteRow(e.Cursor.Row + 1)
	}
}

// DeleteRowAtCursor removes the current row. The last row of a buffer is
// never removed.
func (e *Editor) DeleteRowAtCursor() {
	e.Buffer.RemoveRow(e.Cursor.Row)
	e.KeepCursorInRow()
}

// PerformSearch looks for text after the cursor, wrapping to the top of
// the buffer when the bottom is reached without a match.
func (e *Editor) PerformSearch(text string) (found bool, wrapped bool) {
	pattern := []rune(text)
	if len(pattern) == 0 {
		return false, false
	}
	startRow := e.Cursor.Row
	startCol := e.Cursor.Col + 1
	for row := startRow; row < e.Buffer.GetRowCount(); row++ {
		chars := e.Buffer.GetRow(row).Text
		from := 0
		if row == startRow {
			from = startCol
		}
		if from >= len(chars) {
			continue
		}
		if col := indexRunes(chars, pattern, from); col >= 0 {
			e.Cursor = zedit.Point{Row: row, Col: col}
			return true, false
		}
	}
	for row := 0; row <= startRow; row++ {
		chars := e.Buffer.GetRow(row).Text
		if col := indexRunes(chars, pattern, 0); col >= 0 {
			e.Cursor = zedit.Point{Row: row, Col: col}
			return true, true
		}
	}
	return false, false
}

// PerformSearchBackward looks for text before the cursor, wrapping to the
// bottom of the buffer when the top is reached without a match.
func (e *Editor) PerformSearchBackward(text string) (found bool, wrapped bool) {
	pattern := []rune(text)
	if len(pattern) == 0 {
		return false, false
	}
	startRow := e.Cursor.Row
	startCol := e.Cursor.Col
	for row := startRow; row >= 0; row-- {
		chars := e.Buffer.GetRow(row).Text
		end := len(chars)
		if row == startRow {
			end = startCol
		}
		if col := lastIndexRunes(chars, pattern, end); col >= 0 {
			e.Cursor = zedit.Point{Row: row, Col: col}
			return true, false
		}
	}
	for row := e.Buffer.GetRowCount() - 1; row >= startRow; row-- {
		chars := e.Buffer.GetRow(row).Text
		if col := lastIndexRunes(chars, pattern, len(chars)); col >= 0 {
			e.Cursor = zedit.Point{Row: row, Col: col}
			return true, true
		}
	}
	return false, false
}

func isWordRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// indexRunes returns the first start of pattern in text at or after from.
func indexRunes(text, pattern []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(pattern) <= len(text); i++ {
		if runesMatchAt(text, pattern, i) {
			return i
		}
	}
	return -1
}

// lastIndexRunes returns the last start of pattern fully inside text[:end].
func lastIndexRunes(text, pattern []rune, end int) int {
	if end > len(text) {
		end = len(text)
	}
	for i := end - len(pattern); i >= 0; i-- {
		if runesMatchAt(text, pattern, i) {
			return i
		}
	}
	return -1
}

func runesMatchAt(text, pattern []rune, i int) bool {
	for j, c := range pattern {
		if text[i+j] != c {
			return false
		}
	}
	return true
}
