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
	"fmt"
	"log"

	"github.com/nsf/termbox-go"

	"zedit/syntax"
	zedit "zedit/types"
)

// gutterWidth is the line number column: four digits and a space.
const gutterWidth = 5

// The Screen draws the state of an Editor.
type Screen struct {
	size zedit.Size // screen size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e zedit.Editor, c zedit.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	var screenSize zedit.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	// the last two rows hold the status bar and the message bar,
	// the gutter takes the left edge
	editSize := screenSize
	editSize.Rows -= 2
	editSize.Cols -= gutterWidth
	e.SetSize(editSize)

	if c.GetMode() == zedit.ModeBrowse && e.GetBrowser() != nil {
		s.RenderBrowser(e, c)
		s.RenderMessageBar(e, c)
		termbox.HideCursor()
	} else {
		e.Scroll()
		s.RenderBuffer(e)
		s.RenderStatusBar(e, c)
		s.RenderMessageBar(e, c)
		cursor := e.GetCursor()
		offset := e.GetOffset()
		col := e.GetBuffer().DisplayColumn(cursor.Row, offset.Cols, cursor.Col)
		termbox.SetCursor(col+gutterWidth, cursor.Row-offset.Rows)
	}
	termbox.Flush()
}

// SetCell draws one character of buffer text.
func (s *Screen) SetCell(col int, row int, c rune, class syntax.Class) {
	termbox.SetCell(col, row, c, attributeForClass(class), termbox.ColorDefault)
}

func attributeForClass(class syntax.Class) termbox.Attribute {
	switch class {
	case syntax.ClassKeyword:
		return termbox.ColorMagenta
	case syntax.ClassType:
		return termbox.ColorCyan
	case syntax.ClassString, syntax.ClassChar:
		return termbox.ColorGreen
	case syntax.ClassNumber:
		return termbox.ColorYellow
	case syntax.ClassComment:
		return termbox.ColorBlack | termbox.AttrBold
	case syntax.ClassOperator:
		return termbox.ColorRed
	case syntax.ClassFunction:
		return termbox.ColorBlue
	case syntax.ClassMacro:
		return termbox.ColorMagenta | termbox.AttrBold
	case syntax.ClassAttribute:
		return termbox.ColorYellow
	case syntax.ClassConstant:
		return termbox.ColorYellow | termbox.AttrBold
	}
	return termbox.ColorDefault
}

func (s *Screen) RenderBuffer(e zedit.Editor) {
	buffer := e.GetBuffer()
	offset := e.GetOffset()
	rows := s.size.Rows - 2
	for i := 0; i < rows; i++ {
		number := offset.Rows + i
		if number < buffer.GetRowCount() {
			s.write(0, i, fmt.Sprintf("%4d ", number+1), termbox.ColorBlack|termbox.AttrBold)
		} else {
			s.write(0, i, "~", termbox.ColorBlack|termbox.AttrBold)
		}
	}
	origin := zedit.Point{Row: 0, Col: gutterWidth}
	size := zedit.Size{Rows: rows, Cols: s.size.Cols - gutterWidth}
	buffer.Render(origin, size, offset, s)
}

func (s *Screen) RenderStatusBar(e zedit.Editor, c zedit.Commander) {
	buffer := e.GetBuffer()

	line := modeLabel(c.GetMode())
	name := buffer.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	line += " " + name
	if buffer.GetModified() {
		line += " [+]"
	}
	if buffer.GetReadOnly() {
		line += " [RO]"
	}
	cursor := e.GetCursor()
	position := fmt.Sprintf(" %d:%d ", cursor.Row+1, cursor.Col+1)
	s.writeBar(s.size.Rows-2, line, position)
}

func modeLabel(mode int) string {
	switch mode {
	case zedit.ModeEdit:
		return " NORMAL "
	case zedit.ModeInsert:
		return " INSERT "
	case zedit.ModeCommand:
		return " COMMAND "
	case zedit.ModeSearch:
		return " SEARCH "
	case zedit.ModeBrowse:
		return " BROWSER "
	case zedit.ModeLisp:
		return " LISP "
	}
	return " ? "
}

func (s *Screen) RenderMessageBar(e zedit.Editor, c zedit.Commander) {
	var line string
	switch c.GetMode() {
	case zedit.ModeCommand:
		line = ":" + c.GetCommand()
	case zedit.ModeSearch:
		if c.SearchingBackward() {
			line = "?" + c.GetSearchText()
		} else {
			line = "/" + c.GetSearchText()
		}
	case zedit.ModeLisp:
		line = c.GetLispText()
	default:
		line = c.GetMessage()
	}
	s.write(0, s.size.Rows-1, line, termbox.ColorDefault)
}

func (s *Screen) RenderBrowser(e zedit.Editor, c zedit.Commander) {
	b := e.GetBrowser()

	// header, entry list, then a key help bar where the status bar goes
	listRows := s.size.Rows - 3
	if listRows < 1 {
		listRows = 1
	}
	b.UpdateScroll(listRows)

	header := " " + b.GetCurrentDir()
	if b.ShowingHidden() {
		header += " (hidden files shown)"
	}
	s.writeBar(0, header, "")
	for i := 0; i < listRows; i++ {
		index := b.GetScrollOffset() + i
		if index >= b.EntryCount() {
			break
		}
		fg := termbox.ColorDefault
		if b.EntryIsDirectory(index) {
			fg = termbox.ColorBlue | termbox.AttrBold
		}
		if index == b.GetSelection() {
			fg |= termbox.AttrReverse
		}
		s.write(0, i+1, b.FormatEntry(index, s.size.Cols), fg)
	}

	help := fmt.Sprintf(" BROWSER | %d items | . toggle hidden | Enter/l open | h/Backspace up | q close",
		b.EntryCount())
	s.writeBar(s.size.Rows-2, help, "")
}

// write draws text at a position, one cell per character.
func (s *Screen) write(col int, row int, text string, fg termbox.Attribute) {
	for _, ch := range text {
		if col >= s.size.Cols {
			break
		}
		termbox.SetCell(col, row, ch, fg, termbox.ColorDefault)
		col++
	}
}

// writeBar draws a reverse video line across the full screen width with
// right-aligned trailing text.
func (s *Screen) writeBar(row int, left string, right string) {
	chars := []rune(left)
	for len(chars) < s.size.Cols-len([]rune(right)) {
		chars = append(chars, ' ')
	}
	chars = append(chars, []rune(right)...)
	if len(chars) > s.size.Cols {
		chars = chars[:s.size.Cols]
	}
	for x, ch := range chars {
		termbox.SetCell(x, row, ch, termbox.ColorDefault|termbox.AttrReverse, termbox.ColorDefault)
	}
}

func (s *Screen) GetNextEvent() *zedit.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &zedit.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) zedit.Key {
	switch k {
	case termbox.KeyArrowDown:
		return zedit.KeyArrowDown
	case termbox.KeyArrowLeft:
		return zedit.KeyArrowLeft
	case termbox.KeyArrowRight:
		return zedit.KeyArrowRight
	case termbox.KeyArrowUp:
		return zedit.KeyArrowUp
	case termbox.KeyBackspace:
		return zedit.KeyBackspace
	case termbox.KeyBackspace2:
		return zedit.KeyBackspace
	case termbox.KeyDelete:
		return zedit.KeyDelete
	case termbox.KeyCtrlD:
		return zedit.KeyCtrlD
	case termbox.KeyCtrlQ:
		return zedit.KeyCtrlQ
	case termbox.KeyCtrlS:
		return zedit.KeyCtrlS
	case termbox.KeyCtrlU:
		return zedit.KeyCtrlU
	case termbox.KeyEnd:
		return zedit.KeyEnd
	case termbox.KeyEnter:
		return zedit.KeyEnter
	case termbox.KeyEsc:
		return zedit.KeyEsc
	case termbox.KeyHome:
		return zedit.KeyHome
	case termbox.KeyPgdn:
		return zedit.KeyPgdn
	case termbox.KeyPgup:
		return zedit.KeyPgup
	case termbox.KeySpace:
		return zedit.KeySpace
	case termbox.KeyTab:
		return zedit.KeyTab
	default:
		return zedit.KeyUnsupported
	}
}
