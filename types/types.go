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

import "zedit/syntax"

// Editor modes
const (
	ModeEdit    = 0
	ModeInsert  = 1
	ModeCommand = 2
	ModeSearch  = 3
	ModeBrowse  = 4
	ModeLisp    = 5
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

// A Key identifies a non-character keystroke. The screen translates
// terminal keys into these; anything it doesn't translate arrives as
// KeyUnsupported.
type Key int

const (
	KeyUnsupported Key = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyCtrlD
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlU
)

// An Event is a keystroke or terminal change for the commander to process.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// A Display accepts buffer cells for drawing. How a token class looks on
// screen is the display's decision, not the buffer's.
type Display interface {
	SetCell(col int, row int, c rune, class syntax.Class)
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetSize() Size
	GetOffset() Size
	GetBuffer() Buffer

	MoveCursor(direction int)
	MoveCursorForInsert(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveToFirstRow()
	MoveToLastRow()
	MoveToLine(line int)
	MoveToNextWord()
	MoveToPreviousWord()
	PageUp()
	PageDown()
	Scroll()
	KeepCursorInRow()

	BeginInsert(position int)
	InsertChar(c rune)
	InsertNewline()
	BackspaceChar()
	DeleteCharAtCursor()
	DeleteCharForward()
	DeleteRowAtCursor()

	PerformSearch(text string) (found bool, wrapped bool)
	PerformSearchBackward(text string) (found bool, wrapped bool)

	ReadFile(path string) error
	SaveFile() error
	WriteFile(path string) error
	OpenPath(path string) error
	GetBrowser() Browser
	CloseBrowser()
}

type Buffer interface {
	GetRowCount() int
	GetRowText(row int) string
	GetFileName() string
	GetModified() bool
	GetReadOnly() bool
	Bytes() []byte
	LoadBytes(bytes []byte)
	// DisplayColumn converts a character position into a screen column,
	// accounting for double-width characters left of it.
	DisplayColumn(row int, colOffset int, col int) int
	Render(origin Point, size Size, offset Size, display Display)
}

type Browser interface {
	GetCurrentDir() string
	GetSelection() int
	GetScrollOffset() int
	EntryCount() int
	ShowingHidden() bool
	MoveSelectionUp()
	MoveSelectionDown()
	PageUp(rows int)
	PageDown(rows int)
	SelectFirst()
	SelectLast()
	UpdateScroll(rows int)
	FormatEntry(index int, width int) string
	EntryIsDirectory(index int) bool
	// Enter descends into the selected directory, or hands back the path
	// of the selected file with opened set.
	Enter() (path string, opened bool, err error)
	GoUp() error
	ToggleHidden() error
	Refresh() error
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetSearchText() string
	SearchingBackward() bool
	GetCommand() string
	GetLispText() string
	GetMessage() string
}
