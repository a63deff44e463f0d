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
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	zedit "zedit/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor         zedit.Editor
	mode           int    // editor mode
	debug          bool   // debug mode displays information about events
	editKeys       string // edit key sequences in progress
	command        string // command as it is being typed on the command line
	searchText     string // text for searches as it is being typed
	searchBackward bool   // direction of the search being typed
	lispText       string // lisp expression as it is being typed
	message        string // status message
}

func NewCommander(e zedit.Editor) *Commander {
	return &Commander{editor: e, mode: zedit.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != zedit.ModeQuit
}

func (c *Commander) ProcessEvent(event *zedit.Event) error {
	switch event.Type {
	case zedit.EventKey:
		return c.ProcessKey(event)
	case zedit.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *zedit.Event) error {
	return nil
}

// ProcessKey drops the previous status message and dispatches a keystroke
// to the handler for the current mode.
func (c *Commander) ProcessKey(event *zedit.Event) error {
	c.message = ""
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	var err error
	switch c.mode {
	case zedit.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case zedit.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case zedit.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case zedit.ModeSearch:
		err = c.ProcessKeySearchMode(event)
	case zedit.ModeBrowse:
		err = c.ProcessKeyBrowseMode(event)
	case zedit.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyEditMode(event *zedit.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		switch c.editKeys {
		case "d":
			switch ch {
			case 'd':
				e.DeleteRowAtCursor()
			}
		}
		c.editKeys = ""
		return nil
	}
	if key != 0 {
		switch key {
		case zedit.KeyEsc:
			break
		case zedit.KeyPgup, zedit.KeyCtrlU:
			e.PageUp()
		case zedit.KeyPgdn, zedit.KeyCtrlD:
			e.PageDown()
		case zedit.KeyHome:
			e.MoveToBeginningOfLine()
		case zedit.KeyEnd:
			e.MoveToEndOfLine()
		case zedit.KeyArrowUp:
			e.MoveCursor(zedit.MoveUp)
		case zedit.KeyArrowDown:
			e.MoveCursor(zedit.MoveDown)
		case zedit.KeyArrowLeft:
			e.MoveCursor(zedit.MoveLeft)
		case zedit.KeyArrowRight:
			e.MoveCursor(zedit.MoveRight)
		case zedit.KeyCtrlS:
			c.saveFile()
		case zedit.KeyCtrlQ:
			c.quit(false)
		}
	}
	if ch != 0 {
		switch ch {
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = zedit.ModeCommand
			c.command = ""
		//
		// search queries go to the message bar
		//
		case '/':
			c.mode = zedit.ModeSearch
			c.searchText = ""
			c.searchBackward = false
		case '?':
			c.mode = zedit.ModeSearch
			c.searchText = ""
			c.searchBackward = true
		case 'n': // repeat the last search
			c.reportSearch(e.PerformSearch(c.searchText))
		case 'N':
			c.reportSearch(e.PerformSearchBackward(c.searchText))
		//
		// lisp expressions go to the message bar
		//
		case '(':
			c.mode = zedit.ModeLisp
			c.lispText = "("
		//
		// cursor movement
		//
		case 'h':
			e.MoveCursor(zedit.MoveLeft)
		case 'j':
			e.MoveCursor(zedit.MoveDown)
		case 'k':
			e.MoveCursor(zedit.MoveUp)
		case 'l':
			e.MoveCursor(zedit.MoveRight)
		case '0':
			e.MoveToBeginningOfLine()
		case '$':
			e.MoveToEndOfLine()
		case 'g':
			e.MoveToFirstRow()
		case 'G':
			e.MoveToLastRow()
		case 'w':
			e.MoveToNextWord()
		case 'b':
			e.MoveToPreviousWord()
		//
		// insertion
		//
		case 'i':
			c.beginInsert(zedit.InsertAtCursor)
		case 'a':
			c.beginInsert(zedit.InsertAfterCursor)
		case 'I':
			c.beginInsert(zedit.InsertAtStartOfLine)
		case 'A':
			c.beginInsert(zedit.InsertAfterEndOfLine)
		case 'o':
			c.beginInsert(zedit.InsertAtNewLineBelowCursor)
		case 'O':
			c.beginInsert(zedit.InsertAtNewLineAboveCursor)
		//
		// deletion
		//
		case 'x':
			e.DeleteCharAtCursor()
		case 'd':
			c.editKeys = "d"
		//
		// the file browser
		//
		case 'e':
			c.openBrowserAtCurrentFile()
		}
	}
	return nil
}

func (c *Commander) ProcessKeyInsertMode(event *zedit.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case zedit.KeyEsc: // end the insertion
			c.mode = zedit.ModeEdit
			e.MoveCursor(zedit.MoveLeft)
		case zedit.KeyBackspace:
			e.BackspaceChar()
		case zedit.KeyDelete:
			e.DeleteCharForward()
		case zedit.KeyTab:
			for i := 0; i < 4; i++ {
				e.InsertChar(' ')
			}
		case zedit.KeyEnter:
			e.InsertChar('\n')
		case zedit.KeySpace:
			e.InsertChar(' ')
		case zedit.KeyArrowUp:
			e.MoveCursorForInsert(zedit.MoveUp)
		case zedit.KeyArrowDown:
			e.MoveCursorForInsert(zedit.MoveDown)
		case zedit.KeyArrowLeft:
			e.MoveCursorForInsert(zedit.MoveLeft)
		case zedit.KeyArrowRight:
			e.MoveCursorForInsert(zedit.MoveRight)
		case zedit.KeyHome:
			e.MoveToBeginningOfLine()
		case zedit.KeyEnd:
			e.BeginInsert(zedit.InsertAfterEndOfLine)
		case zedit.KeyCtrlS:
			c.saveFile()
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *zedit.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case zedit.KeyEsc:
			c.mode = zedit.ModeEdit
		case zedit.KeyEnter:
			c.PerformCommand()
		case zedit.KeyBackspace:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
			if len(c.command) == 0 {
				c.mode = zedit.ModeEdit
			}
		case zedit.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeySearchMode(event *zedit.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case zedit.KeyEsc:
			c.mode = zedit.ModeEdit
		case zedit.KeyEnter:
			if c.searchBackward {
				c.reportSearch(e.PerformSearchBackward(c.searchText))
			} else {
				c.reportSearch(e.PerformSearch(c.searchText))
			}
			c.mode = zedit.ModeEdit
		case zedit.KeyBackspace:
			if len(c.searchText) > 0 {
				c.searchText = c.searchText[0 : len(c.searchText)-1]
			}
			if len(c.searchText) == 0 {
				c.mode = zedit.ModeEdit
			}
		case zedit.KeySpace:
			c.searchText += " "
		}
	}
	if ch != 0 {
		c.searchText = c.searchText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *zedit.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case zedit.KeyEsc:
			c.mode = zedit.ModeEdit
		case zedit.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.mode = zedit.ModeEdit
		case zedit.KeyBackspace:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case zedit.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyBrowseMode(event *zedit.Event) error {
	e := c.editor
	b := e.GetBrowser()
	if b == nil {
		c.mode = zedit.ModeEdit
		return nil
	}

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case zedit.KeyEsc:
			c.closeBrowser()
		case zedit.KeyArrowUp:
			b.MoveSelectionUp()
		case zedit.KeyArrowDown:
			b.MoveSelectionDown()
		case zedit.KeyPgup:
			b.PageUp(c.browserPageSize())
		case zedit.KeyPgdn:
			b.PageDown(c.browserPageSize())
		case zedit.KeyHome:
			b.SelectFirst()
		case zedit.KeyEnd:
			b.SelectLast()
		case zedit.KeyArrowLeft, zedit.KeyBackspace:
			if err := b.GoUp(); err != nil {
				c.message = err.Error()
			}
		case zedit.KeyArrowRight, zedit.KeyEnter:
			c.enterBrowserSelection()
		}
	}
	if ch != 0 {
		switch ch {
		case 'q':
			c.closeBrowser()
		case 'k':
			b.MoveSelectionUp()
		case 'j':
			b.MoveSelectionDown()
		case 'g':
			b.SelectFirst()
		case 'G':
			b.SelectLast()
		case 'h':
			if err := b.GoUp(); err != nil {
				c.message = err.Error()
			}
		case 'l':
			c.enterBrowserSelection()
		case '.':
			if err := b.ToggleHidden(); err != nil {
				c.message = err.Error()
			}
		case 'r':
			if err := b.Refresh(); err != nil {
				c.message = err.Error()
			}
		}
	}
	return nil
}

// PerformCommand runs the command line typed so far.
func (c *Commander) PerformCommand() {
	e := c.editor

	command := strings.TrimSpace(c.command)
	c.command = ""
	c.mode = zedit.ModeEdit
	if command == "" {
		return
	}
	parts := strings.Fields(command)

	// a bare number moves to that line
	if len(parts) == 1 {
		if line, err := strconv.Atoi(parts[0]); err == nil {
			e.MoveToLine(line - 1)
			return
		}
	}

	switch parts[0] {
	case "q", "quit":
		c.quit(false)
	case "q!", "quit!":
		c.quit(true)
	case "w", "write":
		if len(parts) == 2 {
			if err := e.WriteFile(parts[1]); err != nil {
				c.message = err.Error()
			} else {
				c.message = fmt.Sprintf("Saved to %s", parts[1])
			}
		} else {
			c.saveFile()
		}
	case "wq":
		if c.saveFile() {
			c.mode = zedit.ModeQuit
		}
	case "e", "edit":
		if len(parts) == 2 {
			c.openPath(parts[1])
		} else {
			c.openBrowserAtCurrentFile()
		}
	case "set":
		if len(parts) == 2 && (parts[1] == "number" || parts[1] == "nu") {
			c.message = "Line numbers enabled"
		} else {
			c.message = fmt.Sprintf("Unknown command: %s", command)
		}
	case "help", "h":
		c.message = "Commands: :w :q :wq :e <file> :<num>"
	case "eval":
		c.message = c.ParseEval(string(e.GetBuffer().Bytes()))
	case "debug":
		if len(parts) == 2 {
			if parts[1] == "on" {
				c.debug = true
			} else if parts[1] == "off" {
				c.debug = false
				c.message = ""
			}
		}
	default:
		c.message = fmt.Sprintf("Unknown command: %s", command)
	}
}

func (c *Commander) beginInsert(position int) {
	c.editor.BeginInsert(position)
	c.mode = zedit.ModeInsert
}

// saveFile reports whether the buffer actually reached the disk.
func (c *Commander) saveFile() bool {
	e := c.editor
	if e.GetBuffer().GetFileName() == "" {
		c.message = "No filename. Use :w <filename>"
		return false
	}
	if err := e.SaveFile(); err != nil {
		c.message = err.Error()
		return false
	}
	c.message = "File saved"
	return true
}

func (c *Commander) quit(force bool) {
	if !force && c.editor.GetBuffer().GetModified() {
		c.message = "Unsaved changes! Use :q! to force quit"
		return
	}
	c.mode = zedit.ModeQuit
}

// openPath opens a file in the buffer or a directory in the browser.
func (c *Commander) openPath(path string) {
	e := c.editor
	if err := e.OpenPath(path); err != nil {
		c.message = err.Error()
		return
	}
	if e.GetBrowser() != nil {
		c.mode = zedit.ModeBrowse
	}
}

func (c *Commander) openBrowserAtCurrentFile() {
	dir := "."
	if name := c.editor.GetBuffer().GetFileName(); name != "" {
		dir = filepath.Dir(name)
	}
	c.openPath(dir)
}

func (c *Commander) closeBrowser() {
	c.editor.CloseBrowser()
	c.mode = zedit.ModeEdit
}

func (c *Commander) enterBrowserSelection() {
	e := c.editor
	path, opened, err := e.GetBrowser().Enter()
	if err != nil {
		c.message = err.Error()
		return
	}
	if opened {
		if err := e.ReadFile(path); err != nil {
			c.message = err.Error()
			return
		}
		c.closeBrowser()
	}
}

func (c *Commander) reportSearch(found bool, wrapped bool) {
	if c.searchText == "" {
		return
	}
	if !found {
		c.message = fmt.Sprintf("Pattern not found: %s", c.searchText)
	} else if wrapped {
		c.message = "Search wrapped"
	}
}

func (c *Commander) browserPageSize() int {
	size := c.editor.GetSize().Rows - 2
	if size < 1 {
		size = 1
	}
	return size
}

func (c *Commander) GetSearchText() string {
	return c.searchText
}

func (c *Commander) SearchingBackward() bool {
	return c.searchBackward
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
