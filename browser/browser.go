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
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry kinds
const (
	EntryDirectory = iota
	EntryFile
	EntrySymlink
	EntryUnknown
)

// An Entry is one item in a directory listing.
type Entry struct {
	Name    string
	Path    string
	Type    int
	Size    int64
	HasSize bool
}

func (e *Entry) IsDirectory() bool {
	return e.Type == EntryDirectory
}

func (e *Entry) IsFile() bool {
	return e.Type == EntryFile
}

// DisplayName marks directories with a trailing slash.
func (e *Entry) DisplayName() string {
	if e.IsDirectory() {
		return e.Name + "/"
	}
	return e.Name
}

// SizeString renders a size in the largest unit that keeps it readable.
func (e *Entry) SizeString() string {
	if !e.HasSize {
		return ""
	}
	switch {
	case e.Size < 1024:
		return fmt.Sprintf("%d B", e.Size)
	case e.Size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(e.Size)/1024.0)
	case e.Size < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(e.Size)/(1024.0*1024.0))
	default:
		return fmt.Sprintf("%.1f GB", float64(e.Size)/(1024.0*1024.0*1024.0))
	}
}

// A Browser lists a directory for interactive file selection.
type Browser struct {
	currentDir   string
	entries      []*Entry
	selection    int
	scrollOffset int
	showHidden   bool
}

// NewBrowser opens a browser on a directory. A file path opens the
// directory containing it.
func NewBrowser(path string) (*Browser, error) {
	dir := path
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dir = filepath.Dir(path)
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	b := &Browser{currentDir: dir}
	if err := b.Refresh(); err != nil {
		return nil, err
	}
	return b, nil
}

// Refresh reloads the listing, directories first and names in
// case-insensitive order, with a ".." entry when a parent exists.
func (b *Browser) Refresh() error {
	entries := make([]*Entry, 0)
	if parent := filepath.Dir(b.currentDir); parent != b.currentDir {
		entries = append(entries, &Entry{
			Name: "..",
			Path: parent,
			Type: EntryDirectory,
		})
	}
	listing, err := os.ReadDir(b.currentDir)
	if err != nil {
		return err
	}
	for _, item := range listing {
		name := item.Name()
		if !b.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entry := &Entry{
			Name: name,
			Path: filepath.Join(b.currentDir, name),
			Type: EntryUnknown,
		}
		mode := item.Type()
		switch {
		case mode.IsDir():
			entry.Type = EntryDirectory
		case mode.IsRegular():
			entry.Type = EntryFile
		case mode&os.ModeSymlink != 0:
			entry.Type = EntrySymlink
		}
		if info, err := item.Info(); err == nil {
			entry.Size = info.Size()
			entry.HasSize = true
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDirectory() != entries[j].IsDirectory() {
			return entries[i].IsDirectory()
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	b.entries = entries
	if b.selection >= len(b.entries) && len(b.entries) > 0 {
		b.selection = len(b.entries) - 1
	}
	return nil
}

func (b *Browser) GetCurrentDir() string {
	return b.currentDir
}

func (b *Browser) GetSelection() int {
	return b.selection
}

func (b *Browser) GetScrollOffset() int {
	return b.scrollOffset
}

func (b *Browser) EntryCount() int {
	return len(b.entries)
}

func (b *Browser) ShowingHidden() bool {
	return b.showHidden
}

func (b *Browser) MoveSelectionUp() {
	if b.selection > 0 {
		b.selection--
	}
}

func (b *Browser) MoveSelectionDown() {
	if b.selection < len(b.entries)-1 {
		b.selection++
	}
}

func (b *Browser) PageUp(rows int) {
	b.selection -= rows
	if b.selection < 0 {
		b.selection = 0
	}
}

func (b *Browser) PageDown(rows int) {
	b.selection += rows
	if b.selection > len(b.entries)-1 {
		b.selection = len(b.entries) - 1
	}
	if b.selection < 0 {
		b.selection = 0
	}
}

func (b *Browser) SelectFirst() {
	b.selection = 0
}

func (b *Browser) SelectLast() {
	if len(b.entries) > 0 {
		b.selection = len(b.entries) - 1
	}
}

// UpdateScroll adjusts the scroll offset to keep the selection among the
// rows visible on screen.
func (b *Browser) UpdateScroll(rows int) {
	if b.selection < b.scrollOffset {
		b.scrollOffset = b.selection
	}
	if rows > 0 && b.selection-b.scrollOffset >= rows {
		b.scrollOffset = b.selection - rows + 1
	}
}

// FormatEntry renders one listing row: the name padded into a column, and
// for files the size right-aligned after it.
func (b *Browser) FormatEntry(index int, width int) string {
	if index < 0 || index >= len(b.entries) {
		return ""
	}
	entry := b.entries[index]
	nameWidth := width - 15
	if nameWidth < 4 {
		nameWidth = 4
	}
	name := []rune(entry.DisplayName())
	text := string(name)
	if len(name) > nameWidth {
		text = string(name[:nameWidth-3]) + "..."
	}
	line := fmt.Sprintf(" %-*s", nameWidth, text)
	if entry.IsFile() {
		line += fmt.Sprintf(" %10s", entry.SizeString())
	}
	return line
}

func (b *Browser) EntryIsDirectory(index int) bool {
	if index < 0 || index >= len(b.entries) {
		return false
	}
	return b.entries[index].IsDirectory()
}

// Enter descends into the selected directory, or hands back the path of
// the selected file with opened set.
func (b *Browser) Enter() (path string, opened bool, err error) {
	if len(b.entries) == 0 {
		return "", false, nil
	}
	entry := b.entries[b.selection]
	if entry.IsDirectory() {
		b.currentDir = entry.Path
		b.selection = 0
		b.scrollOffset = 0
		if err := b.Refresh(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return entry.Path, true, nil
}

// GoUp moves to the parent directory and selects the directory just left.
func (b *Browser) GoUp() error {
	parent := filepath.Dir(b.currentDir)
	if parent == b.currentDir {
		return nil
	}
	previous := b.currentDir
	b.currentDir = parent
	if err := b.Refresh(); err != nil {
		return err
	}
	for i, entry := range b.entries {
		if entry.Path == previous {
			b.selection = i
			break
		}
	}
	return nil
}

func (b *Browser) ToggleHidden() error {
	b.showHidden = !b.showHidden
	return b.Refresh()
}
