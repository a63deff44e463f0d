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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"zedit/syntax"
	zedit "zedit/types"
)

// A testDisplay records the cells a render produces.
type testDisplay struct {
	cells   map[[2]int]rune
	classes map[[2]int]syntax.Class
}

func newTestDisplay() *testDisplay {
	return &testDisplay{
		cells:   make(map[[2]int]rune),
		classes: make(map[[2]int]syntax.Class),
	}
}

func (d *testDisplay) SetCell(col int, row int, c rune, class syntax.Class) {
	d.cells[[2]int{col, row}] = c
	d.classes[[2]int{col, row}] = class
}

// ============================================================================
// Contents
// ============================================================================

func TestNewBufferHasOneEmptyRow(t *testing.T) {
	b := NewBuffer()
	require.Equal(t, 1, b.GetRowCount())
	require.Equal(t, "", b.GetRowText(0))
	require.False(t, b.GetModified())
	require.False(t, b.GetReadOnly())
	require.Equal(t, "", b.GetFileName())
}

func TestLoadBytes(t *testing.T) {
	b := NewBuffer()

	b.LoadBytes([]byte("a\nb\n"))
	require.Equal(t, 2, b.GetRowCount())
	require.Equal(t, "a", b.GetRowText(0))
	require.Equal(t, "b", b.GetRowText(1))

	b.LoadBytes([]byte("a\nb"))
	require.Equal(t, 2, b.GetRowCount())

	b.LoadBytes([]byte("a\nb\n\n"))
	require.Equal(t, 3, b.GetRowCount())
	require.Equal(t, "", b.GetRowText(2))

	b.LoadBytes([]byte("\n"))
	require.Equal(t, 1, b.GetRowCount())
	require.Equal(t, "", b.GetRowText(0))

	b.LoadBytes(nil)
	require.Equal(t, 1, b.GetRowCount())
	require.Equal(t, "", b.GetRowText(0))
}

func TestLoadBytesTrimsCarriageReturns(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("a\r\nb\r\n"))
	require.Equal(t, 2, b.GetRowCount())
	require.Equal(t, "a", b.GetRowText(0))
	require.Equal(t, "b", b.GetRowText(1))
}

func TestBytesEndsWithOneNewline(t *testing.T) {
	b := NewBuffer()
	require.Equal(t, "\n", string(b.Bytes()))

	b.LoadBytes([]byte("x\ny"))
	require.Equal(t, "x\ny\n", string(b.Bytes()))

	b.LoadBytes([]byte("x\ny\n"))
	require.Equal(t, "x\ny\n", string(b.Bytes()))
}

var bufferSeeds = []string{
	"",
	"\n",
	"a",
	"a\nb",
	"line one\nline two\n",
	"trailing\n\n",
	"mixed\r\ncrlf\r\n",
}

func TestSerializationIsStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := bufferSeeds[rapid.IntRange(0, len(bufferSeeds)-1).Draw(t, "seed")]
		b := NewBuffer()
		b.LoadBytes([]byte(seed))
		once := b.Bytes()
		b.LoadBytes(once)
		require.Equal(t, string(once), string(b.Bytes()))
	})
}

// ============================================================================
// Editing
// ============================================================================

func TestInsertAndDeleteChar(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ab\ncd"))

	b.InsertChar(0, 1, 'X')
	require.Equal(t, "aXb", b.GetRowText(0))
	require.True(t, b.GetModified())

	c, ok := b.DeleteChar(0, 1)
	require.True(t, ok)
	require.Equal(t, 'X', c)
	require.Equal(t, "ab", b.GetRowText(0))

	_, ok = b.DeleteChar(5, 0)
	require.False(t, ok)
}

func TestGetCharacterAtCursor(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ab"))
	require.Equal(t, 'b', b.GetCharacterAtCursor(zedit.Point{Row: 0, Col: 1}))
	require.Equal(t, rune(0), b.GetCharacterAtCursor(zedit.Point{Row: 0, Col: 9}))
	require.Equal(t, rune(0), b.GetCharacterAtCursor(zedit.Point{Row: 4, Col: 0}))
}

func TestInsertNewline(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("hello"))

	b.InsertNewline(0, 2)
	require.Equal(t, 2, b.GetRowCount())
	require.Equal(t, "he", b.GetRowText(0))
	require.Equal(t, "llo", b.GetRowText(1))

	b.InsertNewline(0, 2)
	require.Equal(t, 3, b.GetRowCount())
	require.Equal(t, "he", b.GetRowText(0))
	require.Equal(t, "", b.GetRowText(1))
	require.Equal(t, "llo", b.GetRowText(2))
}

func TestDeleteRowJoins(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ab\ncd"))
	b.DeleteRow(1)
	require.Equal(t, 1, b.GetRowCount())
	require.Equal(t, "abcd", b.GetRowText(0))
}

func TestDeleteRowZeroIsANoOp(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ab\ncd"))
	b.DeleteRow(0)
	require.Equal(t, 2, b.GetRowCount())
	require.Equal(t, "ab", b.GetRowText(0))
	require.False(t, b.GetModified())
}

func TestRemoveRow(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("a\nb\nc"))
	b.RemoveRow(1)
	require.Equal(t, 2, b.GetRowCount())
	require.Equal(t, "a", b.GetRowText(0))
	require.Equal(t, "c", b.GetRowText(1))
}

func TestRemoveRowKeepsLastRow(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("x"))
	b.RemoveRow(0)
	require.Equal(t, 1, b.GetRowCount())
	require.Equal(t, "x", b.GetRowText(0))
	require.False(t, b.GetModified())
}

func TestInsertEmptyRow(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("a\nb"))
	b.InsertEmptyRow(1)
	require.Equal(t, 3, b.GetRowCount())
	require.Equal(t, "", b.GetRowText(1))
	b.InsertEmptyRow(3)
	require.Equal(t, 4, b.GetRowCount())
	require.Equal(t, "", b.GetRowText(3))
}

// ============================================================================
// Files
// ============================================================================

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.go")
	b := NewBuffer()
	b.LoadBytes([]byte("package main\n\nfunc main() {}\n"))
	require.NoError(t, b.SaveAs(path))
	require.False(t, b.GetModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "package main\n\nfunc main() {}\n", string(data))

	loaded := NewBuffer()
	require.NoError(t, loaded.ReadFile(path))
	require.Equal(t, 3, loaded.GetRowCount())
	require.Equal(t, string(b.Bytes()), string(loaded.Bytes()))
	require.False(t, loaded.GetModified())
}

func TestReadFileMissingStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	b := NewBuffer()
	require.NoError(t, b.ReadFile(path))
	require.Equal(t, 1, b.GetRowCount())
	require.Equal(t, "", b.GetRowText(0))
	require.Equal(t, path, b.GetFileName())

	b.InsertChar(0, 0, 'k')
	require.NoError(t, b.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "k\n", string(data))
}

func TestReadFileFailureLeavesBufferUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "good.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0644))
	require.NoError(t, os.Chmod(path, 0444))

	b := NewBuffer()
	require.NoError(t, b.ReadFile(path))
	require.True(t, b.GetReadOnly())

	// a directory fails to read without being a missing-file case
	require.Error(t, b.ReadFile(t.TempDir()))

	require.Equal(t, path, b.GetFileName())
	require.True(t, b.GetReadOnly())
	require.Equal(t, "Rust", b.GetHighlighter().Language.Name)
	require.Equal(t, "fn main() {}", b.GetRowText(0))
}

func TestSaveWithoutFileName(t *testing.T) {
	b := NewBuffer()
	b.InsertChar(0, 0, 'x')
	require.Error(t, b.Save())
	require.True(t, b.GetModified())
}

func TestModifiedLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.txt")
	b := NewBuffer()
	require.False(t, b.GetModified())

	b.InsertChar(0, 0, 'a')
	require.True(t, b.GetModified())

	require.NoError(t, b.SaveAs(path))
	require.False(t, b.GetModified())

	b.InsertChar(0, 1, 'b')
	require.True(t, b.GetModified())

	require.NoError(t, b.ReadFile(path))
	require.False(t, b.GetModified())
	require.Equal(t, "a", b.GetRowText(0))
}

func TestReadOnlyDetection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
	require.NoError(t, os.Chmod(path, 0444))

	b := NewBuffer()
	require.NoError(t, b.ReadFile(path))
	require.True(t, b.GetReadOnly())

	require.NoError(t, os.Chmod(path, 0644))
	require.NoError(t, b.ReadFile(path))
	require.False(t, b.GetReadOnly())
}

func TestExtension(t *testing.T) {
	b := NewBuffer()
	cases := map[string]string{
		"main.go":          "go",
		"/a/b/lib.RS":      "rs",
		"archive.tar.gz":   "gz",
		"README":           "",
		"/etc/conf.d/WALL": "",
		".bashrc":          "",
		"":                 "",
	}
	for name, ext := range cases {
		b.SetFileName(name)
		require.Equal(t, ext, b.Extension(), "extension of %q", name)
	}
}

func TestFileNamePicksLanguage(t *testing.T) {
	b := NewBuffer()
	b.SetFileName("x.rs")
	require.NotNil(t, b.GetHighlighter().Language)
	require.Equal(t, "Rust", b.GetHighlighter().Language.Name)

	b.SetFileName("notes.txt")
	require.Nil(t, b.GetHighlighter().Language)
}

// ============================================================================
// Display
// ============================================================================

func TestDisplayColumn(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("a世b"))
	require.Equal(t, 0, b.DisplayColumn(0, 0, 0))
	require.Equal(t, 1, b.DisplayColumn(0, 0, 1))
	require.Equal(t, 3, b.DisplayColumn(0, 0, 2))
	require.Equal(t, 4, b.DisplayColumn(0, 0, 3))
	require.Equal(t, 3, b.DisplayColumn(0, 1, 3))
}

func TestDisplayColumnCountsTabsAsOne(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("\tx"))
	require.Equal(t, 1, b.DisplayColumn(0, 0, 1))
}

func TestRenderClassifiesAcrossRows(t *testing.T) {
	b := NewBuffer()
	b.SetFileName("test.rs")
	b.LoadBytes([]byte("/* a\nb */ fn x\nlet y = 1;\n"))

	d := newTestDisplay()
	b.Render(zedit.Point{}, zedit.Size{Rows: 3, Cols: 80}, zedit.Size{}, d)

	require.Equal(t, syntax.ClassComment, d.classes[[2]int{0, 0}])
	require.Equal(t, syntax.ClassComment, d.classes[[2]int{0, 1}])
	require.Equal(t, syntax.ClassComment, d.classes[[2]int{3, 1}])
	require.Equal(t, syntax.ClassKeyword, d.classes[[2]int{5, 1}])
	require.Equal(t, syntax.ClassKeyword, d.classes[[2]int{0, 2}])
	require.Equal(t, syntax.ClassOperator, d.classes[[2]int{6, 2}])
	require.Equal(t, syntax.ClassNumber, d.classes[[2]int{8, 2}])
	require.Equal(t, syntax.ClassPunctuation, d.classes[[2]int{9, 2}])
}

func TestRenderPrimesStateThroughOffset(t *testing.T) {
	b := NewBuffer()
	b.SetFileName("test.rs")
	b.LoadBytes([]byte("/* a\nb */ x\ny\n"))

	d := newTestDisplay()
	b.Render(zedit.Point{}, zedit.Size{Rows: 2, Cols: 80}, zedit.Size{Rows: 1}, d)

	// first visible row is "b */ x", still inside the comment
	require.Equal(t, 'b', d.cells[[2]int{0, 0}])
	require.Equal(t, syntax.ClassComment, d.classes[[2]int{0, 0}])
}

func TestRenderHonorsColumnOffset(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("let y = 1;"))

	d := newTestDisplay()
	b.Render(zedit.Point{}, zedit.Size{Rows: 1, Cols: 80}, zedit.Size{Cols: 4}, d)

	require.Equal(t, 'y', d.cells[[2]int{0, 0}])
}

func TestRenderDrawsTabsAsSpaces(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("\ta"))

	d := newTestDisplay()
	b.Render(zedit.Point{}, zedit.Size{Rows: 1, Cols: 80}, zedit.Size{}, d)

	require.Equal(t, ' ', d.cells[[2]int{0, 0}])
	require.Equal(t, 'a', d.cells[[2]int{1, 0}])
}

func TestRenderStopsAtLastRow(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("a\nb"))

	d := newTestDisplay()
	b.Render(zedit.Point{}, zedit.Size{Rows: 5, Cols: 80}, zedit.Size{}, d)

	require.Equal(t, 'a', d.cells[[2]int{0, 0}])
	require.Equal(t, 'b', d.cells[[2]int{0, 1}])
	_, drawn := d.cells[[2]int{0, 2}]
	require.False(t, drawn)
}

func TestRenderRespectsOrigin(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ab"))

	d := newTestDisplay()
	b.Render(zedit.Point{Row: 2, Col: 5}, zedit.Size{Rows: 1, Cols: 10}, zedit.Size{}, d)

	require.Equal(t, 'a', d.cells[[2]int{5, 2}])
	require.Equal(t, 'b', d.cells[[2]int{6, 2}])
}
