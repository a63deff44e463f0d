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
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRowRoundTrip(t *testing.T) {
	row := NewRow("hello")
	require.Equal(t, "hello", row.DisplayText())
	require.Equal(t, 5, row.Length())
}

func TestRowUnicodeLength(t *testing.T) {
	row := NewRow("Hello, 世界! 🌍")
	require.Equal(t, 12, row.Length())
	require.Equal(t, "Hello, 世界! 🌍", row.DisplayText())
}

func TestRowKeepsTabs(t *testing.T) {
	row := NewRow("\tindented")
	require.Equal(t, "\tindented", row.DisplayText())
}

func TestRowChar(t *testing.T) {
	row := NewRow("abc")
	c, ok := row.Char(0)
	require.True(t, ok)
	require.Equal(t, 'a', c)
	c, ok = row.Char(2)
	require.True(t, ok)
	require.Equal(t, 'c', c)
	_, ok = row.Char(3)
	require.False(t, ok)
	_, ok = row.Char(-1)
	require.False(t, ok)
}

func TestRowInsertChar(t *testing.T) {
	row := NewRow("ab")
	row.InsertChar(1, 'X')
	require.Equal(t, "aXb", row.DisplayText())
	row.InsertChar(0, '<')
	require.Equal(t, "<aXb", row.DisplayText())
	row.InsertChar(row.Length(), '>')
	require.Equal(t, "<aXb>", row.DisplayText())
}

func TestRowInsertCharOutOfRange(t *testing.T) {
	row := NewRow("ab")
	row.InsertChar(5, 'X')
	require.Equal(t, "ab", row.DisplayText())
	row.InsertChar(-1, 'X')
	require.Equal(t, "ab", row.DisplayText())
}

func TestRowDeleteChar(t *testing.T) {
	row := NewRow("abc")
	c, ok := row.DeleteChar(1)
	require.True(t, ok)
	require.Equal(t, 'b', c)
	require.Equal(t, "ac", row.DisplayText())

	_, ok = row.DeleteChar(2)
	require.False(t, ok)
	_, ok = row.DeleteChar(-1)
	require.False(t, ok)
	require.Equal(t, "ac", row.DisplayText())

	empty := NewRow("")
	_, ok = empty.DeleteChar(0)
	require.False(t, ok)
}

func TestRowSplit(t *testing.T) {
	row := NewRow("hello")
	rest := row.Split(2)
	require.Equal(t, "he", row.DisplayText())
	require.Equal(t, "llo", rest.DisplayText())
}

func TestRowSplitAtStart(t *testing.T) {
	row := NewRow("hello")
	rest := row.Split(0)
	require.Equal(t, "", row.DisplayText())
	require.Equal(t, "hello", rest.DisplayText())
}

func TestRowSplitPastEnd(t *testing.T) {
	row := NewRow("hello")
	rest := row.Split(5)
	require.Equal(t, "hello", row.DisplayText())
	require.Equal(t, "", rest.DisplayText())
}

func TestRowJoin(t *testing.T) {
	row := NewRow("foo")
	row.Join(NewRow("bar"))
	require.Equal(t, "foobar", row.DisplayText())
	row.Join(NewRow(""))
	require.Equal(t, "foobar", row.DisplayText())
}

var rowSeeds = []string{
	"",
	"a",
	"hello",
	"Hello, 世界! 🌍",
	"\tindent",
	"two words",
}

func TestRowInsertDeleteInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rowSeeds[rapid.IntRange(0, len(rowSeeds)-1).Draw(t, "seed")]
		row := NewRow(seed)
		col := rapid.IntRange(0, row.Length()).Draw(t, "col")
		row.InsertChar(col, 'X')
		require.Equal(t, len([]rune(seed))+1, row.Length())
		c, ok := row.DeleteChar(col)
		require.True(t, ok)
		require.Equal(t, 'X', c)
		require.Equal(t, seed, row.DisplayText())
	})
}

func TestRowSplitJoinInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rowSeeds[rapid.IntRange(0, len(rowSeeds)-1).Draw(t, "seed")]
		row := NewRow(seed)
		last := row.Length() - 1
		if last < 0 {
			last = 0
		}
		col := rapid.IntRange(0, last).Draw(t, "col")
		row.Join(row.Split(col))
		require.Equal(t, seed, row.DisplayText())
	})
}
