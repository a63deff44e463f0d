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

// Package syntax tokenizes lines of source text for display. It scans
// characters directly, one line at a time, carrying the state needed for
// constructs that span lines (block comments and unterminated strings).
package syntax

import (
	"strings"
	"unicode"
)

// A Class labels what kind of text a token holds.
type Class int

const (
	ClassNormal Class = iota
	ClassKeyword
	ClassType
	ClassString
	ClassChar
	ClassNumber
	ClassComment
	ClassOperator
	ClassPunctuation
	ClassFunction
	ClassMacro
	ClassAttribute
	ClassConstant
)

var classNames = []string{
	"Normal", "Keyword", "Type", "String", "Char", "Number", "Comment",
	"Operator", "Punctuation", "Function", "Macro", "Attribute", "Constant",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Unknown"
	}
	return classNames[c]
}

// A Token is a run of characters from one line, labeled with its class.
// The tokens for a line concatenate back to exactly that line.
type Token struct {
	Text  string
	Class Class
}

// State carries what the scanner needs to know across lines: whether a
// block comment is open, and the delimiter of an unterminated string.
// The zero value is the state at the top of a file.
type State struct {
	InComment bool
	InString  rune // string delimiter, or zero
}

const operatorChars = "+-*/%=<>!&|^~?:"
const punctuationChars = "()[]{}.,;@"

// A Highlighter tokenizes lines for one language. With no language it
// labels every line as a single Normal token.
type Highlighter struct {
	Language *Language
}

// NewHighlighter returns a highlighter for a file extension.
func NewHighlighter(extension string) *Highlighter {
	return &Highlighter{Language: LanguageForExtension(extension)}
}

// HighlightLine tokenizes one line. The caller threads the returned state
// into the call for the following line; the state for the first line of a
// file is the zero State. The function reads its arguments and writes its
// results; calling it twice with the same inputs gives the same outputs.
func (h *Highlighter) HighlightLine(line string, state State) ([]Token, State) {
	lang := h.Language
	if lang == nil {
		return []Token{{Text: line, Class: ClassNormal}}, state
	}

	var tokens []Token
	chars := []rune(line)
	blockStart := []rune(lang.BlockCommentStart)
	blockEnd := []rune(lang.BlockCommentEnd)
	lineComment := []rune(lang.LineComment)
	i := 0

	for i < len(chars) {
		// Inside a block comment that began on an earlier line.
		if state.InComment {
			if len(blockEnd) > 0 {
				if p := indexFrom(chars, i, blockEnd); p >= 0 {
					tokens = append(tokens, Token{Text: string(chars[i : p+len(blockEnd)]), Class: ClassComment})
					i = p + len(blockEnd)
					state.InComment = false
					continue
				}
			}
			tokens = append(tokens, Token{Text: string(chars[i:]), Class: ClassComment})
			return tokens, state
		}

		// Inside a string that opened on an earlier line.
		if state.InString != 0 {
			delim := state.InString
			start := i
			for i < len(chars) {
				if chars[i] == '\\' && i+1 < len(chars) {
					i += 2
				} else if chars[i] == delim {
					i++
					state.InString = 0
					break
				} else {
					i++
				}
			}
			tokens = append(tokens, Token{Text: string(chars[start:i]), Class: ClassString})
			continue
		}

		// Line comment runs to the end of the line.
		if len(lineComment) > 0 && matchesAt(chars, i, lineComment) {
			tokens = append(tokens, Token{Text: string(chars[i:]), Class: ClassComment})
			return tokens, state
		}

		// Block comment; it may close on this line or remain open.
		if len(blockStart) > 0 && matchesAt(chars, i, blockStart) {
			state.InComment = true
			commentStart := i
			i += len(blockStart)
			for i < len(chars) {
				if matchesAt(chars, i, blockEnd) {
					i += len(blockEnd)
					state.InComment = false
					break
				}
				i++
			}
			tokens = append(tokens, Token{Text: string(chars[commentStart:i]), Class: ClassComment})
			continue
		}

		// String literal. A backslash consumes the following character,
		// so an escaped delimiter does not close the string.
		if lang.hasStringDelimiter(chars[i]) {
			delim := chars[i]
			start := i
			i++
			closed := false
			for i < len(chars) {
				if chars[i] == '\\' && i+1 < len(chars) {
					i += 2
				} else if chars[i] == delim {
					i++
					closed = true
					break
				} else {
					i++
				}
			}
			if closed {
				tokens = append(tokens, Token{Text: string(chars[start:i]), Class: ClassString})
				continue
			}
			state.InString = delim
			tokens = append(tokens, Token{Text: string(chars[start:]), Class: ClassString})
			return tokens, state
		}

		// Char literal: delimiter, an escaped or plain character, and the
		// closing delimiter when present. Malformed literals still scan.
		if lang.CharDelimiter != 0 && chars[i] == lang.CharDelimiter {
			start := i
			i++
			if i < len(chars) {
				if chars[i] == '\\' && i+1 < len(chars) {
					i += 2
				} else {
					i++
				}
			}
			if i < len(chars) && chars[i] == lang.CharDelimiter {
				i++
			}
			tokens = append(tokens, Token{Text: string(chars[start:i]), Class: ClassChar})
			continue
		}

		// Number. The scan is deliberately loose: it takes digits, one
		// decimal point, radix markers, hex digits, underscores, an
		// exponent, and a trailing type suffix in a single greedy pass.
		if isASCIIDigit(chars[i]) || (chars[i] == '.' && i+1 < len(chars) && isASCIIDigit(chars[i+1])) {
			start := i
			hasDot := chars[i] == '.'
			i++
			for i < len(chars) {
				c := chars[i]
				if isASCIIDigit(c) {
					i++
				} else if c == '.' && !hasDot {
					hasDot = true
					i++
				} else if c == 'x' || c == 'X' || c == 'b' || c == 'o' {
					i++
				} else if isASCIIHexDigit(c) {
					i++
				} else if c == '_' {
					i++
				} else if c == 'e' || c == 'E' {
					i++
					if i < len(chars) && (chars[i] == '+' || chars[i] == '-') {
						i++
					}
				} else {
					break
				}
			}
			for i < len(chars) && (isASCIILetter(chars[i]) || isASCIIDigit(chars[i]) || chars[i] == '_') {
				i++
			}
			tokens = append(tokens, Token{Text: string(chars[start:i]), Class: ClassNumber})
			continue
		}

		// Identifier. Words the language knows win; otherwise a following
		// "(" marks a function and a following "!" marks a macro.
		if unicode.IsLetter(chars[i]) || chars[i] == '_' {
			start := i
			for i < len(chars) && isWordChar(chars[i]) {
				i++
			}
			word := string(chars[start:i])
			class := ClassNormal
			switch {
			case lang.IsKeyword(word):
				class = ClassKeyword
			case lang.IsType(word):
				class = ClassType
			case lang.IsConstant(word):
				class = ClassConstant
			case i < len(chars) && chars[i] == '(':
				class = ClassFunction
			case i < len(chars) && chars[i] == '!':
				class = ClassMacro
			}
			tokens = append(tokens, Token{Text: word, Class: class})
			continue
		}

		// Attribute: # followed by a bracketed body, consumed through the
		// closing bracket or the end of the line.
		if chars[i] == '#' && lang.Attributes {
			start := i
			i++
			if i < len(chars) && chars[i] == '[' {
				for i < len(chars) && chars[i] != ']' {
					i++
				}
				if i < len(chars) {
					i++
				}
			}
			tokens = append(tokens, Token{Text: string(chars[start:i]), Class: ClassAttribute})
			continue
		}

		// Operator run.
		if isOperatorChar(chars[i]) {
			start := i
			i++
			for i < len(chars) && isOperatorChar(chars[i]) {
				i++
			}
			tokens = append(tokens, Token{Text: string(chars[start:i]), Class: ClassOperator})
			continue
		}

		// Punctuation, one character at a time.
		if isPunctuationChar(chars[i]) {
			tokens = append(tokens, Token{Text: string(chars[i]), Class: ClassPunctuation})
			i++
			continue
		}

		// Whitespace and anything else: a run of characters that start no
		// other token, or failing that a single character.
		start := i
		for i < len(chars) && isPlainChar(lang, chars[i]) {
			i++
		}
		if i > start {
			tokens = append(tokens, Token{Text: string(chars[start:i]), Class: ClassNormal})
		} else {
			tokens = append(tokens, Token{Text: string(chars[i]), Class: ClassNormal})
			i++
		}
	}

	return tokens, state
}

func matchesAt(chars []rune, i int, pattern []rune) bool {
	if i+len(pattern) > len(chars) {
		return false
	}
	for j, c := range pattern {
		if chars[i+j] != c {
			return false
		}
	}
	return true
}

// indexFrom returns the position of the first occurrence of pattern at or
// after i, or -1.
func indexFrom(chars []rune, i int, pattern []rune) int {
	for ; i+len(pattern) <= len(chars); i++ {
		if matchesAt(chars, i, pattern) {
			return i
		}
	}
	return -1
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isASCIIHexDigit(c rune) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func isOperatorChar(c rune) bool {
	return strings.ContainsRune(operatorChars, c)
}

func isPunctuationChar(c rune) bool {
	return strings.ContainsRune(punctuationChars, c)
}

func isPlainChar(lang *Language, c rune) bool {
	if isWordChar(c) {
		return false
	}
	if lang.hasStringDelimiter(c) {
		return false
	}
	if lang.CharDelimiter != 0 && c == lang.CharDelimiter {
		return false
	}
	if isOperatorChar(c) || isPunctuationChar(c) || c == '#' {
		return false
	}
	return true
}
