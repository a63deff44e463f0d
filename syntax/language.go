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
package syntax

import "strings"

// A Language describes the lexical surface of one language: the words and
// markers the highlighter needs, nothing more.
type Language struct {
	Name              string
	Extensions        []string
	Keywords          []string
	Types             []string
	Constants         []string
	LineComment       string // empty when the language has none
	BlockCommentStart string
	BlockCommentEnd   string
	StringDelimiters  []rune
	CharDelimiter     rune // zero when the language has none
	Attributes        bool // #[...] attribute syntax

	keywords  map[string]bool
	types     map[string]bool
	constants map[string]bool
}

var Rust = &Language{
	Name:       "Rust",
	Extensions: []string{"rs"},
	Keywords: []string{
		"as", "async", "await", "break", "const", "continue", "crate", "dyn", "else", "enum",
		"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move",
		"mut", "pub", "ref", "return", "self", "Self", "static", "struct", "super", "trait",
		"true", "type", "unsafe", "use", "where", "while", "yield",
	},
	Types: []string{
		"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128", "isize", "str", "u8",
		"u16", "u32", "u64", "u128", "usize", "String", "Vec", "Option", "Result", "Box", "Rc",
		"Arc", "Cell", "RefCell", "HashMap", "HashSet", "BTreeMap", "BTreeSet",
	},
	Constants:         []string{"None", "Some", "Ok", "Err", "true", "false"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"'},
	CharDelimiter:     '\'',
	Attributes:        true,
}

var Python = &Language{
	Name:       "Python",
	Extensions: []string{"py", "pyw", "pyi"},
	Keywords: []string{
		"and", "as", "assert", "async", "await", "break", "class", "continue", "def", "del",
		"elif", "else", "except", "finally", "for", "from", "global", "if", "import", "in", "is",
		"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try", "while", "with",
		"yield",
	},
	Types: []string{
		"int", "float", "str", "bool", "list", "dict", "set", "tuple", "bytes", "bytearray",
		"complex", "frozenset", "object", "type",
	},
	Constants:        []string{"True", "False", "None"},
	LineComment:      "#",
	StringDelimiters: []rune{'"', '\''},
}

var JavaScript = &Language{
	Name:       "JavaScript",
	Extensions: []string{"js", "jsx", "mjs", "cjs"},
	Keywords: []string{
		"async", "await", "break", "case", "catch", "class", "const", "continue", "debugger",
		"default", "delete", "do", "else", "export", "extends", "finally", "for", "function",
		"if", "import", "in", "instanceof", "let", "new", "of", "return", "static", "super",
		"switch", "this", "throw", "try", "typeof", "var", "void", "while", "with", "yield",
	},
	Types: []string{
		"Array", "Boolean", "Date", "Error", "Function", "Map", "Number", "Object", "Promise",
		"RegExp", "Set", "String", "Symbol", "WeakMap", "WeakSet",
	},
	Constants:         []string{"true", "false", "null", "undefined", "NaN", "Infinity"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"', '\'', '`'},
}

var TypeScript = &Language{
	Name:       "TypeScript",
	Extensions: []string{"ts", "tsx"},
	Keywords: []string{
		"abstract", "as", "async", "await", "break", "case", "catch", "class", "const",
		"continue", "debugger", "declare", "default", "delete", "do", "else", "enum", "export",
		"extends", "finally", "for", "from", "function", "if", "implements", "import", "in",
		"instanceof", "interface", "let", "module", "namespace", "new", "of", "package",
		"private", "protected", "public", "readonly", "return", "static", "super", "switch",
		"this", "throw", "try", "type", "typeof", "var", "void", "while", "with", "yield",
	},
	Types: []string{
		"any", "boolean", "never", "number", "object", "string", "symbol", "unknown", "void",
		"Array", "Boolean", "Date", "Error", "Function", "Map", "Number", "Object", "Promise",
		"RegExp", "Set", "String", "Symbol", "WeakMap", "WeakSet",
	},
	Constants:         []string{"true", "false", "null", "undefined", "NaN", "Infinity"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"', '\'', '`'},
}

var C = &Language{
	Name:       "C",
	Extensions: []string{"c", "h"},
	Keywords: []string{
		"auto", "break", "case", "const", "continue", "default", "do", "else", "enum", "extern",
		"for", "goto", "if", "inline", "register", "restrict", "return", "sizeof", "static",
		"struct", "switch", "typedef", "union", "volatile", "while", "_Alignas", "_Alignof",
		"_Atomic", "_Bool", "_Complex", "_Generic", "_Imaginary", "_Noreturn", "_Static_assert",
		"_Thread_local",
	},
	Types: []string{
		"char", "double", "float", "int", "long", "short", "signed", "unsigned", "void", "size_t",
		"ssize_t", "ptrdiff_t", "int8_t", "int16_t", "int32_t", "int64_t", "uint8_t", "uint16_t",
		"uint32_t", "uint64_t",
	},
	Constants:         []string{"NULL", "true", "false", "EOF"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"'},
	CharDelimiter:     '\'',
}

var Cpp = &Language{
	Name:       "C++",
	Extensions: []string{"cpp", "cc", "cxx", "hpp", "hh", "hxx", "h++"},
	Keywords: []string{
		"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor", "break", "case",
		"catch", "class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
		"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype", "default",
		"delete", "do", "dynamic_cast", "else", "enum", "explicit", "export", "extern", "for",
		"friend", "goto", "if", "inline", "mutable", "namespace", "new", "noexcept", "not",
		"not_eq", "nullptr", "operator", "or", "or_eq", "private", "protected", "public",
		"register", "reinterpret_cast", "requires", "return", "sizeof", "static", "static_assert",
		"static_cast", "struct", "switch", "template", "this", "thread_local", "throw", "try",
		"typedef", "typeid", "typename", "union", "using", "virtual", "volatile", "while",
		"xor", "xor_eq",
	},
	Types: []string{
		"bool", "char", "char8_t", "char16_t", "char32_t", "double", "float", "int", "long",
		"short", "signed", "unsigned", "void", "wchar_t", "size_t", "string", "vector", "map",
		"set", "array", "unique_ptr", "shared_ptr", "weak_ptr",
	},
	Constants:         []string{"NULL", "nullptr", "true", "false"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"'},
	CharDelimiter:     '\'',
}

var Go = &Language{
	Name:       "Go",
	Extensions: []string{"go"},
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
		"for", "func", "go", "goto", "if", "import", "interface", "map", "package", "range",
		"return", "select", "struct", "switch", "type", "var",
	},
	Types: []string{
		"bool", "byte", "complex64", "complex128", "error", "float32", "float64", "int", "int8",
		"int16", "int32", "int64", "rune", "string", "uint", "uint8", "uint16", "uint32",
		"uint64", "uintptr",
	},
	Constants:         []string{"true", "false", "nil", "iota"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"', '`'},
	CharDelimiter:     '\'',
}

var Java = &Language{
	Name:       "Java",
	Extensions: []string{"java"},
	Keywords: []string{
		"abstract", "assert", "break", "case", "catch", "class", "const", "continue", "default",
		"do", "else", "enum", "extends", "final", "finally", "for", "goto", "if", "implements",
		"import", "instanceof", "interface", "native", "new", "package", "private", "protected",
		"public", "return", "static", "strictfp", "super", "switch", "synchronized", "this",
		"throw", "throws", "transient", "try", "volatile", "while",
	},
	Types: []string{
		"boolean", "byte", "char", "double", "float", "int", "long", "short", "void", "String",
		"Integer", "Long", "Double", "Float", "Boolean", "Character", "Byte", "Short", "Object",
		"Class", "List", "Map", "Set", "ArrayList", "HashMap", "HashSet",
	},
	Constants:         []string{"true", "false", "null"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"'},
	CharDelimiter:     '\'',
}

var HTML = &Language{
	Name:              "HTML",
	Extensions:        []string{"html", "htm", "xhtml"},
	BlockCommentStart: "<!--",
	BlockCommentEnd:   "-->",
	StringDelimiters:  []rune{'"', '\''},
}

var CSS = &Language{
	Name:       "CSS",
	Extensions: []string{"css", "scss", "sass", "less"},
	Keywords: []string{
		"import", "media", "charset", "font-face", "keyframes", "supports", "page", "namespace",
	},
	Constants: []string{
		"inherit", "initial", "unset", "none", "auto", "transparent", "currentColor",
	},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'"', '\''},
}

var JSON = &Language{
	Name:             "JSON",
	Extensions:       []string{"json", "jsonc"},
	Constants:        []string{"true", "false", "null"},
	StringDelimiters: []rune{'"'},
}

var YAML = &Language{
	Name:             "YAML",
	Extensions:       []string{"yaml", "yml"},
	Constants:        []string{"true", "false", "null", "yes", "no", "on", "off"},
	LineComment:      "#",
	StringDelimiters: []rune{'"', '\''},
}

var TOML = &Language{
	Name:             "TOML",
	Extensions:       []string{"toml"},
	Constants:        []string{"true", "false"},
	LineComment:      "#",
	StringDelimiters: []rune{'"', '\''},
}

var Markdown = &Language{
	Name:       "Markdown",
	Extensions: []string{"md", "markdown", "mdown", "mkdn"},
}

var Shell = &Language{
	Name:       "Shell",
	Extensions: []string{"sh", "bash", "zsh", "fish"},
	Keywords: []string{
		"if", "then", "else", "elif", "fi", "case", "esac", "for", "while", "until", "do", "done",
		"in", "function", "select", "time", "coproc", "return", "exit", "break", "continue",
		"local", "export", "readonly", "declare", "typeset", "unset", "shift", "source", "alias",
		"eval", "exec", "trap",
	},
	Constants:        []string{"true", "false"},
	LineComment:      "#",
	StringDelimiters: []rune{'"', '\''},
}

var SQL = &Language{
	Name:       "SQL",
	Extensions: []string{"sql"},
	Keywords: []string{
		"SELECT", "FROM", "WHERE", "INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER",
		"TABLE", "INDEX", "VIEW", "DATABASE", "SCHEMA", "INTO", "VALUES", "SET", "AND", "OR",
		"NOT", "NULL", "IS", "IN", "LIKE", "BETWEEN", "JOIN", "INNER", "LEFT", "RIGHT", "OUTER",
		"ON", "AS", "ORDER", "BY", "GROUP", "HAVING", "LIMIT", "OFFSET", "UNION", "ALL",
		"DISTINCT", "PRIMARY", "KEY", "FOREIGN", "REFERENCES", "CONSTRAINT", "DEFAULT", "CHECK",
		"UNIQUE", "CASCADE", "RESTRICT", "TRIGGER", "PROCEDURE", "FUNCTION", "BEGIN", "END",
		"COMMIT", "ROLLBACK", "TRANSACTION", "GRANT", "REVOKE", "IF", "ELSE", "CASE", "WHEN",
		"THEN", "EXISTS", "ANY", "SOME", "select", "from", "where", "insert", "update", "delete",
		"create", "drop", "alter", "table", "index", "view", "database", "schema", "into",
		"values", "set", "and", "or", "not", "null", "is", "in", "like", "between", "join",
		"inner", "left", "right", "outer", "on", "as", "order", "by", "group", "having", "limit",
		"offset", "union", "all", "distinct", "primary", "key", "foreign", "references",
		"constraint", "default", "check", "unique", "cascade", "restrict", "trigger", "procedure",
		"function", "begin", "end", "commit", "rollback", "transaction", "grant", "revoke", "if",
		"else", "case", "when", "then", "exists", "any", "some",
	},
	Types: []string{
		"INT", "INTEGER", "SMALLINT", "BIGINT", "DECIMAL", "NUMERIC", "FLOAT", "REAL", "DOUBLE",
		"CHAR", "VARCHAR", "TEXT", "BLOB", "DATE", "TIME", "DATETIME", "TIMESTAMP", "BOOLEAN",
		"BOOL", "int", "integer", "smallint", "bigint", "decimal", "numeric", "float", "real",
		"double", "char", "varchar", "text", "blob", "date", "time", "datetime", "timestamp",
		"boolean", "bool",
	},
	Constants:         []string{"TRUE", "FALSE", "NULL", "true", "false", "null"},
	LineComment:       "--",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  []rune{'\''},
}

// Languages lists every supported language, in detection order.
var Languages = []*Language{
	Rust, Python, JavaScript, TypeScript, C, Cpp, Go, Java, HTML, CSS, JSON, YAML,
	TOML, Markdown, Shell, SQL,
}

func init() {
	for _, lang := range Languages {
		lang.keywords = makeSet(lang.Keywords)
		lang.types = makeSet(lang.Types)
		lang.constants = makeSet(lang.Constants)
	}
}

func makeSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}

// LanguageForExtension returns the language registered for a file
// extension, or nil. Matching is case-insensitive.
func LanguageForExtension(extension string) *Language {
	if extension == "" {
		return nil
	}
	extension = strings.ToLower(extension)
	for _, lang := range Languages {
		for _, ext := range lang.Extensions {
			if ext == extension {
				return lang
			}
		}
	}
	return nil
}

func (l *Language) IsKeyword(word string) bool {
	return l.keywords[word]
}

func (l *Language) IsType(word string) bool {
	return l.types[word]
}

func (l *Language) IsConstant(word string) bool {
	return l.constants[word]
}

func (l *Language) hasStringDelimiter(c rune) bool {
	for _, d := range l.StringDelimiters {
		if d == c {
			return true
		}
	}
	return false
}
