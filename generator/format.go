package generator

import "strings"

// TokenClass labels a fragment of SQL text for presentation.
type TokenClass string

const (
	ClassKeyword    TokenClass = "keyword"
	ClassIdentifier TokenClass = "identifier"
	ClassLiteral    TokenClass = "literal"
	ClassType       TokenClass = "type"
	ClassConstraint TokenClass = "constraint"
	ClassComment    TokenClass = "comment"
	ClassOther      TokenClass = "other"
)

// Token is one classified fragment. Joining the Text of all tokens
// reproduces the classified input byte for byte.
type Token struct {
	Text  string     `json:"text"`
	Class TokenClass `json:"class"`
}

var keywordWords = wordSet(
	"CREATE", "TABLE", "IF", "EXISTS", "TEMPORARY", "ALTER", "DROP",
	"SELECT", "FROM", "WHERE", "INSERT", "INTO", "VALUES", "UPDATE",
	"DELETE", "ON", "AND", "OR", "IN", "IS", "LIKE", "BETWEEN", "AS",
	"WITH", "WITHOUT", "ZONE", "COLLATE", "ENGINE", "CHARSET", "USING",
	"SET", "CASCADE", "RESTRICT", "ACTION", "INDEX", "VIEW",
)

var constraintWords = wordSet(
	"PRIMARY", "KEY", "FOREIGN", "REFERENCES", "UNIQUE", "CHECK",
	"DEFAULT", "CONSTRAINT", "NOT", "NULL", "AUTO_INCREMENT",
	"AUTOINCREMENT", "IDENTITY",
)

var typeWords = wordSet(
	"INT", "INTEGER", "BIGINT", "SMALLINT", "MEDIUMINT", "TINYINT",
	"SERIAL", "BIGSERIAL", "VARCHAR", "NVARCHAR", "VARCHAR2", "NVARCHAR2",
	"CHAR", "NCHAR", "CHARACTER", "VARYING", "TEXT", "TINYTEXT",
	"MEDIUMTEXT", "LONGTEXT", "CLOB", "NTEXT", "BOOLEAN", "BOOL", "BIT",
	"DATE", "TIME", "TIMESTAMP", "TIMESTAMPTZ", "DATETIME", "DATETIME2",
	"SMALLDATETIME", "FLOAT", "REAL", "DOUBLE", "PRECISION", "DECIMAL",
	"DEC", "NUMERIC", "NUMBER", "MONEY", "JSON", "JSONB", "UUID",
	"UNIQUEIDENTIFIER", "ENUM", "BLOB", "BINARY_FLOAT", "BINARY_DOUBLE",
	"ARRAY", "MAX",
)

var literalWords = wordSet(
	"TRUE", "FALSE", "CURRENT_TIMESTAMP", "CURRENT_DATE", "CURRENT_TIME",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Classify splits sql into classified tokens. Quoting decides identifiers
// before spelling does, so a quoted name that collides with a keyword is
// still an identifier. The input is reproduced exactly by concatenating
// the returned token texts.
func Classify(sql string) []Token {
	var tokens []Token
	i := 0
	plain := i // start of the pending unclassified run

	flush := func(upto int) {
		if upto > plain {
			tokens = append(tokens, Token{Text: sql[plain:upto], Class: ClassOther})
		}
	}
	emit := func(end int, class TokenClass) {
		flush(i)
		tokens = append(tokens, Token{Text: sql[i:end], Class: class})
		i = end
		plain = end
	}

	for i < len(sql) {
		c := sql[i]
		switch {
		case c == '-' && i+1 < len(sql) && sql[i+1] == '-':
			end := i
			for end < len(sql) && sql[end] != '\n' {
				end++
			}
			emit(end, ClassComment)
		case c == '/' && i+1 < len(sql) && sql[i+1] == '*':
			end := i + 2
			for end+1 < len(sql) && !(sql[end] == '*' && sql[end+1] == '/') {
				end++
			}
			if end+1 < len(sql) {
				end += 2
			} else {
				end = len(sql)
			}
			emit(end, ClassComment)
		case c == '\'':
			emit(scanEnd(sql, i, '\''), ClassLiteral)
		case c == '"' || c == '`':
			emit(scanEnd(sql, i, c), ClassIdentifier)
		case c == '[':
			emit(scanEnd(sql, i, ']'), ClassIdentifier)
		case c >= '0' && c <= '9':
			end := i
			for end < len(sql) && (sql[end] >= '0' && sql[end] <= '9' || sql[end] == '.') {
				end++
			}
			emit(end, ClassLiteral)
		case isWordStart(c):
			end := i
			for end < len(sql) && isWordByte(sql[end]) {
				end++
			}
			emit(end, classifyWord(sql[i:end]))
		default:
			i++
		}
	}
	flush(len(sql))
	return tokens
}

func classifyWord(word string) TokenClass {
	w := strings.ToUpper(word)
	switch {
	case constraintWords[w]:
		return ClassConstraint
	case typeWords[w]:
		return ClassType
	case keywordWords[w]:
		return ClassKeyword
	case literalWords[w]:
		return ClassLiteral
	default:
		return ClassIdentifier
	}
}

// scanEnd returns the index just past the closing quote, honoring doubled
// closers, or len(sql) when unterminated.
func scanEnd(sql string, start int, closer byte) int {
	i := start + 1
	for i < len(sql) {
		if sql[i] == closer {
			if i+1 < len(sql) && sql[i+1] == closer {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return i
}

func isWordStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isWordByte(c byte) bool {
	return isWordStart(c) || c >= '0' && c <= '9'
}

// ANSI SGR sequences used by FormatForDisplay.
const (
	ansiReset      = "\x1b[0m"
	ansiKeyword    = "\x1b[1;34m"
	ansiType       = "\x1b[36m"
	ansiConstraint = "\x1b[33m"
	ansiLiteral    = "\x1b[32m"
	ansiComment    = "\x1b[90m"
)

// FormatForDisplay renders sql with ANSI colors per token class for
// terminal output. Stripping the escape sequences yields the input
// unchanged.
func FormatForDisplay(sql string) string {
	var b strings.Builder
	for _, tok := range Classify(sql) {
		switch tok.Class {
		case ClassKeyword:
			b.WriteString(ansiKeyword + tok.Text + ansiReset)
		case ClassType:
			b.WriteString(ansiType + tok.Text + ansiReset)
		case ClassConstraint:
			b.WriteString(ansiConstraint + tok.Text + ansiReset)
		case ClassLiteral:
			b.WriteString(ansiLiteral + tok.Text + ansiReset)
		case ClassComment:
			b.WriteString(ansiComment + tok.Text + ansiReset)
		default:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}
