package parser

import "strings"

type tokenKind int

const (
	wordTok tokenKind = iota
	stringTok
	numberTok
	groupTok
	punctTok
)

// token is one lexical element of a table-body definition. Words carry
// their unquoted text (quoted keeps identifiers spelled like keywords out
// of keyword matching), strings their unquoted value, groups the raw text
// between their parentheses.
type token struct {
	kind   tokenKind
	text   string
	quoted bool
}

func (t token) isWord(upper string) bool {
	return t.kind == wordTok && !t.quoted && strings.EqualFold(t.text, upper)
}

// lex splits one definition into tokens. Unbalanced quotes and parens are
// tolerated by consuming to end of input.
func lex(s string) []token {
	var tokens []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			end := matchParen(s, i)
			tokens = append(tokens, token{kind: groupTok, text: s[i+1 : end]})
			i = end + 1
		case c == '\'':
			value, end := scanString(s, i)
			tokens = append(tokens, token{kind: stringTok, text: value})
			i = end
		case c == '"' || c == '`':
			value, end := scanQuoted(s, i, c)
			tokens = append(tokens, token{kind: wordTok, text: value, quoted: true})
			i = end
		case c == '[':
			value, end := scanBracket(s, i)
			if value == "" {
				tokens = append(tokens, token{kind: punctTok, text: "[]"})
			} else {
				tokens = append(tokens, token{kind: wordTok, text: value, quoted: true})
			}
			i = end
		case c >= '0' && c <= '9':
			start := i
			for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
				i++
			}
			tokens = append(tokens, token{kind: numberTok, text: s[start:i]})
		case isWordChar(c):
			start := i
			for i < len(s) && isWordChar(s[i]) {
				i++
			}
			tokens = append(tokens, token{kind: wordTok, text: s[start:i]})
		default:
			tokens = append(tokens, token{kind: punctTok, text: string(c)})
			i++
		}
	}
	return tokens
}

func isWordChar(c byte) bool {
	return c == '_' || c == '$' || c == '#' ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c >= 0x80
}

// matchParen returns the index of the parenthesis closing s[open],
// or len(s) when unbalanced.
func matchParen(s string, open int) int {
	depth := 0
	i := open
	for i < len(s) {
		switch s[i] {
		case '(':
			depth++
			i++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
			i++
		case '\'':
			_, i = scanString(s, i)
		case '"', '`':
			_, i = scanQuoted(s, i, s[i])
		default:
			i++
		}
	}
	return len(s)
}

// scanString reads a single-quoted literal starting at s[start], honoring
// '' escapes, and returns the unquoted value and the index past the
// closing quote.
func scanString(s string, start int) (string, int) {
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		if s[i] == '\'' {
			if i+1 < len(s) && s[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			return b.String(), i + 1
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String(), i
}

// scanQuoted reads an identifier quoted with the given character, honoring
// doubled-quote escapes.
func scanQuoted(s string, start int, quote byte) (string, int) {
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		if s[i] == quote {
			if i+1 < len(s) && s[i+1] == quote {
				b.WriteByte(quote)
				i += 2
				continue
			}
			return b.String(), i + 1
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String(), i
}

// scanBracket reads a [bracketed] identifier, honoring ]] escapes. An
// empty pair is the array suffix, not an identifier.
func scanBracket(s string, start int) (string, int) {
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		if s[i] == ']' {
			if i+1 < len(s) && s[i+1] == ']' {
				b.WriteByte(']')
				i += 2
				continue
			}
			return b.String(), i + 1
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String(), i
}
