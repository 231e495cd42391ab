// Package parser turns SQL DDL text into a schema model. Parsing is best
// effort: it extracts every CREATE TABLE it can recognize and silently
// skips everything else, so pasting a full dump, a migration file or a
// half-written statement never fails.
package parser

import (
	"regexp"
	"strings"

	"schemaforge/schema"
)

var createTableRe = regexp.MustCompile(`(?i)\bCREATE\s+(?:TEMPORARY\s+|GLOBAL\s+TEMPORARY\s+)?TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?`)

// pendingFK is a foreign key noticed during parsing. References are
// resolved after every table is known, so declaration order and forward
// references never matter.
type pendingFK struct {
	table     string
	column    string
	refTable  string
	refColumn string
}

// Parse extracts all CREATE TABLE statements from sql and builds a model.
// Input with no recognizable tables yields an empty model; Parse never
// returns an error.
func Parse(sql string) *schema.Model {
	m := schema.NewModel()
	var pending []pendingFK

	stripped := stripComments(sql)
	last := 0
	for _, loc := range createTableRe.FindAllStringIndex(stripped, -1) {
		if loc[0] < last {
			continue
		}
		name, pos, ok := parseQualifiedName(stripped, loc[1])
		if !ok {
			continue
		}
		pos = skipSpace(stripped, pos)
		if pos >= len(stripped) || stripped[pos] != '(' {
			// CREATE TABLE ... AS SELECT and friends carry no column list.
			continue
		}
		end := matchParen(stripped, pos)
		body := stripped[pos+1 : end]
		last = end + 1

		if m.TableByName(name) != nil {
			continue
		}
		table := schema.NewTable(name)
		for _, def := range splitTopLevel(body) {
			pending = parseDefinition(&table, def, pending)
		}
		m.Tables = append(m.Tables, table)
	}

	// Second pass: apply foreign keys now that every table exists.
	// Unresolvable references are dropped, not errors.
	for _, fk := range pending {
		m.LinkForeignKey(fk.table, fk.column, fk.refTable, fk.refColumn)
	}
	return m
}

// parseDefinition classifies one comma-separated table-body definition and
// applies it to the table, returning the (possibly extended) pending FK
// list.
func parseDefinition(table *schema.Table, def string, pending []pendingFK) []pendingFK {
	tokens := lex(def)
	if len(tokens) == 0 {
		return pending
	}

	i := 0
	named := false
	if tokens[0].isWord("CONSTRAINT") && len(tokens) > 2 {
		i = 2
		named = true
	}

	switch {
	case tokens[i].isWord("PRIMARY") && i+2 < len(tokens) && tokens[i+1].isWord("KEY") && tokens[i+2].kind == groupTok:
		for _, name := range identifiers(tokens[i+2].text) {
			if col := table.Column(name); col != nil {
				col.IsPrimaryKey = true
				col.IsNullable = false
			}
		}
	case tokens[i].isWord("FOREIGN") && i+1 < len(tokens) && tokens[i+1].isWord("KEY"):
		return appendTableFK(table, tokens[i+2:], pending)
	case tokens[i].isWord("UNIQUE"):
		j := i + 1
		if j < len(tokens) && (tokens[j].isWord("KEY") || tokens[j].isWord("INDEX")) {
			j++
		}
		if j < len(tokens) && tokens[j].kind == wordTok {
			j++
		}
		if j < len(tokens) && tokens[j].kind == groupTok {
			for _, name := range identifiers(tokens[j].text) {
				if col := table.Column(name); col != nil {
					col.IsUnique = true
				}
			}
		}
	case tokens[i].isWord("CHECK") && i+1 < len(tokens) && tokens[i+1].kind == groupTok:
		attachTableCheck(table, tokens[i+1].text)
	case tokens[i].isWord("KEY") || tokens[i].isWord("INDEX") ||
		tokens[i].isWord("FULLTEXT") || tokens[i].isWord("SPATIAL") ||
		tokens[i].isWord("EXCLUDE") || tokens[i].isWord("LIKE"):
		// Index and storage definitions carry no column information.
	case named:
		// CONSTRAINT with an unrecognized body.
	default:
		return parseColumn(table, tokens, pending)
	}
	return pending
}

// appendTableFK reads "(cols) REFERENCES tbl [(cols)]" token tail of a
// table-level foreign key. Columns pair up by position.
func appendTableFK(table *schema.Table, tokens []token, pending []pendingFK) []pendingFK {
	if len(tokens) == 0 || tokens[0].kind != groupTok {
		return pending
	}
	cols := identifiers(tokens[0].text)

	i := 1
	if i >= len(tokens) || !tokens[i].isWord("REFERENCES") {
		return pending
	}
	refTable, i, ok := readQualified(tokens, i+1)
	if !ok {
		return pending
	}
	var refCols []string
	if i < len(tokens) && tokens[i].kind == groupTok {
		refCols = identifiers(tokens[i].text)
	}

	for idx, col := range cols {
		refCol := ""
		if idx < len(refCols) {
			refCol = refCols[idx]
		}
		pending = append(pending, pendingFK{table: table.Name, column: col, refTable: refTable, refColumn: refCol})
	}
	return pending
}

// parseColumn reads "name TYPE[(args)] modifiers..." and appends the column.
func parseColumn(table *schema.Table, tokens []token, pending []pendingFK) []pendingFK {
	if tokens[0].kind != wordTok {
		return pending
	}
	name := tokens[0].text
	if table.Column(name) != nil {
		return pending
	}

	info := TypeInfo{Type: schema.TypeText}
	i := 1
	if i < len(tokens) && tokens[i].kind == wordTok {
		base := tokens[i].text
		i++
		if strings.EqualFold(base, "DOUBLE") && i < len(tokens) && tokens[i].isWord("PRECISION") {
			base = "DOUBLE PRECISION"
			i++
		}
		if strings.EqualFold(base, "CHARACTER") && i < len(tokens) && tokens[i].isWord("VARYING") {
			base = "CHARACTER VARYING"
			i++
		}
		argSrc := ""
		if i < len(tokens) && tokens[i].kind == groupTok {
			argSrc = tokens[i].text
			i++
		}
		array := false
		if i < len(tokens) && tokens[i].kind == punctTok && tokens[i].text == "[]" {
			array = true
			i++
		}
		// TIMESTAMP(6) WITH TIME ZONE: the zone words add nothing.
		if i+2 < len(tokens) && (tokens[i].isWord("WITH") || tokens[i].isWord("WITHOUT")) &&
			tokens[i+1].isWord("TIME") && tokens[i+2].isWord("ZONE") {
			i += 3
		}
		info = normalizeType(base, argSrc, array)
	}

	col := schema.NewColumn(name, info.Type)
	col.Length = info.Length
	col.Precision = info.Precision
	col.Scale = info.Scale
	col.EnumValues = info.EnumValues

	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case tok.isWord("PRIMARY") && i+1 < len(tokens) && tokens[i+1].isWord("KEY"):
			col.IsPrimaryKey = true
			col.IsNullable = false
			i += 2
		case tok.isWord("NOT") && i+1 < len(tokens) && tokens[i+1].isWord("NULL"):
			col.IsNullable = false
			i += 2
		case tok.isWord("NULL"):
			col.IsNullable = true
			i++
		case tok.isWord("UNIQUE"):
			col.IsUnique = true
			i++
		case tok.isWord("DEFAULT"):
			value, next := readDefault(tokens, i+1)
			if value != "" {
				col.Constraints = append(col.Constraints, schema.Constraint{Kind: schema.ConstraintDefault, Value: value})
			}
			i = next
		case tok.isWord("CHECK") && i+1 < len(tokens) && tokens[i+1].kind == groupTok:
			col.Constraints = append(col.Constraints, schema.Constraint{Kind: schema.ConstraintCheck, Expression: tokens[i+1].text})
			i += 2
		case tok.isWord("REFERENCES"):
			refTable, next, ok := readQualified(tokens, i+1)
			i = next
			if !ok {
				break
			}
			refCol := ""
			if i < len(tokens) && tokens[i].kind == groupTok {
				if ids := identifiers(tokens[i].text); len(ids) > 0 {
					refCol = ids[0]
				}
				i++
			}
			pending = append(pending, pendingFK{table: table.Name, column: name, refTable: refTable, refColumn: refCol})
		case tok.isWord("COMMENT") && i+1 < len(tokens) && tokens[i+1].kind == stringTok:
			i += 2
		default:
			// AUTO_INCREMENT, COLLATE, ON DELETE ..., storage attributes
			// and anything else is irrelevant to the model.
			i++
		}
	}

	table.Columns = append(table.Columns, col)
	return pending
}

// readDefault captures a DEFAULT literal preserving its SQL spelling, so
// generated DDL can re-emit it verbatim.
func readDefault(tokens []token, i int) (string, int) {
	if i >= len(tokens) {
		return "", i
	}
	switch tok := tokens[i]; tok.kind {
	case stringTok:
		return "'" + strings.ReplaceAll(tok.text, "'", "''") + "'", i + 1
	case numberTok:
		return tok.text, i + 1
	case groupTok:
		return "(" + tok.text + ")", i + 1
	case punctTok:
		if tok.text == "-" && i+1 < len(tokens) && tokens[i+1].kind == numberTok {
			return "-" + tokens[i+1].text, i + 2
		}
		return "", i + 1
	default:
		if i+1 < len(tokens) && tokens[i+1].kind == groupTok {
			return tok.text + "(" + tokens[i+1].text + ")", i + 2
		}
		return tok.text, i + 1
	}
}

// readQualified reads a possibly schema-qualified identifier and returns
// its last part.
func readQualified(tokens []token, i int) (string, int, bool) {
	if i >= len(tokens) || tokens[i].kind != wordTok {
		return "", i, false
	}
	name := tokens[i].text
	i++
	for i+1 < len(tokens) && tokens[i].kind == punctTok && tokens[i].text == "." && tokens[i+1].kind == wordTok {
		name = tokens[i+1].text
		i += 2
	}
	return name, i, true
}

// attachTableCheck files a table-level CHECK under the first of the
// table's columns named in the expression. Expressions naming no known
// column are dropped.
func attachTableCheck(table *schema.Table, expr string) {
	for _, tok := range lex(expr) {
		if tok.kind != wordTok {
			continue
		}
		if col := table.Column(tok.text); col != nil {
			col.Constraints = append(col.Constraints, schema.Constraint{Kind: schema.ConstraintCheck, Expression: expr})
			return
		}
	}
}

// identifiers extracts the identifier list from group text such as
// "id, `user_id`".
func identifiers(group string) []string {
	var names []string
	for _, tok := range lex(group) {
		if tok.kind == wordTok {
			names = append(names, tok.text)
		}
	}
	return names
}

// parseQualifiedName reads the table name after CREATE TABLE, unquoting
// and dropping any schema qualifier.
func parseQualifiedName(s string, i int) (string, int, bool) {
	i = skipSpace(s, i)
	name, i, ok := readNamePart(s, i)
	if !ok {
		return "", i, false
	}
	for {
		j := skipSpace(s, i)
		if j >= len(s) || s[j] != '.' {
			return name, i, true
		}
		part, k, ok := readNamePart(s, skipSpace(s, j+1))
		if !ok {
			return name, i, true
		}
		name, i = part, k
	}
}

func readNamePart(s string, i int) (string, int, bool) {
	if i >= len(s) {
		return "", i, false
	}
	switch s[i] {
	case '"', '`':
		value, end := scanQuoted(s, i, s[i])
		return value, end, value != ""
	case '[':
		value, end := scanBracket(s, i)
		return value, end, value != ""
	default:
		start := i
		for i < len(s) && isWordChar(s[i]) {
			i++
		}
		return s[start:i], i, i > start
	}
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

// splitTopLevel splits a table body on commas outside parens and quotes.
func splitTopLevel(body string) []string {
	var parts []string
	depth := 0
	start := 0
	i := 0
	for i < len(body) {
		switch body[i] {
		case '(':
			depth++
			i++
		case ')':
			depth--
			i++
		case '\'':
			_, i = scanString(body, i)
		case '"':
			_, i = scanQuoted(body, i, '"')
		case '`':
			_, i = scanQuoted(body, i, '`')
		case '[':
			_, i = scanBracket(body, i)
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
			i++
		default:
			i++
		}
	}
	parts = append(parts, body[start:])

	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// stripComments removes -- line comments and /* */ block comments,
// leaving string literals and quoted identifiers untouched.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '-' && i+1 < len(s) && s[i+1] == '-':
			for i < len(s) && s[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			i += 2
			for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
				i++
			}
			if i+1 < len(s) {
				i += 2
			} else {
				i = len(s)
			}
			b.WriteByte(' ')
		case c == '\'':
			_, end := scanString(s, i)
			b.WriteString(s[i:end])
			i = end
		case c == '"' || c == '`':
			_, end := scanQuoted(s, i, c)
			b.WriteString(s[i:end])
			i = end
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
