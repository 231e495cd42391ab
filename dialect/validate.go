package dialect

import "regexp"

// Regular expression for bare (unquoted) identifiers: a letter or
// underscore followed by alphanumerics and underscores.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateIdentifier reports whether name can be used unquoted in the given
// dialect: matching charset, within the dialect's length limit and not a
// reserved word. Names that fail still work quoted; the designer uses this
// to warn before generating DDL.
func ValidateIdentifier(name string, d Dialect) bool {
	if !identifierRegex.MatchString(name) {
		return false
	}
	if limit := d.Features().MaxIdentifierLength; limit > 0 && len(name) > limit {
		return false
	}
	return !d.IsReserved(name)
}
