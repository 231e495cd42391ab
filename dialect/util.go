package dialect

import (
	"fmt"
	"strings"
)

// quoteWith wraps name in the given quote characters, doubling any closing
// quote inside the name.
func quoteWith(name, open, closing string) string {
	return open + strings.ReplaceAll(name, closing, closing+closing) + closing
}

// quoteLiteral renders a standard single-quoted string literal.
func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// enumList renders ENUM values as a quoted, comma-separated argument list.
func enumList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quoteLiteral(v)
	}
	return strings.Join(quoted, ", ")
}

// sized renders base(n), falling back to def when the column has no length.
func sized(base string, length, def int) string {
	if length <= 0 {
		length = def
	}
	return fmt.Sprintf("%s(%d)", base, length)
}

// decimal renders base, base(p) or base(p,s) from the column's precision
// and scale.
func decimal(base string, precision, scale int) string {
	switch {
	case precision > 0 && scale > 0:
		return fmt.Sprintf("%s(%d,%d)", base, precision, scale)
	case precision > 0:
		return fmt.Sprintf("%s(%d)", base, precision)
	default:
		return base
	}
}
