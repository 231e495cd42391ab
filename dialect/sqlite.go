package dialect

import "schemaforge/schema"

// SQLite has no information_schema; live inspection goes through PRAGMA
// statements instead of the Introspector queries.
type SQLite struct{}

func (d *SQLite) Name() string { return "sqlite" }

func (d *SQLite) QuoteIdentifier(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *SQLite) QuoteLiteral(value string) string {
	return quoteLiteral(value)
}

func (d *SQLite) TypeName(col schema.Column) string {
	// SQLite accepts almost any type name and applies affinity rules, so
	// the portable names pass through and the rest become TEXT.
	switch col.Type {
	case schema.TypeInt:
		return "INTEGER"
	case schema.TypeVarchar:
		return sized("VARCHAR", col.Length, 255)
	case schema.TypeText:
		return "TEXT"
	case schema.TypeBoolean:
		return "BOOLEAN"
	case schema.TypeDate:
		return "DATE"
	case schema.TypeTimestamp:
		return "TIMESTAMP"
	case schema.TypeFloat:
		return "FLOAT"
	case schema.TypeDouble:
		return "DOUBLE"
	case schema.TypeDecimal:
		return decimal("DECIMAL", col.Precision, col.Scale)
	default: // JSON, UUID, ENUM, ARRAY
		return "TEXT"
	}
}

func (d *SQLite) Features() Features {
	return Features{MaxIdentifierLength: 0}
}

func (d *SQLite) IsReserved(word string) bool {
	return reserved(sqliteReserved, word)
}
