// Package dialect abstracts the database-specific parts of DDL generation
// and live-schema introspection: identifier quoting, type names, reserved
// words and information_schema queries.
package dialect

import "schemaforge/schema"

// Dialect abstracts database-specific SQL rendering.
type Dialect interface {
	// Name returns the registry key (mysql, postgresql, ...).
	Name() string

	// Identifier and literal quoting
	QuoteIdentifier(name string) string
	QuoteLiteral(value string) string

	// TypeName renders the column's type for this dialect. Types the
	// dialect has no native form for fall back to a general-purpose
	// string type, so rendering never fails.
	TypeName(col schema.Column) string

	// Capabilities
	Features() Features
	IsReserved(word string) bool
}

// Features describes what a dialect can express natively. Types outside a
// dialect's feature set still render (TypeName falls back), but they will
// not survive a parse round trip.
type Features struct {
	SupportsArrays      bool
	SupportsJSON        bool
	SupportsEnums       bool
	SupportsUUID        bool
	SupportsInheritance bool
	// MaxIdentifierLength is 0 when the dialect imposes no limit.
	MaxIdentifierLength int
}

// Introspector is implemented by dialects that can describe a live database
// through queries. Each query takes the target schema as its single bind
// parameter, spelled with the dialect's placeholder style. SQLite has no
// information_schema and is inspected via PRAGMAs instead.
type Introspector interface {
	Dialect

	// DefaultSchema returns the schema to inspect when none is given.
	DefaultSchema() string

	// TablesQuery yields rows of (table_name).
	TablesQuery() string

	// ColumnsQuery yields rows of (table_name, column_name, data_type,
	// char_length, numeric_precision, numeric_scale, is_nullable,
	// column_key, is_unique) ordered by table and ordinal position.
	ColumnsQuery() string

	// ForeignKeysQuery yields rows of (table_name, constraint_name,
	// column_name, referenced_table, referenced_column).
	ForeignKeysQuery() string
}
