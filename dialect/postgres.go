package dialect

import "schemaforge/schema"

type Postgres struct{}

func (d *Postgres) Name() string { return "postgresql" }

func (d *Postgres) QuoteIdentifier(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *Postgres) QuoteLiteral(value string) string {
	return quoteLiteral(value)
}

func (d *Postgres) TypeName(col schema.Column) string {
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
		return "REAL"
	case schema.TypeDouble:
		return "DOUBLE PRECISION"
	case schema.TypeDecimal:
		return decimal("NUMERIC", col.Precision, col.Scale)
	case schema.TypeJSON:
		return "JSONB"
	case schema.TypeUUID:
		return "UUID"
	case schema.TypeArray:
		return "TEXT[]"
	default: // ENUM needs a CREATE TYPE, which single-statement DDL cannot carry
		return "TEXT"
	}
}

func (d *Postgres) Features() Features {
	return Features{
		SupportsArrays:      true,
		SupportsJSON:        true,
		SupportsUUID:        true,
		SupportsInheritance: true,
		MaxIdentifierLength: 63,
	}
}

func (d *Postgres) IsReserved(word string) bool {
	return reserved(postgresReserved, word)
}

func (d *Postgres) DefaultSchema() string { return "public" }

func (d *Postgres) TablesQuery() string {
	return `SELECT table_name FROM information_schema.tables WHERE table_schema = $1 AND table_type = 'BASE TABLE' ORDER BY table_name`
}

func (d *Postgres) ColumnsQuery() string {
	return `SELECT
    c.table_name,
    c.column_name,
    c.udt_name,
    c.character_maximum_length,
    c.numeric_precision,
    c.numeric_scale,
    c.is_nullable,
    COALESCE((SELECT 'PRI' FROM information_schema.table_constraints tc
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
     WHERE tc.constraint_type = 'PRIMARY KEY'
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1), ''),
    COALESCE((SELECT 'UNIQUE' FROM information_schema.table_constraints tc
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
     WHERE tc.constraint_type = 'UNIQUE'
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1), '')
FROM information_schema.columns c
WHERE c.table_schema = $1
ORDER BY c.table_name, c.ordinal_position`
}

func (d *Postgres) ForeignKeysQuery() string {
	return `SELECT kcu.table_name, kcu.constraint_name, kcu.column_name, ccu.table_name, ccu.column_name
FROM information_schema.key_column_usage kcu
JOIN information_schema.constraint_column_usage ccu ON kcu.constraint_name = ccu.constraint_name
JOIN information_schema.table_constraints tc ON kcu.constraint_name = tc.constraint_name
WHERE kcu.table_schema = $1 AND tc.constraint_type = 'FOREIGN KEY'
ORDER BY kcu.table_name, kcu.ordinal_position`
}
