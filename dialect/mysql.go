package dialect

import (
	"fmt"

	"schemaforge/schema"
)

type MySQL struct{}

func (d *MySQL) Name() string { return "mysql" }

func (d *MySQL) QuoteIdentifier(name string) string {
	return quoteWith(name, "`", "`")
}

func (d *MySQL) QuoteLiteral(value string) string {
	return quoteLiteral(value)
}

func (d *MySQL) TypeName(col schema.Column) string {
	switch col.Type {
	case schema.TypeInt:
		return "INT"
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
	case schema.TypeJSON:
		return "JSON"
	case schema.TypeUUID:
		return "CHAR(36)"
	case schema.TypeEnum:
		if len(col.EnumValues) > 0 {
			return fmt.Sprintf("ENUM(%s)", enumList(col.EnumValues))
		}
		return "TEXT"
	default: // ARRAY and anything unknown
		return "TEXT"
	}
}

func (d *MySQL) Features() Features {
	return Features{
		SupportsJSON:        true,
		SupportsEnums:       true,
		MaxIdentifierLength: 64,
	}
}

func (d *MySQL) IsReserved(word string) bool {
	return reserved(mysqlReserved, word)
}

func (d *MySQL) DefaultSchema() string { return "" }

func (d *MySQL) TablesQuery() string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MySQL) ColumnsQuery() string {
	return `SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE, CHARACTER_MAXIMUM_LENGTH, NUMERIC_PRECISION, NUMERIC_SCALE, IS_NULLABLE, COLUMN_KEY, IF(COLUMN_KEY = 'UNI', 'UNIQUE', '') FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME, ORDINAL_POSITION`
}

func (d *MySQL) ForeignKeysQuery() string {
	return `SELECT TABLE_NAME, CONSTRAINT_NAME, COLUMN_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME FROM information_schema.KEY_COLUMN_USAGE WHERE TABLE_SCHEMA = ? AND REFERENCED_TABLE_NAME IS NOT NULL ORDER BY TABLE_NAME, ORDINAL_POSITION`
}
