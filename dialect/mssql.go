package dialect

import "schemaforge/schema"

type SQLServer struct{}

func (d *SQLServer) Name() string { return "sqlserver" }

func (d *SQLServer) QuoteIdentifier(name string) string {
	return quoteWith(name, "[", "]")
}

func (d *SQLServer) QuoteLiteral(value string) string {
	return quoteLiteral(value)
}

func (d *SQLServer) TypeName(col schema.Column) string {
	switch col.Type {
	case schema.TypeInt:
		return "INT"
	case schema.TypeVarchar:
		return sized("NVARCHAR", col.Length, 255)
	case schema.TypeText:
		return "NVARCHAR(MAX)"
	case schema.TypeBoolean:
		return "BIT"
	case schema.TypeDate:
		return "DATE"
	case schema.TypeTimestamp:
		return "DATETIME2"
	case schema.TypeFloat:
		return "REAL"
	case schema.TypeDouble:
		return "FLOAT(53)"
	case schema.TypeDecimal:
		return decimal("DECIMAL", col.Precision, col.Scale)
	case schema.TypeUUID:
		return "UNIQUEIDENTIFIER"
	case schema.TypeEnum:
		return "NVARCHAR(255)"
	default: // JSON, ARRAY and anything unknown
		return "NVARCHAR(MAX)"
	}
}

func (d *SQLServer) Features() Features {
	return Features{
		SupportsUUID:        true,
		MaxIdentifierLength: 128,
	}
}

func (d *SQLServer) IsReserved(word string) bool {
	return reserved(sqlserverReserved, word)
}

func (d *SQLServer) DefaultSchema() string { return "dbo" }

func (d *SQLServer) TablesQuery() string {
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *SQLServer) ColumnsQuery() string {
	return `SELECT
    c.TABLE_NAME,
    c.COLUMN_NAME,
    c.DATA_TYPE,
    c.CHARACTER_MAXIMUM_LENGTH,
    c.NUMERIC_PRECISION,
    c.NUMERIC_SCALE,
    c.IS_NULLABLE,
    CASE WHEN pk.COLUMN_NAME IS NOT NULL THEN 'PRI' ELSE '' END,
    CASE WHEN uq.COLUMN_NAME IS NOT NULL THEN 'UNIQUE' ELSE '' END
FROM INFORMATION_SCHEMA.COLUMNS c
LEFT JOIN (
    SELECT kcu.TABLE_NAME, kcu.COLUMN_NAME
    FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
    JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
    WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY' AND tc.TABLE_SCHEMA = @p1
) pk ON c.TABLE_NAME = pk.TABLE_NAME AND c.COLUMN_NAME = pk.COLUMN_NAME
LEFT JOIN (
    SELECT kcu.TABLE_NAME, kcu.COLUMN_NAME
    FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
    JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
    WHERE tc.CONSTRAINT_TYPE = 'UNIQUE' AND tc.TABLE_SCHEMA = @p1
) uq ON c.TABLE_NAME = uq.TABLE_NAME AND c.COLUMN_NAME = uq.COLUMN_NAME
WHERE c.TABLE_SCHEMA = @p1
ORDER BY c.TABLE_NAME, c.ORDINAL_POSITION`
}

func (d *SQLServer) ForeignKeysQuery() string {
	return `SELECT KCU1.TABLE_NAME, KCU1.CONSTRAINT_NAME, KCU1.COLUMN_NAME, KCU2.TABLE_NAME, KCU2.COLUMN_NAME
FROM INFORMATION_SCHEMA.REFERENTIAL_CONSTRAINTS RC
JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE KCU1 ON RC.CONSTRAINT_NAME = KCU1.CONSTRAINT_NAME
JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE KCU2 ON RC.UNIQUE_CONSTRAINT_NAME = KCU2.CONSTRAINT_NAME AND KCU1.ORDINAL_POSITION = KCU2.ORDINAL_POSITION
WHERE KCU1.TABLE_SCHEMA = @p1
ORDER BY KCU1.TABLE_NAME, KCU1.ORDINAL_POSITION`
}
