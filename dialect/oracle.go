package dialect

import "schemaforge/schema"

type Oracle struct{}

func (d *Oracle) Name() string { return "oracle" }

func (d *Oracle) QuoteIdentifier(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *Oracle) QuoteLiteral(value string) string {
	return quoteLiteral(value)
}

func (d *Oracle) TypeName(col schema.Column) string {
	switch col.Type {
	case schema.TypeInt:
		return "NUMBER(10)"
	case schema.TypeVarchar:
		return sized("VARCHAR2", col.Length, 255)
	case schema.TypeText:
		return "CLOB"
	case schema.TypeBoolean:
		return "NUMBER(1)"
	case schema.TypeDate:
		return "DATE"
	case schema.TypeTimestamp:
		return "TIMESTAMP"
	case schema.TypeFloat:
		return "BINARY_FLOAT"
	case schema.TypeDouble:
		return "BINARY_DOUBLE"
	case schema.TypeDecimal:
		return decimal("NUMBER", col.Precision, col.Scale)
	case schema.TypeUUID:
		return "VARCHAR2(36)"
	case schema.TypeEnum:
		return "VARCHAR2(255)"
	default: // JSON, ARRAY
		return "CLOB"
	}
}

func (d *Oracle) Features() Features {
	return Features{MaxIdentifierLength: 30}
}

func (d *Oracle) IsReserved(word string) bool {
	return reserved(oracleReserved, word)
}

// Oracle scopes USER_* views to the connected account, so the schema bind
// is consumed by a dummy clause the same way on every query.

func (d *Oracle) DefaultSchema() string { return "user" }

func (d *Oracle) TablesQuery() string {
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL ORDER BY TABLE_NAME`
}

func (d *Oracle) ColumnsQuery() string {
	return `SELECT
    t.TABLE_NAME,
    t.COLUMN_NAME,
    t.DATA_TYPE,
    t.CHAR_LENGTH,
    t.DATA_PRECISION,
    t.DATA_SCALE,
    CASE WHEN t.NULLABLE = 'Y' THEN 'YES' ELSE 'NO' END,
    CASE WHEN p.CONSTRAINT_NAME IS NOT NULL THEN 'PRI' ELSE '' END,
    CASE WHEN u.CONSTRAINT_NAME IS NOT NULL THEN 'UNIQUE' ELSE '' END
FROM USER_TAB_COLUMNS t
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'P'
) p ON t.TABLE_NAME = p.TABLE_NAME AND t.COLUMN_NAME = p.COLUMN_NAME
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'U'
) u ON t.TABLE_NAME = u.TABLE_NAME AND t.COLUMN_NAME = u.COLUMN_NAME
WHERE :1 IS NOT NULL
ORDER BY t.TABLE_NAME, t.COLUMN_ID`
}

func (d *Oracle) ForeignKeysQuery() string {
	return `SELECT
    c.TABLE_NAME,
    c.CONSTRAINT_NAME,
    cc.COLUMN_NAME,
    r.TABLE_NAME,
    rcc.COLUMN_NAME
FROM USER_CONSTRAINTS c
JOIN USER_CONS_COLUMNS cc ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME AND c.OWNER = cc.OWNER
JOIN USER_CONSTRAINTS r ON c.R_CONSTRAINT_NAME = r.CONSTRAINT_NAME AND c.R_OWNER = r.OWNER
JOIN USER_CONS_COLUMNS rcc ON r.CONSTRAINT_NAME = rcc.CONSTRAINT_NAME AND r.OWNER = rcc.OWNER AND cc.POSITION = rcc.POSITION
WHERE c.CONSTRAINT_TYPE = 'R' AND :1 IS NOT NULL
ORDER BY c.TABLE_NAME, cc.POSITION`
}
