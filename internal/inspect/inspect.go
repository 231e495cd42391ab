// Package inspect builds a schema model from a live database. Dialects
// with an information_schema go through their Introspector catalog
// queries; SQLite goes through PRAGMA statements.
package inspect

import (
	"database/sql"
	"fmt"
	"strings"

	"schemaforge/dialect"
	"schemaforge/parser"
	"schemaforge/schema"
)

// FromDatabase reads tables, then columns, then foreign keys for
// schemaName and assembles them into a model. An empty schemaName falls
// back to the dialect default. Foreign keys pointing at tables outside
// the schema are dropped rather than failing the import.
func FromDatabase(db *sql.DB, intro dialect.Introspector, schemaName string) (*schema.Model, error) {
	target := schemaName
	if target == "" {
		target = intro.DefaultSchema()
	}
	if target == "" {
		return nil, fmt.Errorf("%s: schema name required", intro.Name())
	}

	m := schema.NewModel()
	index := make(map[string]int)

	rows, err := db.Query(intro.TablesQuery(), target)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		index[strings.ToLower(name)] = len(m.Tables)
		m.Tables = append(m.Tables, schema.NewTable(name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	if err := loadColumns(db, intro, target, m, index); err != nil {
		return nil, err
	}
	if err := loadForeignKeys(db, intro, target, m); err != nil {
		return nil, err
	}
	return m, nil
}

func loadColumns(db *sql.DB, intro dialect.Introspector, target string, m *schema.Model, index map[string]int) error {
	rows, err := db.Query(intro.ColumnsQuery(), target)
	if err != nil {
		return fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tName, cName, rawType, isNull, colKey, isUnique sql.NullString
		var charLen, precision, scale sql.NullInt64
		if err := rows.Scan(&tName, &cName, &rawType, &charLen, &precision, &scale, &isNull, &colKey, &isUnique); err != nil {
			return fmt.Errorf("scan column (table %s): %w", tName.String, err)
		}
		if !tName.Valid || !cName.Valid {
			continue
		}
		i, ok := index[strings.ToLower(tName.String)]
		if !ok {
			continue
		}

		col := columnFromCatalog(cName.String, rawType.String,
			int(charLen.Int64), int(precision.Int64), int(scale.Int64))
		col.IsPrimaryKey = strings.Contains(colKey.String, "PRI")
		col.IsNullable = isNull.String == "YES"
		col.IsUnique = strings.Contains(isUnique.String, "UNIQUE")
		m.Tables[i].Columns = append(m.Tables[i].Columns, col)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate columns: %w", err)
	}
	return nil
}

func loadForeignKeys(db *sql.DB, intro dialect.Introspector, target string, m *schema.Model) error {
	rows, err := db.Query(intro.ForeignKeysQuery(), target)
	if err != nil {
		return fmt.Errorf("query foreign keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tName, constraint, cName, refTable, refColumn sql.NullString
		if err := rows.Scan(&tName, &constraint, &cName, &refTable, &refColumn); err != nil {
			return fmt.Errorf("scan foreign key: %w", err)
		}
		if !tName.Valid || !cName.Valid || !refTable.Valid {
			continue
		}
		m.LinkForeignKey(tName.String, cName.String, refTable.String, refColumn.String)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate foreign keys: %w", err)
	}
	return nil
}

// columnFromCatalog maps one catalog row onto a column, reusing the
// parser's type table for the raw spelling.
func columnFromCatalog(name, rawType string, charLen, precision, scale int) schema.Column {
	info := parser.TypeOf(typeExpr(rawType, charLen, precision, scale))
	col := schema.NewColumn(name, info.Type)
	switch info.Type {
	case schema.TypeVarchar:
		col.Length = info.Length
		if col.Length == 0 && charLen > 0 {
			col.Length = charLen
		}
	case schema.TypeDecimal:
		col.Precision, col.Scale = info.Precision, info.Scale
	case schema.TypeEnum:
		col.EnumValues = info.EnumValues
	}
	return col
}

// typeExpr rebuilds a parseable spelling from split catalog fields.
// Spellings that already carry arguments (MySQL COLUMN_TYPE) pass
// through; a negative character length is SQL Server's MAX marker.
func typeExpr(rawType string, charLen, precision, scale int) string {
	if strings.ContainsRune(rawType, '(') {
		return rawType
	}
	switch {
	case charLen < 0:
		return rawType + "(max)"
	case scale > 0:
		return fmt.Sprintf("%s(%d,%d)", rawType, precision, scale)
	case precision > 0:
		return fmt.Sprintf("%s(%d)", rawType, precision)
	case charLen > 0:
		return fmt.Sprintf("%s(%d)", rawType, charLen)
	default:
		return rawType
	}
}
