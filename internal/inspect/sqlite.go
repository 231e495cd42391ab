package inspect

import (
	"database/sql"
	"fmt"
	"strings"

	"schemaforge/dialect"
	"schemaforge/parser"
	"schemaforge/schema"
)

// FromSQLite builds a model through PRAGMA statements: sqlite_master for
// table names, table_info for columns, index_list/index_info for unique
// columns and foreign_key_list for links. Foreign keys are applied after
// every table is read so reference order in the file does not matter.
func FromSQLite(db *sql.DB) (*schema.Model, error) {
	quote := (&dialect.SQLite{}).QuoteIdentifier

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	m := schema.NewModel()
	for _, name := range names {
		t := schema.NewTable(name)
		if err := sqliteColumns(db, quote(name), &t); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		if err := sqliteUniques(db, quote(name), &t); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		m.Tables = append(m.Tables, t)
	}

	for _, name := range names {
		if err := sqliteForeignKeys(db, quote(name), name, m); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
	}
	return m, nil
}

func sqliteColumns(db *sql.DB, quoted string, t *schema.Table) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", quoted))
	if err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("scan table_info: %w", err)
		}

		info := parser.TypeOf(colType)
		col := schema.NewColumn(name, info.Type)
		col.Length = info.Length
		col.Precision, col.Scale = info.Precision, info.Scale
		col.EnumValues = info.EnumValues
		col.IsPrimaryKey = pk > 0
		col.IsNullable = notNull == 0 && pk == 0
		if dflt.Valid && dflt.String != "" {
			col.Constraints = append(col.Constraints, schema.Constraint{
				Kind:  schema.ConstraintDefault,
				Value: dflt.String,
			})
		}
		t.Columns = append(t.Columns, col)
	}
	return rows.Err()
}

// sqliteUniques marks columns covered by a single-column unique index.
// Primary-key autoindexes are skipped; the PK flag already covers them.
func sqliteUniques(db *sql.DB, quoted string, t *schema.Table) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA index_list(%s)", quoted))
	if err != nil {
		return fmt.Errorf("index_list: %w", err)
	}
	defer rows.Close()

	var uniqueIndexes []string
	for rows.Next() {
		var seq, unique, partial int
		var name, origin string
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			return fmt.Errorf("scan index_list: %w", err)
		}
		if unique == 1 && origin != "pk" {
			uniqueIndexes = append(uniqueIndexes, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate index_list: %w", err)
	}

	for _, idx := range uniqueIndexes {
		cols, err := sqliteIndexColumns(db, idx)
		if err != nil {
			return err
		}
		if len(cols) != 1 {
			continue
		}
		if c := t.Column(cols[0]); c != nil {
			c.IsUnique = true
		}
	}
	return nil
}

func sqliteIndexColumns(db *sql.DB, index string) ([]string, error) {
	quoted := (&dialect.SQLite{}).QuoteIdentifier(index)
	rows, err := db.Query(fmt.Sprintf("PRAGMA index_info(%s)", quoted))
	if err != nil {
		return nil, fmt.Errorf("index_info: %w", err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var seqno, cid int
		var name sql.NullString
		if err := rows.Scan(&seqno, &cid, &name); err != nil {
			return nil, fmt.Errorf("scan index_info: %w", err)
		}
		if name.Valid {
			cols = append(cols, name.String)
		}
	}
	return cols, rows.Err()
}

func sqliteForeignKeys(db *sql.DB, quoted, name string, m *schema.Model) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA foreign_key_list(%s)", quoted))
	if err != nil {
		return fmt.Errorf("foreign_key_list: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, seq int
		var refTable, fromCol, onUpdate, onDelete, match string
		var toCol sql.NullString
		if err := rows.Scan(&id, &seq, &refTable, &fromCol, &toCol, &onUpdate, &onDelete, &match); err != nil {
			return fmt.Errorf("scan foreign_key_list: %w", err)
		}
		// A NULL target column means the referenced table's primary key.
		m.LinkForeignKey(name, fromCol, refTable, strings.TrimSpace(toCol.String))
	}
	return rows.Err()
}
