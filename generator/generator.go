// Package generator renders a schema model as executable DDL for a target
// dialect, classifies generated SQL for display, and exports ORM artifacts
// (GORM structs, Prisma schema).
package generator

import (
	"fmt"
	"strings"

	"schemaforge/dialect"
	"schemaforge/schema"
)

// Generate renders one CREATE TABLE statement per table: columns in stored
// order, then a PRIMARY KEY clause when any column is flagged, then one
// FOREIGN KEY clause per foreign-key column, then one CHECK clause per
// CHECK constraint. Tables are emitted in dependency order so the script
// executes top to bottom. Generation never fails for a model that passes
// Validate; types the dialect lacks render through its string fallback.
func Generate(m *schema.Model, d dialect.Dialect) string {
	var b strings.Builder
	for i, t := range schema.SortByDependencies(m.Tables) {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeTable(&b, t, d)
	}
	return b.String()
}

func writeTable(b *strings.Builder, t schema.Table, d dialect.Dialect) {
	fmt.Fprintf(b, "CREATE TABLE %s (\n", d.QuoteIdentifier(t.Name))

	var defs []string
	for _, c := range t.Columns {
		defs = append(defs, "  "+columnDef(c, d))
	}
	if pks := t.PrimaryKeyColumns(); len(pks) > 0 {
		defs = append(defs, fmt.Sprintf("  PRIMARY KEY (%s)", quoteAll(pks, d)))
	}
	for _, c := range t.ForeignKeyColumns() {
		defs = append(defs, fmt.Sprintf("  FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.QuoteIdentifier(c.Name), d.QuoteIdentifier(c.ReferencesTable), d.QuoteIdentifier(c.ReferencesColumn)))
	}
	for _, c := range t.Columns {
		for _, ct := range c.Constraints {
			if ct.Kind == schema.ConstraintCheck && ct.Expression != "" {
				defs = append(defs, fmt.Sprintf("  CHECK (%s)", ct.Expression))
			}
		}
	}

	b.WriteString(strings.Join(defs, ",\n"))
	b.WriteString("\n);\n")
}

func columnDef(c schema.Column, d dialect.Dialect) string {
	var b strings.Builder
	b.WriteString(d.QuoteIdentifier(c.Name))
	b.WriteByte(' ')
	b.WriteString(d.TypeName(c))
	if !c.IsNullable {
		b.WriteString(" NOT NULL")
	}
	for _, ct := range c.Constraints {
		if ct.Kind == schema.ConstraintDefault && ct.Value != "" {
			b.WriteString(" DEFAULT ")
			b.WriteString(ct.Value)
		}
	}
	if c.IsUnique {
		b.WriteString(" UNIQUE")
	}
	return b.String()
}

func quoteAll(names []string, d dialect.Dialect) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdentifier(n)
	}
	return strings.Join(quoted, ", ")
}
