package generator

import (
	"fmt"
	"strings"

	"schemaforge/schema"
)

// ExportPrisma renders the model as a Prisma schema: one model per table
// with scalar fields, @relation pairs for foreign keys and back-relation
// list fields on the referenced side.
func ExportPrisma(m *schema.Model) string {
	var b strings.Builder
	for i, t := range m.Tables {
		if i > 0 {
			b.WriteByte('\n')
		}
		writePrismaModel(&b, m, t)
	}
	return b.String()
}

func writePrismaModel(b *strings.Builder, m *schema.Model, t schema.Table) {
	fmt.Fprintf(b, "model %s {\n", pascal(singular(t.Name)))

	pks := t.PrimaryKeyColumns()
	for _, c := range t.Columns {
		fmt.Fprintf(b, "  %s %s%s\n", camel(c.Name), prismaType(c), prismaAttrs(c, len(pks) == 1))
	}

	// Relation field per foreign key, with the scalar column as its anchor.
	for _, c := range t.ForeignKeyColumns() {
		ref := m.TableByName(c.ReferencesTable)
		if ref == nil {
			continue
		}
		fmt.Fprintf(b, "  %s %s @relation(fields: [%s], references: [%s])\n",
			camel(singular(ref.Name)), pascal(singular(ref.Name)), camel(c.Name), camel(c.ReferencesColumn))
	}

	// Back-relation list fields for tables pointing here.
	for _, other := range m.Tables {
		if other.ID == t.ID {
			continue
		}
		for _, c := range other.ForeignKeyColumns() {
			if strings.EqualFold(c.ReferencesTable, t.Name) {
				fmt.Fprintf(b, "  %s %s[]\n", camel(other.Name), pascal(singular(other.Name)))
				break
			}
		}
	}

	if len(pks) > 1 {
		names := make([]string, len(pks))
		for i, n := range pks {
			names[i] = camel(n)
		}
		fmt.Fprintf(b, "  @@id([%s])\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(b, "  @@map(%q)\n", t.Name)
	b.WriteString("}\n")
}

func prismaType(c schema.Column) string {
	var base string
	switch c.Type {
	case schema.TypeInt:
		base = "Int"
	case schema.TypeBoolean:
		base = "Boolean"
	case schema.TypeDate, schema.TypeTimestamp:
		base = "DateTime"
	case schema.TypeFloat, schema.TypeDouble:
		base = "Float"
	case schema.TypeDecimal:
		base = "Decimal"
	case schema.TypeJSON:
		base = "Json"
	case schema.TypeArray:
		return "String[]"
	default: // VARCHAR, TEXT, UUID, ENUM
		base = "String"
	}
	if c.IsNullable && !c.IsPrimaryKey {
		return base + "?"
	}
	return base
}

func prismaAttrs(c schema.Column, singlePK bool) string {
	var attrs []string
	if c.IsPrimaryKey && singlePK {
		attrs = append(attrs, "@id")
	}
	if c.IsUnique {
		attrs = append(attrs, "@unique")
	}
	for _, ct := range c.Constraints {
		if ct.Kind != schema.ConstraintDefault || ct.Value == "" {
			continue
		}
		if v, ok := prismaDefault(ct.Value); ok {
			attrs = append(attrs, "@default("+v+")")
		}
	}
	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

// prismaDefault translates a SQL default literal into Prisma syntax;
// expressions with no Prisma equivalent are omitted.
func prismaDefault(value string) (string, bool) {
	switch upper := strings.ToUpper(value); {
	case upper == "CURRENT_TIMESTAMP" || upper == "NOW()":
		return "now()", true
	case upper == "TRUE" || upper == "FALSE":
		return strings.ToLower(value), true
	case upper == "NULL":
		return "", false
	case strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") && len(value) >= 2:
		return fmt.Sprintf("%q", strings.ReplaceAll(value[1:len(value)-1], "''", "'")), true
	case isNumeric(value):
		return value, true
	default:
		return "", false
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	dots := 0
	for ; i < len(s); i++ {
		if s[i] == '.' {
			dots++
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return dots <= 1 && len(s) > 0
}
