package generator

import (
	"fmt"
	"strings"

	"schemaforge/schema"
)

// ExportGORM renders the model as a Go source file of GORM structs: one
// struct per table with column tags, belongs-to fields for foreign keys
// and a TableName override preserving the physical name.
func ExportGORM(m *schema.Model) string {
	var b strings.Builder
	b.WriteString("// Code generated by schemaforge. DO NOT EDIT.\n")
	b.WriteString("package models\n")

	if usesTime(m) {
		b.WriteString("\nimport \"time\"\n")
	}

	for _, t := range m.Tables {
		structName := pascal(singular(t.Name))
		fmt.Fprintf(&b, "\ntype %s struct {\n", structName)
		for _, c := range t.Columns {
			fmt.Fprintf(&b, "\t%s %s `gorm:%q`\n", pascal(c.Name), goType(c), gormTag(c))
		}
		for _, c := range t.ForeignKeyColumns() {
			ref := m.TableByName(c.ReferencesTable)
			if ref == nil {
				continue
			}
			fieldName := pascal(singular(ref.Name))
			if fieldName == structName || fieldName == pascal(c.Name) {
				continue
			}
			fmt.Fprintf(&b, "\t%s *%s `gorm:\"foreignKey:%s;references:%s\"`\n",
				fieldName, fieldName, pascal(c.Name), pascal(c.ReferencesColumn))
		}
		b.WriteString("}\n")
		fmt.Fprintf(&b, "\nfunc (%s) TableName() string { return %q }\n", structName, t.Name)
	}
	return b.String()
}

func gormTag(c schema.Column) string {
	parts := []string{"column:" + c.Name}
	if c.IsPrimaryKey {
		parts = append(parts, "primaryKey")
	}
	if c.Type == schema.TypeVarchar && c.Length > 0 {
		parts = append(parts, fmt.Sprintf("size:%d", c.Length))
	}
	if !c.IsNullable && !c.IsPrimaryKey {
		parts = append(parts, "not null")
	}
	if c.IsUnique {
		parts = append(parts, "unique")
	}
	return strings.Join(parts, ";")
}

func goType(c schema.Column) string {
	var base string
	switch c.Type {
	case schema.TypeInt:
		base = "int"
	case schema.TypeBoolean:
		base = "bool"
	case schema.TypeDate, schema.TypeTimestamp:
		base = "time.Time"
	case schema.TypeFloat:
		base = "float32"
	case schema.TypeDouble, schema.TypeDecimal:
		base = "float64"
	case schema.TypeArray:
		return "[]string"
	default: // VARCHAR, TEXT, JSON, UUID, ENUM
		base = "string"
	}
	if c.IsNullable && !c.IsPrimaryKey {
		return "*" + base
	}
	return base
}

func usesTime(m *schema.Model) bool {
	for _, t := range m.Tables {
		for _, c := range t.Columns {
			if c.Type == schema.TypeDate || c.Type == schema.TypeTimestamp {
				return true
			}
		}
	}
	return false
}

var initialisms = map[string]string{
	"id": "ID", "uuid": "UUID", "url": "URL", "api": "API",
	"json": "JSON", "sql": "SQL", "html": "HTML", "ip": "IP",
}

// pascal converts snake_case to PascalCase, upper-casing common
// initialisms the way Go code expects (user_id -> UserID).
func pascal(name string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' || r == ' ' }) {
		lower := strings.ToLower(part)
		if up, ok := initialisms[lower]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(lower[1:])
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}

// camel is pascal with a lower-cased first rune (user_id -> userID).
func camel(name string) string {
	p := pascal(name)
	i := 1
	for i < len(p) && p[i] >= 'A' && p[i] <= 'Z' {
		i++
	}
	if i > 1 && i < len(p) {
		i--
	}
	return strings.ToLower(p[:i]) + p[i:]
}

// singular strips the plural suffix from an English table name
// (users -> user, categories -> category, statuses -> status).
func singular(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(lower, "ses") || strings.HasSuffix(lower, "xes") ||
		strings.HasSuffix(lower, "zes") || strings.HasSuffix(lower, "ches") ||
		strings.HasSuffix(lower, "shes"):
		return name[:len(name)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}
