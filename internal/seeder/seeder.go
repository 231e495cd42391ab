// Package seeder renders executable INSERT scripts with plausible sample
// data for a schema model. Tables are visited in dependency order and every
// random draw comes from one seeded source, so a given model, dialect and
// seed always produce the same script.
package seeder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"schemaforge/dialect"
	"schemaforge/schema"
)

// Options control seed generation.
type Options struct {
	// Rows is the row count per table. Zero means DefaultRows.
	Rows int
	// Seed fixes the random source. Zero means DefaultSeed rather than a
	// time-based seed, so repeated runs stay reproducible.
	Seed int64
	// OnProgress, when set, is called once per emitted row.
	OnProgress func()
}

const (
	DefaultRows = 10
	DefaultSeed = 1
)

// Dates come from a fixed window; a clock-based window would change the
// output between runs even under the same seed.
var (
	dateFrom = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateTo   = time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)
)

func (o Options) withDefaults() Options {
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	return o
}

// rowState tracks the mixed-radix cursor key foreign key columns use to
// enumerate parent pools, keeping composite key combinations distinct.
type rowState struct {
	row    int
	stride int
}

// Generate renders INSERT statements for every table in the model, parents
// before children, one statement per row. Foreign key columns draw from the
// key values generated for the referenced table, so the script satisfies
// its own constraints when executed top to bottom.
func Generate(m *schema.Model, d dialect.Dialect, opts Options) (string, error) {
	if m == nil || len(m.Tables) == 0 {
		return "", nil
	}
	if problems := m.Validate(); len(problems) > 0 {
		return "", fmt.Errorf("seed: invalid model: %s", problems[0])
	}

	opts = opts.withDefaults()
	faker := gofakeit.New(opts.Seed)
	pool := make(map[string][]string)
	referenced := referencedColumns(m)

	var b strings.Builder
	for _, t := range schema.SortByDependencies(m.Tables) {
		if len(t.Columns) == 0 {
			continue
		}
		writeTable(&b, t, d, faker, opts, pool, referenced)
	}
	return b.String(), nil
}

func writeTable(b *strings.Builder, t schema.Table, d dialect.Dialect, f *gofakeit.Faker, opts Options, pool map[string][]string, referenced map[string]bool) {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = d.QuoteIdentifier(c.Name)
	}
	prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES ",
		d.QuoteIdentifier(t.Name), strings.Join(names, ", "))

	fmt.Fprintf(b, "-- %s\n", t.Name)
	for row := 1; row <= opts.Rows; row++ {
		rs := &rowState{row: row, stride: 1}
		vals := make([]string, len(t.Columns))
		for i := range t.Columns {
			vals[i] = literal(f, d, &t.Columns[i], rs, pool)
		}
		fmt.Fprintf(b, "%s(%s);\n", prefix, strings.Join(vals, ", "))

		// Values become available to child tables only after their own
		// row is complete, so a row never references itself.
		for i, c := range t.Columns {
			if referenced[poolKey(t.Name, c.Name)] {
				pool[poolKey(t.Name, c.Name)] = append(pool[poolKey(t.Name, c.Name)], vals[i])
			}
		}
		if opts.OnProgress != nil {
			opts.OnProgress()
		}
	}
	b.WriteString("\n")
}

// literal renders one column value as a SQL literal for the dialect.
func literal(f *gofakeit.Faker, d dialect.Dialect, col *schema.Column, rs *rowState, pool map[string][]string) string {
	if col.IsForeignKey {
		return foreignKeyLiteral(f, col, rs, pool)
	}
	if len(col.EnumValues) > 0 {
		return d.QuoteLiteral(col.EnumValues[f.Number(0, len(col.EnumValues)-1)])
	}

	switch col.Type {
	case schema.TypeInt:
		return intLiteral(f, col, rs.row)
	case schema.TypeVarchar, schema.TypeText:
		return d.QuoteLiteral(stringValue(f, col, rs.row))
	case schema.TypeBoolean:
		return boolLiteral(f, d, col)
	case schema.TypeDate:
		return dateLiteral(f, d, false)
	case schema.TypeTimestamp:
		return dateLiteral(f, d, true)
	case schema.TypeFloat, schema.TypeDouble, schema.TypeDecimal:
		return decimalLiteral(f, col)
	case schema.TypeJSON:
		return d.QuoteLiteral(fmt.Sprintf(`{"tag": %q}`, f.Word()))
	case schema.TypeUUID:
		return d.QuoteLiteral(f.UUID())
	case schema.TypeArray:
		return d.QuoteLiteral(fmt.Sprintf("{%s,%s}", f.Word(), f.Word()))
	default:
		return d.QuoteLiteral(f.Word())
	}
}

func foreignKeyLiteral(f *gofakeit.Faker, col *schema.Column, rs *rowState, pool map[string][]string) string {
	vals := pool[poolKey(col.ReferencesTable, col.ReferencesColumn)]
	if len(vals) == 0 {
		// Empty pool means a reference cycle or a self reference on the
		// first row. NULL where allowed, otherwise the first sequential
		// key, which a self-referencing row satisfies on its own.
		if col.IsNullable {
			return "NULL"
		}
		return "1"
	}
	if col.IsPrimaryKey || col.IsUnique {
		// Key columns walk the parent pools in mixed-radix order so
		// composite keys built from several foreign keys never repeat
		// while enough combinations remain.
		idx := ((rs.row - 1) / rs.stride) % len(vals)
		rs.stride *= len(vals)
		return vals[idx]
	}
	return vals[f.Number(0, len(vals)-1)]
}

func intLiteral(f *gofakeit.Faker, col *schema.Column, row int) string {
	if col.IsPrimaryKey || col.IsUnique {
		return strconv.Itoa(row)
	}

	name := strings.ToLower(col.Name)
	meaning := analyzeMeaning(col.Name)
	switch {
	case strings.Contains(meaning, "yesno") || strings.Contains(name, "active") ||
		strings.Contains(name, "enabled") || strings.Contains(name, "is_"):
		return strconv.Itoa(f.Number(0, 1))
	case strings.Contains(name, "year") || strings.Contains(meaning, "year"):
		return strconv.Itoa(2000 + f.Number(0, 25))
	case strings.Contains(name, "age"):
		return strconv.Itoa(f.Number(18, 90))
	case strings.Contains(meaning, "count") || strings.Contains(meaning, "quantity"):
		return strconv.Itoa(f.Number(1, 100))
	}

	maxVal := 50000
	if col.Precision > 0 && col.Precision < 10 {
		limit := 1
		for i := 0; i < col.Precision; i++ {
			limit *= 10
		}
		if limit-1 < maxVal {
			maxVal = limit - 1
		}
		if maxVal < 1 {
			maxVal = 9
		}
	}
	return strconv.Itoa(f.Number(1, maxVal))
}

// stringValue picks a plausible string for the column, keyed on the raw
// name and on its decoded meaning so abbreviated spellings seed the same
// way as full ones.
func stringValue(f *gofakeit.Faker, col *schema.Column, row int) string {
	name := strings.ToLower(col.Name)
	meaning := analyzeMeaning(col.Name)
	unique := col.IsPrimaryKey || col.IsUnique
	hasID := strings.HasSuffix(name, "id")

	var s string
	switch {
	case strings.Contains(name, "year") || strings.Contains(meaning, "year"):
		return truncate(strconv.Itoa(2000+f.Number(0, 25)), col.Length)
	case !hasID && (strings.Contains(meaning, "phone") || strings.Contains(name, "phone") || strings.Contains(name, "mobile")):
		s = f.Phone()
	case !hasID && (strings.Contains(meaning, "email") || strings.Contains(name, "email")):
		return emailValue(f, col, row)
	case !hasID && (strings.Contains(name, "username") || strings.Contains(name, "login")):
		s = f.Username()
	case !hasID && strings.Contains(meaning, "password"):
		s = f.Password(true, true, true, false, false, 12)
	case !hasID && strings.Contains(meaning, "url"):
		s = f.URL()
	case !hasID && strings.Contains(meaning, "ip"):
		s = f.IPv4Address()
	case !hasID && strings.Contains(name, "first"):
		s = f.FirstName()
	case !hasID && strings.Contains(name, "last"):
		s = f.LastName()
	case !hasID && (strings.Contains(meaning, "name") || strings.Contains(name, "name")):
		s = f.Name()
	case !hasID && (strings.Contains(meaning, "address") || strings.Contains(name, "address")):
		s = f.Street()
	case strings.Contains(meaning, "zipcode") || strings.Contains(name, "zip") || strings.Contains(name, "postal"):
		s = f.Zip()
	case strings.Contains(meaning, "yesno") || strings.Contains(name, "active") || strings.Contains(name, "is_"):
		if f.Bool() {
			return "Y"
		}
		return "N"
	case !hasID && (strings.Contains(meaning, "title") || strings.Contains(meaning, "subject")):
		s = f.Sentence(3)
	case !hasID && (strings.Contains(meaning, "description") || strings.Contains(meaning, "content") ||
		strings.Contains(meaning, "comment") || strings.Contains(meaning, "text")):
		s = f.Sentence(8)
	case !hasID && (strings.Contains(meaning, "country") || strings.Contains(name, "country")):
		s = f.Country()
	case !hasID && (strings.Contains(meaning, "city") || strings.Contains(name, "city")):
		s = f.City()
	case !hasID && strings.Contains(name, "company"):
		s = f.Company()
	case col.Length > 0 && col.Length < 20:
		s = f.Word()
	default:
		s = f.Sentence(5)
	}

	if unique {
		return uniqueTag(s, row, col.Length)
	}
	return truncate(s, col.Length)
}

func emailValue(f *gofakeit.Faker, col *schema.Column, row int) string {
	s := f.Email()
	if col.IsPrimaryKey || col.IsUnique {
		// The row number lands before the @ so tagged addresses keep a
		// valid shape.
		if at := strings.Index(s, "@"); at > 0 {
			s = s[:at] + strconv.Itoa(row) + s[at:]
		}
	}
	return truncate(s, col.Length)
}

func decimalLiteral(f *gofakeit.Faker, col *schema.Column) string {
	scale := 2
	if col.Type == schema.TypeDecimal && (col.Precision > 0 || col.Scale > 0) {
		scale = col.Scale
	}
	return strconv.FormatFloat(f.Price(0.99, 99.99), 'f', scale, 64)
}

func boolLiteral(f *gofakeit.Faker, d dialect.Dialect, col *schema.Column) string {
	v := f.Bool()
	// Dialects that store booleans in numeric columns (BIT, NUMBER(1))
	// reject the keyword literals.
	tn := d.TypeName(*col)
	if strings.Contains(tn, "BIT") || strings.Contains(tn, "NUMBER") {
		if v {
			return "1"
		}
		return "0"
	}
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func dateLiteral(f *gofakeit.Faker, d dialect.Dialect, withTime bool) string {
	v := f.DateRange(dateFrom, dateTo)
	if withTime {
		s := v.Format("2006-01-02 15:04:05")
		// Oracle takes no ISO timestamp literals without an NLS override.
		if d.Name() == "oracle" {
			return fmt.Sprintf("TO_TIMESTAMP('%s', 'YYYY-MM-DD HH24:MI:SS')", s)
		}
		return d.QuoteLiteral(s)
	}
	s := v.Format("2006-01-02")
	if d.Name() == "oracle" {
		return fmt.Sprintf("TO_DATE('%s', 'YYYY-MM-DD')", s)
	}
	return d.QuoteLiteral(s)
}

// uniqueTag appends the row number so unique columns never collide,
// shortening the base value first when a length cap applies.
func uniqueTag(s string, row, limit int) string {
	tag := "-" + strconv.Itoa(row)
	if limit <= 0 {
		return s + tag
	}
	if limit <= len(tag) {
		return truncate(strconv.Itoa(row), limit)
	}
	return truncate(s, limit-len(tag)) + tag
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func poolKey(table, column string) string {
	return strings.ToLower(table) + "\x00" + strings.ToLower(column)
}

// referencedColumns collects the (table, column) pairs some foreign key
// points at; only their values need pooling.
func referencedColumns(m *schema.Model) map[string]bool {
	refs := make(map[string]bool)
	for _, t := range m.Tables {
		for _, c := range t.Columns {
			if c.IsForeignKey {
				refs[poolKey(c.ReferencesTable, c.ReferencesColumn)] = true
			}
		}
	}
	return refs
}
