package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schemaforge/schema"
)

func TestTypeExpr(t *testing.T) {
	cases := []struct {
		rawType                  string
		charLen, precision, scale int
		want                     string
	}{
		{"varchar", 255, 0, 0, "varchar(255)"},
		{"nvarchar", -1, 0, 0, "nvarchar(max)"},
		{"numeric", 0, 10, 2, "numeric(10,2)"},
		{"NUMBER", 0, 1, 0, "NUMBER(1)"},
		{"int4", 0, 32, 0, "int4(32)"},
		{"bool", 0, 0, 0, "bool"},
		{"varchar(255)", 255, 0, 0, "varchar(255)"},
		{"enum('a','b')", 0, 0, 0, "enum('a','b')"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, typeExpr(c.rawType, c.charLen, c.precision, c.scale), c.rawType)
	}
}

func TestColumnFromCatalog(t *testing.T) {
	email := columnFromCatalog("email", "varchar", 255, 0, 0)
	assert.Equal(t, schema.TypeVarchar, email.Type)
	assert.Equal(t, 255, email.Length)

	price := columnFromCatalog("price", "numeric", 0, 10, 2)
	assert.Equal(t, schema.TypeDecimal, price.Type)
	assert.Equal(t, 10, price.Precision)
	assert.Equal(t, 2, price.Scale)

	flag := columnFromCatalog("active", "NUMBER", 0, 1, 0)
	assert.Equal(t, schema.TypeBoolean, flag.Type)

	count := columnFromCatalog("n", "NUMBER", 0, 10, 0)
	assert.Equal(t, schema.TypeInt, count.Type)

	status := columnFromCatalog("status", "enum('open','closed')", 0, 0, 0)
	assert.Equal(t, schema.TypeEnum, status.Type)
	assert.Equal(t, []string{"open", "closed"}, status.EnumValues)

	note := columnFromCatalog("note", "nvarchar", -1, 0, 0)
	assert.Equal(t, schema.TypeText, note.Type)

	tags := columnFromCatalog("tags", "_text", 0, 0, 0)
	assert.Equal(t, schema.TypeArray, tags.Type)
}
