package parser

import (
	"strconv"
	"strings"

	"schemaforge/schema"
)

// TypeInfo is a normalized column type plus the arguments that came with
// the raw spelling.
type TypeInfo struct {
	Type       schema.ColumnType
	Length     int
	Precision  int
	Scale      int
	EnumValues []string
}

// NormalizeType maps a raw SQL type spelling to its portable column type,
// discarding the arguments TypeOf keeps.
func NormalizeType(sqlType string) schema.ColumnType {
	return TypeOf(sqlType).Type
}

// TypeOf resolves a raw SQL type spelling, with optional arguments and
// array suffix ("varchar(255)", "int4", "NUMBER(10,2)", "enum('a','b')",
// "text[]"), into its portable type and arguments. Unknown names fall
// back to TEXT.
func TypeOf(sqlType string) TypeInfo {
	s := strings.TrimSpace(sqlType)
	array := strings.HasSuffix(s, "[]")
	if array {
		s = strings.TrimSpace(strings.TrimSuffix(s, "[]"))
	}
	// Postgres spells array udt names with a leading underscore (_text).
	if len(s) > 1 && s[0] == '_' {
		return TypeInfo{Type: schema.TypeArray}
	}
	base, argSrc := s, ""
	if i := strings.IndexByte(s, '('); i >= 0 {
		base = s[:i]
		if j := strings.LastIndexByte(s, ')'); j > i {
			argSrc = s[i+1 : j]
		}
	}
	base = strings.Join(strings.Fields(base), " ")
	return normalizeType(base, argSrc, array)
}

// normalizeType resolves a base type name (multiword names collapsed to
// single spaces) and raw argument text into a TypeInfo.
func normalizeType(base, argSrc string, array bool) TypeInfo {
	if array {
		return TypeInfo{Type: schema.TypeArray}
	}

	var nums []int
	var values []string
	hasMax := false
	for _, tok := range lex(argSrc) {
		switch tok.kind {
		case numberTok:
			if n, err := strconv.Atoi(strings.SplitN(tok.text, ".", 2)[0]); err == nil {
				nums = append(nums, n)
			}
		case stringTok:
			values = append(values, tok.text)
		case wordTok:
			if strings.EqualFold(tok.text, "MAX") {
				hasMax = true
			}
		}
	}
	first := func() int {
		if len(nums) > 0 {
			return nums[0]
		}
		return 0
	}
	second := func() int {
		if len(nums) > 1 {
			return nums[1]
		}
		return 0
	}

	switch strings.ToUpper(base) {
	case "INT", "INTEGER", "BIGINT", "SMALLINT", "MEDIUMINT", "SERIAL",
		"BIGSERIAL", "SMALLSERIAL", "INT2", "INT4", "INT8", "YEAR":
		return TypeInfo{Type: schema.TypeInt}
	case "TINYINT":
		if first() == 1 {
			return TypeInfo{Type: schema.TypeBoolean}
		}
		return TypeInfo{Type: schema.TypeInt}
	case "VARCHAR", "NVARCHAR", "VARCHAR2", "NVARCHAR2", "CHARACTER VARYING":
		if hasMax {
			return TypeInfo{Type: schema.TypeText}
		}
		return TypeInfo{Type: schema.TypeVarchar, Length: first()}
	case "CHAR", "NCHAR", "CHARACTER", "BPCHAR":
		return TypeInfo{Type: schema.TypeVarchar, Length: first()}
	case "TEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "NTEXT", "CLOB", "NCLOB":
		return TypeInfo{Type: schema.TypeText}
	case "BOOLEAN", "BOOL", "BIT":
		return TypeInfo{Type: schema.TypeBoolean}
	case "DATE":
		return TypeInfo{Type: schema.TypeDate}
	case "TIME", "TIMESTAMP", "DATETIME", "DATETIME2", "SMALLDATETIME",
		"TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITHOUT TIME ZONE":
		return TypeInfo{Type: schema.TypeTimestamp}
	case "FLOAT":
		// FLOAT(p) with p > 24 is double precision (SQL Server, Oracle).
		if first() > 24 {
			return TypeInfo{Type: schema.TypeDouble}
		}
		return TypeInfo{Type: schema.TypeFloat}
	case "REAL", "FLOAT4", "BINARY_FLOAT":
		return TypeInfo{Type: schema.TypeFloat}
	case "DOUBLE", "DOUBLE PRECISION", "FLOAT8", "BINARY_DOUBLE":
		return TypeInfo{Type: schema.TypeDouble}
	case "DECIMAL", "DEC", "NUMERIC", "MONEY", "SMALLMONEY":
		return TypeInfo{Type: schema.TypeDecimal, Precision: first(), Scale: second()}
	case "NUMBER":
		// Oracle NUMBER: (1) is the boolean idiom, a bare precision is an
		// integer, a fractional scale is a decimal.
		switch {
		case len(nums) == 0:
			return TypeInfo{Type: schema.TypeDecimal}
		case second() > 0:
			return TypeInfo{Type: schema.TypeDecimal, Precision: first(), Scale: second()}
		case first() == 1:
			return TypeInfo{Type: schema.TypeBoolean}
		default:
			return TypeInfo{Type: schema.TypeInt}
		}
	case "JSON", "JSONB":
		return TypeInfo{Type: schema.TypeJSON}
	case "UUID", "UNIQUEIDENTIFIER", "GUID":
		return TypeInfo{Type: schema.TypeUUID}
	case "ENUM", "SET":
		return TypeInfo{Type: schema.TypeEnum, EnumValues: values}
	case "ARRAY":
		return TypeInfo{Type: schema.TypeArray}
	default:
		return TypeInfo{Type: schema.TypeText}
	}
}
