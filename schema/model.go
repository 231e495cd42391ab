// Package schema defines the in-memory model exchanged between the DDL
// parser, the DDL generator, relationship inference and the layout engine:
// tables, columns, relationship edges and inference suggestions.
//
// The model is also the wire format of the designer frontend, so every type
// carries JSON tags. Components that consume a Model treat it as read-only;
// use Clone before mutating a model you do not own.
package schema

import (
	"strings"

	"github.com/google/uuid"
)

// ColumnType enumerates the portable column types the engine understands.
// Dialect-specific names (INTEGER, NUMERIC, JSONB, ...) are normalized to
// one of these by the parser; the generator maps them back out per dialect.
type ColumnType string

const (
	TypeInt       ColumnType = "INT"
	TypeVarchar   ColumnType = "VARCHAR"
	TypeText      ColumnType = "TEXT"
	TypeBoolean   ColumnType = "BOOLEAN"
	TypeDate      ColumnType = "DATE"
	TypeTimestamp ColumnType = "TIMESTAMP"
	TypeFloat     ColumnType = "FLOAT"
	TypeDouble    ColumnType = "DOUBLE"
	TypeDecimal   ColumnType = "DECIMAL"
	TypeJSON      ColumnType = "JSON"
	TypeUUID      ColumnType = "UUID"
	TypeEnum      ColumnType = "ENUM"
	TypeArray     ColumnType = "ARRAY"
)

// Types lists every ColumnType in a stable order.
func Types() []ColumnType {
	return []ColumnType{
		TypeInt, TypeVarchar, TypeText, TypeBoolean, TypeDate, TypeTimestamp,
		TypeFloat, TypeDouble, TypeDecimal, TypeJSON, TypeUUID, TypeEnum,
		TypeArray,
	}
}

// ConstraintKind distinguishes the column constraints the model tracks
// beyond the boolean flags on Column.
type ConstraintKind string

const (
	ConstraintCheck   ConstraintKind = "CHECK"
	ConstraintUnique  ConstraintKind = "UNIQUE"
	ConstraintDefault ConstraintKind = "DEFAULT"
)

// Constraint is an ordered column constraint. CHECK carries the raw
// expression, DEFAULT carries the literal value; UNIQUE carries neither.
type Constraint struct {
	Kind       ConstraintKind `json:"kind"`
	Expression string         `json:"expression,omitempty"`
	Value      string         `json:"value,omitempty"`
}

// Column describes one table column. ReferencesTable/ReferencesColumn are
// name strings, not object references; whenever IsForeignKey is set they
// must name an existing table and column in the same model (Validate
// reports violations, which are legal only transiently during edits).
type Column struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             ColumnType   `json:"type"`
	Length           int          `json:"length,omitempty"`
	Precision        int          `json:"precision,omitempty"`
	Scale            int          `json:"scale,omitempty"`
	IsPrimaryKey     bool         `json:"isPrimaryKey"`
	IsForeignKey     bool         `json:"isForeignKey"`
	IsNullable       bool         `json:"isNullable"`
	IsUnique         bool         `json:"isUnique"`
	ReferencesTable  string       `json:"referencesTable,omitempty"`
	ReferencesColumn string       `json:"referencesColumn,omitempty"`
	EnumValues       []string     `json:"enumValues,omitempty"`
	Constraints      []Constraint `json:"constraints,omitempty"`
}

// Table is an ordered sequence of columns. Column names are unique within a
// table; several columns flagged IsPrimaryKey form a composite key.
type Table struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// RelationshipType classifies a relationship edge or suggestion.
type RelationshipType string

const (
	OneToOne   RelationshipType = "one-to-one"
	OneToMany  RelationshipType = "one-to-many"
	ManyToMany RelationshipType = "many-to-many"
)

// Edge connects two tables by ID for rendering. Edges synthesized from
// foreign keys carry the column pair (SourceColumn on the referenced table,
// TargetColumn the FK column); manually drawn edges may omit both.
type Edge struct {
	ID           string           `json:"id"`
	SourceTable  string           `json:"sourceTable"`
	TargetTable  string           `json:"targetTable"`
	Type         RelationshipType `json:"type"`
	SourceColumn string           `json:"sourceColumn,omitempty"`
	TargetColumn string           `json:"targetColumn,omitempty"`
}

// Model is the aggregate exchanged between all engine components: an
// ordered list of tables plus the relationship edges between them.
type Model struct {
	Tables []Table `json:"tables"`
	Edges  []Edge  `json:"edges"`
}

// Suggestion is an inferred, unconfirmed candidate relationship. It refers
// to tables by name, carries a confidence in [0,1] and a human-readable
// reason. Suggestions are ephemeral and recomputed whenever the model
// changes; they are never persisted as part of the model.
type Suggestion struct {
	ID          string           `json:"id"`
	SourceTable string           `json:"sourceTable"`
	TargetTable string           `json:"targetTable"`
	Type        RelationshipType `json:"type"`
	Confidence  float64          `json:"confidence"`
	Reason      string           `json:"reason"`
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Tables: []Table{}, Edges: []Edge{}}
}

// NewTable returns a table with a fresh ID and no columns.
func NewTable(name string) Table {
	return Table{ID: uuid.NewString(), Name: name}
}

// NewColumn returns a nullable column of the given type with a fresh ID.
func NewColumn(name string, typ ColumnType) Column {
	return Column{ID: uuid.NewString(), Name: name, Type: typ, IsNullable: true}
}

// NewEdge returns an edge with a fresh ID between two table IDs.
func NewEdge(sourceTable, targetTable string, typ RelationshipType) Edge {
	return Edge{ID: uuid.NewString(), SourceTable: sourceTable, TargetTable: targetTable, Type: typ}
}

// TableByName returns the table with the given name (case-insensitive
// match, first wins) or nil.
func (m *Model) TableByName(name string) *Table {
	for i := range m.Tables {
		if strings.EqualFold(m.Tables[i].Name, name) {
			return &m.Tables[i]
		}
	}
	return nil
}

// TableByID returns the table with the given ID or nil.
func (m *Model) TableByID(id string) *Table {
	for i := range m.Tables {
		if m.Tables[i].ID == id {
			return &m.Tables[i]
		}
	}
	return nil
}

// Column returns the column with the given name (case-insensitive) or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return &t.Columns[i]
		}
	}
	return nil
}

// PrimaryKeyColumns returns the names of all columns flagged as primary
// key, in column order.
func (t *Table) PrimaryKeyColumns() []string {
	var pks []string
	for _, c := range t.Columns {
		if c.IsPrimaryKey {
			pks = append(pks, c.Name)
		}
	}
	return pks
}

// ForeignKeyColumns returns the columns flagged as foreign keys, in column
// order.
func (t *Table) ForeignKeyColumns() []Column {
	var fks []Column
	for _, c := range t.Columns {
		if c.IsForeignKey {
			fks = append(fks, c)
		}
	}
	return fks
}

// Dependencies returns the distinct names of tables this table references
// through foreign keys, excluding itself, in first-reference order.
func (t *Table) Dependencies() []string {
	var deps []string
	seen := make(map[string]bool)
	for _, c := range t.Columns {
		if !c.IsForeignKey || c.ReferencesTable == "" {
			continue
		}
		key := strings.ToLower(c.ReferencesTable)
		if strings.EqualFold(c.ReferencesTable, t.Name) || seen[key] {
			continue
		}
		seen[key] = true
		deps = append(deps, c.ReferencesTable)
	}
	return deps
}

// HasEdge reports whether any edge connects the two table IDs, in either
// direction.
func (m *Model) HasEdge(tableID, otherID string) bool {
	for _, e := range m.Edges {
		if (e.SourceTable == tableID && e.TargetTable == otherID) ||
			(e.SourceTable == otherID && e.TargetTable == tableID) {
			return true
		}
	}
	return false
}

// HasForeignKeyBetween reports whether either table holds a foreign key
// referencing the other, by table name.
func (m *Model) HasForeignKeyBetween(nameA, nameB string) bool {
	a := m.TableByName(nameA)
	b := m.TableByName(nameB)
	if a == nil || b == nil {
		return false
	}
	for _, c := range a.Columns {
		if c.IsForeignKey && strings.EqualFold(c.ReferencesTable, b.Name) {
			return true
		}
	}
	for _, c := range b.Columns {
		if c.IsForeignKey && strings.EqualFold(c.ReferencesTable, a.Name) {
			return true
		}
	}
	return false
}

// LinkForeignKey marks tableName.columnName as a foreign key referencing
// refTable.refColumn and appends the corresponding one-to-many edge. The
// link is applied only when all four names resolve in the model; it
// reports whether it did. Both the parser and database import build their
// edge sets through this single path.
func (m *Model) LinkForeignKey(tableName, columnName, refTable, refColumn string) bool {
	t := m.TableByName(tableName)
	r := m.TableByName(refTable)
	if t == nil || r == nil {
		return false
	}
	col := t.Column(columnName)
	if col == nil {
		return false
	}
	ref := r.Column(refColumn)
	if ref == nil {
		// REFERENCES without a column targets the primary key.
		if refColumn != "" {
			return false
		}
		pks := r.PrimaryKeyColumns()
		if len(pks) == 0 {
			return false
		}
		ref = r.Column(pks[0])
	}
	col.IsForeignKey = true
	col.ReferencesTable = r.Name
	col.ReferencesColumn = ref.Name
	edge := NewEdge(r.ID, t.ID, OneToMany)
	edge.SourceColumn = ref.Name
	edge.TargetColumn = col.Name
	m.Edges = append(m.Edges, edge)
	return true
}

// Clone returns a deep copy. Layout, inference and generation never mutate
// their input; interactive callers clone before editing instead.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	out := &Model{
		Tables: make([]Table, len(m.Tables)),
		Edges:  make([]Edge, len(m.Edges)),
	}
	copy(out.Edges, m.Edges)
	for i, t := range m.Tables {
		ct := t
		ct.Columns = make([]Column, len(t.Columns))
		for j, c := range t.Columns {
			cc := c
			if c.EnumValues != nil {
				cc.EnumValues = append([]string(nil), c.EnumValues...)
			}
			if c.Constraints != nil {
				cc.Constraints = append([]Constraint(nil), c.Constraints...)
			}
			ct.Columns[j] = cc
		}
		out.Tables[i] = ct
	}
	return out
}

