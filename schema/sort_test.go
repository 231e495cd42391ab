package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/schema"
)

func tableWithFK(name string, refs ...string) schema.Table {
	t := schema.NewTable(name)
	id := schema.NewColumn("id", schema.TypeInt)
	id.IsPrimaryKey = true
	id.IsNullable = false
	t.Columns = append(t.Columns, id)
	for _, ref := range refs {
		fk := schema.NewColumn(ref+"_id", schema.TypeInt)
		fk.IsForeignKey = true
		fk.ReferencesTable = ref
		fk.ReferencesColumn = "id"
		t.Columns = append(t.Columns, fk)
	}
	return t
}

func TestSortByDependencies_Simple(t *testing.T) {
	// users <- orders <- order_items
	tables := []schema.Table{
		tableWithFK("order_items", "orders"),
		tableWithFK("orders", "users"),
		tableWithFK("users"),
	}

	sorted := schema.SortByDependencies(tables)

	require.Len(t, sorted, 3)
	assert.Equal(t, "users", sorted[0].Name)
	assert.Equal(t, "orders", sorted[1].Name)
	assert.Equal(t, "order_items", sorted[2].Name)
}

func TestSortByDependencies_ComplexCircular(t *testing.T) {
	// A -> B -> C -> D -> E -> A (cycle), F -> E, G independent.
	tables := []schema.Table{
		tableWithFK("A", "B"),
		tableWithFK("B", "C"),
		tableWithFK("C", "D"),
		tableWithFK("D", "E"),
		tableWithFK("E", "A"),
		tableWithFK("F", "E"),
		tableWithFK("G"),
	}

	sorted := schema.SortByDependencies(tables)

	require.Len(t, sorted, len(tables))
	seen := make(map[string]bool)
	for _, tbl := range sorted {
		seen[tbl.Name] = true
	}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		assert.True(t, seen[name], "table %s missing from sorted output", name)
	}
	assert.Equal(t, "G", sorted[0].Name, "independent table should come first")
}

func TestSortByDependencies_Deterministic(t *testing.T) {
	tables := []schema.Table{
		tableWithFK("a", "b"),
		tableWithFK("b", "a"),
	}

	first := schema.SortByDependencies(tables)
	for i := 0; i < 10; i++ {
		again := schema.SortByDependencies(tables)
		require.Len(t, again, 2)
		assert.Equal(t, first[0].Name, again[0].Name)
		assert.Equal(t, first[1].Name, again[1].Name)
	}
}

func TestSortByDependencies_SelfReference(t *testing.T) {
	// Self references never count as dependencies.
	emp := tableWithFK("employees", "employees")

	sorted := schema.SortByDependencies([]schema.Table{emp})

	require.Len(t, sorted, 1)
	assert.Equal(t, "employees", sorted[0].Name)
}

func TestSortByDependencies_DoesNotMutateInput(t *testing.T) {
	tables := []schema.Table{
		tableWithFK("orders", "users"),
		tableWithFK("users"),
	}

	schema.SortByDependencies(tables)

	assert.Equal(t, "orders", tables[0].Name)
	assert.Equal(t, "users", tables[1].Name)
}
