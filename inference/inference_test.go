package inference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/inference"
	"schemaforge/schema"
)

func table(name string, cols ...schema.Column) schema.Table {
	t := schema.NewTable(name)
	t.Columns = append(t.Columns, cols...)
	return t
}

func pk(name string, typ schema.ColumnType) schema.Column {
	c := schema.NewColumn(name, typ)
	c.IsPrimaryKey = true
	c.IsNullable = false
	return c
}

func col(name string, typ schema.ColumnType) schema.Column {
	return schema.NewColumn(name, typ)
}

func TestBasic_NamingPattern(t *testing.T) {
	tables := []schema.Table{
		table("users", pk("id", schema.TypeInt), col("email", schema.TypeVarchar)),
		table("posts", pk("id", schema.TypeInt), col("user_id", schema.TypeInt)),
	}

	got := inference.Basic(tables)

	require.Len(t, got, 1)
	s := got[0]
	assert.Equal(t, "s-1", s.ID)
	assert.Equal(t, "users", s.SourceTable)
	assert.Equal(t, "posts", s.TargetTable)
	assert.Equal(t, schema.OneToMany, s.Type)
	assert.Equal(t, 0.8, s.Confidence)
	assert.Contains(t, s.Reason, "user_id")
}

func TestBasic_SkipsExistingForeignKeys(t *testing.T) {
	userID := col("user_id", schema.TypeInt)
	userID.IsForeignKey = true
	userID.ReferencesTable = "users"
	userID.ReferencesColumn = "id"

	tables := []schema.Table{
		table("users", pk("id", schema.TypeInt)),
		table("posts", pk("id", schema.TypeInt), userID),
	}

	assert.Empty(t, inference.Basic(tables))
}

func TestBasic_RequiresTypeMatch(t *testing.T) {
	tables := []schema.Table{
		table("users", pk("id", schema.TypeUUID)),
		table("posts", pk("id", schema.TypeInt), col("user_id", schema.TypeInt)),
	}

	assert.Empty(t, inference.Basic(tables))
}

func TestBasic_SingularAndPluralSpellings(t *testing.T) {
	tables := []schema.Table{
		table("categories", pk("id", schema.TypeInt)),
		table("items", pk("id", schema.TypeInt), col("category_id", schema.TypeInt), col("labelsid", schema.TypeInt)),
		table("labels", pk("id", schema.TypeInt)),
	}

	got := inference.Basic(tables)

	require.Len(t, got, 2)
	assert.Equal(t, "categories", got[0].SourceTable)
	assert.Equal(t, "items", got[0].TargetTable)
	assert.Equal(t, "labels", got[1].SourceTable)
	assert.Equal(t, "items", got[1].TargetTable)
}

func TestBasic_CaseInsensitive(t *testing.T) {
	tables := []schema.Table{
		table("Users", pk("ID", schema.TypeInt)),
		table("Posts", pk("ID", schema.TypeInt), col("USER_ID", schema.TypeInt)),
	}

	got := inference.Basic(tables)
	require.Len(t, got, 1)
	assert.Equal(t, "Users", got[0].SourceTable)
}

func TestBasic_SmallInputs(t *testing.T) {
	assert.Empty(t, inference.Basic(nil))
	assert.Empty(t, inference.Basic([]schema.Table{table("users", pk("id", schema.TypeInt))}))
}

func TestAdvanced_PluralPairManyToMany(t *testing.T) {
	m := schema.NewModel()
	m.Tables = append(m.Tables,
		table("users", pk("id", schema.TypeInt)),
		table("roles", pk("id", schema.TypeInt)),
	)

	got := inference.Advanced(m)

	require.Len(t, got, 1)
	s := got[0]
	assert.Equal(t, "users", s.SourceTable)
	assert.Equal(t, "roles", s.TargetTable)
	assert.Equal(t, schema.ManyToMany, s.Type)
	assert.Equal(t, 0.6, s.Confidence)
}

func TestAdvanced_JoinTableNameSuppresses(t *testing.T) {
	m := schema.NewModel()
	m.Tables = append(m.Tables,
		table("users", pk("id", schema.TypeInt)),
		table("roles", pk("id", schema.TypeInt)),
		table("user_roles", col("user_id", schema.TypeInt), col("role_id", schema.TypeInt)),
	)

	for _, s := range inference.Advanced(m) {
		linksPair := (s.SourceTable == "users" && s.TargetTable == "roles") ||
			(s.SourceTable == "roles" && s.TargetTable == "users")
		assert.False(t, linksPair, "join table name should suppress %s -> %s", s.SourceTable, s.TargetTable)
	}
}

func TestAdvanced_StructuralJunctionSuppressesEverything(t *testing.T) {
	m := schema.NewModel()
	m.Tables = append(m.Tables,
		table("posts", pk("id", schema.TypeInt)),
		table("tags", pk("id", schema.TypeInt)),
		table("taggings", pk("post_id", schema.TypeInt), pk("tag_id", schema.TypeInt)),
	)
	require.True(t, m.LinkForeignKey("taggings", "post_id", "posts", "id"))
	require.True(t, m.LinkForeignKey("taggings", "tag_id", "tags", "id"))

	assert.Empty(t, inference.Advanced(m))
}

func TestAdvanced_LexicalOneToMany(t *testing.T) {
	m := schema.NewModel()
	m.Tables = append(m.Tables,
		table("account", pk("id", schema.TypeInt)),
		table("account_settings", pk("id", schema.TypeInt)),
	)

	got := inference.Advanced(m)

	require.Len(t, got, 1)
	s := got[0]
	assert.Equal(t, "account", s.SourceTable)
	assert.Equal(t, "account_settings", s.TargetTable)
	assert.Equal(t, schema.OneToMany, s.Type)
	assert.Equal(t, 0.5, s.Confidence)
	assert.Contains(t, s.Reason, `"account"`)
}

func TestAdvanced_SkipsConnectedPairs(t *testing.T) {
	m := schema.NewModel()
	m.Tables = append(m.Tables,
		table("users", pk("id", schema.TypeInt)),
		table("posts", pk("id", schema.TypeInt), col("user_id", schema.TypeInt)),
	)
	require.True(t, m.LinkForeignKey("posts", "user_id", "users", "id"))

	assert.Empty(t, inference.Advanced(m))
}

func TestAdvanced_SmallInputs(t *testing.T) {
	assert.Nil(t, inference.Advanced(nil))
	assert.Nil(t, inference.Advanced(schema.NewModel()))

	m := schema.NewModel()
	m.Tables = append(m.Tables, table("users", pk("id", schema.TypeInt)))
	assert.Nil(t, inference.Advanced(m))
}

func TestAdvanced_DeterministicAndPure(t *testing.T) {
	m := schema.NewModel()
	m.Tables = append(m.Tables,
		table("users", pk("id", schema.TypeInt)),
		table("posts", pk("id", schema.TypeInt), col("user_id", schema.TypeInt)),
		table("comments", pk("id", schema.TypeInt)),
	)
	before := m.Clone()

	first := inference.Advanced(m)
	second := inference.Advanced(m)

	assert.Equal(t, first, second)
	assert.Equal(t, before, m)
}

func TestAll_PrefersHigherConfidencePass(t *testing.T) {
	m := schema.NewModel()
	m.Tables = append(m.Tables,
		table("users", pk("id", schema.TypeInt)),
		table("posts", pk("id", schema.TypeInt), col("user_id", schema.TypeInt)),
	)

	got := inference.All(m)

	// The naming pass and the plural-pair pass both hit users/posts; the
	// merged view keeps only the 0.8 naming suggestion.
	require.Len(t, got, 1)
	assert.Equal(t, "s-1", got[0].ID)
	assert.Equal(t, schema.OneToMany, got[0].Type)
	assert.Equal(t, 0.8, got[0].Confidence)
}
