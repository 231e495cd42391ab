package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/parser"
	"schemaforge/schema"
)

func TestParse_UsersPosts(t *testing.T) {
	sql := `
CREATE TABLE users (
  id INT PRIMARY KEY,
  email VARCHAR(255) NOT NULL
);
CREATE TABLE posts (
  id INT PRIMARY KEY,
  user_id INT,
  FOREIGN KEY (user_id) REFERENCES users(id)
);`

	m := parser.Parse(sql)

	require.Len(t, m.Tables, 2)
	users := m.TableByName("users")
	posts := m.TableByName("posts")
	require.NotNil(t, users)
	require.NotNil(t, posts)

	email := users.Column("email")
	require.NotNil(t, email)
	assert.Equal(t, schema.TypeVarchar, email.Type)
	assert.Equal(t, 255, email.Length)
	assert.False(t, email.IsNullable)

	userID := posts.Column("user_id")
	require.NotNil(t, userID)
	assert.True(t, userID.IsForeignKey)
	assert.Equal(t, "users", userID.ReferencesTable)
	assert.Equal(t, "id", userID.ReferencesColumn)

	require.Len(t, m.Edges, 1)
	edge := m.Edges[0]
	assert.Equal(t, users.ID, edge.SourceTable)
	assert.Equal(t, posts.ID, edge.TargetTable)
	assert.Equal(t, schema.OneToMany, edge.Type)
	assert.Equal(t, "id", edge.SourceColumn)
	assert.Equal(t, "user_id", edge.TargetColumn)
}

func TestParse_NeverErrors(t *testing.T) {
	cases := []string{
		"",
		"not sql at all",
		"SELECT * FROM users;",
		"CREATE TABLE",
		"CREATE TABLE broken (",
		"CREATE TABLE incomplete (id INT",
		"DROP TABLE users; ALTER TABLE posts ADD COLUMN x INT;",
	}
	for _, sql := range cases {
		m := parser.Parse(sql)
		require.NotNil(t, m, "input: %q", sql)
	}
	assert.Empty(t, parser.Parse("SELECT 1").Tables)
}

func TestParse_PartialRecovery(t *testing.T) {
	// One broken statement must not take down the rest of the script.
	sql := `
CREATE VIEW v AS SELECT 1;
CREATE TABLE good (id INT PRIMARY KEY);
CREATE TABLE also_good (id INT, ^^nonsense line^^, name VARCHAR(50));`

	m := parser.Parse(sql)

	require.Len(t, m.Tables, 2)
	assert.NotNil(t, m.TableByName("good"))
	also := m.TableByName("also_good")
	require.NotNil(t, also)
	assert.Len(t, also.Columns, 2)
}

func TestParse_Comments(t *testing.T) {
	sql := `
-- the users table
CREATE TABLE users (
  id INT PRIMARY KEY, -- surrogate key
  /* display name,
     shown in the header */
  name VARCHAR(100),
  bio TEXT DEFAULT '-- not a comment'
);`

	m := parser.Parse(sql)

	users := m.TableByName("users")
	require.NotNil(t, users)
	require.Len(t, users.Columns, 3)
	bio := users.Column("bio")
	require.Len(t, bio.Constraints, 1)
	assert.Equal(t, "'-- not a comment'", bio.Constraints[0].Value)
}

func TestParse_QuotedIdentifiers(t *testing.T) {
	sql := "CREATE TABLE `order` (\n" +
		"  `id` INT PRIMARY KEY,\n" +
		"  [select] INT,\n" +
		"  \"from\" VARCHAR(10)\n" +
		");"

	m := parser.Parse(sql)

	order := m.TableByName("order")
	require.NotNil(t, order)
	assert.NotNil(t, order.Column("select"))
	assert.NotNil(t, order.Column("from"))
}

func TestParse_SchemaQualifiedAndIfNotExists(t *testing.T) {
	sql := `CREATE TABLE IF NOT EXISTS public.users (id SERIAL PRIMARY KEY);`

	m := parser.Parse(sql)

	users := m.TableByName("users")
	require.NotNil(t, users)
	assert.Equal(t, schema.TypeInt, users.Column("id").Type)
}

func TestParse_ColumnModifiers(t *testing.T) {
	sql := `CREATE TABLE products (
  id INT PRIMARY KEY,
  sku VARCHAR(64) NOT NULL UNIQUE,
  price DECIMAL(10,2) DEFAULT 0 CHECK (price >= 0),
  status VARCHAR(16) DEFAULT 'draft',
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP DEFAULT now()
);`

	m := parser.Parse(sql)
	products := m.TableByName("products")
	require.NotNil(t, products)

	sku := products.Column("sku")
	assert.False(t, sku.IsNullable)
	assert.True(t, sku.IsUnique)

	price := products.Column("price")
	assert.Equal(t, schema.TypeDecimal, price.Type)
	assert.Equal(t, 10, price.Precision)
	assert.Equal(t, 2, price.Scale)
	require.Len(t, price.Constraints, 2)
	assert.Equal(t, schema.ConstraintDefault, price.Constraints[0].Kind)
	assert.Equal(t, "0", price.Constraints[0].Value)
	assert.Equal(t, schema.ConstraintCheck, price.Constraints[1].Kind)
	assert.Equal(t, "price >= 0", price.Constraints[1].Expression)

	assert.Equal(t, "'draft'", products.Column("status").Constraints[0].Value)
	assert.Equal(t, "CURRENT_TIMESTAMP", products.Column("created_at").Constraints[0].Value)
	assert.Equal(t, "now()", products.Column("updated_at").Constraints[0].Value)
}

func TestParse_CompositePrimaryKey(t *testing.T) {
	sql := `CREATE TABLE order_items (
  order_id INT,
  product_id INT,
  quantity INT NOT NULL,
  PRIMARY KEY (order_id, product_id)
);`

	m := parser.Parse(sql)
	items := m.TableByName("order_items")
	require.NotNil(t, items)
	assert.Equal(t, []string{"order_id", "product_id"}, items.PrimaryKeyColumns())
	assert.False(t, items.Column("order_id").IsNullable)
}

func TestParse_ForeignKeyBeforeColumn(t *testing.T) {
	// The constraint precedes the column it names; two-pass application
	// must still resolve it.
	sql := `CREATE TABLE users (id INT PRIMARY KEY);
CREATE TABLE posts (
  FOREIGN KEY (user_id) REFERENCES users(id),
  id INT PRIMARY KEY,
  user_id INT
);`

	m := parser.Parse(sql)
	userID := m.TableByName("posts").Column("user_id")
	require.NotNil(t, userID)
	assert.True(t, userID.IsForeignKey)
	assert.Equal(t, "users", userID.ReferencesTable)
}

func TestParse_ForwardTableReference(t *testing.T) {
	// posts is defined before users in the script.
	sql := `CREATE TABLE posts (
  id INT PRIMARY KEY,
  user_id INT,
  FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE TABLE users (id INT PRIMARY KEY);`

	m := parser.Parse(sql)
	assert.True(t, m.TableByName("posts").Column("user_id").IsForeignKey)
	require.Len(t, m.Edges, 1)
}

func TestParse_InlineReferences(t *testing.T) {
	sql := `CREATE TABLE users (id INT PRIMARY KEY);
CREATE TABLE sessions (
  id UUID PRIMARY KEY,
  user_id INT REFERENCES users(id) ON DELETE CASCADE
);`

	m := parser.Parse(sql)
	userID := m.TableByName("sessions").Column("user_id")
	assert.True(t, userID.IsForeignKey)
	assert.Equal(t, "users", userID.ReferencesTable)
	assert.Equal(t, "id", userID.ReferencesColumn)
}

func TestParse_ReferencesWithoutColumn(t *testing.T) {
	sql := `CREATE TABLE users (id INT PRIMARY KEY);
CREATE TABLE posts (id INT PRIMARY KEY, user_id INT REFERENCES users);`

	m := parser.Parse(sql)
	userID := m.TableByName("posts").Column("user_id")
	assert.True(t, userID.IsForeignKey)
	assert.Equal(t, "id", userID.ReferencesColumn)
}

func TestParse_UnresolvableForeignKeyDropped(t *testing.T) {
	sql := `CREATE TABLE posts (
  id INT PRIMARY KEY,
  user_id INT,
  FOREIGN KEY (user_id) REFERENCES users(id)
);`

	m := parser.Parse(sql)
	assert.False(t, m.TableByName("posts").Column("user_id").IsForeignKey)
	assert.Empty(t, m.Edges)
	assert.Empty(t, m.Validate())
}

func TestParse_SelfReference(t *testing.T) {
	sql := `CREATE TABLE employees (
  id INT PRIMARY KEY,
  manager_id INT,
  FOREIGN KEY (manager_id) REFERENCES employees(id)
);`

	m := parser.Parse(sql)
	mgr := m.TableByName("employees").Column("manager_id")
	assert.True(t, mgr.IsForeignKey)
	assert.Equal(t, "employees", mgr.ReferencesTable)
	require.Len(t, m.Edges, 1)
	assert.Equal(t, m.Edges[0].SourceTable, m.Edges[0].TargetTable)
}

func TestParse_TypeAliases(t *testing.T) {
	sql := `CREATE TABLE t (
  a SERIAL,
  b BIGINT,
  c NUMERIC(12,4),
  d JSONB,
  e NVARCHAR(MAX),
  f BIT,
  g UNIQUEIDENTIFIER,
  h TEXT[],
  i DOUBLE PRECISION,
  j TIMESTAMP WITH TIME ZONE,
  k DATETIME2,
  l NUMBER(10),
  m NUMBER(1),
  n NUMBER(10,2),
  o VARCHAR2(50),
  p CLOB,
  q FLOAT(53),
  r SOMETHING_EXOTIC
);`

	model := parser.Parse(sql)
	tbl := model.TableByName("t")
	require.NotNil(t, tbl)

	expect := map[string]schema.ColumnType{
		"a": schema.TypeInt,
		"b": schema.TypeInt,
		"c": schema.TypeDecimal,
		"d": schema.TypeJSON,
		"e": schema.TypeText,
		"f": schema.TypeBoolean,
		"g": schema.TypeUUID,
		"h": schema.TypeArray,
		"i": schema.TypeDouble,
		"j": schema.TypeTimestamp,
		"k": schema.TypeTimestamp,
		"l": schema.TypeInt,
		"m": schema.TypeBoolean,
		"n": schema.TypeDecimal,
		"o": schema.TypeVarchar,
		"p": schema.TypeText,
		"q": schema.TypeDouble,
		"r": schema.TypeText,
	}
	for name, want := range expect {
		col := tbl.Column(name)
		require.NotNil(t, col, name)
		assert.Equal(t, want, col.Type, name)
	}
}

func TestParse_Enum(t *testing.T) {
	sql := `CREATE TABLE tickets (
  id INT PRIMARY KEY,
  status ENUM('open', 'closed', 'on hold') NOT NULL DEFAULT 'open'
);`

	m := parser.Parse(sql)
	status := m.TableByName("tickets").Column("status")
	require.NotNil(t, status)
	assert.Equal(t, schema.TypeEnum, status.Type)
	assert.Equal(t, []string{"open", "closed", "on hold"}, status.EnumValues)
}

func TestParse_MySQLDumpDefinitions(t *testing.T) {
	sql := "CREATE TABLE `users` (\n" +
		"  `id` int NOT NULL AUTO_INCREMENT,\n" +
		"  `email` varchar(255) COLLATE utf8mb4_unicode_ci NOT NULL,\n" +
		"  `role` enum('admin','member') NOT NULL DEFAULT 'member',\n" +
		"  PRIMARY KEY (`id`),\n" +
		"  UNIQUE KEY `uk_email` (`email`),\n" +
		"  KEY `idx_role` (`role`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;"

	m := parser.Parse(sql)
	users := m.TableByName("users")
	require.NotNil(t, users)
	assert.Len(t, users.Columns, 3)
	assert.True(t, users.Column("id").IsPrimaryKey)
	assert.True(t, users.Column("email").IsUnique)
	assert.False(t, users.Column("role").IsUnique)
}

func TestParse_TableLevelCheck(t *testing.T) {
	sql := `CREATE TABLE accounts (
  id INT PRIMARY KEY,
  balance DECIMAL(12,2),
  CHECK (balance >= 0)
);`

	m := parser.Parse(sql)
	balance := m.TableByName("accounts").Column("balance")
	require.Len(t, balance.Constraints, 1)
	assert.Equal(t, schema.ConstraintCheck, balance.Constraints[0].Kind)
	assert.Equal(t, "balance >= 0", balance.Constraints[0].Expression)
}

func TestParse_DuplicateTableFirstWins(t *testing.T) {
	sql := `CREATE TABLE users (id INT PRIMARY KEY, email VARCHAR(255));
CREATE TABLE users (id INT);`

	m := parser.Parse(sql)
	require.Len(t, m.Tables, 1)
	assert.Len(t, m.Tables[0].Columns, 2)
}

func TestNormalizeType(t *testing.T) {
	cases := map[string]schema.ColumnType{
		"int":          schema.TypeInt,
		"int4":         schema.TypeInt,
		"int8":         schema.TypeInt,
		"varchar(255)": schema.TypeVarchar,
		"bpchar":       schema.TypeVarchar,
		"text":         schema.TypeText,
		"bool":         schema.TypeBoolean,
		"timestamptz":  schema.TypeTimestamp,
		"datetime":     schema.TypeTimestamp,
		"float4":       schema.TypeFloat,
		"float8":       schema.TypeDouble,
		"numeric":      schema.TypeDecimal,
		"jsonb":        schema.TypeJSON,
		"uuid":         schema.TypeUUID,
		"enum":         schema.TypeEnum,
		"_text":        schema.TypeArray,
		"text[]":       schema.TypeArray,
		"blob":         schema.TypeText,
	}
	for raw, want := range cases {
		assert.Equal(t, want, parser.NormalizeType(raw), raw)
	}
}
