//go:build integration
// +build integration

package inspect_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/internal/inspect"
	"schemaforge/schema"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY,
  email VARCHAR(255) NOT NULL UNIQUE,
  active BOOLEAN DEFAULT 1
);
CREATE TABLE posts (
  id INTEGER PRIMARY KEY,
  user_id INTEGER NOT NULL,
  title VARCHAR(200),
  FOREIGN KEY (user_id) REFERENCES users(id)
);`)
	require.NoError(t, err)
	return db
}

func TestFromSQLite(t *testing.T) {
	m, err := inspect.FromSQLite(openTestDB(t))
	require.NoError(t, err)
	require.Len(t, m.Tables, 2)

	users := m.TableByName("users")
	require.NotNil(t, users)
	id := users.Column("id")
	require.NotNil(t, id)
	assert.Equal(t, schema.TypeInt, id.Type)
	assert.True(t, id.IsPrimaryKey)
	assert.False(t, id.IsNullable)

	email := users.Column("email")
	require.NotNil(t, email)
	assert.Equal(t, schema.TypeVarchar, email.Type)
	assert.Equal(t, 255, email.Length)
	assert.False(t, email.IsNullable)
	assert.True(t, email.IsUnique)

	active := users.Column("active")
	require.NotNil(t, active)
	assert.Equal(t, schema.TypeBoolean, active.Type)
	require.Len(t, active.Constraints, 1)
	assert.Equal(t, schema.ConstraintDefault, active.Constraints[0].Kind)
	assert.Equal(t, "1", active.Constraints[0].Value)

	posts := m.TableByName("posts")
	require.NotNil(t, posts)
	userID := posts.Column("user_id")
	require.NotNil(t, userID)
	assert.True(t, userID.IsForeignKey)
	assert.Equal(t, "users", userID.ReferencesTable)
	assert.Equal(t, "id", userID.ReferencesColumn)

	require.Len(t, m.Edges, 1)
	assert.Equal(t, users.ID, m.Edges[0].SourceTable)
	assert.Equal(t, posts.ID, m.Edges[0].TargetTable)
	assert.Empty(t, m.Validate())
}

func TestFromSQLite_EmptyDatabase(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m, err := inspect.FromSQLite(db)
	require.NoError(t, err)
	assert.Empty(t, m.Tables)
	assert.Empty(t, m.Edges)
}
