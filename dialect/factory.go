package dialect

import "fmt"

// Get returns the dialect registered under key. Driver-name aliases
// (postgres, mssql, sqlite3) resolve to their canonical dialect.
func Get(key string) (Dialect, error) {
	switch key {
	case "mysql":
		return &MySQL{}, nil
	case "postgresql", "postgres":
		return &Postgres{}, nil
	case "sqlserver", "mssql":
		return &SQLServer{}, nil
	case "sqlite", "sqlite3":
		return &SQLite{}, nil
	case "oracle":
		return &Oracle{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q (options: mysql, postgresql, sqlserver, sqlite, oracle)", key)
	}
}

// Keys lists the canonical dialect keys in display order.
func Keys() []string {
	return []string{"mysql", "postgresql", "sqlserver", "sqlite", "oracle"}
}

// Ensure interface implementation
var _ Dialect = (*MySQL)(nil)
var _ Dialect = (*Postgres)(nil)
var _ Dialect = (*SQLServer)(nil)
var _ Dialect = (*SQLite)(nil)
var _ Dialect = (*Oracle)(nil)

// Introspection is information_schema based; SQLite uses PRAGMAs and stays out.
var _ Introspector = (*MySQL)(nil)
var _ Introspector = (*Postgres)(nil)
var _ Introspector = (*SQLServer)(nil)
var _ Introspector = (*Oracle)(nil)
