package dialect

import "strings"

// ansiReserved is the reserved-word core shared by every dialect. The
// per-dialect sets below only add words on top of it.
var ansiReserved = wordSet(
	"ADD", "ALL", "ALTER", "AND", "ANY", "AS", "ASC", "BETWEEN", "BY",
	"CASE", "CAST", "CHECK", "COLUMN", "CONSTRAINT", "CREATE", "CROSS",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "DEFAULT",
	"DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "END", "EXCEPT",
	"EXISTS", "FOREIGN", "FROM", "FULL", "GRANT", "GROUP", "HAVING", "IN",
	"INNER", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "KEY", "LEFT",
	"LIKE", "NOT", "NULL", "ON", "OR", "ORDER", "OUTER", "PRIMARY",
	"REFERENCES", "REVOKE", "RIGHT", "SELECT", "SET", "TABLE", "THEN",
	"TO", "UNION", "UNIQUE", "UPDATE", "VALUES", "WHEN", "WHERE", "WITH",
)

var mysqlReserved = wordSet(
	"BINARY", "BLOB", "CHANGE", "DATABASE", "DATABASES", "DELAYED", "DIV",
	"ENCLOSED", "ESCAPED", "FORCE", "FULLTEXT", "IGNORE", "INDEX",
	"INFILE", "KILL", "LIMIT", "LOAD", "LOCK", "LOW_PRIORITY", "OUTFILE",
	"REGEXP", "RENAME", "REPLACE", "RLIKE", "SHOW", "STRAIGHT_JOIN",
	"TERMINATED", "UNLOCK", "USE", "ZEROFILL",
)

var postgresReserved = wordSet(
	"ANALYSE", "ANALYZE", "ARRAY", "ASYMMETRIC", "BOTH", "COLLATE",
	"CONCURRENTLY", "CURRENT_ROLE", "CURRENT_USER", "DEFERRABLE", "DO",
	"FETCH", "FREEZE", "ILIKE", "INITIALLY", "LATERAL", "LEADING",
	"LIMIT", "LOCALTIME", "LOCALTIMESTAMP", "OFFSET", "ONLY", "PLACING",
	"RETURNING", "SESSION_USER", "SIMILAR", "SYMMETRIC", "TRAILING",
	"USER", "USING", "VARIADIC", "VERBOSE", "WINDOW",
)

var sqlserverReserved = wordSet(
	"BACKUP", "BREAK", "BROWSE", "BULK", "CHECKPOINT", "CLUSTERED",
	"COMPUTE", "CONTAINS", "DATABASE", "DBCC", "DENY", "DISK",
	"DISTRIBUTED", "EXEC", "EXECUTE", "FILE", "FILLFACTOR", "HOLDLOCK",
	"IDENTITY", "INDEX", "KILL", "MERGE", "NOCHECK", "OFF", "OPENQUERY",
	"OVER", "PERCENT", "PIVOT", "PLAN", "PRINT", "PROC", "PROCEDURE",
	"RAISERROR", "READTEXT", "RECONFIGURE", "RESTORE", "ROWCOUNT",
	"RULE", "SHUTDOWN", "TEXTSIZE", "TOP", "TRAN", "TRANSACTION",
	"TRIGGER", "TRUNCATE", "UNPIVOT", "USE", "WAITFOR", "WRITETEXT",
)

var sqliteReserved = wordSet(
	"ABORT", "ATTACH", "AUTOINCREMENT", "BEFORE", "CASCADE", "CONFLICT",
	"DATABASE", "DEFERRED", "DETACH", "EACH", "EXCLUSIVE", "EXPLAIN",
	"FAIL", "GLOB", "IMMEDIATE", "INDEX", "INDEXED", "INSTEAD", "ISNULL",
	"LIMIT", "MATCH", "NOTNULL", "OFFSET", "PLAN", "PRAGMA", "QUERY",
	"RAISE", "REGEXP", "REINDEX", "RELEASE", "ROLLBACK", "SAVEPOINT",
	"TEMP", "TEMPORARY", "TRANSACTION", "TRIGGER", "VACUUM", "VIEW",
	"VIRTUAL", "WITHOUT",
)

var oracleReserved = wordSet(
	"ACCESS", "AUDIT", "CLUSTER", "COMMENT", "COMPRESS", "CONNECT",
	"DATE", "EXCLUSIVE", "FILE", "IDENTIFIED", "IMMEDIATE", "INCREMENT",
	"INDEX", "INITIAL", "LEVEL", "LOCK", "LONG", "MAXEXTENTS", "MINUS",
	"MODE", "NOAUDIT", "NOCOMPRESS", "NOWAIT", "NUMBER", "OFFLINE",
	"ONLINE", "PCTFREE", "PRIOR", "PUBLIC", "RAW", "RESOURCE", "ROW",
	"ROWID", "ROWNUM", "ROWS", "SESSION", "SHARE", "SIZE", "START",
	"SUCCESSFUL", "SYNONYM", "SYSDATE", "UID", "USER", "VALIDATE",
	"VARCHAR2", "WHENEVER",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// reserved reports whether word is in the ANSI core or the extra set.
func reserved(extra map[string]bool, word string) bool {
	w := strings.ToUpper(word)
	return ansiReserved[w] || extra[w]
}
