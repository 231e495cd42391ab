package server

import (
	"schemaforge/layout"
	"schemaforge/schema"
)

// Request bodies for the schema endpoints.

type ParseRequest struct {
	SQL string `json:"sql" binding:"required"`
}

type GenerateRequest struct {
	Model *schema.Model `json:"model" binding:"required"`
	// Dialect is required for SQL output and ignored by the ORM formats.
	Dialect string `json:"dialect"`
	// Format selects the output: sql (default), gorm or prisma.
	Format string `json:"format"`
}

type FormatRequest struct {
	SQL string `json:"sql" binding:"required"`
}

type SuggestionsRequest struct {
	Model *schema.Model `json:"model" binding:"required"`
	// Advanced adds the many-to-many and lexical passes on top of the
	// naming-pattern pass.
	Advanced bool `json:"advanced"`
}

type ValidateRequest struct {
	Model *schema.Model `json:"model" binding:"required"`
}

type SeedRequest struct {
	Model   *schema.Model `json:"model" binding:"required"`
	Dialect string        `json:"dialect" binding:"required"`
	Rows    int           `json:"rows"`
	Seed    int64         `json:"seed"`
}

// LayoutRequest carries the diagram and, inline, the layout options. Only
// the tree and force algorithms read Edges.
type LayoutRequest struct {
	Nodes []layout.Node `json:"nodes"`
	Edges []layout.Edge `json:"edges"`
	layout.Options
}

// DialectInfo is the wire form of a dialect registry entry.
type DialectInfo struct {
	Key                 string `json:"key"`
	SupportsArrays      bool   `json:"supportsArrays"`
	SupportsJSON        bool   `json:"supportsJson"`
	SupportsEnums       bool   `json:"supportsEnums"`
	SupportsUUID        bool   `json:"supportsUuid"`
	SupportsInheritance bool   `json:"supportsInheritance"`
	MaxIdentifierLength int    `json:"maxIdentifierLength"`
}
