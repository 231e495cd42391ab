package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaforge/dialect"
	"schemaforge/generator"
	"schemaforge/inference"
	"schemaforge/internal/seeder"
	"schemaforge/layout"
	"schemaforge/parser"
	"schemaforge/schema"
)

// Handler exposes the engine packages over HTTP. It holds no state; every
// request carries the full model.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) bindFail(c *gin.Context, err error) {
	_ = c.Error(fmt.Errorf("binding error: %w", err))
	Fail(c, http.StatusBadRequest, err, "invalid request body")
}

// Parse handles POST /api/v1/schema/parse.
func (h *Handler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFail(c, err)
		return
	}

	Success(c, http.StatusOK, gin.H{"model": parser.Parse(req.SQL)}, "schema parsed")
}

// Generate handles POST /api/v1/schema/generate.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFail(c, err)
		return
	}

	switch req.Format {
	case "", "sql":
		d, err := dialect.Get(req.Dialect)
		if err != nil {
			Fail(c, http.StatusBadRequest, err, "unknown dialect")
			return
		}
		Success(c, http.StatusOK, gin.H{"sql": generator.Generate(req.Model, d)}, "ddl generated")
	case "gorm":
		Success(c, http.StatusOK, gin.H{"source": generator.ExportGORM(req.Model)}, "gorm models generated")
	case "prisma":
		Success(c, http.StatusOK, gin.H{"source": generator.ExportPrisma(req.Model)}, "prisma schema generated")
	default:
		Fail(c, http.StatusBadRequest, fmt.Errorf("unknown format %q", req.Format), "unknown format")
	}
}

// Format handles POST /api/v1/schema/format. It returns the classified
// tokens; concatenating their texts reproduces the input.
func (h *Handler) Format(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFail(c, err)
		return
	}

	tokens := generator.Classify(req.SQL)
	if tokens == nil {
		tokens = []generator.Token{}
	}
	Success(c, http.StatusOK, gin.H{"tokens": tokens}, "sql classified")
}

// Suggestions handles POST /api/v1/schema/suggestions.
func (h *Handler) Suggestions(c *gin.Context) {
	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFail(c, err)
		return
	}

	var suggestions []schema.Suggestion
	if req.Advanced {
		suggestions = inference.All(req.Model)
	} else {
		suggestions = inference.Basic(req.Model.Tables)
	}
	if suggestions == nil {
		suggestions = []schema.Suggestion{}
	}
	Success(c, http.StatusOK, gin.H{"suggestions": suggestions}, "relationships inferred")
}

// Validate handles POST /api/v1/schema/validate.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFail(c, err)
		return
	}

	problems := req.Model.Validate()
	if problems == nil {
		problems = []string{}
	}
	Success(c, http.StatusOK, gin.H{
		"valid":    len(problems) == 0,
		"problems": problems,
	}, "model validated")
}

// Seed handles POST /api/v1/schema/seed.
func (h *Handler) Seed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFail(c, err)
		return
	}

	d, err := dialect.Get(req.Dialect)
	if err != nil {
		Fail(c, http.StatusBadRequest, err, "unknown dialect")
		return
	}

	script, err := seeder.Generate(req.Model, d, seeder.Options{Rows: req.Rows, Seed: req.Seed})
	if err != nil {
		Fail(c, http.StatusBadRequest, err, "seed generation failed")
		return
	}
	Success(c, http.StatusOK, gin.H{"sql": script}, "seed script generated")
}

// Layout handles POST /api/v1/layout/:algorithm.
func (h *Handler) Layout(c *gin.Context) {
	var req LayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFail(c, err)
		return
	}

	var nodes []layout.Node
	algorithm := c.Param("algorithm")
	switch algorithm {
	case "grid":
		nodes = layout.Grid(req.Nodes, req.Options)
	case "radial":
		nodes = layout.Radial(req.Nodes, req.Options)
	case "tree":
		nodes = layout.Tree(req.Nodes, req.Edges, req.Options)
	case "force":
		nodes = layout.ForceDirected(req.Nodes, req.Edges, req.Options)
	default:
		Fail(c, http.StatusNotFound, fmt.Errorf("unknown algorithm %q", algorithm), "unknown layout algorithm")
		return
	}
	Success(c, http.StatusOK, gin.H{"nodes": nodes}, "layout computed")
}

// Dialects handles GET /api/v1/dialects.
func (h *Handler) Dialects(c *gin.Context) {
	keys := dialect.Keys()
	infos := make([]DialectInfo, 0, len(keys))
	for _, key := range keys {
		d, err := dialect.Get(key)
		if err != nil {
			continue
		}
		f := d.Features()
		infos = append(infos, DialectInfo{
			Key:                 key,
			SupportsArrays:      f.SupportsArrays,
			SupportsJSON:        f.SupportsJSON,
			SupportsEnums:       f.SupportsEnums,
			SupportsUUID:        f.SupportsUUID,
			SupportsInheritance: f.SupportsInheritance,
			MaxIdentifierLength: f.MaxIdentifierLength,
		})
	}
	Success(c, http.StatusOK, gin.H{"dialects": infos}, "")
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
