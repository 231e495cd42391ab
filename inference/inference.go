// Package inference proposes candidate relationships for a schema model.
// Two passes exist: Basic matches foreign-key naming conventions against
// primary keys, Advanced looks at structural and lexical similarity. Both
// are advisory and pure; the caller decides whether to apply a suggestion,
// and re-running after applying one does not produce it again.
package inference

import (
	"fmt"
	"strings"

	"schemaforge/schema"
)

const (
	namingConfidence     = 0.8
	structuralConfidence = 0.6
	lexicalConfidence    = 0.5
)

// Basic runs the naming-pattern pass: a column named {table}_id or
// {table}id (singular or plural spelling, case-insensitive) whose type
// matches that table's primary key suggests a one-to-many relationship.
// Columns that already are foreign keys are skipped.
func Basic(tables []schema.Table) []schema.Suggestion {
	var out []schema.Suggestion
	for _, src := range tables {
		patterns := namePatterns(src.Name)
		for _, dst := range tables {
			if dst.ID == src.ID {
				continue
			}
			for _, col := range dst.Columns {
				if col.IsForeignKey {
					continue
				}
				pattern, ok := matchPattern(col.Name, patterns)
				if !ok {
					continue
				}
				pk := primaryKeyOfType(src, col.Type)
				if pk == nil {
					continue
				}
				out = append(out, schema.Suggestion{
					ID:          fmt.Sprintf("s-%d", len(out)+1),
					SourceTable: src.Name,
					TargetTable: dst.Name,
					Type:        schema.OneToMany,
					Confidence:  namingConfidence,
					Reason: fmt.Sprintf("%s.%s matches the %q naming pattern for %s (primary key %s)",
						dst.Name, col.Name, pattern, src.Name, pk.Name),
				})
			}
		}
	}
	return out
}

// Advanced runs the structural pass: plural table pairs with no join table
// suggest a many-to-many, and tables sharing a name word suggest a
// one-to-many. Pairs already connected by an edge or foreign key are
// skipped, as are pairs the same call has already suggested.
func Advanced(m *schema.Model) []schema.Suggestion {
	if m == nil || len(m.Tables) < 2 {
		return nil
	}
	var out []schema.Suggestion
	suggested := make(map[string]bool)

	for i := 0; i < len(m.Tables); i++ {
		for j := i + 1; j < len(m.Tables); j++ {
			a, b := m.Tables[i], m.Tables[j]
			if !isPlural(a.Name) || !isPlural(b.Name) {
				continue
			}
			if connected(m, a, b) || hasJoinTable(m, a, b) {
				continue
			}
			out = append(out, schema.Suggestion{
				ID:          fmt.Sprintf("s-%d", len(out)+1),
				SourceTable: a.Name,
				TargetTable: b.Name,
				Type:        schema.ManyToMany,
				Confidence:  structuralConfidence,
				Reason:      fmt.Sprintf("%s and %s are plural entities with no join table linking them", a.Name, b.Name),
			})
			suggested[pairKey(a.Name, b.Name)] = true
		}
	}

	for i := range m.Tables {
		for j := range m.Tables {
			if i == j {
				continue
			}
			a, b := m.Tables[i], m.Tables[j]
			if suggested[pairKey(a.Name, b.Name)] || connected(m, a, b) {
				continue
			}
			word, ok := sharedWord(a.Name, b.Name)
			if !ok {
				continue
			}
			out = append(out, schema.Suggestion{
				ID:          fmt.Sprintf("s-%d", len(out)+1),
				SourceTable: a.Name,
				TargetTable: b.Name,
				Type:        schema.OneToMany,
				Confidence:  lexicalConfidence,
				Reason:      fmt.Sprintf("%s and %s share the name component %q", a.Name, b.Name, word),
			})
			suggested[pairKey(a.Name, b.Name)] = true
		}
	}
	return out
}

// All merges both passes with sequential IDs, keeping the first (highest
// confidence) suggestion when both passes hit the same table pair.
func All(m *schema.Model) []schema.Suggestion {
	if m == nil {
		return nil
	}
	var out []schema.Suggestion
	seen := make(map[string]bool)
	for _, s := range append(Basic(m.Tables), Advanced(m)...) {
		key := pairKey(s.SourceTable, s.TargetTable)
		if seen[key] {
			continue
		}
		seen[key] = true
		s.ID = fmt.Sprintf("s-%d", len(out)+1)
		out = append(out, s)
	}
	return out
}

// namePatterns lists the column spellings that would point at the table:
// users -> users_id, usersid, user_id, userid.
func namePatterns(table string) []string {
	lower := strings.ToLower(table)
	patterns := []string{lower + "_id", lower + "id"}
	if s := singular(lower); s != lower {
		patterns = append(patterns, s+"_id", s+"id")
	}
	return patterns
}

func matchPattern(column string, patterns []string) (string, bool) {
	lower := strings.ToLower(column)
	for _, p := range patterns {
		if lower == p {
			return p, true
		}
	}
	return "", false
}

func primaryKeyOfType(t schema.Table, typ schema.ColumnType) *schema.Column {
	for i, c := range t.Columns {
		if c.IsPrimaryKey && c.Type == typ {
			return &t.Columns[i]
		}
	}
	return nil
}

func connected(m *schema.Model, a, b schema.Table) bool {
	return m.HasEdge(a.ID, b.ID) || m.HasForeignKeyBetween(a.Name, b.Name) || m.HasForeignKeyBetween(b.Name, a.Name)
}

// hasJoinTable reports whether a third table already associates a and b,
// either structurally (its foreign keys cover both) or by a concatenated
// name such as post_tags for posts and tags.
func hasJoinTable(m *schema.Model, a, b schema.Table) bool {
	names := concatNames(a.Name, b.Name)
	for _, t := range m.Tables {
		if t.ID == a.ID || t.ID == b.ID {
			continue
		}
		if names[squash(t.Name)] {
			return true
		}
		refsA, refsB := false, false
		for _, c := range t.ForeignKeyColumns() {
			if strings.EqualFold(c.ReferencesTable, a.Name) {
				refsA = true
			}
			if strings.EqualFold(c.ReferencesTable, b.Name) {
				refsB = true
			}
		}
		if refsA && refsB {
			return true
		}
	}
	return false
}

// concatNames builds the squashed join-table spellings for a pair:
// singular and plural forms of each name, in both orders.
func concatNames(a, b string) map[string]bool {
	la, lb := squash(a), squash(b)
	formsA := []string{la, singular(la)}
	formsB := []string{lb, singular(lb)}
	names := make(map[string]bool)
	for _, fa := range formsA {
		for _, fb := range formsB {
			names[fa+fb] = true
			names[fb+fa] = true
		}
	}
	return names
}

// sharedWord returns the first normalized word the two table names have in
// common: user_profiles and users share "user".
func sharedWord(a, b string) (string, bool) {
	for _, wa := range words(a) {
		for _, wb := range words(b) {
			if wa == wb {
				return wa, true
			}
		}
	}
	return "", false
}

func words(name string) []string {
	parts := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	out := parts[:0]
	for _, p := range parts {
		if w := singular(p); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func squash(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(name))
}

func isPlural(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss")
}

func pairKey(a, b string) string {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la > lb {
		la, lb = lb, la
	}
	return la + "\x00" + lb
}

func singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "ses") || strings.HasSuffix(name, "xes") ||
		strings.HasSuffix(name, "zes") || strings.HasSuffix(name, "ches") ||
		strings.HasSuffix(name, "shes"):
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}
