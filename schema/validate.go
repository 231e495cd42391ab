package schema

import (
	"fmt"
	"strings"
)

// Validate checks the model invariants and returns one message per
// violation, or nil for a consistent model. Violations are legal while a
// model is being edited; generation and seeding expect a clean model.
func (m *Model) Validate() []string {
	var problems []string

	tableNames := make(map[string]bool)
	tableIDs := make(map[string]bool)
	for _, t := range m.Tables {
		nameKey := strings.ToLower(t.Name)
		if t.Name == "" {
			problems = append(problems, "table with empty name")
		} else if tableNames[nameKey] {
			problems = append(problems, fmt.Sprintf("duplicate table name %q", t.Name))
		}
		tableNames[nameKey] = true
		tableIDs[t.ID] = true

		colNames := make(map[string]bool)
		for _, c := range t.Columns {
			colKey := strings.ToLower(c.Name)
			if c.Name == "" {
				problems = append(problems, fmt.Sprintf("table %q: column with empty name", t.Name))
			} else if colNames[colKey] {
				problems = append(problems, fmt.Sprintf("table %q: duplicate column name %q", t.Name, c.Name))
			}
			colNames[colKey] = true

			if c.IsForeignKey {
				ref := m.TableByName(c.ReferencesTable)
				switch {
				case ref == nil:
					problems = append(problems, fmt.Sprintf("table %q: column %q references unknown table %q", t.Name, c.Name, c.ReferencesTable))
				case ref.Column(c.ReferencesColumn) == nil:
					problems = append(problems, fmt.Sprintf("table %q: column %q references unknown column %q.%q", t.Name, c.Name, c.ReferencesTable, c.ReferencesColumn))
				}
			}
			if c.Type == TypeEnum && len(c.EnumValues) == 0 {
				problems = append(problems, fmt.Sprintf("table %q: enum column %q has no values", t.Name, c.Name))
			}
		}
	}

	for _, e := range m.Edges {
		if !tableIDs[e.SourceTable] {
			problems = append(problems, fmt.Sprintf("edge %q: unknown source table id %q", e.ID, e.SourceTable))
		}
		if !tableIDs[e.TargetTable] {
			problems = append(problems, fmt.Sprintf("edge %q: unknown target table id %q", e.ID, e.TargetTable))
		}
	}

	return problems
}
