// Package templates holds the fixed checklist templates that audits are
// instantiated from. Template content is reference data: it is immutable at
// runtime and consumed, never produced, by the rest of the system.
package templates

import "auditcore/pkg/domain"

// ItemDef defines one checklist item inside a template section.
type ItemDef struct {
	ID          string
	Description string
	Category    string
}

// Section is a named, ordered group of item definitions.
type Section struct {
	Key   string
	Name  string
	Items []ItemDef
}

// Template is the audit-type-specific checklist definition.
type Template struct {
	AuditType domain.AuditType
	Sections  []Section
}

// Get returns the template for the given audit type.
func Get(auditType domain.AuditType) (Template, bool) {
	switch auditType {
	case domain.AuditTypeMRR:
		return mrrTemplate, true
	case domain.AuditTypeFSR:
		return fsrTemplate, true
	}
	return Template{}, false
}

// ItemCount returns the total number of items across all sections.
func (t Template) ItemCount() int {
	n := 0
	for _, section := range t.Sections {
		n += len(section.Items)
	}
	return n
}

// Flatten expands the template into a checklist in section order, all items
// uncompleted. Every item is an independent copy so mutating the result never
// touches the template data.
func (t Template) Flatten() []domain.ChecklistItem {
	items := make([]domain.ChecklistItem, 0, t.ItemCount())
	for _, section := range t.Sections {
		for _, def := range section.Items {
			items = append(items, domain.ChecklistItem{
				ID:          def.ID,
				Description: def.Description,
				Category:    def.Category,
			})
		}
	}
	return items
}
