package templates

import (
	"testing"

	"auditcore/pkg/domain"
)

func TestGet(t *testing.T) {
	if _, ok := Get(domain.AuditTypeMRR); !ok {
		t.Fatalf("no MRR template")
	}
	if _, ok := Get(domain.AuditTypeFSR); !ok {
		t.Fatalf("no FSR template")
	}
	if _, ok := Get(domain.AuditType("XYZ")); ok {
		t.Fatalf("template returned for unknown audit type")
	}
}

func TestTemplateShapes(t *testing.T) {
	cases := []struct {
		auditType    domain.AuditType
		wantItems    int
		wantSections int
	}{
		{domain.AuditTypeMRR, 36, 4},
		{domain.AuditTypeFSR, 94, 7},
	}
	for _, tc := range cases {
		t.Run(string(tc.auditType), func(t *testing.T) {
			template, ok := Get(tc.auditType)
			if !ok {
				t.Fatalf("no template for %s", tc.auditType)
			}
			if template.AuditType != tc.auditType {
				t.Fatalf("template type = %s", template.AuditType)
			}
			if got := len(template.Sections); got != tc.wantSections {
				t.Fatalf("section count = %d, want %d", got, tc.wantSections)
			}
			if got := template.ItemCount(); got != tc.wantItems {
				t.Fatalf("item count = %d, want %d", got, tc.wantItems)
			}
			for _, section := range template.Sections {
				if section.Name == "" || section.Key == "" {
					t.Fatalf("section with empty key or name: %+v", section)
				}
				if len(section.Items) == 0 {
					t.Fatalf("section %s has no items", section.Key)
				}
			}
		})
	}
}

func TestTemplateItemIDsUnique(t *testing.T) {
	for _, auditType := range []domain.AuditType{domain.AuditTypeMRR, domain.AuditTypeFSR} {
		template, _ := Get(auditType)
		seen := make(map[string]bool)
		for _, item := range template.Flatten() {
			if item.ID == "" {
				t.Fatalf("%s template has an item with no id", auditType)
			}
			if seen[item.ID] {
				t.Fatalf("%s template repeats item id %s", auditType, item.ID)
			}
			seen[item.ID] = true
			if item.Description == "" || item.Category == "" {
				t.Fatalf("%s item %s missing description or category", auditType, item.ID)
			}
		}
	}
}

func TestFlattenIndependence(t *testing.T) {
	template, _ := Get(domain.AuditTypeMRR)

	first := template.Flatten()
	for i := range first {
		if first[i].Completed || first[i].CompletedAt != nil || first[i].Notes != "" {
			t.Fatalf("flattened item %s not pristine: %+v", first[i].ID, first[i])
		}
	}

	first[0].Completed = true
	first[0].Notes = "scribble"

	second := template.Flatten()
	if second[0].Completed || second[0].Notes != "" {
		t.Fatalf("mutating one flatten leaked into the next")
	}
}
