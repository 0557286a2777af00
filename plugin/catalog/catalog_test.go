package catalog

import (
	"strings"
	"testing"
)

const sampleManifest = `{
	"items": [
		{"id": "u9-001", "targetText": "Où est la gare ?", "glossText": "Where is the station?", "unit": 9, "commonality": 0.92, "type": "translation"},
		{"id": "u9-002", "targetText": "Comment allez-vous ?", "targetTextInformal": "Comment vas-tu ?", "unit": 9, "commonality": 0.88},
		{"id": "u10-001", "targetText": "Je voudrais un café.", "unit": 10, "commonality": 0.95, "type": "dialogue"}
	]
}`

func TestParse(t *testing.T) {
	items, err := Parse(strings.NewReader(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].Unit != 9 || items[0].Type != TypeTranslation {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	// Untyped items default to translation.
	if items[1].Type != TypeTranslation {
		t.Errorf("default type = %q, want translation", items[1].Type)
	}
}

func TestParseRejectsBadManifests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"duplicate id", `{"items":[{"id":"a","targetText":"x","commonality":1},{"id":"a","targetText":"y","commonality":1}]}`},
		{"empty id", `{"items":[{"id":"","targetText":"x","commonality":1}]}`},
		{"missing target", `{"items":[{"id":"a","commonality":1}]}`},
		{"zero commonality", `{"items":[{"id":"a","targetText":"x","commonality":0}]}`},
		{"not json", `items: []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.body)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestVariants(t *testing.T) {
	formalOnly := &Item{TargetText: "Bonjour."}
	if got := formalOnly.Variants(); len(got) != 1 {
		t.Errorf("Variants() = %v, want 1 entry", got)
	}

	both := &Item{TargetText: "Comment allez-vous ?", TargetTextInformal: "Comment vas-tu ?"}
	if got := both.Variants(); len(got) != 2 || got[1] != "Comment vas-tu ?" {
		t.Errorf("Variants() = %v", got)
	}
}
