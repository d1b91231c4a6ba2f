package catalog

import "testing"

func TestRegistryCoversClassifier(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Covers(NewClassifier()); err != nil {
		t.Fatalf("registry does not cover classifier output: %v", err)
	}
}

func TestRegistryCoversReportsMissing(t *testing.T) {
	reg := &Registry{templates: map[TemplateID][]string{
		TemplateTaskInternal: {"Clarify task"},
	}}
	if err := reg.Covers(NewClassifier()); err == nil {
		t.Fatal("expected coverage error for near-empty registry")
	}
}

func TestLookupKnownTemplate(t *testing.T) {
	reg := NewRegistry()
	items, ok := reg.Lookup(TemplateBusinessTrip)
	if !ok {
		t.Fatal("business_trip template missing")
	}
	if len(items) != 7 {
		t.Fatalf("expected 7 business_trip items, got %d", len(items))
	}
	if items[0] != "Confirm trip objectives" {
		t.Fatalf("unexpected first item: %q", items[0])
	}
}

func TestLookupUnknownTemplate(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Lookup("no_such_template"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestIDsSortedAndComplete(t *testing.T) {
	reg := NewRegistry()
	ids := reg.IDs()
	if len(ids) != len(reg.templates) {
		t.Fatalf("expected %d ids, got %d", len(reg.templates), len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not sorted: %q before %q", ids[i-1], ids[i])
		}
	}
}
