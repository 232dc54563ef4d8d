package docstore

import (
	"reflect"
	"testing"
)

func TestSanitizeDropsNilValues(t *testing.T) {
	doc := Document{
		"name":  "Villa Vista",
		"empty": nil,
		"nested": map[string]any{
			"keep": "yes",
			"drop": nil,
		},
	}

	got := Sanitize(doc)

	want := Document{
		"name": "Villa Vista",
		"nested": map[string]any{
			"keep": "yes",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected sanitized doc: %#v", got)
	}
}

func TestSanitizeDropsTypedNils(t *testing.T) {
	var price *float64
	var tiers []any
	doc := Document{
		"price": price,
		"tiers": tiers,
		"order": 3,
	}

	got := Sanitize(doc)

	if _, ok := got["price"]; ok {
		t.Fatal("typed nil pointer survived sanitize")
	}
	if _, ok := got["tiers"]; ok {
		t.Fatal("nil slice survived sanitize")
	}
	if got["order"] != 3 {
		t.Fatalf("order changed: %v", got["order"])
	}
}

func TestSanitizeWalksSlices(t *testing.T) {
	doc := Document{
		"tiers": []any{
			map[string]any{"id": "tier-1", "price": nil},
			nil,
			map[string]any{"id": "tier-2"},
		},
	}

	got := Sanitize(doc)

	tiers, ok := got["tiers"].([]any)
	if !ok {
		t.Fatalf("tiers lost: %#v", got)
	}
	if len(tiers) != 2 {
		t.Fatalf("expected nil elements stripped, got %d tiers", len(tiers))
	}
	first := tiers[0].(map[string]any)
	if _, ok := first["price"]; ok {
		t.Fatal("nested nil inside slice element survived sanitize")
	}
}

func TestSanitizeKeepsZeroValues(t *testing.T) {
	doc := Document{
		"active": false,
		"order":  0,
		"name":   "",
	}

	got := Sanitize(doc)

	if len(got) != 3 {
		t.Fatalf("zero values must survive, got %#v", got)
	}
}
