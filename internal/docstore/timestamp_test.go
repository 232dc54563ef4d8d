package docstore

import (
	"testing"
	"time"
)

func TestEncodeDecodeTime(t *testing.T) {
	original := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	got := DecodeTime(EncodeTime(original))

	if !got.Equal(original) {
		t.Fatalf("round trip changed value: %v != %v", got, original)
	}
}

func TestEncodeTimeDropsSubMillisecond(t *testing.T) {
	original := time.Date(2026, 3, 14, 9, 26, 53, 589_999_999, time.UTC)

	got := DecodeTime(EncodeTime(original))

	if got.Nanosecond() != 589_000_000 {
		t.Fatalf("expected millisecond precision, got %d ns", got.Nanosecond())
	}
}

func TestDecodeTimestampsKnownFieldsOnly(t *testing.T) {
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := Document{
		"createdAt": EncodeTime(stamp),
		"updatedAt": float64(EncodeTime(stamp)),
		"order":     int64(7),
	}

	got := decodeTimestamps(doc)

	if created, ok := got["createdAt"].(time.Time); !ok || !created.Equal(stamp) {
		t.Fatalf("createdAt not decoded: %#v", got["createdAt"])
	}
	if updated, ok := got["updatedAt"].(time.Time); !ok || !updated.Equal(stamp) {
		t.Fatalf("updatedAt not decoded: %#v", got["updatedAt"])
	}
	if _, ok := got["order"].(int64); !ok {
		t.Fatalf("non-timestamp field rewritten: %#v", got["order"])
	}
}
