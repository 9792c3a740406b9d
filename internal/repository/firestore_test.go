package repository

import (
	"testing"
	"time"

	"github.com/shutterfolio/backend/internal/model"
)

func TestTimestampField_NormalisesBothRepresentations(t *testing.T) {
	now := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	data := map[string]any{
		"native": now,
		"legacy": "2024-01-15T08:00:00.000Z",
		"other":  int64(5),
	}

	if ts := timestampField(data, "native"); !ts.IsNative() {
		t.Error("expected native timestamp")
	}
	legacy := timestampField(data, "legacy")
	if legacy.IsNative() {
		t.Error("expected ISO-tagged timestamp")
	}
	if _, ok := legacy.Time(); !ok {
		t.Error("expected legacy ISO string to parse")
	}
	if !timestampField(data, "other").IsZero() {
		t.Error("expected unsupported type to yield zero timestamp")
	}
	if !timestampField(data, "missing").IsZero() {
		t.Error("expected missing field to yield zero timestamp")
	}
}

func TestIntField_AcceptsFirestoreNumberTypes(t *testing.T) {
	data := map[string]any{"i": int64(4), "f": float64(3), "s": "5"}
	if intField(data, "i") != 4 || intField(data, "f") != 3 || intField(data, "s") != 0 {
		t.Error("unexpected intField conversion")
	}
}

func TestSortNewestFirst_MixedRepresentations(t *testing.T) {
	msgs := []*model.ContactMessage{
		{ID: "legacy-old", CreatedAt: model.ISOTimestamp("2023-01-01T00:00:00Z")},
		{ID: "native-new", CreatedAt: model.NativeTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "unknown"},
		{ID: "legacy-new", CreatedAt: model.ISOTimestamp("2024-06-01T00:00:00Z")},
	}
	sortNewestFirst(msgs)

	want := []string{"legacy-new", "native-new", "legacy-old", "unknown"}
	for i, m := range msgs {
		if m.ID != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], m.ID)
		}
	}
}

func TestPageMessages_PagesAfterMixedSort(t *testing.T) {
	// 古い形式 (ISO 文字列) と native timestamp が交互に新しくなる
	msgs := []*model.ContactMessage{
		{ID: "native-1", CreatedAt: model.NativeTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "legacy-2", CreatedAt: model.ISOTimestamp("2024-02-01T00:00:00Z")},
		{ID: "native-3", CreatedAt: model.NativeTimestamp(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "legacy-4", CreatedAt: model.ISOTimestamp("2024-04-01T00:00:00Z")},
		{ID: "native-5", CreatedAt: model.NativeTimestamp(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))},
	}
	sortNewestFirst(msgs)

	tests := []struct {
		name string
		opts model.ContactListOptions
		want []string
	}{
		{"first page", model.ContactListOptions{Limit: 2}, []string{"native-5", "legacy-4"}},
		{"second page", model.ContactListOptions{Limit: 2, Offset: 2}, []string{"native-3", "legacy-2"}},
		{"last page short", model.ContactListOptions{Limit: 2, Offset: 4}, []string{"native-1"}},
		{"past the end", model.ContactListOptions{Limit: 2, Offset: 9}, []string{}},
		{"no limit", model.ContactListOptions{Offset: 3}, []string{"legacy-2", "native-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pageMessages(msgs, tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d messages, got %d", len(tt.want), len(got))
			}
			for i, m := range got {
				if m.ID != tt.want[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.want[i], m.ID)
				}
			}
		})
	}
}
