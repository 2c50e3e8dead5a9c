package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func sampleRecords(base time.Time) []Record {
	return []Record{
		{ID: "1", Timestamp: base, Action: ActionAssign, EntityID: "P001", EntityName: "Arjun", MissionID: "PRJ001", To: "PRJ001"},
		{ID: "2", Timestamp: base.Add(time.Hour), Action: ActionStatusChange, EntityID: "P001", EntityName: "Arjun", From: "Assigned", To: "On Leave"},
		{ID: "3", Timestamp: base.Add(2 * time.Hour), Action: ActionCancel, EntityID: "PRJ002", MissionID: "PRJ002"},
	}
}

func runStoreTests(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, r := range sampleRecords(base) {
		if err := store.Append(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := store.Query(ctx, Query{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}

	byEntity, err := store.Query(ctx, Query{EntityID: "P001"})
	if err != nil {
		t.Fatalf("query entity: %v", err)
	}
	if len(byEntity) != 2 {
		t.Fatalf("expected 2 records for P001, got %d", len(byEntity))
	}

	byAction, err := store.Query(ctx, Query{Action: ActionCancel})
	if err != nil {
		t.Fatalf("query action: %v", err)
	}
	if len(byAction) != 1 || byAction[0].MissionID != "PRJ002" {
		t.Fatalf("unexpected cancel records: %v", byAction)
	}

	windowed, err := store.Query(ctx, Query{Start: base.Add(30 * time.Minute), End: base.Add(90 * time.Minute)})
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(windowed) != 1 || windowed[0].Action != ActionStatusChange {
		t.Fatalf("unexpected windowed records: %v", windowed)
	}
}

func TestJSONLStore(t *testing.T) {
	store, err := NewJSONLStore(filepath.Join(t.TempDir(), "decisions.jsonl"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer func() { _ = store.Close() }()
	runStoreTests(t, store)
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "decisions.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer func() { _ = store.Close() }()
	runStoreTests(t, store)
}
