package decisions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/skystride/droneops/core/audit"
)

func TestLogHandler_AuthAndFilters(t *testing.T) {
	store, err := audit.NewJSONLStore(filepath.Join(t.TempDir(), "decisions.jsonl"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	recs := []audit.Record{
		{ID: "1", Timestamp: time.Now().UTC(), Action: audit.ActionAssign, EntityID: "P001", MissionID: "PRJ100"},
		{ID: "2", Timestamp: time.Now().UTC(), Action: audit.ActionCancel, EntityID: "PRJ200", MissionID: "PRJ200"},
	}
	for _, rec := range recs {
		if err := store.Append(context.Background(), rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	h := NewLogHandler(store, "tok")

	req := httptest.NewRequest("GET", "/api/decisions?action=assign", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got []audit.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].EntityID != "P001" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestLogHandler_Unauthorized(t *testing.T) {
	store, err := audit.NewJSONLStore(filepath.Join(t.TempDir(), "decisions.jsonl"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	h := NewLogHandler(store, "tok")

	req := httptest.NewRequest("GET", "/api/decisions", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}
