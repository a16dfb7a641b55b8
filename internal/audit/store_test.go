package audit

import (
	"context"
	"testing"
	"time"
)

func TestStore_Record(t *testing.T) {
	// Use in-memory SQLite with shared cache for testing
	store, err := New("file:auditmem1?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer store.Close()

	score := 0.01
	entry := &Entry{
		Endpoint:      "score",
		TransactionID: "txn-1",
		Status:        "ok",
		RiskScore:     &score,
		Duration:      42 * time.Millisecond,
	}

	if err := store.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if entry.ID == "" {
		t.Error("Record() left ID empty")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("Record() left CreatedAt zero")
	}

	entries, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(entries))
	}

	got := entries[0]
	if got.Endpoint != "score" {
		t.Errorf("Endpoint = %v, want score", got.Endpoint)
	}
	if got.RiskScore == nil || *got.RiskScore != 0.01 {
		t.Errorf("RiskScore = %v, want 0.01", got.RiskScore)
	}
	if got.Duration != 42*time.Millisecond {
		t.Errorf("Duration = %v, want 42ms", got.Duration)
	}
}

func TestStore_RecordError(t *testing.T) {
	store, err := New("file:auditmem2?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer store.Close()

	entry := &Entry{
		Endpoint:     "factors",
		Status:       "error",
		ErrorKind:    "authentication",
		ErrorMessage: "Invalid license key and/or account ID",
	}
	if err := store.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(entries))
	}
	if entries[0].ErrorKind != "authentication" {
		t.Errorf("ErrorKind = %v, want authentication", entries[0].ErrorKind)
	}
	if entries[0].RiskScore != nil {
		t.Errorf("RiskScore = %v, want nil", entries[0].RiskScore)
	}
}

func TestStore_ListOrder(t *testing.T) {
	store, err := New("file:auditmem3?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer store.Close()

	base := time.Now().Add(-time.Hour)
	for i, ep := range []string{"score", "insights", "factors"} {
		entry := &Entry{
			Endpoint:  ep,
			Status:    "ok",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Record(context.Background(), entry); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	entries, err := store.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}
	if entries[0].Endpoint != "factors" || entries[1].Endpoint != "insights" {
		t.Errorf("List() order = %v, %v; want newest first", entries[0].Endpoint, entries[1].Endpoint)
	}
}
