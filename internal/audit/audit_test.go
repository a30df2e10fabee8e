package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/burundanga/burundanga-api/internal/audit"
	"github.com/burundanga/burundanga-api/internal/db"
)

func TestAppendAndSince(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dbh, err := db.Open(ctx, db.DriverSQLite,
		"file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer dbh.Close()

	repo := audit.NewEventRepo(dbh)
	for i, typ := range []string{audit.TypePostCreated, audit.TypePostDeleted, audit.TypeAssessmentCompleted} {
		if err := repo.Append(ctx, typ, "k", map[string]int{"n": i}); err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}

	evs, err := repo.Since(ctx, 0, 10)
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if len(evs) != 3 {
		t.Fatalf("got %d events", len(evs))
	}
	if evs[0].Type != audit.TypePostCreated || evs[2].Type != audit.TypeAssessmentCompleted {
		t.Fatalf("unexpected order: %+v", evs)
	}
	if evs[0].Offset >= evs[1].Offset {
		t.Fatalf("offsets not increasing: %+v", evs)
	}

	tail, err := repo.Since(ctx, evs[0].Offset, 10)
	if err != nil {
		t.Fatalf("since tail: %v", err)
	}
	if len(tail) != 2 {
		t.Fatalf("tail = %d events, want 2", len(tail))
	}
}
