package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/deliverydesk/internal/models"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type TestDataBuilder struct {
	t         *testing.T
	ctx       context.Context
	db        *Database
	projectID int64
	itemIDs   []int64
	sprintIDs []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithProject(name, slug string) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.CreateProject(b.ctx, name, slug)
	if err != nil {
		b.t.Fatalf("CreateProject failed: %v", err)
	}
	b.projectID = id
	return b
}

func (b *TestDataBuilder) ensureProject() {
	b.t.Helper()
	if b.projectID == 0 {
		id, err := b.db.EnsureDefaultProject(b.ctx)
		if err != nil {
			b.t.Fatalf("EnsureDefaultProject failed: %v", err)
		}
		b.projectID = id
	}
}

func (b *TestDataBuilder) WithItems(status models.ItemStatus, count int) *TestDataBuilder {
	b.t.Helper()
	b.ensureProject()
	for i := 0; i < count; i++ {
		title := fmt.Sprintf("%s item %d", status, i+1)
		id, err := b.db.AddWorkItem(b.ctx, b.projectID, title, status)
		if err != nil {
			b.t.Fatalf("AddWorkItem failed: %v", err)
		}
		b.itemIDs = append(b.itemIDs, id)
	}
	return b
}

func (b *TestDataBuilder) WithSprint(name string, start time.Time) *TestDataBuilder {
	b.t.Helper()
	b.ensureProject()
	id, err := b.db.CreateSprint(b.ctx, b.projectID, name, start)
	if err != nil {
		b.t.Fatalf("CreateSprint failed: %v", err)
	}
	b.sprintIDs = append(b.sprintIDs, id)
	return b
}

func (b *TestDataBuilder) Build() *Database {
	b.ensureProject()
	return b.db
}

func (b *TestDataBuilder) ProjectID() int64 {
	b.ensureProject()
	return b.projectID
}

func (b *TestDataBuilder) ItemIDs() []int64 {
	return b.itemIDs
}

// statusOrder reads back the ids of a (project, status) group in board order
// and asserts the indices are dense from zero.
func statusOrder(t *testing.T, ctx context.Context, db *Database, projectID int64, status models.ItemStatus) []int64 {
	t.Helper()
	items, err := db.GetStatusGroup(ctx, projectID, status)
	if err != nil {
		t.Fatalf("GetStatusGroup failed: %v", err)
	}
	ids := make([]int64, len(items))
	for i, it := range items {
		if it.OrderIndex != i {
			t.Fatalf("expected dense indices, got %d at position %d in %s", it.OrderIndex, i, status)
		}
		ids[i] = it.ID
	}
	return ids
}
