package comments

import (
	"testing"

	"github.com/akyairhashvil/deliverydesk/internal/models"
	"github.com/akyairhashvil/deliverydesk/internal/testutil"
)

func chain(t *testing.T) []models.Comment {
	t.Helper()
	return []models.Comment{
		testutil.NewComment().WithID(1).WithContent("root").Build(),
		testutil.NewComment().WithID(2).WithParentID(1).WithContent("reply").Build(),
		testutil.NewComment().WithID(3).WithParentID(2).WithContent("reply to reply").Build(),
	}
}

func TestBuildNestsThreeLevels(t *testing.T) {
	forest := Build(chain(t))
	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	root := forest[0]
	if len(root.Replies) != 1 || root.Replies[0].ID != 2 {
		t.Fatalf("expected reply under root, got %+v", root.Replies)
	}
	if len(root.Replies[0].Replies) != 1 || root.Replies[0].Replies[0].ID != 3 {
		t.Fatalf("expected third level nested, got %+v", root.Replies[0].Replies)
	}
}

func TestBuildMultipleRootsKeepOrder(t *testing.T) {
	flat := []models.Comment{
		testutil.NewComment().WithID(1).WithContent("first").Build(),
		testutil.NewComment().WithID(2).WithContent("second").Build(),
		testutil.NewComment().WithID(3).WithParentID(1).WithContent("reply to first").Build(),
	}
	forest := Build(flat)
	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	if forest[0].ID != 1 || forest[1].ID != 2 {
		t.Fatalf("expected creation order preserved, got %d then %d", forest[0].ID, forest[1].ID)
	}
}

func TestBuildOrphanSurfacesAsRoot(t *testing.T) {
	flat := []models.Comment{
		testutil.NewComment().WithID(5).WithParentID(99).WithContent("orphan").Build(),
	}
	forest := Build(flat)
	if len(forest) != 1 || forest[0].ID != 5 {
		t.Fatalf("expected orphan promoted to root, got %+v", forest)
	}
}

func TestBuildEmpty(t *testing.T) {
	if forest := Build(nil); len(forest) != 0 {
		t.Fatalf("expected empty forest, got %d", len(forest))
	}
}

func TestLocateAtDepth(t *testing.T) {
	forest := Build(chain(t))

	n, ok := Locate(forest, 3)
	if !ok || n.Content != "reply to reply" {
		t.Fatalf("expected to find id 3, got %v (ok=%v)", n, ok)
	}
	if _, ok := Locate(forest, 99); ok {
		t.Fatal("expected missing id to report not found")
	}
}

func TestFlattenLevels(t *testing.T) {
	forest := Build(chain(t))
	flat := Flatten(forest)
	if len(flat) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(flat))
	}
	for i, want := range []int{0, 1, 2} {
		if flat[i].Level != want {
			t.Errorf("expected level %d at position %d, got %d", want, i, flat[i].Level)
		}
	}
}

func TestCount(t *testing.T) {
	forest := Build(chain(t))
	if got := Count(forest); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
