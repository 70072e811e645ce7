package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos/testutil"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

func TestAlertRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewAlertRepo(db, testutil.Logger(t))
	ctx := context.Background()
	user := testutil.NewUser(t, db, "alerts@example.com")

	created, err := repo.Create(ctx, nil, &types.Alert{
		ID:       uuid.New(),
		UserID:   user.ID,
		Severity: types.AlertHigh,
		Message:  "Burnout risk score 0.88 (high severity), main factor: stress",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	unresolved, err := repo.GetByUser(ctx, nil, user.ID, true)
	if err != nil {
		t.Fatalf("GetByUser (unresolved): %v", err)
	}
	if len(unresolved) != 1 || unresolved[0].ID != created.ID {
		t.Fatalf("GetByUser (unresolved): unexpected result: %+v", unresolved)
	}

	if err := repo.Resolve(ctx, nil, created.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	unresolved, err = repo.GetByUser(ctx, nil, user.ID, true)
	if err != nil {
		t.Fatalf("GetByUser (after resolve): %v", err)
	}
	if len(unresolved) != 0 {
		t.Fatalf("GetByUser (after resolve): expected none, got %d", len(unresolved))
	}

	all, err := repo.GetByUser(ctx, nil, user.ID, false)
	if err != nil {
		t.Fatalf("GetByUser (all): %v", err)
	}
	if len(all) != 1 || !all[0].Resolved {
		t.Fatalf("GetByUser (all): expected 1 resolved alert, got %+v", all)
	}
}
