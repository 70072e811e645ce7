package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos/testutil"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

func TestUserTokenRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserTokenRepo(db, testutil.Logger(t))
	ctx := context.Background()
	user := testutil.NewUser(t, db, "tokens@example.com")

	created, err := repo.Create(ctx, nil, &types.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  "access-token-1",
		RefreshToken: "refresh-token-1",
		ExpiresAt:    time.Now().UTC().Add(30 * time.Minute),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byAccess, err := repo.GetByAccessToken(ctx, nil, "access-token-1")
	if err != nil {
		t.Fatalf("GetByAccessToken: %v", err)
	}
	if byAccess.ID != created.ID {
		t.Fatalf("GetByAccessToken: unexpected token: %+v", byAccess)
	}

	byRefresh, err := repo.GetByRefreshToken(ctx, nil, "refresh-token-1")
	if err != nil {
		t.Fatalf("GetByRefreshToken: %v", err)
	}
	if byRefresh.ID != created.ID {
		t.Fatalf("GetByRefreshToken: unexpected token: %+v", byRefresh)
	}

	if err := repo.DeleteByUserID(ctx, nil, user.ID); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}
	if _, err := repo.GetByAccessToken(ctx, nil, "access-token-1"); err == nil {
		t.Fatalf("GetByAccessToken: expected error after delete")
	}
}
