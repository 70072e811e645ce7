package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos/testutil"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, []*types.User{
		{
			ID:         uuid.New(),
			Email:      "ana@example.com",
			Password:   "hashed-pw",
			FullName:   "Ana Souza",
			Department: "Engenharia",
			Role:       types.RoleUser,
			IsActive:   true,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 user, got %d", len(created))
	}

	gotByIDs, err := repo.GetByIDs(ctx, nil, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}

	gotByEmail, err := repo.GetByEmail(ctx, nil, "ana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if gotByEmail.FullName != "Ana Souza" {
		t.Fatalf("GetByEmail: unexpected user: %+v", gotByEmail)
	}

	exists, err := repo.EmailExists(ctx, nil, "ana@example.com")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(ctx, nil, "missing@example.com")
	if err != nil {
		t.Fatalf("EmailExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists (missing): expected false")
	}
}

func TestUserRepo_GeneratesIDOnCreate(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, []*types.User{
		{
			Email:    "no-id@example.com",
			Password: "hashed-pw",
			FullName: "No ID",
			Role:     types.RoleUser,
			IsActive: true,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created[0].ID == uuid.Nil {
		t.Fatalf("Create: expected a generated id")
	}
	if created[0].CreatedAt.IsZero() {
		t.Fatalf("Create: expected created_at to be set")
	}
}

func TestUserRepo_ListActive(t *testing.T) {
	db := testutil.DB(t)
	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	active := testutil.NewUser(t, db, "active@example.com")
	inactive := &types.User{
		ID:       uuid.New(),
		Email:    "inactive@example.com",
		Password: "hashed-pw",
		FullName: "Inactive User",
		Role:     types.RoleUser,
		IsActive: false,
	}
	if _, err := repo.Create(ctx, nil, []*types.User{inactive}); err != nil {
		t.Fatalf("Create inactive: %v", err)
	}

	users, err := repo.ListActive(ctx, nil)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(users) != 1 || users[0].ID != active.ID {
		t.Fatalf("ListActive: expected only the active user, got %+v", users)
	}
}
