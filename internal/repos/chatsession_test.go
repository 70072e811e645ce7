package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos/testutil"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

func TestChatSessionRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewChatSessionRepo(db, testutil.Logger(t))
	ctx := context.Background()
	user := testutil.NewUser(t, db, "chat@example.com")

	created, err := repo.Create(ctx, nil, &types.ChatSession{
		ID:       uuid.New(),
		UserID:   user.ID,
		Messages: datatypes.JSON(`[{"role":"user","content":"olá"}]`),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UserID != user.ID {
		t.Fatalf("GetByID: unexpected session: %+v", got)
	}

	got.Messages = datatypes.JSON(`[{"role":"user","content":"olá"},{"role":"assistant","content":"oi!"}]`)
	if err := repo.UpdateMessages(ctx, nil, got); err != nil {
		t.Fatalf("UpdateMessages: %v", err)
	}

	sessions, err := repo.GetByUser(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("GetByUser: expected 1 session, got %d", len(sessions))
	}
	if string(sessions[0].Messages) != string(got.Messages) {
		t.Fatalf("GetByUser: messages not updated: %s", sessions[0].Messages)
	}
}
