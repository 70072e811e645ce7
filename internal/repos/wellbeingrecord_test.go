package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos/testutil"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

func TestWellbeingRecordRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewWellbeingRecordRepo(db, testutil.Logger(t))
	ctx := context.Background()
	user := testutil.NewUser(t, db, "checkin@example.com")

	now := time.Now().UTC()
	records := []*types.WellbeingRecord{
		{
			ID: uuid.New(), UserID: user.ID,
			MoodScore: 7, EnergyScore: 6, StressScore: 4, SleepQuality: 7,
			WorkHours: 8, CreatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: uuid.New(), UserID: user.ID,
			MoodScore: 4, EnergyScore: 4, StressScore: 8, SleepQuality: 4,
			WorkHours: 11, CreatedAt: now.AddDate(0, 0, -1),
		},
	}
	if _, err := repo.Create(ctx, nil, records); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByUserSince(ctx, nil, user.ID, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("GetByUserSince: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetByUserSince: expected 2 records, got %d", len(got))
	}
	// Oldest first, the ordering scoring depends on.
	if !got[0].CreatedAt.Before(got[1].CreatedAt) {
		t.Fatalf("GetByUserSince: expected ascending created_at, got %v then %v", got[0].CreatedAt, got[1].CreatedAt)
	}

	got, err = repo.GetByUserSince(ctx, nil, user.ID, now.AddDate(0, 0, -1).Add(-time.Hour))
	if err != nil {
		t.Fatalf("GetByUserSince (cutoff): %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("GetByUserSince (cutoff): expected 1 record, got %d", len(got))
	}

	count, err := repo.CountByUser(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if count != 2 {
		t.Fatalf("CountByUser: expected 2, got %d", count)
	}
}

func TestWellbeingRecordRepo_GetAllSince(t *testing.T) {
	db := testutil.DB(t)
	repo := NewWellbeingRecordRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u1 := testutil.NewUser(t, db, "one@example.com")
	u2 := testutil.NewUser(t, db, "two@example.com")
	now := time.Now().UTC()

	records := []*types.WellbeingRecord{
		{ID: uuid.New(), UserID: u1.ID, MoodScore: 5, EnergyScore: 5, StressScore: 5, SleepQuality: 5, WorkHours: 8, CreatedAt: now.AddDate(0, 0, -3)},
		{ID: uuid.New(), UserID: u2.ID, MoodScore: 6, EnergyScore: 6, StressScore: 3, SleepQuality: 7, WorkHours: 7, CreatedAt: now.AddDate(0, 0, -2)},
		{ID: uuid.New(), UserID: u2.ID, MoodScore: 3, EnergyScore: 3, StressScore: 9, SleepQuality: 3, WorkHours: 12, CreatedAt: now.AddDate(0, 0, -40)},
	}
	if _, err := repo.Create(ctx, nil, records); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetAllSince(ctx, nil, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("GetAllSince: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetAllSince: expected 2 recent records, got %d", len(got))
	}
}
