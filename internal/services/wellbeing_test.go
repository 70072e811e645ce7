package services

import (
	"context"
	"testing"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos/testutil"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/requestdata"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

func TestWellbeingService_CreateRecord_HighRiskCreatesAlert(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	recordRepo := repos.NewWellbeingRecordRepo(db, log)
	alertRepo := repos.NewAlertRepo(db, log)
	svc := NewWellbeingService(db, log, recordRepo, alertRepo)

	user := testutil.NewUser(t, db, "highrisk@example.com")
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: user.ID,
		Role:   string(types.RoleUser),
	})

	result, err := svc.CreateRecord(ctx, CreateRecordInput{
		MoodScore:    2,
		EnergyScore:  2,
		StressScore:  9,
		SleepQuality: 3,
		WorkHours:    12,
	})
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if result.Record.BurnoutRiskScore == nil {
		t.Fatalf("CreateRecord: risk score not persisted")
	}
	if !result.Score.AlertWorthy {
		t.Fatalf("CreateRecord: expected alert-worthy score, got %.3f", result.Score.RiskScore)
	}
	if result.Score.Severity != types.AlertHigh {
		t.Fatalf("CreateRecord: expected high severity, got %s", result.Score.Severity)
	}

	alerts, err := alertRepo.GetByUser(ctx, nil, user.ID, true)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 unresolved alert, got %d", len(alerts))
	}
	if alerts[0].Severity != types.AlertHigh {
		t.Fatalf("unexpected alert severity: %s", alerts[0].Severity)
	}
}

func TestWellbeingService_CreateRecord_HealthyNoAlert(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	recordRepo := repos.NewWellbeingRecordRepo(db, log)
	alertRepo := repos.NewAlertRepo(db, log)
	svc := NewWellbeingService(db, log, recordRepo, alertRepo)

	user := testutil.NewUser(t, db, "healthy@example.com")
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: user.ID,
		Role:   string(types.RoleUser),
	})

	result, err := svc.CreateRecord(ctx, CreateRecordInput{
		MoodScore:    8,
		EnergyScore:  8,
		StressScore:  2,
		SleepQuality: 8,
		WorkHours:    7,
	})
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if result.Score.AlertWorthy {
		t.Fatalf("CreateRecord: healthy check-in flagged, score %.3f", result.Score.RiskScore)
	}

	alerts, err := alertRepo.GetByUser(ctx, nil, user.ID, false)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %d", len(alerts))
	}
}

func TestWellbeingService_CreateRecord_RejectsInvalid(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewWellbeingService(db, log, repos.NewWellbeingRecordRepo(db, log), repos.NewAlertRepo(db, log))

	user := testutil.NewUser(t, db, "invalid@example.com")
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: user.ID,
		Role:   string(types.RoleUser),
	})

	_, err := svc.CreateRecord(ctx, CreateRecordInput{
		MoodScore:    11,
		EnergyScore:  5,
		StressScore:  5,
		SleepQuality: 5,
		WorkHours:    8,
	})
	if err == nil {
		t.Fatalf("CreateRecord: expected validation error")
	}
}
