package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/requestdata"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
)

type AlertService interface {
	ListMine(ctx context.Context, unresolvedOnly bool) ([]*types.Alert, error)
	Resolve(ctx context.Context, alertID uuid.UUID) error
}

type alertService struct {
	db        *gorm.DB
	log       *logger.Logger
	alertRepo repos.AlertRepo
}

func NewAlertService(db *gorm.DB, log *logger.Logger, alertRepo repos.AlertRepo) AlertService {
	return &alertService{
		db:        db,
		log:       log.With("service", "AlertService"),
		alertRepo: alertRepo,
	}
}

func (s *alertService) ListMine(ctx context.Context, unresolvedOnly bool) ([]*types.Alert, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not set in context")
	}
	return s.alertRepo.GetByUser(ctx, nil, rd.UserID, unresolvedOnly)
}

func (s *alertService) Resolve(ctx context.Context, alertID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("request data not set in context")
	}
	// Only the alert owner may resolve it.
	alerts, err := s.alertRepo.GetByUser(ctx, nil, rd.UserID, false)
	if err != nil {
		return fmt.Errorf("load alerts: %w", err)
	}
	for _, alert := range alerts {
		if alert.ID == alertID {
			return s.alertRepo.Resolve(ctx, nil, alertID)
		}
	}
	return fmt.Errorf("alert: %w", ErrNotFound)
}
