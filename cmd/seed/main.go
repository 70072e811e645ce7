package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/db"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/types"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/utils"
)

// Seeds five demo users and a month of daily check-ins each, scored the
// same way the API scores live submissions. For demos and local dashboards.
func main() {
	_ = godotenv.Load()

	log, err := logger.New("development")
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres automigrate failed", "error", err)
	}
	theDB := pg.DB()

	userRepo := repos.NewUserRepo(theDB, log)
	recordRepo := repos.NewWellbeingRecordRepo(theDB, log)
	alertRepo := repos.NewAlertRepo(theDB, log)
	ctx := context.Background()

	demoUsers := []struct {
		email      string
		name       string
		department string
		role       types.UserRole
		// baselines shift each user's simulated scores
		stressBias int
	}{
		{"maria@workwell.com", "Maria Silva", "RH", types.RoleManager, 0},
		{"joao@workwell.com", "João Santos", "TI", types.RoleUser, 2},
		{"ana@workwell.com", "Ana Costa", "Marketing", types.RoleUser, 0},
		{"carlos@workwell.com", "Carlos Oliveira", "Vendas", types.RoleUser, 3},
		{"lucia@workwell.com", "Lúcia Ferreira", "Financeiro", types.RoleAdmin, 1},
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()

	for _, demo := range demoUsers {
		exists, err := userRepo.EmailExists(ctx, nil, demo.email)
		if err != nil {
			log.Fatal("Email check failed", "error", err)
		}
		if exists {
			log.Info("Skipping existing user", "email", demo.email)
			continue
		}

		hashed, err := utils.HashPassword("senha123")
		if err != nil {
			log.Fatal("Hash password failed", "error", err)
		}
		created, err := userRepo.Create(ctx, nil, []*types.User{{
			Email:      demo.email,
			Password:   hashed,
			FullName:   demo.name,
			Department: demo.department,
			Role:       demo.role,
			IsActive:   true,
		}})
		if err != nil {
			log.Fatal("Create user failed", "email", demo.email, "error", err)
		}
		user := created[0]

		var history []*types.WellbeingRecord
		var alerts int
		for day := 30; day >= 1; day-- {
			if rng.Float64() > 0.8 {
				continue
			}
			date := now.AddDate(0, 0, -day)
			record := &types.WellbeingRecord{
				UserID:       user.ID,
				MoodScore:    clampScale(3 + rng.Intn(7) - demo.stressBias/2),
				EnergyScore:  clampScale(2 + rng.Intn(7)),
				StressScore:  clampScale(1 + rng.Intn(7) + demo.stressBias),
				SleepQuality: clampScale(3 + rng.Intn(7)),
				WorkHours:    6 + rng.Float64()*float64(4+demo.stressBias),
				Notes:        fmt.Sprintf("Check-in do dia %s", date.Format("02/01")),
				CreatedAt:    date,
			}

			scoringHistory := append(append([]*types.WellbeingRecord{}, history...), record)
			features, err := engine.ExtractFeatures(scoringHistory, engine.DefaultWindows())
			if err != nil {
				log.Fatal("Extract features failed", "error", err)
			}
			score, err := engine.Score(record, features)
			if err != nil {
				log.Fatal("Score failed", "error", err)
			}
			risk := score.RiskScore
			record.BurnoutRiskScore = &risk

			if _, err := recordRepo.Create(ctx, nil, []*types.WellbeingRecord{record}); err != nil {
				log.Fatal("Create record failed", "error", err)
			}
			history = append(history, record)

			if score.AlertWorthy {
				alerts++
				if _, err := alertRepo.Create(ctx, nil, &types.Alert{
					UserID:   user.ID,
					Severity: score.Severity,
					Message:  fmt.Sprintf("Burnout risk score %.2f (%s severity)", score.RiskScore, score.Severity),
				}); err != nil {
					log.Fatal("Create alert failed", "error", err)
				}
			}
		}
		log.Info("Seeded user", "email", demo.email, "checkins", len(history), "alerts", alerts)
	}

	log.Info("Seed complete")
}

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
