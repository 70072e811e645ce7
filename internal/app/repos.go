package app

import (
	"gorm.io/gorm"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/logger"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/repos"
)

type Repos struct {
	User            repos.UserRepo
	UserToken       repos.UserTokenRepo
	WellbeingRecord repos.WellbeingRecordRepo
	Alert           repos.AlertRepo
	ChatSession     repos.ChatSessionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		UserToken:       repos.NewUserTokenRepo(db, log),
		WellbeingRecord: repos.NewWellbeingRecordRepo(db, log),
		Alert:           repos.NewAlertRepo(db, log),
		ChatSession:     repos.NewChatSessionRepo(db, log),
	}
}
