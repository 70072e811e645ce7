package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

// RoleRank orders roles for access checks: admin > manager > user.
func RoleRank(role UserRole) int {
	switch role {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password   string    `gorm:"not null;column:password" json:"-"`
	FullName   string    `gorm:"not null;column:full_name" json:"full_name"`
	Department string    `gorm:"column:department" json:"department"`
	Role       UserRole  `gorm:"not null;default:'user';column:role" json:"role"`
	IsActive   bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
