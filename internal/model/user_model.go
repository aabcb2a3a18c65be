package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	CompanyName     *string   `json:"company_name"`
	CompanyLogo     *string   `json:"company_logo"`
	CompanyWebsite  *string   `json:"company_website"`
	IsAdmin         bool      `gorm:"default:false" json:"is_admin"`
	IsTrustedPoster bool      `gorm:"default:false" json:"is_trusted_poster"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
