package dto

import (
	"time"

	"github.com/google/uuid"

	"web3jobs/internal/model"
)

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	CompanyName     *string   `json:"company_name"`
	CompanyLogo     *string   `json:"company_logo"`
	CompanyWebsite  *string   `json:"company_website"`
	IsAdmin         bool      `json:"is_admin"`
	IsTrustedPoster bool      `json:"is_trusted_poster"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Email:           u.Email,
		CompanyName:     u.CompanyName,
		CompanyLogo:     u.CompanyLogo,
		CompanyWebsite:  u.CompanyWebsite,
		IsAdmin:         u.IsAdmin,
		IsTrustedPoster: u.IsTrustedPoster,
		CreatedAt:       u.CreatedAt,
	}
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
