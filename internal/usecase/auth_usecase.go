package usecase

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"web3jobs/internal/apperror"
	"web3jobs/internal/model"
	"web3jobs/internal/token"
)

type UserRepositoryInterface interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
}

type AuthUsecase struct {
	userRepo UserRepositoryInterface
	tokens   *token.Generator
}

func NewAuthUsecase(userRepo UserRepositoryInterface, tokens *token.Generator) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, tokens: tokens}
}

type RegisterInput struct {
	Email          string
	Password       string
	CompanyName    string
	CompanyWebsite string
}

func (uc *AuthUsecase) Register(input RegisterInput) (*model.User, string, error) {
	fields := map[string]string{}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "please enter a valid email address"
	}
	if len(input.Password) < 8 {
		fields["password"] = "password must be at least 8 characters long"
	}
	if len(fields) > 0 {
		return nil, "", apperror.Validation("invalid registration", fields)
	}

	if _, err := uc.userRepo.FindByEmail(email); err == nil {
		return nil, "", apperror.Validation("email already registered", map[string]string{
			"email": "email already registered",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperror.Transient("failed to check existing account", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Transient("failed to hash password", err)
	}

	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		Password:       string(hashed),
		CompanyName:    optional(input.CompanyName),
		CompanyWebsite: optional(input.CompanyWebsite),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, "", apperror.Transient("failed to create account", err)
	}

	tokenStr, err := uc.tokens.Generate(user)
	if err != nil {
		return nil, "", apperror.Transient("failed to issue token", err)
	}
	return user, tokenStr, nil
}

func (uc *AuthUsecase) Login(email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperror.Authorization("invalid email or password")
		}
		return nil, "", apperror.Transient("failed to load account", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.Authorization("invalid email or password")
	}

	tokenStr, err := uc.tokens.Generate(user)
	if err != nil {
		return nil, "", apperror.Transient("failed to issue token", err)
	}
	return user, tokenStr, nil
}

// Profile resolves the viewer back to its stored account, including the
// admin and trusted-poster flags.
func (uc *AuthUsecase) Profile(viewer model.Viewer) (*model.User, error) {
	if !viewer.Authenticated {
		return nil, apperror.Authorization("sign in required")
	}
	user, err := uc.userRepo.FindByID(viewer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("account not found")
		}
		return nil, apperror.Transient("failed to load account", err)
	}
	return user, nil
}
