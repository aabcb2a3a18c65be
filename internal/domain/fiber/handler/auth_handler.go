package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"web3jobs/internal/apperror"
	"web3jobs/internal/dto"
	"web3jobs/internal/middleware"
	"web3jobs/internal/usecase"
	"web3jobs/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/register", middleware.RateLimiter(10, 1*time.Minute), h.Register)
	app.Post("/auth/login", middleware.RateLimiter(10, 1*time.Minute), h.Login)
	app.Get("/me", middleware.RequireAuth(), h.Me)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperror.Validation("invalid request body", nil))
	}
	user, token, err := h.uc.Register(usecase.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created successfully",
		Data:    dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, apperror.Validation("invalid request body", nil))
	}
	user, token, err := h.uc.Login(req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Signed in successfully",
		Data:    dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)},
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Profile(middleware.Viewer(c))
	if err != nil {
		return h.fail(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get profile",
		Data:    dto.NewUserDTO(user),
	})
}

func (h *AuthHandler) fail(c *fiber.Ctx, err error) error {
	return util.FromError(c, err, !middleware.Viewer(c).Authenticated)
}
