package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"web3jobs/internal/apperror"
	"web3jobs/internal/config"
	"web3jobs/internal/response"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type OrderedSuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// FromError maps a domain error onto the standard error envelope. Unknown
// errors are treated as internal.
func FromError(c *fiber.Ctx, err error, anonymous bool) error {
	appErr := apperror.As(err)
	if appErr == nil {
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Internal server error",
		}, err)
	}

	code := fiber.StatusInternalServerError
	var details any
	switch appErr.Type {
	case apperror.TypeNotFound:
		code = fiber.StatusNotFound
	case apperror.TypeAuthorization:
		if anonymous {
			code = fiber.StatusUnauthorized
		} else {
			code = fiber.StatusForbidden
		}
	case apperror.TypeValidation:
		code = fiber.StatusUnprocessableEntity
		if len(appErr.Fields) > 0 {
			details = appErr.Fields
		}
	case apperror.TypeTransient:
		code = fiber.StatusServiceUnavailable
	}

	return ErrorResponse(c, ErrorResponseFormat{
		Code:    code,
		Message: appErr.Message,
		Details: details,
	}, appErr.Err)
}

// SuccessResponse mengirim response JSON standar untuk sukses
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	response := OrderedSuccessResponse{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	}
	return c.Status(params.Code).JSON(response)
}

// ErrorResponse mengirim response JSON standar untuk error
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Details = errs[0]
			response.Trace = string(debug.Stack())
		}

		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
		if params.Details != nil {
			response.Details = params.Details
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}
