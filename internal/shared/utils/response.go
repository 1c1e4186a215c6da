package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/warden/internal/shared/constants"
	"github.com/orris-inc/warden/internal/shared/errors"
)

// APIResponse is the envelope every JSON endpoint except /auth/token uses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse echoes the skip/limit window next to the page.
type ListResponse struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
	Skip  int         `json:"skip"`
	Limit int         `json:"limit"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// CreatedResponse answers 201 with data.
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "Resource created successfully"
	if len(message) > 0 {
		msg = message[0]
	}
	SuccessResponse(c, http.StatusCreated, msg, data)
}

// ListSuccessResponse answers 200 with one page of items.
func ListSuccessResponse(c *gin.Context, items interface{}, count, skip, limit int, message ...string) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	SuccessResponse(c, http.StatusOK, msg, ListResponse{Items: items, Count: count, Skip: skip, Limit: limit})
}

// ErrorResponse answers with an error of type t outside the AppError
// taxonomy, as middleware does before any service runs.
func ErrorResponse(c *gin.Context, statusCode int, t errors.ErrorType, message string) {
	c.JSON(statusCode, APIResponse{Error: &ErrorInfo{Type: string(t), Message: message}})
}

// ErrorResponseWithError maps err onto its status and envelope. Errors
// that are not AppErrors become a generic 500.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ErrorResponse(c, http.StatusInternalServerError, errors.ErrorTypeInternal, constants.ErrMsgInternalServerError)
		return
	}

	info := &ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
		Details: publicDetails(appErr),
	}
	if appErr.Type == errors.ErrorTypeCredentialsInvalid || appErr.Type == errors.ErrorTypeTokenInvalid {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.JSON(appErr.Code, APIResponse{Error: info})
}

// publicDetails drops details that would leak store or token internals.
func publicDetails(appErr *errors.AppError) string {
	switch appErr.Type {
	case errors.ErrorTypeIntegrityRejected,
		errors.ErrorTypeInternal,
		errors.ErrorTypeCredentialsInvalid,
		errors.ErrorTypeTokenInvalid:
		return ""
	default:
		return appErr.Details
	}
}
