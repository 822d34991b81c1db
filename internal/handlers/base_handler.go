package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorship-service/internal/auth"
	"github.com/mentorhub/mentorship-service/internal/services"
	"github.com/mentorhub/mentorship-service/internal/utils"
)

// ErrorResponse is the single error body shape returned by every handler.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	utils.FromContext(c, h.logger).Error(msg, append(args, "error", err)...)
}

// parseIDParam parses the external integer identifier from the path. On
// failure it writes a 400 response and returns 0.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name + " parameter",
		})
		return 0
	}
	return id
}

// handleServiceError maps each taxonomy entry to one transport status. No
// error here is fatal to the process.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: conflictErr.Error(),
		})
		return
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: notFoundErr.Error(),
		})
		return
	}

	var tokenErr *auth.TokenError
	if errors.Is(err, services.ErrInvalidCredentials) || errors.As(err, &tokenErr) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: services.ErrInvalidCredentials.Error(),
		})
		return
	}

	var storeErr *services.StoreError
	if errors.As(err, &storeErr) {
		h.LogError(c, err, "Store operation failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
		return
	}

	h.LogError(c, err, "Unhandled service error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
	})
}
