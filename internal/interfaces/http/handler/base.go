// Package handler contains the gin handlers of the ledger API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/logger"
	"github.com/ledger/backend/internal/interfaces/http/dto"
	"github.com/ledger/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response wrapping data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response, deriving the status from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BindJSON binds the request body into obj and writes the validation
// response when it fails
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// OwnerID returns the authenticated owner, writing 401 when absent
func (h *BaseHandler) OwnerID(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		h.Error(c, dto.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return ownerID, true
}

// PathID parses the :id path parameter
func (h *BaseHandler) PathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, shared.NewValidationError("id", "id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// HandleError converts err into the error envelope. Domain errors keep their
// message; anything else is logged and reported as a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		logger.L(c.Request.Context()).Error("Request failed",
			zap.Error(err),
			zap.Bool("store_error", shared.IsStoreError(err)),
		)
		h.Error(c, dto.ErrCodeInternal, "An unexpected error occurred")
		return
	}

	code := dto.NormalizeErrorCode(domainErr.Code)
	switch {
	case shared.IsValidation(err):
		h.validationError(c, code, domainErr)
	case shared.IsNotFound(err), shared.IsForbidden(err):
		// Foreign rows answer 404 as well; owner_id on the log line tells them apart
		logger.L(c.Request.Context()).Debug("Resource not accessible",
			zap.String("code", code),
			zap.String("route", c.FullPath()),
		)
		h.Error(c, code, domainErr.Message)
	default:
		h.Error(c, code, domainErr.Message)
	}
}

// validationError writes a 400 naming the rejected field when there is one
func (h *BaseHandler) validationError(c *gin.Context, code string, domainErr *shared.DomainError) {
	resp := dto.NewErrorResponseWithRequestID(code, domainErr.Message, middleware.GetRequestID(c))
	if domainErr.Field != "" {
		resp.Error.Details = []dto.ValidationDetail{{Field: domainErr.Field, Message: domainErr.Message}}
	}
	c.JSON(http.StatusBadRequest, resp)
}
