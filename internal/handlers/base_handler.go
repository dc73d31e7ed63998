package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"
)

// BaseHandler carries the pieces every handler needs: the request validator
// and access to the per-request DB handle.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() BaseHandler {
	return BaseHandler{validator: validator.New()}
}

// GetDB returns the *gorm.DB the DB middleware stored for this request.
// A missing handle is a wiring bug, so it panics rather than limping on.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	value, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		panic("db handle missing from gin context; is DBMiddleware registered?")
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		panic("db handle in gin context has wrong type")
	}
	return db
}

// BindAndValidateJSON decodes the JSON body into req and validates it. On
// failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.CtxWarn(c.Request.Context(), "Malformed request body", "error", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, req)
}

// BindAndValidateQuery decodes query parameters into req and validates it.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		logger.CtxWarn(c.Request.Context(), "Malformed query parameters", "error", err)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, req)
}

func (h *BaseHandler) validate(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError logs and writes a service-layer error. Client errors
// log at warn, everything else at error with the wrapped cause.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode < 500 {
		logger.CtxWarn(ctx, "Request rejected", "code", appErr.Code, "message", appErr.Message)
	} else {
		logger.CtxWithError(ctx, "Request failed", err)
	}
	apperrors.HandleError(c, err)
}
