package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status      string      `json:"status"`
	Code        int         `json:"code"`
	Message     string      `json:"message,omitempty"`
	ErrorCode   ErrorCode   `json:"error_code,omitempty"`
	Recoverable bool        `json:"recoverable,omitempty"`
	TraceID     string      `json:"trace_id,omitempty"`
	Data        interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, APIResponse{
		Status:  "success",
		Code:    status,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError renders any service error through the taxonomy.
func HandleServiceError(c *gin.Context, err error) {
	appErr := &AppError{}
	if !errors.As(Normalize(err), &appErr) {
		appErr = &AppError{Code: CodeUnknownError}
	}

	status := StatusFor(appErr.Code)
	if status >= http.StatusInternalServerError {
		Logger(c).Error("service error",
			zap.String("error_code", string(appErr.Code)),
			zap.Error(err))
	} else {
		Logger(c).Info("request rejected",
			zap.String("error_code", string(appErr.Code)),
			zap.String("reason", appErr.Message))
	}

	c.AbortWithStatusJSON(status, APIResponse{
		Status:      "error",
		Code:        status,
		Message:     UserMessage(appErr),
		ErrorCode:   appErr.Code,
		Recoverable: IsRecoverableBySessionRefresh(appErr),
		TraceID:     c.GetString("trace_id"),
	})
}

func StatusFor(code ErrorCode) int {
	switch code {
	case CodeValidationError:
		return http.StatusBadRequest
	case CodeAuthError, CodeUserNotFound:
		return http.StatusUnauthorized
	case CodeInvalidUser:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNetworkError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

const loggerKey = "logger"

// SetLogger stores a request scoped logger on the gin context.
func SetLogger(c *gin.Context, log *zap.Logger) {
	c.Set(loggerKey, log)
}

func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return zap.L()
}
