package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/pkg/apperror"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope and returns it.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
	ctx.JSON(status, resp)
	return resp
}

// Error writes a failure envelope and returns it. Middleware should still call
// ctx.Abort() afterwards.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
	ctx.JSON(status, resp)
	return resp
}

// Fail converts any error into a failure envelope. Errors that are not
// *apperror.Error, and unexpected ones, are logged and rendered as a generic 500.
func Fail(ctx *gin.Context, logger *logrus.Logger, err error) {
	status := apperror.Status(err)
	ae, ok := apperror.As(err)
	if !ok || ae.Kind == apperror.KindUnexpected || ae.Kind == apperror.KindUnavailable {
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": ctx.GetString("request_id"),
				"method":     ctx.Request.Method,
				"path":       ctx.FullPath(),
			}).Error("request failed")
		}
		msg := "internal server error"
		if ok {
			msg = ae.Message
		}
		Error[any](ctx, status, msg, nil)
		return
	}
	Error[any](ctx, status, ae.Message, ae.Details)
}
