package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Err is the JSON body of every failed request.
type Err struct {
	HTTPStatusCode int               `json:"-"`
	StatusText     string            `json:"status"`
	Message        string            `json:"message"`
	Errors         map[string]string `json:"errors,omitempty"`
	Err            error             `json:"-"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// RenderErr writes the error body and aborts the chain. Server side failures
// are logged with the request id; client errors are not.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.Message,
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err))
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Bad request",
		Message:        err.Error(),
		Err:            err,
	}
}

// ErrValidation renders ozzo validation errors field by field. Any other
// error falls back to ErrBadRequest.
func ErrValidation(err error) *Err {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return ErrBadRequest(err)
	}

	details := make(map[string]string, len(fields))
	for field, fieldErr := range fields {
		details[field] = fieldErr.Error()
	}

	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Bad request",
		Message:        "validation failed",
		Errors:         details,
		Err:            err,
	}
}

func ErrInvalidID(param, value string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Bad request",
		Message:        fmt.Sprintf("%s must be a positive integer, got %q", param, value),
	}
}

func ErrNotFound(resource string, key string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Not found",
		Message:        fmt.Sprintf("%s with %s=%v not found", resource, key, value),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized",
		Message:        "wrong username or password",
		Err:            err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized",
		Message:        "a valid admin token is required",
		Err:            err,
	}
}

func ErrTooManyRequests() *Err {
	return &Err{
		HTTPStatusCode: http.StatusTooManyRequests,
		StatusText:     "Too many requests",
		Message:        "too many requests, try again later",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error",
		Message:        "something went wrong",
		Err:            err,
	}
}
