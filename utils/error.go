package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures surfaced to callers.
type ErrorKind string

const (
	KindUnauthorized     ErrorKind = "Unauthorized"
	KindForbidden        ErrorKind = "Forbidden"
	KindDuplicateBooking ErrorKind = "DuplicateBooking"
	KindSlotTaken        ErrorKind = "SlotTaken"
	KindNotFound         ErrorKind = "NotFound"
	KindBadRequest       ErrorKind = "BadRequest"
	KindTransientStorage ErrorKind = "TransientStorageError"
	KindPaymentProvider  ErrorKind = "PaymentProviderError"
	KindInternal         ErrorKind = "Internal"
)

// AppError carries a client-facing message and the underlying cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or the empty kind for untyped errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindSlotTaken:
		return http.StatusConflict
	case KindDuplicateBooking:
		// Duplicate bookings are an acknowledged:false answer, not a failure.
		return http.StatusOK
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindTransientStorage:
		return http.StatusServiceUnavailable
	case KindPaymentProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				zap.L().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	zap.L().Warn(message, zap.String("details", details), zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError writes err using its kind's status. Untyped errors become a 500
// without leaking their text.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		zap.L().Error("unclassified error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
		return
	}

	status := StatusFor(appErr.Kind)
	if status >= http.StatusInternalServerError {
		zap.L().Error(appErr.Message, zap.String("kind", string(appErr.Kind)), zap.Error(appErr.Err), zap.String("path", c.Request.URL.Path))
	} else {
		zap.L().Debug(appErr.Message, zap.String("kind", string(appErr.Kind)), zap.String("path", c.Request.URL.Path))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: appErr.Message, Code: string(appErr.Kind)})
}
