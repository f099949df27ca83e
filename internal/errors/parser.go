package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ikkim/shop-api/internal/app/service"
)

// ErrorInfo is the HTTP rendering of a service error
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
}

// ParseError maps a service error to a status, code and message.
// Unknown errors become a 500 without leaking the underlying text.
func ParseError(err error) ErrorInfo {
	switch {
	case err == nil:
		return ErrorInfo{Status: http.StatusInternalServerError, Code: InternalServerError, Message: "Internal server error"}

	case errors.Is(err, service.ErrItemNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: ItemNotFound, Message: "Item not found"}
	case errors.Is(err, service.ErrCartNotFound):
		return ErrorInfo{Status: http.StatusNotFound, Code: CartNotFound, Message: "Cart not found"}

	case errors.Is(err, service.ErrItemDeleted):
		return ErrorInfo{Status: http.StatusNotModified, Code: ResourceDeleted, Message: "Cannot change deleted item"}

	case errors.Is(err, service.ErrForbiddenField):
		return ErrorInfo{Status: http.StatusUnprocessableEntity, Code: ValidationForbiddenField, Message: capitalize(err.Error())}
	case errors.Is(err, service.ErrUnknownField):
		return ErrorInfo{Status: http.StatusUnprocessableEntity, Code: ValidationUnknownField, Message: capitalize(err.Error())}
	case errors.Is(err, service.ErrInvalidArgument):
		return ErrorInfo{Status: http.StatusUnprocessableEntity, Code: ValidationInvalidRange, Message: detail(err, service.ErrInvalidArgument)}

	case errors.Is(err, service.ErrNegativeInput), errors.Is(err, service.ErrInputTooLarge), errors.Is(err, service.ErrEmptyInput):
		return ErrorInfo{Status: http.StatusBadRequest, Code: ValidationInvalidRange, Message: capitalize(err.Error())}
	}

	return ErrorInfo{Status: http.StatusInternalServerError, Code: InternalServerError, Message: "Internal server error"}
}

// detail strips the "<sentinel>: " prefix of a wrapped error.
func detail(err error, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseAndRespond renders err as the standard error body
func ParseAndRespond(c interface {
	JSON(int, interface{})
	Status(int)
}, err error) ErrorInfo {
	info := ParseError(err)
	if info.Status == http.StatusNotModified {
		// 304 carries no body
		c.Status(info.Status)
		return info
	}
	c.JSON(info.Status, ErrorResponse{
		Error:   info.Code,
		Message: info.Message,
	})
	return info
}
