package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/stretchr/testify/assert"
)

func TestParseError_NotFound(t *testing.T) {
	info := ParseError(service.ErrItemNotFound)
	assert.Equal(t, http.StatusNotFound, info.Status)
	assert.Equal(t, ItemNotFound, info.Code)

	info = ParseError(service.ErrCartNotFound)
	assert.Equal(t, http.StatusNotFound, info.Status)
	assert.Equal(t, CartNotFound, info.Code)
}

func TestParseError_InvalidArgumentKeepsDetail(t *testing.T) {
	err := fmt.Errorf("%w: min_price must be non-negative", service.ErrInvalidArgument)

	info := ParseError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, info.Status)
	assert.Equal(t, ValidationInvalidRange, info.Code)
	assert.Equal(t, "min_price must be non-negative", info.Message)
}

func TestParseError_PatchFields(t *testing.T) {
	info := ParseError(fmt.Errorf("%w color", service.ErrUnknownField))
	assert.Equal(t, http.StatusUnprocessableEntity, info.Status)
	assert.Equal(t, ValidationUnknownField, info.Code)
	assert.Equal(t, "Unexpected field color", info.Message)

	info = ParseError(fmt.Errorf("%w 'deleted'", service.ErrForbiddenField))
	assert.Equal(t, http.StatusUnprocessableEntity, info.Status)
	assert.Equal(t, ValidationForbiddenField, info.Code)
}

func TestParseError_DeletedItem(t *testing.T) {
	info := ParseError(service.ErrItemDeleted)
	assert.Equal(t, http.StatusNotModified, info.Status)
	assert.Equal(t, ResourceDeleted, info.Code)
}

func TestParseError_UnknownIsInternal(t *testing.T) {
	info := ParseError(stderrors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, info.Status)
	assert.Equal(t, InternalServerError, info.Code)
	assert.NotContains(t, info.Message, "disk")
}

func TestParseAndRespond_NotModifiedHasNoBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ParseAndRespond(c, service.ErrItemDeleted)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestParseAndRespond_WritesErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ParseAndRespond(c, service.ErrCartNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"CART_NOT_FOUND","message":"Cart not found"}`, w.Body.String())
}
