package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/shop-api/internal/errors"
	"github.com/ikkim/shop-api/pkg/logger"
)

// parseIDParam reads a positive integer path parameter. On failure it writes a
// 422 response and returns false.
func parseIDParam(c *gin.Context, log *logger.Logger, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		log.Warn("Invalid id parameter", map[string]interface{}{
			"param": name,
			"value": raw,
			"error": err.Error(),
		})
		apperrors.Unprocessable(c, apperrors.ValidationInvalidID, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError logs err at a level matching its status and writes the
// error body.
func respondServiceError(c *gin.Context, log *logger.Logger, msg string, err error, fields map[string]interface{}) {
	info := apperrors.ParseAndRespond(c, err)

	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["status_code"] = info.Status
	fields["error_code"] = info.Code

	if info.Status >= http.StatusInternalServerError {
		log.Error(msg, err, fields)
		return
	}
	fields["error"] = err.Error()
	log.Warn(msg, fields)
}

func invalidRequest(c *gin.Context, log *logger.Logger, msg string, err error) {
	log.Warn(msg, map[string]interface{}{
		"error": err.Error(),
	})
	apperrors.Unprocessable(c, apperrors.ValidationInvalidInput, "Invalid request data: "+err.Error())
}
