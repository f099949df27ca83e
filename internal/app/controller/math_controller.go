package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/app/service"
	apperrors "github.com/ikkim/shop-api/internal/errors"
	"github.com/ikkim/shop-api/internal/middleware"
)

type MathController struct {
	mathService service.MathService
}

func NewMathController(mathService service.MathService) *MathController {
	return &MathController{
		mathService: mathService,
	}
}

// Factorial returns n!
// GET /factorial?n=
func (ctrl *MathController) Factorial(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	n, err := strconv.ParseInt(c.Query("n"), 10, 64)
	if err != nil {
		invalidRequest(c, log, "Invalid factorial argument", err)
		return
	}

	result, err := ctrl.mathService.Factorial(n)
	if err != nil {
		respondServiceError(c, log, "Failed to compute factorial", err, map[string]interface{}{
			"n": n,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Fibonacci returns the n-th Fibonacci number
// GET /fibonacci/:n
func (ctrl *MathController) Fibonacci(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	n, err := strconv.ParseInt(c.Param("n"), 10, 64)
	if err != nil {
		invalidRequest(c, log, "Invalid fibonacci argument", err)
		return
	}

	result, err := ctrl.mathService.Fibonacci(n)
	if err != nil {
		respondServiceError(c, log, "Failed to compute fibonacci", err, map[string]interface{}{
			"n": n,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Mean returns the arithmetic mean of a JSON array of numbers
// GET /mean
func (ctrl *MathController) Mean(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	body, err := c.GetRawData()
	if err != nil {
		invalidRequest(c, log, "Failed to read mean body", err)
		return
	}
	if len(body) == 0 {
		log.Warn("Empty mean body", nil)
		apperrors.Unprocessable(c, apperrors.ValidationInvalidInput, "Request body is required")
		return
	}

	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		invalidRequest(c, log, "Malformed mean body", err)
		return
	}

	values, ok := numbers(raw)
	if !ok {
		log.Warn("Mean body is not a list of numbers", nil)
		apperrors.NotFound(c, apperrors.ValidationInvalidInput, "Expected a list of numbers")
		return
	}

	result, err := ctrl.mathService.Mean(values)
	if err != nil {
		respondServiceError(c, log, "Failed to compute mean", err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// numbers accepts a decoded JSON array whose elements are all numbers.
func numbers(raw interface{}) ([]float64, bool) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, false
	}
	values := make([]float64, 0, len(list))
	for _, v := range list {
		f, ok := v.(float64)
		if !ok {
			return nil, false
		}
		values = append(values, f)
	}
	return values, true
}
