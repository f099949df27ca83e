package controller

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/stretchr/testify/assert"
)

func setupMathControllerTest(t *testing.T) *gin.Engine {
	t.Helper()

	mathController := NewMathController(service.NewMathService())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/factorial", mathController.Factorial)
	router.GET("/fibonacci/:n", mathController.Fibonacci)
	router.GET("/mean", mathController.Mean)
	return router
}

func TestMathController_Factorial(t *testing.T) {
	router := setupMathControllerTest(t)

	tests := []struct {
		query  string
		status int
		body   string
	}{
		{"n=0", http.StatusOK, `{"result":1}`},
		{"n=5", http.StatusOK, `{"result":120}`},
		{"n=25", http.StatusOK, `{"result":15511210043330985984000000}`},
		{"n=-1", http.StatusBadRequest, ""},
		{"n=100000", http.StatusBadRequest, ""},
		{"n=abc", http.StatusUnprocessableEntity, ""},
		{"", http.StatusUnprocessableEntity, ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, "/factorial?"+tt.query, "")
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestMathController_Fibonacci(t *testing.T) {
	router := setupMathControllerTest(t)

	tests := []struct {
		n      string
		status int
		body   string
	}{
		{"0", http.StatusOK, `{"result":0}`},
		{"1", http.StatusOK, `{"result":1}`},
		{"10", http.StatusOK, `{"result":55}`},
		{"-3", http.StatusBadRequest, ""},
		{"ten", http.StatusUnprocessableEntity, ""},
	}

	for _, tt := range tests {
		t.Run(tt.n, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, "/fibonacci/"+tt.n, "")
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestMathController_Fibonacci_LargeResultIsExact(t *testing.T) {
	router := setupMathControllerTest(t)

	w := performRequest(router, http.MethodGet, "/fibonacci/100", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"result":354224848179261915075}`, strings.TrimSpace(w.Body.String()))
}

func TestMathController_Mean(t *testing.T) {
	router := setupMathControllerTest(t)

	tests := []struct {
		name   string
		body   string
		status int
		result string
	}{
		{"numbers", `[1, 2, 3, 4]`, http.StatusOK, `{"result":2.5}`},
		{"single", `[7]`, http.StatusOK, `{"result":7}`},
		{"empty body", ``, http.StatusUnprocessableEntity, ""},
		{"malformed", `[1,`, http.StatusUnprocessableEntity, ""},
		{"empty list", `[]`, http.StatusBadRequest, ""},
		{"string element", `[1, "2"]`, http.StatusNotFound, ""},
		{"null element", `[1, null]`, http.StatusNotFound, ""},
		{"object body", `{"values":[1]}`, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodGet, "/mean", tt.body)
			assert.Equal(t, tt.status, w.Code)
			if tt.result != "" {
				assert.JSONEq(t, tt.result, w.Body.String())
			}
		})
	}
}
