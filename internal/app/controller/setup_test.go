package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/app/repository"
	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/ikkim/shop-api/internal/middleware"
	"github.com/stretchr/testify/require"
)

func setupShopControllerTest(t *testing.T) (*gin.Engine, service.ShopService) {
	t.Helper()

	shopService := service.NewShopService(
		repository.NewItemRepository(),
		repository.NewCartRepository(),
	)
	itemController := NewItemController(shopService)
	cartController := NewCartController(shopService)
	reportController := NewReportController(shopService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())

	router.POST("/item", itemController.CreateItem)
	router.GET("/item", itemController.ListItems)
	router.GET("/item/:id", itemController.GetItem)
	router.PUT("/item/:id", itemController.UpdateItem)
	router.PATCH("/item/:id", itemController.PatchItem)
	router.DELETE("/item/:id", itemController.DeleteItem)

	router.POST("/cart", cartController.CreateCart)
	router.GET("/cart", cartController.ListCarts)
	router.GET("/cart/:id", cartController.GetCart)
	router.POST("/cart/:id/add/:item_id", cartController.AddItem)

	router.GET("/report/catalog.xlsx", reportController.DownloadCatalog)

	return router, shopService
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode[map[string]interface{}](t, w)
	code, _ := body["error"].(string)
	return code
}

