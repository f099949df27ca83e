package controller

import (
	"net/http"
	"testing"

	"github.com/ikkim/shop-api/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartController_CreateCart(t *testing.T) {
	router, _ := setupShopControllerTest(t)

	w := performRequest(router, http.MethodPost, "/cart", "")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/cart/1", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"items":[],"price":0}`, w.Body.String())
}

func TestCartController_AddItem_SnapshotSemantics(t *testing.T) {
	router, shop := setupShopControllerTest(t)
	_, err := shop.CreateItem("Apple", 1.5)
	require.NoError(t, err)
	_, err = shop.CreateCart()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w := performRequest(router, http.MethodPost, "/cart/1/add/1", "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performRequest(router, http.MethodGet, "/cart/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"id":1,"items":[{"id":1,"name":"Apple","quantity":2,"available":true}],"price":3}`,
		w.Body.String())

	// later price and name changes do not touch existing lines or totals
	w = performRequest(router, http.MethodPatch, "/item/1", `{"name":"Red apple","price":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/cart/1/add/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode[model.Cart](t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Apple", cart.Items[0].Name)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 5.0, cart.Price)
}

func TestCartController_AddItem_Failures(t *testing.T) {
	router, shop := setupShopControllerTest(t)
	_, err := shop.CreateItem("Apple", 1.5)
	require.NoError(t, err)
	_, err = shop.CreateItem("Pear", 2)
	require.NoError(t, err)
	require.NoError(t, shop.DeleteItem(2))
	_, err = shop.CreateCart()
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"unknown cart", "/cart/7/add/1", http.StatusNotFound, "CART_NOT_FOUND"},
		{"unknown cart and item", "/cart/7/add/9", http.StatusNotFound, "CART_NOT_FOUND"},
		{"unknown item", "/cart/1/add/9", http.StatusNotFound, "ITEM_NOT_FOUND"},
		{"deleted item", "/cart/1/add/2", http.StatusNotFound, "ITEM_NOT_FOUND"},
		{"bad item id", "/cart/1/add/x", http.StatusUnprocessableEntity, "VALIDATION_INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, http.MethodPost, tt.path, "")
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}

	cart, err := shop.GetCart(1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Price)
}

func TestCartController_GetCart_NotFound(t *testing.T) {
	router, _ := setupShopControllerTest(t)

	w := performRequest(router, http.MethodGet, "/cart/1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CART_NOT_FOUND", errorCode(t, w))
}

func TestCartController_ListCarts(t *testing.T) {
	router, shop := setupShopControllerTest(t)
	_, err := shop.CreateItem("Apple", 1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := shop.CreateCart()
		require.NoError(t, err)
	}
	// cart 2 gets two units, cart 3 gets one
	for _, cartID := range []uint{2, 2, 3} {
		_, err := shop.AddItemToCart(cartID, 1)
		require.NoError(t, err)
	}

	w := performRequest(router, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Cart](t, w), 3)

	w = performRequest(router, http.MethodGet, "/cart?min_quantity=1&max_quantity=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	carts := decode[[]model.Cart](t, w)
	require.Len(t, carts, 1)
	assert.Equal(t, uint(3), carts[0].ID)

	w = performRequest(router, http.MethodGet, "/cart?min_price=1.5", "")
	require.Equal(t, http.StatusOK, w.Code)
	carts = decode[[]model.Cart](t, w)
	require.Len(t, carts, 1)
	assert.Equal(t, uint(2), carts[0].ID)

	w = performRequest(router, http.MethodGet, "/cart?max_quantity=-1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_INVALID_RANGE", errorCode(t, w))

	w = performRequest(router, http.MethodGet, "/cart?min_quantity=lots", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "VALIDATION_INVALID_INPUT", errorCode(t, w))
}
