package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/ikkim/shop-api/internal/middleware"
)

type CartController struct {
	shopService service.ShopService
}

func NewCartController(shopService service.ShopService) *CartController {
	return &CartController{
		shopService: shopService,
	}
}

type ListCartsQuery struct {
	Offset      int      `form:"offset,default=0"`
	Limit       int      `form:"limit,default=10"`
	MinPrice    *float64 `form:"min_price"`
	MaxPrice    *float64 `form:"max_price"`
	MinQuantity *int     `form:"min_quantity"`
	MaxQuantity *int     `form:"max_quantity"`
}

// CreateCart creates an empty cart
// POST /cart
func (ctrl *CartController) CreateCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cart, err := ctrl.shopService.CreateCart()
	if err != nil {
		respondServiceError(c, log, "Failed to create cart", err, nil)
		return
	}

	log.Info("Cart created", map[string]interface{}{
		"cart_id": cart.ID,
	})

	c.Header("Location", fmt.Sprintf("/cart/%d", cart.ID))
	c.JSON(http.StatusCreated, cart)
}

// GetCart returns a cart by id
// GET /cart/:id
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	cart, err := ctrl.shopService.GetCart(id)
	if err != nil {
		respondServiceError(c, log, "Failed to fetch cart", err, map[string]interface{}{
			"cart_id": id,
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// ListCarts returns a page of carts
// GET /cart
func (ctrl *CartController) ListCarts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var query ListCartsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidRequest(c, log, "Invalid cart list query", err)
		return
	}

	carts, err := ctrl.shopService.ListCarts(service.CartQuery{
		Offset:      query.Offset,
		Limit:       query.Limit,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		MinQuantity: query.MinQuantity,
		MaxQuantity: query.MaxQuantity,
	})
	if err != nil {
		respondServiceError(c, log, "Failed to list carts", err, nil)
		return
	}

	log.Debug("Carts listed", map[string]interface{}{
		"count": len(carts),
	})

	c.JSON(http.StatusOK, carts)
}

// AddItem puts one unit of an item into a cart
// POST /cart/:id/add/:item_id
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	cartID, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, log, "item_id")
	if !ok {
		return
	}

	cart, err := ctrl.shopService.AddItemToCart(cartID, itemID)
	if err != nil {
		respondServiceError(c, log, "Failed to add item to cart", err, map[string]interface{}{
			"cart_id": cartID,
			"item_id": itemID,
		})
		return
	}

	log.Info("Item added to cart", map[string]interface{}{
		"cart_id":  cart.ID,
		"item_id":  itemID,
		"quantity": cart.TotalQuantity(),
	})

	c.JSON(http.StatusOK, cart)
}
