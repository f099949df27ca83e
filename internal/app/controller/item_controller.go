package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/app/service"
	"github.com/ikkim/shop-api/internal/middleware"
)

type ItemController struct {
	shopService service.ShopService
}

func NewItemController(shopService service.ShopService) *ItemController {
	return &ItemController{
		shopService: shopService,
	}
}

// ItemRequest is the body of item creation and full replacement.
type ItemRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required,gte=0"`
}

type ListItemsQuery struct {
	Offset      int      `form:"offset,default=0"`
	Limit       int      `form:"limit,default=10"`
	MinPrice    *float64 `form:"min_price"`
	MaxPrice    *float64 `form:"max_price"`
	ShowDeleted bool     `form:"show_deleted,default=false"`
}

// CreateItem adds an item to the catalog
// POST /item
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, log, "Invalid item creation request", err)
		return
	}

	item, err := ctrl.shopService.CreateItem(req.Name, *req.Price)
	if err != nil {
		respondServiceError(c, log, "Failed to create item", err, nil)
		return
	}

	log.Info("Item created", map[string]interface{}{
		"item_id": item.ID,
	})

	c.Header("Location", fmt.Sprintf("/item/%d", item.ID))
	c.JSON(http.StatusCreated, item)
}

// GetItem returns a non-deleted item
// GET /item/:id
func (ctrl *ItemController) GetItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	item, err := ctrl.shopService.GetItem(id)
	if err != nil {
		respondServiceError(c, log, "Failed to fetch item", err, map[string]interface{}{
			"item_id": id,
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListItems returns a page of the catalog
// GET /item
func (ctrl *ItemController) ListItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var query ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidRequest(c, log, "Invalid item list query", err)
		return
	}

	items, err := ctrl.shopService.ListItems(service.ItemQuery{
		Offset:      query.Offset,
		Limit:       query.Limit,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		ShowDeleted: query.ShowDeleted,
	})
	if err != nil {
		respondServiceError(c, log, "Failed to list items", err, nil)
		return
	}

	log.Debug("Items listed", map[string]interface{}{
		"count": len(items),
	})

	c.JSON(http.StatusOK, items)
}

// UpdateItem replaces an item, restoring it if deleted
// PUT /item/:id
func (ctrl *ItemController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, log, "Invalid item update request", err)
		return
	}

	item, err := ctrl.shopService.UpdateItem(id, req.Name, *req.Price)
	if err != nil {
		respondServiceError(c, log, "Failed to update item", err, map[string]interface{}{
			"item_id": id,
		})
		return
	}

	log.Info("Item updated", map[string]interface{}{
		"item_id": item.ID,
	})

	c.JSON(http.StatusOK, item)
}

// PatchItem merges name and/or price into an item
// PATCH /item/:id
func (ctrl *ItemController) PatchItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		invalidRequest(c, log, "Failed to read patch body", err)
		return
	}

	patch, err := service.ParseItemPatch(body)
	if err != nil {
		respondServiceError(c, log, "Invalid item patch", err, map[string]interface{}{
			"item_id": id,
		})
		return
	}

	item, err := ctrl.shopService.PatchItem(id, patch)
	if err != nil {
		respondServiceError(c, log, "Failed to patch item", err, map[string]interface{}{
			"item_id": id,
		})
		return
	}

	log.Info("Item patched", map[string]interface{}{
		"item_id": item.ID,
	})

	c.JSON(http.StatusOK, item)
}

// DeleteItem soft-deletes an item
// DELETE /item/:id
func (ctrl *ItemController) DeleteItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, log, "id")
	if !ok {
		return
	}

	if err := ctrl.shopService.DeleteItem(id); err != nil {
		respondServiceError(c, log, "Failed to delete item", err, map[string]interface{}{
			"item_id": id,
		})
		return
	}

	log.Info("Item deleted", map[string]interface{}{
		"item_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item deleted",
	})
}
