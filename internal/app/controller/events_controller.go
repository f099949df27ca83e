package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/internal/middleware"
	ws "github.com/ikkim/shop-api/internal/websocket"
)

type EventsController struct {
	hub *ws.Hub
}

func NewEventsController(hub *ws.Hub) *EventsController {
	return &EventsController{
		hub: hub,
	}
}

// Subscribe upgrades to a websocket carrying shop events. The optional
// types query parameter filters them, e.g. ?types=item.created,cart.created
// GET /ws/events
func (ctrl *EventsController) Subscribe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if err := ctrl.hub.ServeWS(c.Writer, c.Request); err != nil {
		// Upgrade has already written the error response
		log.Warn("Failed to upgrade event subscription", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	log.Info("Event subscription opened", map[string]interface{}{
		"types": c.Query("types"),
	})
}
