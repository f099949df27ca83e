package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/shop-api/config"
	"github.com/ikkim/shop-api/internal/app/controller"
	"github.com/ikkim/shop-api/internal/middleware"
)

type Router struct {
	itemController   *controller.ItemController
	cartController   *controller.CartController
	mathController   *controller.MathController
	reportController *controller.ReportController
	eventsController *controller.EventsController
	config           *config.Config
}

func NewRouter(
	itemController *controller.ItemController,
	cartController *controller.CartController,
	mathController *controller.MathController,
	reportController *controller.ReportController,
	eventsController *controller.EventsController,
	cfg *config.Config,
) *Router {
	return &Router{
		itemController:   itemController,
		cartController:   cartController,
		mathController:   mathController,
		reportController: reportController,
		eventsController: eventsController,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Shop API is running",
		})
	})

	item := router.Group("/item")
	{
		item.POST("", r.itemController.CreateItem)
		item.GET("", r.itemController.ListItems)
		item.GET("/:id", r.itemController.GetItem)
		item.PUT("/:id", r.itemController.UpdateItem)
		item.PATCH("/:id", r.itemController.PatchItem)
		item.DELETE("/:id", r.itemController.DeleteItem)
	}

	cart := router.Group("/cart")
	{
		cart.POST("", r.cartController.CreateCart)
		cart.GET("", r.cartController.ListCarts)
		cart.GET("/:id", r.cartController.GetCart)
		cart.POST("/:id/add/:item_id", r.cartController.AddItem)
	}

	router.GET("/factorial", r.mathController.Factorial)
	router.GET("/fibonacci/:n", r.mathController.Fibonacci)
	router.GET("/mean", r.mathController.Mean)

	router.GET("/report/catalog.xlsx", r.reportController.DownloadCatalog)
	router.GET("/ws/events", r.eventsController.Subscribe)

	return router
}
