package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/sayhan-ahmed/crafty-server/controllers/order"
	"github.com/sayhan-ahmed/crafty-server/middleware"
	"github.com/sayhan-ahmed/crafty-server/store"
)

// SetupOrderRoutes registers all "/orders" endpoints. Every order route
// requires the caller's email.
func SetupOrderRoutes(r *gin.Engine, s store.Store) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireEmail)
	{
		orders.GET("", orderControllers.GetUserOrdersHandler(s))       // GET /orders?email=
		orders.DELETE("/:id", orderControllers.DeleteOrderHandler(s))  // DELETE /orders/:id?email=
	}
}
