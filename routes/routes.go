package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sayhan-ahmed/crafty-server/store"
)

// SetupRoutes is the single entry-point that wires up the health check
// and the Product, Order, and User route groups.
func SetupRoutes(r *gin.Engine, s store.Store) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Crafty API is running!")
	})

	SetupProductRoutes(r, s)
	SetupOrderRoutes(r, s)
	SetupUserRoutes(r, s)
}
