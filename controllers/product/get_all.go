package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sayhan-ahmed/crafty-server/store"
)

// GetProducts returns every product, newest first. Public, no
// filtering, no pagination.
func GetProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
