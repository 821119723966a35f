package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sayhan-ahmed/crafty-server/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteProduct removes a product directly by its identifier.
func DeleteProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		deleted, err := s.DeleteProduct(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "deletedId": id.Hex()})
	}
}
