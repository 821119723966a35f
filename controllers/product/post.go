package productcontroller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sayhan-ahmed/crafty-server/models"
	"github.com/sayhan-ahmed/crafty-server/store"
)

// CreateProduct inserts a new product and, alongside it, an order for
// the creator embedding a snapshot of the product. The two inserts are
// not transactional: if the order insert fails, the product insert is
// undone by a compensating delete and the request fails.
func CreateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if product.Email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Login required: email missing"})
			return
		}

		product.CreatedAt = time.Now()

		ctx := c.Request.Context()
		productID, err := s.InsertProduct(ctx, &product)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		product.ID = productID

		order := models.NewOrderFor(product)
		orderID, err := s.InsertOrder(ctx, &order)
		if err != nil {
			// The compensating delete must run even when the request
			// context is already gone.
			if _, delErr := s.DeleteProduct(context.WithoutCancel(ctx), productID); delErr != nil {
				log.Printf("❌ Rollback of product %s failed: %v", productID.Hex(), delErr)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"insertedId": productID.Hex(),
			"orderId":    orderID.Hex(),
		})
	}
}
