package orderControllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sayhan-ahmed/crafty-server/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserOrdersHandler lists the requesting user's orders, newest
// first. The email is set by the RequireEmail middleware.
func GetUserOrdersHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")

		orders, err := s.ListOrders(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// DeleteOrderHandler removes an order and cascades to the product it
// references. Ownership is a single combined match on id and email, so
// a missing order and someone else's order are indistinguishable to
// the caller.
func DeleteOrderHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}

		ctx := c.Request.Context()
		order, err := s.GetOrderForOwner(ctx, id, email)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not owner or not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// Order first: a failure between the two deletes strands an
		// unreferenced product, never an order pointing at a deleted
		// one.
		if _, err := s.DeleteOrder(ctx, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		deleted, err := s.DeleteProduct(ctx, order.ProductID)
		if err != nil {
			// Put the order back rather than leave the cascade half
			// done.
			if _, insErr := s.InsertOrder(context.WithoutCancel(ctx), &order); insErr != nil {
				log.Printf("❌ Restore of order %s failed: %v", id.Hex(), insErr)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if deleted == 0 {
			log.Printf("⚠️ Order %s referenced product %s, which was already gone", id.Hex(), order.ProductID.Hex())
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Order deleted",
			"deletedId":      id.Hex(),
			"productDeleted": deleted > 0,
		})
	}
}
