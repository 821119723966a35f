package userControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sayhan-ahmed/crafty-server/models"
	"github.com/sayhan-ahmed/crafty-server/store"
)

// RegisterUser creates an account, idempotently on email: registering
// an email that already exists is a no-op that reports so.
func RegisterUser(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if user.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		ctx := c.Request.Context()
		_, err := s.FindUserByEmail(ctx, user.Email)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "User exists!"})
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}

		user.CreatedAt = time.Now()
		id, err := s.InsertUser(ctx, &user)
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a race against a concurrent registration of the
			// same email; the outcome is the same as finding it above.
			c.JSON(http.StatusOK, gin.H{"message": "User exists!"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"insertedId": id.Hex()})
	}
}
