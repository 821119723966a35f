package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireEmail gates routes that act on a user's own data. There is no
// real authentication: the caller's email address doubles as its
// identity token and arrives as a query parameter.
func RequireEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Login required: email missing"})
		c.Abort()
		return
	}

	// Make the identity available to the handlers downstream
	c.Set("email", email)

	c.Next()
}
