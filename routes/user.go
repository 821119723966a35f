package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/sayhan-ahmed/crafty-server/controllers/user"
	"github.com/sayhan-ahmed/crafty-server/store"
)

// SetupUserRoutes registers all "/users" endpoints.
func SetupUserRoutes(r *gin.Engine, s store.Store) {
	users := r.Group("/users")
	{
		users.POST("", userControllers.RegisterUser(s)) // POST /users
	}
}
