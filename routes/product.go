package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/sayhan-ahmed/crafty-server/controllers/product"
	"github.com/sayhan-ahmed/crafty-server/store"
)

// SetupProductRoutes registers all "/products" endpoints. Listing and
// lookup are public; creation checks the email in the body itself.
func SetupProductRoutes(r *gin.Engine, s store.Store) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(s))           // GET /products
		products.GET("/:id", productControllers.GetProductByID(s))    // GET /products/:id
		products.POST("", productControllers.CreateProduct(s))        // POST /products
		products.DELETE("/:id", productControllers.DeleteProduct(s))  // DELETE /products/:id
	}
}
