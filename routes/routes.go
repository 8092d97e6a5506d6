package routes

import (
	"net/http"

	"afelegance-backend/auth"
	"afelegance-backend/controllers"
	"afelegance-backend/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the settings the router needs from the app config.
type Options struct {
	Env         string
	EnforceAuth bool
	CORSOrigins []string
}

// Setup builds the gin engine with every route wired to ctrl.
func Setup(ctrl *controllers.Controller, opts Options) *gin.Engine {
	if opts.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	requireAuth := auth.Require(ctrl.Tokens, opts.EnforceAuth)

	r.GET("/", ctrl.Root)
	r.GET("/health", ctrl.HealthCheck)
	r.GET("/stats", ctrl.GetStats)

	// Users
	r.GET("/all-users", ctrl.GetUsers)
	r.GET("/user/:email", requireAuth, ctrl.GetUser)
	r.POST("/add-users", ctrl.CreateUser)
	r.GET("/users/admin/:email", ctrl.GetAdminStatus)
	r.PATCH("/users/admin/:id", ctrl.MakeAdmin)
	r.DELETE("/users/:id", ctrl.DeleteUser)

	// Products
	r.GET("/mens", ctrl.GetProductsByType(models.ProductTypeMen))
	r.GET("/womens", ctrl.GetProductsByType(models.ProductTypeWomen))
	r.GET("/kids", ctrl.GetProductsByType(models.ProductTypeKid))
	r.GET("/sales", ctrl.GetSaleProducts)
	r.GET("/bestSales", ctrl.GetBestSellingProducts)
	r.GET("/all-products", ctrl.GetProducts)
	r.GET("/product/:id", ctrl.GetProduct)
	r.POST("/add-product", ctrl.CreateProduct)
	r.PUT("/edit-Product/:id", ctrl.UpdateProduct)
	r.DELETE("/delete-products/:id", ctrl.DeleteProduct)
	r.POST("/add-review-product/:id", ctrl.AddProductReview)

	// Reviews
	r.GET("/get-review", ctrl.GetReviews)
	r.POST("/add-review", requireAuth, ctrl.CreateReview)

	// Carts and favourites
	r.GET("/carts/", ctrl.GetCarts)
	r.GET("/carts/:email", ctrl.GetCarts)
	r.POST("/carts", ctrl.AddToCart)
	r.DELETE("/carts/:id", ctrl.DeleteCartItem)
	r.GET("/favourites/", ctrl.GetFavourites)
	r.GET("/favourites/:email", ctrl.GetFavourites)
	r.POST("/favourites", ctrl.AddFavourite)
	r.DELETE("/favourites/:id", ctrl.DeleteFavourite)

	// Payments
	r.POST("/create-payment-intent", ctrl.CreatePaymentIntent)
	r.POST("/payment", ctrl.ConfirmPayment)
	r.GET("/get-payment/:email", ctrl.GetPayments)

	// Tokens
	r.POST("/jwt", ctrl.IssueToken)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AddAllowHeaders("Authorization")

	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowed
	}
	return config
}
