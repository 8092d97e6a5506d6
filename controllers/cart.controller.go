package controllers

import (
	"net/http"

	"afelegance-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Carts and favourites share one shape: items tagged with their owner's
// email, listed by email and removed by id.

func (ctrl *Controller) GetCarts(c *gin.Context) {
	ctrl.listOwnedItems(c, models.CartsCollection)
}

func (ctrl *Controller) AddToCart(c *gin.Context) {
	ctrl.insertBody(c, models.CartsCollection)
}

func (ctrl *Controller) DeleteCartItem(c *gin.Context) {
	ctrl.deleteByID(c, models.CartsCollection, "cart")
}

func (ctrl *Controller) GetFavourites(c *gin.Context) {
	ctrl.listOwnedItems(c, models.FavouritesCollection)
}

func (ctrl *Controller) AddFavourite(c *gin.Context) {
	ctrl.insertBody(c, models.FavouritesCollection)
}

func (ctrl *Controller) DeleteFavourite(c *gin.Context) {
	ctrl.deleteByID(c, models.FavouritesCollection, "favourite")
}

func (ctrl *Controller) listOwnedItems(c *gin.Context, collection string) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusOK, []bson.M{})
		return
	}
	ctrl.listDocuments(c, collection, bson.M{models.OwnerEmailField: email}, 0)
}
