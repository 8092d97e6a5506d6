package controllers

import (
	"net/http"

	"afelegance-backend/auth"
	"afelegance-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetReviews lists every site review.
func (ctrl *Controller) GetReviews(c *gin.Context) {
	ctrl.listDocuments(c, models.ReviewsCollection, bson.M{}, 0)
}

// CreateReview stores the body as a site review.
func (ctrl *Controller) CreateReview(c *gin.Context) {
	review, ok := bindDocument(c)
	if !ok {
		return
	}

	email, _ := review[models.UserEmailField].(string)
	if !auth.OwnsEmail(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}
	ctrl.insertDocument(c, models.ReviewsCollection, review)
}
