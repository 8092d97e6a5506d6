package controllers

import (
	"context"
	"net/http"
	"time"

	"afelegance-backend/auth"
	"afelegance-backend/database"
	"afelegance-backend/media"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const requestTimeout = 10 * time.Second

// PaymentProcessor creates payment intents and returns their client secret.
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// ImageUploader hosts product images.
type ImageUploader interface {
	Upload(ctx context.Context, file string) (*media.Image, error)
}

// Controller holds the dependencies shared by every handler.
// Images may be nil when no image host is configured.
type Controller struct {
	DB       database.Store
	Tokens   auth.Issuer
	Payments PaymentProcessor
	Images   ImageUploader
}

func (ctrl *Controller) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func internalError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func objectIDParam(c *gin.Context, label string) (primitive.ObjectID, bool) {
	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
		return primitive.NilObjectID, false
	}
	return objectID, true
}

func bindDocument(c *gin.Context) (bson.M, bool) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if doc == nil {
		doc = bson.M{}
	}
	return doc, true
}

func (ctrl *Controller) listDocuments(c *gin.Context, collection string, filter bson.M, limit int64) {
	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	docs, err := ctrl.DB.Collection(collection).Find(ctx, filter, limit)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (ctrl *Controller) insertDocument(c *gin.Context, collection string, doc bson.M) {
	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	result, err := ctrl.DB.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctrl *Controller) insertBody(c *gin.Context, collection string) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	ctrl.insertDocument(c, collection, doc)
}

func (ctrl *Controller) updateByID(c *gin.Context, collection, label string, update bson.M, upsert bool) {
	objectID, ok := objectIDParam(c, label)
	if !ok {
		return
	}
	ctrl.updateDocument(c, collection, objectID, update, upsert)
}

func (ctrl *Controller) updateDocument(c *gin.Context, collection string, objectID primitive.ObjectID, update bson.M, upsert bool) {
	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	result, err := ctrl.DB.Collection(collection).UpdateOne(ctx, bson.M{"_id": objectID}, update, upsert)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteByID removes at most one document; a missing id reports deletedCount 0.
func (ctrl *Controller) deleteByID(c *gin.Context, collection, label string) {
	objectID, ok := objectIDParam(c, label)
	if !ok {
		return
	}

	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	result, err := ctrl.DB.Collection(collection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
