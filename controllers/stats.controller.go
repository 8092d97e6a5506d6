package controllers

import (
	"net/http"
	"time"

	"afelegance-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const livenessMessage = "AF_Elegance server is running..."

// Root answers the plain text liveness probe.
func (ctrl *Controller) Root(c *gin.Context) {
	c.String(http.StatusOK, livenessMessage)
}

// HealthCheck reports whether the database answers a ping.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	dbStatus := "connected"
	if err := ctrl.DB.Ping(ctx); err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats counts the documents of every collection.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	stats := models.Stats{Collections: make(map[string]int64, len(models.AllCollections))}
	for _, name := range models.AllCollections {
		n, err := ctrl.DB.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			internalError(c, err)
			return
		}
		stats.Collections[name] = n
		stats.Total += n
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
