package controllers

import (
	"net/http"

	"afelegance-backend/auth"
	"afelegance-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// GetUsers lists every user document.
func (ctrl *Controller) GetUsers(c *gin.Context) {
	ctrl.listDocuments(c, models.UsersCollection, bson.M{}, 0)
}

// GetUser returns the user with the given email, or null.
func (ctrl *Controller) GetUser(c *gin.Context) {
	email := c.Param("email")
	if !auth.OwnsEmail(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	user, err := ctrl.DB.Collection(models.UsersCollection).FindOne(ctx, bson.M{models.UserEmailField: email})
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser stores the body unless a user with the same email exists.
func (ctrl *Controller) CreateUser(c *gin.Context) {
	user, ok := bindDocument(c)
	if !ok {
		return
	}

	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	users := ctrl.DB.Collection(models.UsersCollection)
	existing, err := users.FindOne(ctx, bson.M{models.UserEmailField: user[models.UserEmailField]})
	if err != nil {
		internalError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, models.DuplicateUser{Message: models.DuplicateUserMessage})
		return
	}

	log.Debug().Interface("email", user[models.UserEmailField]).Msg("adding user")
	result, err := users.InsertOne(ctx, user)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAdminStatus reports whether the user's role is exactly "admin".
func (ctrl *Controller) GetAdminStatus(c *gin.Context) {
	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	user, err := ctrl.DB.Collection(models.UsersCollection).FindOne(ctx, bson.M{models.UserEmailField: c.Param("email")})
	if err != nil {
		internalError(c, err)
		return
	}

	role, _ := user[models.UserRoleField].(string)
	c.JSON(http.StatusOK, models.AdminStatus{Admin: role == models.RoleAdmin})
}

// MakeAdmin sets role=admin on the user with the given id.
func (ctrl *Controller) MakeAdmin(c *gin.Context) {
	update := bson.M{"$set": bson.M{models.UserRoleField: models.RoleAdmin}}
	ctrl.updateByID(c, models.UsersCollection, "user", update, false)
}

// DeleteUser removes one user by id.
func (ctrl *Controller) DeleteUser(c *gin.Context) {
	ctrl.deleteByID(c, models.UsersCollection, "user")
}
