package controllers

import (
	"net/http"

	"afelegance-backend/models"
	"afelegance-backend/payment"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// CreatePaymentIntent asks the processor for a client secret covering price.
func (ctrl *Controller) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	secret, err := ctrl.Payments.CreatePaymentIntent(ctx, payment.AmountInMinorUnits(req.Price))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: secret})
}

// ConfirmPayment records the payment and then clears the payer's cart.
// The two writes are independent: a failed cart clear leaves the payment in place.
func (ctrl *Controller) ConfirmPayment(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	result, err := ctrl.DB.Collection(models.PaymentsCollection).InsertOne(ctx, doc)
	if err != nil {
		internalError(c, err)
		return
	}

	email := doc[models.PaymentEmailField]
	deleteResult, err := ctrl.DB.Collection(models.CartsCollection).DeleteMany(ctx, bson.M{models.OwnerEmailField: email})
	if err != nil {
		log.Warn().Err(err).Interface("paymentId", result.InsertedID).Interface("email", email).
			Msg("payment stored but cart was not cleared")
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "deleteResult": deleteResult})
}

// GetPayments lists the payments made by one email.
func (ctrl *Controller) GetPayments(c *gin.Context) {
	filter := bson.M{models.PaymentEmailField: c.Param("email")}
	ctrl.listDocuments(c, models.PaymentsCollection, filter, 0)
}
