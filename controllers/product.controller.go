package controllers

import (
	"net/http"

	"afelegance-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProducts lists the whole catalogue.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctrl.listDocuments(c, models.ProductsCollection, bson.M{}, 0)
}

// GetProductsByType returns a handler listing products of one type.
func (ctrl *Controller) GetProductsByType(productType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.listDocuments(c, models.ProductsCollection, bson.M{models.ProductTypeField: productType}, 0)
	}
}

// GetSaleProducts lists up to ten products whose sales value is in (0, 40).
func (ctrl *Controller) GetSaleProducts(c *gin.Context) {
	filter := bson.M{models.ProductSalesField: bson.M{
		"$gt": models.SalesLowerBound,
		"$lt": models.SalesUpperBound,
	}}
	ctrl.listDocuments(c, models.ProductsCollection, filter, models.SalesLimit)
}

// GetBestSellingProducts lists up to ten products flagged bestSales.
func (ctrl *Controller) GetBestSellingProducts(c *gin.Context) {
	filter := bson.M{models.ProductBestSalesField: true}
	ctrl.listDocuments(c, models.ProductsCollection, filter, models.SalesLimit)
}

// GetProduct returns an array holding the product with the given id, if any.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	objectID, ok := objectIDParam(c, "product")
	if !ok {
		return
	}
	ctrl.listDocuments(c, models.ProductsCollection, bson.M{"_id": objectID}, 0)
}

// CreateProduct stores the body as a new product.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	product, ok := bindDocument(c)
	if !ok {
		return
	}
	if !ctrl.attachImage(c, product) {
		return
	}
	ctrl.insertDocument(c, models.ProductsCollection, product)
}

// UpdateProduct overwrites the editable fields present in the body,
// creating the product when the id does not exist. The id is checked before
// any image is uploaded.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	objectID, ok := objectIDParam(c, "product")
	if !ok {
		return
	}
	body, ok := bindDocument(c)
	if !ok {
		return
	}
	if !ctrl.attachImage(c, body) {
		return
	}

	set := bson.M{}
	for _, field := range models.ProductEditableFields {
		if value, present := body[field]; present {
			set[field] = value
		}
	}
	ctrl.updateDocument(c, models.ProductsCollection, objectID, bson.M{"$set": set}, true)
}

// DeleteProduct removes one product by id.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctrl.deleteByID(c, models.ProductsCollection, "product")
}

// AddProductReview appends the body to the product's reviews array.
func (ctrl *Controller) AddProductReview(c *gin.Context) {
	review, ok := bindDocument(c)
	if !ok {
		return
	}
	update := bson.M{"$push": bson.M{models.ProductReviewsField: review}}
	ctrl.updateByID(c, models.ProductsCollection, "product", update, false)
}

// attachImage swaps an inline imageBase64 for a hosted image reference.
// Without an image host the inline data is dropped.
func (ctrl *Controller) attachImage(c *gin.Context, product bson.M) bool {
	data, _ := product[models.ProductImageDataField].(string)
	delete(product, models.ProductImageDataField)
	if data == "" || ctrl.Images == nil {
		return true
	}

	ctx, cancel := ctrl.requestContext(c)
	defer cancel()

	image, err := ctrl.Images.Upload(ctx, data)
	if err != nil {
		log.Error().Err(err).Msg("image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return false
	}
	product[models.ProductImageField] = image.URL
	product[models.ProductImageIDField] = image.PublicID
	return true
}
