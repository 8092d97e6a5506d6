package models

// Product type values used by the catalogue pages.
const (
	ProductTypeMen   = "Men"
	ProductTypeWomen = "Women"
	ProductTypeKid   = "Kid"
)

const (
	SalesLimit = 10

	// Products on sale carry a sales figure strictly between these bounds.
	SalesLowerBound = 0
	SalesUpperBound = 40
)

// Field names the handlers read or write on product documents.
const (
	ProductTypeField      = "type"
	ProductSalesField     = "sales"
	ProductBestSalesField = "bestSales"
	ProductReviewsField   = "reviews"
	ProductImageField     = "image"
	ProductImageIDField   = "imagePublicId"
	ProductImageDataField = "imageBase64"
)

// ProductEditableFields is the whitelist PUT /edit-Product/:id may overwrite.
var ProductEditableFields = []string{
	"type",
	"category",
	"dressTitle",
	"sales",
	"bestSales",
	"length",
	"price",
	"size",
	"stock",
	"style",
	ProductImageField,
	ProductImageIDField,
}
