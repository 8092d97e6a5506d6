package models

// Collection names in the afElegance database.
const (
	UsersCollection      = "users"
	ProductsCollection   = "products"
	ReviewsCollection    = "reviews"
	CartsCollection      = "carts"
	FavouritesCollection = "favourites"
	PaymentsCollection   = "payments"
)

// AllCollections is the order used when reporting stats.
var AllCollections = []string{
	UsersCollection,
	ProductsCollection,
	ReviewsCollection,
	CartsCollection,
	FavouritesCollection,
	PaymentsCollection,
}
