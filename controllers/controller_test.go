package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"afelegance-backend/database"
	"afelegance-backend/media"
	"afelegance-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUploader struct {
	files []string
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, file string) (*media.Image, error) {
	f.files = append(f.files, file)
	if f.err != nil {
		return nil, f.err
	}
	return &media.Image{URL: "https://res.cloudinary.com/demo/image/upload/polo.jpg", PublicID: "afElegance/products/polo"}, nil
}

// brokenStore breaks bulk deletes and counts on one collection.
type brokenStore struct {
	database.Store
	failing string
}

func (s brokenStore) Collection(name string) database.Collection {
	coll := s.Store.Collection(name)
	if name == s.failing {
		return brokenCollection{coll}
	}
	return coll
}

type brokenCollection struct {
	database.Collection
}

func (brokenCollection) DeleteMany(context.Context, bson.M) (*database.DeleteResult, error) {
	return nil, errors.New("carts unavailable")
}

func (brokenCollection) CountDocuments(context.Context, bson.M) (int64, error) {
	return 0, errors.New("carts unavailable")
}

func serve(t *testing.T, method, path, pattern string, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, pattern, handler)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProductUploadsInlineImage(t *testing.T) {
	store := database.NewMemoryStore()
	uploader := &fakeUploader{}
	ctrl := &Controller{DB: store, Images: uploader}

	w := serve(t, http.MethodPost, "/add-product", "/add-product", ctrl.CreateProduct,
		`{"dressTitle":"Polo","imageBase64":"data:image/png;base64,iVBORw0KGgo="}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(uploader.files) != 1 {
		t.Fatalf("uploads = %d, want 1", len(uploader.files))
	}

	doc, err := store.Collection(models.ProductsCollection).FindOne(context.Background(), bson.M{"dressTitle": "Polo"})
	if err != nil || doc == nil {
		t.Fatalf("FindOne = %v, %v", doc, err)
	}
	if doc[models.ProductImageField] != "https://res.cloudinary.com/demo/image/upload/polo.jpg" {
		t.Errorf("image = %v", doc[models.ProductImageField])
	}
	if doc[models.ProductImageIDField] != "afElegance/products/polo" {
		t.Errorf("imagePublicId = %v", doc[models.ProductImageIDField])
	}
	if _, ok := doc[models.ProductImageDataField]; ok {
		t.Error("inline image data was stored")
	}
}

func TestCreateProductWithoutImageHostDropsInlineData(t *testing.T) {
	store := database.NewMemoryStore()
	ctrl := &Controller{DB: store}

	w := serve(t, http.MethodPost, "/add-product", "/add-product", ctrl.CreateProduct,
		`{"dressTitle":"Scarf","image":"https://cdn.example.com/scarf.jpg","imageBase64":"abc"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	doc, _ := store.Collection(models.ProductsCollection).FindOne(context.Background(), bson.M{"dressTitle": "Scarf"})
	if doc[models.ProductImageField] != "https://cdn.example.com/scarf.jpg" {
		t.Errorf("image = %v", doc[models.ProductImageField])
	}
	if _, ok := doc[models.ProductImageDataField]; ok {
		t.Error("inline image data was stored")
	}
}

func TestCreateProductUploadFailure(t *testing.T) {
	store := database.NewMemoryStore()
	ctrl := &Controller{DB: store, Images: &fakeUploader{err: errors.New("quota exceeded")}}

	w := serve(t, http.MethodPost, "/add-product", "/add-product", ctrl.CreateProduct,
		`{"dressTitle":"Coat","imageBase64":"abc"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	n, _ := store.Collection(models.ProductsCollection).CountDocuments(context.Background(), bson.M{})
	if n != 0 {
		t.Errorf("products = %d, want 0", n)
	}
}

func TestConfirmPaymentKeepsPaymentWhenCartClearFails(t *testing.T) {
	mem := database.NewMemoryStore()
	ctrl := &Controller{DB: brokenStore{Store: mem, failing: models.CartsCollection}}

	w := serve(t, http.MethodPost, "/payment", "/payment", ctrl.ConfirmPayment,
		`{"email":"ana@example.com","price":20}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("missing error message in %s", w.Body.String())
	}

	n, _ := mem.Collection(models.PaymentsCollection).CountDocuments(context.Background(), bson.M{})
	if n != 1 {
		t.Errorf("payments = %d, want 1", n)
	}
}

func TestStatsFailure(t *testing.T) {
	ctrl := &Controller{DB: brokenStore{Store: database.NewMemoryStore(), failing: models.CartsCollection}}

	w := serve(t, http.MethodGet, "/stats", "/stats", ctrl.GetStats, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestMalformedBody(t *testing.T) {
	ctrl := &Controller{DB: database.NewMemoryStore()}

	cases := []struct {
		name    string
		pattern string
		handler gin.HandlerFunc
	}{
		{"users", "/add-users", ctrl.CreateUser},
		{"carts", "/carts", ctrl.AddToCart},
		{"payment", "/payment", ctrl.ConfirmPayment},
		{"intent", "/create-payment-intent", ctrl.CreatePaymentIntent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, tc.pattern, tc.pattern, tc.handler, `{"email":`)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestInvalidObjectID(t *testing.T) {
	ctrl := &Controller{DB: database.NewMemoryStore()}

	w := serve(t, http.MethodPatch, "/users/admin/bogus", "/users/admin/:id", ctrl.MakeAdmin, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid user ID") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestUpdateProductChecksIDBeforeUpload(t *testing.T) {
	uploader := &fakeUploader{}
	ctrl := &Controller{DB: database.NewMemoryStore(), Images: uploader}

	w := serve(t, http.MethodPut, "/edit-Product/not-an-id", "/edit-Product/:id", ctrl.UpdateProduct,
		`{"price":30,"imageBase64":"data:image/png;base64,iVBORw0KGgo="}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(uploader.files) != 0 {
		t.Errorf("uploads = %d, want 0", len(uploader.files))
	}
}
