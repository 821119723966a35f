package productcontroller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sayhan-ahmed/crafty-server/models"
	"github.com/sayhan-ahmed/crafty-server/routes"
	"github.com/sayhan-ahmed/crafty-server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(s store.Store) *gin.Engine {
	r := gin.New()
	routes.SetupRoutes(r, s)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	return doc
}

func TestHealthCheck(t *testing.T) {
	w := doRequest(t, newRouter(store.NewMemory()), http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Crafty API is running!", w.Body.String())
}

func TestGetProductsSortedNewestFirst(t *testing.T) {
	mem := store.NewMemory()
	base := time.Now()
	for _, p := range []models.Product{
		{Name: strPtr("oldest"), Email: "a@x.com", CreatedAt: base},
		{Name: strPtr("newest"), Email: "a@x.com", CreatedAt: base.Add(2 * time.Minute)},
		{Name: strPtr("middle"), Email: "a@x.com", CreatedAt: base.Add(time.Minute)},
	} {
		p := p
		_, err := mem.InsertProduct(context.Background(), &p)
		require.NoError(t, err)
	}

	w := doRequest(t, newRouter(mem), http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0]["name"])
	assert.Equal(t, "middle", got[1]["name"])
	assert.Equal(t, "oldest", got[2]["name"])
}

func TestGetProductsEmptyStore(t *testing.T) {
	w := doRequest(t, newRouter(store.NewMemory()), http.MethodGet, "/products", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProductByID(t *testing.T) {
	mem := store.NewMemory()
	p := models.Product{
		Name:      strPtr("Mug"),
		Email:     "a@x.com",
		CreatedAt: time.Now(),
		Extra:     map[string]interface{}{"color": "blue"},
	}
	id, err := mem.InsertProduct(context.Background(), &p)
	require.NoError(t, err)

	w := doRequest(t, newRouter(mem), http.MethodGet, "/products/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	doc := decodeBody(t, w)
	assert.Equal(t, id.Hex(), doc["id"])
	assert.Equal(t, "Mug", doc["name"])
	assert.Equal(t, "blue", doc["color"])
	assert.Contains(t, doc, "createdAt")
}

func TestCreatedZeroValuedFieldsComeBack(t *testing.T) {
	mem := store.NewMemory()
	r := newRouter(mem)

	w := doRequest(t, r, http.MethodPost, "/products", gin.H{
		"name":        "Freebie",
		"price":       0,
		"description": "",
		"email":       "a@x.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["insertedId"].(string)

	w = doRequest(t, r, http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	doc := decodeBody(t, w)
	assert.Equal(t, float64(0), doc["price"])
	assert.Equal(t, "", doc["description"])
}

func TestGetProductByIDNotFound(t *testing.T) {
	w := doRequest(t, newRouter(store.NewMemory()), http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decodeBody(t, w)["message"])
}

func TestGetProductByIDMalformed(t *testing.T) {
	w := doRequest(t, newRouter(store.NewMemory()), http.MethodGet, "/products/not-an-id", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product ID", decodeBody(t, w)["message"])
}

func TestCreateProductWithoutEmail(t *testing.T) {
	mem := store.NewMemory()

	w := doRequest(t, newRouter(mem), http.MethodPost, "/products", gin.H{"name": "Mug"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Login required: email missing", decodeBody(t, w)["message"])

	products, err := mem.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCreateProductAlsoCreatesOrder(t *testing.T) {
	mem := store.NewMemory()

	w := doRequest(t, newRouter(mem), http.MethodPost, "/products", gin.H{
		"name":  "Mug",
		"price": 9.5,
		"email": "a@x.com",
		"color": "blue",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	doc := decodeBody(t, w)
	productID, err := primitive.ObjectIDFromHex(doc["insertedId"].(string))
	require.NoError(t, err)
	require.NotEmpty(t, doc["orderId"])

	ctx := context.Background()
	product, err := mem.GetProduct(ctx, productID)
	require.NoError(t, err)
	require.NotNil(t, product.Name)
	assert.Equal(t, "Mug", *product.Name)
	assert.Equal(t, "a@x.com", product.Email)
	assert.Equal(t, "blue", product.Extra["color"])
	assert.False(t, product.CreatedAt.IsZero())

	orders, err := mem.ListOrders(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, productID, orders[0].ProductID)
	assert.Equal(t, "Mug", *orders[0].Product.Name)
	assert.NotEmpty(t, orders[0].OrderRef)
}

// orderInsertFailStore simulates the order insert failing after the
// product insert succeeded.
type orderInsertFailStore struct {
	store.Store
}

func (f *orderInsertFailStore) InsertOrder(context.Context, *models.Order) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errors.New("orders collection unavailable")
}

func TestCreateProductRollsBackWhenOrderInsertFails(t *testing.T) {
	mem := store.NewMemory()

	w := doRequest(t, newRouter(&orderInsertFailStore{mem}), http.MethodPost, "/products", gin.H{
		"name":  "Mug",
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	products, err := mem.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products, "product insert should have been compensated")
}

func TestDeleteProduct(t *testing.T) {
	mem := store.NewMemory()
	p := models.Product{Name: strPtr("Mug"), Email: "a@x.com", CreatedAt: time.Now()}
	id, err := mem.InsertProduct(context.Background(), &p)
	require.NoError(t, err)

	r := newRouter(mem)

	w := doRequest(t, r, http.MethodDelete, "/products/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decodeBody(t, w)
	assert.Equal(t, "Product deleted", doc["message"])
	assert.Equal(t, id.Hex(), doc["deletedId"])

	// Deleting again reports absence
	w = doRequest(t, r, http.MethodDelete, "/products/"+id.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
