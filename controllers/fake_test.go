package controllers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"catdogeats/client"
	"catdogeats/middleware"
	"catdogeats/models"
	"catdogeats/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

var errDown = errors.New("connection refused")

// cartBackend is an in-memory cart shared by every store in a test
type cartBackend struct {
	mu      sync.Mutex
	items   []models.CartItem
	recs    []models.Recommendation
	calls   map[string]int
	getErr  error
	recsErr error
}

func newCartBackend(items ...models.CartItem) *cartBackend {
	return &cartBackend{items: items, calls: map[string]int{}}
}

func (b *cartBackend) count(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[name]
}

func (b *cartBackend) cart() models.Cart {
	return models.Cart{ID: "cart-1", Items: append([]models.CartItem(nil), b.items...)}
}

func (b *cartBackend) GetCart(context.Context) (models.Cart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["GetCart"]++
	if b.getErr != nil {
		return models.Cart{}, b.getErr
	}
	return b.cart(), nil
}

func (b *cartBackend) AddItem(_ context.Context, productID string, quantity int) (models.Cart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["AddItem"]++
	b.items = append(b.items, models.CartItem{ID: "line-" + productID, ProductID: productID, Price: 1000, Quantity: quantity})
	return b.cart(), nil
}

func (b *cartBackend) UpdateQuantity(_ context.Context, id string, quantity int) (models.CartItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["UpdateQuantity"]++
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].Quantity = quantity
			return b.items[i], nil
		}
	}
	return models.CartItem{}, &client.APIError{Status: http.StatusNotFound}
}

func (b *cartBackend) RemoveItem(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["RemoveItem"]++
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (b *cartBackend) ClearCart(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["ClearCart"]++
	b.items = nil
	return nil
}

func (b *cartBackend) GetRecommendations(context.Context, int) ([]models.Recommendation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["GetRecommendations"]++
	if b.recsErr != nil {
		return nil, b.recsErr
	}
	return b.recs, nil
}

type fakeSupport struct {
	inquiry   models.InquiryForm
	files     []client.File
	review    models.ReviewForm
	createErr error
}

func (f *fakeSupport) CreateInquiry(_ context.Context, form models.InquiryForm, files []client.File) (models.Inquiry, error) {
	if f.createErr != nil {
		return models.Inquiry{}, f.createErr
	}
	f.inquiry, f.files = form, files
	return models.Inquiry{ID: "q1", Category: form.Category, Title: form.Title, Content: form.Content, Status: "WAITING"}, nil
}

func (f *fakeSupport) ListInquiries(_ context.Context, page client.PageQuery) (models.Page[models.Inquiry], error) {
	return models.Page[models.Inquiry]{Items: []models.Inquiry{{ID: "q1"}}, Page: page.Page, Size: page.Size, Total: 1}, nil
}

func (f *fakeSupport) CreateReview(_ context.Context, form models.ReviewForm, files []client.File) (models.Review, error) {
	f.review, f.files = form, files
	return models.Review{ID: "r1", ProductID: form.ProductID, Rating: form.Rating, Content: form.Content}, nil
}

func (f *fakeSupport) ListReviews(_ context.Context, productID string, page client.PageQuery) (models.Page[models.Review], error) {
	return models.Page[models.Review]{Items: []models.Review{{ID: "r1", ProductID: productID}}, Page: page.Page, Size: page.Size, Total: 1}, nil
}

type fakeMailer struct {
	sent chan string
}

func (m *fakeMailer) SendInquiryReceived(_ context.Context, to string, _ models.Inquiry) error {
	m.sent <- to
	return nil
}

type fakeSeller struct {
	inventory models.Page[models.InventoryItem]
	product   models.ProductForm
	files     []client.File
	adjusted  int
}

func (f *fakeSeller) ListInventory(context.Context, client.PageQuery) (models.Page[models.InventoryItem], error) {
	return f.inventory, nil
}

func (f *fakeSeller) AdjustInventory(_ context.Context, productID string, adj models.InventoryAdjustment) (models.InventoryItem, error) {
	f.adjusted++
	return models.InventoryItem{ProductID: productID, CurrentStock: 3 + adj.Delta, SafetyStock: 5}, nil
}

func (f *fakeSeller) ListSettlements(context.Context, client.PageQuery) (models.Page[models.Settlement], error) {
	return models.Page[models.Settlement]{
		Items: []models.Settlement{{ID: "s1", SalesAmount: 30000, Commission: 3000, PayoutAmount: 27000}},
		Page:  1, Size: 20, Total: 1,
	}, nil
}

func (f *fakeSeller) GetDemandForecast(_ context.Context, productID string) (models.DemandForecast, error) {
	return models.DemandForecast{}, &client.APIError{Status: http.StatusNotFound, Message: "예측 데이터가 없습니다."}
}

func (f *fakeSeller) CreateProduct(_ context.Context, form models.ProductForm, files []client.File) (models.Product, error) {
	f.product, f.files = form, files
	return models.Product{ID: "p9", Name: form.Name, Price: form.Price}, nil
}

type fakeOrders struct{}

func (fakeOrders) ListOrders(_ context.Context, page client.PageQuery) (models.Page[models.Order], error) {
	return models.Page[models.Order]{Items: []models.Order{{ID: "o1", TotalAmount: 25900}}, Page: page.Page, Size: page.Size, Total: 1}, nil
}

func (fakeOrders) GetOrder(_ context.Context, id string) (models.Order, error) {
	if id != "o1" {
		return models.Order{}, &client.APIError{Status: http.StatusNotFound}
	}
	return models.Order{
		ID:          "o1",
		TotalAmount: 25900,
		Address:     models.Address{Recipient: "김철수", Phone: "01012345678"},
		CreatedAt:   time.Date(2024, 1, 15, 5, 30, 0, 0, time.UTC),
	}, nil
}

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, email, password string) (models.LoginResult, error) {
	if password != "secret" {
		return models.LoginResult{}, &client.APIError{Status: http.StatusUnauthorized}
	}
	return models.LoginResult{Token: "tok", User: models.User{ID: "u1", Email: email, Role: models.RoleBuyer}}, nil
}

func token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := utils.GenerateJWT(testSecret, userID, userID+"@example.com", role, time.Hour)
	require.NoError(t, err)
	return tok
}

// call serves one request through an authenticated router with a single route
func call(t *testing.T, pattern, method, target string, h http.HandlerFunc, body *bytes.Buffer, contentType, userID string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.Use(middleware.AuthMiddleware(testSecret))
	router.HandleFunc(pattern, h).Methods(method)

	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+token(t, userID, models.RoleSeller))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

type upload struct {
	field, name string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...upload) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 32))
