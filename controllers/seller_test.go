package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"catdogeats/dashboard"
	"catdogeats/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetInventory_DerivesStatus(t *testing.T) {
	backend := &fakeSeller{inventory: models.Page[models.InventoryItem]{
		Items: []models.InventoryItem{
			{ProductID: "p1", CurrentStock: 50, SafetyStock: 10},
			{ProductID: "p2", CurrentStock: 5, SafetyStock: 10},
			{ProductID: "p3", CurrentStock: 0, SafetyStock: 10},
		},
		Page: 1, Size: 20, Total: 3,
	}}
	sc := NewSellerController(backend, zap.NewNop())

	rec := call(t, "/seller/inventory", http.MethodGet, "/seller/inventory", sc.GetInventory, nil, "", "seller1")

	require.Equal(t, http.StatusOK, rec.Code)
	var panel dashboard.InventoryPanel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &panel))
	require.Len(t, panel.Rows, 3)
	assert.Equal(t, models.StockSufficient, panel.Rows[0].Status)
	assert.Equal(t, models.StockLow, panel.Rows[1].Status)
	assert.Equal(t, models.StockOut, panel.Rows[2].Status)
	assert.Equal(t, dashboard.StatusSummary{Sufficient: 1, Low: 1, Out: 1}, panel.Summary)
}

func TestAdjustInventory(t *testing.T) {
	backend := &fakeSeller{}
	sc := NewSellerController(backend, zap.NewNop())

	rec := call(t, "/seller/inventory/{productId}/adjust", http.MethodPost, "/seller/inventory/p1/adjust", sc.AdjustInventory, jsonBody(`{"delta":-3,"reason":"파손"}`), "application/json", "seller1")

	require.Equal(t, http.StatusOK, rec.Code)
	var item models.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, models.StockOut, item.Status)
}

func TestAdjustInventory_Rejected(t *testing.T) {
	backend := &fakeSeller{}
	sc := NewSellerController(backend, zap.NewNop())

	for _, body := range []string{`{"delta":0,"reason":"x"}`, `{"delta":2,"reason":"  "}`, `nope`} {
		rec := call(t, "/seller/inventory/{productId}/adjust", http.MethodPost, "/seller/inventory/p1/adjust", sc.AdjustInventory, jsonBody(body), "application/json", "seller1")
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Equal(t, 0, backend.adjusted)
}

func TestGetSettlements(t *testing.T) {
	sc := NewSellerController(&fakeSeller{}, zap.NewNop())

	rec := call(t, "/seller/settlements", http.MethodGet, "/seller/settlements", sc.GetSettlements, nil, "", "seller1")

	require.Equal(t, http.StatusOK, rec.Code)
	var panel dashboard.SettlementPanel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &panel))
	require.Len(t, panel.Rows, 1)
	assert.Equal(t, "27,000원", panel.Rows[0].PayoutAmountText)
}

func TestGetForecast_NotFoundPassesThrough(t *testing.T) {
	sc := NewSellerController(&fakeSeller{}, zap.NewNop())

	rec := call(t, "/seller/forecasts/{productId}", http.MethodGet, "/seller/forecasts/p1", sc.GetForecast, nil, "", "seller1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "예측 데이터가 없습니다.", decodeMessage(t, rec))
}

func TestValidateProduct(t *testing.T) {
	sc := NewSellerController(&fakeSeller{}, zap.NewNop())

	rec := call(t, "/seller/products/validate", http.MethodPost, "/seller/products/validate", sc.ValidateProduct,
		jsonBody(`{"name":"  ","category":"DOG_FOOD","price":0,"stock":-1}`), "application/json", "seller1")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var out validationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.Errors, "name")
	assert.Contains(t, out.Errors, "price")
	assert.Contains(t, out.Errors, "stock")
	assert.NotContains(t, out.Errors, "category")

	rec = call(t, "/seller/products/validate", http.MethodPost, "/seller/products/validate", sc.ValidateProduct,
		jsonBody(`{"name":"그레인프리 연어 사료 2kg","category":"DOG_FOOD","price":32000,"stock":10}`), "application/json", "seller1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	backend := &fakeSeller{}
	sc := NewSellerController(backend, zap.NewNop())
	body, ct := multipartBody(t, map[string]string{
		"name":     "그레인프리 연어 사료 2kg",
		"category": "DOG_FOOD",
		"price":    "32,000",
		"stock":    "10",
	}, upload{field: "images", name: "front.png", data: pngBytes})

	rec := call(t, "/seller/products", http.MethodPost, "/seller/products", sc.CreateProduct, body, ct, "seller1")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(32000), backend.product.Price)
	assert.Equal(t, 10, backend.product.Stock)
	assert.Len(t, backend.files, 1)
	assert.Contains(t, rec.Body.String(), "32,000원")
}
