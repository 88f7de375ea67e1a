package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	uc := NewUserController(fakeAuth{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"a@b.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	uc.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"tok"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := NewUserController(fakeAuth{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"a@b.com","password":"nope"}`))
	rec := httptest.NewRecorder()
	uc.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.", decodeMessage(t, rec))
}

func TestLogin_MissingFields(t *testing.T) {
	uc := NewUserController(fakeAuth{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()
	uc.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfile(t *testing.T) {
	uc := NewUserController(fakeAuth{}, zap.NewNop())

	rec := call(t, "/me", http.MethodGet, "/me", uc.GetProfile, nil, "", "u7")

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "u7", out["id"])
	assert.Equal(t, "u7@example.com", out["email"])
}

func TestGetOrder_FormatsContact(t *testing.T) {
	oc := NewOrderController(fakeOrders{})

	rec := call(t, "/orders/{id}", http.MethodGet, "/orders/o1", oc.GetOrder, nil, "", "u1")

	require.Equal(t, http.StatusOK, rec.Code)
	var out orderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "010-1234-5678", out.Address.Phone)
	assert.Equal(t, "25,900원", out.TotalAmountText)
	assert.Equal(t, "2024.01.15 14:30", out.CreatedAtText)
}

func TestGetOrder_NotFound(t *testing.T) {
	oc := NewOrderController(fakeOrders{})

	rec := call(t, "/orders/{id}", http.MethodGet, "/orders/zzz", oc.GetOrder, nil, "", "u1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrders(t *testing.T) {
	oc := NewOrderController(fakeOrders{})

	rec := call(t, "/orders", http.MethodGet, "/orders?page=1&size=10", oc.GetOrders, nil, "", "u1")

	require.Equal(t, http.StatusOK, rec.Code)
	var out orderList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Orders, 1)
	assert.Equal(t, 1, out.Pager.TotalPages)
}
