package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"catdogeats/middleware"
	"catdogeats/store"
	"catdogeats/utils"
	"catdogeats/view"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Toast messages for successful cart actions
const (
	MsgItemAdded       = "장바구니에 상품을 담았습니다."
	MsgQuantityChanged = "수량이 변경되었습니다."
	MsgItemRemoved     = "상품이 삭제되었습니다."
	MsgCartCleared     = "장바구니를 비웠습니다."
)

// CartController handles cart-related requests
type CartController struct {
	Stores *store.Registry
	Log    *zap.Logger
}

// NewCartController creates a new CartController
func NewCartController(stores *store.Registry, log *zap.Logger) *CartController {
	return &CartController{
		Stores: stores,
		Log:    log,
	}
}

type cartResponse struct {
	Message string        `json:"message,omitempty"`
	Cart    view.CartView `json:"cart"`
}

func (cc *CartController) storeFor(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.")
		return nil, false
	}
	return cc.Stores.Get(claims.UserID), true
}

// loadedStoreFor is storeFor plus a cart fetch when this user's mirror is still empty
func (cc *CartController) loadedStoreFor(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	s, ok := cc.storeFor(w, r)
	if !ok {
		return nil, false
	}
	if err := s.EnsureLoaded(r.Context()); err != nil {
		writeStoreError(w, s, err)
		return nil, false
	}
	return s, true
}

// GetCart refetches the cart and the recommendations together. A recommendation
// failure only empties that section.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := cc.storeFor(w, r)
	if !ok {
		return
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		return s.Load(ctx)
	})
	g.Go(func() error {
		_, _ = s.FetchRecommendations(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		writeStoreError(w, s, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, cartResponse{Cart: view.BuildCart(s)})
}

// AddToCart adds a product to the user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	s, ok := cc.storeFor(w, r)
	if !ok {
		return
	}
	if err := s.AddItem(r.Context(), body.ProductID, body.Quantity); err != nil {
		writeStoreError(w, s, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, cartResponse{Message: MsgItemAdded, Cart: view.BuildCart(s)})
}

// UpdateQuantity changes the quantity of one cart line
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	s, ok := cc.loadedStoreFor(w, r)
	if !ok {
		return
	}
	if err := s.UpdateQuantity(r.Context(), mux.Vars(r)["id"], body.Quantity); err != nil {
		writeStoreError(w, s, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cartResponse{Message: MsgQuantityChanged, Cart: view.BuildCart(s)})
}

// RemoveFromCart removes one line from the user's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	s, ok := cc.loadedStoreFor(w, r)
	if !ok {
		return
	}
	if err := s.RemoveItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, s, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cartResponse{Message: MsgItemRemoved, Cart: view.BuildCart(s)})
}

// ClearCart empties the user's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	s, ok := cc.storeFor(w, r)
	if !ok {
		return
	}
	if err := s.ClearCart(r.Context()); err != nil {
		writeStoreError(w, s, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cartResponse{Message: MsgCartCleared, Cart: view.BuildCart(s)})
}

type selectionBody struct {
	Selected *bool `json:"selected"`
}

// SelectItem checks or unchecks one cart line
func (cc *CartController) SelectItem(w http.ResponseWriter, r *http.Request) {
	var body selectionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Selected == nil {
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	s, ok := cc.loadedStoreFor(w, r)
	if !ok {
		return
	}
	if err := s.UpdateItemSelection(r.Context(), mux.Vars(r)["id"], *body.Selected); err != nil {
		writeStoreError(w, s, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cartResponse{Cart: view.BuildCart(s)})
}

// SelectAll applies the "select all" checkbox
func (cc *CartController) SelectAll(w http.ResponseWriter, r *http.Request) {
	var body selectionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Selected == nil {
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	s, ok := cc.loadedStoreFor(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, cartResponse{Cart: view.ToggleAll(r.Context(), s, *body.Selected)})
}

// DismissError hides the cart error banner
func (cc *CartController) DismissError(w http.ResponseWriter, r *http.Request) {
	s, ok := cc.storeFor(w, r)
	if !ok {
		return
	}
	s.ClearError()
	utils.WriteJSON(w, http.StatusOK, cartResponse{Cart: view.BuildCart(s)})
}

// Checkout hands the selected lines to the order page
func (cc *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	s, ok := cc.loadedStoreFor(w, r)
	if !ok {
		return
	}
	res, err := view.Checkout(s)
	if errors.Is(err, view.ErrNothingSelected) {
		utils.WriteError(w, http.StatusBadRequest, view.MsgNothingSelected)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

// GetRecommendations returns the up-sell list on its own
func (cc *CartController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	s, ok := cc.storeFor(w, r)
	if !ok {
		return
	}
	if _, err := s.FetchRecommendations(r.Context()); err != nil {
		_, msg := s.Recommendations()
		writeBackendError(w, err, msg)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view.BuildCart(s).Recommendations)
}

func writeStoreError(w http.ResponseWriter, s *store.Store, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidQuantity):
		utils.WriteError(w, http.StatusBadRequest, "수량은 1개 이상이어야 합니다.")
	case errors.Is(err, store.ErrItemNotFound):
		utils.WriteError(w, http.StatusNotFound, "장바구니에 없는 상품입니다.")
	case errors.Is(err, store.ErrBusy):
		utils.WriteError(w, http.StatusConflict, "처리 중인 요청이 있습니다. 잠시 후 다시 시도해주세요.")
	default:
		writeBackendError(w, err, s.Err())
	}
}
