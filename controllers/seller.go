package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"catdogeats/dashboard"
	"catdogeats/models"
	"catdogeats/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SellerController serves the seller dashboard panels and product registration
type SellerController struct {
	Backend SellerAPI
	Log     *zap.Logger
}

// NewSellerController creates a new SellerController
func NewSellerController(backend SellerAPI, log *zap.Logger) *SellerController {
	return &SellerController{
		Backend: backend,
		Log:     log,
	}
}

// GetInventory renders one page of the inventory table
func (sc *SellerController) GetInventory(w http.ResponseWriter, r *http.Request) {
	page, ok := pageQuery(w, r)
	if !ok {
		return
	}
	result, err := sc.Backend.ListInventory(r.Context(), page)
	if err != nil {
		writeBackendError(w, err, "재고 정보를 불러오지 못했습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, dashboard.BuildInventory(result))
}

// AdjustInventory applies a manual stock correction
func (sc *SellerController) AdjustInventory(w http.ResponseWriter, r *http.Request) {
	var adj models.InventoryAdjustment
	if err := json.NewDecoder(r.Body).Decode(&adj); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	adj.Reason = strings.TrimSpace(adj.Reason)
	if adj.Delta == 0 {
		utils.WriteError(w, http.StatusBadRequest, "조정 수량을 입력해주세요.")
		return
	}
	if adj.Reason == "" {
		utils.WriteError(w, http.StatusBadRequest, "조정 사유를 입력해주세요.")
		return
	}

	productID := mux.Vars(r)["productId"]
	item, err := sc.Backend.AdjustInventory(r.Context(), productID, adj)
	if err != nil {
		writeBackendError(w, err, "재고 조정에 실패했습니다.")
		return
	}
	sc.Log.Info("inventory adjusted", zap.String("productId", productID), zap.Int("delta", adj.Delta))

	item.Status = dashboard.StockStatus(item)
	utils.WriteJSON(w, http.StatusOK, item)
}

// GetSettlements renders one page of the settlement report
func (sc *SellerController) GetSettlements(w http.ResponseWriter, r *http.Request) {
	page, ok := pageQuery(w, r)
	if !ok {
		return
	}
	result, err := sc.Backend.ListSettlements(r.Context(), page)
	if err != nil {
		writeBackendError(w, err, "정산 내역을 불러오지 못했습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, dashboard.BuildSettlements(result))
}

// GetForecast renders the demand forecast card of one product
func (sc *SellerController) GetForecast(w http.ResponseWriter, r *http.Request) {
	forecast, err := sc.Backend.GetDemandForecast(r.Context(), mux.Vars(r)["productId"])
	if err != nil {
		writeBackendError(w, err, "수요 예측 정보를 불러오지 못했습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, dashboard.BuildForecast(forecast))
}
