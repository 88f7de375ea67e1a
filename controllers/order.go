package controllers

import (
	"net/http"

	"catdogeats/dashboard"
	"catdogeats/models"
	"catdogeats/utils"

	"github.com/gorilla/mux"
)

// OrderController serves the buyer's order history
type OrderController struct {
	Backend OrderAPI
}

// NewOrderController creates a new OrderController
func NewOrderController(backend OrderAPI) *OrderController {
	return &OrderController{Backend: backend}
}

type orderView struct {
	models.Order
	TotalAmountText string `json:"totalAmountText"`
	CreatedAtText   string `json:"createdAtText"`
}

func newOrderView(o models.Order) orderView {
	o.Address.Phone = utils.FormatPhone(o.Address.Phone)
	return orderView{
		Order:           o,
		TotalAmountText: utils.FormatWon(o.TotalAmount),
		CreatedAtText:   utils.FormatDateTime(o.CreatedAt),
	}
}

type orderList struct {
	Orders []orderView     `json:"orders"`
	Pager  dashboard.Pager `json:"pager"`
}

// GetOrders lists the user's orders, newest first as returned by the backend
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	page, ok := pageQuery(w, r)
	if !ok {
		return
	}
	result, err := oc.Backend.ListOrders(r.Context(), page)
	if err != nil {
		writeBackendError(w, err, "주문 내역을 불러오지 못했습니다.")
		return
	}

	out := orderList{
		Orders: make([]orderView, 0, len(result.Items)),
		Pager:  dashboard.NewPager(result.Page, result.Size, result.Total),
	}
	for _, o := range result.Items {
		out.Orders = append(out.Orders, newOrderView(o))
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

// GetOrder returns one order
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := oc.Backend.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeBackendError(w, err, "주문 정보를 불러오지 못했습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, newOrderView(order))
}
