package routes

import (
	"net/http"

	"catdogeats/controllers"
	"catdogeats/middleware"
	"catdogeats/utils"

	"github.com/gorilla/mux"
)

// Controllers groups every handler set the router serves
type Controllers struct {
	User    *controllers.UserController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Support *controllers.SupportController
	Seller  *controllers.SellerController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, jwtSecret []byte, c Controllers) {
	// Public routes
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	router.HandleFunc("/login", c.User.Login).Methods("POST")

	// Seller routes, registered before the catch-all protected prefix
	seller := router.PathPrefix("/seller").Subrouter()
	seller.Use(middleware.AuthMiddleware(jwtSecret))
	seller.Use(middleware.SellerMiddleware)
	seller.HandleFunc("/inventory", c.Seller.GetInventory).Methods("GET")
	seller.HandleFunc("/inventory/{productId}/adjust", c.Seller.AdjustInventory).Methods("POST")
	seller.HandleFunc("/settlements", c.Seller.GetSettlements).Methods("GET")
	seller.HandleFunc("/forecasts/{productId}", c.Seller.GetForecast).Methods("GET")
	seller.HandleFunc("/products/validate", c.Seller.ValidateProduct).Methods("POST")
	seller.HandleFunc("/products", c.Seller.CreateProduct).Methods("POST")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	protected.HandleFunc("/me", c.User.GetProfile).Methods("GET")

	// Cart routes
	protected.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	protected.HandleFunc("/cart", c.Cart.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/items", c.Cart.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/items/{id}", c.Cart.UpdateQuantity).Methods("PATCH")
	protected.HandleFunc("/cart/items/{id}", c.Cart.RemoveFromCart).Methods("DELETE")
	protected.HandleFunc("/cart/items/{id}/selection", c.Cart.SelectItem).Methods("PUT")
	protected.HandleFunc("/cart/selection", c.Cart.SelectAll).Methods("PUT")
	protected.HandleFunc("/cart/checkout", c.Cart.Checkout).Methods("POST")
	protected.HandleFunc("/cart/error", c.Cart.DismissError).Methods("DELETE")
	protected.HandleFunc("/cart/recommendations", c.Cart.GetRecommendations).Methods("GET")

	// Order routes
	protected.HandleFunc("/orders", c.Order.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", c.Order.GetOrder).Methods("GET")

	// Customer service routes
	protected.HandleFunc("/inquiries", c.Support.CreateInquiry).Methods("POST")
	protected.HandleFunc("/inquiries", c.Support.GetInquiries).Methods("GET")
	protected.HandleFunc("/reviews", c.Support.CreateReview).Methods("POST")
	protected.HandleFunc("/products/{id}/reviews", c.Support.GetProductReviews).Methods("GET")
}
