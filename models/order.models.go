package models

import "time"

// Order status values reported by the backend
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusShipping  = "SHIPPING"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderItem represents a purchased product line
type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	SellerName  string `json:"sellerName"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Order represents a buyer's order
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"totalAmount"`
	Address     Address     `json:"address"`
	Payment     Payment     `json:"payment"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
