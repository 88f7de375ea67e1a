package models

import "time"

// Inventory status labels
const (
	StockSufficient = "충분"
	StockLow        = "부족"
	StockOut        = "품절"
)

// InventoryItem is a seller's stock projection for one product
type InventoryItem struct {
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	CurrentStock int       `json:"currentStock"`
	SafetyStock  int       `json:"safetyStock"`
	Status       string    `json:"status,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// InventoryAdjustment is a manual stock correction
type InventoryAdjustment struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// Settlement is the backend-computed payout record for one order
type Settlement struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"orderId"`
	OrderedAt    time.Time  `json:"orderedAt"`
	SalesAmount  int64      `json:"salesAmount"`
	Commission   int64      `json:"commission"`
	ShippingFee  int64      `json:"shippingFee"`
	PayoutAmount int64      `json:"payoutAmount"`
	Status       string     `json:"status"`
	SettledAt    *time.Time `json:"settledAt,omitempty"`
}

// ForecastPoint is one predicted day of demand
type ForecastPoint struct {
	Date     time.Time `json:"date"`
	Quantity int       `json:"quantity"`
}

// DemandForecast is the backend's demand prediction for a product
type DemandForecast struct {
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	CurrentStock     int             `json:"currentStock"`
	Points           []ForecastPoint `json:"points"`
	RecommendedOrder int             `json:"recommendedOrder"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

// ProductForm is the seller's product registration input
type ProductForm struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

// Product is a registered catalog product
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"`
	Stock     int       `json:"stock"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}
