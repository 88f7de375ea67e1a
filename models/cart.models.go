package models

// CartItem represents one line of the cart mirror. Selected is client-side state and is never sent to the backend.
type CartItem struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	SellerName   string `json:"sellerName"`
	Price        int64  `json:"price"`
	Quantity     int    `json:"quantity"`
	Selected     bool   `json:"selected"`
}

// LineTotal returns price times quantity
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart represents a user's shopping cart as returned by the backend
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// Recommendation is a read-only product projection shown next to the cart
type Recommendation struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	Price        int64  `json:"price"`
	SellerName   string `json:"sellerName"`
}
