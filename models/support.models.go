package models

import "time"

// Inquiry categories accepted by the customer service desk
const (
	InquiryProduct  = "PRODUCT"
	InquiryDelivery = "DELIVERY"
	InquiryOrder    = "ORDER"
	InquiryRefund   = "REFUND"
	InquiryEtc      = "ETC"
)

// InquiryForm is a buyer's customer service request
type InquiryForm struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	OrderID  string `json:"orderId,omitempty"`
}

// Inquiry is a stored customer service request
type Inquiry struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	OrderID     string     `json:"orderId,omitempty"`
	Attachments []string   `json:"attachments"`
	Status      string     `json:"status"`
	Answer      string     `json:"answer,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	AnsweredAt  *time.Time `json:"answeredAt,omitempty"`
}

// ReviewForm is a buyer's product review input
type ReviewForm struct {
	ProductID string `json:"productId"`
	OrderID   string `json:"orderId,omitempty"`
	Rating    int    `json:"rating"`
	Content   string `json:"content"`
}

// Review is a published product review
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
}
