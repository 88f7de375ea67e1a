package controllers

import (
	"context"

	"catdogeats/client"
	"catdogeats/models"
)

// AuthAPI is the backend surface used for sign-in
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
}

// OrderAPI is the backend surface used by order history pages
type OrderAPI interface {
	ListOrders(ctx context.Context, page client.PageQuery) (models.Page[models.Order], error)
	GetOrder(ctx context.Context, orderID string) (models.Order, error)
}

// SupportAPI is the backend surface used for inquiries and reviews
type SupportAPI interface {
	CreateInquiry(ctx context.Context, form models.InquiryForm, files []client.File) (models.Inquiry, error)
	ListInquiries(ctx context.Context, page client.PageQuery) (models.Page[models.Inquiry], error)
	CreateReview(ctx context.Context, form models.ReviewForm, files []client.File) (models.Review, error)
	ListReviews(ctx context.Context, productID string, page client.PageQuery) (models.Page[models.Review], error)
}

// SellerAPI is the backend surface used by the seller dashboard
type SellerAPI interface {
	ListInventory(ctx context.Context, page client.PageQuery) (models.Page[models.InventoryItem], error)
	AdjustInventory(ctx context.Context, productID string, adj models.InventoryAdjustment) (models.InventoryItem, error)
	ListSettlements(ctx context.Context, page client.PageQuery) (models.Page[models.Settlement], error)
	GetDemandForecast(ctx context.Context, productID string) (models.DemandForecast, error)
	CreateProduct(ctx context.Context, form models.ProductForm, files []client.File) (models.Product, error)
}

// Mailer sends the inquiry confirmation mail
type Mailer interface {
	SendInquiryReceived(ctx context.Context, toEmail string, inquiry models.Inquiry) error
}
