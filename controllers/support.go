package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"catdogeats/dashboard"
	"catdogeats/middleware"
	"catdogeats/models"
	"catdogeats/utils"
	"catdogeats/validate"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const mailTimeout = 10 * time.Second

// SupportController handles customer service inquiries and product reviews
type SupportController struct {
	Backend SupportAPI
	Mailer  Mailer
	Log     *zap.Logger
}

// NewSupportController creates a new SupportController
func NewSupportController(backend SupportAPI, mailer Mailer, log *zap.Logger) *SupportController {
	return &SupportController{
		Backend: backend,
		Mailer:  mailer,
		Log:     log,
	}
}

// CreateInquiry registers an inquiry and mails the buyer a receipt
func (sc *SupportController) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	files, ok := parseUpload(w, r, validate.InquiryAttachments)
	if !ok {
		return
	}
	form := models.InquiryForm{
		Category: strings.TrimSpace(r.FormValue("category")),
		Title:    strings.TrimSpace(r.FormValue("title")),
		Content:  strings.TrimSpace(r.FormValue("content")),
		OrderID:  strings.TrimSpace(r.FormValue("orderId")),
	}
	if err := validate.InquiryForm(form); err != nil {
		writeInvalid(w, err)
		return
	}

	inquiry, err := sc.Backend.CreateInquiry(r.Context(), form, files)
	if err != nil {
		writeBackendError(w, err, "문의 등록에 실패했습니다.")
		return
	}

	if claims, ok := middleware.ClaimsFrom(r.Context()); ok && claims.Email != "" && sc.Mailer != nil {
		go func(email string) {
			ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
			defer cancel()
			if err := sc.Mailer.SendInquiryReceived(ctx, email, inquiry); err != nil {
				sc.Log.Warn("inquiry receipt mail failed", zap.String("inquiryId", inquiry.ID), zap.Error(err))
			}
		}(claims.Email)
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "문의가 등록되었습니다.",
		"inquiry": inquiry,
	})
}

// GetInquiries lists the buyer's inquiries
func (sc *SupportController) GetInquiries(w http.ResponseWriter, r *http.Request) {
	page, ok := pageQuery(w, r)
	if !ok {
		return
	}
	result, err := sc.Backend.ListInquiries(r.Context(), page)
	if err != nil {
		writeBackendError(w, err, "문의 내역을 불러오지 못했습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"inquiries": result.Items,
		"pager":     dashboard.NewPager(result.Page, result.Size, result.Total),
	})
}

// CreateReview publishes a product review with optional photos
func (sc *SupportController) CreateReview(w http.ResponseWriter, r *http.Request) {
	files, ok := parseUpload(w, r, validate.ReviewImages)
	if !ok {
		return
	}
	form := models.ReviewForm{
		ProductID: strings.TrimSpace(r.FormValue("productId")),
		OrderID:   strings.TrimSpace(r.FormValue("orderId")),
		Rating:    int(formInt(r, "rating")),
		Content:   strings.TrimSpace(r.FormValue("content")),
	}
	if err := validate.ReviewForm(form); err != nil {
		writeInvalid(w, err)
		return
	}

	review, err := sc.Backend.CreateReview(r.Context(), form, files)
	if err != nil {
		writeBackendError(w, err, "리뷰 등록에 실패했습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "리뷰가 등록되었습니다.",
		"review":  review,
	})
}

// GetProductReviews lists reviews of one product
func (sc *SupportController) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	page, ok := pageQuery(w, r)
	if !ok {
		return
	}
	result, err := sc.Backend.ListReviews(r.Context(), mux.Vars(r)["id"], page)
	if err != nil {
		writeBackendError(w, err, "리뷰를 불러오지 못했습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"reviews": result.Items,
		"pager":   dashboard.NewPager(result.Page, result.Size, result.Total),
	})
}
