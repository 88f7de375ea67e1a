package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"catdogeats/models"
	"catdogeats/utils"
	"catdogeats/validate"

	"go.uber.org/zap"
)

// ValidateProduct checks a product registration form without saving it
func (sc *SellerController) ValidateProduct(w http.ResponseWriter, r *http.Request) {
	var form models.ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if err := validate.ProductForm(normalizeProduct(form)); err != nil {
		writeInvalid(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// CreateProduct registers a product with its images
func (sc *SellerController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	files, ok := parseUpload(w, r, validate.ProductImages)
	if !ok {
		return
	}
	form := normalizeProduct(models.ProductForm{
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Price:       formInt(r, "price"),
		Stock:       int(formInt(r, "stock")),
		Description: r.FormValue("description"),
	})
	if err := validate.ProductForm(form); err != nil {
		writeInvalid(w, err)
		return
	}

	product, err := sc.Backend.CreateProduct(r.Context(), form, files)
	if err != nil {
		writeBackendError(w, err, "상품 등록에 실패했습니다.")
		return
	}
	sc.Log.Info("product registered", zap.String("productId", product.ID), zap.Int("images", len(files)))

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":   "상품이 등록되었습니다.",
		"product":   product,
		"priceText": utils.FormatWon(product.Price),
	})
}

func normalizeProduct(f models.ProductForm) models.ProductForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	f.Description = strings.TrimSpace(f.Description)
	return f
}
