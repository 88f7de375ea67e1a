package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"catdogeats/models"
)

var inquiryCategories = map[string]bool{
	models.InquiryProduct:  true,
	models.InquiryDelivery: true,
	models.InquiryOrder:    true,
	models.InquiryRefund:   true,
	models.InquiryEtc:      true,
}

var productCategories = map[string]bool{
	"DOG_FOOD":   true,
	"CAT_FOOD":   true,
	"DOG_TREAT":  true,
	"CAT_TREAT":  true,
	"SUPPLEMENT": true,
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func between(errs Errors, field, label, value string, min, max int) {
	n := runeLen(value)
	switch {
	case n == 0:
		errs.add(field, label+"을(를) 입력해주세요.")
	case n < min:
		errs.add(field, fmt.Sprintf("%s은(는) %d자 이상 입력해주세요.", label, min))
	case n > max:
		errs.add(field, fmt.Sprintf("%s은(는) %d자 이하로 입력해주세요.", label, max))
	}
}

// InquiryForm checks a customer service inquiry
func InquiryForm(f models.InquiryForm) error {
	errs := Errors{}
	if !inquiryCategories[f.Category] {
		errs.add("category", "문의 유형을 선택해주세요.")
	}
	between(errs, "title", "제목", f.Title, 2, 100)
	between(errs, "content", "문의 내용", f.Content, 10, 2000)
	if (f.Category == models.InquiryOrder || f.Category == models.InquiryRefund) && strings.TrimSpace(f.OrderID) == "" {
		errs.add("orderId", "주문 번호를 선택해주세요.")
	}
	return errs.Err()
}

// ReviewForm checks a product review
func ReviewForm(f models.ReviewForm) error {
	errs := Errors{}
	if strings.TrimSpace(f.ProductID) == "" {
		errs.add("productId", "리뷰할 상품 정보가 없습니다.")
	}
	if f.Rating < 1 || f.Rating > 5 {
		errs.add("rating", "별점을 선택해주세요.")
	}
	between(errs, "content", "리뷰 내용", f.Content, 10, 1000)
	return errs.Err()
}

// ProductForm checks a seller's product registration
func ProductForm(f models.ProductForm) error {
	errs := Errors{}
	between(errs, "name", "상품명", f.Name, 1, 100)
	if !productCategories[f.Category] {
		errs.add("category", "카테고리를 선택해주세요.")
	}
	if f.Price <= 0 {
		errs.add("price", "판매 가격은 0원보다 커야 합니다.")
	}
	if f.Stock < 0 {
		errs.add("stock", "재고 수량은 0개 이상이어야 합니다.")
	}
	if runeLen(f.Description) > 5000 {
		errs.add("description", "상품 설명은 5000자 이하로 입력해주세요.")
	}
	return errs.Err()
}
