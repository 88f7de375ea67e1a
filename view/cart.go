// Package view derives what the shopping cart page shows from the cart store.
package view

import (
	"context"
	"errors"

	"catdogeats/models"
	"catdogeats/store"
	"catdogeats/utils"
)

// MsgNothingSelected is shown when checkout is attempted with no line checked
const MsgNothingSelected = "결제할 상품을 선택해주세요."

// ErrNothingSelected blocks checkout navigation
var ErrNothingSelected = errors.New(MsgNothingSelected)

// CheckoutPath is where the buyer is sent after a successful checkout request
const CheckoutPath = "/checkout"

// CartState is what the view needs from the cart store
type CartState interface {
	Snapshot() store.Snapshot
	SetAllSelected(ctx context.Context, selected bool)
}

// ItemView is one rendered cart line
type ItemView struct {
	models.CartItem
	PriceText         string `json:"priceText"`
	LineTotal         int64  `json:"lineTotal"`
	LineTotalText     string `json:"lineTotalText"`
	Busy              bool   `json:"busy"`
	DecrementDisabled bool   `json:"decrementDisabled"`
	IncrementDisabled bool   `json:"incrementDisabled"`
	RemoveDisabled    bool   `json:"removeDisabled"`
}

// RecommendationView is one rendered up-sell card
type RecommendationView struct {
	models.Recommendation
	PriceText string `json:"priceText"`
}

// CartView is the whole shopping cart page
type CartView struct {
	Items               []ItemView           `json:"items"`
	Empty               bool                 `json:"empty"`
	AllSelected         bool                 `json:"allSelected"`
	SelectedCount       int                  `json:"selectedCount"`
	TotalPrice          int64                `json:"totalPrice"`
	TotalPriceText      string               `json:"totalPriceText"`
	TotalItemCount      int                  `json:"totalItemCount"`
	CheckoutEnabled     bool                 `json:"checkoutEnabled"`
	Loading             bool                 `json:"loading"`
	Error               string               `json:"error,omitempty"`
	Recommendations     []RecommendationView `json:"recommendations"`
	RecommendationError string               `json:"recommendationError,omitempty"`
}

// BuildCart renders the current store state
func BuildCart(s CartState) CartView {
	snap := s.Snapshot()
	items := snap.Items
	loading := snap.Loading

	v := CartView{
		Items:          make([]ItemView, 0, len(items)),
		Empty:          len(items) == 0,
		TotalPrice:     snap.TotalPrice(),
		TotalItemCount: snap.TotalItemCount(),
		Loading:        loading,
		Error:          snap.Err,
	}
	v.TotalPriceText = utils.FormatWon(v.TotalPrice)

	allSelected := len(items) > 0
	for _, it := range items {
		busy := snap.IsBusy(it.ID)
		if it.Selected {
			v.SelectedCount++
		} else {
			allSelected = false
		}
		v.Items = append(v.Items, ItemView{
			CartItem:          it,
			PriceText:         utils.FormatWon(it.Price),
			LineTotal:         it.LineTotal(),
			LineTotalText:     utils.FormatWon(it.LineTotal()),
			Busy:              busy,
			DecrementDisabled: busy || loading || it.Quantity <= 1,
			IncrementDisabled: busy || loading,
			RemoveDisabled:    busy || loading,
		})
	}
	v.AllSelected = allSelected
	v.CheckoutEnabled = v.SelectedCount > 0 && !loading

	v.Recommendations = make([]RecommendationView, 0, len(snap.Recommendations))
	for _, r := range snap.Recommendations {
		v.Recommendations = append(v.Recommendations, RecommendationView{
			Recommendation: r,
			PriceText:      utils.FormatWon(r.Price),
		})
	}
	v.RecommendationError = snap.RecommendationErr
	return v
}

// ToggleAll applies the "select all" checkbox to every line
func ToggleAll(ctx context.Context, s CartState, checked bool) CartView {
	s.SetAllSelected(ctx, checked)
	return BuildCart(s)
}

// CheckoutResult is the navigation target handed to the order page
type CheckoutResult struct {
	Redirect       string            `json:"redirect"`
	Items          []models.CartItem `json:"items"`
	TotalPrice     int64             `json:"totalPrice"`
	TotalPriceText string            `json:"totalPriceText"`
	TotalItemCount int               `json:"totalItemCount"`
}

// Checkout hands the selected lines to the order page. With nothing selected it
// returns ErrNothingSelected and no redirect.
func Checkout(s CartState) (CheckoutResult, error) {
	selected := s.Snapshot().SelectedItems()
	if len(selected) == 0 {
		return CheckoutResult{}, ErrNothingSelected
	}

	var total int64
	var count int
	for _, it := range selected {
		total += it.LineTotal()
		count += it.Quantity
	}
	return CheckoutResult{
		Redirect:       CheckoutPath,
		Items:          selected,
		TotalPrice:     total,
		TotalPriceText: utils.FormatWon(total),
		TotalItemCount: count,
	}, nil
}
