package store

import "catdogeats/models"

// Snapshot is a point-in-time copy of a Store. Everything in it was read under the
// same lock, so totals always agree with Items.
type Snapshot struct {
	Items             []models.CartItem
	Loading           bool
	Err               string
	Recommendations   []models.Recommendation
	RecommendationErr string

	inFlight map[string]struct{}
}

// SelectedItems returns the checked lines
func (s Snapshot) SelectedItems() []models.CartItem {
	var out []models.CartItem
	for _, it := range s.Items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

// TotalPrice sums price*quantity over the selected lines
func (s Snapshot) TotalPrice() int64 {
	var total int64
	for _, it := range s.Items {
		if it.Selected {
			total += it.LineTotal()
		}
	}
	return total
}

// TotalItemCount sums quantity over the selected lines
func (s Snapshot) TotalItemCount() int {
	var n int
	for _, it := range s.Items {
		if it.Selected {
			n += it.Quantity
		}
	}
	return n
}

// IsBusy reports whether cartItemID had a request in flight or the whole cart was loading
func (s Snapshot) IsBusy(cartItemID string) bool {
	_, ok := s.inFlight[cartItemID]
	return ok || s.Loading
}
