// Package dashboard shapes backend projections for the seller dashboard panels.
package dashboard

import (
	"catdogeats/models"
	"catdogeats/utils"
)

// StockStatus labels a stock level. A status supplied by the backend wins.
func StockStatus(item models.InventoryItem) string {
	if item.Status != "" {
		return item.Status
	}
	switch {
	case item.CurrentStock <= 0:
		return models.StockOut
	case item.CurrentStock <= item.SafetyStock:
		return models.StockLow
	default:
		return models.StockSufficient
	}
}

// InventoryRow is one rendered inventory table row
type InventoryRow struct {
	models.InventoryItem
	CurrentStockText string `json:"currentStockText"`
	SafetyStockText  string `json:"safetyStockText"`
	UpdatedAtText    string `json:"updatedAtText"`
	NeedsAttention   bool   `json:"needsAttention"`
}

// StatusSummary counts rows per status label
type StatusSummary struct {
	Sufficient int `json:"sufficient"`
	Low        int `json:"low"`
	Out        int `json:"out"`
}

// InventoryPanel is the rendered inventory table
type InventoryPanel struct {
	Rows    []InventoryRow `json:"rows"`
	Summary StatusSummary  `json:"summary"`
	Pager   Pager          `json:"pager"`
}

// BuildInventory renders one page of inventory
func BuildInventory(page models.Page[models.InventoryItem]) InventoryPanel {
	panel := InventoryPanel{
		Rows:  make([]InventoryRow, 0, len(page.Items)),
		Pager: NewPager(page.Page, page.Size, page.Total),
	}
	for _, it := range page.Items {
		it.Status = StockStatus(it)
		switch it.Status {
		case models.StockOut:
			panel.Summary.Out++
		case models.StockLow:
			panel.Summary.Low++
		default:
			panel.Summary.Sufficient++
		}
		panel.Rows = append(panel.Rows, InventoryRow{
			InventoryItem:    it,
			CurrentStockText: utils.FormatNumber(int64(it.CurrentStock)) + "개",
			SafetyStockText:  utils.FormatNumber(int64(it.SafetyStock)) + "개",
			UpdatedAtText:    utils.FormatDateTime(it.UpdatedAt),
			NeedsAttention:   it.Status != models.StockSufficient,
		})
	}
	return panel
}
