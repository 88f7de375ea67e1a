package dashboard

import (
	"catdogeats/models"
	"catdogeats/utils"
)

// SettlementRow is one rendered settlement report row
type SettlementRow struct {
	models.Settlement
	OrderedAtText    string `json:"orderedAtText"`
	SalesAmountText  string `json:"salesAmountText"`
	CommissionText   string `json:"commissionText"`
	ShippingFeeText  string `json:"shippingFeeText"`
	PayoutAmountText string `json:"payoutAmountText"`
	SettledAtText    string `json:"settledAtText"`
}

// SettlementPanel is the rendered settlement report. Totals cover the current page only.
type SettlementPanel struct {
	Rows           []SettlementRow `json:"rows"`
	PageSalesText  string          `json:"pageSalesText"`
	PagePayoutText string          `json:"pagePayoutText"`
	Pager          Pager           `json:"pager"`
}

// BuildSettlements renders one page of settlements
func BuildSettlements(page models.Page[models.Settlement]) SettlementPanel {
	panel := SettlementPanel{
		Rows:  make([]SettlementRow, 0, len(page.Items)),
		Pager: NewPager(page.Page, page.Size, page.Total),
	}
	var sales, payout int64
	for _, st := range page.Items {
		sales += st.SalesAmount
		payout += st.PayoutAmount

		settledAt := "-"
		if st.SettledAt != nil {
			settledAt = utils.FormatDate(*st.SettledAt)
		}
		panel.Rows = append(panel.Rows, SettlementRow{
			Settlement:       st,
			OrderedAtText:    utils.FormatDate(st.OrderedAt),
			SalesAmountText:  utils.FormatWon(st.SalesAmount),
			CommissionText:   utils.FormatWon(-st.Commission),
			ShippingFeeText:  utils.FormatWon(st.ShippingFee),
			PayoutAmountText: utils.FormatWon(st.PayoutAmount),
			SettledAtText:    settledAt,
		})
	}
	panel.PageSalesText = utils.FormatWon(sales)
	panel.PagePayoutText = utils.FormatWon(payout)
	return panel
}
