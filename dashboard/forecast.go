package dashboard

import (
	"catdogeats/models"
	"catdogeats/utils"
)

// ForecastPointView is one chart point
type ForecastPointView struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

// ForecastCard is the rendered demand forecast panel for one product
type ForecastCard struct {
	ProductID            string              `json:"productId"`
	ProductName          string              `json:"productName"`
	CurrentStockText     string              `json:"currentStockText"`
	ExpectedDemandText   string              `json:"expectedDemandText"`
	RecommendedOrderText string              `json:"recommendedOrderText"`
	GeneratedAtText      string              `json:"generatedAtText"`
	Points               []ForecastPointView `json:"points"`
}

// BuildForecast renders a forecast. Every number comes from the backend; only the
// sum of the plotted days is computed here for the card headline.
func BuildForecast(f models.DemandForecast) ForecastCard {
	card := ForecastCard{
		ProductID:            f.ProductID,
		ProductName:          f.ProductName,
		CurrentStockText:     utils.FormatNumber(int64(f.CurrentStock)) + "개",
		RecommendedOrderText: utils.FormatNumber(int64(f.RecommendedOrder)) + "개",
		GeneratedAtText:      utils.FormatDateTime(f.GeneratedAt),
		Points:               make([]ForecastPointView, 0, len(f.Points)),
	}
	var demand int64
	for _, p := range f.Points {
		demand += int64(p.Quantity)
		card.Points = append(card.Points, ForecastPointView{
			Date:     utils.FormatDate(p.Date),
			Quantity: p.Quantity,
		})
	}
	card.ExpectedDemandText = utils.FormatNumber(demand) + "개"
	return card
}
