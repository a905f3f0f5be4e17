package service

import (
	"github.com/shopspring/decimal"

	"cardtracker/internal/model"
)

// Stats summarizes the whole inventory.
type Stats struct {
	TotalCards        int                  `json:"total_cards"`
	ByStatus          map[model.Status]int `json:"by_status"`
	TotalInvested     decimal.Decimal      `json:"total_invested"`
	TotalRevenue      decimal.Decimal      `json:"total_revenue"`
	TotalProfit       decimal.Decimal      `json:"total_profit"`
	SoldCount         int                  `json:"sold_count"`
	AverageDaysToSell float64              `json:"average_days_to_sell"`
}

// ComputeStats aggregates cards in a single pass.
//
// Invested counts purchase and grading costs of every card. Revenue, profit and
// days-to-sell only consider cards with status Sold.
func ComputeStats(cards []model.Card) *Stats {
	st := &Stats{
		ByStatus:      make(map[model.Status]int, len(model.Statuses)),
		TotalInvested: decimal.Zero,
		TotalRevenue:  decimal.Zero,
		TotalProfit:   decimal.Zero,
	}
	for _, s := range model.Statuses {
		st.ByStatus[s] = 0
	}

	var daysSum, daysCount int
	for _, c := range cards {
		st.TotalCards++
		st.ByStatus[c.Status]++
		st.TotalInvested = st.TotalInvested.Add(amount(c.Cost)).Add(amount(c.GradingCost))

		if c.Status != model.StatusSold {
			continue
		}
		st.SoldCount++
		st.TotalRevenue = st.TotalRevenue.Add(amount(c.Price))
		if c.ProfitLoss.Valid {
			st.TotalProfit = st.TotalProfit.Add(c.ProfitLoss.Decimal)
		}
		if c.DaysToSell != nil {
			daysSum += *c.DaysToSell
			daysCount++
		}
	}

	if daysCount > 0 {
		st.AverageDaysToSell = float64(daysSum) / float64(daysCount)
	}
	return st
}
