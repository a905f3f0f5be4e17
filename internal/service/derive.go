package service

import (
	"time"

	"github.com/shopspring/decimal"

	"cardtracker/internal/model"
)

// derive recomputes the fields that depend on submitted dates and amounts.
func derive(c *model.Card) {
	c.DaysToGrade = daysBetween(c.GradingSubmittedDate, c.GradingReturnedDate)
	c.DaysToSell = daysBetween(c.PurchaseDate, c.SaleDate)
	c.ProfitLoss = profitLoss(c.Price, c.Cost, c.GradingCost)
}

// daysBetween returns the whole days from start to end, or nil unless both are set.
func daysBetween(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	days := int(end.Sub(*start) / (24 * time.Hour))
	return &days
}

// profitLoss is price minus every cost paid for the card. Missing costs count as zero.
func profitLoss(price, cost, gradingCost decimal.NullDecimal) decimal.NullDecimal {
	if !price.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(price.Decimal.Sub(amount(cost)).Sub(amount(gradingCost)))
}

func amount(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
