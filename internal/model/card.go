package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle stage of a card in the inventory.
type Status string

const (
	StatusPurchased Status = "Purchased"
	StatusGrading   Status = "Grading"
	StatusSelling   Status = "Selling"
	StatusSold      Status = "Sold"
	StatusOther     Status = "Other"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPurchased, StatusGrading, StatusSelling, StatusSold, StatusOther}

// Marketplaces a card can be bought on or sold through.
const (
	MarketEBay     = "eBay"
	MarketCardShow = "Card Show"
	MarketOther    = "Other"
)

// Markets lists the accepted values for Source and SellingPlatform.
var Markets = []string{MarketEBay, MarketCardShow, MarketOther}

// GradingCompanies lists the accepted grading companies. The empty value means not graded.
var GradingCompanies = []string{"", "PSA", "BGS", "SGC", "Other"}

// Card represents one physical collectible item and its purchase/grading/sale metadata.
// Optional text fields are empty strings when unset; optional amounts and dates are null.
// In JSON, dates are YYYY-MM-DD (see MarshalJSON).
type Card struct {
	ID                 int64  `json:"id"`
	CardID             string `json:"card_id"`
	PlayerCardName     string `json:"player_card_name"`
	Year               string `json:"year"`
	SetName            string `json:"set_name"`
	CardType           string `json:"card_type"`
	Sport              string `json:"sport"`
	CardNumber         string `json:"card_number"`
	SerialNumber       string `json:"serial_number"`
	ConditionPurchased string `json:"condition_purchased"`

	Cost         decimal.NullDecimal `json:"cost"`
	Source       string              `json:"source"`
	SellerName   string              `json:"seller_name"`
	ListingLink  string              `json:"listing_link"`
	PurchaseDate *time.Time          `json:"purchase_date" swaggertype:"string" format:"date"`

	Status               Status              `json:"status"`
	GradingCompany       string              `json:"grading_company"`
	GradingCost          decimal.NullDecimal `json:"grading_cost"`
	Grade                string              `json:"grade"`
	GradingSubmittedDate *time.Time          `json:"grading_submitted_date" swaggertype:"string" format:"date"`
	GradingReturnedDate  *time.Time          `json:"grading_returned_date" swaggertype:"string" format:"date"`

	SellingPlatform string              `json:"selling_platform"`
	Price           decimal.NullDecimal `json:"price"`
	SaleDate        *time.Time          `json:"sale_date" swaggertype:"string" format:"date"`

	PhotoLinks []string `json:"photo_links"`
	Notes      string   `json:"notes"`

	DaysToGrade *int                `json:"days_to_grade"`
	DaysToSell  *int                `json:"days_to_sell"`
	ProfitLoss  decimal.NullDecimal `json:"profit_loss"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Input converts a stored card back into the raw form values used to pre-fill the edit form.
func (c *Card) Input() CardInput {
	return CardInput{
		PlayerCardName:       c.PlayerCardName,
		Year:                 c.Year,
		SetName:              c.SetName,
		CardType:             c.CardType,
		Sport:                c.Sport,
		CardNumber:           c.CardNumber,
		SerialNumber:         c.SerialNumber,
		ConditionPurchased:   c.ConditionPurchased,
		Cost:                 formatAmount(c.Cost),
		Source:               c.Source,
		SellerName:           c.SellerName,
		ListingLink:          c.ListingLink,
		PurchaseDate:         formatDate(c.PurchaseDate),
		Status:               string(c.Status),
		GradingCompany:       c.GradingCompany,
		GradingCost:          formatAmount(c.GradingCost),
		Grade:                c.Grade,
		GradingSubmittedDate: formatDate(c.GradingSubmittedDate),
		GradingReturnedDate:  formatDate(c.GradingReturnedDate),
		SellingPlatform:      c.SellingPlatform,
		Price:                formatAmount(c.Price),
		SaleDate:             formatDate(c.SaleDate),
		PhotoLinks:           strings.Join(c.PhotoLinks, ", "),
		Notes:                c.Notes,
	}
}

func formatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
