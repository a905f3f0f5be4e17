package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtracker/internal/model"
)

func TestBuildCard_Defaults(t *testing.T) {
	card, err := buildCard(model.CardInput{PlayerCardName: "  Michael Jordan  "})
	require.NoError(t, err)

	assert.Equal(t, "Michael Jordan", card.PlayerCardName)
	assert.Equal(t, model.StatusPurchased, card.Status)
	assert.Equal(t, model.MarketEBay, card.Source)
	assert.Equal(t, model.MarketEBay, card.SellingPlatform)
	assert.Equal(t, "", card.GradingCompany)
	assert.False(t, card.Cost.Valid)
	assert.False(t, card.ProfitLoss.Valid)
	assert.Nil(t, card.DaysToSell)
	assert.Nil(t, card.DaysToGrade)
	assert.NotNil(t, card.PhotoLinks)
	assert.Empty(t, card.PhotoLinks)
}

func TestBuildCard_Full(t *testing.T) {
	in := model.CardInput{
		PlayerCardName:       "Victor Wembanyama",
		Year:                 "2023-24",
		SetName:              "Panini Prizm",
		Cost:                 "$1,200.50",
		Source:               "card show",
		ListingLink:          "https://ebay.com/itm/123",
		PurchaseDate:         "2024-01-01",
		Status:               "sold",
		GradingCompany:       "psa",
		GradingCost:          "49.99",
		GradingSubmittedDate: "2024-01-05",
		GradingReturnedDate:  "2024-02-19",
		SellingPlatform:      "Other",
		Price:                "2000",
		SaleDate:             "2024-03-01",
		PhotoLinks:           " https://a.example/1.jpg, ,cards/CARD0000001/x.png ",
	}

	card, err := buildCard(in)
	require.NoError(t, err)

	assert.Equal(t, model.MarketCardShow, card.Source)
	assert.Equal(t, model.StatusSold, card.Status)
	assert.Equal(t, "PSA", card.GradingCompany)
	assert.Equal(t, "1200.5", card.Cost.Decimal.String())
	assert.Equal(t, []string{"https://a.example/1.jpg", "cards/CARD0000001/x.png"}, card.PhotoLinks)

	require.NotNil(t, card.DaysToGrade)
	assert.Equal(t, 45, *card.DaysToGrade)
	require.NotNil(t, card.DaysToSell)
	assert.Equal(t, 60, *card.DaysToSell)
	require.True(t, card.ProfitLoss.Valid)
	assert.True(t, card.ProfitLoss.Decimal.Equal(decimal.RequireFromString("749.51")), card.ProfitLoss.Decimal.String())
}

func TestBuildCard_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		in        model.CardInput
		wantField string
		wantMsg   string
	}{
		{
			name:      "name required",
			in:        model.CardInput{PlayerCardName: "   "},
			wantField: "player_card_name",
			wantMsg:   "Player/Card Name is required",
		},
		{
			name:      "unknown status",
			in:        model.CardInput{PlayerCardName: "x", Status: "Lost"},
			wantField: "status",
			wantMsg:   "Status must be one of: Purchased, Grading, Selling, Sold, Other",
		},
		{
			name:      "unknown grading company",
			in:        model.CardInput{PlayerCardName: "x", GradingCompany: "CGC"},
			wantField: "grading_company",
			wantMsg:   "Grading Company must be one of: PSA, BGS, SGC, Other",
		},
		{
			name:      "cost not a number",
			in:        model.CardInput{PlayerCardName: "x", Cost: "ten"},
			wantField: "cost",
			wantMsg:   "Cost must be a number",
		},
		{
			name:      "negative price",
			in:        model.CardInput{PlayerCardName: "x", Price: "-1"},
			wantField: "price",
			wantMsg:   "Sale Price cannot be negative",
		},
		{
			name:      "cost beyond column range",
			in:        model.CardInput{PlayerCardName: "x", Cost: "123456789012345"},
			wantField: "cost",
			wantMsg:   "Cost cannot exceed 9999999999.99",
		},
		{
			name:      "grading cost rounds past column range",
			in:        model.CardInput{PlayerCardName: "x", GradingCost: "9999999999.995"},
			wantField: "grading_cost",
			wantMsg:   "Grading Cost cannot exceed 9999999999.99",
		},
		{
			name:      "price beyond column range",
			in:        model.CardInput{PlayerCardName: "x", Price: "$10,000,000,000"},
			wantField: "price",
			wantMsg:   "Sale Price cannot exceed 9999999999.99",
		},
		{
			name:      "bad date",
			in:        model.CardInput{PlayerCardName: "x", PurchaseDate: "01/02/2024"},
			wantField: "purchase_date",
			wantMsg:   "Purchase Date must be a date in YYYY-MM-DD format",
		},
		{
			name:      "sale before purchase",
			in:        model.CardInput{PlayerCardName: "x", PurchaseDate: "2024-02-01", SaleDate: "2024-01-01"},
			wantField: "sale_date",
			wantMsg:   "Sale Date cannot be before Purchase Date",
		},
		{
			name:      "grading returned before submitted",
			in:        model.CardInput{PlayerCardName: "x", GradingSubmittedDate: "2024-02-01", GradingReturnedDate: "2024-01-31"},
			wantField: "grading_returned_date",
			wantMsg:   "Grading Returned Date cannot be before Grading Submitted Date",
		},
		{
			name:      "listing link not a url",
			in:        model.CardInput{PlayerCardName: "x", ListingLink: "ebay listing"},
			wantField: "listing_link",
			wantMsg:   "Listing Link must be an http(s) URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := buildCard(tt.in)
			assert.Nil(t, card)
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}

func TestBuildCard_AmountBounds(t *testing.T) {
	card, err := buildCard(model.CardInput{
		PlayerCardName: "x",
		Cost:           "9,999,999,999.99",
		GradingCost:    "9999999999.99",
		Price:          "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", card.Cost.Decimal.StringFixed(2))

	// The widest loss still fits the profit_loss column.
	require.True(t, card.ProfitLoss.Valid)
	assert.Equal(t, "-19999999999.98", card.ProfitLoss.Decimal.StringFixed(2))
}

func TestProfitLoss(t *testing.T) {
	price := decimal.NewNullDecimal(decimal.RequireFromString("100"))
	cost := decimal.NewNullDecimal(decimal.RequireFromString("60"))

	got := profitLoss(price, cost, decimal.NullDecimal{})
	require.True(t, got.Valid)
	assert.Equal(t, "40", got.Decimal.String())

	loss := profitLoss(decimal.NewNullDecimal(decimal.RequireFromString("10")), cost, cost)
	assert.Equal(t, "-110", loss.Decimal.String())

	assert.False(t, profitLoss(decimal.NullDecimal{}, cost, cost).Valid)
}

func TestCardInputRoundTrip(t *testing.T) {
	in := model.CardInput{
		PlayerCardName:  "Shohei Ohtani",
		Cost:            "15.00",
		Source:          model.MarketEBay,
		PurchaseDate:    "2024-06-01",
		Status:          string(model.StatusSelling),
		SellingPlatform: model.MarketOther,
		PhotoLinks:      "https://a.example/1.jpg, https://a.example/2.jpg",
	}

	card, err := buildCard(in)
	require.NoError(t, err)
	assert.Equal(t, in, card.Input())
}
