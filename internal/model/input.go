package model

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

// CardInput is the raw, string-valued card payload submitted by the HTML form or the JSON API.
// The service validates it and converts it into a Card.
type CardInput struct {
	PlayerCardName     string `json:"player_card_name" form:"player_card_name"`
	Year               string `json:"year" form:"year"`
	SetName            string `json:"set_name" form:"set_name"`
	CardType           string `json:"card_type" form:"card_type"`
	Sport              string `json:"sport" form:"sport"`
	CardNumber         string `json:"card_number" form:"card_number"`
	SerialNumber       string `json:"serial_number" form:"serial_number"`
	ConditionPurchased string `json:"condition_purchased" form:"condition_purchased"`

	Cost         string `json:"cost" form:"cost"`
	Source       string `json:"source" form:"source"`
	SellerName   string `json:"seller_name" form:"seller_name"`
	ListingLink  string `json:"listing_link" form:"listing_link"`
	PurchaseDate string `json:"purchase_date" form:"purchase_date"`

	Status               string `json:"status" form:"status"`
	GradingCompany       string `json:"grading_company" form:"grading_company"`
	GradingCost          string `json:"grading_cost" form:"grading_cost"`
	Grade                string `json:"grade" form:"grade"`
	GradingSubmittedDate string `json:"grading_submitted_date" form:"grading_submitted_date"`
	GradingReturnedDate  string `json:"grading_returned_date" form:"grading_returned_date"`

	SellingPlatform string `json:"selling_platform" form:"selling_platform"`
	Price           string `json:"price" form:"price"`
	SaleDate        string `json:"sale_date" form:"sale_date"`

	// PhotoLinks is comma-separated; JSON bodies may also send an array.
	PhotoLinks string `json:"photo_links" form:"photo_links"`
	Notes      string `json:"notes" form:"notes"`
}

// DefaultCardInput returns the blank form state with the default selections applied.
func DefaultCardInput() CardInput {
	return CardInput{
		Source:          MarketEBay,
		Status:          string(StatusPurchased),
		SellingPlatform: MarketEBay,
	}
}
