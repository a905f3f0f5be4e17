package service

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cardtracker/internal/model"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports the first invalid field of a submitted card.
// Message is safe to show to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// buildCard validates raw input and converts it into a card with its derived fields filled in.
// CardID, ID and timestamps are left for the caller.
func buildCard(in model.CardInput) (*model.Card, error) {
	name := strings.TrimSpace(in.PlayerCardName)
	if name == "" {
		return nil, invalid("player_card_name", "Player/Card Name is required")
	}

	c := &model.Card{
		PlayerCardName:     name,
		Year:               strings.TrimSpace(in.Year),
		SetName:            strings.TrimSpace(in.SetName),
		CardType:           strings.TrimSpace(in.CardType),
		Sport:              strings.TrimSpace(in.Sport),
		CardNumber:         strings.TrimSpace(in.CardNumber),
		SerialNumber:       strings.TrimSpace(in.SerialNumber),
		ConditionPurchased: strings.TrimSpace(in.ConditionPurchased),
		SellerName:         strings.TrimSpace(in.SellerName),
		Grade:              strings.TrimSpace(in.Grade),
		Notes:              strings.TrimSpace(in.Notes),
		PhotoLinks:         splitLinks(in.PhotoLinks),
	}

	var err error
	if c.Source, err = oneOf("source", "Source", in.Source, model.Markets, model.MarketEBay); err != nil {
		return nil, err
	}
	if c.SellingPlatform, err = oneOf("selling_platform", "Selling Platform", in.SellingPlatform, model.Markets, model.MarketEBay); err != nil {
		return nil, err
	}
	if c.GradingCompany, err = oneOf("grading_company", "Grading Company", in.GradingCompany, model.GradingCompanies, ""); err != nil {
		return nil, err
	}
	status, err := parseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	c.Status = status

	if c.ListingLink, err = parseLink("listing_link", in.ListingLink); err != nil {
		return nil, err
	}

	if c.Cost, err = parseAmount("cost", "Cost", in.Cost); err != nil {
		return nil, err
	}
	if c.GradingCost, err = parseAmount("grading_cost", "Grading Cost", in.GradingCost); err != nil {
		return nil, err
	}
	if c.Price, err = parseAmount("price", "Sale Price", in.Price); err != nil {
		return nil, err
	}

	if c.PurchaseDate, err = parseDate("purchase_date", "Purchase Date", in.PurchaseDate); err != nil {
		return nil, err
	}
	if c.GradingSubmittedDate, err = parseDate("grading_submitted_date", "Grading Submitted Date", in.GradingSubmittedDate); err != nil {
		return nil, err
	}
	if c.GradingReturnedDate, err = parseDate("grading_returned_date", "Grading Returned Date", in.GradingReturnedDate); err != nil {
		return nil, err
	}
	if c.SaleDate, err = parseDate("sale_date", "Sale Date", in.SaleDate); err != nil {
		return nil, err
	}

	if before(c.GradingReturnedDate, c.GradingSubmittedDate) {
		return nil, invalid("grading_returned_date", "Grading Returned Date cannot be before Grading Submitted Date")
	}
	if before(c.SaleDate, c.PurchaseDate) {
		return nil, invalid("sale_date", "Sale Date cannot be before Purchase Date")
	}

	derive(c)
	return c, nil
}

// parseStatus accepts a status case-insensitively; empty means Purchased.
func parseStatus(raw string) (model.Status, error) {
	allowed := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		allowed[i] = string(s)
	}
	v, err := oneOf("status", "Status", raw, allowed, string(model.StatusPurchased))
	return model.Status(v), err
}

func oneOf(field, label, raw string, allowed []string, def string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return def, nil
	}
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return a, nil
		}
	}
	return "", invalid(field, label+" must be one of: "+strings.Join(nonEmpty(allowed), ", "))
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

var amountCleaner = strings.NewReplacer("$", "", ",", "")

// maxAmount is the largest value the NUMERIC(12,2) amount columns hold.
var maxAmount = decimal.RequireFromString("9999999999.99")

func parseAmount(field, label, raw string) (decimal.NullDecimal, error) {
	s := amountCleaner.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, invalid(field, label+" must be a number")
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, invalid(field, label+" cannot be negative")
	}
	d = d.Round(2)
	if d.GreaterThan(maxAmount) {
		return decimal.NullDecimal{}, invalid(field, label+" cannot exceed "+maxAmount.StringFixed(2))
	}
	return decimal.NewNullDecimal(d), nil
}

func parseDate(field, label, raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return nil, invalid(field, label+" must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

func parseLink(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", invalid(field, "Listing Link must be an http(s) URL")
	}
	return s, nil
}

func splitLinks(raw string) []string {
	links := make([]string, 0)
	for _, l := range strings.Split(raw, ",") {
		if l = strings.TrimSpace(l); l != "" {
			links = append(links, l)
		}
	}
	return links
}

// before reports whether a is strictly before b; unset dates never compare.
func before(a, b *time.Time) bool {
	return a != nil && b != nil && a.Before(*b)
}
