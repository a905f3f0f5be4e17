package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type cardAlias Card

// cardJSON overrides the date fields of Card so they travel as YYYY-MM-DD, the format CardInput accepts.
type cardJSON struct {
	cardAlias
	PurchaseDate         *string `json:"purchase_date"`
	GradingSubmittedDate *string `json:"grading_submitted_date"`
	GradingReturnedDate  *string `json:"grading_returned_date"`
	SaleDate             *string `json:"sale_date"`
}

// MarshalJSON renders date fields as YYYY-MM-DD so a fetched card can be sent back as a CardInput.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		cardAlias:            cardAlias(c),
		PurchaseDate:         dateString(c.PurchaseDate),
		GradingSubmittedDate: dateString(c.GradingSubmittedDate),
		GradingReturnedDate:  dateString(c.GradingReturnedDate),
		SaleDate:             dateString(c.SaleDate),
	})
}

// UnmarshalJSON accepts the shape produced by MarshalJSON.
func (c *Card) UnmarshalJSON(b []byte) error {
	var aux struct {
		*cardAlias
		PurchaseDate         *string `json:"purchase_date"`
		GradingSubmittedDate *string `json:"grading_submitted_date"`
		GradingReturnedDate  *string `json:"grading_returned_date"`
		SaleDate             *string `json:"sale_date"`
	}
	aux.cardAlias = (*cardAlias)(c)
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	var err error
	if c.PurchaseDate, err = parseDateString("purchase_date", aux.PurchaseDate); err != nil {
		return err
	}
	if c.GradingSubmittedDate, err = parseDateString("grading_submitted_date", aux.GradingSubmittedDate); err != nil {
		return err
	}
	if c.GradingReturnedDate, err = parseDateString("grading_returned_date", aux.GradingReturnedDate); err != nil {
		return err
	}
	c.SaleDate, err = parseDateString("sale_date", aux.SaleDate)
	return err
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func parseDateString(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}

// UnmarshalJSON lets photo_links arrive either as the comma-separated form value or as the
// array a fetched Card carries.
func (in *CardInput) UnmarshalJSON(b []byte) error {
	type inputAlias CardInput
	var aux struct {
		*inputAlias
		PhotoLinks json.RawMessage `json:"photo_links"`
	}
	aux.inputAlias = (*inputAlias)(in)
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.PhotoLinks)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		in.PhotoLinks = ""
	case raw[0] == '[':
		var links []string
		if err := json.Unmarshal(raw, &links); err != nil {
			return fmt.Errorf("photo_links: %w", err)
		}
		in.PhotoLinks = strings.Join(links, ", ")
	default:
		if err := json.Unmarshal(raw, &in.PhotoLinks); err != nil {
			return fmt.Errorf("photo_links: %w", err)
		}
	}
	return nil
}
