package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardJSON_Dates(t *testing.T) {
	submitted := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	returned := time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC)
	card := Card{
		ID:                   9,
		CardID:               "CARD0000009",
		PlayerCardName:       "Shohei Ohtani",
		GradingSubmittedDate: &submitted,
		GradingReturnedDate:  &returned,
		GradingCost:          decimal.NewNullDecimal(decimal.RequireFromString("25")),
		CreatedAt:            submitted,
	}

	b, err := json.Marshal(card)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "2024-04-01", raw["grading_submitted_date"])
	assert.Equal(t, "2024-05-16", raw["grading_returned_date"])
	assert.Nil(t, raw["purchase_date"])
	assert.Equal(t, "CARD0000009", raw["card_id"])
	assert.Equal(t, "2024-04-01T00:00:00Z", raw["created_at"])

	var back Card
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.GradingReturnedDate)
	assert.True(t, back.GradingReturnedDate.Equal(returned))
	assert.Nil(t, back.SaleDate)
	assert.Equal(t, "Shohei Ohtani", back.PlayerCardName)
	assert.True(t, back.GradingCost.Decimal.Equal(decimal.NewFromInt(25)))
}

func TestCardJSON_BadDate(t *testing.T) {
	var c Card
	err := json.Unmarshal([]byte(`{"sale_date":"03/02/2024"}`), &c)
	assert.ErrorContains(t, err, "sale_date")
}

func TestCardInputJSON_PhotoLinks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string", body: `{"photo_links":"https://a/x.jpg, https://a/y.jpg"}`, want: "https://a/x.jpg, https://a/y.jpg"},
		{name: "array", body: `{"photo_links":["https://a/x.jpg","cards/CARD0000001/y.jpg"]}`, want: "https://a/x.jpg, cards/CARD0000001/y.jpg"},
		{name: "empty array", body: `{"photo_links":[]}`, want: ""},
		{name: "null", body: `{"photo_links":null}`, want: ""},
		{name: "absent", body: `{"player_card_name":"x"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CardInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.PhotoLinks)
		})
	}
}

func TestCardInputJSON_OtherFields(t *testing.T) {
	var in CardInput
	require.NoError(t, json.Unmarshal([]byte(`{"player_card_name":"Ja Morant","cost":"12.5","status":"Grading","photo_links":["a"]}`), &in))
	assert.Equal(t, CardInput{PlayerCardName: "Ja Morant", Cost: "12.5", Status: "Grading", PhotoLinks: "a"}, in)

	assert.Error(t, json.Unmarshal([]byte(`{"photo_links":42}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"photo_links":[1,2]}`), &in))
}
