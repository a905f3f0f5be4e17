package repository

import (
	"context"
	"errors"

	"cardtracker/internal/model"
)

// ErrDuplicate is returned when an insert violates the unique card_id constraint.
var ErrDuplicate = errors.New("duplicate card id")

// CardRepository defines data access for cards using SQL queries only.
// No business logic here, strictly persistence operations.
type CardRepository interface {
	// List returns cards ordered newest first, filtered by lq, together with the filtered row count.
	List(ctx context.Context, lq ListQuery) (*PageResult[model.Card], error)

	// LastCardID returns the card_id of the most recently inserted row, or "" when the table is empty.
	LastCardID(ctx context.Context) (string, error)

	// Create inserts a new card. The caller supplies CardID; the database sets ID and CreatedAt.
	Create(ctx context.Context, card *model.Card) (*model.Card, error)

	// FindByID returns a card by its primary key, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Card, error)

	// Update overwrites every editable column of the card with the given ID.
	// card_id and created_at are never modified. Returns sql.ErrNoRows when the row does not exist.
	Update(ctx context.Context, card *model.Card) (*model.Card, error)

	// Delete removes a card by ID. Returns sql.ErrNoRows when nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// SetPhotoLinks replaces the stored photo links of a card.
	SetPhotoLinks(ctx context.Context, id int64, links []string) error
}

// ListQuery holds the inventory filters and limit/offset pagination parameters.
// A zero Limit returns every matching row.
type ListQuery struct {
	Search string
	Status model.Status
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
