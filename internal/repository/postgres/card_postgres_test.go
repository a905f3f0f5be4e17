package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtracker/internal/model"
	"cardtracker/internal/repository"
)

var columns = []string{
	"id", "card_id", "player_card_name", "year", "set_name", "card_type", "sport", "card_number",
	"serial_number", "condition_purchased", "cost", "source", "seller_name", "listing_link", "purchase_date",
	"status", "grading_company", "grading_cost", "grade", "grading_submitted_date", "grading_returned_date",
	"selling_platform", "price", "sale_date", "photo_links", "notes", "days_to_grade", "days_to_sell",
	"profit_loss", "created_at", "updated_at",
}

func soldRow(id int64, cardID string) []driver.Value {
	purchased := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	sold := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, cardID, "Michael Jordan", "1986-87", "Fleer", "Sports", "Basketball", "#57",
		nil, "Raw", "100.00", "eBay", "cards4u", nil, purchased,
		"Sold", "PSA", "25.00", "9", nil, nil,
		"eBay", "300.00", sold, "cards/CARD0000001/a.jpg,https://example.com/b.jpg", nil, nil, int64(60),
		"175.00", time.Now(), nil,
	}
}

func anyArgs(n int) []driver.Value {
	out := make([]driver.Value, n)
	for i := range out {
		out[i] = sqlmock.AnyArg()
	}
	return out
}

func newRepo(t *testing.T) (*CardPostgres, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewCardPostgres(db), mock
}

func TestCardPostgres_Create(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	card := &model.Card{
		CardID:         "CARD0000001",
		PlayerCardName: "Michael Jordan",
		Status:         model.StatusSold,
		Cost:           decimal.NewNullDecimal(decimal.RequireFromString("100")),
	}

	t.Run("success", func(t *testing.T) {
		args := append([]driver.Value{"CARD0000001", "Michael Jordan"}, anyArgs(26)...)
		mock.ExpectQuery("INSERT INTO cards").
			WithArgs(args...).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(soldRow(1, "CARD0000001")...))

		out, err := repo.Create(ctx, card)

		require.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
		assert.Equal(t, "CARD0000001", out.CardID)
		assert.Equal(t, model.StatusSold, out.Status)
		assert.Equal(t, "", out.SerialNumber)
		assert.True(t, out.Cost.Valid)
		assert.True(t, out.Cost.Decimal.Equal(decimal.NewFromInt(100)))
		require.NotNil(t, out.DaysToSell)
		assert.Equal(t, 60, *out.DaysToSell)
		assert.Nil(t, out.DaysToGrade)
		assert.Equal(t, []string{"cards/CARD0000001/a.jpg", "https://example.com/b.jpg"}, out.PhotoLinks)
		assert.Nil(t, out.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate card id", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO cards").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		out, err := repo.Create(ctx, card)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.Nil(t, out)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO cards").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(ctx, card)

		assert.EqualError(t, err, "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCardPostgres_FindByID(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cards WHERE id = ?").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(soldRow(7, "CARD0000007")...))

		card, err := repo.FindByID(ctx, 7)

		assert.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, "CARD0000007", card.CardID)
		assert.Equal(t, "PSA", card.GradingCompany)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cards WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		card, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, card)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardPostgres_List(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	t.Run("paginated without filters", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM cards$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM cards ORDER BY created_at DESC, id DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(soldRow(1, "CARD0000001")...))

		res, err := repo.List(ctx, repository.ListQuery{Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("search and status filters", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM cards WHERE \\(player_card_name ILIKE \\$1 OR set_name ILIKE \\$1 OR card_id ILIKE \\$1\\) AND status = \\$2").
			WithArgs(`%100\%%`, "Sold").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM cards WHERE (.+) ORDER BY created_at DESC, id DESC LIMIT \\$3 OFFSET \\$4").
			WithArgs(`%100\%%`, "Sold", 5, 10).
			WillReturnRows(sqlmock.NewRows(columns))

		res, err := repo.List(ctx, repository.ListQuery{Search: " 100% ", Status: model.StatusSold, Limit: 5, Offset: 10})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	t.Run("unbounded", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM cards$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery("SELECT (.+) FROM cards ORDER BY created_at DESC, id DESC$").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(soldRow(2, "CARD0000002")...).
				AddRow(soldRow(1, "CARD0000001")...))

		res, err := repo.List(ctx, repository.ListQuery{})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "CARD0000002", res.Items[0].CardID)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

		res, err := repo.List(ctx, repository.ListQuery{})

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardPostgres_LastCardID(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	t.Run("existing rows", func(t *testing.T) {
		mock.ExpectQuery("SELECT card_id FROM cards ORDER BY id DESC LIMIT 1").
			WillReturnRows(sqlmock.NewRows([]string{"card_id"}).AddRow("CARD0000041"))

		id, err := repo.LastCardID(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "CARD0000041", id)
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery("SELECT card_id FROM cards ORDER BY id DESC LIMIT 1").
			WillReturnRows(sqlmock.NewRows([]string{"card_id"}))

		id, err := repo.LastCardID(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "", id)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardPostgres_Update(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	card := &model.Card{ID: 3, PlayerCardName: "Wembanyama", Status: model.StatusSelling}

	t.Run("success", func(t *testing.T) {
		args := append([]driver.Value{int64(3), "Wembanyama"}, anyArgs(26)...)
		mock.ExpectQuery("UPDATE cards SET").
			WithArgs(args...).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(soldRow(3, "CARD0000003")...))

		out, err := repo.Update(ctx, card)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), out.ID)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE cards SET").WillReturnError(sql.ErrNoRows)

		out, err := repo.Update(ctx, card)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, out)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardPostgres_Delete(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM cards WHERE id = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, 5))

	mock.ExpectExec("DELETE FROM cards WHERE id = ?").
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, 6), sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardPostgres_SetPhotoLinks(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectExec("UPDATE cards SET photo_links = \\$2").
		WithArgs(int64(5), "cards/CARD0000005/a.jpg,cards/CARD0000005/b.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetPhotoLinks(ctx, 5, []string{"cards/CARD0000005/a.jpg", "cards/CARD0000005/b.jpg"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, escapeLike(`50% off_now\`))
}
