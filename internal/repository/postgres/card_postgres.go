package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"cardtracker/internal/model"
	"cardtracker/internal/repository"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

const cardColumns = `id, card_id, player_card_name, year, set_name, card_type, sport, card_number,
		serial_number, condition_purchased, cost, source, seller_name, listing_link, purchase_date,
		status, grading_company, grading_cost, grade, grading_submitted_date, grading_returned_date,
		selling_platform, price, sale_date, photo_links, notes, days_to_grade, days_to_sell,
		profit_loss, created_at, updated_at`

// CardPostgres is a PostgreSQL implementation of repository.CardRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type CardPostgres struct {
	db *sql.DB
}

// NewCardPostgres creates a new CardPostgres repository.
func NewCardPostgres(db *sql.DB) *CardPostgres {
	return &CardPostgres{db: db}
}

var _ repository.CardRepository = (*CardPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

// List returns cards newest first using optional search/status filters and LIMIT/OFFSET pagination.
func (r *CardPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Card], error) {
	where, args := buildFilter(lq)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cards"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := "SELECT " + cardColumns + " FROM cards" + where + " ORDER BY created_at DESC, id DESC"
	if lq.Limit > 0 {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, lq.Limit, lq.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Card, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Card]{
		Items: items,
		Total: total,
	}, nil
}

// LastCardID returns the card_id of the row with the highest primary key.
func (r *CardPostgres) LastCardID(ctx context.Context) (string, error) {
	const q = `SELECT card_id FROM cards ORDER BY id DESC LIMIT 1`
	var id string
	if err := r.db.QueryRowContext(ctx, q).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return id, nil
}

// Create inserts a new card row and returns the stored record.
func (r *CardPostgres) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	const q = `
		INSERT INTO cards (card_id, player_card_name, year, set_name, card_type, sport, card_number,
			serial_number, condition_purchased, cost, source, seller_name, listing_link, purchase_date,
			status, grading_company, grading_cost, grade, grading_submitted_date, grading_returned_date,
			selling_platform, price, sale_date, photo_links, notes, days_to_grade, days_to_sell, profit_loss)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING ` + cardColumns

	args := append([]any{card.CardID}, editableArgs(card)...)
	out, err := scanCard(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", repository.ErrDuplicate, card.CardID)
		}
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single card by its primary key.
func (r *CardPostgres) FindByID(ctx context.Context, id int64) (*model.Card, error) {
	q := "SELECT " + cardColumns + " FROM cards WHERE id = $1"
	return scanCard(r.db.QueryRowContext(ctx, q, id))
}

// Update overwrites the editable columns of a card and stamps updated_at.
func (r *CardPostgres) Update(ctx context.Context, card *model.Card) (*model.Card, error) {
	const q = `
		UPDATE cards SET
			player_card_name = $2, year = $3, set_name = $4, card_type = $5, sport = $6,
			card_number = $7, serial_number = $8, condition_purchased = $9, cost = $10, source = $11,
			seller_name = $12, listing_link = $13, purchase_date = $14, status = $15,
			grading_company = $16, grading_cost = $17, grade = $18, grading_submitted_date = $19,
			grading_returned_date = $20, selling_platform = $21, price = $22, sale_date = $23,
			photo_links = $24, notes = $25, days_to_grade = $26, days_to_sell = $27, profit_loss = $28,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + cardColumns

	args := append([]any{card.ID}, editableArgs(card)...)
	return scanCard(r.db.QueryRowContext(ctx, q, args...))
}

// Delete removes a card by ID.
func (r *CardPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM cards WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetPhotoLinks replaces the comma-separated photo_links column.
func (r *CardPostgres) SetPhotoLinks(ctx context.Context, id int64, links []string) error {
	const q = `UPDATE cards SET photo_links = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, nullString(strings.Join(links, ",")))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// buildFilter renders the WHERE clause shared by the count and page queries.
func buildFilter(lq repository.ListQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if s := strings.TrimSpace(lq.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(player_card_name ILIKE $%d OR set_name ILIKE $%d OR card_id ILIKE $%d)", n, n, n))
	}
	if lq.Status != "" {
		args = append(args, string(lq.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// editableArgs lists the user-editable columns in the $2..$28 order used by Create and Update.
func editableArgs(c *model.Card) []any {
	return []any{
		c.PlayerCardName,
		nullString(c.Year),
		nullString(c.SetName),
		nullString(c.CardType),
		nullString(c.Sport),
		nullString(c.CardNumber),
		nullString(c.SerialNumber),
		nullString(c.ConditionPurchased),
		c.Cost,
		nullString(c.Source),
		nullString(c.SellerName),
		nullString(c.ListingLink),
		nullTime(c.PurchaseDate),
		string(c.Status),
		nullString(c.GradingCompany),
		c.GradingCost,
		nullString(c.Grade),
		nullTime(c.GradingSubmittedDate),
		nullTime(c.GradingReturnedDate),
		nullString(c.SellingPlatform),
		c.Price,
		nullTime(c.SaleDate),
		nullString(strings.Join(c.PhotoLinks, ",")),
		nullString(c.Notes),
		nullInt(c.DaysToGrade),
		nullInt(c.DaysToSell),
		c.ProfitLoss,
	}
}

func scanCard(row rowScanner) (*model.Card, error) {
	var (
		c                                                           model.Card
		year, setName, cardType, sport, cardNumber, serial, cond    sql.NullString
		source, seller, listing, status, gradingCo, grade, platform sql.NullString
		photos, notes                                               sql.NullString
		purchased, submitted, returned, sold, updated               sql.NullTime
		daysToGrade, daysToSell                                     sql.NullInt64
		cost, gradingCost, price, profit                            decimal.NullDecimal
	)
	if err := row.Scan(
		&c.ID,
		&c.CardID,
		&c.PlayerCardName,
		&year,
		&setName,
		&cardType,
		&sport,
		&cardNumber,
		&serial,
		&cond,
		&cost,
		&source,
		&seller,
		&listing,
		&purchased,
		&status,
		&gradingCo,
		&gradingCost,
		&grade,
		&submitted,
		&returned,
		&platform,
		&price,
		&sold,
		&photos,
		&notes,
		&daysToGrade,
		&daysToSell,
		&profit,
		&c.CreatedAt,
		&updated,
	); err != nil {
		return nil, err
	}

	c.Year = year.String
	c.SetName = setName.String
	c.CardType = cardType.String
	c.Sport = sport.String
	c.CardNumber = cardNumber.String
	c.SerialNumber = serial.String
	c.ConditionPurchased = cond.String
	c.Cost = cost
	c.Source = source.String
	c.SellerName = seller.String
	c.ListingLink = listing.String
	c.PurchaseDate = timePtr(purchased)
	c.Status = model.Status(status.String)
	c.GradingCompany = gradingCo.String
	c.GradingCost = gradingCost
	c.Grade = grade.String
	c.GradingSubmittedDate = timePtr(submitted)
	c.GradingReturnedDate = timePtr(returned)
	c.SellingPlatform = platform.String
	c.Price = price
	c.SaleDate = timePtr(sold)
	c.PhotoLinks = splitLinks(photos.String)
	c.Notes = notes.String
	c.DaysToGrade = intPtr(daysToGrade)
	c.DaysToSell = intPtr(daysToSell)
	c.ProfitLoss = profit
	c.UpdatedAt = timePtr(updated)
	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func splitLinks(s string) []string {
	links := make([]string, 0)
	for _, l := range strings.Split(s, ",") {
		if l = strings.TrimSpace(l); l != "" {
			links = append(links, l)
		}
	}
	return links
}
