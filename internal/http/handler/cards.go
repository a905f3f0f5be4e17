package handler

import (
	"mime"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cardtracker/internal/model"
	"cardtracker/internal/service"
)

// parseID reads the :id route parameter as a positive integer.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c *fiber.Ctx, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ListCards returns a page of cards, newest first.
//
//	@Summary	List cards
//	@Tags		cards
//	@Produce	json
//	@Param		q		query		string	false	"search player/card name, set or card ID"
//	@Param		status	query		string	false	"Purchased, Grading, Selling, Sold or Other"
//	@Param		limit	query		int		false	"page size (default 50, max 500)"
//	@Param		offset	query		int		false	"rows to skip"
//	@Success	200		{object}	service.CardListResult
//	@Failure	400		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/api/cards [get]
func ListCards(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, ok := queryInt(c, "limit")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, ok := queryInt(c, "offset")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), service.ListOptions{
			Search: c.Query("q"),
			Status: c.Query("status"),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetCard returns a single card.
//
//	@Summary	Get a card
//	@Tags		cards
//	@Produce	json
//	@Param		id	path		int	true	"card primary key"
//	@Success	200	{object}	model.Card
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/api/cards/{id} [get]
func GetCard(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		card, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(card)
	}
}

// CreateCard validates the payload, assigns the next card_id and stores the card.
//
//	@Summary	Create a card
//	@Tags		cards
//	@Accept		json
//	@Produce	json
//	@Param		card	body		model.CardInput	true	"card fields"
//	@Success	201		{object}	model.Card
//	@Failure	400		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/api/cards [post]
func CreateCard(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.CardInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		card, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(card)
	}
}

// UpdateCard overwrites every editable field of a card. Omitted fields are cleared.
//
//	@Summary	Update a card
//	@Tags		cards
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"card primary key"
//	@Param		card	body		model.CardInput	true	"card fields"
//	@Success	200		{object}	model.Card
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/api/cards/{id} [put]
func UpdateCard(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.CardInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		card, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(card)
	}
}

// DeleteCard removes a card and its uploaded photos.
//
//	@Summary	Delete a card
//	@Tags		cards
//	@Param		id	path	int	true	"card primary key"
//	@Success	204
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Router		/api/cards/{id} [delete]
func DeleteCard(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetStats returns inventory totals.
//
//	@Summary	Inventory statistics
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	service.Stats
//	@Failure	500	{object}	errorPayload
//	@Router		/api/stats [get]
func GetStats(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// UploadPhoto stores an image for a card (multipart/form-data, field name: file).
//
//	@Summary	Upload a card photo
//	@Tags		photos
//	@Accept		mpfd
//	@Produce	json
//	@Param		id		path		int		true	"card primary key"
//	@Param		file	formData	file	true	"image file"
//	@Success	201		{object}	model.Card
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Failure	503		{object}	errorPayload
//	@Router		/api/cards/{id}/photos [post]
func UploadPhoto(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" || ct == fiber.MIMEOctetStream {
			ct = mime.TypeByExtension(filepath.Ext(fh.Filename))
		}

		card, err := svc.UploadPhoto(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(card)
	}
}

// ListPhotos returns browsable URLs for the card's photos. Uploaded photos get presigned URLs.
//
//	@Summary	List card photo URLs
//	@Tags		photos
//	@Produce	json
//	@Param		id	path		int	true	"card primary key"
//	@Success	200	{object}	map[string][]string
//	@Failure	404	{object}	errorPayload
//	@Failure	503	{object}	errorPayload
//	@Router		/api/cards/{id}/photos [get]
func ListPhotos(svc service.CardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		urls, err := svc.PhotoURLs(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": urls})
	}
}
