package handler

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cardtracker/internal/http/web"
	"cardtracker/internal/model"
	"cardtracker/internal/service"
)

// Notices shown on the inventory page after a successful submit.
const (
	NoticeCreated = "Card added successfully!"
	NoticeUpdated = "Card updated successfully!"
	NoticeDeleted = "Card deleted successfully!"
)

// Pages serves the server-rendered inventory UI.
type Pages struct {
	svc service.CardService
	log *zap.Logger
}

// NewPages creates the page handlers.
func NewPages(svc service.CardService, log *zap.Logger) *Pages {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pages{svc: svc, log: log}
}

func inventoryRedirect(c *fiber.Ctx, notice string) error {
	return c.Redirect("/inventory?notice="+url.QueryEscape(notice), fiber.StatusSeeOther)
}

// Dashboard shows inventory totals.
func (p *Pages) Dashboard(c *fiber.Ctx) error {
	st, err := p.svc.Stats(c.UserContext())
	if err != nil {
		p.log.Error("dashboard_stats_failed", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return web.Render(c, "dashboard", web.Layout, fiber.Map{"Title": "Dashboard", "Stats": st})
}

// Inventory lists every card matching the search box and status filter.
func (p *Pages) Inventory(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":  "Inventory",
		"Query":  c.Query("q"),
		"Status": c.Query("status"),
		"Notice": c.Query("notice"),
		"Cards":  []model.Card{},
		"Total":  0,
	}

	res, err := p.svc.List(c.UserContext(), service.ListOptions{
		Search: c.Query("q"),
		Status: c.Query("status"),
		Limit:  500,
	})
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		data["Error"] = ve.Message
		return web.Render(c, "inventory", web.Layout, data, fiber.StatusUnprocessableEntity)
	case err != nil:
		p.log.Error("inventory_list_failed", zap.Error(err))
		data["Error"] = "Could not load cards. Please try again."
		return web.Render(c, "inventory", web.Layout, data, fiber.StatusInternalServerError)
	}

	data["Cards"] = res.Items
	data["Total"] = res.Total
	return web.Render(c, "inventory", web.Layout, data)
}

// formData is the binding shared by the add and edit forms.
func formData(title, action string, in model.CardInput) fiber.Map {
	return fiber.Map{
		"Title":      title,
		"Action":     action,
		"Card":       in,
		"Editing":    false,
		"CardID":     "",
		"Error":      "",
		"ErrorField": "",
	}
}

// renderFormError re-renders the submitted values with a banner instead of losing them.
func (p *Pages) renderFormError(c *fiber.Ctx, data fiber.Map, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		data["Error"] = ve.Message
		data["ErrorField"] = ve.Field
		return web.Render(c, "form", web.Layout, data, fiber.StatusUnprocessableEntity)
	}
	p.log.Error("card_submit_failed", zap.String("action", data["Action"].(string)), zap.Error(err))
	data["Error"] = "Error saving card. Please try again."
	return web.Render(c, "form", web.Layout, data, fiber.StatusInternalServerError)
}

// NewCardForm renders a blank form with the default selections.
func (p *Pages) NewCardForm(c *fiber.Ctx) error {
	return web.Render(c, "form", web.Layout, formData("Add card", "/cards", model.DefaultCardInput()))
}

// CreateCard handles the add form.
func (p *Pages) CreateCard(c *fiber.Ctx) error {
	var in model.CardInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}
	data := formData("Add card", "/cards", in)

	if _, err := p.svc.Create(c.UserContext(), in); err != nil {
		return p.renderFormError(c, data, err)
	}
	return inventoryRedirect(c, NoticeCreated)
}

// EditCardForm renders the form pre-filled with the stored card.
func (p *Pages) EditCardForm(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	card, err := p.svc.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.ErrNotFound
		}
		p.log.Error("card_load_failed", zap.Int64("id", id), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	data := formData("Edit "+card.CardID, "/cards/"+strconv.FormatInt(id, 10), card.Input())
	data["Editing"] = true
	data["CardID"] = card.CardID
	return web.Render(c, "form", web.Layout, data)
}

// UpdateCard handles the edit form.
func (p *Pages) UpdateCard(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	var in model.CardInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.ErrBadRequest
	}

	data := formData("Edit card", "/cards/"+strconv.FormatInt(id, 10), in)
	data["Editing"] = true
	data["CardID"] = c.FormValue("card_id")

	if _, err := p.svc.Update(c.UserContext(), id, in); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return p.renderFormError(c, data, err)
	}
	return inventoryRedirect(c, NoticeUpdated)
}

// DeleteCard handles the delete button. The browser asks for confirmation first.
func (p *Pages) DeleteCard(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fiber.ErrNotFound
	}
	if err := p.svc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.ErrNotFound
		}
		p.log.Error("card_delete_failed", zap.Int64("id", id), zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return inventoryRedirect(c, NoticeDeleted)
}
