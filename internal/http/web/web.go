// Package web holds the embedded HTML views and the helpers used to render them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"cardtracker/internal/model"
)

// Layout wraps every page.
const Layout = "layouts/main"

// DefaultCurrency is used when the configured code is unknown to go-money.
const DefaultCurrency = money.USD

//go:embed templates
var templates embed.FS

// Engine builds the template engine over the embedded views. Amounts are displayed in currency.
func Engine(currency string) *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	for name, fn := range Funcs(currency) {
		engine.AddFunc(name, fn)
	}
	return engine
}

// Funcs returns the template helpers. Exported for tests and for callers building their own engine.
func Funcs(currency string) template.FuncMap {
	return template.FuncMap{
		"money":            MoneyFormatter(currency),
		"date":             formatDate,
		"days":             formatDays,
		"statuses":         func() []model.Status { return model.Statuses },
		"markets":          func() []string { return model.Markets },
		"gradingCompanies": func() []string { return model.GradingCompanies },
		"isURL":            func(s string) bool { return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") },
		"signClass":        signClass,
	}
}

// Render executes name inside layout with the given status, the way every page handler responds.
func Render(c *fiber.Ctx, name, layout string, data fiber.Map, status ...int) error {
	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(name, data, layout)
}

// MoneyFormatter returns the formatter behind the "money" helper. It accepts decimal.Decimal,
// decimal.NullDecimal and *decimal.Decimal; null amounts format as "".
func MoneyFormatter(currency string) func(any) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	return func(v any) string { return formatMoney(v, cur) }
}

func formatMoney(v any, cur *money.Currency) string {
	var d decimal.Decimal
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case decimal.NullDecimal:
		if !x.Valid {
			return ""
		}
		d = x.Decimal
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		d = *x
	default:
		return fmt.Sprint(v)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(model.DateLayout)
}

func formatDays(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d", *n)
}

// signClass picks the CSS class for a profit/loss amount.
func signClass(d decimal.NullDecimal) string {
	switch {
	case !d.Valid:
		return ""
	case d.Decimal.IsNegative():
		return "loss"
	case d.Decimal.IsPositive():
		return "profit"
	default:
		return ""
	}
}
