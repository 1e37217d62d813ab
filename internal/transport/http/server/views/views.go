// Package views embeds the HTML templates of the result pages.
package views

import (
	"embed"
	"net/http"
	"strconv"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// Engine returns the template engine for the embedded views.
func Engine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("credits", FormatCredits)
	engine.AddFunc("number", FormatNumber)
	return engine
}

// FormatCredits renders a raw credits cell; absent values render empty.
func FormatCredits(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return FormatNumber(c)
	case int:
		return strconv.Itoa(c)
	default:
		return ""
	}
}

// FormatNumber renders a float without trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
