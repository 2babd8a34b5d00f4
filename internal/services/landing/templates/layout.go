package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/flaskhub/landing/internal/platform/branding"
)

// DefaultAssetBaseURL is where the HTTP server mounts static assets.
const DefaultAssetBaseURL = "/static"

// Stylesheet is the embedded stylesheet file name.
const Stylesheet = "landing.css"

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title           string
	MetaDescription string
	Lang            string
	AssetBaseURL    string
}

// Layout renders the HTML document and places the context children in body.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		title := strings.TrimSpace(opts.Title)
		if title == "" {
			title = branding.AppName
		}
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en-US"
		}

		m := newMarkup(ctx, w)
		m.raw(`<!doctype html><html`)
		m.attr("lang", lang)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw(`<title>`)
		m.text(title)
		m.raw(`</title>`)
		if desc := strings.TrimSpace(opts.MetaDescription); desc != "" {
			m.raw(`<meta name="description"`)
			m.attr("content", desc)
			m.raw(`>`)
		}
		m.raw(`<link rel="stylesheet"`)
		m.attr("href", AssetURL(opts.AssetBaseURL, Stylesheet))
		m.raw(`></head><body class="page">`)
		m.component(IconSprite())
		m.raw(`<div class="backdrop" aria-hidden="true"><div class="backdrop__glow backdrop__glow--flask"></div><div class="backdrop__glow backdrop__glow--blue"></div></div>`)
		m.component(children)
		m.raw(`</body></html>`)
		return m.done()
	})
}

// AssetURL joins an asset base URL and file name. An empty base means
// DefaultAssetBaseURL.
func AssetURL(base string, name string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultAssetBaseURL
	}
	return base + "/" + strings.TrimLeft(name, "/")
}
