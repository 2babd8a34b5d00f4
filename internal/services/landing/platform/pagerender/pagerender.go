// Package pagerender centralizes full-document rendering for landing pages.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/flaskhub/landing/internal/services/landing/platform/httpx"
	"github.com/flaskhub/landing/internal/services/landing/templates"
)

// Page describes one document response.
type Page struct {
	Layout     templates.LayoutOptions
	StatusCode int
	Body       templ.Component
}

// Render writes the complete document for page into w.
func Render(ctx context.Context, w io.Writer, page Page) error {
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	return templates.Layout(page.Layout).Render(templ.WithChildren(ctx, body), w)
}

// Bytes renders page into memory.
func Bytes(ctx context.Context, page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(ctx, &buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePage renders page fully before committing the response, so a render
// failure becomes a 500 instead of a truncated document.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) {
	if w == nil {
		return
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	rendered, err := Bytes(httpx.RequestContext(r), page)
	if err != nil {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		log.Printf("render page failed path=%s err=%v", path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(rendered)
}
